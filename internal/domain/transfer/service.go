package transfer

import (
	"context"
	"fmt"
	"time"

	"odgpos/internal/core/tx"
	"odgpos/pkg/logger"
	"odgpos/pkg/numerator"
)

// Numberer generates the next transfer document number.
type Numberer interface {
	Next(ctx context.Context, prefix string, now time.Time) (string, error)
}

// Service manages warehouse transfer documents.
type Service struct {
	repo      Repository
	numbers   Numberer
	txManager tx.Manager
	now       func() time.Time
}

// NewService creates a new transfer service.
func NewService(repo Repository, numbers Numberer, txManager tx.Manager) *Service {
	return &Service{
		repo:      repo,
		numbers:   numbers,
		txManager: txManager,
		now:       time.Now,
	}
}

// NextNumber returns the next FR document number for the current period.
func (s *Service) NextNumber(ctx context.Context) (string, error) {
	return s.numbers.Next(ctx, numerator.PrefixTransfer, s.now())
}

// Create writes the transfer header and all detail lines atomically, then
// reads the stored document back as confirmation.
func (s *Service) Create(ctx context.Context, req *CreateRequest) (*Confirmation, error) {
	if err := req.Validate(ctx); err != nil {
		return nil, err
	}

	docDate := s.now()
	var conf *Confirmation

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		header := &Header{
			TransType:     TransType,
			TransFlag:     TransFlagTransfer,
			DocDate:       docDate,
			DocNo:         req.TransferNo,
			DocRef:        req.Creator,
			DocFormatCode: DocFormatTransfer,
			BranchCode:    DefaultBranchCode,
			SaleCode:      req.Creator,
			Remark:        fmt.Sprintf("Web: %s", req.TransferNo),
			WHFrom:        req.WHFrom,
			LocationFrom:  req.LocationFrom,
			WHTo:          req.WHTo,
			LocationTo:    req.LocationTo,
			CreatorCode:   req.Creator,
		}
		if err := s.repo.InsertHeader(ctx, header); err != nil {
			return fmt.Errorf("insert header: %w", err)
		}

		details := make([]Detail, 0, len(req.Details))
		for _, line := range req.Details {
			details = append(details, Detail{
				TransType:  TransType,
				TransFlag:  TransFlagTransfer,
				DocDate:    docDate,
				DocNo:      req.TransferNo,
				ItemCode:   line.ItemCode,
				ItemName:   line.ItemName,
				UnitCode:   line.UnitCode,
				Qty:        line.Qty,
				BranchCode: DefaultBranchCode,
				WHCode:     line.WHCode,
				ShelfCode:  line.ShelfCode,
				WHCode2:    line.WHCode2,
				ShelfCode2: line.ShelfCode2,
				SaleCode:   req.Creator,
			})
		}
		if err := s.repo.InsertDetails(ctx, details); err != nil {
			return fmt.Errorf("insert details: %w", err)
		}

		stored, err := s.repo.GetConfirmation(ctx, req.TransferNo)
		if err != nil {
			return fmt.Errorf("read back transfer: %w", err)
		}
		conf = stored
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "transfer created",
		"transfer_no", req.TransferNo,
		"lines", len(req.Details),
		"wh_from", req.WHFrom,
		"wh_to", req.WHTo,
	)
	return conf, nil
}

// List returns transfer summaries, optionally restricted to one day.
func (s *Service) List(ctx context.Context, date *time.Time) ([]Summary, error) {
	return s.repo.List(ctx, date)
}

// Get returns the full transfer view.
func (s *Service) Get(ctx context.Context, docNo string) (*View, error) {
	return s.repo.Get(ctx, docNo)
}

// UpdateLocations rewrites the warehouse/location routing of a transfer.
func (s *Service) UpdateLocations(ctx context.Context, docNo string, upd *LocationUpdate) error {
	if err := upd.Validate(ctx); err != nil {
		return err
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.UpdateLocations(ctx, docNo, upd)
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "transfer locations updated", "transfer_no", docNo)
	return nil
}
