package billing

import (
	"context"
	"fmt"

	"odgpos/internal/core/apperror"
	"odgpos/internal/core/tx"
	"odgpos/internal/core/types"
	"odgpos/pkg/logger"
)

// Service composes POS billing postings. Stateless; one call per checkout.
type Service struct {
	repo      Repository
	rates     RateLookup
	costs     CostLookup
	users     UserLookup
	txManager tx.Manager
	cfg       Config
}

// NewService creates a new billing composer.
func NewService(
	repo Repository,
	rates RateLookup,
	costs CostLookup,
	users UserLookup,
	txManager tx.Manager,
	cfg Config,
) *Service {
	return &Service{
		repo:      repo,
		rates:     rates,
		costs:     costs,
		users:     users,
		txManager: txManager,
		cfg:       cfg,
	}
}

// Compose validates the request and writes the full posting atomically:
// ic_trans header, one ic_trans_detail per item, ic_trans_shipment,
// cb_trans and cb_trans_detail. Either all five land or none do.
func (s *Service) Compose(ctx context.Context, req *BillingRequest) (*Confirmation, error) {
	req.ApplyDefaults()
	if err := req.Validate(ctx); err != nil {
		return nil, err
	}

	conf := &Confirmation{DocNo: req.DocNo}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		exists, err := s.repo.HeaderExists(ctx, req.DocNo)
		if err != nil {
			return fmt.Errorf("check doc_no: %w", err)
		}
		if exists {
			return apperror.NewDuplicate("posting", "doc_no", req.DocNo)
		}

		attrs, err := s.users.OperatorAttributes(ctx, req.UserCode)
		if err != nil {
			return fmt.Errorf("resolve operator: %w", err)
		}

		rate, err := s.rates.CurrentRate(ctx)
		if err != nil {
			return fmt.Errorf("resolve exchange rate: %w", err)
		}
		if rate.IsZero() {
			rate = s.cfg.FallbackRate
			conf.RateFallback = true
			logger.Warn(ctx, "exchange rate missing, using fallback",
				"doc_no", req.DocNo,
				"fallback_rate", rate.String(),
			)
		}

		header := s.buildHeader(req, attrs, rate)
		if err := s.repo.InsertHeader(ctx, header); err != nil {
			return fmt.Errorf("insert header: %w", err)
		}

		details, err := s.buildDetails(ctx, req, rate)
		if err != nil {
			return err
		}
		if err := s.repo.InsertDetails(ctx, details); err != nil {
			return fmt.Errorf("insert details: %w", err)
		}

		shipment := &Shipment{
			DocNo:    req.DocNo,
			DocDate:  req.DocDate,
			CustCode: req.CustomerCode,
		}
		if err := s.repo.InsertShipment(ctx, shipment); err != nil {
			return fmt.Errorf("insert shipment: %w", err)
		}

		// Read the header back so cash-book amounts derive from the stored
		// values, not the in-memory copy.
		stored, err := s.repo.GetHeader(ctx, req.DocNo)
		if err != nil {
			if apperror.IsNotFound(err) {
				return apperror.NewInvariant("posted header could not be read back").
					WithDetail("doc_no", req.DocNo)
			}
			return fmt.Errorf("read back header: %w", err)
		}

		cb := s.buildCashBook(req, stored)
		if err := s.repo.InsertCashBook(ctx, cb); err != nil {
			return fmt.Errorf("insert cash book: %w", err)
		}

		cbDetail := s.buildCashBookDetail(req, cb)
		if err := s.repo.InsertCashBookDetail(ctx, cbDetail); err != nil {
			return fmt.Errorf("insert cash book detail: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	conf.Message = "Transaction completed successfully"
	logger.Info(ctx, "pos billing posted",
		"doc_no", req.DocNo,
		"items", len(req.Items),
		"payment", string(req.Payment),
		"rate_fallback", conf.RateFallback,
	)
	return conf, nil
}

func (s *Service) buildHeader(req *BillingRequest, attrs OperatorAttributes, rate types.Money) *TransHeader {
	totalLak := types.RoundAmount(req.TotalAmount)
	return &TransHeader{
		TransType:       TransType,
		TransFlag:       TransFlagPOS,
		DocDate:         req.DocDate,
		DocNo:           req.DocNo,
		DocFormatCode:   DocFormatPOS,
		BranchCode:      req.BranchCode,
		ProjectCode:     "",
		SideCode:        attrs.SideCode,
		DepartmentCode:  attrs.DepartmentCode,
		SaleCode:        req.UserCode,
		CustCode:        req.CustomerCode,
		TotalAmount:     totalLak,
		TotalAmountBaht: types.ToBaht(req.TotalAmount, rate),
		ExchangeRate:    rate,
		Remark:          req.Remark,
		CreatorCode:     req.UserCode,
	}
}

func (s *Service) buildDetails(ctx context.Context, req *BillingRequest, rate types.Money) ([]TransDetail, error) {
	details := make([]TransDetail, 0, len(req.Items))
	for i, item := range req.Items {
		cost, err := s.costs.AverageCost(ctx, item.ItemCode)
		if err != nil {
			return nil, fmt.Errorf("resolve cost for %s: %w", item.ItemCode, err)
		}

		sumOfCost := types.RoundCost(cost.Mul(item.Qty))

		details = append(details, TransDetail{
			TransType:     TransType,
			TransFlag:     TransFlagPOS,
			DocDate:       req.DocDate,
			DocNo:         req.DocNo,
			LineNumber:    i + 1,
			ItemCode:      item.ItemCode,
			ItemName:      item.ItemName,
			UnitCode:      item.UnitCode,
			Qty:           item.Qty,
			Price:         types.RoundAmount(item.Price),
			PriceBaht:     types.ToBaht(item.Price, rate),
			SumAmount:     types.RoundAmount(item.Amount),
			SumAmountBaht: types.ToBaht(item.Amount, rate),
			AverageCost:   types.RoundCost(cost),
			SumOfCost:     sumOfCost,
			SumOfCost2:    sumOfCost,
			WHCode:        req.WHCode,
			ShelfCode:     req.ShelfCode,
			BranchCode:    req.BranchCode,
			SaleCode:      req.UserCode,
			CreatorCode:   req.UserCode,
		})
	}
	return details, nil
}

func (s *Service) buildCashBook(req *BillingRequest, stored *TransHeader) *CashBook {
	totalBaht := types.ToBaht(stored.TotalAmount, stored.ExchangeRate)

	cb := &CashBook{
		DocDate:         req.DocDate,
		DocNo:           req.DocNo,
		BranchCode:      req.BranchCode,
		PayType:         string(req.Payment),
		TotalAmount:     stored.TotalAmount,
		TotalAmountBaht: totalBaht,
		ExchangeRate:    stored.ExchangeRate,
		CashAmount:      types.Zero(),
		TransferAmount:  types.Zero(),
		CardAmount:      types.Zero(),
		CreatorCode:     req.UserCode,
	}

	switch req.Payment {
	case PaymentTransfer:
		cb.TransferAmount = totalBaht
	case PaymentCard:
		cb.CardAmount = totalBaht
	default:
		cb.CashAmount = totalBaht
	}
	return cb
}

func (s *Service) buildCashBookDetail(req *BillingRequest, cb *CashBook) *CashBookDetail {
	detail := &CashBookDetail{
		DocDate:    req.DocDate,
		DocNo:      req.DocNo,
		LineNumber: 1,
		DocType:    DefaultDocType,
		Amount:     cb.TotalAmount,
		AmountBaht: cb.TotalAmountBaht,
	}

	switch req.Payment {
	case PaymentCash:
		detail.TransNum = CashTransNumber
		detail.DocType = CashDocType
	case PaymentTransfer:
		detail.TransNum = TransferTransNumber
		detail.BankCode = TransferBankCode
		detail.BankBranch = TransferBankBranch
	case PaymentCard:
		// defaults apply, no bank fields
	}
	return detail
}
