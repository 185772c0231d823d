package billing

import (
	"context"

	"odgpos/internal/core/types"
)

// Repository persists posting rows in the ERP schema. All methods must be
// called inside a transaction started by the service; partial postings must
// never survive a rollback.
type Repository interface {
	// HeaderExists reports whether a POS header already carries the
	// document number.
	HeaderExists(ctx context.Context, docNo string) (bool, error)

	InsertHeader(ctx context.Context, header *TransHeader) error
	InsertDetails(ctx context.Context, details []TransDetail) error
	InsertShipment(ctx context.Context, shipment *Shipment) error

	// GetHeader re-reads the header just inserted. Returns
	// apperror.NewNotFound when the row is missing.
	GetHeader(ctx context.Context, docNo string) (*TransHeader, error)

	InsertCashBook(ctx context.Context, cb *CashBook) error
	InsertCashBookDetail(ctx context.Context, detail *CashBookDetail) error
}

// RateLookup reads the current LAK->Baht exchange rate.
// A missing rate row yields zero, not an error.
type RateLookup interface {
	CurrentRate(ctx context.Context) (types.Money, error)
}

// CostLookup reads the average cost per item.
// A missing cost row yields zero, not an error.
type CostLookup interface {
	AverageCost(ctx context.Context, itemCode string) (types.Money, error)
}

// UserLookup resolves operator organizational attributes.
// An absent operator yields empty-string defaults, not an error.
type UserLookup interface {
	OperatorAttributes(ctx context.Context, userCode string) (OperatorAttributes, error)
}
