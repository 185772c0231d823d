package transfer

import (
	"context"
	"time"
)

// Repository persists transfer documents in the shared ic_trans tables.
type Repository interface {
	InsertHeader(ctx context.Context, header *Header) error
	InsertDetails(ctx context.Context, details []Detail) error

	// GetConfirmation re-reads the document just inserted. Returns
	// apperror.NewNotFound when the row is missing.
	GetConfirmation(ctx context.Context, docNo string) (*Confirmation, error)

	// List returns transfer summaries, optionally restricted to one day.
	// Filtered lists sort ascending, unfiltered descending (newest first).
	List(ctx context.Context, date *time.Time) ([]Summary, error)

	// Get returns the full transfer view or apperror.NewNotFound.
	Get(ctx context.Context, docNo string) (*View, error)

	// UpdateLocations rewrites the warehouse/location routing of a header.
	// Returns apperror.NewNotFound when no row matches.
	UpdateLocations(ctx context.Context, docNo string, upd *LocationUpdate) error
}
