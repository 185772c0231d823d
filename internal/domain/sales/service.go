package sales

import (
	"context"
	"time"
)

// Repository reads the analysis data. Both methods are read-only.
type Repository interface {
	// HasSales reports whether any detail row exists for the date.
	HasSales(ctx context.Context, date time.Time) (bool, error)

	// Analysis returns the per-item balance and sales rows.
	Analysis(ctx context.Context, query AnalysisQuery) ([]Row, error)
}

// Service answers sales analysis queries.
type Service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a new sales analysis service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Analysis returns per-item opening balance, sold quantity and closing
// balance for the query date. Dates with no sales at all short-circuit to an
// empty result without running the heavy balance query.
func (s *Service) Analysis(ctx context.Context, query AnalysisQuery) ([]Row, error) {
	query.ApplyDefaults()
	if query.DocDate == nil {
		today := s.now()
		query.DocDate = &today
	}

	hasSales, err := s.repo.HasSales(ctx, *query.DocDate)
	if err != nil {
		return nil, err
	}
	if !hasSales {
		return []Row{}, nil
	}

	return s.repo.Analysis(ctx, query)
}
