package catalog

import (
	"context"
)

// Service answers catalog lookups. It holds no state beyond the repository;
// validation and defaulting happen here so repositories see complete queries.
type Service struct {
	repo Repository
}

// NewService creates a new catalog service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Categories returns in-stock category counts for the scope.
func (s *Service) Categories(ctx context.Context, scope StockScope) ([]Category, error) {
	scope.ApplyDefaults()
	return s.repo.Categories(ctx, scope)
}

// Products returns a page of in-stock products.
func (s *Service) Products(ctx context.Context, query ProductQuery) ([]Product, error) {
	query.ApplyDefaults()
	return s.repo.Products(ctx, query)
}

// CheckPrice resolves one product with its active sale price.
func (s *Service) CheckPrice(ctx context.Context, query PriceCheckQuery) ([]PriceCheck, error) {
	if err := query.Validate(ctx); err != nil {
		return nil, err
	}
	query.StockScope.ApplyDefaults()
	return s.repo.CheckPrice(ctx, query)
}

// Warehouses returns all warehouses.
func (s *Service) Warehouses(ctx context.Context) ([]Warehouse, error) {
	return s.repo.Warehouses(ctx)
}

// Locations returns the shelf locations of a warehouse.
func (s *Service) Locations(ctx context.Context, whCode string) ([]Location, error) {
	return s.repo.Locations(ctx, whCode)
}

// Customers returns all customers.
func (s *Service) Customers(ctx context.Context) ([]Customer, error) {
	return s.repo.Customers(ctx)
}

// Units returns the distinct base unit codes.
func (s *Service) Units(ctx context.Context) ([]string, error) {
	return s.repo.Units(ctx)
}
