package catalog

import (
	"context"
)

// Repository reads ERP reference data. All methods are read-only and run on
// the pool querier; no transaction is required.
type Repository interface {
	// Categories returns in-stock category counts for the scope, excluding
	// the giveaway category.
	Categories(ctx context.Context, scope StockScope) ([]Category, error)

	// Products returns a page of in-stock products.
	Products(ctx context.Context, query ProductQuery) ([]Product, error)

	// CheckPrice resolves at most one product by barcode or fragment.
	// Returns an empty slice when nothing matches.
	CheckPrice(ctx context.Context, query PriceCheckQuery) ([]PriceCheck, error)

	Warehouses(ctx context.Context) ([]Warehouse, error)
	Locations(ctx context.Context, whCode string) ([]Location, error)
	Customers(ctx context.Context) ([]Customer, error)

	// Units returns the distinct base unit codes from ic_inventory.
	Units(ctx context.Context) ([]string, error)
}
