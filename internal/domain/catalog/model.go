// Package catalog provides read-only lookups over the ERP reference tables
// and the stock-balance function: categories, products, prices, warehouses,
// locations, customers and units.
package catalog

import (
	"context"

	"odgpos/internal/core/apperror"
	"odgpos/internal/core/types"
)

// Defaults for the stock-balance scope when the frontend omits them.
const (
	DefaultWHCode  = "1301"
	DefaultLocCode = "01"

	DefaultPageSize = 30
	MaxPageSize     = 200
)

// ExcludedCategory is the giveaway category hidden from POS category lists.
const ExcludedCategory = "ຂອງແຖມ"

// StockScope selects which warehouse/location the stock function reports on.
type StockScope struct {
	WHCode  string
	LocCode string
}

// ApplyDefaults fills missing scope fields.
func (s *StockScope) ApplyDefaults() {
	if s.WHCode == "" {
		s.WHCode = DefaultWHCode
	}
	if s.LocCode == "" {
		s.LocCode = DefaultLocCode
	}
}

// Category is one product category with its in-stock item count.
type Category struct {
	Name  string `db:"name_1"`
	Count int    `db:"count"`
}

// ProductQuery filters and pages the product list.
type ProductQuery struct {
	StockScope
	Category string // empty or "All" means no category filter
	Search   string
	Limit    int
	Offset   int
}

// ApplyDefaults fills missing query fields and caps the page size.
func (q *ProductQuery) ApplyDefaults() {
	q.StockScope.ApplyDefaults()
	if q.Limit <= 0 {
		q.Limit = DefaultPageSize
	}
	if q.Limit > MaxPageSize {
		q.Limit = MaxPageSize
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
}

// Filtered reports whether the query carries a real category filter.
func (q *ProductQuery) Filtered() bool {
	return q.Category != "" && q.Category != "All"
}

// Product is one sellable item with its current stock balance.
type Product struct {
	ItemCode string      `db:"item_code"`
	ItemName string      `db:"item_name"`
	UnitCode string      `db:"unit_code"`
	Price    types.Money `db:"price"`
	StockQty types.Money `db:"stock_quantity"`
	ImageURL string      `db:"url_image"`
}

// PriceCheckQuery resolves one item by barcode or name/code fragment.
type PriceCheckQuery struct {
	StockScope
	Search string
}

// Validate rejects empty search terms.
func (q *PriceCheckQuery) Validate(ctx context.Context) error {
	if q.Search == "" {
		return apperror.NewValidation("search term cannot be empty").WithDetail("field", "search")
	}
	return nil
}

// PriceCheck is the resolved item with its active sale price. Price is zero
// when no price row covers the current date.
type PriceCheck struct {
	ItemCode string      `db:"item_code"`
	ItemName string      `db:"item_name"`
	UnitCode string      `db:"unit_code"`
	StockQty types.Money `db:"stock_quantity"`
	Barcode  string      `db:"barcode"`
	Price    types.Money `db:"price"`
	ImageURL string      `db:"url_image"`
}

// Warehouse is one ic_warehouse row.
type Warehouse struct {
	Code string `db:"code"`
	Name string `db:"name"`
}

// Location is one ic_shelf row within a warehouse.
type Location struct {
	Code string `db:"code"`
	Name string `db:"name"`
}

// Customer is one ar_customer row.
type Customer struct {
	Code string `db:"code"`
	Name string `db:"name"`
}
