// Package sales provides the per-item sales analysis view: opening balance,
// sold quantity and closing balance for a date, with a second warehouse as
// comparison column.
package sales

import (
	"time"

	"odgpos/internal/core/types"
)

// Defaults for the analysis scope.
const (
	DefaultUserWHCode    = "1301"
	DefaultCompareWHCode = "1302"
	DefaultPageSize      = 20
	MaxPageSize          = 200
)

// AnalysisQuery scopes one analysis request. A nil DocDate means today.
type AnalysisQuery struct {
	DocDate       *time.Time
	UserWHCode    string
	CompareWHCode string
	Limit         int
	Offset        int
}

// ApplyDefaults fills missing scope fields and caps the page size.
func (q *AnalysisQuery) ApplyDefaults() {
	if q.UserWHCode == "" {
		q.UserWHCode = DefaultUserWHCode
	}
	if q.CompareWHCode == "" {
		q.CompareWHCode = DefaultCompareWHCode
	}
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

// UserLocCode derives the shelf location of the user warehouse.
func (q *AnalysisQuery) UserLocCode() string {
	return locCode(q.UserWHCode)
}

// CompareLocCode derives the shelf location of the comparison warehouse.
func (q *AnalysisQuery) CompareLocCode() string {
	return locCode(q.CompareWHCode)
}

// locCode maps a warehouse code to its first shelf location. Warehouse codes
// shorter than four characters fall back to the main shelf.
func locCode(whCode string) string {
	if len(whCode) >= 4 {
		return whCode + "01"
	}
	return "130101"
}

// Row is one item in the analysis result.
type Row struct {
	DocDate         time.Time   `db:"doc_date"`
	ItemCode        string      `db:"item_code"`
	ItemName        string      `db:"item_name"`
	UnitCode        string      `db:"unit_code"`
	BalanceQtyStart types.Money `db:"balance_qty_start"`
	SaleQty         types.Money `db:"sale_qty"`
	BalanceQty      types.Money `db:"balance_qty"`
	BalanceQtyCmp   types.Money `db:"balance_qty_compare"`
}
