package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"odgpos/internal/core/apperror"
	"odgpos/internal/domain/sales"
)

type AnalysisRequest struct {
	DocDate    string `form:"doc_date"`
	WHCode     string `form:"wh_code"`
	UserWHCode string `form:"user_wh_code"`
	Limit      int    `form:"limit"`
	Offset     int    `form:"offset"`
}

// ToModel converts the query parameters to a domain query.
func (r *AnalysisRequest) ToModel() (sales.AnalysisQuery, error) {
	query := sales.AnalysisQuery{
		UserWHCode:    r.UserWHCode,
		CompareWHCode: r.WHCode,
		Limit:         r.Limit,
		Offset:        r.Offset,
	}

	if r.DocDate != "" {
		date, err := time.Parse(DateLayout, r.DocDate)
		if err != nil {
			return sales.AnalysisQuery{}, apperror.NewValidation("doc_date must be YYYY-MM-DD").
				WithDetail("field", "doc_date").
				WithDetail("value", r.DocDate)
		}
		query.DocDate = &date
	}
	return query, nil
}

type AnalysisRowResponse struct {
	DocDate         string          `json:"doc_date"`
	ItemCode        string          `json:"item_code"`
	ItemName        string          `json:"item_name"`
	UnitCode        string          `json:"unit_code"`
	BalanceQtyStart decimal.Decimal `json:"balance_qty_start"`
	SaleQty         decimal.Decimal `json:"sale_qty"`
	BalanceQty      decimal.Decimal `json:"balance_qty"`
	BalanceQtyCmp   decimal.Decimal `json:"balance_qty_compare"`
}

// NewAnalysisListResponse converts analysis rows to wire responses.
func NewAnalysisListResponse(rows []sales.Row) []AnalysisRowResponse {
	out := make([]AnalysisRowResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, AnalysisRowResponse{
			DocDate:         row.DocDate.Format(DateLayout),
			ItemCode:        row.ItemCode,
			ItemName:        row.ItemName,
			UnitCode:        row.UnitCode,
			BalanceQtyStart: row.BalanceQtyStart,
			SaleQty:         row.SaleQty,
			BalanceQty:      row.BalanceQty,
			BalanceQtyCmp:   row.BalanceQtyCmp,
		})
	}
	return out
}
