// Package dto provides Data Transfer Objects for API requests/responses.
// Field names follow the POS frontend's snake_case wire format.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"odgpos/internal/core/apperror"
	"odgpos/internal/domain/billing"
)

// DateLayout is the wire format for document dates.
const DateLayout = "2006-01-02"

// --- Request DTOs ---

type BillingRequest struct {
	DocNo         string            `json:"doc_no" binding:"required"`
	DocDate       string            `json:"doc_date" binding:"required"`
	CustCode      string            `json:"cust_code"`
	TotalAmount   decimal.Decimal   `json:"total_amount"`
	Items         []BillingItem     `json:"items" binding:"required,min=1,dive"`
	UserCode      string            `json:"user_code"`
	WHCode        string            `json:"wh_code"`
	ShelfCode     string            `json:"shelf_code"`
	BranchCode    string            `json:"branch_code"`
	PaymentMethod string            `json:"payment_method"`
	Remark        string            `json:"remark"`
}

type BillingItem struct {
	ItemCode string          `json:"item_code" binding:"required"`
	ItemName string          `json:"item_name"`
	UnitCode string          `json:"unit_code"`
	Qty      decimal.Decimal `json:"qty"`
	Price    decimal.Decimal `json:"price"`
	Amount   decimal.Decimal `json:"amount"`
}

// ToModel converts the wire request to the domain request.
func (r *BillingRequest) ToModel() (*billing.BillingRequest, error) {
	docDate, err := time.Parse(DateLayout, r.DocDate)
	if err != nil {
		return nil, apperror.NewValidation("doc_date must be YYYY-MM-DD").
			WithDetail("field", "doc_date").
			WithDetail("value", r.DocDate)
	}

	items := make([]billing.LineItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, billing.LineItem{
			ItemCode: item.ItemCode,
			ItemName: item.ItemName,
			UnitCode: item.UnitCode,
			Qty:      item.Qty,
			Price:    item.Price,
			Amount:   item.Amount,
		})
	}

	return &billing.BillingRequest{
		DocNo:        r.DocNo,
		DocDate:      docDate,
		CustomerCode: r.CustCode,
		TotalAmount:  r.TotalAmount,
		Items:        items,
		UserCode:     r.UserCode,
		WHCode:       r.WHCode,
		ShelfCode:    r.ShelfCode,
		BranchCode:   r.BranchCode,
		Payment:      billing.ParsePaymentMethod(r.PaymentMethod),
		Remark:       r.Remark,
	}, nil
}

// --- Response DTOs ---

type BillingResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	DocNo        string `json:"doc_no"`
	RateFallback bool   `json:"rate_fallback"`
}

// NewBillingResponse converts a confirmation to the wire response.
func NewBillingResponse(conf *billing.Confirmation) BillingResponse {
	return BillingResponse{
		Success:      true,
		Message:      conf.Message,
		DocNo:        conf.DocNo,
		RateFallback: conf.RateFallback,
	}
}

type DocNoResponse struct {
	DocNo string `json:"doc_no"`
}
