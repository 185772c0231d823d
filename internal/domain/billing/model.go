// Package billing provides the POS billing transaction composer.
// One BillingRequest becomes five rows across the ERP's inventory and
// cash-book tables, written atomically.
package billing

import (
	"context"
	"time"

	"odgpos/internal/core/apperror"
	"odgpos/internal/core/types"
)

// PaymentMethod selects which cash-book bucket receives the settled amount.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentTransfer PaymentMethod = "transfer"
	PaymentCard     PaymentMethod = "card"
)

// ParsePaymentMethod maps a request string to a PaymentMethod,
// defaulting to cash.
func ParsePaymentMethod(s string) PaymentMethod {
	switch PaymentMethod(s) {
	case PaymentTransfer:
		return PaymentTransfer
	case PaymentCard:
		return PaymentCard
	default:
		return PaymentCash
	}
}

// BillingRequest is one checkout. It is constructed entirely from the
// incoming call and lives only for the duration of the transactional scope.
type BillingRequest struct {
	DocNo        string
	DocDate      time.Time
	CustomerCode string
	TotalAmount  types.Money // LAK
	Items        []LineItem
	UserCode     string
	WHCode       string
	ShelfCode    string
	BranchCode   string
	Payment      PaymentMethod
	Remark       string
}

// LineItem is a caller-supplied sale line. Amount is trusted as sent;
// this layer does not recompute price * qty.
type LineItem struct {
	ItemCode string
	ItemName string
	UnitCode string
	Qty      types.Money
	Price    types.Money // LAK per unit
	Amount   types.Money // LAK
}

// ApplyDefaults fills the optional positional fields.
func (r *BillingRequest) ApplyDefaults() {
	if r.UserCode == "" {
		r.UserCode = DefaultUserCode
	}
	if r.WHCode == "" {
		r.WHCode = DefaultWHCode
	}
	if r.ShelfCode == "" {
		r.ShelfCode = DefaultShelfCode
	}
	if r.BranchCode == "" {
		r.BranchCode = DefaultBranchCode
	}
	if r.Payment == "" {
		r.Payment = PaymentCash
	}
}

// Validate checks presence of required fields. Amount-consistency checks
// (price * qty == amount) are deliberately not performed here.
func (r *BillingRequest) Validate(ctx context.Context) error {
	if r.DocNo == "" {
		return apperror.NewValidation("doc_no is required").WithDetail("field", "doc_no")
	}
	if r.DocDate.IsZero() {
		return apperror.NewValidation("doc_date is required").WithDetail("field", "doc_date")
	}
	if len(r.Items) == 0 {
		return apperror.NewValidation("at least one item is required").WithDetail("field", "items")
	}
	for i, item := range r.Items {
		if item.ItemCode == "" {
			return apperror.NewValidation("item_code is required").
				WithDetail("field", "items").
				WithDetail("line", i+1)
		}
		if item.Qty.IsNegative() {
			return apperror.NewValidation("qty must not be negative").
				WithDetail("field", "items").
				WithDetail("line", i+1)
		}
	}
	return nil
}

// OperatorAttributes are the organizational codes resolved for the operator.
// An absent operator row yields empty-string defaults, not an error.
type OperatorAttributes struct {
	SideCode       string
	DepartmentCode string
}

// --- Persisted posting shapes ---

// TransHeader is the ic_trans header row for a POS sale.
type TransHeader struct {
	TransType       int         `db:"trans_type"`
	TransFlag       int         `db:"trans_flag"`
	DocDate         time.Time   `db:"doc_date"`
	DocNo           string      `db:"doc_no"`
	DocFormatCode   string      `db:"doc_format_code"`
	BranchCode      string      `db:"branch_code"`
	ProjectCode     string      `db:"project_code"`
	SideCode        string      `db:"side_code"`
	DepartmentCode  string      `db:"department_code"`
	SaleCode        string      `db:"sale_code"`
	CustCode        string      `db:"cust_code"`
	TotalAmount     types.Money `db:"total_amount"`      // LAK, 2 dp
	TotalAmountBaht types.Money `db:"total_amount_baht"` // 2 dp
	ExchangeRate    types.Money `db:"exchange_rate"`
	Remark          string      `db:"remark"`
	CreatorCode     string      `db:"creator_code"`
}

// TransDetail is one ic_trans_detail row. Both LAK and Baht views of price
// and amount are persisted, plus the per-line cost figures.
type TransDetail struct {
	TransType     int         `db:"trans_type"`
	TransFlag     int         `db:"trans_flag"`
	DocDate       time.Time   `db:"doc_date"`
	DocNo         string      `db:"doc_no"`
	LineNumber    int         `db:"line_number"` // 1-based request order
	ItemCode      string      `db:"item_code"`
	ItemName      string      `db:"item_name"`
	UnitCode      string      `db:"unit_code"`
	Qty           types.Money `db:"qty"`
	Price         types.Money `db:"price"`      // LAK
	PriceBaht     types.Money `db:"price_baht"` // 2 dp
	SumAmount     types.Money `db:"sum_amount"` // LAK, 2 dp
	SumAmountBaht types.Money `db:"sum_amount_baht"`
	AverageCost   types.Money `db:"average_cost"`
	SumOfCost     types.Money `db:"sum_of_cost"`   // 4 dp
	SumOfCost2    types.Money `db:"sum_of_cost_2"` // populated identically
	WHCode        string      `db:"wh_code"`
	ShelfCode     string      `db:"shelf_code"`
	BranchCode    string      `db:"branch_code"`
	SaleCode      string      `db:"sale_code"`
	CreatorCode   string      `db:"creator_code"`
}

// Shipment is the ic_trans_shipment row linking the document to a customer.
type Shipment struct {
	DocNo    string    `db:"doc_no"`
	DocDate  time.Time `db:"doc_date"`
	CustCode string    `db:"cust_code"`
}

// CashBook is the cb_trans header. Exactly one of the three amount buckets
// carries the Baht-equivalent total; the others are zero.
type CashBook struct {
	DocDate         time.Time   `db:"doc_date"`
	DocNo           string      `db:"doc_no"`
	BranchCode      string      `db:"branch_code"`
	PayType         string      `db:"pay_type"`
	TotalAmount     types.Money `db:"total_amount"` // LAK
	TotalAmountBaht types.Money `db:"total_amount_baht"`
	ExchangeRate    types.Money `db:"exchange_rate"`
	CashAmount      types.Money `db:"amount_cash"`     // Baht
	TransferAmount  types.Money `db:"amount_transfer"` // Baht
	CardAmount      types.Money `db:"amount_card"`     // Baht
	CreatorCode     string      `db:"creator_code"`
}

// CashBookDetail is the cb_trans_detail settlement row. trans_number and
// doc_type are payment-method-dependent lookup codes.
type CashBookDetail struct {
	DocDate    time.Time   `db:"doc_date"`
	DocNo      string      `db:"doc_no"`
	LineNumber int         `db:"line_number"`
	TransNum   string      `db:"trans_number"`
	DocType    int         `db:"doc_type"`
	BankCode   string      `db:"bank_code"`
	BankBranch string      `db:"bank_branch"`
	Amount     types.Money `db:"amount"` // LAK
	AmountBaht types.Money `db:"amount_baht"`
}

// Posting is the full set of rows one BillingRequest produces. It is never
// persisted as a unit; repositories write each part in order.
type Posting struct {
	Header         TransHeader
	Details        []TransDetail
	Shipment       Shipment
	CashBook       CashBook
	CashBookDetail CashBookDetail
}

// Confirmation is the caller-visible result of a committed posting.
type Confirmation struct {
	DocNo        string
	Message      string
	RateFallback bool
}
