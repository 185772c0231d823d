// Package transfer provides warehouse-to-warehouse stock transfers. Transfers
// share the ic_trans tables with POS sales and are distinguished by
// trans_flag 124 and doc_format_code 'FR'.
package transfer

import (
	"context"
	"time"

	"odgpos/internal/core/apperror"
	"odgpos/internal/core/types"
)

const (
	TransType         = 3
	TransFlagTransfer = 124

	DocFormatTransfer = "FR"

	DefaultBranchCode = "00"
)

// StatusName maps doc_success to the operator-facing Lao status label.
func StatusName(docSuccess int) string {
	switch docSuccess {
	case 0:
		return "ລໍຖ້າໂອນ"
	case 1:
		return "ໂອນສຳເລັດ"
	default:
		return ""
	}
}

// CreateRequest is one transfer document as submitted by the frontend.
type CreateRequest struct {
	TransferNo   string
	Creator      string
	WHFrom       string
	LocationFrom string
	WHTo         string
	LocationTo   string
	Details      []Line
}

// Line is one transferred item.
type Line struct {
	ItemCode   string
	ItemName   string
	UnitCode   string
	Qty        types.Money
	WHCode     string
	ShelfCode  string
	WHCode2    string
	ShelfCode2 string
}

// Validate checks presence of required fields.
func (r *CreateRequest) Validate(ctx context.Context) error {
	if r.TransferNo == "" {
		return apperror.NewValidation("transfer_no is required").WithDetail("field", "transfer_no")
	}
	if r.Creator == "" {
		return apperror.NewValidation("creator is required").WithDetail("field", "creator")
	}
	if r.WHFrom == "" || r.WHTo == "" {
		return apperror.NewValidation("wh_from and wh_to are required").WithDetail("field", "wh_from/wh_to")
	}
	if len(r.Details) == 0 {
		return apperror.NewValidation("at least one detail line is required").WithDetail("field", "details")
	}
	for i, d := range r.Details {
		if d.ItemCode == "" {
			return apperror.NewValidation("item_code is required").
				WithDetail("field", "details").
				WithDetail("line", i+1)
		}
		if !d.Qty.IsPositive() {
			return apperror.NewValidation("qty must be positive").
				WithDetail("field", "details").
				WithDetail("line", i+1)
		}
	}
	return nil
}

// Header is the ic_trans row for a transfer document.
type Header struct {
	TransType     int       `db:"trans_type"`
	TransFlag     int       `db:"trans_flag"`
	DocDate       time.Time `db:"doc_date"`
	DocNo         string    `db:"doc_no"`
	DocRef        string    `db:"doc_ref"`
	DocFormatCode string    `db:"doc_format_code"`
	BranchCode    string    `db:"branch_code"`
	SaleCode      string    `db:"sale_code"`
	Remark        string    `db:"remark"`
	WHFrom        string    `db:"wh_from"`
	LocationFrom  string    `db:"location_from"`
	WHTo          string    `db:"wh_to"`
	LocationTo    string    `db:"location_to"`
	CreatorCode   string    `db:"creator_code"`
}

// Detail is one ic_trans_detail row for a transfer. stand_value and
// divide_value are always 1 for transfers.
type Detail struct {
	TransType  int         `db:"trans_type"`
	TransFlag  int         `db:"trans_flag"`
	DocDate    time.Time   `db:"doc_date"`
	DocNo      string      `db:"doc_no"`
	ItemCode   string      `db:"item_code"`
	ItemName   string      `db:"item_name"`
	UnitCode   string      `db:"unit_code"`
	Qty        types.Money `db:"qty"`
	BranchCode string      `db:"branch_code"`
	WHCode     string      `db:"wh_code"`
	ShelfCode  string      `db:"shelf_code"`
	WHCode2    string      `db:"wh_code_2"`
	ShelfCode2 string      `db:"shelf_code_2"`
	SaleCode   string      `db:"sale_code"`
}

// Summary is one transfer as it appears in list views, with resolved
// warehouse, location and creator names.
type Summary struct {
	DocDate          time.Time   `db:"doc_date"`
	TransferNo       string      `db:"transfer_no"`
	CreatorCode      string      `db:"creator_code"`
	CreatorName      string      `db:"creator_name"`
	Quantity         types.Money `db:"quantity"`
	StatusName       string      `db:"status_name"`
	DocDateTime      string      `db:"doc_date_time"`
	WHFrom           string      `db:"wh_from"`
	WHFromName       string      `db:"wh_from_name"`
	WHTo             string      `db:"wh_to"`
	WHToName         string      `db:"wh_to_name"`
	LocationFrom     string      `db:"location_from"`
	LocationFromName string      `db:"location_from_name"`
	LocationTo       string      `db:"location_to"`
	LocationToName   string      `db:"location_to_name"`
}

// View is the full transfer detail page: summary plus lines.
type View struct {
	Summary
	Details []Line
}

// LocationUpdate moves an existing transfer between warehouses/locations.
type LocationUpdate struct {
	WHFrom       string
	LocationFrom string
	WHTo         string
	LocationTo   string
}

// Validate checks presence of required fields.
func (u *LocationUpdate) Validate(ctx context.Context) error {
	if u.WHFrom == "" || u.WHTo == "" {
		return apperror.NewValidation("wh_from and wh_to are required").WithDetail("field", "wh_from/wh_to")
	}
	return nil
}

// Confirmation is the caller-visible result of a committed transfer.
type Confirmation struct {
	TransferNo  string
	Creator     string
	Quantity    types.Money
	DocDateTime string
}
