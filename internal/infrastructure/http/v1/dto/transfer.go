package dto

import (
	"github.com/shopspring/decimal"

	"odgpos/internal/domain/transfer"
)

// --- Request DTOs ---

type CreateTransferRequest struct {
	TransferNo   string               `json:"transfer_no" binding:"required"`
	Creator      string               `json:"creator" binding:"required"`
	WHFrom       string               `json:"wh_from" binding:"required"`
	LocationFrom string               `json:"location_from"`
	WHTo         string               `json:"wh_to" binding:"required"`
	LocationTo   string               `json:"location_to"`
	Details      []TransferDetailItem `json:"details" binding:"required,min=1,dive"`
}

type TransferDetailItem struct {
	ItemCode   string          `json:"item_code" binding:"required"`
	ItemName   string          `json:"item_name"`
	UnitCode   string          `json:"unit_code"`
	Quantity   decimal.Decimal `json:"quantity"`
	WHCode     string          `json:"wh_code"`
	ShelfCode  string          `json:"shelf_code"`
	WHCode2    string          `json:"wh_code_2"`
	ShelfCode2 string          `json:"shelf_code_2"`
}

// ToModel converts the wire request to the domain request.
func (r *CreateTransferRequest) ToModel() *transfer.CreateRequest {
	details := make([]transfer.Line, 0, len(r.Details))
	for _, d := range r.Details {
		details = append(details, transfer.Line{
			ItemCode:   d.ItemCode,
			ItemName:   d.ItemName,
			UnitCode:   d.UnitCode,
			Qty:        d.Quantity,
			WHCode:     d.WHCode,
			ShelfCode:  d.ShelfCode,
			WHCode2:    d.WHCode2,
			ShelfCode2: d.ShelfCode2,
		})
	}

	return &transfer.CreateRequest{
		TransferNo:   r.TransferNo,
		Creator:      r.Creator,
		WHFrom:       r.WHFrom,
		LocationFrom: r.LocationFrom,
		WHTo:         r.WHTo,
		LocationTo:   r.LocationTo,
		Details:      details,
	}
}

type UpdateTransferRequest struct {
	WHFrom       string `json:"wh_from" binding:"required"`
	LocationFrom string `json:"location_from"`
	WHTo         string `json:"wh_to" binding:"required"`
	LocationTo   string `json:"location_to"`
}

// ToModel converts the wire request to the domain update.
func (r *UpdateTransferRequest) ToModel() *transfer.LocationUpdate {
	return &transfer.LocationUpdate{
		WHFrom:       r.WHFrom,
		LocationFrom: r.LocationFrom,
		WHTo:         r.WHTo,
		LocationTo:   r.LocationTo,
	}
}

// --- Response DTOs ---

type TransferNoResponse struct {
	TransferNo string `json:"transfer_no"`
}

type CreateTransferResponse struct {
	TransferNo  string          `json:"transfer_no"`
	ID          string          `json:"id"`
	Creator     string          `json:"creator"`
	Quantity    decimal.Decimal `json:"quantity"`
	DocDateTime string          `json:"doc_date_time"`
}

// NewCreateTransferResponse converts a confirmation to the wire response.
func NewCreateTransferResponse(conf *transfer.Confirmation) CreateTransferResponse {
	return CreateTransferResponse{
		TransferNo:  conf.TransferNo,
		ID:          conf.TransferNo,
		Creator:     conf.Creator,
		Quantity:    conf.Quantity,
		DocDateTime: conf.DocDateTime,
	}
}

type TransferSummaryResponse struct {
	DocDate          string          `json:"doc_date"`
	TransferNo       string          `json:"transfer_no"`
	ID               string          `json:"id"`
	CreatorCode      string          `json:"creator_code"`
	CreatorName      string          `json:"creator_name"`
	Quantity         decimal.Decimal `json:"quantity"`
	StatusName       string          `json:"status_name"`
	DocDateTime      string          `json:"doc_date_time"`
	WHFrom           string          `json:"wh_from"`
	WHFromName       string          `json:"wh_from_name"`
	WHTo             string          `json:"wh_to"`
	WHToName         string          `json:"wh_to_name"`
	LocationFrom     string          `json:"location_from"`
	LocationFromName string          `json:"location_from_name"`
	LocationTo       string          `json:"location_to"`
	LocationToName   string          `json:"location_to_name"`
}

// NewTransferSummaryResponse converts a summary to the wire response.
func NewTransferSummaryResponse(s *transfer.Summary) TransferSummaryResponse {
	return TransferSummaryResponse{
		DocDate:          s.DocDate.Format(DateLayout),
		TransferNo:       s.TransferNo,
		ID:               s.TransferNo,
		CreatorCode:      s.CreatorCode,
		CreatorName:      s.CreatorName,
		Quantity:         s.Quantity,
		StatusName:       s.StatusName,
		DocDateTime:      s.DocDateTime,
		WHFrom:           s.WHFrom,
		WHFromName:       s.WHFromName,
		WHTo:             s.WHTo,
		WHToName:         s.WHToName,
		LocationFrom:     s.LocationFrom,
		LocationFromName: s.LocationFromName,
		LocationTo:       s.LocationTo,
		LocationToName:   s.LocationToName,
	}
}

// NewTransferListResponse converts summaries to wire responses.
func NewTransferListResponse(summaries []transfer.Summary) []TransferSummaryResponse {
	out := make([]TransferSummaryResponse, 0, len(summaries))
	for i := range summaries {
		out = append(out, NewTransferSummaryResponse(&summaries[i]))
	}
	return out
}

type TransferViewResponse struct {
	TransferSummaryResponse
	Details []TransferDetailItem `json:"details"`
}

// NewTransferViewResponse converts a full view to the wire response.
func NewTransferViewResponse(v *transfer.View) TransferViewResponse {
	details := make([]TransferDetailItem, 0, len(v.Details))
	for _, d := range v.Details {
		details = append(details, TransferDetailItem{
			ItemCode:   d.ItemCode,
			ItemName:   d.ItemName,
			UnitCode:   d.UnitCode,
			Quantity:   d.Qty,
			WHCode:     d.WHCode,
			ShelfCode:  d.ShelfCode,
			WHCode2:    d.WHCode2,
			ShelfCode2: d.ShelfCode2,
		})
	}
	return TransferViewResponse{
		TransferSummaryResponse: NewTransferSummaryResponse(&v.Summary),
		Details:                 details,
	}
}
