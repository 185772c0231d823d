package dto

import (
	"github.com/shopspring/decimal"

	"odgpos/internal/domain/catalog"
)

// --- Query DTOs ---

type StockScopeQuery struct {
	WHCode  string `form:"whcode"`
	LocCode string `form:"loccode"`
}

// ToModel converts the query parameters to a domain scope.
func (q *StockScopeQuery) ToModel() catalog.StockScope {
	return catalog.StockScope{WHCode: q.WHCode, LocCode: q.LocCode}
}

type ProductListQuery struct {
	StockScopeQuery
	Category string `form:"category"`
	Search   string `form:"search"`
	Limit    int    `form:"limit"`
	Offset   int    `form:"offset"`
}

// ToModel converts the query parameters to a domain query.
func (q *ProductListQuery) ToModel() catalog.ProductQuery {
	return catalog.ProductQuery{
		StockScope: q.StockScopeQuery.ToModel(),
		Category:   q.Category,
		Search:     q.Search,
		Limit:      q.Limit,
		Offset:     q.Offset,
	}
}

type CheckPriceQuery struct {
	StockScopeQuery
	Search string `form:"search"`
}

// ToModel converts the query parameters to a domain query.
func (q *CheckPriceQuery) ToModel() catalog.PriceCheckQuery {
	return catalog.PriceCheckQuery{
		StockScope: q.StockScopeQuery.ToModel(),
		Search:     q.Search,
	}
}

// --- Response DTOs ---

type CategoryResponse struct {
	Name  string `json:"name_1"`
	Count int    `json:"count"`
}

type ProductResponse struct {
	ItemCode string          `json:"item_code"`
	ItemName string          `json:"item_name"`
	UnitCode string          `json:"unit_code"`
	Price    decimal.Decimal `json:"price"`
	StockQty decimal.Decimal `json:"stock_quantity"`
	ImageURL string          `json:"url_image"`
}

type PriceCheckResponse struct {
	ItemCode string          `json:"item_code"`
	ItemName string          `json:"item_name"`
	UnitCode string          `json:"unit_code"`
	StockQty decimal.Decimal `json:"stock_quantity"`
	Barcode  string          `json:"barcode"`
	Price    decimal.Decimal `json:"price"`
	ImageURL string          `json:"url_image"`
}

type CodeNameResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// NewCategoryListResponse converts categories to wire responses.
func NewCategoryListResponse(categories []catalog.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, CategoryResponse{Name: c.Name, Count: c.Count})
	}
	return out
}

// NewProductListResponse converts products to wire responses.
func NewProductListResponse(products []catalog.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, ProductResponse{
			ItemCode: p.ItemCode,
			ItemName: p.ItemName,
			UnitCode: p.UnitCode,
			Price:    p.Price,
			StockQty: p.StockQty,
			ImageURL: p.ImageURL,
		})
	}
	return out
}

// NewPriceCheckListResponse converts price checks to wire responses.
func NewPriceCheckListResponse(results []catalog.PriceCheck) []PriceCheckResponse {
	out := make([]PriceCheckResponse, 0, len(results))
	for _, r := range results {
		out = append(out, PriceCheckResponse{
			ItemCode: r.ItemCode,
			ItemName: r.ItemName,
			UnitCode: r.UnitCode,
			StockQty: r.StockQty,
			Barcode:  r.Barcode,
			Price:    r.Price,
			ImageURL: r.ImageURL,
		})
	}
	return out
}

// NewWarehouseListResponse converts warehouses to wire responses.
func NewWarehouseListResponse(warehouses []catalog.Warehouse) []CodeNameResponse {
	out := make([]CodeNameResponse, 0, len(warehouses))
	for _, w := range warehouses {
		out = append(out, CodeNameResponse{Code: w.Code, Name: w.Name})
	}
	return out
}

// NewLocationListResponse converts locations to wire responses.
func NewLocationListResponse(locations []catalog.Location) []CodeNameResponse {
	out := make([]CodeNameResponse, 0, len(locations))
	for _, l := range locations {
		out = append(out, CodeNameResponse{Code: l.Code, Name: l.Name})
	}
	return out
}

// NewCustomerListResponse converts customers to wire responses.
func NewCustomerListResponse(customers []catalog.Customer) []CodeNameResponse {
	out := make([]CodeNameResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, CodeNameResponse{Code: c.Code, Name: c.Name})
	}
	return out
}
