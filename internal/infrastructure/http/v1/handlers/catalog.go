package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"odgpos/internal/domain/catalog"
	"odgpos/internal/infrastructure/http/v1/dto"
)

// CatalogHandler handles catalog lookup requests.
type CatalogHandler struct {
	*BaseHandler
	service *catalog.Service
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(base *BaseHandler, service *catalog.Service) *CatalogHandler {
	return &CatalogHandler{BaseHandler: base, service: service}
}

// Categories returns in-stock category counts.
// GET /api/v1/catalog/categories
func (h *CatalogHandler) Categories(c *gin.Context) {
	var query dto.StockScopeQuery
	if !h.BindQuery(c, &query) {
		return
	}

	categories, err := h.service.Categories(c.Request.Context(), query.ToModel())
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(dto.NewCategoryListResponse(categories)))
}

// Products returns a page of in-stock products.
// GET /api/v1/catalog/products
func (h *CatalogHandler) Products(c *gin.Context) {
	var query dto.ProductListQuery
	if !h.BindQuery(c, &query) {
		return
	}

	products, err := h.service.Products(c.Request.Context(), query.ToModel())
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(dto.NewProductListResponse(products)))
}

// CheckPrice resolves one product by barcode or fragment.
// GET /api/v1/catalog/check-price
func (h *CatalogHandler) CheckPrice(c *gin.Context) {
	var query dto.CheckPriceQuery
	if !h.BindQuery(c, &query) {
		return
	}

	results, err := h.service.CheckPrice(c.Request.Context(), query.ToModel())
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPriceCheckListResponse(results))
}

// Warehouses returns all warehouses.
// GET /api/v1/catalog/warehouses
func (h *CatalogHandler) Warehouses(c *gin.Context) {
	warehouses, err := h.service.Warehouses(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(dto.NewWarehouseListResponse(warehouses)))
}

// Locations returns the shelf locations of a warehouse.
// GET /api/v1/catalog/warehouses/:code/locations
func (h *CatalogHandler) Locations(c *gin.Context) {
	locations, err := h.service.Locations(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(dto.NewLocationListResponse(locations)))
}

// Customers returns all customers.
// GET /api/v1/catalog/customers
func (h *CatalogHandler) Customers(c *gin.Context) {
	customers, err := h.service.Customers(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(dto.NewCustomerListResponse(customers)))
}

// Units returns the distinct base unit codes.
// GET /api/v1/catalog/units
func (h *CatalogHandler) Units(c *gin.Context) {
	units, err := h.service.Units(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(units))
}
