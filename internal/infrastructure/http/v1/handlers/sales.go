package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"odgpos/internal/domain/sales"
	"odgpos/internal/infrastructure/http/v1/dto"
)

// SalesHandler handles sales analysis requests.
type SalesHandler struct {
	*BaseHandler
	service *sales.Service
}

// NewSalesHandler creates a new sales handler.
func NewSalesHandler(base *BaseHandler, service *sales.Service) *SalesHandler {
	return &SalesHandler{BaseHandler: base, service: service}
}

// Analysis returns per-item balances and sales for a date.
// GET /api/v1/sales/analysis
func (h *SalesHandler) Analysis(c *gin.Context) {
	var req dto.AnalysisRequest
	if !h.BindQuery(c, &req) {
		return
	}

	query, err := req.ToModel()
	if err != nil {
		h.Error(c, err)
		return
	}

	rows, err := h.service.Analysis(c.Request.Context(), query)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAnalysisListResponse(rows))
}
