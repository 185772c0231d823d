package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"odgpos/internal/domain/billing"
	"odgpos/internal/infrastructure/http/v1/dto"
	"odgpos/pkg/numerator"
)

// BillingHandler handles POS billing requests.
type BillingHandler struct {
	*BaseHandler
	service *billing.Service
	numbers *numerator.Service
}

// NewBillingHandler creates a new billing handler.
func NewBillingHandler(base *BaseHandler, service *billing.Service, numbers *numerator.Service) *BillingHandler {
	return &BillingHandler{
		BaseHandler: base,
		service:     service,
		numbers:     numbers,
	}
}

// Create posts one checkout.
// POST /api/v1/pos/billing
func (h *BillingHandler) Create(c *gin.Context) {
	var req dto.BillingRequest
	if !h.BindJSON(c, &req) {
		return
	}

	model, err := req.ToModel()
	if err != nil {
		h.Error(c, err)
		return
	}

	// Fall back to the authenticated operator when the request omits one.
	if model.UserCode == "" {
		model.UserCode = h.GetUserCode(c)
	}

	conf, err := h.service.Compose(c.Request.Context(), model)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBillingResponse(conf))
}

// NextDocNo generates the next POS document number.
// GET /api/v1/pos/docno
func (h *BillingHandler) NextDocNo(c *gin.Context) {
	docNo, err := h.numbers.Next(c.Request.Context(), numerator.PrefixPOS, time.Now())
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DocNoResponse{DocNo: docNo})
}
