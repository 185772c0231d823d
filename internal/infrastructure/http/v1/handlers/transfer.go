package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"odgpos/internal/core/apperror"
	"odgpos/internal/domain/transfer"
	"odgpos/internal/infrastructure/http/v1/dto"
)

// TransferHandler handles warehouse transfer requests.
type TransferHandler struct {
	*BaseHandler
	service *transfer.Service
}

// NewTransferHandler creates a new transfer handler.
func NewTransferHandler(base *BaseHandler, service *transfer.Service) *TransferHandler {
	return &TransferHandler{BaseHandler: base, service: service}
}

// NextNumber generates the next transfer number.
// GET /api/v1/transfers/number
func (h *TransferHandler) NextNumber(c *gin.Context) {
	num, err := h.service.NextNumber(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TransferNoResponse{TransferNo: num})
}

// Create writes a new transfer document.
// POST /api/v1/transfers
func (h *TransferHandler) Create(c *gin.Context) {
	var req dto.CreateTransferRequest
	if !h.BindJSON(c, &req) {
		return
	}

	conf, err := h.service.Create(c.Request.Context(), req.ToModel())
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewCreateTransferResponse(conf))
}

// List returns transfer summaries, optionally for one day.
// GET /api/v1/transfers?date=YYYY-MM-DD
func (h *TransferHandler) List(c *gin.Context) {
	var date *time.Time
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse(dto.DateLayout, raw)
		if err != nil {
			h.Error(c, apperror.NewValidation("date must be YYYY-MM-DD").
				WithDetail("field", "date").
				WithDetail("value", raw))
			return
		}
		date = &parsed
	}

	summaries, err := h.service.List(c.Request.Context(), date)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransferListResponse(summaries))
}

// Get returns one transfer with its detail lines.
// GET /api/v1/transfers/:id
func (h *TransferHandler) Get(c *gin.Context) {
	view, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransferViewResponse(view))
}

// Update rewrites the warehouse/location routing of a transfer.
// PUT /api/v1/transfers/:id
func (h *TransferHandler) Update(c *gin.Context) {
	var req dto.UpdateTransferRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.service.UpdateLocations(c.Request.Context(), c.Param("id"), req.ToModel()); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Transfer updated successfully"})
}
