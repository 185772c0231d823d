package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"odgpos/internal/core/apperror"
	"odgpos/internal/core/types"
	"odgpos/internal/domain/billing"
	"odgpos/internal/infrastructure/http/v1/middleware"
)

// --- Fakes for the billing service dependencies ---

type memTxManager struct{}

func (m *memTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type memBillingRepo struct {
	existing map[string]bool
	header   *billing.TransHeader
}

func (r *memBillingRepo) HeaderExists(ctx context.Context, docNo string) (bool, error) {
	return r.existing[docNo], nil
}

func (r *memBillingRepo) InsertHeader(ctx context.Context, header *billing.TransHeader) error {
	r.header = header
	return nil
}

func (r *memBillingRepo) InsertDetails(ctx context.Context, details []billing.TransDetail) error {
	return nil
}

func (r *memBillingRepo) InsertShipment(ctx context.Context, shipment *billing.Shipment) error {
	return nil
}

func (r *memBillingRepo) GetHeader(ctx context.Context, docNo string) (*billing.TransHeader, error) {
	if r.header == nil || r.header.DocNo != docNo {
		return nil, apperror.NewNotFound("posting header", docNo)
	}
	return r.header, nil
}

func (r *memBillingRepo) InsertCashBook(ctx context.Context, cb *billing.CashBook) error {
	return nil
}

func (r *memBillingRepo) InsertCashBookDetail(ctx context.Context, detail *billing.CashBookDetail) error {
	return nil
}

type memRates struct{ rate types.Money }

func (f *memRates) CurrentRate(ctx context.Context) (types.Money, error) { return f.rate, nil }

type memCosts struct{}

func (f *memCosts) AverageCost(ctx context.Context, itemCode string) (types.Money, error) {
	return types.Zero(), nil
}

type memUsers struct{}

func (f *memUsers) OperatorAttributes(ctx context.Context, userCode string) (billing.OperatorAttributes, error) {
	return billing.OperatorAttributes{}, nil
}

func newBillingRouter(repo *memBillingRepo, rate types.Money) *gin.Engine {
	gin.SetMode(gin.TestMode)

	service := billing.NewService(repo, &memRates{rate: rate}, &memCosts{}, &memUsers{}, &memTxManager{}, billing.DefaultConfig())
	handler := NewBillingHandler(NewBaseHandler(), service, nil)

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.ErrorHandler())
	router.POST("/api/v1/pos/billing", handler.Create)
	return router
}

func postBilling(t *testing.T, router *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/pos/billing", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func validPayload() map[string]any {
	return map[string]any{
		"doc_no":         "POS26010001",
		"doc_date":       "2026-01-15",
		"cust_code":      "C-001",
		"total_amount":   100000,
		"payment_method": "cash",
		"items": []map[string]any{
			{
				"item_code": "ITM-1",
				"item_name": "Bottled water",
				"unit_code": "BTL",
				"qty":       2,
				"price":     50000,
				"amount":    100000,
			},
		},
	}
}

func TestBillingCreate_Success(t *testing.T) {
	repo := &memBillingRepo{existing: map[string]bool{}}
	router := newBillingRouter(repo, types.MustMoney("0.0015673"))

	w := postBilling(t, router, validPayload())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Success      bool   `json:"success"`
		Message      string `json:"message"`
		DocNo        string `json:"doc_no"`
		RateFallback bool   `json:"rate_fallback"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "POS26010001", resp.DocNo)
	assert.Equal(t, "Transaction completed successfully", resp.Message)
	assert.False(t, resp.RateFallback)

	require.NotNil(t, repo.header)
	assert.True(t, repo.header.TotalAmountBaht.Equal(types.MustMoney("156.73")))
}

func TestBillingCreate_RateFallbackFlagged(t *testing.T) {
	repo := &memBillingRepo{existing: map[string]bool{}}
	router := newBillingRouter(repo, types.Zero())

	w := postBilling(t, router, validPayload())
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		RateFallback bool `json:"rate_fallback"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.RateFallback)
}

func TestBillingCreate_DuplicateDocNo(t *testing.T) {
	repo := &memBillingRepo{existing: map[string]bool{"POS26010001": true}}
	router := newBillingRouter(repo, types.MustMoney("0.0015673"))

	w := postBilling(t, router, validPayload())
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), apperror.CodeDuplicate)
}

func TestBillingCreate_BadDate(t *testing.T) {
	repo := &memBillingRepo{existing: map[string]bool{}}
	router := newBillingRouter(repo, types.MustMoney("0.0015673"))

	payload := validPayload()
	payload["doc_date"] = "15/01/2026"

	w := postBilling(t, router, payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), apperror.CodeValidation)
}

func TestBillingCreate_MissingItems(t *testing.T) {
	repo := &memBillingRepo{existing: map[string]bool{}}
	router := newBillingRouter(repo, types.MustMoney("0.0015673"))

	payload := validPayload()
	delete(payload, "items")

	w := postBilling(t, router, payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBillingCreate_MalformedJSON(t *testing.T) {
	repo := &memBillingRepo{existing: map[string]bool{}}
	router := newBillingRouter(repo, types.MustMoney("0.0015673"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/pos/billing", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
