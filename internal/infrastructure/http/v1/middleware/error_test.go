package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"odgpos/internal/core/apperror"
)

func newTestRouter(handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Recovery())
	router.Use(Trace())
	router.Use(ErrorHandler())
	router.GET("/test", handler)
	return router
}

func doRequest(router *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	router.ServeHTTP(w, req)
	return w
}

func TestErrorHandler_AppError(t *testing.T) {
	router := newTestRouter(func(c *gin.Context) {
		_ = c.Error(apperror.NewValidation("doc_no is required").WithDetail("field", "doc_no"))
		c.Abort()
	})

	w := doRequest(router)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), apperror.CodeValidation)
	assert.Contains(t, w.Body.String(), "doc_no is required")
}

func TestErrorHandler_FailureEnvelope(t *testing.T) {
	router := newTestRouter(func(c *gin.Context) {
		_ = c.Error(apperror.NewDuplicate("posting", "doc_no", "POS26010001"))
		c.Abort()
	})

	w := doRequest(router)

	var body struct {
		Success *bool  `json:"success"`
		Error   string `json:"error"`
		Code    string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotNil(t, body.Success, "failure body must carry an explicit success key")
	assert.False(t, *body.Success)
	assert.NotEmpty(t, body.Error)
	assert.Equal(t, apperror.CodeDuplicate, body.Code)
}

func TestErrorHandler_UnavailableMapsTo503(t *testing.T) {
	router := newTestRouter(func(c *gin.Context) {
		_ = c.Error(apperror.NewUnavailable(errors.New("dial tcp 10.0.0.9:5432: connect: connection refused")))
		c.Abort()
	})

	w := doRequest(router)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), apperror.CodeUnavailable)
	assert.NotContains(t, w.Body.String(), "dial tcp", "connection details must not leak")
}

func TestErrorHandler_DuplicateMapsTo409(t *testing.T) {
	router := newTestRouter(func(c *gin.Context) {
		_ = c.Error(apperror.NewDuplicate("posting", "doc_no", "POS26010001"))
		c.Abort()
	})

	w := doRequest(router)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), apperror.CodeDuplicate)
}

func TestErrorHandler_UnknownErrorHidden(t *testing.T) {
	router := newTestRouter(func(c *gin.Context) {
		_ = c.Error(errors.New("pq: connection reset by peer"))
		c.Abort()
	})

	w := doRequest(router)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error")
	assert.Contains(t, w.Body.String(), `"success":false`)
	assert.NotContains(t, w.Body.String(), "connection reset", "internal details must not leak")
}

func TestErrorHandler_NoErrorPassesThrough(t *testing.T) {
	router := newTestRouter(func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := doRequest(router)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRecovery_PanicBecomes500(t *testing.T) {
	router := newTestRouter(func(c *gin.Context) {
		panic("boom")
	})

	w := doRequest(router)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "boom")
}

func TestTrace_GeneratesAndEchoesIDs(t *testing.T) {
	router := newTestRouter(func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	router.ServeHTTP(w, req)
	assert.NotEmpty(t, w.Header().Get(HeaderRequestID))
	assert.NotEmpty(t, w.Header().Get(HeaderTraceID))

	// Supplied IDs are preserved.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(HeaderRequestID, "req-123")
	req.Header.Set(HeaderTraceID, "trace-456")
	router.ServeHTTP(w, req)
	require.Equal(t, "req-123", w.Header().Get(HeaderRequestID))
	require.Equal(t, "trace-456", w.Header().Get(HeaderTraceID))
}
