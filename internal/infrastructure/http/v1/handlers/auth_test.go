package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"odgpos/internal/core/apperror"
	"odgpos/internal/domain/auth"
	"odgpos/internal/infrastructure/http/v1/middleware"
)

type memAuthRepo struct {
	records map[string]*auth.Record
}

func (r *memAuthRepo) GetByCode(ctx context.Context, code string) (*auth.Record, error) {
	if rec, ok := r.records[code]; ok {
		return rec, nil
	}
	return nil, apperror.NewNotFound("operator", code)
}

func newAuthRouter(records map[string]*auth.Record) *gin.Engine {
	gin.SetMode(gin.TestMode)

	service := auth.NewService(&memAuthRepo{records: records}, auth.NewTokenIssuer("test-secret", time.Hour))
	handler := NewAuthHandler(NewBaseHandler(), service)

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.ErrorHandler())
	router.POST("/api/v1/auth/login", handler.Login)
	router.GET("/api/v1/protected", middleware.Auth(service), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func postLogin(t *testing.T, router *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestLogin_Success(t *testing.T) {
	router := newAuthRouter(map[string]*auth.Record{
		"U-01": {
			User:     auth.User{Code: "U-01", Name: "Somchai", WHCode: "1301", Shelf: "130101"},
			Password: "secret123",
		},
	})

	w := postLogin(t, router, map[string]string{"code": "U-01", "password": "secret123"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Token   string `json:"token"`
		User    struct {
			Code   string `json:"code"`
			Name   string `json:"name_1"`
			WHCode string `json:"ic_wht"`
			Shelf  string `json:"ic_shelf"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Login successful", resp.Message)
	assert.Equal(t, "U-01", resp.User.Code)
	assert.Equal(t, "1301", resp.User.WHCode)
	assert.NotEmpty(t, resp.Token)

	// The issued token opens the protected route.
	pw := httptest.NewRecorder()
	preq := httptest.NewRequest(http.MethodGet, "/api/v1/protected", nil)
	preq.Header.Set("Authorization", "Bearer "+resp.Token)
	router.ServeHTTP(pw, preq)
	assert.Equal(t, http.StatusOK, pw.Code)
}

func TestLogin_BadCredentials(t *testing.T) {
	router := newAuthRouter(map[string]*auth.Record{
		"U-01": {User: auth.User{Code: "U-01"}, Password: "secret123"},
	})

	w := postLogin(t, router, map[string]string{"code": "U-01", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid credentials")
}

func TestProtected_RequiresToken(t *testing.T) {
	router := newAuthRouter(map[string]*auth.Record{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/protected", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
