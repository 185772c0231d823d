// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"odgpos/internal/domain/auth"
	"odgpos/internal/domain/billing"
	"odgpos/internal/domain/catalog"
	"odgpos/internal/domain/sales"
	"odgpos/internal/domain/transfer"
	"odgpos/internal/infrastructure/http/v1/handlers"
	"odgpos/internal/infrastructure/http/v1/middleware"
	"odgpos/internal/infrastructure/storage/postgres"
	"odgpos/internal/infrastructure/storage/postgres/auth_repo"
	"odgpos/internal/infrastructure/storage/postgres/billing_repo"
	"odgpos/internal/infrastructure/storage/postgres/catalog_repo"
	"odgpos/internal/infrastructure/storage/postgres/sales_repo"
	"odgpos/internal/infrastructure/storage/postgres/transfer_repo"
	"odgpos/pkg/logger"
	"odgpos/pkg/numerator"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	// Pool is the ERP store connection pool (for health checks).
	Pool *postgres.Pool

	// TxManager runs the posting transactions.
	TxManager *postgres.TxManager

	// Logger for request logging.
	Logger *logger.Logger

	// TokenIssuer signs and verifies access tokens.
	TokenIssuer *auth.TokenIssuer

	// BillingConfig carries the composer policy (fallback exchange rate).
	BillingConfig billing.Config

	// RequireAuth protects the POS endpoints with JWT when enabled.
	RequireAuth bool
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Repositories
	billingRepo := billing_repo.NewBillingRepo(cfg.TxManager)
	rateRepo := billing_repo.NewRateRepo(cfg.TxManager)
	costRepo := billing_repo.NewCostRepo(cfg.TxManager)
	operatorRepo := billing_repo.NewOperatorRepo(cfg.TxManager)
	transferRepo := transfer_repo.NewTransferRepo(cfg.TxManager)
	catalogRepo := catalog_repo.NewCatalogRepo(cfg.TxManager)
	salesRepo := sales_repo.NewSalesRepo(cfg.TxManager)
	authRepo := auth_repo.NewAuthRepo(cfg.TxManager)

	// Services
	numbers := numerator.New(cfg.Pool)
	billingService := billing.NewService(billingRepo, rateRepo, costRepo, operatorRepo, cfg.TxManager, cfg.BillingConfig)
	transferService := transfer.NewService(transferRepo, numbers, cfg.TxManager)
	catalogService := catalog.NewService(catalogRepo)
	salesService := sales.NewService(salesRepo)
	authService := auth.NewService(authRepo, cfg.TokenIssuer)

	// Handlers
	base := handlers.NewBaseHandler()
	billingHandler := handlers.NewBillingHandler(base, billingService, numbers)
	transferHandler := handlers.NewTransferHandler(base, transferService)
	catalogHandler := handlers.NewCatalogHandler(base, catalogService)
	salesHandler := handlers.NewSalesHandler(base, salesService)
	authHandler := handlers.NewAuthHandler(base, authService)
	healthHandler := handlers.NewHealthHandler(cfg.Pool)

	// Health endpoints (no auth)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	api := router.Group("/api/v1")

	// Auth endpoints (no token required)
	api.POST("/auth/login", authHandler.Login)

	// POS endpoints
	protected := api.Group("")
	if cfg.RequireAuth {
		protected.Use(middleware.Auth(authService))
	} else {
		protected.Use(middleware.OptionalAuth(authService))
	}
	{
		pos := protected.Group("/pos")
		{
			pos.POST("/billing", billingHandler.Create)
			pos.GET("/docno", billingHandler.NextDocNo)
		}

		transfers := protected.Group("/transfers")
		{
			transfers.GET("/number", transferHandler.NextNumber)
			transfers.POST("", transferHandler.Create)
			transfers.GET("", transferHandler.List)
			transfers.GET("/:id", transferHandler.Get)
			transfers.PUT("/:id", transferHandler.Update)
		}

		cat := protected.Group("/catalog")
		{
			cat.GET("/categories", catalogHandler.Categories)
			cat.GET("/products", catalogHandler.Products)
			cat.GET("/check-price", catalogHandler.CheckPrice)
			cat.GET("/warehouses", catalogHandler.Warehouses)
			cat.GET("/warehouses/:code/locations", catalogHandler.Locations)
			cat.GET("/customers", catalogHandler.Customers)
			cat.GET("/units", catalogHandler.Units)
		}

		protected.GET("/sales/analysis", salesHandler.Analysis)
	}

	return router
}
