// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/ledger/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	accountController     *controller.AccountController
	categoryController    *controller.CategoryController
	transactionController *controller.TransactionController
	ledgerController      *controller.LedgerController
	rateLimiter           *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
// authMiddleware may be nil, in which case the API is served without authentication.
func NewRouter(
	healthController *controller.HealthController,
	accountController *controller.AccountController,
	categoryController *controller.CategoryController,
	transactionController *controller.TransactionController,
	ledgerController *controller.LedgerController,
	rateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		accountController:     accountController,
		categoryController:    categoryController,
		transactionController: transactionController,
		ledgerController:      ledgerController,
		rateLimiter:           rateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.New()
	r.engine.Use(gin.Recovery(), middleware.RequestLogger())

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	if r.authMiddleware != nil {
		v1.Use(r.authMiddleware.Authenticate())
	}

	// Mutations share one rate limit budget per client.
	limit := func(c *gin.Context) { c.Next() }
	if r.rateLimiter != nil {
		limit = r.rateLimiter.Middleware()
	}

	accounts := v1.Group("/accounts")
	{
		accounts.GET("", r.accountController.List)
		accounts.POST("", limit, r.accountController.Create)
		accounts.GET("/:id", r.accountController.Get)
		accounts.PATCH("/:id", limit, r.accountController.Update)
		accounts.DELETE("/:id", limit, r.accountController.Delete)
		accounts.GET("/:id/balance", r.ledgerController.Balance)
	}

	categories := v1.Group("/categories")
	{
		categories.GET("", r.categoryController.List)
		categories.POST("", limit, r.categoryController.Create)
		categories.GET("/:id", r.categoryController.Get)
		categories.PATCH("/:id", limit, r.categoryController.Update)
		categories.DELETE("/:id", limit, r.categoryController.Delete)
	}

	transactions := v1.Group("/transactions")
	{
		transactions.GET("", r.transactionController.List)
		transactions.POST("", limit, r.transactionController.Create)
		transactions.GET("/:id", r.transactionController.Get)
		transactions.PATCH("/:id", limit, r.transactionController.Update)
		transactions.DELETE("/:id", limit, r.transactionController.Delete)
	}

	v1.GET("/balances", r.ledgerController.Balances)
	v1.GET("/ledger/audit", r.ledgerController.Audit)
}
