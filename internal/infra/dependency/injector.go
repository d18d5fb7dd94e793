// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/finance-tracker/ledger/config"
	"github.com/finance-tracker/ledger/internal/application/usecase/account"
	"github.com/finance-tracker/ledger/internal/application/usecase/category"
	"github.com/finance-tracker/ledger/internal/application/usecase/transaction"
	"github.com/finance-tracker/ledger/internal/infra/server/router"
	"github.com/finance-tracker/ledger/internal/integration/adapters"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/middleware"
	"github.com/finance-tracker/ledger/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Redis  *redis.Client // nil unless rate limiting is shared through Redis
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// redisClient may be nil, in which case rate limits are kept in memory.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	accountRepo := persistence.NewAccountRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	uow := persistence.NewUnitOfWork(db)

	// Create account use cases
	listAccountsUseCase := account.NewListAccountsUseCase(accountRepo)
	getAccountUseCase := account.NewGetAccountUseCase(accountRepo)
	createAccountUseCase := account.NewCreateAccountUseCase(accountRepo)
	updateAccountUseCase := account.NewUpdateAccountUseCase(accountRepo)
	deleteAccountUseCase := account.NewDeleteAccountUseCase(uow)
	balanceReader := account.NewBalanceReader(accountRepo)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	getCategoryUseCase := category.NewGetCategoryUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(uow)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	getTransactionUseCase := transaction.NewGetTransactionUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(uow)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(uow)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(uow)
	auditLedgerUseCase := transaction.NewAuditLedgerUseCase(uow)

	// Create controllers
	healthController := controller.NewHealthController(db.Dialector.Name(), func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return sqlDB.PingContext(ctx) == nil
	})

	accountController := controller.NewAccountController(
		listAccountsUseCase,
		getAccountUseCase,
		createAccountUseCase,
		updateAccountUseCase,
		deleteAccountUseCase,
	)

	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		getCategoryUseCase,
		createCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)

	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		getTransactionUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
	)

	ledgerController := controller.NewLedgerController(
		balanceReader,
		auditLedgerUseCase,
	)

	// Create middleware
	var store middleware.RateLimitStore = middleware.NewMemoryStore()
	if redisClient != nil {
		store = middleware.NewRedisStore(redisClient)
	}
	maxRequests := cfg.RateLimit.MaxRequests
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		maxRequests = 100000
	}
	rateLimiter := middleware.NewRateLimiterWithConfig(store, maxRequests, cfg.RateLimit.Window)

	var authMiddleware *middleware.AuthMiddleware
	if cfg.JWT.Enabled {
		tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.Issuer)
		authMiddleware = middleware.NewAuthMiddleware(tokenService)
	} else {
		slog.Warn("JWT authentication disabled; API is unauthenticated")
	}

	// Create router
	r := router.NewRouter(
		healthController,
		accountController,
		categoryController,
		transactionController,
		ledgerController,
		rateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Router: r,
	}
}
