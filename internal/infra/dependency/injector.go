// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/finance-tracker/budget-service/config"
	"github.com/finance-tracker/budget-service/internal/application/adapter"
	"github.com/finance-tracker/budget-service/internal/application/usecase/budget"
	"github.com/finance-tracker/budget-service/internal/application/usecase/category"
	"github.com/finance-tracker/budget-service/internal/application/usecase/insight"
	"github.com/finance-tracker/budget-service/internal/application/usecase/record"
	"github.com/finance-tracker/budget-service/internal/domain/entity"
	"github.com/finance-tracker/budget-service/internal/infra/server/router"
	"github.com/finance-tracker/budget-service/internal/integration/adapters"
	"github.com/finance-tracker/budget-service/internal/integration/cache"
	"github.com/finance-tracker/budget-service/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/budget-service/internal/integration/entrypoint/middleware"
	"github.com/finance-tracker/budget-service/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	RateLimiter *middleware.RateLimiter
}

// NewInjector creates a new dependency injector with all dependencies wired.
// redisClient may be nil, in which case insights are computed on every request.
// clock may be nil, in which case the system clock is used.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient redis.UniversalClient, clock adapter.Clock) *Injector {
	if clock == nil {
		clock = adapters.NewSystemClock()
	}

	// Create repositories
	recordRepo := persistence.NewRecordRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)

	// Create adapters/services
	insightCache := cache.NewNoopInsightCache()
	var cacheHealthChecker controller.HealthChecker
	if redisClient != nil && cfg.Cache.Enabled {
		insightCache = cache.NewRedisInsightCache(redisClient)
		cacheHealthChecker = func(ctx context.Context) bool {
			return redisClient.Ping(ctx).Err() == nil
		}
	}
	tokenVerifier := adapters.NewJWTVerifier(cfg.Auth.JWTSecret, cfg.Auth.Issuer)
	catalog := entity.DefaultCatalog()

	// Create record use cases
	listRecordsUseCase := record.NewListRecordsUseCase(recordRepo)
	createRecordUseCase := record.NewCreateRecordUseCase(recordRepo, insightCache)
	updateRecordUseCase := record.NewUpdateRecordUseCase(recordRepo, insightCache)
	deleteRecordUseCase := record.NewDeleteRecordUseCase(recordRepo, insightCache)

	// Create budget use cases
	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo)
	createBudgetUseCase := budget.NewCreateBudgetUseCase(budgetRepo, recordRepo, insightCache, clock)
	updateBudgetUseCase := budget.NewUpdateBudgetUseCase(budgetRepo, recordRepo, insightCache)
	deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo, insightCache)

	// Create insight use cases
	loader := insight.NewLedgerLoader(recordRepo, budgetRepo, clock)
	comparisonUseCase := insight.NewGetBudgetComparisonUseCase(loader)
	summaryUseCase := insight.NewGetSpendingInsightsUseCase(loader, insightCache, cfg.Cache.TTL)
	availableUseCase := insight.NewGetAvailableCategoriesUseCase(loader, catalog)
	checkExpenseUseCase := insight.NewCheckExpenseUseCase(loader)
	dashboardUseCase := insight.NewGetDashboardUseCase(loader, insightCache, cfg.Cache.TTL)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(catalog, recordRepo)

	// Create controllers
	healthController := controller.NewHealthController(func(ctx context.Context) bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.PingContext(ctx) == nil
	}, cacheHealthChecker)

	recordController := controller.NewRecordController(
		listRecordsUseCase,
		createRecordUseCase,
		updateRecordUseCase,
		deleteRecordUseCase,
	)

	budgetController := controller.NewBudgetController(
		listBudgetsUseCase,
		createBudgetUseCase,
		updateBudgetUseCase,
		deleteBudgetUseCase,
	)

	insightController := controller.NewInsightController(
		comparisonUseCase,
		summaryUseCase,
		availableUseCase,
		checkExpenseUseCase,
		dashboardUseCase,
	)

	categoryController := controller.NewCategoryController(listCategoriesUseCase)

	// Create middleware
	// Rate limiting is off in test environments to keep feature runs deterministic
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window, cfg.Server.IsTest())
	authMiddleware := middleware.NewAuthMiddleware(tokenVerifier)

	// Create router
	r := router.NewRouter(
		healthController,
		recordController,
		budgetController,
		insightController,
		categoryController,
		rateLimiter,
		authMiddleware,
		cfg.Server.AllowedOrigins,
	)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      r,
		RateLimiter: rateLimiter,
	}
}
