// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/budget-service/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/budget-service/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine             *gin.Engine
	healthController   *controller.HealthController
	recordController   *controller.RecordController
	budgetController   *controller.BudgetController
	insightController  *controller.InsightController
	categoryController *controller.CategoryController
	rateLimiter        *middleware.RateLimiter
	authMiddleware     *middleware.AuthMiddleware
	allowedOrigins     []string
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	recordController *controller.RecordController,
	budgetController *controller.BudgetController,
	insightController *controller.InsightController,
	categoryController *controller.CategoryController,
	rateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
	allowedOrigins []string,
) *Router {
	return &Router{
		healthController:   healthController,
		recordController:   recordController,
		budgetController:   budgetController,
		insightController:  insightController,
		categoryController: categoryController,
		rateLimiter:        rateLimiter,
		authMiddleware:     authMiddleware,
		allowedOrigins:     allowedOrigins,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	switch environment {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}

	// Logger and recovery
	r.engine = gin.Default()
	if len(r.allowedOrigins) > 0 {
		r.engine.Use(middleware.CORS(r.allowedOrigins))
	}

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes. Everything under /api/v1
// requires a bearer token; mutations are additionally rate limited.
func (r *Router) setupAPIRoutes() {
	if r.authMiddleware == nil {
		return
	}

	v1 := r.engine.Group("/api/v1")
	v1.Use(r.authMiddleware.Authenticate())

	limited := func(h gin.HandlerFunc) []gin.HandlerFunc {
		if r.rateLimiter == nil {
			return []gin.HandlerFunc{h}
		}
		return []gin.HandlerFunc{r.rateLimiter.Middleware(), h}
	}

	if r.recordController != nil {
		records := v1.Group("/records")
		{
			records.GET("", r.recordController.List)
			records.POST("", limited(r.recordController.Create)...)
			records.PUT("/:id", limited(r.recordController.Update)...)
			records.DELETE("/:id", limited(r.recordController.Delete)...)
		}
	}

	if r.budgetController != nil {
		budgets := v1.Group("/budgets")
		{
			budgets.GET("", r.budgetController.List)
			budgets.POST("", limited(r.budgetController.Create)...)
			budgets.PUT("/:id", limited(r.budgetController.Update)...)
			budgets.DELETE("/:id", limited(r.budgetController.Delete)...)
		}
	}

	if r.insightController != nil {
		insights := v1.Group("/insights")
		{
			insights.GET("/comparison", r.insightController.Comparison)
			insights.GET("/summary", r.insightController.Summary)
			insights.GET("/available-categories", r.insightController.AvailableCategories)
			insights.GET("/dashboard", r.insightController.Dashboard)
			insights.POST("/check-expense", r.insightController.CheckExpense)
		}
	}

	if r.categoryController != nil {
		v1.GET("/categories", r.categoryController.List)
	}
}
