package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/budget-service/internal/application/usecase/insight"
	"github.com/finance-tracker/budget-service/internal/domain/entity"
	domainerror "github.com/finance-tracker/budget-service/internal/domain/error"
	"github.com/finance-tracker/budget-service/internal/integration/entrypoint/dto"
)

// InsightController handles the reporting endpoints.
type InsightController struct {
	comparisonUseCase   *insight.GetBudgetComparisonUseCase
	summaryUseCase      *insight.GetSpendingInsightsUseCase
	availableUseCase    *insight.GetAvailableCategoriesUseCase
	checkExpenseUseCase *insight.CheckExpenseUseCase
	dashboardUseCase    *insight.GetDashboardUseCase
}

// NewInsightController creates a new insight controller instance.
func NewInsightController(
	comparisonUseCase *insight.GetBudgetComparisonUseCase,
	summaryUseCase *insight.GetSpendingInsightsUseCase,
	availableUseCase *insight.GetAvailableCategoriesUseCase,
	checkExpenseUseCase *insight.CheckExpenseUseCase,
	dashboardUseCase *insight.GetDashboardUseCase,
) *InsightController {
	return &InsightController{
		comparisonUseCase:   comparisonUseCase,
		summaryUseCase:      summaryUseCase,
		availableUseCase:    availableUseCase,
		checkExpenseUseCase: checkExpenseUseCase,
		dashboardUseCase:    dashboardUseCase,
	}
}

// Comparison handles GET /insights/comparison requests.
func (c *InsightController) Comparison(ctx *gin.Context) {
	query, ok := c.bindPeriod(ctx)
	if !ok {
		return
	}

	output, err := c.comparisonUseCase.Execute(ctx.Request.Context(), query)
	if err != nil {
		c.handleInsightError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToComparisonResponse(output))
}

// Summary handles GET /insights/summary requests.
func (c *InsightController) Summary(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var params dto.SummaryQuery
	if err := ctx.ShouldBindQuery(&params); err != nil {
		c.invalidQuery(ctx, err)
		return
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), insight.GetSpendingInsightsInput{
		Query:    toQuery(userID, params.PeriodQuery),
		Category: params.Category,
	})
	if err != nil {
		c.handleInsightError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInsightsResponse(output))
}

// AvailableCategories handles GET /insights/available-categories requests.
func (c *InsightController) AvailableCategories(ctx *gin.Context) {
	query, ok := c.bindPeriod(ctx)
	if !ok {
		return
	}

	output, err := c.availableUseCase.Execute(ctx.Request.Context(), query)
	if err != nil {
		c.handleInsightError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAvailableCategoriesResponse(output))
}

// Dashboard handles GET /insights/dashboard requests.
func (c *InsightController) Dashboard(ctx *gin.Context) {
	query, ok := c.bindPeriod(ctx)
	if !ok {
		return
	}

	output, err := c.dashboardUseCase.Execute(ctx.Request.Context(), query)
	if err != nil {
		c.handleInsightError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardResponse(output))
}

// CheckExpense handles POST /insights/check-expense requests.
func (c *InsightController) CheckExpense(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CheckExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.invalidQuery(ctx, err)
		return
	}

	output, err := c.checkExpenseUseCase.Execute(ctx.Request.Context(), insight.CheckExpenseInput{
		Query: insight.Query{
			UserID:   userID,
			Currency: entity.Currency(req.Currency),
			Month:    req.Month,
			Year:     req.Year,
		},
		Category: req.Category,
		Amount:   req.Amount,
	})
	if err != nil {
		c.handleInsightError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCheckExpenseResponse(output))
}

func (c *InsightController) bindPeriod(ctx *gin.Context) (insight.Query, bool) {
	userID, ok := requireUser(ctx)
	if !ok {
		return insight.Query{}, false
	}

	var params dto.PeriodQuery
	if err := ctx.ShouldBindQuery(&params); err != nil {
		c.invalidQuery(ctx, err)
		return insight.Query{}, false
	}
	return toQuery(userID, params), true
}

func (c *InsightController) invalidQuery(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:   "Invalid report parameters",
		Code:    string(domainerror.ErrCodeInvalidInsightQuery),
		Details: err.Error(),
	})
}

// handleInsightError maps insight errors to HTTP responses.
func (c *InsightController) handleInsightError(ctx *gin.Context, err error) {
	var insErr *domainerror.InsightError
	if errors.As(err, &insErr) {
		status := http.StatusBadRequest
		if insErr.Code == domainerror.ErrCodeInsightDataUnavailable {
			status = http.StatusServiceUnavailable
			slog.Error("Insight data unavailable", "path", ctx.FullPath(), "error", err)
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: insErr.Message,
			Code:  string(insErr.Code),
		})
		return
	}

	slog.Error("Insight request failed", "path", ctx.FullPath(), "error", err)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Internal server error",
	})
}

func toQuery(userID string, params dto.PeriodQuery) insight.Query {
	return insight.Query{
		UserID:   userID,
		Currency: entity.Currency(params.Currency),
		Month:    params.Month,
		Year:     params.Year,
	}
}
