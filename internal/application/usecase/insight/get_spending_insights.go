package insight

import (
	"context"
	"time"

	"github.com/finance-tracker/budget-service/internal/application/adapter"
	"github.com/finance-tracker/budget-service/internal/domain/budgeting"
	"github.com/finance-tracker/budget-service/internal/domain/entity"
)

// GetSpendingInsightsInput represents the input for spending insights.
type GetSpendingInsightsInput struct {
	Query
	Category string // Optional
}

// GetSpendingInsightsOutput represents the insights of a month.
type GetSpendingInsightsOutput struct {
	Currency entity.Currency
	Period   budgeting.Period
	Category string
	Insights budgeting.Insights
}

// GetSpendingInsightsUseCase summarizes a month's budgets, optionally for one category.
type GetSpendingInsightsUseCase struct {
	loader *LedgerLoader
	cache  adapter.InsightCache
	ttl    time.Duration
}

// NewGetSpendingInsightsUseCase creates a new GetSpendingInsightsUseCase instance.
func NewGetSpendingInsightsUseCase(loader *LedgerLoader, cache adapter.InsightCache, ttl time.Duration) *GetSpendingInsightsUseCase {
	return &GetSpendingInsightsUseCase{
		loader: loader,
		cache:  cache,
		ttl:    ttl,
	}
}

// Execute computes the insights, serving them from cache when possible.
func (uc *GetSpendingInsightsUseCase) Execute(ctx context.Context, input GetSpendingInsightsInput) (*GetSpendingInsightsOutput, error) {
	q, period, err := uc.loader.Resolve(input.Query)
	if err != nil {
		return nil, err
	}

	category, label := "*", ""
	if input.Category != "" {
		category = budgeting.Normalize(input.Category)
		label = budgeting.DisplayName(input.Category)
	}
	key := "summary:" + string(q.Currency) + ":" + period.Key() + ":" + category

	return cached(ctx, uc.cache, uc.ttl, q.UserID, key, func() (*GetSpendingInsightsOutput, error) {
		ledger, err := uc.loader.Load(ctx, q.UserID, q.Currency)
		if err != nil {
			return nil, err
		}

		return &GetSpendingInsightsOutput{
			Currency: q.Currency,
			Period:   period,
			Category: label,
			Insights: budgeting.SynthesizeInsights(ledger, period.MonthIndex, period.Year, input.Category),
		}, nil
	})
}
