package insight

import (
	"context"
	"time"

	"github.com/finance-tracker/budget-service/internal/application/adapter"
	"github.com/finance-tracker/budget-service/internal/domain/budgeting"
	"github.com/finance-tracker/budget-service/internal/domain/entity"
)

// GetDashboardOutput is the month summary plus the monthly trend of every record.
type GetDashboardOutput struct {
	Currency entity.Currency
	Summary  budgeting.PeriodSummary
	Trend    []budgeting.MonthAggregate
}

// GetDashboardUseCase builds the dashboard of a month.
type GetDashboardUseCase struct {
	loader *LedgerLoader
	cache  adapter.InsightCache
	ttl    time.Duration
}

// NewGetDashboardUseCase creates a new GetDashboardUseCase instance.
func NewGetDashboardUseCase(loader *LedgerLoader, cache adapter.InsightCache, ttl time.Duration) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		loader: loader,
		cache:  cache,
		ttl:    ttl,
	}
}

// Execute computes the dashboard, serving it from cache when possible.
func (uc *GetDashboardUseCase) Execute(ctx context.Context, input Query) (*GetDashboardOutput, error) {
	q, period, err := uc.loader.Resolve(input)
	if err != nil {
		return nil, err
	}

	today := uc.loader.Now()
	key := "dashboard:" + string(q.Currency) + ":" + period.Key() + ":" + today.UTC().Format("2006-01-02")

	return cached(ctx, uc.cache, uc.ttl, q.UserID, key, func() (*GetDashboardOutput, error) {
		ledger, err := uc.loader.Load(ctx, q.UserID, q.Currency)
		if err != nil {
			return nil, err
		}

		return &GetDashboardOutput{
			Currency: q.Currency,
			Summary:  budgeting.SummarizePeriod(ledger, period, today),
			Trend:    budgeting.GroupByMonth(ledger.Records()),
		}, nil
	})
}
