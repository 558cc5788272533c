// Package insight contains the reporting use cases built on the budgeting engine.
package insight

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/finance-tracker/budget-service/internal/application/adapter"
	"github.com/finance-tracker/budget-service/internal/domain/budgeting"
	"github.com/finance-tracker/budget-service/internal/domain/entity"
	domainerror "github.com/finance-tracker/budget-service/internal/domain/error"
)

// Query selects the ledger and month a report is computed for.
// Month is one-based; zero Month or Year fall back to the current date.
type Query struct {
	UserID   string
	Currency entity.Currency
	Month    int
	Year     int
}

// LedgerLoader fetches a user's records and budgets for one currency.
// Records and budgets are read concurrently and identical in-flight loads are
// collapsed into a single pair of repository calls.
type LedgerLoader struct {
	recordRepo adapter.RecordRepository
	budgetRepo adapter.BudgetRepository
	clock      adapter.Clock
	group      singleflight.Group
}

// NewLedgerLoader creates a new LedgerLoader instance.
func NewLedgerLoader(recordRepo adapter.RecordRepository, budgetRepo adapter.BudgetRepository, clock adapter.Clock) *LedgerLoader {
	return &LedgerLoader{
		recordRepo: recordRepo,
		budgetRepo: budgetRepo,
		clock:      clock,
	}
}

// Resolve validates q and fills in its defaults.
func (l *LedgerLoader) Resolve(q Query) (Query, budgeting.Period, error) {
	if q.Currency == "" {
		q.Currency = entity.DefaultCurrency
	}
	if !q.Currency.IsValid() {
		return q, budgeting.Period{}, domainerror.NewInsightError(
			domainerror.ErrCodeInvalidInsightCurrency,
			"currency must be 'USD' or 'INR'",
			domainerror.ErrInvalidInsightCurrency,
		)
	}

	now := l.clock.Now().UTC()
	if q.Month == 0 {
		q.Month = int(now.Month())
	}
	if q.Year == 0 {
		q.Year = now.Year()
	}
	if !entity.IsValidMonth(q.Month) || !entity.IsValidYear(q.Year) {
		return q, budgeting.Period{}, domainerror.NewInsightError(
			domainerror.ErrCodeInvalidInsightPeriod,
			"month must be between 1 and 12 and year between 1900 and 3000",
			domainerror.ErrInvalidInsightPeriod,
		)
	}

	return q, budgeting.BudgetPeriod(q.Month, q.Year), nil
}

// Load returns the ledger of userID for currency. The shared load runs
// detached from any single caller, so a caller that gives up only abandons
// its own wait.
func (l *LedgerLoader) Load(ctx context.Context, userID string, currency entity.Currency) (*budgeting.Ledger, error) {
	key := userID + "|" + string(currency)

	ch := l.group.DoChan(key, func() (any, error) {
		var (
			records []*entity.Record
			budgets []*entity.Budget
		)

		g, gctx := errgroup.WithContext(context.WithoutCancel(ctx))
		g.Go(func() error {
			var err error
			records, err = l.recordRepo.FindByUser(gctx, userID, adapter.RecordFilter{Currency: currency})
			return err
		})
		g.Go(func() error {
			var err error
			budgets, err = l.budgetRepo.FindByUser(gctx, userID, adapter.BudgetFilter{Currency: currency})
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}

		return budgeting.NewLedger(currency, records, budgets), nil
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		res.Err = ctx.Err()
	case res = <-ch:
	}

	if res.Err != nil {
		slog.Error("Failed to load ledger", "user_id", userID, "currency", currency, "error", res.Err)
		return nil, domainerror.NewInsightError(
			domainerror.ErrCodeInsightDataUnavailable,
			"failed to load records and budgets",
			res.Err,
		)
	}
	if res.Shared {
		slog.Debug("Ledger load shared with in-flight request", "user_id", userID)
	}

	return res.Val.(*budgeting.Ledger), nil
}

// Now returns the loader's current time.
func (l *LedgerLoader) Now() time.Time {
	return l.clock.Now()
}

// cached serves key from cache when present, otherwise computes and stores it.
// Cache failures degrade to recomputation.
func cached[T any](
	ctx context.Context,
	cache adapter.InsightCache,
	ttl time.Duration,
	userID, key string,
	compute func() (*T, error),
) (*T, error) {
	if cache != nil {
		var hit T
		ok, err := cache.Get(ctx, userID, key, &hit)
		if err != nil {
			slog.Warn("Insight cache read failed", "user_id", userID, "key", key, "error", err)
		} else if ok {
			return &hit, nil
		}
	}

	out, err := compute()
	if err != nil {
		return nil, err
	}

	if cache != nil {
		if err := cache.Set(ctx, userID, key, out, ttl); err != nil {
			slog.Warn("Insight cache write failed", "user_id", userID, "key", key, "error", err)
		}
	}
	return out, nil
}
