package insight

import (
	"context"

	"github.com/finance-tracker/budget-service/internal/domain/budgeting"
	"github.com/finance-tracker/budget-service/internal/domain/entity"
)

// GetBudgetComparisonOutput represents the budget-versus-actual rows of a month.
type GetBudgetComparisonOutput struct {
	Currency entity.Currency
	Period   budgeting.Period
	Rows     []budgeting.ComparisonRow
}

// GetBudgetComparisonUseCase compares a month's budgets with its expenses.
type GetBudgetComparisonUseCase struct {
	loader *LedgerLoader
}

// NewGetBudgetComparisonUseCase creates a new GetBudgetComparisonUseCase instance.
func NewGetBudgetComparisonUseCase(loader *LedgerLoader) *GetBudgetComparisonUseCase {
	return &GetBudgetComparisonUseCase{
		loader: loader,
	}
}

// Execute computes the comparison rows.
func (uc *GetBudgetComparisonUseCase) Execute(ctx context.Context, input Query) (*GetBudgetComparisonOutput, error) {
	q, period, err := uc.loader.Resolve(input)
	if err != nil {
		return nil, err
	}

	ledger, err := uc.loader.Load(ctx, q.UserID, q.Currency)
	if err != nil {
		return nil, err
	}

	return &GetBudgetComparisonOutput{
		Currency: q.Currency,
		Period:   period,
		Rows:     budgeting.CompareBudgetToActual(ledger, period.MonthIndex, period.Year),
	}, nil
}
