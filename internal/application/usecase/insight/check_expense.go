package insight

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/budget-service/internal/domain/budgeting"
	domainerror "github.com/finance-tracker/budget-service/internal/domain/error"
)

// CheckExpenseInput represents a proposed expense to test before it is recorded.
type CheckExpenseInput struct {
	Query
	Category string
	Amount   decimal.Decimal
}

// CheckExpenseOutput reports the effect of the proposed expense.
type CheckExpenseOutput struct {
	Period budgeting.Period
	Budget budgeting.ExceedCheck
	Funds  budgeting.FundsCheck
}

// CheckExpenseUseCase tests a proposed expense against its category budget and
// the funds left in the month. The result is advisory.
type CheckExpenseUseCase struct {
	loader *LedgerLoader
}

// NewCheckExpenseUseCase creates a new CheckExpenseUseCase instance.
func NewCheckExpenseUseCase(loader *LedgerLoader) *CheckExpenseUseCase {
	return &CheckExpenseUseCase{
		loader: loader,
	}
}

// Execute runs both checks.
func (uc *CheckExpenseUseCase) Execute(ctx context.Context, input CheckExpenseInput) (*CheckExpenseOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewInsightError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidExpenseAmount,
		)
	}

	q, period, err := uc.loader.Resolve(input.Query)
	if err != nil {
		return nil, err
	}

	ledger, err := uc.loader.Load(ctx, q.UserID, q.Currency)
	if err != nil {
		return nil, err
	}

	rows := budgeting.ComparePeriod(ledger, period)
	available := budgeting.AvailableFundsFor(ledger, period, uuid.Nil)

	return &CheckExpenseOutput{
		Period: period,
		Budget: budgeting.WouldExceedBudget(input.Category, input.Amount, rows),
		Funds:  budgeting.ExceedsAvailableFunds(input.Amount, available),
	}, nil
}
