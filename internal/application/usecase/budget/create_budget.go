package budget

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/budget-service/internal/application/adapter"
	"github.com/finance-tracker/budget-service/internal/domain/entity"
)

// CreateBudgetInput represents the input for budget creation.
type CreateBudgetInput struct {
	UserID   string
	Category string
	Amount   decimal.Decimal
	Month    *int            // Optional, defaults to the current month
	Year     *int            // Optional, defaults to the current year
	Currency entity.Currency // Optional, defaults to USD

	// EnforceAvailableFunds rejects amounts above the income left for the period.
	EnforceAvailableFunds bool
}

// CreateBudgetOutput represents the output of budget creation.
type CreateBudgetOutput struct {
	Budget *entity.Budget
}

// CreateBudgetUseCase handles budget creation logic.
type CreateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	recordRepo adapter.RecordRepository
	cache      adapter.InsightCache
	clock      adapter.Clock
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase instance.
func NewCreateBudgetUseCase(
	budgetRepo adapter.BudgetRepository,
	recordRepo adapter.RecordRepository,
	cache adapter.InsightCache,
	clock adapter.Clock,
) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{
		budgetRepo: budgetRepo,
		recordRepo: recordRepo,
		cache:      cache,
		clock:      clock,
	}
}

// Execute performs the budget creation.
func (uc *CreateBudgetUseCase) Execute(ctx context.Context, input CreateBudgetInput) (*CreateBudgetOutput, error) {
	if err := validateAmount(input.Amount); err != nil {
		return nil, err
	}

	category, err := validateCategory(input.Category)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now().UTC()
	month, year := int(now.Month()), now.Year()
	if input.Month != nil {
		month = *input.Month
	}
	if input.Year != nil {
		year = *input.Year
	}
	if err := validatePeriod(month, year); err != nil {
		return nil, err
	}

	currency := input.Currency
	if currency == "" {
		currency = entity.DefaultCurrency
	}
	if err := validateCurrency(currency); err != nil {
		return nil, err
	}

	budget := entity.NewBudget(input.UserID, category, input.Amount, month, year, currency)

	if err := ensureUnique(ctx, uc.budgetRepo, budget); err != nil {
		return nil, err
	}
	if input.EnforceAvailableFunds {
		if err := ensureFunds(ctx, uc.recordRepo, uc.budgetRepo, budget); err != nil {
			return nil, err
		}
	}

	if err := uc.budgetRepo.Create(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	invalidate(ctx, uc.cache, input.UserID)
	slog.Info("Budget created",
		"user_id", input.UserID,
		"budget_id", budget.ID,
		"category", budget.Category,
		"month", budget.Month,
		"year", budget.Year,
	)

	return &CreateBudgetOutput{
		Budget: budget,
	}, nil
}
