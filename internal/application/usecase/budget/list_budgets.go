package budget

import (
	"context"
	"fmt"

	"github.com/finance-tracker/budget-service/internal/application/adapter"
	"github.com/finance-tracker/budget-service/internal/domain/entity"
	domainerror "github.com/finance-tracker/budget-service/internal/domain/error"
)

// ListBudgetsInput represents the input for listing budgets.
type ListBudgetsInput struct {
	UserID   string
	Currency entity.Currency // Optional
	Month    int             // Optional, 0 means any month
	Year     int             // Optional, 0 means any year
}

// ListBudgetsOutput represents the output of listing budgets.
type ListBudgetsOutput struct {
	Budgets []*entity.Budget
}

// ListBudgetsUseCase handles listing a user's budgets.
type ListBudgetsUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase instance.
func NewListBudgetsUseCase(budgetRepo adapter.BudgetRepository) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute lists budgets matching the optional filters.
func (uc *ListBudgetsUseCase) Execute(ctx context.Context, input ListBudgetsInput) (*ListBudgetsOutput, error) {
	if input.Currency != "" {
		if err := validateCurrency(input.Currency); err != nil {
			return nil, err
		}
	}
	if input.Month != 0 && !entity.IsValidMonth(input.Month) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetPeriod,
			"month must be between 1 and 12",
			domainerror.ErrInvalidBudgetPeriod,
		)
	}

	budgets, err := uc.budgetRepo.FindByUser(ctx, input.UserID, adapter.BudgetFilter{
		Currency: input.Currency,
		Month:    input.Month,
		Year:     input.Year,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	return &ListBudgetsOutput{
		Budgets: budgets,
	}, nil
}
