package budget

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/budget-service/internal/application/adapter"
	"github.com/finance-tracker/budget-service/internal/domain/entity"
	domainerror "github.com/finance-tracker/budget-service/internal/domain/error"
)

// UpdateBudgetInput represents the input for a partial budget update.
type UpdateBudgetInput struct {
	UserID   string
	BudgetID uuid.UUID
	Category *string
	Amount   *decimal.Decimal
	Month    *int
	Year     *int

	EnforceAvailableFunds bool
}

// UpdateBudgetOutput represents the output of a budget update.
type UpdateBudgetOutput struct {
	Budget *entity.Budget
}

// UpdateBudgetUseCase handles budget updates.
type UpdateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	recordRepo adapter.RecordRepository
	cache      adapter.InsightCache
}

// NewUpdateBudgetUseCase creates a new UpdateBudgetUseCase instance.
func NewUpdateBudgetUseCase(
	budgetRepo adapter.BudgetRepository,
	recordRepo adapter.RecordRepository,
	cache adapter.InsightCache,
) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{
		budgetRepo: budgetRepo,
		recordRepo: recordRepo,
		cache:      cache,
	}
}

// Execute applies the update to a budget owned by the user.
func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, input UpdateBudgetInput) (*UpdateBudgetOutput, error) {
	budget, err := uc.budgetRepo.FindByID(ctx, input.UserID, input.BudgetID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBudgetNotFound) {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeBudgetNotFound,
				"budget not found or access denied",
				domainerror.ErrBudgetNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find budget: %w", err)
	}

	keyChanged := false

	if input.Amount != nil {
		if err := validateAmount(*input.Amount); err != nil {
			return nil, err
		}
		budget.Amount = *input.Amount
	}

	if input.Category != nil {
		category, err := validateCategory(*input.Category)
		if err != nil {
			return nil, err
		}
		keyChanged = keyChanged || category != budget.Category
		budget.Category = category
	}

	if input.Month != nil {
		keyChanged = keyChanged || *input.Month != budget.Month
		budget.Month = *input.Month
	}
	if input.Year != nil {
		keyChanged = keyChanged || *input.Year != budget.Year
		budget.Year = *input.Year
	}
	if err := validatePeriod(budget.Month, budget.Year); err != nil {
		return nil, err
	}

	if keyChanged {
		if err := ensureUnique(ctx, uc.budgetRepo, budget); err != nil {
			return nil, err
		}
	}
	if input.EnforceAvailableFunds {
		if err := ensureFunds(ctx, uc.recordRepo, uc.budgetRepo, budget); err != nil {
			return nil, err
		}
	}

	budget.UpdatedAt = time.Now().UTC()

	if err := uc.budgetRepo.Update(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}

	invalidate(ctx, uc.cache, input.UserID)

	return &UpdateBudgetOutput{
		Budget: budget,
	}, nil
}
