package budget

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/budget-service/internal/application/adapter"
	domainerror "github.com/finance-tracker/budget-service/internal/domain/error"
)

// DeleteBudgetInput represents the input for budget deletion.
type DeleteBudgetInput struct {
	UserID   string
	BudgetID uuid.UUID
}

// DeleteBudgetUseCase handles permanent budget deletion.
type DeleteBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	cache      adapter.InsightCache
}

// NewDeleteBudgetUseCase creates a new DeleteBudgetUseCase instance.
func NewDeleteBudgetUseCase(budgetRepo adapter.BudgetRepository, cache adapter.InsightCache) *DeleteBudgetUseCase {
	return &DeleteBudgetUseCase{
		budgetRepo: budgetRepo,
		cache:      cache,
	}
}

// Execute deletes a budget owned by the user.
func (uc *DeleteBudgetUseCase) Execute(ctx context.Context, input DeleteBudgetInput) error {
	if err := uc.budgetRepo.Delete(ctx, input.UserID, input.BudgetID); err != nil {
		if errors.Is(err, domainerror.ErrBudgetNotFound) {
			return domainerror.NewBudgetError(
				domainerror.ErrCodeBudgetNotFound,
				"budget not found or access denied",
				domainerror.ErrBudgetNotFound,
			)
		}
		return fmt.Errorf("failed to delete budget: %w", err)
	}

	invalidate(ctx, uc.cache, input.UserID)
	return nil
}
