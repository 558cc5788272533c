package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/budget-service/internal/domain/entity"
)

// BudgetFilter narrows a budget listing. Zero values mean no restriction.
type BudgetFilter struct {
	Currency entity.Currency
	Month    int
	Year     int
}

// BudgetKey identifies the single budget allowed per user, category, period and currency.
type BudgetKey struct {
	UserID   string
	Category string // normalized
	Month    int
	Year     int
	Currency entity.Currency
}

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// Create stores a new budget.
	Create(ctx context.Context, budget *entity.Budget) error

	// FindByID retrieves a budget owned by userID.
	FindByID(ctx context.Context, userID string, id uuid.UUID) (*entity.Budget, error)

	// FindByUser retrieves the budgets of the user ordered by period and creation.
	FindByUser(ctx context.Context, userID string, filter BudgetFilter) ([]*entity.Budget, error)

	// FindByKey returns the budget matching key, or nil when none exists.
	FindByKey(ctx context.Context, key BudgetKey) (*entity.Budget, error)

	// Update persists changes to an existing budget.
	Update(ctx context.Context, budget *entity.Budget) error

	// Delete permanently removes a budget owned by userID.
	Delete(ctx context.Context, userID string, id uuid.UUID) error
}
