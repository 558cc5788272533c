package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-tracker/budget-service/internal/application/adapter"
	"github.com/finance-tracker/budget-service/internal/domain/entity"
	domainerror "github.com/finance-tracker/budget-service/internal/domain/error"
	"github.com/finance-tracker/budget-service/internal/integration/persistence/model"
)

// budgetRepository implements the adapter.BudgetRepository interface.
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository instance.
func NewBudgetRepository(db *gorm.DB) adapter.BudgetRepository {
	return &budgetRepository{
		db: db,
	}
}

// Create creates a new budget in the database. A violation of the unique
// budget key surfaces as ErrBudgetAlreadyExists.
func (r *budgetRepository) Create(ctx context.Context, budget *entity.Budget) error {
	err := r.db.WithContext(ctx).Create(model.BudgetFromEntity(budget)).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domainerror.ErrBudgetAlreadyExists
	}
	return err
}

// FindByID retrieves a budget by its ID, scoped to the owner.
func (r *budgetRepository) FindByID(ctx context.Context, userID string, id uuid.UUID) (*entity.Budget, error) {
	var budgetModel model.BudgetModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&budgetModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBudgetNotFound
		}
		return nil, result.Error
	}
	return budgetModel.ToEntity(), nil
}

// FindByUser retrieves the budgets of a user matching filter.
func (r *budgetRepository) FindByUser(ctx context.Context, userID string, filter adapter.BudgetFilter) ([]*entity.Budget, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if filter.Currency != "" {
		query = query.Where("currency = ?", string(filter.Currency))
	}
	if filter.Month != 0 {
		query = query.Where("month = ?", filter.Month)
	}
	if filter.Year != 0 {
		query = query.Where("year = ?", filter.Year)
	}

	var budgetModels []model.BudgetModel
	if err := query.Order("year DESC").Order("month DESC").Order("created_at ASC").Find(&budgetModels).Error; err != nil {
		return nil, err
	}

	budgets := make([]*entity.Budget, len(budgetModels))
	for i := range budgetModels {
		budgets[i] = budgetModels[i].ToEntity()
	}
	return budgets, nil
}

// FindByKey retrieves the budget occupying key, or nil when the key is free.
func (r *budgetRepository) FindByKey(ctx context.Context, key adapter.BudgetKey) (*entity.Budget, error) {
	var budgetModel model.BudgetModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND category_key = ? AND month = ? AND year = ? AND currency = ?",
			key.UserID, key.Category, key.Month, key.Year, string(key.Currency)).
		First(&budgetModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return budgetModel.ToEntity(), nil
}

// Update updates an existing budget in the database.
func (r *budgetRepository) Update(ctx context.Context, budget *entity.Budget) error {
	result := r.db.WithContext(ctx).
		Model(&model.BudgetModel{}).
		Where("id = ? AND user_id = ?", budget.ID, budget.UserID).
		Select("*").
		Omit("id", "user_id", "created_at").
		Updates(model.BudgetFromEntity(budget))
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domainerror.ErrBudgetAlreadyExists
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrBudgetNotFound
	}
	return nil
}

// Delete permanently removes a budget owned by userID.
func (r *budgetRepository) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.BudgetModel{}, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrBudgetNotFound
	}
	return nil
}
