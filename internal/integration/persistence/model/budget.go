package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/budget-service/internal/domain/budgeting"
	"github.com/finance-tracker/budget-service/internal/domain/entity"
)

// BudgetModel represents the budgets table in the database.
// CategoryKey holds the normalized category so the unique index treats
// "Food" and "food" as the same budget.
type BudgetModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      string          `gorm:"type:varchar(255);not null;uniqueIndex:idx_budgets_key,priority:1"`
	Category    string          `gorm:"type:varchar(100);not null"`
	CategoryKey string          `gorm:"type:varchar(100);not null;uniqueIndex:idx_budgets_key,priority:2"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Month       int             `gorm:"not null;uniqueIndex:idx_budgets_key,priority:3"`
	Year        int             `gorm:"not null;uniqueIndex:idx_budgets_key,priority:4"`
	Currency    string          `gorm:"type:varchar(3);not null;default:'USD';uniqueIndex:idx_budgets_key,priority:5"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the BudgetModel.
func (BudgetModel) TableName() string {
	return "budgets"
}

// ToEntity converts a BudgetModel to a domain Budget entity.
func (m *BudgetModel) ToEntity() *entity.Budget {
	return &entity.Budget{
		ID:        m.ID,
		UserID:    m.UserID,
		Category:  m.Category,
		Amount:    m.Amount,
		Month:     m.Month,
		Year:      m.Year,
		Currency:  entity.Currency(m.Currency),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// BudgetFromEntity creates a BudgetModel from a domain Budget entity.
func BudgetFromEntity(budget *entity.Budget) *BudgetModel {
	return &BudgetModel{
		ID:          budget.ID,
		UserID:      budget.UserID,
		Category:    budget.Category,
		CategoryKey: budgeting.Normalize(budget.Category),
		Amount:      budget.Amount,
		Month:       budget.Month,
		Year:        budget.Year,
		Currency:    string(budget.Currency),
		CreatedAt:   budget.CreatedAt,
		UpdatedAt:   budget.UpdatedAt,
	}
}

