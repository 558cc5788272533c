package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/budget-service/internal/domain/entity"
)

// CreateBudgetRequest represents the request body for budget creation.
type CreateBudgetRequest struct {
	Category              string          `json:"category" binding:"required"`
	Amount                decimal.Decimal `json:"amount"`
	Month                 *int            `json:"month,omitempty"`
	Year                  *int            `json:"year,omitempty"`
	Currency              string          `json:"currency,omitempty"`
	EnforceAvailableFunds bool            `json:"enforce_available_funds,omitempty"`
}

// UpdateBudgetRequest represents the request body for a partial budget update.
type UpdateBudgetRequest struct {
	Category              *string          `json:"category,omitempty"`
	Amount                *decimal.Decimal `json:"amount,omitempty"`
	Month                 *int             `json:"month,omitempty"`
	Year                  *int             `json:"year,omitempty"`
	EnforceAvailableFunds bool             `json:"enforce_available_funds,omitempty"`
}

// ListBudgetsQuery holds the query parameters of GET /budgets.
type ListBudgetsQuery struct {
	Currency string `form:"currency"`
	Month    int    `form:"month"`
	Year     int    `form:"year"`
}

// BudgetResponse represents a single budget in API responses.
type BudgetResponse struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	Amount    string    `json:"amount"`
	Month     int       `json:"month"`
	Year      int       `json:"year"`
	Currency  string    `json:"currency"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BudgetListResponse represents the response for listing budgets.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
	Count   int              `json:"count"`
}

// ToBudgetResponse converts a domain Budget entity to a BudgetResponse DTO.
func ToBudgetResponse(b *entity.Budget) BudgetResponse {
	return BudgetResponse{
		ID:        b.ID.String(),
		Category:  b.Category,
		Amount:    money(b.Amount),
		Month:     b.Month,
		Year:      b.Year,
		Currency:  string(b.Currency),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// ToBudgetListResponse converts budgets to a BudgetListResponse DTO.
func ToBudgetListResponse(budgets []*entity.Budget) BudgetListResponse {
	items := make([]BudgetResponse, len(budgets))
	for i, b := range budgets {
		items[i] = ToBudgetResponse(b)
	}
	return BudgetListResponse{
		Budgets: items,
		Count:   len(items),
	}
}
