// Package budget contains budget use cases.
package budget

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/budget-service/internal/application/adapter"
	"github.com/finance-tracker/budget-service/internal/domain/budgeting"
	"github.com/finance-tracker/budget-service/internal/domain/entity"
	domainerror "github.com/finance-tracker/budget-service/internal/domain/error"
)

func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() || amount.GreaterThan(entity.MaxAmount) {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetAmount,
			"amount must be greater than zero and at most 999,999,999",
			domainerror.ErrInvalidBudgetAmount,
		)
	}
	return nil
}

func validateCategory(category string) (string, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return "", domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetCategory,
			"category is required",
			domainerror.ErrInvalidBudgetCategory,
		)
	}
	return category, nil
}

func validatePeriod(month, year int) error {
	if !entity.IsValidMonth(month) || !entity.IsValidYear(year) {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetPeriod,
			"month must be between 1 and 12 and year between 1900 and 3000",
			domainerror.ErrInvalidBudgetPeriod,
		)
	}
	return nil
}

func validateCurrency(currency entity.Currency) error {
	if !currency.IsValid() {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetCurrency,
			"currency must be 'USD' or 'INR'",
			domainerror.ErrInvalidCurrency,
		)
	}
	return nil
}

// ensureUnique rejects a budget whose key is already taken by another budget.
func ensureUnique(ctx context.Context, repo adapter.BudgetRepository, b *entity.Budget) error {
	existing, err := repo.FindByKey(ctx, adapter.BudgetKey{
		UserID:   b.UserID,
		Category: budgeting.Normalize(b.Category),
		Month:    b.Month,
		Year:     b.Year,
		Currency: b.Currency,
	})
	if err != nil {
		return fmt.Errorf("failed to check budget existence: %w", err)
	}
	if existing != nil && existing.ID != b.ID {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetAlreadyExists,
			"a budget already exists for this category and month",
			domainerror.ErrBudgetAlreadyExists,
		)
	}
	return nil
}

// ensureFunds rejects a budget larger than the income left for its period.
func ensureFunds(ctx context.Context, records adapter.RecordRepository, budgets adapter.BudgetRepository, b *entity.Budget) error {
	userRecords, err := records.FindByUser(ctx, b.UserID, adapter.RecordFilter{Currency: b.Currency})
	if err != nil {
		return fmt.Errorf("failed to load records: %w", err)
	}
	userBudgets, err := budgets.FindByUser(ctx, b.UserID, adapter.BudgetFilter{Currency: b.Currency, Month: b.Month, Year: b.Year})
	if err != nil {
		return fmt.Errorf("failed to load budgets: %w", err)
	}

	ledger := budgeting.NewLedger(b.Currency, userRecords, userBudgets)
	available := budgeting.AvailableFundsFor(ledger, budgeting.BudgetPeriod(b.Month, b.Year), excludeID(b))
	check := budgeting.ExceedsAvailableFunds(b.Amount, available)
	if check.Exceeded {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInsufficientFunds,
			fmt.Sprintf("budget amount exceeds available funds of %s", check.Available.StringFixed(2)),
			domainerror.ErrInsufficientFunds,
		)
	}
	return nil
}

func excludeID(b *entity.Budget) uuid.UUID {
	if b == nil {
		return uuid.Nil
	}
	return b.ID
}

func invalidate(ctx context.Context, cache adapter.InsightCache, userID string) {
	if cache == nil {
		return
	}
	if err := cache.InvalidateUser(ctx, userID); err != nil {
		slog.Warn("Failed to invalidate insight cache", "user_id", userID, "error", err)
	}
}
