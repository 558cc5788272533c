package budget

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/budget-service/internal/application/adapter/adaptertest"
	"github.com/finance-tracker/budget-service/internal/domain/entity"
	domainerror "github.com/finance-tracker/budget-service/internal/domain/error"
)

var fixedNow = adaptertest.Clock{At: time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)}

func intPtr(v int) *int { return &v }

func TestCreateBudgetUseCase_Execute(t *testing.T) {
	existing := entity.NewBudget("user-1", "Food", decimal.NewFromInt(300), 3, 2024, entity.CurrencyUSD)

	tests := []struct {
		name         string
		input        CreateBudgetInput
		expectedCode domainerror.BudgetErrorCode
	}{
		{
			name:  "defaults period and currency",
			input: CreateBudgetInput{UserID: "user-1", Category: "transport", Amount: decimal.NewFromInt(100)},
		},
		{
			name:         "zero amount",
			input:        CreateBudgetInput{UserID: "user-1", Category: "transport", Amount: decimal.Zero},
			expectedCode: domainerror.ErrCodeInvalidBudgetAmount,
		},
		{
			name:         "blank category",
			input:        CreateBudgetInput{UserID: "user-1", Category: " ", Amount: decimal.NewFromInt(10)},
			expectedCode: domainerror.ErrCodeInvalidBudgetCategory,
		},
		{
			name:         "month out of range",
			input:        CreateBudgetInput{UserID: "user-1", Category: "transport", Amount: decimal.NewFromInt(10), Month: intPtr(13)},
			expectedCode: domainerror.ErrCodeInvalidBudgetPeriod,
		},
		{
			name:         "unsupported currency",
			input:        CreateBudgetInput{UserID: "user-1", Category: "transport", Amount: decimal.NewFromInt(10), Currency: "EUR"},
			expectedCode: domainerror.ErrCodeInvalidBudgetCurrency,
		},
		{
			name:         "duplicate differing only in case",
			input:        CreateBudgetInput{UserID: "user-1", Category: " food ", Amount: decimal.NewFromInt(50)},
			expectedCode: domainerror.ErrCodeBudgetAlreadyExists,
		},
		{
			name:  "same category in another currency",
			input: CreateBudgetInput{UserID: "user-1", Category: "food", Amount: decimal.NewFromInt(50), Currency: entity.CurrencyINR},
		},
		{
			name:  "same category in another month",
			input: CreateBudgetInput{UserID: "user-1", Category: "food", Amount: decimal.NewFromInt(50), Month: intPtr(4)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := adaptertest.NewBudgetRepository(existing)
			cache := adaptertest.NewCache()
			uc := NewCreateBudgetUseCase(repo, adaptertest.NewRecordRepository(), cache, fixedNow)

			output, err := uc.Execute(context.Background(), tt.input)

			if tt.expectedCode != "" {
				var budgetErr *domainerror.BudgetError
				if !errors.As(err, &budgetErr) {
					t.Fatalf("expected BudgetError, got %v", err)
				}
				if budgetErr.Code != tt.expectedCode {
					t.Errorf("expected code %s, got %s", tt.expectedCode, budgetErr.Code)
				}
				if repo.Len() != 1 {
					t.Errorf("expected nothing stored, got %d budgets", repo.Len())
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if output.Budget.Year != 2024 {
				t.Errorf("expected year 2024, got %d", output.Budget.Year)
			}
			if tt.input.Month == nil && output.Budget.Month != 3 {
				t.Errorf("expected default month 3, got %d", output.Budget.Month)
			}
			if tt.input.Currency == "" && output.Budget.Currency != entity.CurrencyUSD {
				t.Errorf("expected USD, got %s", output.Budget.Currency)
			}
			if repo.Len() != 2 {
				t.Errorf("expected 2 stored budgets, got %d", repo.Len())
			}
			if len(cache.Invalidated) != 1 {
				t.Errorf("expected one invalidation, got %d", len(cache.Invalidated))
			}
		})
	}
}

func TestCreateBudgetUseCase_EnforceAvailableFunds(t *testing.T) {
	salary := entity.NewRecord("user-1", "Salary", decimal.NewFromInt(1000), time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), "salary", entity.PaymentMethodBankTransfer, entity.CurrencyUSD)
	groceries := entity.NewRecord("user-1", "Groceries", decimal.NewFromInt(-200), time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), "food", entity.PaymentMethodCash, entity.CurrencyUSD)
	food := entity.NewBudget("user-1", "food", decimal.NewFromInt(300), 3, 2024, entity.CurrencyUSD)
	rent := entity.NewBudget("user-1", "rent", decimal.NewFromInt(500), 3, 2024, entity.CurrencyUSD)

	// Available: 1000 - 200 (food spent) - 500 (rent planned) = 300.
	tests := []struct {
		name    string
		amount  int64
		wantErr bool
	}{
		{name: "within funds", amount: 300},
		{name: "above funds", amount: 301, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewCreateBudgetUseCase(
				adaptertest.NewBudgetRepository(food, rent),
				adaptertest.NewRecordRepository(salary, groceries),
				nil,
				fixedNow,
			)

			_, err := uc.Execute(context.Background(), CreateBudgetInput{
				UserID:                "user-1",
				Category:              "transport",
				Amount:                decimal.NewFromInt(tt.amount),
				EnforceAvailableFunds: true,
			})

			if tt.wantErr {
				if !errors.Is(err, domainerror.ErrInsufficientFunds) {
					t.Errorf("expected ErrInsufficientFunds, got %v", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
