package record

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

func validCreateInput() CreateRecordInput {
	return CreateRecordInput{
		UserID:        "user-1",
		Description:   "Groceries",
		Amount:        decimal.NewFromInt(-45),
		Date:          time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		Category:      "food",
		PaymentMethod: entity.PaymentMethodCash,
	}
}

func TestCreateRecordUseCase_Execute(t *testing.T) {
	expense := entity.RecordTypeExpense

	tests := []struct {
		name         string
		mutate       func(in *CreateRecordInput)
		expectedCode domainerror.RecordErrorCode
	}{
		{name: "valid record", mutate: func(in *CreateRecordInput) {}},
		{
			name:         "blank description",
			mutate:       func(in *CreateRecordInput) { in.Description = "   " },
			expectedCode: domainerror.ErrCodeInvalidRecordDescription,
		},
		{
			name:         "zero amount",
			mutate:       func(in *CreateRecordInput) { in.Amount = decimal.Zero },
			expectedCode: domainerror.ErrCodeInvalidRecordAmount,
		},
		{
			name:         "amount above maximum",
			mutate:       func(in *CreateRecordInput) { in.Amount = decimal.NewFromInt(-1_000_000_000) },
			expectedCode: domainerror.ErrCodeInvalidRecordAmount,
		},
		{
			name:         "three decimal places",
			mutate:       func(in *CreateRecordInput) { in.Amount = decimal.RequireFromString("1.005") },
			expectedCode: domainerror.ErrCodeInvalidRecordAmount,
		},
		{
			name:         "missing date",
			mutate:       func(in *CreateRecordInput) { in.Date = time.Time{} },
			expectedCode: domainerror.ErrCodeInvalidRecordDate,
		},
		{
			name:         "missing category",
			mutate:       func(in *CreateRecordInput) { in.Category = "" },
			expectedCode: domainerror.ErrCodeInvalidRecordCategory,
		},
		{
			name:         "unknown payment method",
			mutate:       func(in *CreateRecordInput) { in.PaymentMethod = "cheque" },
			expectedCode: domainerror.ErrCodeInvalidPaymentMethod,
		},
		{
			name:         "unsupported currency",
			mutate:       func(in *CreateRecordInput) { in.Currency = "EUR" },
			expectedCode: domainerror.ErrCodeInvalidRecordCurrency,
		},
		{
			name: "expense type forces negative amount",
			mutate: func(in *CreateRecordInput) {
				in.Amount = decimal.NewFromInt(45)
				in.Type = &expense
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := adaptertest.NewRecordRepository()
			cache := adaptertest.NewCache()
			uc := NewCreateRecordUseCase(repo, cache)

			input := validCreateInput()
			tt.mutate(&input)

			output, err := uc.Execute(context.Background(), input)

			if tt.expectedCode != "" {
				var recErr *domainerror.RecordError
				if !errors.As(err, &recErr) {
					t.Fatalf("expected RecordError, got %v", err)
				}
				if recErr.Code != tt.expectedCode {
					t.Errorf("expected code %s, got %s", tt.expectedCode, recErr.Code)
				}
				if repo.Len() != 0 {
					t.Errorf("expected nothing stored, got %d records", repo.Len())
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if output.Record.Currency != entity.CurrencyUSD {
				t.Errorf("expected default currency USD, got %s", output.Record.Currency)
			}
			if !output.Record.Amount.Equal(decimal.NewFromInt(-45)) {
				t.Errorf("expected amount -45, got %s", output.Record.Amount)
			}
			if repo.Len() != 1 {
				t.Errorf("expected 1 stored record, got %d", repo.Len())
			}
			if len(cache.Invalidated) != 1 || cache.Invalidated[0] != "user-1" {
				t.Errorf("expected cache invalidation for user-1, got %v", cache.Invalidated)
			}
		})
	}
}
