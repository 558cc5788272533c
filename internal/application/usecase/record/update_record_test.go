package record

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/budget-service/internal/application/adapter/adaptertest"
	"github.com/finance-tracker/budget-service/internal/domain/entity"
	domainerror "github.com/finance-tracker/budget-service/internal/domain/error"
)

func seededRecord(userID string) *entity.Record {
	return entity.NewRecord(
		userID,
		"Rent",
		decimal.NewFromInt(-1200),
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		"housing",
		entity.PaymentMethodBankTransfer,
		entity.CurrencyUSD,
	)
}

func TestUpdateRecordUseCase_Execute(t *testing.T) {
	t.Run("updates only the provided fields", func(t *testing.T) {
		existing := seededRecord("user-1")
		repo := adaptertest.NewRecordRepository(existing)
		cache := adaptertest.NewCache()
		uc := NewUpdateRecordUseCase(repo, cache)

		category := "Rent"
		output, err := uc.Execute(context.Background(), UpdateRecordInput{
			UserID:   "user-1",
			RecordID: existing.ID,
			Category: &category,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Record.Category != "Rent" {
			t.Errorf("expected category Rent, got %s", output.Record.Category)
		}
		if output.Record.Description != "Rent" || !output.Record.Amount.Equal(decimal.NewFromInt(-1200)) {
			t.Errorf("expected untouched fields to be kept, got %+v", output.Record)
		}
		if len(cache.Invalidated) != 1 {
			t.Errorf("expected one invalidation, got %d", len(cache.Invalidated))
		}
	})

	t.Run("deposit type flips the stored sign", func(t *testing.T) {
		existing := seededRecord("user-1")
		repo := adaptertest.NewRecordRepository(existing)
		uc := NewUpdateRecordUseCase(repo, nil)

		deposit := entity.RecordTypeDeposit
		output, err := uc.Execute(context.Background(), UpdateRecordInput{
			UserID:   "user-1",
			RecordID: existing.ID,
			Type:     &deposit,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Record.Amount.Equal(decimal.NewFromInt(1200)) {
			t.Errorf("expected amount 1200, got %s", output.Record.Amount)
		}
	})

	t.Run("record of another user is not found", func(t *testing.T) {
		existing := seededRecord("user-2")
		repo := adaptertest.NewRecordRepository(existing)
		uc := NewUpdateRecordUseCase(repo, nil)

		_, err := uc.Execute(context.Background(), UpdateRecordInput{UserID: "user-1", RecordID: existing.ID})

		var recErr *domainerror.RecordError
		if !errors.As(err, &recErr) || recErr.Code != domainerror.ErrCodeRecordNotFound {
			t.Fatalf("expected %s, got %v", domainerror.ErrCodeRecordNotFound, err)
		}
	})

	t.Run("invalid payment method is rejected", func(t *testing.T) {
		existing := seededRecord("user-1")
		repo := adaptertest.NewRecordRepository(existing)
		uc := NewUpdateRecordUseCase(repo, nil)

		method := entity.PaymentMethod("barter")
		_, err := uc.Execute(context.Background(), UpdateRecordInput{
			UserID:        "user-1",
			RecordID:      existing.ID,
			PaymentMethod: &method,
		})
		if !errors.Is(err, domainerror.ErrInvalidPaymentMethod) {
			t.Errorf("expected ErrInvalidPaymentMethod, got %v", err)
		}
	})
}

func TestDeleteRecordUseCase_Execute(t *testing.T) {
	existing := seededRecord("user-1")
	repo := adaptertest.NewRecordRepository(existing)
	cache := adaptertest.NewCache()
	uc := NewDeleteRecordUseCase(repo, cache)

	if err := uc.Execute(context.Background(), DeleteRecordInput{UserID: "user-2", RecordID: existing.ID}); !errors.Is(err, domainerror.ErrRecordNotFound) {
		t.Errorf("expected not found for foreign user, got %v", err)
	}

	if err := uc.Execute(context.Background(), DeleteRecordInput{UserID: "user-1", RecordID: existing.ID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.Len() != 0 {
		t.Errorf("expected record removed, %d left", repo.Len())
	}

	if err := uc.Execute(context.Background(), DeleteRecordInput{UserID: "user-1", RecordID: uuid.New()}); !errors.Is(err, domainerror.ErrRecordNotFound) {
		t.Errorf("expected not found for unknown id, got %v", err)
	}
}

func TestListRecordsUseCase_Execute(t *testing.T) {
	usd := seededRecord("user-1")
	inr := seededRecord("user-1")
	inr.Currency = entity.CurrencyINR
	other := seededRecord("user-2")

	uc := NewListRecordsUseCase(adaptertest.NewRecordRepository(usd, inr, other))

	output, err := uc.Execute(context.Background(), ListRecordsInput{UserID: "user-1", Currency: entity.CurrencyINR})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.Records) != 1 || output.Records[0].ID != inr.ID {
		t.Errorf("expected only the INR record, got %d records", len(output.Records))
	}

	if _, err := uc.Execute(context.Background(), ListRecordsInput{UserID: "user-1", Currency: "GBP"}); !errors.Is(err, domainerror.ErrInvalidCurrency) {
		t.Errorf("expected ErrInvalidCurrency, got %v", err)
	}
}
