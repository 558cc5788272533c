package record

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

// UpdateRecordInput represents the input for a partial record update.
// Nil fields are left unchanged.
type UpdateRecordInput struct {
	UserID        string
	RecordID      uuid.UUID
	Description   *string
	Amount        *decimal.Decimal
	Type          *entity.RecordType
	Date          *time.Time
	Category      *string
	PaymentMethod *entity.PaymentMethod
	Currency      *entity.Currency
	FromAccount   *string
	ToAccount     *string
}

// UpdateRecordOutput represents the output of a record update.
type UpdateRecordOutput struct {
	Record *entity.Record
}

// UpdateRecordUseCase handles record updates.
type UpdateRecordUseCase struct {
	recordRepo adapter.RecordRepository
	cache      adapter.InsightCache
}

// NewUpdateRecordUseCase creates a new UpdateRecordUseCase instance.
func NewUpdateRecordUseCase(recordRepo adapter.RecordRepository, cache adapter.InsightCache) *UpdateRecordUseCase {
	return &UpdateRecordUseCase{
		recordRepo: recordRepo,
		cache:      cache,
	}
}

// Execute applies the update to a record owned by the user.
func (uc *UpdateRecordUseCase) Execute(ctx context.Context, input UpdateRecordInput) (*UpdateRecordOutput, error) {
	record, err := uc.recordRepo.FindByID(ctx, input.UserID, input.RecordID)
	if err != nil {
		if errors.Is(err, domainerror.ErrRecordNotFound) {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeRecordNotFound,
				"record not found or access denied",
				domainerror.ErrRecordNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find record: %w", err)
	}

	if input.Description != nil {
		description, err := validateDescription(*input.Description)
		if err != nil {
			return nil, err
		}
		record.Description = description
	}

	amount := record.Amount
	if input.Amount != nil {
		amount = *input.Amount
	}
	if input.Amount != nil || input.Type != nil {
		amount, err = signedAmount(amount, input.Type)
		if err != nil {
			return nil, err
		}
		if err := validateAmount(amount); err != nil {
			return nil, err
		}
		record.Amount = amount
	}

	if input.Date != nil {
		if input.Date.IsZero() {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeInvalidRecordDate,
				"date is required",
				domainerror.ErrInvalidRecordDate,
			)
		}
		record.Date = input.Date.UTC()
	}

	if input.Category != nil {
		category, err := validateCategory(*input.Category)
		if err != nil {
			return nil, err
		}
		record.Category = category
	}

	if input.PaymentMethod != nil {
		if err := validatePaymentMethod(*input.PaymentMethod); err != nil {
			return nil, err
		}
		record.PaymentMethod = *input.PaymentMethod
	}

	if input.Currency != nil {
		if err := validateCurrency(*input.Currency); err != nil {
			return nil, err
		}
		record.Currency = *input.Currency
	}

	if input.FromAccount != nil {
		record.FromAccount = *input.FromAccount
	}
	if input.ToAccount != nil {
		record.ToAccount = *input.ToAccount
	}

	record.UpdatedAt = time.Now().UTC()

	if err := uc.recordRepo.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to update record: %w", err)
	}

	invalidate(ctx, uc.cache, input.UserID)

	return &UpdateRecordOutput{
		Record: record,
	}, nil
}
