package record

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/budget-service/internal/application/adapter"
	"github.com/finance-tracker/budget-service/internal/domain/entity"
	domainerror "github.com/finance-tracker/budget-service/internal/domain/error"
)

// CreateRecordInput represents the input for record creation.
type CreateRecordInput struct {
	UserID        string
	Description   string
	Amount        decimal.Decimal
	Type          *entity.RecordType // Optional, forces the sign of Amount
	Date          time.Time
	Category      string
	PaymentMethod entity.PaymentMethod
	Currency      entity.Currency // Optional, defaults to USD
	FromAccount   string
	ToAccount     string
}

// CreateRecordOutput represents the output of record creation.
type CreateRecordOutput struct {
	Record *entity.Record
}

// CreateRecordUseCase handles record creation logic.
type CreateRecordUseCase struct {
	recordRepo adapter.RecordRepository
	cache      adapter.InsightCache
}

// NewCreateRecordUseCase creates a new CreateRecordUseCase instance.
func NewCreateRecordUseCase(recordRepo adapter.RecordRepository, cache adapter.InsightCache) *CreateRecordUseCase {
	return &CreateRecordUseCase{
		recordRepo: recordRepo,
		cache:      cache,
	}
}

// Execute performs the record creation.
func (uc *CreateRecordUseCase) Execute(ctx context.Context, input CreateRecordInput) (*CreateRecordOutput, error) {
	description, err := validateDescription(input.Description)
	if err != nil {
		return nil, err
	}

	amount, err := signedAmount(input.Amount, input.Type)
	if err != nil {
		return nil, err
	}
	if err := validateAmount(amount); err != nil {
		return nil, err
	}

	if input.Date.IsZero() {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeInvalidRecordDate,
			"date is required",
			domainerror.ErrInvalidRecordDate,
		)
	}

	category, err := validateCategory(input.Category)
	if err != nil {
		return nil, err
	}
	if err := validatePaymentMethod(input.PaymentMethod); err != nil {
		return nil, err
	}

	currency := input.Currency
	if currency == "" {
		currency = entity.DefaultCurrency
	}
	if err := validateCurrency(currency); err != nil {
		return nil, err
	}

	record := entity.NewRecord(
		input.UserID,
		description,
		amount,
		input.Date.UTC(),
		category,
		input.PaymentMethod,
		currency,
	)
	record.FromAccount = input.FromAccount
	record.ToAccount = input.ToAccount

	if err := uc.recordRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create record: %w", err)
	}

	invalidate(ctx, uc.cache, input.UserID)
	slog.Info("Record created", "user_id", input.UserID, "record_id", record.ID)

	return &CreateRecordOutput{
		Record: record,
	}, nil
}
