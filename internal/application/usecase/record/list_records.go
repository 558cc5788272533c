package record

import (
	"context"
	"fmt"

	"github.com/finance-tracker/budget-service/internal/application/adapter"
	"github.com/finance-tracker/budget-service/internal/domain/entity"
)

// ListRecordsInput represents the input for listing records.
type ListRecordsInput struct {
	UserID   string
	Currency entity.Currency // Optional
}

// ListRecordsOutput represents the output of listing records.
type ListRecordsOutput struct {
	Records []*entity.Record
}

// ListRecordsUseCase handles listing a user's records.
type ListRecordsUseCase struct {
	recordRepo adapter.RecordRepository
}

// NewListRecordsUseCase creates a new ListRecordsUseCase instance.
func NewListRecordsUseCase(recordRepo adapter.RecordRepository) *ListRecordsUseCase {
	return &ListRecordsUseCase{
		recordRepo: recordRepo,
	}
}

// Execute lists the records of the user, newest first.
func (uc *ListRecordsUseCase) Execute(ctx context.Context, input ListRecordsInput) (*ListRecordsOutput, error) {
	if input.Currency != "" {
		if err := validateCurrency(input.Currency); err != nil {
			return nil, err
		}
	}

	records, err := uc.recordRepo.FindByUser(ctx, input.UserID, adapter.RecordFilter{Currency: input.Currency})
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	return &ListRecordsOutput{
		Records: records,
	}, nil
}
