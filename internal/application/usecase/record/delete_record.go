package record

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finance-tracker/budget-service/internal/application/adapter"
	domainerror "github.com/finance-tracker/budget-service/internal/domain/error"
)

// DeleteRecordInput represents the input for record deletion.
type DeleteRecordInput struct {
	UserID   string
	RecordID uuid.UUID
}

// DeleteRecordUseCase handles permanent record deletion.
type DeleteRecordUseCase struct {
	recordRepo adapter.RecordRepository
	cache      adapter.InsightCache
}

// NewDeleteRecordUseCase creates a new DeleteRecordUseCase instance.
func NewDeleteRecordUseCase(recordRepo adapter.RecordRepository, cache adapter.InsightCache) *DeleteRecordUseCase {
	return &DeleteRecordUseCase{
		recordRepo: recordRepo,
		cache:      cache,
	}
}

// Execute deletes a record owned by the user.
func (uc *DeleteRecordUseCase) Execute(ctx context.Context, input DeleteRecordInput) error {
	if err := uc.recordRepo.Delete(ctx, input.UserID, input.RecordID); err != nil {
		if errors.Is(err, domainerror.ErrRecordNotFound) {
			return domainerror.NewRecordError(
				domainerror.ErrCodeRecordNotFound,
				"record not found or access denied",
				domainerror.ErrRecordNotFound,
			)
		}
		return fmt.Errorf("failed to delete record: %w", err)
	}

	invalidate(ctx, uc.cache, input.UserID)
	slog.Info("Record deleted", "user_id", input.UserID, "record_id", input.RecordID)

	return nil
}
