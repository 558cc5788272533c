// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/budget-service/internal/domain/entity"
)

// RecordFilter narrows a record listing. Zero values mean no restriction.
type RecordFilter struct {
	Currency entity.Currency
}

// RecordRepository defines the interface for record persistence operations.
// Every method is scoped to the owning user.
type RecordRepository interface {
	// Create stores a new record.
	Create(ctx context.Context, record *entity.Record) error

	// FindByID retrieves a record owned by userID.
	FindByID(ctx context.Context, userID string, id uuid.UUID) (*entity.Record, error)

	// FindByUser retrieves every record of the user, newest first.
	FindByUser(ctx context.Context, userID string, filter RecordFilter) ([]*entity.Record, error)

	// Update persists changes to an existing record.
	Update(ctx context.Context, record *entity.Record) error

	// Delete permanently removes a record owned by userID.
	Delete(ctx context.Context, userID string, id uuid.UUID) error
}
