// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-tracker/budget-service/internal/application/adapter"
	"github.com/finance-tracker/budget-service/internal/domain/entity"
	domainerror "github.com/finance-tracker/budget-service/internal/domain/error"
	"github.com/finance-tracker/budget-service/internal/integration/persistence/model"
)

// recordRepository implements the adapter.RecordRepository interface.
type recordRepository struct {
	db *gorm.DB
}

// NewRecordRepository creates a new record repository instance.
func NewRecordRepository(db *gorm.DB) adapter.RecordRepository {
	return &recordRepository{
		db: db,
	}
}

// Create creates a new record in the database.
func (r *recordRepository) Create(ctx context.Context, record *entity.Record) error {
	return r.db.WithContext(ctx).Create(model.RecordFromEntity(record)).Error
}

// FindByID retrieves a record by its ID, scoped to the owner.
func (r *recordRepository) FindByID(ctx context.Context, userID string, id uuid.UUID) (*entity.Record, error) {
	var recordModel model.RecordModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&recordModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRecordNotFound
		}
		return nil, result.Error
	}
	return recordModel.ToEntity(), nil
}

// FindByUser retrieves all records for a given user, newest first.
func (r *recordRepository) FindByUser(ctx context.Context, userID string, filter adapter.RecordFilter) ([]*entity.Record, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if filter.Currency != "" {
		query = query.Where("currency = ?", string(filter.Currency))
	}

	var recordModels []model.RecordModel
	if err := query.Order("date DESC").Order("created_at DESC").Find(&recordModels).Error; err != nil {
		return nil, err
	}

	records := make([]*entity.Record, len(recordModels))
	for i := range recordModels {
		records[i] = recordModels[i].ToEntity()
	}
	return records, nil
}

// Update updates an existing record in the database.
func (r *recordRepository) Update(ctx context.Context, record *entity.Record) error {
	result := r.db.WithContext(ctx).
		Model(&model.RecordModel{}).
		Where("id = ? AND user_id = ?", record.ID, record.UserID).
		Select("*").
		Omit("id", "user_id", "created_at").
		Updates(model.RecordFromEntity(record))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrRecordNotFound
	}
	return nil
}

// Delete permanently removes a record owned by userID.
func (r *recordRepository) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.RecordModel{}, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrRecordNotFound
	}
	return nil
}
