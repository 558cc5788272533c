// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/budget-service/internal/domain/entity"
)

// RecordModel represents the records table in the database.
type RecordModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        string          `gorm:"type:varchar(255);not null;index:idx_records_user_date,priority:1"`
	Description   string          `gorm:"type:varchar(255);not null"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date          time.Time       `gorm:"not null;index:idx_records_user_date,priority:2"`
	Category      string          `gorm:"type:varchar(100);not null"`
	PaymentMethod string          `gorm:"type:varchar(20);not null"`
	Currency      string          `gorm:"type:varchar(3);not null;default:'USD';index"`
	FromAccount   string          `gorm:"type:varchar(255)"`
	ToAccount     string          `gorm:"type:varchar(255)"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the RecordModel.
func (RecordModel) TableName() string {
	return "records"
}

// ToEntity converts a RecordModel to a domain Record entity.
func (m *RecordModel) ToEntity() *entity.Record {
	return &entity.Record{
		ID:            m.ID,
		UserID:        m.UserID,
		Description:   m.Description,
		Amount:        m.Amount,
		Date:          m.Date.UTC(),
		Category:      m.Category,
		PaymentMethod: entity.PaymentMethod(m.PaymentMethod),
		Currency:      entity.Currency(m.Currency),
		FromAccount:   m.FromAccount,
		ToAccount:     m.ToAccount,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// RecordFromEntity creates a RecordModel from a domain Record entity.
func RecordFromEntity(record *entity.Record) *RecordModel {
	return &RecordModel{
		ID:            record.ID,
		UserID:        record.UserID,
		Description:   record.Description,
		Amount:        record.Amount,
		Date:          record.Date,
		Category:      record.Category,
		PaymentMethod: string(record.PaymentMethod),
		Currency:      string(record.Currency),
		FromAccount:   record.FromAccount,
		ToAccount:     record.ToAccount,
		CreatedAt:     record.CreatedAt,
		UpdatedAt:     record.UpdatedAt,
	}
}
