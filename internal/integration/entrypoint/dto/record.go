package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/budget-service/internal/domain/entity"
)

// CreateRecordRequest represents the request body for record creation.
type CreateRecordRequest struct {
	Description   string          `json:"description" binding:"required"`
	Amount        decimal.Decimal `json:"amount"`
	Type          *string         `json:"type,omitempty" binding:"omitempty,oneof=deposit expense"`
	Date          string          `json:"date" binding:"required"`
	Category      string          `json:"category" binding:"required"`
	PaymentMethod string          `json:"payment_method" binding:"required"`
	Currency      string          `json:"currency,omitempty"`
	FromAccount   string          `json:"from_account,omitempty"`
	ToAccount     string          `json:"to_account,omitempty"`
}

// UpdateRecordRequest represents the request body for a partial record update.
type UpdateRecordRequest struct {
	Description   *string          `json:"description,omitempty"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	Type          *string          `json:"type,omitempty" binding:"omitempty,oneof=deposit expense"`
	Date          *string          `json:"date,omitempty"`
	Category      *string          `json:"category,omitempty"`
	PaymentMethod *string          `json:"payment_method,omitempty"`
	Currency      *string          `json:"currency,omitempty"`
	FromAccount   *string          `json:"from_account,omitempty"`
	ToAccount     *string          `json:"to_account,omitempty"`
}

// ListRecordsQuery holds the query parameters of GET /records.
type ListRecordsQuery struct {
	Currency string `form:"currency"`
}

// RecordResponse represents a single record in API responses.
type RecordResponse struct {
	ID            string    `json:"id"`
	Description   string    `json:"description"`
	Amount        string    `json:"amount"`
	Type          string    `json:"type"`
	Date          string    `json:"date"`
	Category      string    `json:"category"`
	PaymentMethod string    `json:"payment_method"`
	Currency      string    `json:"currency"`
	FromAccount   string    `json:"from_account,omitempty"`
	ToAccount     string    `json:"to_account,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// RecordListResponse represents the response for listing records.
type RecordListResponse struct {
	Records []RecordResponse `json:"records"`
	Count   int              `json:"count"`
}

// ParseDate parses a record date in YYYY-MM-DD or RFC 3339 form.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// ToRecordResponse converts a domain Record entity to a RecordResponse DTO.
func ToRecordResponse(r *entity.Record) RecordResponse {
	recordType := string(entity.RecordTypeDeposit)
	if r.IsExpense() {
		recordType = string(entity.RecordTypeExpense)
	}

	return RecordResponse{
		ID:            r.ID.String(),
		Description:   r.Description,
		Amount:        money(r.Amount),
		Type:          recordType,
		Date:          r.Date.UTC().Format(dateLayout),
		Category:      r.Category,
		PaymentMethod: string(r.PaymentMethod),
		Currency:      string(r.Currency),
		FromAccount:   r.FromAccount,
		ToAccount:     r.ToAccount,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// ToRecordListResponse converts records to a RecordListResponse DTO.
func ToRecordListResponse(records []*entity.Record) RecordListResponse {
	items := make([]RecordResponse, len(records))
	for i, r := range records {
		items[i] = ToRecordResponse(r)
	}
	return RecordListResponse{
		Records: items,
		Count:   len(items),
	}
}
