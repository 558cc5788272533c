// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxAmount is the largest absolute monetary value accepted for records and budgets.
var MaxAmount = decimal.NewFromInt(999_999_999)

// RecordType is the direction of money for a record as chosen by the client.
type RecordType string

const (
	RecordTypeDeposit RecordType = "deposit"
	RecordTypeExpense RecordType = "expense"
)

// Apply returns the amount signed according to the record type.
// Deposits are positive and expenses negative regardless of the input sign.
func (t RecordType) Apply(amount decimal.Decimal) decimal.Decimal {
	switch t {
	case RecordTypeExpense:
		return amount.Abs().Neg()
	case RecordTypeDeposit:
		return amount.Abs()
	default:
		return amount
	}
}

// IsValid reports whether the record type is known.
func (t RecordType) IsValid() bool {
	return t == RecordTypeDeposit || t == RecordTypeExpense
}

// Record represents a single financial record (income or expense) owned by a user.
type Record struct {
	ID            uuid.UUID
	UserID        string
	Description   string
	Amount        decimal.Decimal // Negative for expenses, positive for income
	Date          time.Time
	Category      string
	PaymentMethod PaymentMethod
	Currency      Currency
	FromAccount   string // Optional
	ToAccount     string // Optional
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewRecord creates a new Record entity.
func NewRecord(
	userID string,
	description string,
	amount decimal.Decimal,
	date time.Time,
	category string,
	paymentMethod PaymentMethod,
	currency Currency,
) *Record {
	now := time.Now().UTC()
	if currency == "" {
		currency = DefaultCurrency
	}

	return &Record{
		ID:            uuid.New(),
		UserID:        userID,
		Description:   description,
		Amount:        amount,
		Date:          date,
		Category:      category,
		PaymentMethod: paymentMethod,
		Currency:      currency,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// IsExpense reports whether the record represents money going out.
func (r *Record) IsExpense() bool {
	return r.Amount.IsNegative()
}

// IsIncome reports whether the record represents money coming in.
func (r *Record) IsIncome() bool {
	return r.Amount.IsPositive()
}

// HasValidDate reports whether the record carries a usable date.
func (r *Record) HasValidDate() bool {
	return !r.Date.IsZero()
}
