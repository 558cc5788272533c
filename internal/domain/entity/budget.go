package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Budget is a planned spending ceiling for one category in one calendar month.
// Month is 1-based (January == 1).
type Budget struct {
	ID        uuid.UUID
	UserID    string
	Category  string
	Amount    decimal.Decimal
	Month     int
	Year      int
	Currency  Currency
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBudget creates a new Budget entity.
func NewBudget(userID, category string, amount decimal.Decimal, month, year int, currency Currency) *Budget {
	now := time.Now().UTC()
	if currency == "" {
		currency = DefaultCurrency
	}

	return &Budget{
		ID:        uuid.New(),
		UserID:    userID,
		Category:  category,
		Amount:    amount,
		Month:     month,
		Year:      year,
		Currency:  currency,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsValidMonth reports whether month falls within 1 and 12.
func IsValidMonth(month int) bool {
	return month >= 1 && month <= 12
}

// IsValidYear reports whether year falls within the accepted range.
func IsValidYear(year int) bool {
	return year >= 1900 && year <= 3000
}
