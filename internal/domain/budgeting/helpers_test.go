package budgeting

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/finance-tracker/budget-service/internal/domain/entity"
)

func day(value string) time.Time {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return d
}

func record(amount, date, category string) *entity.Record {
	return &entity.Record{
		ID:            uuid.New(),
		UserID:        "user_1",
		Description:   "test",
		Amount:        decimal.RequireFromString(amount),
		Date:          day(date),
		Category:      category,
		PaymentMethod: entity.PaymentMethodCash,
		Currency:      entity.CurrencyUSD,
	}
}

func budget(category, amount string, month, year int) *entity.Budget {
	return &entity.Budget{
		ID:       uuid.New(),
		UserID:   "user_1",
		Category: category,
		Amount:   decimal.RequireFromString(amount),
		Month:    month,
		Year:     year,
		Currency: entity.CurrencyUSD,
	}
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.Truef(t, decimal.RequireFromString(expected).Equal(actual), "expected %s, got %s", expected, actual.String())
}
