// Package record contains financial record use cases.
package record

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/budget-service/internal/application/adapter"
	"github.com/finance-tracker/budget-service/internal/domain/entity"
	domainerror "github.com/finance-tracker/budget-service/internal/domain/error"
)

// maxDescriptionLength is the maximum length of a record description.
const maxDescriptionLength = 255

func validateDescription(description string) (string, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return "", domainerror.NewRecordError(
			domainerror.ErrCodeInvalidRecordDescription,
			"description is required",
			domainerror.ErrInvalidRecordDescription,
		)
	}
	if utf8.RuneCountInString(description) > maxDescriptionLength {
		return "", domainerror.NewRecordError(
			domainerror.ErrCodeInvalidRecordDescription,
			"description must be at most 255 characters",
			domainerror.ErrInvalidRecordDescription,
		)
	}
	return description, nil
}

func validateAmount(amount decimal.Decimal) error {
	if amount.IsZero() {
		return domainerror.NewRecordError(
			domainerror.ErrCodeInvalidRecordAmount,
			"amount must be a non-zero number",
			domainerror.ErrInvalidRecordAmount,
		)
	}
	if amount.Abs().GreaterThan(entity.MaxAmount) {
		return domainerror.NewRecordError(
			domainerror.ErrCodeInvalidRecordAmount,
			"amount must not exceed 999,999,999",
			domainerror.ErrInvalidRecordAmount,
		)
	}
	if !amount.Equal(amount.Round(2)) {
		return domainerror.NewRecordError(
			domainerror.ErrCodeInvalidRecordAmount,
			"amount must have at most two decimal places",
			domainerror.ErrInvalidRecordAmount,
		)
	}
	return nil
}

func validateCategory(category string) (string, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return "", domainerror.NewRecordError(
			domainerror.ErrCodeInvalidRecordCategory,
			"category is required",
			domainerror.ErrInvalidRecordCategory,
		)
	}
	return category, nil
}

func validatePaymentMethod(method entity.PaymentMethod) error {
	if !method.IsValid() {
		return domainerror.NewRecordError(
			domainerror.ErrCodeInvalidPaymentMethod,
			"payment method must be 'credit_card', 'cash', or 'bank_transfer'",
			domainerror.ErrInvalidPaymentMethod,
		)
	}
	return nil
}

func validateCurrency(currency entity.Currency) error {
	if !currency.IsValid() {
		return domainerror.NewRecordError(
			domainerror.ErrCodeInvalidRecordCurrency,
			"currency must be 'USD' or 'INR'",
			domainerror.ErrInvalidCurrency,
		)
	}
	return nil
}

// signedAmount applies the optional record type to amount.
func signedAmount(amount decimal.Decimal, recordType *entity.RecordType) (decimal.Decimal, error) {
	if recordType == nil {
		return amount, nil
	}
	if !recordType.IsValid() {
		return decimal.Zero, domainerror.NewRecordError(
			domainerror.ErrCodeInvalidRecordType,
			"type must be 'deposit' or 'expense'",
			domainerror.ErrInvalidRecordType,
		)
	}
	return recordType.Apply(amount), nil
}

// invalidate drops cached reports after a mutation. Failures only cost a stale
// read until the TTL expires, so they are logged and swallowed.
func invalidate(ctx context.Context, cache adapter.InsightCache, userID string) {
	if cache == nil {
		return
	}
	if err := cache.InvalidateUser(ctx, userID); err != nil {
		slog.Warn("Failed to invalidate insight cache", "user_id", userID, "error", err)
	}
}
