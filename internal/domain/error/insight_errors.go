package error

import "errors"

// Insight domain errors.
var (
	// ErrInvalidInsightPeriod is returned when the requested month or year is out of range.
	ErrInvalidInsightPeriod = errors.New("invalid period")

	// ErrInvalidInsightCurrency is returned when the requested currency is not supported.
	ErrInvalidInsightCurrency = errors.New("invalid currency")

	// ErrInvalidExpenseAmount is returned when a proposed expense is not positive.
	ErrInvalidExpenseAmount = errors.New("invalid expense amount")

	// ErrInsightDataUnavailable is returned when records or budgets could not be loaded.
	ErrInsightDataUnavailable = errors.New("insight data unavailable")
)

// InsightErrorCode defines error codes for insight errors.
// Format: INS-XXYYYY where XX is category and YYYY is specific error.
type InsightErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidInsightPeriod   InsightErrorCode = "INS-010001"
	ErrCodeInvalidInsightCurrency InsightErrorCode = "INS-010002"
	ErrCodeInvalidExpenseAmount   InsightErrorCode = "INS-010003"
	ErrCodeInvalidInsightQuery    InsightErrorCode = "INS-010004"

	// Server errors (05XXXX)
	ErrCodeInsightDataUnavailable InsightErrorCode = "INS-050001"
)

// InsightError represents an insight error with code and message.
type InsightError struct {
	Code    InsightErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *InsightError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *InsightError) Unwrap() error {
	return e.Err
}

// NewInsightError creates a new InsightError with the given code and message.
func NewInsightError(code InsightErrorCode, message string, err error) *InsightError {
	return &InsightError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
