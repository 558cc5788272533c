package error

import "errors"

// Record domain errors.
var (
	// ErrRecordNotFound is returned when a record does not exist or is not owned by the caller.
	ErrRecordNotFound = errors.New("record not found or access denied")

	// ErrInvalidRecordAmount is returned when the amount is zero or out of range.
	ErrInvalidRecordAmount = errors.New("invalid record amount")

	// ErrInvalidRecordDescription is returned when the description is empty or too long.
	ErrInvalidRecordDescription = errors.New("invalid record description")

	// ErrInvalidRecordDate is returned when the record date is missing.
	ErrInvalidRecordDate = errors.New("invalid record date")

	// ErrInvalidRecordCategory is returned when the category is empty.
	ErrInvalidRecordCategory = errors.New("category is required")

	// ErrInvalidPaymentMethod is returned when the payment method is not supported.
	ErrInvalidPaymentMethod = errors.New("invalid payment method")

	// ErrInvalidCurrency is returned when the currency is not supported.
	ErrInvalidCurrency = errors.New("invalid currency")

	// ErrInvalidRecordType is returned when the record type is neither deposit nor expense.
	ErrInvalidRecordType = errors.New("invalid record type")
)

// RecordErrorCode defines error codes for record errors.
// Format: REC-XXYYYY where XX is category and YYYY is specific error.
type RecordErrorCode string

const (
	// Lookup errors (01XXXX)
	ErrCodeRecordNotFound RecordErrorCode = "REC-010001"

	// Validation errors (02XXXX)
	ErrCodeInvalidRecordAmount      RecordErrorCode = "REC-020001"
	ErrCodeInvalidRecordDescription RecordErrorCode = "REC-020002"
	ErrCodeInvalidRecordDate        RecordErrorCode = "REC-020003"
	ErrCodeInvalidRecordCategory    RecordErrorCode = "REC-020004"
	ErrCodeInvalidPaymentMethod     RecordErrorCode = "REC-020005"
	ErrCodeInvalidRecordCurrency    RecordErrorCode = "REC-020006"
	ErrCodeInvalidRecordType        RecordErrorCode = "REC-020007"
	ErrCodeMissingRecordFields      RecordErrorCode = "REC-020008"
	ErrCodeInvalidRecordID          RecordErrorCode = "REC-020009"
)

// RecordError represents a record error with code and message.
type RecordError struct {
	Code    RecordErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RecordError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RecordError) Unwrap() error {
	return e.Err
}

// NewRecordError creates a new RecordError with the given code and message.
func NewRecordError(code RecordErrorCode, message string, err error) *RecordError {
	return &RecordError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
