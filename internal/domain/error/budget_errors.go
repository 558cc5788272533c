package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget does not exist or is not owned by the caller.
	ErrBudgetNotFound = errors.New("budget not found or access denied")

	// ErrBudgetAlreadyExists is returned when a budget already exists for the same category, month, year and currency.
	ErrBudgetAlreadyExists = errors.New("budget already exists for this category and period")

	// ErrInvalidBudgetAmount is returned when the budget amount is not positive or out of range.
	ErrInvalidBudgetAmount = errors.New("invalid budget amount")

	// ErrInvalidBudgetCategory is returned when the budget category is empty.
	ErrInvalidBudgetCategory = errors.New("budget category is required")

	// ErrInvalidBudgetPeriod is returned when the month or year is out of range.
	ErrInvalidBudgetPeriod = errors.New("invalid budget period")

	// ErrInsufficientFunds is returned when a budget amount exceeds the funds still available in the period.
	ErrInsufficientFunds = errors.New("budget exceeds available funds")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BUD-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Lookup errors (01XXXX)
	ErrCodeBudgetNotFound      BudgetErrorCode = "BUD-010001"
	ErrCodeBudgetAlreadyExists BudgetErrorCode = "BUD-010002"

	// Validation errors (02XXXX)
	ErrCodeInvalidBudgetAmount   BudgetErrorCode = "BUD-020001"
	ErrCodeInvalidBudgetCategory BudgetErrorCode = "BUD-020002"
	ErrCodeInvalidBudgetPeriod   BudgetErrorCode = "BUD-020003"
	ErrCodeInvalidBudgetCurrency BudgetErrorCode = "BUD-020004"
	ErrCodeMissingBudgetFields   BudgetErrorCode = "BUD-020005"
	ErrCodeInvalidBudgetID       BudgetErrorCode = "BUD-020006"

	// Funding errors (03XXXX)
	ErrCodeInsufficientFunds BudgetErrorCode = "BUD-030001"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
