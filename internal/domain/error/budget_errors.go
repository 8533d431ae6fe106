package error

import "errors"

// Budget domain errors.
var (
	// ErrNegativeBudgetValue is returned when income or spending goal is below zero.
	ErrNegativeBudgetValue = errors.New("income and spending goal must not be negative")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BUD-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeNegativeBudgetValue BudgetErrorCode = "BUD-010001"
	ErrCodeInvalidBudgetPeriod BudgetErrorCode = "BUD-010002"
	ErrCodeMissingBudgetFields BudgetErrorCode = "BUD-010003"
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

// ErrorCode returns the code as a plain string.
func (e *BudgetError) ErrorCode() string {
	return string(e.Code)
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
