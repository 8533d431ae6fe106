// Package error defines domain-specific errors for the payments ledger.
package error

import "errors"

// Payment domain errors.
var (
	// ErrPaymentNotFound is returned when a payment does not exist or belongs to another owner.
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrEmptyDescription is returned when a payment description is blank.
	ErrEmptyDescription = errors.New("description is required")

	// ErrDescriptionTooLong is returned when the payment description exceeds the maximum length.
	ErrDescriptionTooLong = errors.New("description too long")

	// ErrInvalidPaymentAmount is returned when the amount is zero or negative.
	ErrInvalidPaymentAmount = errors.New("amount must be greater than zero")

	// ErrInvalidPeriod is returned when month or year fall outside their ranges.
	ErrInvalidPeriod = errors.New("invalid month or year")

	// ErrInvalidDueDate is returned when the due date is missing.
	ErrInvalidDueDate = errors.New("invalid due date")

	// ErrInvalidInstallmentCount is returned when an installment plan has fewer than two parts.
	ErrInvalidInstallmentCount = errors.New("installment count must be at least 2")

	// ErrInvalidDueDay is returned when the requested due day is not positive.
	ErrInvalidDueDay = errors.New("due day must be at least 1")

	// ErrInstallmentShareTooSmall is returned when the total cannot be split into positive cents.
	ErrInstallmentShareTooSmall = errors.New("amount too small for installment count")

	// ErrInstallmentAmountLocked is returned when an edit would change the amount of one installment of a group.
	ErrInstallmentAmountLocked = errors.New("installment amount cannot be changed")

	// ErrCategoryNotOwnedByUser is returned when the category does not belong to the payment owner.
	ErrCategoryNotOwnedByUser = errors.New("category does not belong to user")
)

// PaymentErrorCode defines error codes for payment errors.
// Format: PAY-XXYYYY where XX is category and YYYY is specific error.
type PaymentErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEmptyDescription         PaymentErrorCode = "PAY-010001"
	ErrCodeDescriptionTooLong       PaymentErrorCode = "PAY-010002"
	ErrCodeInvalidPaymentAmount     PaymentErrorCode = "PAY-010003"
	ErrCodeInvalidPeriod            PaymentErrorCode = "PAY-010004"
	ErrCodeInvalidDueDate           PaymentErrorCode = "PAY-010005"
	ErrCodeInvalidInstallmentCount  PaymentErrorCode = "PAY-010006"
	ErrCodeInvalidDueDay            PaymentErrorCode = "PAY-010007"
	ErrCodeInstallmentShareTooSmall PaymentErrorCode = "PAY-010008"
	ErrCodePaymentCategoryNotOwned  PaymentErrorCode = "PAY-010009"
	ErrCodeMissingPaymentFields     PaymentErrorCode = "PAY-010010"
	ErrCodeInstallmentAmountLocked  PaymentErrorCode = "PAY-010011"

	// Lookup errors (02XXXX)
	ErrCodePaymentNotFound PaymentErrorCode = "PAY-020001"
)

// PaymentError represents a payment error with code and message.
type PaymentError struct {
	Code    PaymentErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PaymentError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PaymentError) Unwrap() error {
	return e.Err
}

// ErrorCode returns the code as a plain string.
func (e *PaymentError) ErrorCode() string {
	return string(e.Code)
}

// NewPaymentError creates a new PaymentError with the given code and message.
func NewPaymentError(code PaymentErrorCode, message string, err error) *PaymentError {
	return &PaymentError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
