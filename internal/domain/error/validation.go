package error

import (
	"errors"
	"strings"
)

// validationCategory is the XX segment shared by all input validation codes.
const validationCategory = "-01"

// CodedError is implemented by every coded domain error.
type CodedError interface {
	error
	ErrorCode() string
}

// CodeOf returns the code of the first coded error in err's chain.
func CodeOf(err error) (string, bool) {
	var coded CodedError
	if errors.As(err, &coded) {
		return coded.ErrorCode(), true
	}
	return "", false
}

// IsValidation reports whether err rejects the caller's input.
// Registration errors are validation errors too, except a taken username which is a conflict.
func IsValidation(err error) bool {
	code, ok := CodeOf(err)
	if !ok {
		return false
	}
	if code == string(ErrCodeUsernameExists) {
		return false
	}
	return strings.Contains(code, validationCategory)
}

// MessageOf returns the client-facing message of the first coded error in err's chain.
func MessageOf(err error) string {
	var (
		authErr     *AuthError
		paymentErr  *PaymentError
		categoryErr *CategoryError
		budgetErr   *BudgetError
		reportErr   *ReportError
	)
	switch {
	case errors.As(err, &authErr):
		return authErr.Message
	case errors.As(err, &paymentErr):
		return paymentErr.Message
	case errors.As(err, &categoryErr):
		return categoryErr.Message
	case errors.As(err, &budgetErr):
		return budgetErr.Message
	case errors.As(err, &reportErr):
		return reportErr.Message
	}
	return ""
}
