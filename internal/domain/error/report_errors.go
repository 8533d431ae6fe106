package error

import "errors"

// Report domain errors.
var (
	// ErrUnsupportedReportFormat is returned when the export format is neither xlsx nor pdf.
	ErrUnsupportedReportFormat = errors.New("unsupported report format")
)

// ReportErrorCode defines error codes for report errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeUnsupportedReportFormat ReportErrorCode = "RPT-010001"
	ErrCodeInvalidReportPeriod     ReportErrorCode = "RPT-010002"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// ErrorCode returns the code as a plain string.
func (e *ReportError) ErrorCode() string {
	return string(e.Code)
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
