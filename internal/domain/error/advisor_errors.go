// Package error defines domain-specific errors for the fincast application.
package error

import "errors"

// Advisor domain errors.
var (
	// ErrAdvisorUnavailable is returned when the advice service is not configured.
	ErrAdvisorUnavailable = errors.New("advisor service unavailable")

	// ErrAdvisorRequestFailed is returned when the advice service call fails.
	ErrAdvisorRequestFailed = errors.New("advisor request failed")

	// ErrEmptyQuestion is returned when no question is provided.
	ErrEmptyQuestion = errors.New("question cannot be empty")
)

// AdvisorErrorCode defines error codes for advisor errors.
// Format: ADV-XXYYYY where XX is category and YYYY is specific error.
type AdvisorErrorCode string

const (
	ErrCodeAdvisorUnavailable   AdvisorErrorCode = "ADV-010001"
	ErrCodeAdvisorRequestFailed AdvisorErrorCode = "ADV-010002"
	ErrCodeEmptyQuestion        AdvisorErrorCode = "ADV-010003"
)

// AdvisorError represents an advisor error with code and message.
type AdvisorError struct {
	Code    AdvisorErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AdvisorError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AdvisorError) Unwrap() error {
	return e.Err
}

// NewAdvisorError creates a new AdvisorError with the given code and message.
func NewAdvisorError(code AdvisorErrorCode, message string, err error) *AdvisorError {
	return &AdvisorError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
