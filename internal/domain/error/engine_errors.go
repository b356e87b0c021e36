// Package error defines domain-specific errors for the fincast application.
package error

import "errors"

// Projection engine domain errors.
var (
	// ErrInvalidLoanParameters is returned when a loan is constructed with a
	// non-positive principal or term, or a negative interest rate.
	ErrInvalidLoanParameters = errors.New("invalid loan parameters")

	// ErrInvalidProjectionHorizon is returned when a negative horizon is requested.
	ErrInvalidProjectionHorizon = errors.New("invalid projection horizon")

	// ErrSeriesLengthMismatch is returned when two projection series of
	// different lengths are diffed against each other.
	ErrSeriesLengthMismatch = errors.New("projection series length mismatch")

	// ErrEmptySeries is returned when a diff is requested over empty series.
	ErrEmptySeries = errors.New("projection series is empty")
)

// EngineErrorCode defines error codes for projection engine errors.
// Format: ENG-XXYYYY where XX is category and YYYY is specific error.
type EngineErrorCode string

const (
	// Loan construction errors (01XXXX)
	ErrCodeInvalidLoanPrincipal EngineErrorCode = "ENG-010001"
	ErrCodeInvalidLoanTerm      EngineErrorCode = "ENG-010002"
	ErrCodeInvalidLoanRate      EngineErrorCode = "ENG-010003"

	// Projection errors (02XXXX)
	ErrCodeNegativeHorizon EngineErrorCode = "ENG-020001"

	// Scenario diff errors (03XXXX)
	ErrCodeSeriesLengthMismatch EngineErrorCode = "ENG-030001"
	ErrCodeEmptySeries          EngineErrorCode = "ENG-030002"
)

// EngineError represents a projection engine error with code and message.
type EngineError struct {
	Code    EngineErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EngineError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EngineError) Unwrap() error {
	return e.Err
}

// NewEngineError creates a new EngineError with the given code and message.
func NewEngineError(code EngineErrorCode, message string, err error) *EngineError {
	return &EngineError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
