// Package error defines domain-specific errors for the fincast application.
package error

import "errors"

// Financial state domain errors.
var (
	// ErrStateNotFound is returned when no financial state exists for a user.
	ErrStateNotFound = errors.New("financial state not found")

	// ErrInvalidTransactionType is returned when the transaction type is not
	// one of income/expense.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidAmount is returned when a monetary amount is not positive.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInvalidRiskTier is returned when an investment risk tier is not one
	// of low/medium/high.
	ErrInvalidRiskTier = errors.New("invalid investment risk tier")

	// ErrEntryNotFound is returned when a referenced entry (transaction,
	// loan, card, investment) does not exist for the user.
	ErrEntryNotFound = errors.New("entry not found")
)

// StateErrorCode defines error codes for financial state errors.
// Format: STATE-XXYYYY where XX is category and YYYY is specific error.
type StateErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionType StateErrorCode = "STATE-010001"
	ErrCodeInvalidAmount          StateErrorCode = "STATE-010002"
	ErrCodeInvalidRiskTier        StateErrorCode = "STATE-010003"

	// Lookup errors (02XXXX)
	ErrCodeStateNotFound StateErrorCode = "STATE-020001"
	ErrCodeEntryNotFound StateErrorCode = "STATE-020002"
)

// StateError represents a financial state error with code and message.
type StateError struct {
	Code    StateErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *StateError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *StateError) Unwrap() error {
	return e.Err
}

// NewStateError creates a new StateError with the given code and message.
func NewStateError(code StateErrorCode, message string, err error) *StateError {
	return &StateError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
