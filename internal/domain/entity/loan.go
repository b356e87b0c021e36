// Package entity defines the core business entities for the domain layer.
package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Loan represents an amortizing loan with a fixed monthly payment. Principal
// is the original amount and never changes; RemainingBalance is paid down
// month by month and is clamped to the [0, Principal] range. Once the balance
// reaches zero the loan is paid off: it stops debiting cash and stays at zero.
type Loan struct {
	ID               uuid.UUID
	Name             string
	Principal        decimal.Decimal // Original amount, immutable
	RemainingBalance decimal.Decimal
	InterestRate     float64 // APR percent
	MonthlyPayment   decimal.Decimal // Fixed for the loan's life
	TermMonths       int
}

// NewLoan creates a new Loan entity. The monthly payment is computed once at
// creation time (see valueobject.MonthlyPayment) and stays fixed.
func NewLoan(name string, principal decimal.Decimal, interestRate float64, termMonths int, monthlyPayment decimal.Decimal) *Loan {
	return &Loan{
		ID:               uuid.New(),
		Name:             name,
		Principal:        principal,
		RemainingBalance: principal,
		InterestRate:     interestRate,
		MonthlyPayment:   monthlyPayment,
		TermMonths:       termMonths,
	}
}

// PaidOff reports whether the loan balance has reached zero.
func (l *Loan) PaidOff() bool {
	return !l.RemainingBalance.IsPositive()
}

// Clone returns an independent copy of the loan.
func (l *Loan) Clone() *Loan {
	clone := *l
	return &clone
}
