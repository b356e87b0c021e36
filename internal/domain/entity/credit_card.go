// Package entity defines the core business entities for the domain layer.
package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreditCard represents a credit card held by the user. Rates are whole
// percents (1.5 means 1.5%). The cashback rate applies uniformly to all
// expense spending when estimating monthly cashback; the engine uses the
// single highest rate across all cards held rather than per-card attribution.
type CreditCard struct {
	ID           uuid.UUID
	Name         string
	CashbackRate float64 // percent, e.g. 1.5 = 1.5%
	AnnualFee    decimal.Decimal
	InterestRate float64 // APR percent
}

// NewCreditCard creates a new CreditCard entity.
func NewCreditCard(name string, cashbackRate float64, annualFee decimal.Decimal, interestRate float64) *CreditCard {
	return &CreditCard{
		ID:           uuid.New(),
		Name:         name,
		CashbackRate: cashbackRate,
		AnnualFee:    annualFee,
		InterestRate: interestRate,
	}
}

// Clone returns an independent copy of the credit card.
func (c *CreditCard) Clone() *CreditCard {
	clone := *c
	return &clone
}
