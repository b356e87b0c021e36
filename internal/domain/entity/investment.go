// Package entity defines the core business entities for the domain layer.
package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvestmentRiskTier represents the risk profile of an investment.
type InvestmentRiskTier string

const (
	InvestmentRiskLow    InvestmentRiskTier = "low"
	InvestmentRiskMedium InvestmentRiskTier = "medium"
	InvestmentRiskHigh   InvestmentRiskTier = "high"
)

// Valid reports whether the risk tier is one of the closed set.
func (r InvestmentRiskTier) Valid() bool {
	return r == InvestmentRiskLow || r == InvestmentRiskMedium || r == InvestmentRiskHigh
}

// Investment represents a recurring-contribution investment account. Balance
// grows monthly by annualReturnRate/12 applied to the post-contribution
// balance, and stays non-negative under normal operation.
type Investment struct {
	ID                  uuid.UUID
	Name                string
	Balance             decimal.Decimal
	AnnualReturnRate    float64 // percent
	MonthlyContribution decimal.Decimal
	RiskTier            InvestmentRiskTier
}

// NewInvestment creates a new Investment entity.
func NewInvestment(name string, balance decimal.Decimal, annualReturnRate float64, monthlyContribution decimal.Decimal, riskTier InvestmentRiskTier) *Investment {
	return &Investment{
		ID:                  uuid.New(),
		Name:                name,
		Balance:             balance,
		AnnualReturnRate:    annualReturnRate,
		MonthlyContribution: monthlyContribution,
		RiskTier:            riskTier,
	}
}

// Clone returns an independent copy of the investment.
func (i *Investment) Clone() *Investment {
	clone := *i
	return &clone
}
