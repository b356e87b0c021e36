// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/fincast/backend/internal/application/usecase/scenario"
	"github.com/fincast/backend/internal/domain/entity"
)

// LoanChangeRequest describes a hypothetical new loan in a what-if scenario.
type LoanChangeRequest struct {
	Name         string  `json:"name" binding:"required,min=1,max=100"`
	Principal    float64 `json:"principal" binding:"required,gt=0"`
	InterestRate float64 `json:"interest_rate" binding:"gte=0"`
	TermMonths   int     `json:"term_months" binding:"required,gt=0"`
}

// InvestmentChangeRequest describes a hypothetical new investment.
type InvestmentChangeRequest struct {
	Name                string  `json:"name" binding:"required,min=1,max=100"`
	InitialBalance      float64 `json:"initial_balance" binding:"gte=0"`
	AnnualReturnRate    float64 `json:"annual_return_rate"`
	MonthlyContribution float64 `json:"monthly_contribution" binding:"gte=0"`
	RiskTier            string  `json:"risk_tier" binding:"required,oneof=low medium high"`
}

// CardChangeRequest describes a hypothetical new credit card.
type CardChangeRequest struct {
	Name         string  `json:"name" binding:"required,min=1,max=100"`
	CashbackRate float64 `json:"cashback_rate" binding:"gte=0"`
	AnnualFee    float64 `json:"annual_fee" binding:"gte=0"`
	InterestRate float64 `json:"interest_rate" binding:"gte=0"`
}

// SimulateRequest represents the request body for a what-if simulation: the
// hypothetical changes plus the horizon the two branches are projected over.
type SimulateRequest struct {
	HorizonMonths  int                       `json:"horizon_months"`
	CashAdjustment float64                   `json:"cash_adjustment"`
	NewLoans       []LoanChangeRequest       `json:"new_loans"`
	NewInvestments []InvestmentChangeRequest `json:"new_investments"`
	NewCards       []CardChangeRequest       `json:"new_cards"`
}

// ToStateChanges converts the request changes into the use-case form.
func (r *SimulateRequest) ToStateChanges() scenario.StateChanges {
	changes := scenario.StateChanges{
		CashAdjustment: decimal.NewFromFloat(r.CashAdjustment),
	}
	for _, l := range r.NewLoans {
		changes.NewLoans = append(changes.NewLoans, scenario.LoanChange{
			Name:         l.Name,
			Principal:    decimal.NewFromFloat(l.Principal),
			InterestRate: l.InterestRate,
			TermMonths:   l.TermMonths,
		})
	}
	for _, i := range r.NewInvestments {
		changes.NewInvestments = append(changes.NewInvestments, scenario.InvestmentChange{
			Name:                i.Name,
			InitialBalance:      decimal.NewFromFloat(i.InitialBalance),
			AnnualReturnRate:    i.AnnualReturnRate,
			MonthlyContribution: decimal.NewFromFloat(i.MonthlyContribution),
			RiskTier:            entity.InvestmentRiskTier(i.RiskTier),
		})
	}
	for _, c := range r.NewCards {
		changes.NewCards = append(changes.NewCards, scenario.CardChange{
			Name:         c.Name,
			CashbackRate: c.CashbackRate,
			AnnualFee:    decimal.NewFromFloat(c.AnnualFee),
			InterestRate: c.InterestRate,
		})
	}
	return changes
}

// ImpactResponse captures the deltas between the baseline and the simulation.
type ImpactResponse struct {
	NetWorthDelta                     string `json:"net_worth_delta"`
	TotalNewDebtPrincipal             string `json:"total_new_debt_principal"`
	TotalAnnualInvestmentContribution string `json:"total_annual_investment_contribution"`
	Trend                             string `json:"trend"`
}

// SimulateResponse represents the response for a what-if simulation.
type SimulateResponse struct {
	HorizonMonths   int                   `json:"horizon_months"`
	BaselineSeries  []MonthlyDataResponse `json:"baseline_series"`
	SimulatedSeries []MonthlyDataResponse `json:"simulated_series"`
	Impact          ImpactResponse        `json:"impact"`
}

// ToImpactResponse converts a diff result to its DTO.
func ToImpactResponse(diff *scenario.DiffOutput) ImpactResponse {
	return ImpactResponse{
		NetWorthDelta:                     diff.NetWorthDelta.StringFixed(2),
		TotalNewDebtPrincipal:             diff.TotalNewDebtPrincipal.StringFixed(2),
		TotalAnnualInvestmentContribution: diff.TotalAnnualInvestmentContribution.StringFixed(2),
		Trend:                             string(diff.Trend),
	}
}
