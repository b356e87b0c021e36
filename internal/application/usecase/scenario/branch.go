// Package scenario contains the what-if branching and diffing use cases.
package scenario

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fincast/backend/internal/domain/entity"
	"github.com/fincast/backend/internal/domain/valueobject"
)

// LoanChange describes a hypothetical new loan. The monthly payment is
// computed through the amortization calculator, which also validates the
// parameters.
type LoanChange struct {
	Name         string
	Principal    decimal.Decimal
	InterestRate float64
	TermMonths   int
}

// InvestmentChange describes a hypothetical new investment.
type InvestmentChange struct {
	Name                string
	InitialBalance      decimal.Decimal
	AnnualReturnRate    float64
	MonthlyContribution decimal.Decimal
	RiskTier            entity.InvestmentRiskTier
}

// CardChange describes a hypothetical new credit card.
type CardChange struct {
	Name         string
	CashbackRate float64
	AnnualFee    decimal.Decimal
	InterestRate float64
}

// StateChanges is the set of hypothetical modifications applied to a branch.
type StateChanges struct {
	CashAdjustment decimal.Decimal
	NewLoans       []LoanChange
	NewInvestments []InvestmentChange
	NewCards       []CardChange
}

// BranchInput represents the input for deriving a what-if state.
type BranchInput struct {
	Baseline *entity.FinancialState
	Changes  StateChanges
}

// BranchUseCase derives a disposable what-if variant of a baseline state.
// The variant is always a deep clone: the baseline and the branch never share
// loans, investments or any other mutable sub-object.
type BranchUseCase struct{}

// NewBranchUseCase creates a new BranchUseCase instance.
func NewBranchUseCase() *BranchUseCase {
	return &BranchUseCase{}
}

// Execute clones the baseline and applies the requested changes to the clone.
// The baseline is never touched. New loans go through the amortization
// calculator, so invalid loan parameters fail the whole branch.
func (uc *BranchUseCase) Execute(ctx context.Context, input BranchInput) (*entity.FinancialState, error) {
	sim := input.Baseline.Clone()

	sim.CashBalance = sim.CashBalance.Add(input.Changes.CashAdjustment)

	for _, lc := range input.Changes.NewLoans {
		payment, err := valueobject.MonthlyPayment(lc.Principal, lc.InterestRate, lc.TermMonths)
		if err != nil {
			return nil, err
		}
		sim.Loans = append(sim.Loans, entity.NewLoan(lc.Name, lc.Principal, lc.InterestRate, lc.TermMonths, payment))
	}

	for _, ic := range input.Changes.NewInvestments {
		sim.Investments = append(sim.Investments, entity.NewInvestment(
			ic.Name, ic.InitialBalance, ic.AnnualReturnRate, ic.MonthlyContribution, ic.RiskTier,
		))
	}

	for _, cc := range input.Changes.NewCards {
		sim.CreditCards = append(sim.CreditCards, entity.NewCreditCard(
			cc.Name, cc.CashbackRate, cc.AnnualFee, cc.InterestRate,
		))
	}

	return sim, nil
}
