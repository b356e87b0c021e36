// Package scenario contains the what-if branching and diffing use cases.
package scenario

import (
	"context"

	"github.com/shopspring/decimal"

	domainerror "github.com/fincast/backend/internal/domain/error"
	"github.com/fincast/backend/internal/domain/entity"
)

// TrendDirection indicates which way a what-if scenario moves net worth.
type TrendDirection string

const (
	TrendImproving TrendDirection = "improving"
	TrendDeclining TrendDirection = "declining"
	TrendFlat      TrendDirection = "flat"
)

// DiffInput represents the input for comparing a baseline and a simulated
// scenario: both source states and their projections over the same horizon.
type DiffInput struct {
	Baseline        *entity.FinancialState
	Simulated       *entity.FinancialState
	BaselineSeries  []entity.MonthlyData
	SimulatedSeries []entity.MonthlyData
}

// DiffOutput captures the impact of the simulated changes.
type DiffOutput struct {
	NetWorthDelta decimal.Decimal `json:"net_worth_delta"`
	// Face value of newly added debt: the principal delta between the two
	// source states, independent of how much the projection has already
	// amortized.
	TotalNewDebtPrincipal decimal.Decimal `json:"total_new_debt_principal"`
	// Yearly investment contribution of the simulated state.
	TotalAnnualInvestmentContribution decimal.Decimal `json:"total_annual_investment_contribution"`
	Trend                             TrendDirection  `json:"trend"`
}

// DiffUseCase compares a baseline and a simulated projection to produce
// impact deltas.
type DiffUseCase struct{}

// NewDiffUseCase creates a new DiffUseCase instance.
func NewDiffUseCase() *DiffUseCase {
	return &DiffUseCase{}
}

// Execute compares the last entries of the two series and the loan principals
// of the two source states. The series must be non-empty and of equal length.
func (uc *DiffUseCase) Execute(ctx context.Context, input DiffInput) (*DiffOutput, error) {
	if len(input.BaselineSeries) == 0 || len(input.SimulatedSeries) == 0 {
		return nil, domainerror.NewEngineError(
			domainerror.ErrCodeEmptySeries,
			"cannot diff empty projection series",
			domainerror.ErrEmptySeries,
		)
	}
	if len(input.BaselineSeries) != len(input.SimulatedSeries) {
		return nil, domainerror.NewEngineError(
			domainerror.ErrCodeSeriesLengthMismatch,
			"baseline and simulated series must cover the same horizon",
			domainerror.ErrSeriesLengthMismatch,
		)
	}

	baseLast := input.BaselineSeries[len(input.BaselineSeries)-1]
	simLast := input.SimulatedSeries[len(input.SimulatedSeries)-1]

	delta := simLast.NetWorth.Sub(baseLast.NetWorth)

	annualContribution := decimal.Zero
	for _, inv := range input.Simulated.Investments {
		annualContribution = annualContribution.Add(inv.MonthlyContribution)
	}
	annualContribution = annualContribution.Mul(decimal.NewFromInt(12))

	return &DiffOutput{
		NetWorthDelta:                     delta,
		TotalNewDebtPrincipal:             input.Simulated.TotalLoanPrincipal().Sub(input.Baseline.TotalLoanPrincipal()),
		TotalAnnualInvestmentContribution: annualContribution,
		Trend:                             classifyTrend(delta),
	}, nil
}

func classifyTrend(delta decimal.Decimal) TrendDirection {
	switch {
	case delta.IsPositive():
		return TrendImproving
	case delta.IsNegative():
		return TrendDeclining
	default:
		return TrendFlat
	}
}
