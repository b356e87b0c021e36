package scenario

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	domainerror "github.com/fincast/backend/internal/domain/error"
	"github.com/fincast/backend/internal/domain/entity"
	"github.com/fincast/backend/internal/application/usecase/projection"
)

func baseline() *entity.FinancialState {
	state := entity.NewFinancialState(decimal.NewFromInt(15400), decimal.NewFromInt(6200))
	state.Loans = []*entity.Loan{
		entity.NewLoan("Car", decimal.NewFromInt(18400), 4.5, 84, decimal.NewFromInt(260)),
	}
	state.Investments = []*entity.Investment{
		entity.NewInvestment("Index fund", decimal.NewFromInt(12500), 6.5, decimal.NewFromInt(200), entity.InvestmentRiskMedium),
	}
	return state
}

func TestBranch(t *testing.T) {
	t.Run("applies changes to a clone only", func(t *testing.T) {
		base := baseline()

		sim, err := NewBranchUseCase().Execute(context.Background(), BranchInput{
			Baseline: base,
			Changes: StateChanges{
				CashAdjustment: decimal.NewFromInt(-5000),
				NewLoans: []LoanChange{
					{Name: "Boat", Principal: decimal.NewFromInt(30000), InterestRate: 8, TermMonths: 60},
				},
				NewInvestments: []InvestmentChange{
					{Name: "ETF", InitialBalance: decimal.Zero, AnnualReturnRate: 7, MonthlyContribution: decimal.NewFromInt(300), RiskTier: entity.InvestmentRiskHigh},
				},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !sim.CashBalance.Equal(decimal.NewFromInt(10400)) {
			t.Errorf("expected simulated cash 10400, got %s", sim.CashBalance)
		}
		if len(sim.Loans) != 2 || len(sim.Investments) != 2 {
			t.Errorf("expected 2 loans and 2 investments on branch, got %d/%d", len(sim.Loans), len(sim.Investments))
		}
		if !sim.Loans[1].MonthlyPayment.IsPositive() {
			t.Error("expected computed monthly payment on new loan")
		}

		// Baseline is untouched.
		if !base.CashBalance.Equal(decimal.NewFromInt(15400)) || len(base.Loans) != 1 || len(base.Investments) != 1 {
			t.Error("baseline was mutated by branching")
		}
	})

	t.Run("invalid loan parameters fail the branch", func(t *testing.T) {
		_, err := NewBranchUseCase().Execute(context.Background(), BranchInput{
			Baseline: baseline(),
			Changes: StateChanges{
				NewLoans: []LoanChange{
					{Name: "Bad", Principal: decimal.NewFromInt(-1), InterestRate: 5, TermMonths: 12},
				},
			},
		})
		if !errors.Is(err, domainerror.ErrInvalidLoanParameters) {
			t.Errorf("expected ErrInvalidLoanParameters, got %v", err)
		}
	})
}

func TestDiff(t *testing.T) {
	project := func(t *testing.T, state *entity.FinancialState, horizon int) []entity.MonthlyData {
		t.Helper()
		out, err := projection.NewProjectUseCase().Execute(context.Background(), projection.ProjectInput{State: state, HorizonMonths: horizon})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return out.Series
	}

	t.Run("new debt lowers net worth and is counted at face value", func(t *testing.T) {
		base := baseline()
		sim, err := NewBranchUseCase().Execute(context.Background(), BranchInput{
			Baseline: base,
			Changes: StateChanges{
				NewLoans: []LoanChange{
					{Name: "Boat", Principal: decimal.NewFromInt(30000), InterestRate: 8, TermMonths: 60},
				},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		diff, err := NewDiffUseCase().Execute(context.Background(), DiffInput{
			Baseline:        base,
			Simulated:       sim,
			BaselineSeries:  project(t, base, 12),
			SimulatedSeries: project(t, sim, 12),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !diff.TotalNewDebtPrincipal.Equal(decimal.NewFromInt(30000)) {
			t.Errorf("expected new debt principal 30000, got %s", diff.TotalNewDebtPrincipal)
		}
		if !diff.NetWorthDelta.IsNegative() {
			t.Errorf("expected negative net worth delta, got %s", diff.NetWorthDelta)
		}
		if diff.Trend != TrendDeclining {
			t.Errorf("expected declining trend, got %q", diff.Trend)
		}
		// 200 existing contribution * 12
		if !diff.TotalAnnualInvestmentContribution.Equal(decimal.NewFromInt(2400)) {
			t.Errorf("expected annual contribution 2400, got %s", diff.TotalAnnualInvestmentContribution)
		}
	})

	t.Run("identical states diff flat", func(t *testing.T) {
		base := baseline()
		sim := base.Clone()

		diff, err := NewDiffUseCase().Execute(context.Background(), DiffInput{
			Baseline:        base,
			Simulated:       sim,
			BaselineSeries:  project(t, base, 6),
			SimulatedSeries: project(t, sim, 6),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !diff.NetWorthDelta.IsZero() {
			t.Errorf("expected zero delta, got %s", diff.NetWorthDelta)
		}
		if diff.Trend != TrendFlat {
			t.Errorf("expected flat trend, got %q", diff.Trend)
		}
	})

	t.Run("mismatched series lengths are rejected", func(t *testing.T) {
		base := baseline()
		_, err := NewDiffUseCase().Execute(context.Background(), DiffInput{
			Baseline:        base,
			Simulated:       base.Clone(),
			BaselineSeries:  project(t, base, 6),
			SimulatedSeries: project(t, base, 12),
		})
		if !errors.Is(err, domainerror.ErrSeriesLengthMismatch) {
			t.Errorf("expected ErrSeriesLengthMismatch, got %v", err)
		}
	})

	t.Run("empty series are rejected", func(t *testing.T) {
		base := baseline()
		_, err := NewDiffUseCase().Execute(context.Background(), DiffInput{
			Baseline:  base,
			Simulated: base.Clone(),
		})
		if !errors.Is(err, domainerror.ErrEmptySeries) {
			t.Errorf("expected ErrEmptySeries, got %v", err)
		}
	})
}
