package projection

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/shopspring/decimal"

	domainerror "github.com/fincast/backend/internal/domain/error"
	"github.com/fincast/backend/internal/domain/entity"
	"github.com/fincast/backend/internal/domain/valueobject"
)

// scenarioState builds the reference snapshot: cash 15400, fallback income
// 6200, one car loan and one index fund, no recorded transactions.
func scenarioState() *entity.FinancialState {
	state := entity.NewFinancialState(decimal.NewFromInt(15400), decimal.NewFromInt(6200))
	state.Loans = []*entity.Loan{
		entity.NewLoan("Car", decimal.NewFromInt(18400), 4.5, 84, decimal.NewFromInt(260)),
	}
	state.Investments = []*entity.Investment{
		entity.NewInvestment("Index fund", decimal.NewFromInt(12500), 6.5, decimal.NewFromInt(200), entity.InvestmentRiskMedium),
	}
	return state
}

func mustProject(t *testing.T, state *entity.FinancialState, horizon int) []entity.MonthlyData {
	t.Helper()
	out, err := NewProjectUseCase().Execute(context.Background(), ProjectInput{State: state, HorizonMonths: horizon})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return out.Series
}

func TestProjectSeriesLength(t *testing.T) {
	for _, horizon := range []int{0, 1, 12, 60} {
		series := mustProject(t, scenarioState(), horizon)
		if len(series) != horizon+1 {
			t.Errorf("horizon %d: expected %d entries, got %d", horizon, horizon+1, len(series))
		}
	}
}

func TestProjectZeroHorizonReflectsSnapshot(t *testing.T) {
	state := scenarioState()
	series := mustProject(t, state, 0)

	if series[0].Month != 0 {
		t.Errorf("expected month 0, got %d", series[0].Month)
	}
	if !series[0].Cash.Equal(decimal.NewFromInt(15400)) {
		t.Errorf("expected cash 15400, got %s", series[0].Cash)
	}
	if !series[0].NetWorth.Equal(decimal.NewFromInt(9500)) {
		t.Errorf("expected net worth 9500, got %s", series[0].NetWorth)
	}
	if !series[0].Investments.Equal(decimal.NewFromInt(12500)) {
		t.Errorf("expected investments 12500, got %s", series[0].Investments)
	}
}

func TestProjectNegativeHorizon(t *testing.T) {
	_, err := NewProjectUseCase().Execute(context.Background(), ProjectInput{State: scenarioState(), HorizonMonths: -1})
	if err == nil {
		t.Fatal("expected error for negative horizon")
	}
	if !errors.Is(err, domainerror.ErrInvalidProjectionHorizon) {
		t.Errorf("expected ErrInvalidProjectionHorizon, got %v", err)
	}
}

func TestProjectEndToEndScenario(t *testing.T) {
	series := mustProject(t, scenarioState(), 1)

	// Month 1 cash: 15400 + 6200 income - 260 loan payment - 200 contribution.
	if !series[1].Cash.Equal(decimal.NewFromInt(21140)) {
		t.Errorf("expected month-1 cash 21140, got %s", series[1].Cash)
	}

	// Investment after one month: (12500 + 200) * (1 + 0.065/12).
	if diff := math.Abs(series[1].Investments.InexactFloat64() - 12768.79); diff > 0.01 {
		t.Errorf("expected month-1 investments ~12768.79, got %s", series[1].Investments)
	}

	// Loan balance after one month: 18400 - (260 - 18400*0.045/12) = 18209.
	// The series exposes it through net worth: cash + investments - balance.
	balance := series[1].Cash.Add(series[1].Investments).Sub(series[1].NetWorth)
	if diff := math.Abs(balance.InexactFloat64() - 18209.0); diff > 0.01 {
		t.Errorf("expected month-1 loan balance ~18209.0, got %s", balance)
	}
}

func TestProjectIdempotence(t *testing.T) {
	state := scenarioState()

	first := mustProject(t, state, 24)
	second := mustProject(t, state, 24)

	for i := range first {
		if !first[i].Cash.Equal(second[i].Cash) ||
			!first[i].NetWorth.Equal(second[i].NetWorth) ||
			!first[i].Investments.Equal(second[i].Investments) {
			t.Fatalf("month %d differs between identical runs", i)
		}
	}
}

func TestProjectDoesNotMutateInput(t *testing.T) {
	state := scenarioState()
	mustProject(t, state, 36)

	if !state.CashBalance.Equal(decimal.NewFromInt(15400)) {
		t.Errorf("input cash mutated: %s", state.CashBalance)
	}
	if !state.Loans[0].RemainingBalance.Equal(decimal.NewFromInt(18400)) {
		t.Errorf("input loan balance mutated: %s", state.Loans[0].RemainingBalance)
	}
	if !state.Investments[0].Balance.Equal(decimal.NewFromInt(12500)) {
		t.Errorf("input investment balance mutated: %s", state.Investments[0].Balance)
	}
}

func TestProjectSnapshotIsolation(t *testing.T) {
	state := scenarioState()
	reference := mustProject(t, state, 12)

	// Mutating a what-if branch must not affect projections of the baseline.
	sim := state.Clone()
	payment, err := valueobject.MonthlyPayment(decimal.NewFromInt(30000), 8, 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sim.Loans = append(sim.Loans, entity.NewLoan("Boat", decimal.NewFromInt(30000), 8, 60, payment))
	sim.Loans[0].RemainingBalance = decimal.Zero

	after := mustProject(t, state, 12)
	for i := range reference {
		if !reference[i].NetWorth.Equal(after[i].NetWorth) {
			t.Fatalf("baseline projection changed after branch mutation at month %d", i)
		}
	}
}

func TestProjectLoanPayoff(t *testing.T) {
	t.Run("balance reaches zero at term and never goes negative", func(t *testing.T) {
		principal := decimal.NewFromInt(10000)
		payment, err := valueobject.MonthlyPayment(principal, 6, 60)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		state := entity.NewFinancialState(decimal.NewFromInt(100000), decimal.Zero)
		state.Loans = []*entity.Loan{entity.NewLoan("Term loan", principal, 6, 60, payment)}

		series := mustProject(t, state, 72)

		for i, point := range series {
			// balance = cash - netWorth when there are no investments
			balance := point.Cash.Sub(point.NetWorth)
			if balance.IsNegative() {
				t.Fatalf("month %d: negative loan balance %s", i, balance)
			}
		}

		final := series[60].Cash.Sub(series[60].NetWorth)
		if final.Abs().InexactFloat64() > 0.01 {
			t.Errorf("expected balance ~0 at term, got %s", final)
		}
	})

	t.Run("paid-off loan stops debiting cash", func(t *testing.T) {
		// 1200 at 0% over 12 months pays off exactly; months 13+ must only
		// see the income inflow, not the 100 payment.
		state := entity.NewFinancialState(decimal.Zero, decimal.NewFromInt(500))
		payment, err := valueobject.MonthlyPayment(decimal.NewFromInt(1200), 0, 12)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		state.Loans = []*entity.Loan{entity.NewLoan("Zero-rate", decimal.NewFromInt(1200), 0, 12, payment)}

		series := mustProject(t, state, 14)

		month13Delta := series[13].Cash.Sub(series[12].Cash)
		month14Delta := series[14].Cash.Sub(series[13].Cash)
		if !month13Delta.Equal(decimal.NewFromInt(500)) {
			t.Errorf("expected month-13 cash delta 500 after payoff, got %s", month13Delta)
		}
		if !month14Delta.Equal(decimal.NewFromInt(500)) {
			t.Errorf("expected month-14 cash delta 500 after payoff, got %s", month14Delta)
		}
	})
}
