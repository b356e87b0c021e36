package valueobject

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fincast/backend/internal/domain/entity"
)

// stateWithBurn builds a state whose monthly burn (expense + debt service)
// and cash are exactly the given values.
func stateWithBurn(cash, expense decimal.Decimal) *entity.FinancialState {
	state := entity.NewFinancialState(cash, decimal.NewFromInt(5000))
	if expense.IsPositive() {
		state.Transactions = []*entity.Transaction{
			entity.NewTransaction(time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC), "Rent", expense, "Housing", entity.TransactionTypeExpense),
		}
	}
	return state
}

// stateWithDTI builds a state whose debt-to-income ratio is exactly
// debtService/income*100, using a single loan and the income fallback.
func stateWithDTI(income, debtService decimal.Decimal) *entity.FinancialState {
	state := entity.NewFinancialState(decimal.NewFromInt(10000), income)
	if debtService.IsPositive() {
		state.Loans = []*entity.Loan{
			entity.NewLoan("Loan", decimal.NewFromInt(50000), 5, 120, debtService),
		}
	}
	return state
}

func TestEmergencyFundBands(t *testing.T) {
	tests := []struct {
		name    string
		cash    decimal.Decimal
		expense decimal.Decimal
		band    EmergencyFundBand
	}{
		{"six months is excellent", decimal.NewFromInt(6000), decimal.NewFromInt(1000), EmergencyFundExcellent},
		{"ten months is excellent", decimal.NewFromInt(10000), decimal.NewFromInt(1000), EmergencyFundExcellent},
		{"exactly three months is good", decimal.NewFromInt(3000), decimal.NewFromInt(1000), EmergencyFundGood},
		{"just under three months is at risk", decimal.NewFromFloat(2999), decimal.NewFromInt(1000), EmergencyFundAtRisk},
		{"exactly one month is at risk", decimal.NewFromInt(1000), decimal.NewFromInt(1000), EmergencyFundAtRisk},
		{"under one month is critical", decimal.NewFromInt(999), decimal.NewFromInt(1000), EmergencyFundCritical},
		{"zero burn is critical", decimal.NewFromInt(5000), decimal.Zero, EmergencyFundCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Assess(stateWithBurn(tt.cash, tt.expense))
			if result.EmergencyFundBand != tt.band {
				t.Errorf("expected band %q, got %q (months=%s)", tt.band, result.EmergencyFundBand, result.EmergencyFundMonths)
			}
		})
	}
}

func TestEmergencyFundRatioBoundary(t *testing.T) {
	// ratio 3.0 must land in Good, 2.999 in At Risk
	good := Assess(stateWithBurn(decimal.NewFromInt(3000), decimal.NewFromInt(1000)))
	if good.EmergencyFundBand != EmergencyFundGood {
		t.Errorf("ratio 3.0: expected Good, got %q", good.EmergencyFundBand)
	}

	atRisk := Assess(stateWithBurn(decimal.NewFromFloat(2999), decimal.NewFromInt(1000)))
	if atRisk.EmergencyFundBand != EmergencyFundAtRisk {
		t.Errorf("ratio 2.999: expected At Risk, got %q", atRisk.EmergencyFundBand)
	}
}

func TestDebtToIncomeBands(t *testing.T) {
	tests := []struct {
		name        string
		income      decimal.Decimal
		debtService decimal.Decimal
		band        DebtIncomeBand
	}{
		{"no debt service is debt free", decimal.NewFromInt(5000), decimal.Zero, DebtIncomeDebtFree},
		{"zero income is debt free", decimal.Zero, decimal.NewFromInt(500), DebtIncomeDebtFree},
		{"twenty percent is healthy", decimal.NewFromInt(5000), decimal.NewFromInt(1000), DebtIncomeHealthy},
		{"exactly thirty-six percent is manageable", decimal.NewFromInt(10000), decimal.NewFromInt(3600), DebtIncomeManageable},
		{"just above thirty-six is high burden", decimal.NewFromInt(10000), decimal.NewFromInt(3601), DebtIncomeHighBurden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Assess(stateWithDTI(tt.income, tt.debtService))
			if result.DebtToIncomeBand != tt.band {
				t.Errorf("expected band %q, got %q (dti=%s)", tt.band, result.DebtToIncomeBand, result.DebtToIncomeRatio)
			}
		})
	}
}

func TestHighInterestFlag(t *testing.T) {
	t.Run("card above twenty percent APR", func(t *testing.T) {
		state := entity.NewFinancialState(decimal.Zero, decimal.NewFromInt(5000))
		state.CreditCards = []*entity.CreditCard{
			entity.NewCreditCard("Rewards", 2.0, decimal.Zero, 24.99),
		}
		if !Assess(state).HighInterestDebt {
			t.Error("expected high-interest flag for 24.99% APR card")
		}
	})

	t.Run("loan above ten percent APR", func(t *testing.T) {
		state := entity.NewFinancialState(decimal.Zero, decimal.NewFromInt(5000))
		state.Loans = []*entity.Loan{
			entity.NewLoan("Personal", decimal.NewFromInt(8000), 12.5, 36, decimal.NewFromInt(268)),
		}
		if !Assess(state).HighInterestDebt {
			t.Error("expected high-interest flag for 12.5% APR loan")
		}
	})

	t.Run("boundary rates do not trip the flag", func(t *testing.T) {
		state := entity.NewFinancialState(decimal.Zero, decimal.NewFromInt(5000))
		state.CreditCards = []*entity.CreditCard{
			entity.NewCreditCard("Standard", 1.0, decimal.Zero, 20.0),
		}
		state.Loans = []*entity.Loan{
			entity.NewLoan("Mortgage", decimal.NewFromInt(200000), 10.0, 360, decimal.NewFromInt(1755)),
		}
		if Assess(state).HighInterestDebt {
			t.Error("20% card and 10% loan are at the threshold, not above it")
		}
	})
}

func TestCreditScore(t *testing.T) {
	t.Run("clean state scores 750", func(t *testing.T) {
		state := entity.NewFinancialState(decimal.NewFromInt(10000), decimal.NewFromInt(5000))
		if score := Assess(state).CreditScore; score != 750 {
			t.Errorf("expected 750, got %d", score)
		}
	})

	t.Run("loans and cards deduct points", func(t *testing.T) {
		// DTI = 500/5000 = 10% (below the 30% free threshold), one loan and
		// two cards: 750 - 5 - 4 = 741.
		state := entity.NewFinancialState(decimal.NewFromInt(10000), decimal.NewFromInt(5000))
		state.Loans = []*entity.Loan{
			entity.NewLoan("Car", decimal.NewFromInt(20000), 4, 60, decimal.NewFromInt(500)),
		}
		state.CreditCards = []*entity.CreditCard{
			entity.NewCreditCard("A", 1.0, decimal.Zero, 18),
			entity.NewCreditCard("B", 1.5, decimal.Zero, 19),
		}
		if score := Assess(state).CreditScore; score != 741 {
			t.Errorf("expected 741, got %d", score)
		}
	})

	t.Run("high DTI deducts above thirty percent", func(t *testing.T) {
		// DTI = 2500/5000 = 50%; deduction 20 plus 5 for the loan: 725.
		state := entity.NewFinancialState(decimal.NewFromInt(10000), decimal.NewFromInt(5000))
		state.Loans = []*entity.Loan{
			entity.NewLoan("Big", decimal.NewFromInt(100000), 6, 120, decimal.NewFromInt(2500)),
		}
		if score := Assess(state).CreditScore; score != 725 {
			t.Errorf("expected 725, got %d", score)
		}
	})

	t.Run("score is clamped to the floor", func(t *testing.T) {
		state := entity.NewFinancialState(decimal.Zero, decimal.NewFromInt(100))
		state.Loans = []*entity.Loan{
			entity.NewLoan("Crushing", decimal.NewFromInt(500000), 9, 360, decimal.NewFromInt(600)),
		}
		if score := Assess(state).CreditScore; score != 300 {
			t.Errorf("expected floor 300, got %d", score)
		}
	})

	t.Run("assessment is deterministic", func(t *testing.T) {
		state := stateWithDTI(decimal.NewFromInt(5000), decimal.NewFromInt(1200))
		first := Assess(state)
		second := Assess(state)
		if first.CreditScore != second.CreditScore || first.DebtToIncomeBand != second.DebtToIncomeBand {
			t.Error("identical states must assess identically")
		}
	})
}
