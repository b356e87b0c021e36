package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func baselineState() *FinancialState {
	state := NewFinancialState(decimal.NewFromInt(15400), decimal.NewFromInt(6200))
	state.Transactions = []*Transaction{
		NewTransaction(time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), "Salary", decimal.NewFromInt(6200), "Work", TransactionTypeIncome),
	}
	state.CreditCards = []*CreditCard{
		NewCreditCard("Everyday", 1.5, decimal.Zero, 21.9),
	}
	state.Loans = []*Loan{
		NewLoan("Car", decimal.NewFromInt(18400), 4.5, 84, decimal.NewFromInt(260)),
	}
	state.Investments = []*Investment{
		NewInvestment("Index fund", decimal.NewFromInt(12500), 6.5, decimal.NewFromInt(200), InvestmentRiskMedium),
	}
	return state
}

func TestFinancialStateClone(t *testing.T) {
	t.Run("clone does not share loan or investment objects", func(t *testing.T) {
		state := baselineState()
		clone := state.Clone()

		clone.Loans[0].RemainingBalance = decimal.NewFromInt(1)
		clone.Investments[0].Balance = decimal.NewFromInt(999999)
		clone.CashBalance = decimal.Zero

		if !state.Loans[0].RemainingBalance.Equal(decimal.NewFromInt(18400)) {
			t.Errorf("loan balance leaked into original: %s", state.Loans[0].RemainingBalance)
		}
		if !state.Investments[0].Balance.Equal(decimal.NewFromInt(12500)) {
			t.Errorf("investment balance leaked into original: %s", state.Investments[0].Balance)
		}
		if !state.CashBalance.Equal(decimal.NewFromInt(15400)) {
			t.Errorf("cash balance leaked into original: %s", state.CashBalance)
		}
	})

	t.Run("appending to clone slices leaves original untouched", func(t *testing.T) {
		state := baselineState()
		clone := state.Clone()

		clone.Loans = append(clone.Loans, NewLoan("New debt", decimal.NewFromInt(9000), 7, 36, decimal.NewFromInt(278)))
		clone.Transactions = append(clone.Transactions, NewTransaction(time.Now().UTC(), "Splurge", decimal.NewFromInt(50), "Misc", TransactionTypeExpense))

		if len(state.Loans) != 1 {
			t.Errorf("expected original to keep 1 loan, got %d", len(state.Loans))
		}
		if len(state.Transactions) != 1 {
			t.Errorf("expected original to keep 1 transaction, got %d", len(state.Transactions))
		}
	})

	t.Run("clone of empty state keeps nil slices", func(t *testing.T) {
		state := NewFinancialState(decimal.Zero, decimal.Zero)
		clone := state.Clone()

		if clone.Transactions != nil || clone.Loans != nil || clone.Investments != nil || clone.CreditCards != nil {
			t.Error("expected nil slices on clone of empty state")
		}
	})
}

func TestFinancialStateNetWorth(t *testing.T) {
	state := baselineState()

	// 15400 + 12500 - 18400 = 9500
	if !state.NetWorth().Equal(decimal.NewFromInt(9500)) {
		t.Errorf("expected net worth 9500, got %s", state.NetWorth())
	}
}

func TestLoanPaidOff(t *testing.T) {
	loan := NewLoan("Car", decimal.NewFromInt(18400), 4.5, 84, decimal.NewFromInt(260))
	if loan.PaidOff() {
		t.Error("fresh loan should not be paid off")
	}

	loan.RemainingBalance = decimal.Zero
	if !loan.PaidOff() {
		t.Error("loan with zero balance should be paid off")
	}
}
