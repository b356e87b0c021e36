package valueobject

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fincast/backend/internal/domain/entity"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestAggregateMonthlyFlow(t *testing.T) {
	t.Run("sums income and expense transactions", func(t *testing.T) {
		state := entity.NewFinancialState(decimal.NewFromInt(1000), decimal.NewFromInt(5000))
		state.Transactions = []*entity.Transaction{
			entity.NewTransaction(date(2026, 1, 5), "Salary", decimal.NewFromInt(4800), "Work", entity.TransactionTypeIncome),
			entity.NewTransaction(date(2026, 1, 10), "Rent", decimal.NewFromInt(1500), "Housing", entity.TransactionTypeExpense),
			entity.NewTransaction(date(2026, 1, 12), "Groceries", decimal.NewFromInt(400), "Food", entity.TransactionTypeExpense),
		}

		flow := AggregateMonthlyFlow(state)

		if !flow.Income.Equal(decimal.NewFromInt(4800)) {
			t.Errorf("expected income 4800, got %s", flow.Income)
		}
		if !flow.Expense.Equal(decimal.NewFromInt(1900)) {
			t.Errorf("expected expense 1900, got %s", flow.Expense)
		}
	})

	t.Run("falls back to monthly income when no income transactions", func(t *testing.T) {
		state := entity.NewFinancialState(decimal.NewFromInt(1000), decimal.NewFromInt(6200))
		state.Transactions = []*entity.Transaction{
			entity.NewTransaction(date(2026, 1, 10), "Rent", decimal.NewFromInt(1500), "Housing", entity.TransactionTypeExpense),
		}

		flow := AggregateMonthlyFlow(state)

		if !flow.Income.Equal(decimal.NewFromInt(6200)) {
			t.Errorf("expected fallback income 6200, got %s", flow.Income)
		}
	})

	t.Run("cashback uses highest rate card only", func(t *testing.T) {
		state := entity.NewFinancialState(decimal.Zero, decimal.Zero)
		state.Transactions = []*entity.Transaction{
			entity.NewTransaction(date(2026, 1, 10), "Shopping", decimal.NewFromInt(1000), "Misc", entity.TransactionTypeExpense),
		}
		state.CreditCards = []*entity.CreditCard{
			entity.NewCreditCard("Basic", 1.0, decimal.Zero, 19.9),
			entity.NewCreditCard("Premium", 2.5, decimal.NewFromInt(95), 22.9),
		}

		flow := AggregateMonthlyFlow(state)

		// 1000 * 2.5% = 25, the 1% card is ignored
		if !flow.Cashback.Equal(decimal.NewFromInt(25)) {
			t.Errorf("expected cashback 25, got %s", flow.Cashback)
		}
	})

	t.Run("no cards means no cashback", func(t *testing.T) {
		state := entity.NewFinancialState(decimal.Zero, decimal.Zero)
		state.Transactions = []*entity.Transaction{
			entity.NewTransaction(date(2026, 1, 10), "Shopping", decimal.NewFromInt(1000), "Misc", entity.TransactionTypeExpense),
		}

		flow := AggregateMonthlyFlow(state)

		if !flow.Cashback.IsZero() {
			t.Errorf("expected zero cashback, got %s", flow.Cashback)
		}
	})

	t.Run("paid-off loans are excluded from debt service", func(t *testing.T) {
		state := entity.NewFinancialState(decimal.Zero, decimal.Zero)
		active := entity.NewLoan("Car", decimal.NewFromInt(18400), 4.5, 84, decimal.NewFromInt(260))
		settled := entity.NewLoan("Old card debt", decimal.NewFromInt(3000), 12, 24, decimal.NewFromInt(140))
		settled.RemainingBalance = decimal.Zero
		state.Loans = []*entity.Loan{active, settled}

		flow := AggregateMonthlyFlow(state)

		if !flow.DebtService.Equal(decimal.NewFromInt(260)) {
			t.Errorf("expected debt service 260, got %s", flow.DebtService)
		}
	})

	t.Run("investment contributions are summed", func(t *testing.T) {
		state := entity.NewFinancialState(decimal.Zero, decimal.Zero)
		state.Investments = []*entity.Investment{
			entity.NewInvestment("Index fund", decimal.NewFromInt(12500), 6.5, decimal.NewFromInt(200), entity.InvestmentRiskMedium),
			entity.NewInvestment("Bonds", decimal.NewFromInt(5000), 3.0, decimal.NewFromInt(100), entity.InvestmentRiskLow),
		}

		flow := AggregateMonthlyFlow(state)

		if !flow.InvestContribution.Equal(decimal.NewFromInt(300)) {
			t.Errorf("expected contribution 300, got %s", flow.InvestContribution)
		}
	})

	t.Run("total burn is expense plus debt service", func(t *testing.T) {
		flow := MonthlyFlow{
			Expense:     decimal.NewFromInt(1900),
			DebtService: decimal.NewFromInt(260),
		}
		if !flow.TotalBurn().Equal(decimal.NewFromInt(2160)) {
			t.Errorf("expected burn 2160, got %s", flow.TotalBurn())
		}
	})
}
