// Package valueobject holds pure domain logic with no dependencies on the
// application or integration layers.
package valueobject

import (
	"github.com/shopspring/decimal"

	"github.com/fincast/backend/internal/domain/entity"
)

// MonthlyFlow is the aggregated monthly cash flow derived from a state
// snapshot: what comes in, what goes out, and what gets redirected into debt
// service and investment contributions each month.
type MonthlyFlow struct {
	Income             decimal.Decimal
	Expense            decimal.Decimal
	Cashback           decimal.Decimal
	DebtService        decimal.Decimal
	InvestContribution decimal.Decimal
}

// TotalBurn returns expenses plus debt service, the figure the emergency fund
// classifier measures cash against.
func (f MonthlyFlow) TotalBurn() decimal.Decimal {
	return f.Expense.Add(f.DebtService)
}

// AggregateMonthlyFlow derives the monthly flow totals from a snapshot. It is
// a pure function; the snapshot is not modified.
//
// The recorded transaction log is treated as the recurring monthly pattern:
// no distinction is made between one-time and recurring entries. If no income
// transactions exist, the state's MonthlyIncome fallback is used. Cashback is
// estimated with the single highest cashback rate across all cards, applied
// to the full expense total. Paid-off loans contribute nothing to debt
// service.
func AggregateMonthlyFlow(state *entity.FinancialState) MonthlyFlow {
	flow := MonthlyFlow{
		Income:             decimal.Zero,
		Expense:            decimal.Zero,
		Cashback:           decimal.Zero,
		DebtService:        decimal.Zero,
		InvestContribution: decimal.Zero,
	}

	for _, t := range state.Transactions {
		switch t.Type {
		case entity.TransactionTypeIncome:
			flow.Income = flow.Income.Add(t.Amount)
		case entity.TransactionTypeExpense:
			flow.Expense = flow.Expense.Add(t.Amount)
		}
	}

	if flow.Income.IsZero() {
		flow.Income = state.MonthlyIncome
	}

	maxCashbackRate := 0.0
	for _, c := range state.CreditCards {
		if c.CashbackRate > maxCashbackRate {
			maxCashbackRate = c.CashbackRate
		}
	}
	if maxCashbackRate > 0 {
		flow.Cashback = flow.Expense.Mul(decimal.NewFromFloat(maxCashbackRate / 100))
	}

	for _, l := range state.Loans {
		if l.PaidOff() {
			continue
		}
		flow.DebtService = flow.DebtService.Add(l.MonthlyPayment)
	}

	for _, inv := range state.Investments {
		flow.InvestContribution = flow.InvestContribution.Add(inv.MonthlyContribution)
	}

	return flow
}
