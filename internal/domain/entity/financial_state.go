// Package entity defines the core business entities for the domain layer.
package entity

import "github.com/shopspring/decimal"

// FinancialState is the root aggregate: a snapshot of everything the engine
// needs to project a household's finances forward. The "current" state is
// mutated in place by user actions; any what-if variant must be derived with
// Clone so the two never share mutable sub-objects.
type FinancialState struct {
	CashBalance   decimal.Decimal
	MonthlyIncome decimal.Decimal // Fallback when no income transactions exist
	Transactions  []*Transaction
	CreditCards   []*CreditCard
	Loans         []*Loan
	Investments   []*Investment
}

// NewFinancialState creates an empty state with the given starting figures.
func NewFinancialState(cashBalance, monthlyIncome decimal.Decimal) *FinancialState {
	return &FinancialState{
		CashBalance:   cashBalance,
		MonthlyIncome: monthlyIncome,
	}
}

// Clone returns a deep copy of the state. Every nested entity is cloned
// independently so that mutating the copy (or its loans/investments) can
// never leak into the original. Projection and what-if branching both rely
// on this.
func (s *FinancialState) Clone() *FinancialState {
	clone := &FinancialState{
		CashBalance:   s.CashBalance,
		MonthlyIncome: s.MonthlyIncome,
	}

	if s.Transactions != nil {
		clone.Transactions = make([]*Transaction, len(s.Transactions))
		for i, t := range s.Transactions {
			clone.Transactions[i] = t.Clone()
		}
	}

	if s.CreditCards != nil {
		clone.CreditCards = make([]*CreditCard, len(s.CreditCards))
		for i, c := range s.CreditCards {
			clone.CreditCards[i] = c.Clone()
		}
	}

	if s.Loans != nil {
		clone.Loans = make([]*Loan, len(s.Loans))
		for i, l := range s.Loans {
			clone.Loans[i] = l.Clone()
		}
	}

	if s.Investments != nil {
		clone.Investments = make([]*Investment, len(s.Investments))
		for i, inv := range s.Investments {
			clone.Investments[i] = inv.Clone()
		}
	}

	return clone
}

// TotalLoanBalance returns the sum of remaining balances across all loans.
func (s *FinancialState) TotalLoanBalance() decimal.Decimal {
	total := decimal.Zero
	for _, l := range s.Loans {
		total = total.Add(l.RemainingBalance)
	}
	return total
}

// TotalLoanPrincipal returns the sum of original principals across all loans.
func (s *FinancialState) TotalLoanPrincipal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range s.Loans {
		total = total.Add(l.Principal)
	}
	return total
}

// TotalInvestmentBalance returns the sum of balances across all investments.
func (s *FinancialState) TotalInvestmentBalance() decimal.Decimal {
	total := decimal.Zero
	for _, inv := range s.Investments {
		total = total.Add(inv.Balance)
	}
	return total
}

// NetWorth returns cash plus investment balances minus remaining loan
// balances at the current point in time.
func (s *FinancialState) NetWorth() decimal.Decimal {
	return s.CashBalance.Add(s.TotalInvestmentBalance()).Sub(s.TotalLoanBalance())
}
