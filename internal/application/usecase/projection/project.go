// Package projection contains the month-by-month financial projection use case.
package projection

import (
	"context"

	"github.com/shopspring/decimal"

	domainerror "github.com/fincast/backend/internal/domain/error"
	"github.com/fincast/backend/internal/domain/entity"
	"github.com/fincast/backend/internal/domain/valueobject"
)

// ProjectInput represents the input for a projection run.
type ProjectInput struct {
	State         *entity.FinancialState
	HorizonMonths int
}

// ProjectOutput represents the result of a projection run.
type ProjectOutput struct {
	Series []entity.MonthlyData `json:"series"`
}

// ProjectUseCase advances a financial state snapshot month by month across a
// horizon, producing a time series of cash, net-worth and investment values.
type ProjectUseCase struct{}

// NewProjectUseCase creates a new ProjectUseCase instance.
func NewProjectUseCase() *ProjectUseCase {
	return &ProjectUseCase{}
}

// Execute runs the simulation. The caller's snapshot is never modified: the
// run operates on a deep copy, so projecting the same state twice yields
// identical series and a baseline can safely back multiple what-if branches.
//
// For every month index 0..horizon a record is emitted before that month's
// flows are applied, so month 0 reflects the input snapshot exactly and the
// series always has horizon+1 entries. No flow is applied past the horizon.
func (uc *ProjectUseCase) Execute(ctx context.Context, input ProjectInput) (*ProjectOutput, error) {
	if input.HorizonMonths < 0 {
		return nil, domainerror.NewEngineError(
			domainerror.ErrCodeNegativeHorizon,
			"projection horizon cannot be negative",
			domainerror.ErrInvalidProjectionHorizon,
		)
	}

	work := input.State.Clone()
	flow := valueobject.AggregateMonthlyFlow(work)

	series := make([]entity.MonthlyData, 0, input.HorizonMonths+1)

	for month := 0; month <= input.HorizonMonths; month++ {
		series = append(series, entity.MonthlyData{
			Month:       month,
			Cash:        work.CashBalance,
			NetWorth:    work.NetWorth(),
			Investments: work.TotalInvestmentBalance(),
		})

		if month == input.HorizonMonths {
			break
		}

		uc.applyMonth(work, flow)
	}

	return &ProjectOutput{Series: series}, nil
}

// applyMonth applies one month of flows to the working state, in order:
// inflows, expenses, loan payments, investment contributions and growth.
func (uc *ProjectUseCase) applyMonth(work *entity.FinancialState, flow valueobject.MonthlyFlow) {
	work.CashBalance = work.CashBalance.Add(flow.Income).Add(flow.Cashback)
	work.CashBalance = work.CashBalance.Sub(flow.Expense)

	for _, loan := range work.Loans {
		if loan.PaidOff() {
			// No further cash debit once the balance has reached zero.
			continue
		}

		// Interest accrues on the pre-payment balance.
		_, principalPortion := valueobject.PaymentSplit(loan.RemainingBalance, loan.InterestRate, loan.MonthlyPayment)

		work.CashBalance = work.CashBalance.Sub(loan.MonthlyPayment)

		loan.RemainingBalance = loan.RemainingBalance.Sub(principalPortion)
		if loan.RemainingBalance.IsNegative() {
			loan.RemainingBalance = decimal.Zero
		}
	}

	for _, inv := range work.Investments {
		work.CashBalance = work.CashBalance.Sub(inv.MonthlyContribution)
		inv.Balance = inv.Balance.Add(inv.MonthlyContribution)

		// Growth compounds on the post-contribution balance.
		growth := inv.Balance.Mul(valueobject.MonthlyRate(inv.AnnualReturnRate))
		inv.Balance = inv.Balance.Add(growth)
	}
}
