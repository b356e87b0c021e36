// Package valueobject holds pure domain logic with no dependencies on the
// application or integration layers.
package valueobject

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/fincast/backend/internal/domain/entity"
)

// EmergencyFundBand classifies how many months of burn the cash reserve covers.
type EmergencyFundBand string

const (
	EmergencyFundExcellent EmergencyFundBand = "Excellent" // 6 months or more
	EmergencyFundGood      EmergencyFundBand = "Good"      // 3 to 6 months
	EmergencyFundAtRisk    EmergencyFundBand = "At Risk"   // 1 to 3 months
	EmergencyFundCritical  EmergencyFundBand = "Critical"  // under 1 month
)

// DebtIncomeBand classifies the debt-service share of monthly income.
type DebtIncomeBand string

const (
	DebtIncomeDebtFree   DebtIncomeBand = "Debt Free"   // exactly 0%
	DebtIncomeHealthy    DebtIncomeBand = "Healthy"     // up to 20%
	DebtIncomeManageable DebtIncomeBand = "Manageable"  // up to 36%
	DebtIncomeHighBurden DebtIncomeBand = "High Burden" // above 36%
)

// Thresholds for the high-interest flag and the score heuristic.
const (
	highInterestCardAPR = 20.0
	highInterestLoanAPR = 10.0

	scoreBase    = 750.0
	scoreDTIFree = 30.0 // DTI below this does not cost points
	scoreFloor   = 300
	scoreCeiling = 850
)

// Assessment is the instantaneous risk picture of a financial state. It is
// derived from the snapshot itself, not from a projection.
type Assessment struct {
	EmergencyFundMonths decimal.Decimal   `json:"emergency_fund_months"`
	EmergencyFundBand   EmergencyFundBand `json:"emergency_fund_band"`
	DebtToIncomeRatio   decimal.Decimal   `json:"debt_to_income_ratio"` // percent
	DebtToIncomeBand    DebtIncomeBand    `json:"debt_to_income_band"`
	HighInterestDebt    bool              `json:"high_interest_debt"`
	CreditScore         int               `json:"credit_score"`
}

// Assess classifies a financial state snapshot. Pure and deterministic:
// denominators that may legitimately be zero (monthly burn, monthly income)
// short-circuit the ratio to zero instead of erroring.
func Assess(state *entity.FinancialState) *Assessment {
	flow := AggregateMonthlyFlow(state)

	emergencyMonths := decimal.Zero
	if burn := flow.TotalBurn(); burn.IsPositive() {
		emergencyMonths = state.CashBalance.Div(burn)
	}

	dti := decimal.Zero
	if flow.Income.IsPositive() {
		dti = flow.DebtService.Div(flow.Income).Mul(decimal.NewFromInt(100))
	}

	return &Assessment{
		EmergencyFundMonths: emergencyMonths,
		EmergencyFundBand:   ClassifyEmergencyFund(emergencyMonths),
		DebtToIncomeRatio:   dti,
		DebtToIncomeBand:    ClassifyDebtToIncome(dti),
		HighInterestDebt:    HasHighInterestDebt(state),
		CreditScore:         EstimateCreditScore(dti, len(state.Loans), len(state.CreditCards)),
	}
}

// ClassifyEmergencyFund maps months-of-burn coverage to its band.
func ClassifyEmergencyFund(months decimal.Decimal) EmergencyFundBand {
	switch {
	case months.GreaterThanOrEqual(decimal.NewFromInt(6)):
		return EmergencyFundExcellent
	case months.GreaterThanOrEqual(decimal.NewFromInt(3)):
		return EmergencyFundGood
	case months.GreaterThanOrEqual(decimal.NewFromInt(1)):
		return EmergencyFundAtRisk
	default:
		return EmergencyFundCritical
	}
}

// ClassifyDebtToIncome maps a debt-to-income percentage to its band.
func ClassifyDebtToIncome(dtiPercent decimal.Decimal) DebtIncomeBand {
	switch {
	case dtiPercent.IsZero():
		return DebtIncomeDebtFree
	case dtiPercent.LessThanOrEqual(decimal.NewFromInt(20)):
		return DebtIncomeHealthy
	case dtiPercent.LessThanOrEqual(decimal.NewFromInt(36)):
		return DebtIncomeManageable
	default:
		return DebtIncomeHighBurden
	}
}

// HasHighInterestDebt reports whether any card is above 20% APR or any loan
// above 10% APR.
func HasHighInterestDebt(state *entity.FinancialState) bool {
	for _, c := range state.CreditCards {
		if c.InterestRate > highInterestCardAPR {
			return true
		}
	}
	for _, l := range state.Loans {
		if l.InterestRate > highInterestLoanAPR {
			return true
		}
	}
	return false
}

// EstimateCreditScore is an illustrative heuristic, not a credit-bureau
// model: it starts at 750 and deducts for debt load above 30% DTI and for
// the number of open loans and cards, clamped to the 300-850 range.
func EstimateCreditScore(dtiPercent decimal.Decimal, loanCount, cardCount int) int {
	score := scoreBase - math.Max(0, dtiPercent.InexactFloat64()-scoreDTIFree) -
		5*float64(loanCount) - 2*float64(cardCount)

	clamped := int(math.Round(score))
	if clamped < scoreFloor {
		return scoreFloor
	}
	if clamped > scoreCeiling {
		return scoreCeiling
	}
	return clamped
}
