// Package valueobject holds pure domain logic with no dependencies on the
// application or integration layers.
package valueobject

import (
	"math"

	"github.com/shopspring/decimal"

	domainerror "github.com/fincast/backend/internal/domain/error"
)

// MonthlyPayment computes the fixed monthly payment for an amortizing loan
// using the standard annuity formula:
//
//	r = annualRatePercent / 100 / 12
//	payment = P * r * (1+r)^n / ((1+r)^n - 1)
//
// A zero rate degenerates to an even split P / n. The result is not rounded
// to currency precision; rounding is a presentation concern.
func MonthlyPayment(principal decimal.Decimal, annualRatePercent float64, termMonths int) (decimal.Decimal, error) {
	if !principal.IsPositive() {
		return decimal.Zero, domainerror.NewEngineError(
			domainerror.ErrCodeInvalidLoanPrincipal,
			"loan principal must be positive",
			domainerror.ErrInvalidLoanParameters,
		)
	}
	if termMonths <= 0 {
		return decimal.Zero, domainerror.NewEngineError(
			domainerror.ErrCodeInvalidLoanTerm,
			"loan term must be a positive number of months",
			domainerror.ErrInvalidLoanParameters,
		)
	}
	if annualRatePercent < 0 {
		return decimal.Zero, domainerror.NewEngineError(
			domainerror.ErrCodeInvalidLoanRate,
			"loan interest rate cannot be negative",
			domainerror.ErrInvalidLoanParameters,
		)
	}

	monthlyRate := annualRatePercent / 100 / 12
	if monthlyRate == 0 {
		return principal.Div(decimal.NewFromInt(int64(termMonths))), nil
	}

	// The power term is computed in float64; money stays decimal.
	factor := math.Pow(1+monthlyRate, float64(termMonths))
	payment := principal.InexactFloat64() * monthlyRate * factor / (factor - 1)
	return decimal.NewFromFloat(payment), nil
}

// MonthlyRate converts an annual percent rate to its monthly decimal form,
// e.g. 6.0 -> 0.005.
func MonthlyRate(annualRatePercent float64) decimal.Decimal {
	return decimal.NewFromFloat(annualRatePercent / 100 / 12)
}

// PaymentSplit splits one fixed payment against the current remaining balance
// into its interest and principal portions. Interest is charged on the
// pre-payment balance, which is what makes the schedule an amortization.
func PaymentSplit(remainingBalance decimal.Decimal, annualRatePercent float64, payment decimal.Decimal) (interest, principal decimal.Decimal) {
	interest = remainingBalance.Mul(MonthlyRate(annualRatePercent))
	principal = payment.Sub(interest)
	return interest, principal
}
