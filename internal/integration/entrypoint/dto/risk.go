// Package dto defines data transfer objects for API requests and responses.
package dto

import "github.com/fincast/backend/internal/domain/valueobject"

// AssessmentResponse represents the risk assessment of a state snapshot.
type AssessmentResponse struct {
	EmergencyFundMonths string `json:"emergency_fund_months"`
	EmergencyFundBand   string `json:"emergency_fund_band"`
	DebtToIncomeRatio   string `json:"debt_to_income_ratio"`
	DebtToIncomeBand    string `json:"debt_to_income_band"`
	HighInterestDebt    bool   `json:"high_interest_debt"`
	CreditScore         int    `json:"credit_score"`
}

// ToAssessmentResponse converts a domain Assessment to its DTO.
func ToAssessmentResponse(assessment *valueobject.Assessment) AssessmentResponse {
	return AssessmentResponse{
		EmergencyFundMonths: assessment.EmergencyFundMonths.StringFixed(1),
		EmergencyFundBand:   string(assessment.EmergencyFundBand),
		DebtToIncomeRatio:   assessment.DebtToIncomeRatio.StringFixed(1),
		DebtToIncomeBand:    string(assessment.DebtToIncomeBand),
		HighInterestDebt:    assessment.HighInterestDebt,
		CreditScore:         assessment.CreditScore,
	}
}
