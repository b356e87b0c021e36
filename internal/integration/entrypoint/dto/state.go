// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/fincast/backend/internal/domain/entity"
)

// UpdateProfileRequest represents the request body for updating the cash
// balance and fallback monthly income.
type UpdateProfileRequest struct {
	CashBalance   float64 `json:"cash_balance"`
	MonthlyIncome float64 `json:"monthly_income" binding:"gte=0"`
}

// CreateTransactionRequest represents the request body for recording a transaction.
type CreateTransactionRequest struct {
	Date        string  `json:"date" binding:"required"`
	Description string  `json:"description" binding:"required,min=1,max=255"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Category    string  `json:"category,omitempty" binding:"omitempty,max=100"`
	Type        string  `json:"type" binding:"required,oneof=expense income"`
}

// CreateLoanRequest represents the request body for adding a loan.
type CreateLoanRequest struct {
	Name         string  `json:"name" binding:"required,min=1,max=100"`
	Principal    float64 `json:"principal" binding:"required,gt=0"`
	InterestRate float64 `json:"interest_rate" binding:"gte=0"`
	TermMonths   int     `json:"term_months" binding:"required,gt=0"`
}

// CreateCreditCardRequest represents the request body for adding a credit card.
type CreateCreditCardRequest struct {
	Name         string  `json:"name" binding:"required,min=1,max=100"`
	CashbackRate float64 `json:"cashback_rate" binding:"gte=0"`
	AnnualFee    float64 `json:"annual_fee" binding:"gte=0"`
	InterestRate float64 `json:"interest_rate" binding:"gte=0"`
}

// CreateInvestmentRequest represents the request body for adding an investment.
type CreateInvestmentRequest struct {
	Name                string  `json:"name" binding:"required,min=1,max=100"`
	Balance             float64 `json:"balance" binding:"gte=0"`
	AnnualReturnRate    float64 `json:"annual_return_rate"`
	MonthlyContribution float64 `json:"monthly_contribution" binding:"gte=0"`
	RiskTier            string  `json:"risk_tier" binding:"required,oneof=low medium high"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	Description string    `json:"description"`
	Amount      string    `json:"amount"`
	Category    string    `json:"category,omitempty"`
	Type        string    `json:"type"`
	CreatedAt   time.Time `json:"created_at"`
}

// LoanResponse represents a loan in API responses.
type LoanResponse struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Principal        string  `json:"principal"`
	RemainingBalance string  `json:"remaining_balance"`
	InterestRate     float64 `json:"interest_rate"`
	MonthlyPayment   string  `json:"monthly_payment"`
	TermMonths       int     `json:"term_months"`
	PaidOff          bool    `json:"paid_off"`
}

// CreditCardResponse represents a credit card in API responses.
type CreditCardResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	CashbackRate float64 `json:"cashback_rate"`
	AnnualFee    string  `json:"annual_fee"`
	InterestRate float64 `json:"interest_rate"`
}

// InvestmentResponse represents an investment in API responses.
type InvestmentResponse struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	Balance             string  `json:"balance"`
	AnnualReturnRate    float64 `json:"annual_return_rate"`
	MonthlyContribution string  `json:"monthly_contribution"`
	RiskTier            string  `json:"risk_tier"`
}

// StateResponse represents the full financial state snapshot.
type StateResponse struct {
	CashBalance   string                `json:"cash_balance"`
	MonthlyIncome string                `json:"monthly_income"`
	NetWorth      string                `json:"net_worth"`
	Transactions  []TransactionResponse `json:"transactions"`
	CreditCards   []CreditCardResponse  `json:"credit_cards"`
	Loans         []LoanResponse        `json:"loans"`
	Investments   []InvestmentResponse  `json:"investments"`
}

// ToTransactionResponse converts a domain Transaction to its DTO.
func ToTransactionResponse(t *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID.String(),
		Date:        t.Date.Format("2006-01-02"),
		Description: t.Description,
		Amount:      t.Amount.StringFixed(2),
		Category:    t.Category,
		Type:        string(t.Type),
		CreatedAt:   t.CreatedAt,
	}
}

// ToLoanResponse converts a domain Loan to its DTO.
func ToLoanResponse(l *entity.Loan) LoanResponse {
	return LoanResponse{
		ID:               l.ID.String(),
		Name:             l.Name,
		Principal:        l.Principal.StringFixed(2),
		RemainingBalance: l.RemainingBalance.StringFixed(2),
		InterestRate:     l.InterestRate,
		MonthlyPayment:   l.MonthlyPayment.StringFixed(2),
		TermMonths:       l.TermMonths,
		PaidOff:          l.PaidOff(),
	}
}

// ToCreditCardResponse converts a domain CreditCard to its DTO.
func ToCreditCardResponse(c *entity.CreditCard) CreditCardResponse {
	return CreditCardResponse{
		ID:           c.ID.String(),
		Name:         c.Name,
		CashbackRate: c.CashbackRate,
		AnnualFee:    c.AnnualFee.StringFixed(2),
		InterestRate: c.InterestRate,
	}
}

// ToInvestmentResponse converts a domain Investment to its DTO.
func ToInvestmentResponse(i *entity.Investment) InvestmentResponse {
	return InvestmentResponse{
		ID:                  i.ID.String(),
		Name:                i.Name,
		Balance:             i.Balance.StringFixed(2),
		AnnualReturnRate:    i.AnnualReturnRate,
		MonthlyContribution: i.MonthlyContribution.StringFixed(2),
		RiskTier:            string(i.RiskTier),
	}
}

// ToStateResponse converts a domain FinancialState to its DTO.
func ToStateResponse(state *entity.FinancialState) StateResponse {
	response := StateResponse{
		CashBalance:   state.CashBalance.StringFixed(2),
		MonthlyIncome: state.MonthlyIncome.StringFixed(2),
		NetWorth:      state.NetWorth().StringFixed(2),
		Transactions:  make([]TransactionResponse, 0, len(state.Transactions)),
		CreditCards:   make([]CreditCardResponse, 0, len(state.CreditCards)),
		Loans:         make([]LoanResponse, 0, len(state.Loans)),
		Investments:   make([]InvestmentResponse, 0, len(state.Investments)),
	}

	for _, t := range state.Transactions {
		response.Transactions = append(response.Transactions, ToTransactionResponse(t))
	}
	for _, c := range state.CreditCards {
		response.CreditCards = append(response.CreditCards, ToCreditCardResponse(c))
	}
	for _, l := range state.Loans {
		response.Loans = append(response.Loans, ToLoanResponse(l))
	}
	for _, i := range state.Investments {
		response.Investments = append(response.Investments, ToInvestmentResponse(i))
	}

	return response
}
