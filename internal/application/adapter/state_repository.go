// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fincast/backend/internal/domain/entity"
)

// StateRepository defines persistence for a user's financial state. The
// engine itself never touches storage: repositories assemble a fully
// materialized FinancialState snapshot on demand and persist the individual
// entries the user adds or removes.
type StateRepository interface {
	// GetState assembles the full financial state snapshot for a user.
	GetState(ctx context.Context, userID uuid.UUID) (*entity.FinancialState, error)

	// SaveProfile creates or updates the user's cash balance and fallback
	// monthly income.
	SaveProfile(ctx context.Context, userID uuid.UUID, cashBalance, monthlyIncome decimal.Decimal) error

	// AddTransaction persists a new transaction for the user.
	AddTransaction(ctx context.Context, userID uuid.UUID, transaction *entity.Transaction) error

	// DeleteTransaction removes a transaction owned by the user.
	DeleteTransaction(ctx context.Context, userID, transactionID uuid.UUID) error

	// AddLoan persists a new loan for the user.
	AddLoan(ctx context.Context, userID uuid.UUID, loan *entity.Loan) error

	// DeleteLoan removes a loan owned by the user.
	DeleteLoan(ctx context.Context, userID, loanID uuid.UUID) error

	// AddCreditCard persists a new credit card for the user.
	AddCreditCard(ctx context.Context, userID uuid.UUID, card *entity.CreditCard) error

	// DeleteCreditCard removes a credit card owned by the user.
	DeleteCreditCard(ctx context.Context, userID, cardID uuid.UUID) error

	// AddInvestment persists a new investment for the user.
	AddInvestment(ctx context.Context, userID uuid.UUID, investment *entity.Investment) error

	// DeleteInvestment removes an investment owned by the user.
	DeleteInvestment(ctx context.Context, userID, investmentID uuid.UUID) error
}
