// Package state contains use cases that read and mutate a user's financial state.
package state

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fincast/backend/internal/application/adapter"
	"github.com/fincast/backend/internal/domain/entity"
	"github.com/fincast/backend/internal/domain/valueobject"
)

// AddLoanInput represents the input for adding a loan.
type AddLoanInput struct {
	UserID       uuid.UUID
	Name         string
	Principal    decimal.Decimal
	InterestRate float64
	TermMonths   int
}

// AddLoanUseCase adds a new amortizing loan to the user's state. The fixed
// monthly payment is computed here, once, through the amortization
// calculator; invalid parameters never reach the database.
type AddLoanUseCase struct {
	stateRepo       adapter.StateRepository
	projectionCache adapter.ProjectionCache
}

// NewAddLoanUseCase creates a new AddLoanUseCase instance.
func NewAddLoanUseCase(stateRepo adapter.StateRepository, projectionCache adapter.ProjectionCache) *AddLoanUseCase {
	return &AddLoanUseCase{stateRepo: stateRepo, projectionCache: projectionCache}
}

// Execute validates the loan parameters, computes the payment and persists
// the loan.
func (uc *AddLoanUseCase) Execute(ctx context.Context, input AddLoanInput) (*entity.Loan, error) {
	payment, err := valueobject.MonthlyPayment(input.Principal, input.InterestRate, input.TermMonths)
	if err != nil {
		return nil, err
	}

	loan := entity.NewLoan(input.Name, input.Principal, input.InterestRate, input.TermMonths, payment)

	if err := uc.stateRepo.AddLoan(ctx, input.UserID, loan); err != nil {
		return nil, fmt.Errorf("failed to save loan: %w", err)
	}

	invalidateProjections(ctx, uc.projectionCache, input.UserID)
	return loan, nil
}
