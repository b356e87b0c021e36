// Package state contains use cases that mutate the user's financial state.
package state

import (
	"context"

	"github.com/google/uuid"

	"github.com/fincast/backend/internal/application/adapter"
)

// DeleteLoanUseCase removes a loan from the user's state.
type DeleteLoanUseCase struct {
	stateRepo       adapter.StateRepository
	projectionCache adapter.ProjectionCache
}

// NewDeleteLoanUseCase creates a new DeleteLoanUseCase instance.
func NewDeleteLoanUseCase(stateRepo adapter.StateRepository, projectionCache adapter.ProjectionCache) *DeleteLoanUseCase {
	return &DeleteLoanUseCase{stateRepo: stateRepo, projectionCache: projectionCache}
}

// Execute removes the loan and invalidates the user's cached projections.
func (uc *DeleteLoanUseCase) Execute(ctx context.Context, userID, loanID uuid.UUID) error {
	if err := uc.stateRepo.DeleteLoan(ctx, userID, loanID); err != nil {
		return err
	}
	invalidateProjections(ctx, uc.projectionCache, userID)
	return nil
}

// DeleteCreditCardUseCase removes a credit card from the user's state.
type DeleteCreditCardUseCase struct {
	stateRepo       adapter.StateRepository
	projectionCache adapter.ProjectionCache
}

// NewDeleteCreditCardUseCase creates a new DeleteCreditCardUseCase instance.
func NewDeleteCreditCardUseCase(stateRepo adapter.StateRepository, projectionCache adapter.ProjectionCache) *DeleteCreditCardUseCase {
	return &DeleteCreditCardUseCase{stateRepo: stateRepo, projectionCache: projectionCache}
}

// Execute removes the card and invalidates the user's cached projections.
func (uc *DeleteCreditCardUseCase) Execute(ctx context.Context, userID, cardID uuid.UUID) error {
	if err := uc.stateRepo.DeleteCreditCard(ctx, userID, cardID); err != nil {
		return err
	}
	invalidateProjections(ctx, uc.projectionCache, userID)
	return nil
}

// DeleteInvestmentUseCase removes an investment from the user's state.
type DeleteInvestmentUseCase struct {
	stateRepo       adapter.StateRepository
	projectionCache adapter.ProjectionCache
}

// NewDeleteInvestmentUseCase creates a new DeleteInvestmentUseCase instance.
func NewDeleteInvestmentUseCase(stateRepo adapter.StateRepository, projectionCache adapter.ProjectionCache) *DeleteInvestmentUseCase {
	return &DeleteInvestmentUseCase{stateRepo: stateRepo, projectionCache: projectionCache}
}

// Execute removes the investment and invalidates the user's cached projections.
func (uc *DeleteInvestmentUseCase) Execute(ctx context.Context, userID, investmentID uuid.UUID) error {
	if err := uc.stateRepo.DeleteInvestment(ctx, userID, investmentID); err != nil {
		return err
	}
	invalidateProjections(ctx, uc.projectionCache, userID)
	return nil
}
