// Package state contains use cases that read and mutate a user's financial state.
package state

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fincast/backend/internal/application/adapter"
	"github.com/fincast/backend/internal/domain/entity"
)

// AddCreditCardInput represents the input for adding a credit card.
type AddCreditCardInput struct {
	UserID       uuid.UUID
	Name         string
	CashbackRate float64
	AnnualFee    decimal.Decimal
	InterestRate float64
}

// AddCreditCardUseCase adds a new credit card to the user's state.
type AddCreditCardUseCase struct {
	stateRepo       adapter.StateRepository
	projectionCache adapter.ProjectionCache
}

// NewAddCreditCardUseCase creates a new AddCreditCardUseCase instance.
func NewAddCreditCardUseCase(stateRepo adapter.StateRepository, projectionCache adapter.ProjectionCache) *AddCreditCardUseCase {
	return &AddCreditCardUseCase{stateRepo: stateRepo, projectionCache: projectionCache}
}

// Execute persists the credit card.
func (uc *AddCreditCardUseCase) Execute(ctx context.Context, input AddCreditCardInput) (*entity.CreditCard, error) {
	card := entity.NewCreditCard(input.Name, input.CashbackRate, input.AnnualFee, input.InterestRate)

	if err := uc.stateRepo.AddCreditCard(ctx, input.UserID, card); err != nil {
		return nil, fmt.Errorf("failed to save credit card: %w", err)
	}

	invalidateProjections(ctx, uc.projectionCache, input.UserID)
	return card, nil
}
