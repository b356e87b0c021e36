// Package state contains use cases that read and mutate a user's financial state.
package state

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fincast/backend/internal/application/adapter"
	"github.com/fincast/backend/internal/domain/entity"
	domainerror "github.com/fincast/backend/internal/domain/error"
)

// AddTransactionInput represents the input for recording a transaction.
type AddTransactionInput struct {
	UserID      uuid.UUID
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Category    string
	Type        entity.TransactionType
}

// AddTransactionUseCase records a new transaction in the user's state.
type AddTransactionUseCase struct {
	stateRepo       adapter.StateRepository
	projectionCache adapter.ProjectionCache
}

// NewAddTransactionUseCase creates a new AddTransactionUseCase instance.
func NewAddTransactionUseCase(stateRepo adapter.StateRepository, projectionCache adapter.ProjectionCache) *AddTransactionUseCase {
	return &AddTransactionUseCase{stateRepo: stateRepo, projectionCache: projectionCache}
}

// Execute validates and persists the transaction.
func (uc *AddTransactionUseCase) Execute(ctx context.Context, input AddTransactionInput) (*entity.Transaction, error) {
	if !input.Type.Valid() {
		return nil, domainerror.NewStateError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if !input.Amount.IsPositive() {
		return nil, domainerror.NewStateError(
			domainerror.ErrCodeInvalidAmount,
			"transaction amount must be positive",
			domainerror.ErrInvalidAmount,
		)
	}

	transaction := entity.NewTransaction(input.Date, input.Description, input.Amount, input.Category, input.Type)

	if err := uc.stateRepo.AddTransaction(ctx, input.UserID, transaction); err != nil {
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	invalidateProjections(ctx, uc.projectionCache, input.UserID)
	return transaction, nil
}

// DeleteTransactionUseCase removes a transaction from the user's state.
type DeleteTransactionUseCase struct {
	stateRepo       adapter.StateRepository
	projectionCache adapter.ProjectionCache
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(stateRepo adapter.StateRepository, projectionCache adapter.ProjectionCache) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{stateRepo: stateRepo, projectionCache: projectionCache}
}

// Execute removes the transaction owned by the user.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, userID, transactionID uuid.UUID) error {
	if err := uc.stateRepo.DeleteTransaction(ctx, userID, transactionID); err != nil {
		return err
	}

	invalidateProjections(ctx, uc.projectionCache, userID)
	return nil
}
