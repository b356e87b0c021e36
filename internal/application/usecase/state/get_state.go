// Package state contains use cases that read and mutate a user's financial state.
package state

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/fincast/backend/internal/application/adapter"
	"github.com/fincast/backend/internal/domain/entity"
)

// GetStateUseCase assembles the full financial state snapshot for a user.
type GetStateUseCase struct {
	stateRepo adapter.StateRepository
}

// NewGetStateUseCase creates a new GetStateUseCase instance.
func NewGetStateUseCase(stateRepo adapter.StateRepository) *GetStateUseCase {
	return &GetStateUseCase{stateRepo: stateRepo}
}

// Execute retrieves the user's financial state.
func (uc *GetStateUseCase) Execute(ctx context.Context, userID uuid.UUID) (*entity.FinancialState, error) {
	snapshot, err := uc.stateRepo.GetState(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load financial state: %w", err)
	}
	return snapshot, nil
}
