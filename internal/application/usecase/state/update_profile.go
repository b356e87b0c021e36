// Package state contains use cases that read and mutate a user's financial state.
package state

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fincast/backend/internal/application/adapter"
)

// UpdateProfileInput represents the input for updating the cash/income profile.
type UpdateProfileInput struct {
	UserID        uuid.UUID
	CashBalance   decimal.Decimal
	MonthlyIncome decimal.Decimal
}

// UpdateProfileUseCase sets the user's cash balance and fallback monthly income.
type UpdateProfileUseCase struct {
	stateRepo       adapter.StateRepository
	projectionCache adapter.ProjectionCache
}

// NewUpdateProfileUseCase creates a new UpdateProfileUseCase instance.
func NewUpdateProfileUseCase(stateRepo adapter.StateRepository, projectionCache adapter.ProjectionCache) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{stateRepo: stateRepo, projectionCache: projectionCache}
}

// Execute persists the profile figures and invalidates cached projections.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, input UpdateProfileInput) error {
	if err := uc.stateRepo.SaveProfile(ctx, input.UserID, input.CashBalance, input.MonthlyIncome); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	invalidateProjections(ctx, uc.projectionCache, input.UserID)
	return nil
}

// invalidateProjections drops cached projection series after a state
// mutation. Cache failures are logged, never surfaced: the cache is an
// optimization, the database is the source of truth.
func invalidateProjections(ctx context.Context, cache adapter.ProjectionCache, userID uuid.UUID) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx, userID); err != nil {
		slog.Warn("Failed to invalidate projection cache", "user_id", userID, "error", err)
	}
}
