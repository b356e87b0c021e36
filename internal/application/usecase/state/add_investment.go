// Package state contains use cases that read and mutate a user's financial state.
package state

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fincast/backend/internal/application/adapter"
	"github.com/fincast/backend/internal/domain/entity"
	domainerror "github.com/fincast/backend/internal/domain/error"
)

// AddInvestmentInput represents the input for adding an investment.
type AddInvestmentInput struct {
	UserID              uuid.UUID
	Name                string
	Balance             decimal.Decimal
	AnnualReturnRate    float64
	MonthlyContribution decimal.Decimal
	RiskTier            entity.InvestmentRiskTier
}

// AddInvestmentUseCase adds a new investment to the user's state.
type AddInvestmentUseCase struct {
	stateRepo       adapter.StateRepository
	projectionCache adapter.ProjectionCache
}

// NewAddInvestmentUseCase creates a new AddInvestmentUseCase instance.
func NewAddInvestmentUseCase(stateRepo adapter.StateRepository, projectionCache adapter.ProjectionCache) *AddInvestmentUseCase {
	return &AddInvestmentUseCase{stateRepo: stateRepo, projectionCache: projectionCache}
}

// Execute validates and persists the investment.
func (uc *AddInvestmentUseCase) Execute(ctx context.Context, input AddInvestmentInput) (*entity.Investment, error) {
	if !input.RiskTier.Valid() {
		return nil, domainerror.NewStateError(
			domainerror.ErrCodeInvalidRiskTier,
			"risk tier must be 'low', 'medium' or 'high'",
			domainerror.ErrInvalidRiskTier,
		)
	}

	if input.Balance.IsNegative() || input.MonthlyContribution.IsNegative() {
		return nil, domainerror.NewStateError(
			domainerror.ErrCodeInvalidAmount,
			"investment balance and contribution cannot be negative",
			domainerror.ErrInvalidAmount,
		)
	}

	investment := entity.NewInvestment(input.Name, input.Balance, input.AnnualReturnRate, input.MonthlyContribution, input.RiskTier)

	if err := uc.stateRepo.AddInvestment(ctx, input.UserID, investment); err != nil {
		return nil, fmt.Errorf("failed to save investment: %w", err)
	}

	invalidateProjections(ctx, uc.projectionCache, input.UserID)
	return investment, nil
}
