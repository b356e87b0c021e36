// Package advisor contains the advice generation use case.
package advisor

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/fincast/backend/internal/application/adapter"
	"github.com/fincast/backend/internal/domain/entity"
)

const defaultHistoryLimit = 20

// ListAdviceUseCase retrieves a user's advice history.
type ListAdviceUseCase struct {
	adviceRepo adapter.AdviceRepository
}

// NewListAdviceUseCase creates a new ListAdviceUseCase instance.
func NewListAdviceUseCase(adviceRepo adapter.AdviceRepository) *ListAdviceUseCase {
	return &ListAdviceUseCase{adviceRepo: adviceRepo}
}

// Execute returns the user's advice history, newest first.
func (uc *ListAdviceUseCase) Execute(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Advice, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	history, err := uc.adviceRepo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list advice history: %w", err)
	}
	return history, nil
}
