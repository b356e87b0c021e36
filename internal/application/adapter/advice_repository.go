// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/fincast/backend/internal/domain/entity"
)

// AdviceRepository defines persistence for generated advice history.
type AdviceRepository interface {
	// Save persists a generated piece of advice.
	Save(ctx context.Context, advice *entity.Advice) error

	// ListByUser retrieves advice history for a user, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Advice, error)
}
