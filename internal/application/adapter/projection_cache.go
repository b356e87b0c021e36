// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fincast/backend/internal/domain/entity"
)

// ProjectionCache caches computed projection series per user and horizon.
// The cache is an optimization only: a miss or an unavailable backend must
// never fail a projection, and every state mutation invalidates the user's
// entries so a stale series is never served.
type ProjectionCache interface {
	// Get returns the cached series for a user and horizon, if present.
	Get(ctx context.Context, userID uuid.UUID, horizonMonths int) ([]entity.MonthlyData, bool, error)

	// Set stores a series for a user and horizon with the given TTL.
	Set(ctx context.Context, userID uuid.UUID, horizonMonths int, series []entity.MonthlyData, ttl time.Duration) error

	// Invalidate drops all cached series for a user.
	Invalidate(ctx context.Context, userID uuid.UUID) error
}
