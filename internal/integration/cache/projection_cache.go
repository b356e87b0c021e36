// Package cache implements Redis-backed caching adapters.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/fincast/backend/internal/application/adapter"
	"github.com/fincast/backend/internal/domain/entity"
)

// projectionCache implements adapter.ProjectionCache on Redis. Series are
// stored as JSON under one key per user and horizon; each user additionally
// keeps a set of their series keys so invalidation never needs a SCAN.
type projectionCache struct {
	client *redis.Client
}

// NewProjectionCache creates a new Redis projection cache.
func NewProjectionCache(client *redis.Client) adapter.ProjectionCache {
	return &projectionCache{
		client: client,
	}
}

func seriesKey(userID uuid.UUID, horizonMonths int) string {
	return fmt.Sprintf("projection:%s:%d", userID.String(), horizonMonths)
}

func userKeySet(userID uuid.UUID) string {
	return fmt.Sprintf("projection:%s:keys", userID.String())
}

// Get returns the cached series for a user and horizon, if present.
func (c *projectionCache) Get(ctx context.Context, userID uuid.UUID, horizonMonths int) ([]entity.MonthlyData, bool, error) {
	payload, err := c.client.Get(ctx, seriesKey(userID, horizonMonths)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var series []entity.MonthlyData
	if err := json.Unmarshal(payload, &series); err != nil {
		// A corrupt entry is treated as a miss; the caller recomputes.
		return nil, false, nil
	}
	return series, true, nil
}

// Set stores a series for a user and horizon with the given TTL.
func (c *projectionCache) Set(ctx context.Context, userID uuid.UUID, horizonMonths int, series []entity.MonthlyData, ttl time.Duration) error {
	payload, err := json.Marshal(series)
	if err != nil {
		return err
	}

	key := seriesKey(userID, horizonMonths)
	pipe := c.client.TxPipeline()
	pipe.Set(ctx, key, payload, ttl)
	pipe.SAdd(ctx, userKeySet(userID), key)
	pipe.Expire(ctx, userKeySet(userID), ttl)
	_, err = pipe.Exec(ctx)
	return err
}

// Invalidate drops all cached series for a user.
func (c *projectionCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	setKey := userKeySet(userID)
	keys, err := c.client.SMembers(ctx, setKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		return err
	}

	keys = append(keys, setKey)
	return c.client.Del(ctx, keys...).Err()
}
