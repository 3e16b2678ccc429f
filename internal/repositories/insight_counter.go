package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-health-records/internal/logger"
)

// InsightCounterRepository counts generated insights per user in Redis.
type InsightCounterRepository struct {
	client *redis.Client
}

func NewInsightCounterRepository(client *redis.Client) *InsightCounterRepository {
	return &InsightCounterRepository{client: client}
}

func insightCounterKey(userID uuid.UUID) string {
	return fmt.Sprintf("insights:count:%s", userID)
}

// Increment adds one to the counter of userID and returns the new value.
func (r *InsightCounterRepository) Increment(ctx context.Context, userID uuid.UUID) (int64, error) {
	key := insightCounterKey(userID)
	val, err := r.client.Incr(ctx, key).Result()

	logger.Log.Infow("redis",
		"key", key,
		"result", val,
		"error", err,
	)

	return val, err
}

// Get returns the counter of userID, zero when it was never incremented.
func (r *InsightCounterRepository) Get(ctx context.Context, userID uuid.UUID) (int64, error) {
	key := insightCounterKey(userID)
	val, err := r.client.Get(ctx, key).Int64()

	logger.Log.Infow("redis",
		"key", key,
		"result", val,
		"error", err,
	)

	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return val, err
}
