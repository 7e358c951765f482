package layouts

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"seatwise/internal/shared/constants"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

func SetCache(ctx context.Context, redisClient *redis.Client, key string, value interface{}, ttl time.Duration) error {
	if redisClient == nil {
		return nil // Skip caching if Redis not available
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache data: %w", err)
	}

	return redisClient.Set(ctx, key, data, ttl).Err()
}

func GetCache(ctx context.Context, redisClient *redis.Client, key string, dest interface{}) error {
	if redisClient == nil {
		return fmt.Errorf("redis client not available")
	}

	data, err := redisClient.Get(ctx, key).Result()
	if err != nil {
		return err
	}

	return json.Unmarshal([]byte(data), dest)
}

// InvalidateLayoutCache drops every cached view of a layout after a mutation:
// the document itself, its rendered previews and the owning venue's listing.
func InvalidateLayoutCache(ctx context.Context, redisClient *redis.Client, venueID uuid.UUID, layoutID *uuid.UUID) error {
	if redisClient == nil {
		return nil
	}

	patterns := []string{
		constants.CACHE_KEY_VENUE_LAYOUTS + venueID.String() + "*",
	}
	if layoutID != nil {
		patterns = append(patterns, constants.CACHE_KEY_LAYOUT_DETAIL+layoutID.String()+"*")
		patterns = append(patterns, constants.CACHE_KEY_LAYOUT_PREVIEW+layoutID.String()+"*")
	}

	for _, pattern := range patterns {
		keys, err := redisClient.Keys(ctx, pattern).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := redisClient.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
	}

	return nil
}
