package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	appErrors "github.com/Iotonix/osams/pkg/errors"
)

// CacheRepository wraps Redis with JSON serialization for the
// dashboard's hot aggregates.
type CacheRepository struct {
	client *redis.Client
}

// NewCacheRepository constructs the repository.
func NewCacheRepository(client *redis.Client) *CacheRepository {
	return &CacheRepository{client: client}
}

// Get unmarshals the cached value for key into dest. A missing key maps
// to ErrCacheMiss so callers can fall through to the database.
func (r *CacheRepository) Get(ctx context.Context, key string, dest interface{}) error {
	payload, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return appErrors.ErrCacheMiss
		}
		return fmt.Errorf("cache get %s: %w", key, err)
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		return fmt.Errorf("cache decode %s: %w", key, err)
	}
	return nil
}

// Set stores value under key with a TTL.
func (r *CacheRepository) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", key, err)
	}
	if err := r.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

// Delete drops a key; missing keys are not an error.
func (r *CacheRepository) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}
