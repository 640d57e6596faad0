package external

import (
	"context"
	stderrors "errors"
	"sync/atomic"
	"time"

	"github.com/go-redis/redis/v8"
	"weatherreminder.app/internal/ports"
	"weatherreminder.app/pkg/errors"
)

const (
	redisCacheKeyPrefix = "weatherreminder:cache:"
	redisClearBatch     = 200
)

// RedisCacheProviderAdapter stores cache entries under their own key namespace
// so it can share a client with the Redis key locker.
type RedisCacheProviderAdapter struct {
	client *redis.Client
	hits   atomic.Int64
	misses atomic.Int64
}

// NewRedisCacheProviderAdapter wraps an already connected Redis client
func NewRedisCacheProviderAdapter(client *redis.Client) (*RedisCacheProviderAdapter, error) {
	if client == nil {
		return nil, errors.NewConfigurationError("redis client cannot be nil", nil)
	}
	return &RedisCacheProviderAdapter{client: client}, nil
}

func (r *RedisCacheProviderAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.NewValidationError("cache key cannot be empty")
	}

	val, err := r.client.Get(ctx, redisCacheKeyPrefix+key).Bytes()
	switch {
	case stderrors.Is(err, redis.Nil):
		r.RecordMiss()
		return nil, errors.NewNotFoundError("cache miss")
	case err != nil:
		return nil, errors.NewExternalAPIError("redis get failed", err)
	}

	r.RecordHit()
	return val, nil
}

func (r *RedisCacheProviderAdapter) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := validateSet(key, value, ttl); err != nil {
		return err
	}
	if err := r.client.Set(ctx, redisCacheKeyPrefix+key, value, ttl).Err(); err != nil {
		return errors.NewExternalAPIError("redis set failed", err)
	}
	return nil
}

func (r *RedisCacheProviderAdapter) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}
	if err := r.client.Del(ctx, redisCacheKeyPrefix+key).Err(); err != nil {
		return errors.NewExternalAPIError("redis delete failed", err)
	}
	return nil
}

func (r *RedisCacheProviderAdapter) Exists(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, errors.NewValidationError("cache key cannot be empty")
	}

	count, err := r.client.Exists(ctx, redisCacheKeyPrefix+key).Result()
	if err != nil {
		return false, errors.NewExternalAPIError("redis exists failed", err)
	}
	return count > 0, nil
}

// Clear removes every cache entry. Keys outside the cache namespace,
// such as held locks, are left alone.
func (r *RedisCacheProviderAdapter) Clear(ctx context.Context) error {
	iter := r.client.Scan(ctx, 0, redisCacheKeyPrefix+"*", redisClearBatch).Iterator()

	batch := make([]string, 0, redisClearBatch)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := r.client.Del(ctx, batch...).Err(); err != nil {
			return errors.NewExternalAPIError("redis clear failed", err)
		}
		batch = batch[:0]
		return nil
	}

	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == redisClearBatch {
			if err := flush(); err != nil {
				return err
			}
		}
	}
	if err := iter.Err(); err != nil {
		return errors.NewExternalAPIError("redis scan failed", err)
	}
	return flush()
}

func (r *RedisCacheProviderAdapter) GetStats() ports.CacheStats {
	return buildCacheStats(r.hits.Load(), r.misses.Load())
}

func (r *RedisCacheProviderAdapter) RecordHit()  { r.hits.Add(1) }
func (r *RedisCacheProviderAdapter) RecordMiss() { r.misses.Add(1) }
