package external

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"weatherreminder.app/internal/config"
	"weatherreminder.app/internal/ports"
	"weatherreminder.app/pkg/errors"
)

// BackendFactory builds the cache provider and key locker selected by configuration.
// A single Redis client is opened lazily and shared by both.
type BackendFactory struct {
	redisConfig *config.RedisConfig
	client      *redis.Client
	mu          sync.Mutex
}

func NewBackendFactory(redisConfig *config.RedisConfig) *BackendFactory {
	return &BackendFactory{redisConfig: redisConfig}
}

func (f *BackendFactory) CreateCacheProvider(cfg *config.CacheConfig) (ports.CacheProvider, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("cache config cannot be nil", nil)
	}

	switch cfg.Type {
	case config.BackendTypeMemory:
		return NewMemoryCacheProvider(), nil
	case config.BackendTypeRedis:
		client, err := f.redisClient()
		if err != nil {
			return nil, err
		}
		return NewRedisCacheProviderAdapter(client)
	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported cache type: %s", cfg.Type.String()), nil)
	}
}

func (f *BackendFactory) CreateKeyLocker(cfg *config.LockConfig, logger ports.Logger) (ports.KeyLocker, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("lock config cannot be nil", nil)
	}

	switch cfg.Type {
	case config.BackendTypeMemory:
		return NewMemoryKeyLocker(), nil
	case config.BackendTypeRedis:
		client, err := f.redisClient()
		if err != nil {
			return nil, err
		}
		return NewRedisKeyLocker(client, time.Duration(cfg.TTLSeconds)*time.Second, logger)
	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported lock type: %s", cfg.Type.String()), nil)
	}
}

// UsesRedis reports whether any backend opened the shared Redis client
func (f *BackendFactory) UsesRedis() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.client != nil
}

// Ping checks the shared Redis client
func (f *BackendFactory) Ping(ctx context.Context) error {
	f.mu.Lock()
	client := f.client
	f.mu.Unlock()

	if client == nil {
		return errors.NewConfigurationError("redis backend is not in use", nil)
	}
	if err := client.Ping(ctx).Err(); err != nil {
		return errors.NewExternalAPIError("Redis ping failed", err)
	}
	return nil
}

// Close releases the shared Redis client if one was opened
func (f *BackendFactory) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.client == nil {
		return nil
	}
	err := f.client.Close()
	f.client = nil
	return err
}

func (f *BackendFactory) redisClient() (*redis.Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.client != nil {
		return f.client, nil
	}
	client, err := NewRedisClient(f.redisConfig)
	if err != nil {
		return nil, err
	}
	f.client = client
	return client, nil
}
