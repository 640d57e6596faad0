package external

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"weatherreminder.app/internal/ports"
	"weatherreminder.app/pkg/errors"
)

const (
	defaultLockTTL     = 30 * time.Second
	lockRetryInterval  = 25 * time.Millisecond
	lockReleaseTimeout = 2 * time.Second
	redisLockKeyPrefix = "weatherreminder:"
)

// releaseScript deletes the lock only while it still carries the caller's token
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisKeyLocker serializes callers holding the same key across processes.
// A lock expires after ttl so a crashed holder cannot block the key forever.
type RedisKeyLocker struct {
	client *redis.Client
	ttl    time.Duration
	retry  time.Duration
	logger ports.Logger
}

func NewRedisKeyLocker(client *redis.Client, ttl time.Duration, logger ports.Logger) (*RedisKeyLocker, error) {
	if client == nil {
		return nil, errors.NewConfigurationError("redis client cannot be nil", nil)
	}
	if logger == nil {
		return nil, errors.NewConfigurationError("logger cannot be nil", nil)
	}
	if ttl <= 0 {
		ttl = defaultLockTTL
	}
	return &RedisKeyLocker{client: client, ttl: ttl, retry: lockRetryInterval, logger: logger}, nil
}

func (l *RedisKeyLocker) Lock(ctx context.Context, key string) (func(), error) {
	redisKey := redisLockKeyPrefix + key
	token := uuid.NewString()

	for {
		ok, err := l.client.SetNX(ctx, redisKey, token, l.ttl).Result()
		if err != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("acquire lock %q: %w", key, ctx.Err())
			}
			return nil, errors.NewExternalAPIError(fmt.Sprintf("failed to acquire lock %q", key), err)
		}
		if ok {
			return l.unlockFunc(redisKey, token), nil
		}

		timer := time.NewTimer(l.retry)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, fmt.Errorf("acquire lock %q: %w", key, ctx.Err())
		case <-timer.C:
		}
	}
}

// unlockFunc releases the lock once. A release that finds another token, or
// none, means the lease expired while held and is logged as a warning.
func (l *RedisKeyLocker) unlockFunc(redisKey, token string) func() {
	var once sync.Once
	return func() {
		once.Do(func() {
			ctx, cancel := context.WithTimeout(context.Background(), lockReleaseTimeout)
			defer cancel()

			deleted, err := releaseScript.Run(ctx, l.client, []string{redisKey}, token).Int64()
			switch {
			case err != nil:
				l.logger.Error("Failed to release lock",
					ports.F("key", redisKey),
					ports.F("error", err))
			case deleted == 0:
				l.logger.Warn("Lock lease expired before release",
					ports.F("key", redisKey),
					ports.F("ttl", l.ttl.String()))
			}
		})
	}
}
