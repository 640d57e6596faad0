package external

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherreminder.app/internal/config"
	"weatherreminder.app/internal/ports"
	"weatherreminder.app/pkg/errors"
)

var (
	_ ports.KeyLocker = (*MemoryKeyLocker)(nil)
	_ ports.KeyLocker = (*RedisKeyLocker)(nil)
)

func assertMutualExclusion(t *testing.T, locker ports.KeyLocker) {
	t.Helper()

	var (
		inside  int32
		maxSeen int32
		wg      sync.WaitGroup
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock, err := locker.Lock(context.Background(), "lock:city:paris:OpenWeatherMap")
			if !assert.NoError(t, err) {
				return
			}
			n := atomic.AddInt32(&inside, 1)
			for {
				m := atomic.LoadInt32(&maxSeen)
				if n <= m || atomic.CompareAndSwapInt32(&maxSeen, m, n) {
					break
				}
			}
			time.Sleep(2 * time.Millisecond)
			atomic.AddInt32(&inside, -1)
			unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxSeen)
}

func TestMemoryKeyLocker_MutualExclusion(t *testing.T) {
	locker := NewMemoryKeyLocker()
	assertMutualExclusion(t, locker)
	assert.Zero(t, locker.size())
}

func TestMemoryKeyLocker_DistinctKeysDoNotBlock(t *testing.T) {
	locker := NewMemoryKeyLocker()

	unlockA, err := locker.Lock(context.Background(), "a")
	require.NoError(t, err)
	defer unlockA()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	unlockB, err := locker.Lock(ctx, "b")
	require.NoError(t, err)
	unlockB()
}

func TestMemoryKeyLocker_ContextCancelled(t *testing.T) {
	locker := NewMemoryKeyLocker()

	unlock, err := locker.Lock(context.Background(), "k")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = locker.Lock(ctx, "k")
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	unlock()
	unlock()
	assert.Zero(t, locker.size())
}

func TestRedisKeyLocker_MutualExclusion(t *testing.T) {
	_, client := newMockRedisClient(t)
	locker, err := NewRedisKeyLocker(client, time.Second, &testLogger{})
	require.NoError(t, err)

	assertMutualExclusion(t, locker)
}

func TestRedisKeyLocker_WaitsThenAcquires(t *testing.T) {
	mockRedis, client := newMockRedisClient(t)
	logger := &testLogger{}
	locker, err := NewRedisKeyLocker(client, time.Minute, logger)
	require.NoError(t, err)

	unlock, err := locker.Lock(context.Background(), "k")
	require.NoError(t, err)
	assert.True(t, mockRedis.Exists(redisLockKeyPrefix+"k"))

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()
	_, err = locker.Lock(ctx, "k")
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	unlock()
	assert.False(t, mockRedis.Exists(redisLockKeyPrefix+"k"))

	unlock2, err := locker.Lock(context.Background(), "k")
	require.NoError(t, err)

	unlock()
	assert.True(t, mockRedis.Exists(redisLockKeyPrefix+"k"), "a second unlock call is a no-op")

	unlock2()
	assert.Empty(t, logger.snapshot())
}

func TestRedisKeyLocker_StaleUnlockKeepsNewHolder(t *testing.T) {
	mockRedis, client := newMockRedisClient(t)
	logger := &testLogger{}
	locker, err := NewRedisKeyLocker(client, time.Second, logger)
	require.NoError(t, err)

	staleUnlock, err := locker.Lock(context.Background(), "k")
	require.NoError(t, err)

	mockRedis.FastForward(2 * time.Second)

	freshUnlock, err := locker.Lock(context.Background(), "k")
	require.NoError(t, err)

	staleUnlock()
	assert.True(t, mockRedis.Exists(redisLockKeyPrefix+"k"))

	entries := logger.snapshot()
	require.Len(t, entries, 1)
	assert.Equal(t, "WARN", entries[0].level)
	assert.Equal(t, "Lock lease expired before release", entries[0].message)

	freshUnlock()
	assert.False(t, mockRedis.Exists(redisLockKeyPrefix+"k"))
	assert.Len(t, logger.snapshot(), 1)
}

func TestRedisKeyLocker_ReleaseFailureIsLogged(t *testing.T) {
	_, client := newMockRedisClient(t)
	logger := &testLogger{}
	locker, err := NewRedisKeyLocker(client, time.Minute, logger)
	require.NoError(t, err)

	unlock, err := locker.Lock(context.Background(), "k")
	require.NoError(t, err)

	require.NoError(t, client.Close())
	unlock()

	entries := logger.snapshot()
	require.Len(t, entries, 1)
	assert.Equal(t, "ERROR", entries[0].level)
	assert.Equal(t, "Failed to release lock", entries[0].message)
	assert.Equal(t, redisLockKeyPrefix+"k", entries[0].fields["key"])
}

func TestNewRedisKeyLocker_RequiresDependencies(t *testing.T) {
	_, client := newMockRedisClient(t)

	_, err := NewRedisKeyLocker(nil, time.Second, &testLogger{})
	assert.True(t, errors.IsConfigurationError(err))

	_, err = NewRedisKeyLocker(client, time.Second, nil)
	assert.True(t, errors.IsConfigurationError(err))
}

func TestBackendFactory(t *testing.T) {
	_, redisCfg := setupMockRedis(t)
	factory := NewBackendFactory(redisCfg)
	t.Cleanup(func() { _ = factory.Close() })

	cache, err := factory.CreateCacheProvider(&config.CacheConfig{Type: config.BackendTypeMemory})
	require.NoError(t, err)
	assert.IsType(t, &MemoryCacheProvider{}, cache)
	assert.False(t, factory.UsesRedis())
	assert.True(t, errors.IsConfigurationError(factory.Ping(context.Background())))

	cache, err = factory.CreateCacheProvider(&config.CacheConfig{Type: config.BackendTypeRedis})
	require.NoError(t, err)
	assert.IsType(t, &RedisCacheProviderAdapter{}, cache)
	assert.True(t, factory.UsesRedis())
	assert.NoError(t, factory.Ping(context.Background()))

	locker, err := factory.CreateKeyLocker(&config.LockConfig{Type: config.BackendTypeRedis, TTLSeconds: 5}, &testLogger{})
	require.NoError(t, err)
	assert.IsType(t, &RedisKeyLocker{}, locker)

	locker, err = factory.CreateKeyLocker(&config.LockConfig{Type: config.BackendTypeMemory}, &testLogger{})
	require.NoError(t, err)
	assert.IsType(t, &MemoryKeyLocker{}, locker)

	_, err = factory.CreateCacheProvider(&config.CacheConfig{Type: config.BackendTypeUnknown})
	assert.Error(t, err)
	_, err = factory.CreateKeyLocker(nil, &testLogger{})
	assert.Error(t, err)
}
