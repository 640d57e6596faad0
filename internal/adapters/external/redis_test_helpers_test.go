package external

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"
	"weatherreminder.app/internal/config"
)

func setupMockRedis(t *testing.T) (*miniredis.Miniredis, *config.RedisConfig) {
	t.Helper()

	mockRedis := miniredis.RunT(t)
	return mockRedis, &config.RedisConfig{
		Addr:         mockRedis.Addr(),
		DialTimeout:  5,
		ReadTimeout:  3,
		WriteTimeout: 3,
	}
}

func newMockRedisClient(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mockRedis, cfg := setupMockRedis(t)
	client, err := NewRedisClient(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return mockRedis, client
}
