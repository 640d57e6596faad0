package external

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherreminder.app/pkg/errors"
)

func TestMemoryCacheProvider(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCacheProvider()

	_, err := cache.Get(ctx, "missing")
	assert.True(t, errors.IsNotFoundError(err))

	require.NoError(t, cache.Set(ctx, "k", []byte("v"), time.Minute))
	got, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)

	require.NoError(t, cache.Set(ctx, "short", []byte("v"), time.Millisecond))
	time.Sleep(5 * time.Millisecond)
	exists, err := cache.Exists(ctx, "short")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, cache.Delete(ctx, "k"))
	_, err = cache.Get(ctx, "k")
	assert.True(t, errors.IsNotFoundError(err))

	stats := cache.GetStats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(2), stats.Misses)
	assert.InDelta(t, 1.0/3.0, stats.HitRatio, 0.001)

	assert.True(t, errors.IsValidationError(cache.Set(ctx, "k", []byte("v"), -time.Second)))
	require.NoError(t, cache.Clear(ctx))
}
