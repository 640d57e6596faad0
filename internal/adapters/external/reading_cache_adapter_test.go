package external

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherreminder.app/internal/mocks"
	"weatherreminder.app/internal/ports"
	"weatherreminder.app/pkg/errors"
)

var _ ports.ReadingCache = (*ReadingCacheAdapter)(nil)

func TestReadingCacheAdapter_RoundTrip(t *testing.T) {
	ctx := context.Background()
	_, client := newMockRedisClient(t)
	provider, err := NewRedisCacheProviderAdapter(client)
	require.NoError(t, err)

	adapter := NewReadingCacheAdapter(provider)
	reading := &ports.WeatherReadingData{
		ID:           7,
		CityID:       3,
		Provider:     "OpenWeatherMap",
		ReportedCity: "Paris",
		CountryCode:  "FR",
		Longitude:    2.35,
		Latitude:     48.85,
		Temperature:  12.5,
		Pressure:     1012,
		Humidity:     81,
		UpdatedAt:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	require.NoError(t, adapter.Set(ctx, "reading:3:OpenWeatherMap", reading, time.Minute))

	got, err := adapter.Get(ctx, "reading:3:OpenWeatherMap")
	require.NoError(t, err)
	assert.Equal(t, reading, got)

	require.NoError(t, adapter.Delete(ctx, "reading:3:OpenWeatherMap"))
	_, err = adapter.Get(ctx, "reading:3:OpenWeatherMap")
	assert.True(t, errors.IsNotFoundError(err))
}

func TestReadingCacheAdapter_Errors(t *testing.T) {
	ctx := context.Background()
	provider := mocks.NewCacheProvider(t)
	adapter := NewReadingCacheAdapter(provider)

	assert.True(t, errors.IsValidationError(adapter.Set(ctx, "k", nil, time.Minute)))

	provider.EXPECT().Get(ctx, "corrupt").Return([]byte("{not json"), nil).Once()
	_, err := adapter.Get(ctx, "corrupt")
	assert.Equal(t, errors.ExternalAPIError, errors.TypeOf(err))
}
