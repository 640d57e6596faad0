package external

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherreminder.app/internal/mocks"
	"weatherreminder.app/internal/ports"
	"weatherreminder.app/pkg/errors"
)

var _ ports.WeatherSource = (*WeatherSourceAdapter)(nil)

func TestWeatherSourceAdapter_RoutesByProvider(t *testing.T) {
	source := NewWeatherSourceAdapter(WeatherSourceConfig{Logger: mocks.NewPermissiveLogger(t)})

	owm := &testWeatherProvider{name: "OpenWeatherMap", response: &ports.WeatherData{Provider: "OpenWeatherMap"}}
	bit := &testWeatherProvider{name: "WeatherBit", response: &ports.WeatherData{Provider: "WeatherBit"}}
	source.Register(owm, false)
	source.Register(bit, true)

	data, err := source.Fetch(context.Background(), "Paris", "weatherbit")
	require.NoError(t, err)
	assert.Equal(t, "WeatherBit", data.Provider)
	assert.Equal(t, []string{"Paris"}, bit.calls)
	assert.Empty(t, owm.calls)

	data, err = source.Fetch(context.Background(), "Paris", "OpenWeatherMap")
	require.NoError(t, err)
	assert.Equal(t, "OpenWeatherMap", data.Provider)
}

func TestWeatherSourceAdapter_Errors(t *testing.T) {
	source := NewWeatherSourceAdapter(WeatherSourceConfig{Logger: mocks.NewPermissiveLogger(t)})

	_, err := source.Fetch(context.Background(), "Paris", "AccuWeather")
	assert.True(t, errors.IsValidationError(err))

	_, err = source.Fetch(context.Background(), "Paris", "WeatherBit")
	assert.True(t, errors.IsProviderUnavailableError(err))
}

func TestWeatherSourceAdapter_GetProviderInfo(t *testing.T) {
	source := NewWeatherSourceAdapter(WeatherSourceConfig{
		OpenWeatherMapKey: "owm",
		WeatherBitKey:     "bit",
		EnableLogging:     true,
		Logger:            mocks.NewPermissiveLogger(t),
	})

	info := source.GetProviderInfo()
	assert.Equal(t, 2, info["total_providers"])
	assert.Equal(t, []string{"OpenWeatherMap", "WeatherBit"}, info["providers"])
	assert.Equal(t, map[string]string{"OpenWeatherMap": "closed", "WeatherBit": "closed"}, info["breaker_states"])
}
