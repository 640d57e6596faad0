package notification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherreminder.app/internal/core/weather"
	"weatherreminder.app/pkg/errors"
)

func validNotification() *WeatherNotification {
	return &WeatherNotification{
		Email:       "user@example.com",
		City:        "Paris",
		PeriodHours: 3,
		Provider:    weather.ProviderWeatherBit,
		CountryCode: "FR",
		Longitude:   2.35,
		Latitude:    48.85,
		Temperature: 11.24,
		Pressure:    1012,
		Humidity:    81,
		UpdatedAt:   time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestWeatherNotification_IsValid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(n *WeatherNotification)
		valid  bool
	}{
		{"Valid", func(n *WeatherNotification) {}, true},
		{"MissingEmail", func(n *WeatherNotification) { n.Email = " " }, false},
		{"MissingCity", func(n *WeatherNotification) { n.City = "" }, false},
		{"UnknownProvider", func(n *WeatherNotification) { n.Provider = weather.ProviderUnknown }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := validNotification()
			tt.mutate(n)

			err := n.IsValid()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.IsValidationError(err))
			}
		})
	}
}

func TestWeatherNotification_RenderBody(t *testing.T) {
	n := validNotification()
	n.ManageURL = "https://weather.example.com/api/subscriptions?email=user%40example.com"

	body, err := n.RenderBody()
	require.NoError(t, err)

	for _, expected := range []string{
		"Weather in Paris",
		"every 3 hours",
		"Service: WeatherBit",
		"Country code: FR",
		"Coordinate: 2.35 48.85",
		"Temperature: 11.2 °C",
		"Pressure: 1012 hPa",
		"Humidity: 81%",
		"2026-05-01 12:00 UTC",
		"Manage your subscriptions",
	} {
		assert.Contains(t, body, expected)
	}
}

func TestWeatherNotification_RenderBodyEscapesCity(t *testing.T) {
	n := validNotification()
	n.City = "<script>alert(1)</script>"

	body, err := n.RenderBody()
	require.NoError(t, err)

	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "&lt;script&gt;")
	assert.NotContains(t, body, "Manage your subscriptions")
}
