package api

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherreminder.app/internal/core/weather"
	"weatherreminder.app/internal/ports"
	"weatherreminder.app/pkg/errors"
)

func TestGetReading(t *testing.T) {
	ts := newTestServer(t)
	ts.weather.reading = &weather.Reading{
		ReportedCity: "Kyiv",
		CountryCode:  "UA",
		Temperature:  12.5,
		Humidity:     60,
		UpdatedAt:    time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	w := ts.do(t, http.MethodGet, "/api/readings?city_id=7&provider=weatherbit", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[ReadingResponse](t, w)
	assert.Equal(t, uint(7), resp.CityID)
	assert.Equal(t, "WeatherBit", resp.Provider)
	assert.Equal(t, 12.5, resp.Temperature)

	assert.Equal(t, http.StatusBadRequest, ts.do(t, http.MethodGet, "/api/readings?provider=weatherbit", nil).Code)
	assert.Equal(t, http.StatusBadRequest, ts.do(t, http.MethodGet, "/api/readings?city_id=7&provider=x", nil).Code)

	ts.weather.err = errors.NewNotFoundError("reading not found")
	assert.Equal(t, http.StatusNotFound, ts.do(t, http.MethodGet, "/api/readings?city_id=7&provider=weatherbit", nil).Code)
}

func TestGetProviders(t *testing.T) {
	ts := newTestServer(t)
	ts.weather.info = map[string]interface{}{"total_providers": 2}

	w := ts.do(t, http.MethodGet, "/api/providers", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(2), decode[map[string]interface{}](t, w)["total_providers"])
}

func TestListJobs(t *testing.T) {
	ts := newTestServer(t)
	ts.jobs.jobs = []*ports.JobData{{
		Key:         ports.JobKeyData{Kind: "refresh", CityID: 3, Provider: "WeatherBit"},
		Action:      "get_weather_task",
		Args:        []uint{9},
		Minute:      "0",
		Hour:        "*",
		DayOfWeek:   "*",
		DayOfMonth:  "*",
		MonthOfYear: "*",
		Timezone:    "Europe/Kiev",
		Enabled:     true,
	}}

	w := ts.do(t, http.MethodGet, "/api/jobs", nil)
	require.Equal(t, http.StatusOK, w.Code)

	jobs := decode[[]JobResponse](t, w)
	require.Len(t, jobs, 1)
	assert.Equal(t, "0 * * * *", jobs[0].Schedule)
	assert.Equal(t, []uint{9}, jobs[0].Args)
	assert.Equal(t, "get_weather_task", jobs[0].Action)

	ts.jobs.err = fmt.Errorf("boom")
	assert.Equal(t, http.StatusInternalServerError, ts.do(t, http.MethodGet, "/api/jobs", nil).Code)
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name     string
		statuses []string
		code     int
		overall  string
	}{
		{"Healthy", []string{ports.StatusHealthy, ports.StatusHealthy}, http.StatusOK, ports.StatusHealthy},
		{"Degraded", []string{ports.StatusHealthy, ports.StatusDegraded}, http.StatusOK, ports.StatusDegraded},
		{"Unhealthy", []string{ports.StatusDegraded, ports.StatusUnhealthy}, http.StatusServiceUnavailable, ports.StatusUnhealthy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)
			for i, s := range tt.statuses {
				ts.health.results[fmt.Sprintf("c%d", i)] = ports.HealthStatus{Status: s}
			}

			w := ts.do(t, http.MethodGet, "/health", nil)
			assert.Equal(t, tt.code, w.Code)
			assert.Equal(t, tt.overall, decode[HealthResponse](t, w).Status)
		})
	}
}

func TestMetricsRoute(t *testing.T) {
	ts := newTestServer(t)
	w := ts.do(t, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "# metrics")
}

func TestServerOptions_Validate(t *testing.T) {
	_, err := NewHTTPServerAdapter(ServerOptions{})
	assert.True(t, errors.IsValidationError(err))
}
