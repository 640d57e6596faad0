package infrastructure

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherreminder.app/internal/adapters/database/databasetest"
	"weatherreminder.app/internal/mocks"
	"weatherreminder.app/internal/ports"
)

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

type staticChecker struct{ status ports.HealthStatus }

func (c staticChecker) Check(context.Context) ports.HealthStatus { return c.status }

func TestDatabaseHealthChecker(t *testing.T) {
	t.Run("Healthy", func(t *testing.T) {
		status := NewDatabaseHealthChecker(databasetest.NewSQLite(t)).Check(context.Background())
		assert.Equal(t, ports.StatusHealthy, status.Status)
		assert.Equal(t, "sqlite", status.Details["dialect"])
		assert.Contains(t, status.Details, "ping_ms")
	})

	t.Run("Closed", func(t *testing.T) {
		db := databasetest.NewSQLite(t)
		sqlDB, err := db.DB()
		require.NoError(t, err)
		require.NoError(t, sqlDB.Close())

		status := NewDatabaseHealthChecker(db).Check(context.Background())
		assert.Equal(t, ports.StatusUnhealthy, status.Status)
		assert.NotEmpty(t, status.Error)
	})

	t.Run("Nil", func(t *testing.T) {
		status := NewDatabaseHealthChecker(nil).Check(context.Background())
		assert.Equal(t, ports.StatusUnhealthy, status.Status)
		assert.Equal(t, "database is not configured", status.Error)
	})
}

func TestRedisHealthChecker(t *testing.T) {
	assert.Equal(t, ports.StatusHealthy, NewRedisHealthChecker(stubPinger{}).Check(context.Background()).Status)

	down := NewRedisHealthChecker(stubPinger{err: errors.New("connection refused")}).Check(context.Background())
	assert.Equal(t, ports.StatusUnhealthy, down.Status)
	assert.Equal(t, "connection refused", down.Error)

	assert.Equal(t, ports.StatusUnhealthy, NewRedisHealthChecker(nil).Check(context.Background()).Status)
}

func TestEmailHealthChecker(t *testing.T) {
	status := NewEmailHealthChecker(ports.EmailConfig{SMTPHost: "smtp.example.com", SMTPPort: 587}).Check(context.Background())
	assert.Equal(t, ports.StatusHealthy, status.Status)
	assert.Equal(t, "587", status.Details["port"])
	assert.Equal(t, false, status.Details["authenticated"])

	assert.Equal(t, ports.StatusUnhealthy, NewEmailHealthChecker(ports.EmailConfig{}).Check(context.Background()).Status)
}

func TestWeatherSourceHealthChecker(t *testing.T) {
	tests := []struct {
		name     string
		states   map[string]string
		expected string
	}{
		{"AllClosed", map[string]string{"openweathermap": "closed", "weatherbit": "closed"}, ports.StatusHealthy},
		{"OneOpen", map[string]string{"openweathermap": "open", "weatherbit": "half-open"}, ports.StatusDegraded},
		{"AllOpen", map[string]string{"openweathermap": "open", "weatherbit": "open"}, ports.StatusUnhealthy},
		{"NoneConfigured", map[string]string{}, ports.StatusUnhealthy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := mocks.NewWeatherSource(t)
			source.EXPECT().GetProviderInfo().Return(map[string]interface{}{
				"total_providers": len(tt.states),
				"breaker_states":  tt.states,
			})

			status := NewWeatherSourceHealthChecker(source).Check(context.Background())
			assert.Equal(t, tt.expected, status.Status)
		})
	}
}

func TestSystemHealthChecker_CheckAll(t *testing.T) {
	cfg := mocks.NewConfigProvider(t)
	cfg.EXPECT().GetAppConfig().Return(ports.AppConfig{BaseURL: "http://localhost:8080"})
	cfg.EXPECT().GetSchedulerConfig().Return(ports.SchedulerConfig{Enabled: true, Timezone: "UTC"})
	cfg.EXPECT().GetCacheConfig().Return(ports.CacheConfig{Type: "memory"})
	cfg.EXPECT().GetLockConfig().Return(ports.LockConfig{Type: "memory"})

	checker := NewSystemHealthChecker(SystemHealthCheckerConfig{
		Checkers: map[string]ports.HealthChecker{
			"database": staticChecker{ports.HealthStatus{Component: "database", Status: ports.StatusHealthy}},
			"redis":    NewRedisHealthChecker(stubPinger{}),
			"skipped":  nil,
		},
		ConfigProvider: cfg,
	})

	results := checker.CheckAll(context.Background())
	require.Len(t, results, 3)
	assert.Equal(t, ports.StatusHealthy, results["database"].Status)
	assert.Equal(t, ports.StatusHealthy, results["redis"].Status)
	assert.Equal(t, true, results["config"].Details["schedulerEnabled"])
}
