package infrastructure

import (
	"context"
	"fmt"

	"weatherreminder.app/internal/ports"
)

// Pinger is satisfied by backends that can report liveness, such as the Redis cache adapter
type Pinger interface {
	Ping(ctx context.Context) error
}

// RedisHealthChecker pings the shared Redis backend
type RedisHealthChecker struct {
	pinger Pinger
}

// NewRedisHealthChecker creates a new Redis health checker
func NewRedisHealthChecker(pinger Pinger) *RedisHealthChecker {
	return &RedisHealthChecker{pinger: pinger}
}

// Check pings Redis
func (r *RedisHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{Component: "redis", Status: ports.StatusHealthy}
	if r.pinger == nil {
		status.Status = ports.StatusUnhealthy
		status.Error = "redis backend is not configured"
		return status
	}
	if err := r.pinger.Ping(ctx); err != nil {
		status.Status = ports.StatusUnhealthy
		status.Error = err.Error()
	}
	return status
}

// EmailHealthChecker reports the SMTP relay in use
type EmailHealthChecker struct {
	config ports.EmailConfig
}

// NewEmailHealthChecker creates a new email health checker
func NewEmailHealthChecker(config ports.EmailConfig) *EmailHealthChecker {
	return &EmailHealthChecker{config: config}
}

// Check reports SMTP configuration; the relay is not contacted
func (e *EmailHealthChecker) Check(_ context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "smtp",
		Status:    ports.StatusHealthy,
		Details: map[string]interface{}{
			"host":          e.config.SMTPHost,
			"port":          fmt.Sprintf("%d", e.config.SMTPPort),
			"authenticated": e.config.SMTPUsername != "",
		},
	}
	if e.config.SMTPHost == "" {
		status.Status = ports.StatusUnhealthy
		status.Error = "smtp host is not configured"
	}
	return status
}

// WeatherSourceHealthChecker derives provider health from circuit breaker states
type WeatherSourceHealthChecker struct {
	source ports.WeatherSource
}

// NewWeatherSourceHealthChecker creates a new weather source health checker
func NewWeatherSourceHealthChecker(source ports.WeatherSource) *WeatherSourceHealthChecker {
	return &WeatherSourceHealthChecker{source: source}
}

// Check is degraded when some breakers are open and unhealthy when all are
func (w *WeatherSourceHealthChecker) Check(_ context.Context) ports.HealthStatus {
	status := ports.HealthStatus{Component: "weather_providers", Status: ports.StatusHealthy}
	if w.source == nil {
		status.Status = ports.StatusUnhealthy
		status.Error = "weather source is not available"
		return status
	}

	info := w.source.GetProviderInfo()
	status.Details = info

	states, _ := info["breaker_states"].(map[string]string)
	if len(states) == 0 {
		status.Status = ports.StatusUnhealthy
		status.Error = "no weather providers configured"
		return status
	}

	open := 0
	for _, state := range states {
		if state == "open" {
			open++
		}
	}
	switch {
	case open == len(states):
		status.Status = ports.StatusUnhealthy
		status.Error = "all weather provider breakers are open"
	case open > 0:
		status.Status = ports.StatusDegraded
	}
	return status
}
