package infrastructure

import (
	"context"
	"time"

	"gorm.io/gorm"
	"weatherreminder.app/internal/ports"
)

const slowPingThreshold = 500 * time.Millisecond

// DatabaseHealthChecker pings the store holding subscriptions and job definitions.
// A slow ping or an exhausted pool reports degraded.
type DatabaseHealthChecker struct {
	db *gorm.DB
}

func NewDatabaseHealthChecker(db *gorm.DB) *DatabaseHealthChecker {
	return &DatabaseHealthChecker{db: db}
}

func (d *DatabaseHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{Component: "database", Status: ports.StatusUnhealthy}
	if d.db == nil {
		status.Error = "database is not configured"
		return status
	}

	sqlDB, err := d.db.DB()
	if err != nil {
		status.Error = "underlying connection unavailable: " + err.Error()
		return status
	}

	started := time.Now()
	if err := sqlDB.PingContext(ctx); err != nil {
		status.Error = err.Error()
		return status
	}
	latency := time.Since(started)

	stats := sqlDB.Stats()
	status.Details = map[string]interface{}{
		"dialect":          d.db.Dialector.Name(),
		"ping_ms":          latency.Milliseconds(),
		"open_connections": stats.OpenConnections,
		"in_use":           stats.InUse,
		"wait_count":       stats.WaitCount,
	}

	saturated := stats.MaxOpenConnections > 0 && stats.InUse >= stats.MaxOpenConnections
	if latency > slowPingThreshold || saturated {
		status.Status = ports.StatusDegraded
		return status
	}
	status.Status = ports.StatusHealthy
	return status
}
