package infrastructure

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"weatherreminder.app/internal/ports"
)

const defaultCheckTimeout = 3 * time.Second

// SystemHealthChecker runs every registered component check concurrently
type SystemHealthChecker struct {
	checkers       map[string]ports.HealthChecker
	configProvider ports.ConfigProvider
	timeout        time.Duration
}

// SystemHealthCheckerConfig holds the configuration for creating a system health checker
type SystemHealthCheckerConfig struct {
	Checkers       map[string]ports.HealthChecker
	ConfigProvider ports.ConfigProvider
	Timeout        time.Duration
}

// NewSystemHealthChecker creates a new system health checker
func NewSystemHealthChecker(config SystemHealthCheckerConfig) *SystemHealthChecker {
	checkers := make(map[string]ports.HealthChecker, len(config.Checkers))
	for name, checker := range config.Checkers {
		if checker != nil {
			checkers[name] = checker
		}
	}
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = defaultCheckTimeout
	}
	return &SystemHealthChecker{
		checkers:       checkers,
		configProvider: config.ConfigProvider,
		timeout:        timeout,
	}
}

// CheckAll performs health checks on all components
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var mu sync.Mutex
	results := make(map[string]ports.HealthStatus, len(s.checkers)+1)

	g, gctx := errgroup.WithContext(ctx)
	for name, checker := range s.checkers {
		name, checker := name, checker
		g.Go(func() error {
			status := checker.Check(gctx)
			mu.Lock()
			results[name] = status
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	if s.configProvider != nil {
		scheduler := s.configProvider.GetSchedulerConfig()
		results["config"] = ports.HealthStatus{
			Component: "config",
			Status:    ports.StatusHealthy,
			Details: map[string]interface{}{
				"appBaseURL":        s.configProvider.GetAppConfig().BaseURL,
				"schedulerEnabled":  scheduler.Enabled,
				"schedulerTimezone": scheduler.Timezone,
				"cacheType":         s.configProvider.GetCacheConfig().Type,
				"lockType":          s.configProvider.GetLockConfig().Type,
			},
		}
	}

	return results
}
