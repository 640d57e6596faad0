package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin"
	"weatherreminder.app/internal/adapters/api"
	"weatherreminder.app/internal/adapters/executor"
	"weatherreminder.app/internal/adapters/infrastructure"
	"weatherreminder.app/internal/config"
	"weatherreminder.app/internal/core/notification"
	"weatherreminder.app/internal/core/scheduling"
	"weatherreminder.app/internal/core/subscription"
	"weatherreminder.app/internal/core/weather"
	"weatherreminder.app/internal/ports"
)

type Application struct {
	config *config.Config
	deps   *DependencyContainer

	// Use Cases
	weatherUseCase      *weather.UseCase
	subscriptionUseCase *subscription.UseCase
	notificationUseCase *notification.UseCase
	scheduler           *scheduling.SubscriptionScheduler

	// Adapters
	httpServer *api.HTTPServerAdapter
	executor   *executor.CronExecutor

	// Infrastructure
	ports *ports.ApplicationPorts
}

// NewApplication wires the application from a loaded configuration
func NewApplication(cfg *config.Config) (*Application, error) {
	deps, err := NewDependencyContainer(cfg)
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	app, err := NewApplicationWithDependencies(cfg, deps)
	if err != nil {
		_ = deps.Cleanup()
		return nil, err
	}
	return app, nil
}

// NewApplicationWithDependencies creates an application on a prepared container (for testing)
func NewApplicationWithDependencies(cfg *config.Config, deps *DependencyContainer) (*Application, error) {
	app := &Application{
		config: cfg,
		deps:   deps,
		ports:  deps.ApplicationPorts(),
	}

	if err := app.initializeUseCases(); err != nil {
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeUseCases() error {
	slog.Info("Initializing use cases...")
	p := a.ports
	timezone := a.config.Scheduler.Timezone

	weatherUseCase, err := weather.NewUseCase(weather.UseCaseDependencies{
		Source:        p.WeatherSource,
		Readings:      p.WeatherRepository,
		Subscriptions: p.SubscriptionRepository,
		Cache:         p.ReadingCache,
		Config:        p.ConfigProvider,
		Logger:        p.Logger,
		Metrics:       p.Metrics,
	})
	if err != nil {
		return fmt.Errorf("create weather use case: %w", err)
	}
	a.weatherUseCase = weatherUseCase

	scheduler, err := scheduling.NewSubscriptionScheduler(scheduling.SchedulerDependencies{
		JobStore: p.JobStore,
		Logger:   p.Logger,
		Metrics:  p.Metrics,
		Timezone: timezone,
	})
	if err != nil {
		return fmt.Errorf("create subscription scheduler: %w", err)
	}
	a.scheduler = scheduler

	coordinator, err := scheduling.NewRefreshCoordinator(scheduling.CoordinatorDependencies{
		JobStore:      p.JobStore,
		Subscriptions: p.SubscriptionRepository,
		Logger:        p.Logger,
		Metrics:       p.Metrics,
		Timezone:      timezone,
	})
	if err != nil {
		return fmt.Errorf("create refresh coordinator: %w", err)
	}

	subscriptionUseCase, err := subscription.NewUseCase(subscription.UseCaseDependencies{
		Transactions:  p.Transactions,
		Locker:        p.KeyLocker,
		Users:         p.UserRepository,
		Cities:        p.CityRepository,
		Subscriptions: p.SubscriptionRepository,
		Weather:       weatherUseCase,
		Scheduler:     scheduler,
		Coordinator:   coordinator,
		Logger:        p.Logger,
	})
	if err != nil {
		return fmt.Errorf("create subscription use case: %w", err)
	}
	a.subscriptionUseCase = subscriptionUseCase

	notificationUseCase, err := notification.NewUseCase(notification.UseCaseDependencies{
		SubscriptionRepo: p.SubscriptionRepository,
		Readings:         weatherUseCase,
		EmailProvider:    p.EmailProvider,
		Config:           p.ConfigProvider,
		Logger:           p.Logger,
	})
	if err != nil {
		return fmt.Errorf("create notification use case: %w", err)
	}
	a.notificationUseCase = notificationUseCase

	slog.Info("Use cases initialized successfully")
	return nil
}

func (a *Application) initializeAdapters() error {
	slog.Info("Initializing adapters...")
	p := a.ports

	cronExecutor, err := executor.NewCronExecutor(executor.Config{
		JobStore:       p.JobStore,
		Logger:         p.Logger,
		Metrics:        p.Metrics,
		ResyncInterval: p.ConfigProvider.GetSchedulerConfig().ResyncInterval,
	})
	if err != nil {
		return fmt.Errorf("create job executor: %w", err)
	}
	cronExecutor.Register(scheduling.ActionSendEmail, executor.SubscriptionHandler(a.notificationUseCase.SendForSubscription))
	cronExecutor.Register(scheduling.ActionRefreshWeather, executor.SubscriptionHandler(a.weatherUseCase.RefreshForSubscription))
	a.executor = cronExecutor

	checkers := map[string]ports.HealthChecker{
		"database":          infrastructure.NewDatabaseHealthChecker(a.deps.Database()),
		"weather_providers": infrastructure.NewWeatherSourceHealthChecker(p.WeatherSource),
		"smtp":              infrastructure.NewEmailHealthChecker(p.ConfigProvider.GetEmailConfig()),
	}
	if a.deps.Backends().UsesRedis() {
		checkers["redis"] = infrastructure.NewRedisHealthChecker(a.deps.Backends())
	}

	healthChecker := infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		Checkers:       checkers,
		ConfigProvider: p.ConfigProvider,
	})

	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config:              api.ServerConfig{Port: a.config.Server.Port},
		SubscriptionUseCase: a.subscriptionUseCase,
		WeatherUseCase:      a.weatherUseCase,
		JobLister:           a.scheduler,
		HealthChecker:       healthChecker,
		MetricsHandler:      a.deps.Metrics().Handler(),
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}
	a.httpServer = httpAdapter

	slog.Info("Adapters initialized successfully")
	return nil
}

// Start runs the job executor (when enabled) and serves HTTP until shutdown
func (a *Application) Start(ctx context.Context) error {
	slog.Info("Starting application...")

	if a.config.Scheduler.Enabled {
		if err := a.executor.Start(ctx); err != nil {
			return fmt.Errorf("start job executor: %w", err)
		}
	} else {
		slog.Info("Job executor disabled; jobs are stored but not run")
	}

	return a.httpServer.Start(ctx)
}

// Shutdown stops HTTP, then the executor, then releases resources
func (a *Application) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application...")

	var firstErr error
	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.Error("Error shutting down HTTP server", "error", err)
		firstErr = fmt.Errorf("shutdown HTTP server: %w", err)
	}

	if err := a.executor.Stop(ctx); err != nil {
		slog.Error("Error stopping job executor", "error", err)
		if firstErr == nil {
			firstErr = fmt.Errorf("stop job executor: %w", err)
		}
	}

	if err := a.deps.Cleanup(); err != nil {
		slog.Warn("Error releasing resources", "error", err)
	}

	slog.Info("Application shutdown complete")
	return firstErr
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.httpServer.GetRouter()
}

// GetSubscriptionUseCase returns the subscription use case for testing
func (a *Application) GetSubscriptionUseCase() *subscription.UseCase {
	return a.subscriptionUseCase
}

// GetExecutor returns the job executor for testing
func (a *Application) GetExecutor() *executor.CronExecutor {
	return a.executor
}
