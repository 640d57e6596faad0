package app

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"weatherreminder.app/internal/adapters/database"
	"weatherreminder.app/internal/adapters/external"
	"weatherreminder.app/internal/adapters/infrastructure"
	"weatherreminder.app/internal/config"
	"weatherreminder.app/internal/ports"
)

// DependencyContainer owns the infrastructure adapters and their lifetimes
type DependencyContainer struct {
	config     *config.Config
	db         *gorm.DB
	backends   *external.BackendFactory
	fileLogger *infrastructure.FileLoggerAdapter
	metrics    *infrastructure.PrometheusMetrics
	ports      *ports.ApplicationPorts
}

// NewDependencyContainer opens the database and builds every port adapter
func NewDependencyContainer(cfg *config.Config) (*DependencyContainer, error) {
	db, err := OpenDatabase(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}
	return NewDependencyContainerWithDB(cfg, db)
}

// NewDependencyContainerWithDB builds the ports on an already opened database
func NewDependencyContainerWithDB(cfg *config.Config, db *gorm.DB) (*DependencyContainer, error) {
	container := &DependencyContainer{
		config:   cfg,
		db:       db,
		backends: external.NewBackendFactory(&cfg.Cache.Redis),
		metrics:  infrastructure.NewPrometheusMetrics(),
	}

	if err := container.runMigrations(); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	if err := container.initializePorts(); err != nil {
		_ = container.Cleanup()
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

// OpenDatabase connects with the configured driver
func OpenDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "sqlite":
		dialector = sqlite.Open(cfg.SQLitePath)
	default:
		dialector = postgres.Open(cfg.GetDSN())
	}

	slog.Info("Initializing database connection...", "driver", cfg.Driver)
	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if cfg.Driver == "sqlite" {
		// sqlite allows a single writer
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.SetMaxOpenConns(1)
		}
	}

	slog.Info("Database connection established successfully")
	return db, nil
}

func (c *DependencyContainer) runMigrations() error {
	slog.Info("Running database migrations...")
	if err := c.db.AutoMigrate(database.Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	slog.Info("Database migrations completed successfully")
	return nil
}

func (c *DependencyContainer) initializePorts() error {
	slog.Info("Initializing ports...")

	logger := infrastructure.NewSlogLoggerAdapter(slog.Default())

	// provider requests go to a dedicated file when enabled
	var providerLogger ports.Logger = logger
	if c.config.Weather.EnableLogging && c.config.Weather.LogFilePath != "" {
		fileLogger, err := infrastructure.NewFileLoggerAdapter(c.config.Weather.LogFilePath)
		if err != nil {
			slog.Warn("Failed to create provider file logger, falling back to slog", "error", err)
		} else {
			c.fileLogger = fileLogger
			providerLogger = fileLogger
			slog.Info("Provider file logging enabled", "path", c.config.Weather.LogFilePath)
		}
	}

	source := external.NewWeatherSourceAdapter(external.WeatherSourceConfig{
		OpenWeatherMapKey: c.config.Weather.OpenWeatherMapKey,
		OpenWeatherMapURL: c.config.Weather.OpenWeatherMapBaseURL,
		WeatherBitKey:     c.config.Weather.WeatherBitKey,
		WeatherBitURL:     c.config.Weather.WeatherBitBaseURL,
		Client:            &http.Client{Timeout: c.config.Weather.HTTPTimeout()},
		Breaker: external.BreakerSettings{
			ConsecutiveFailures: c.config.Weather.BreakerFailures,
			OpenTimeout:         time.Duration(c.config.Weather.BreakerOpenSeconds) * time.Second,
		},
		EnableLogging: c.config.Weather.EnableLogging,
		Logger:        providerLogger,
	})

	cacheProvider, err := c.backends.CreateCacheProvider(&c.config.Cache)
	if err != nil {
		return fmt.Errorf("create cache provider: %w", err)
	}
	slog.Info("Cache provider initialized", "type", c.config.Cache.Type.String())

	locker, err := c.backends.CreateKeyLocker(&c.config.Lock, logger)
	if err != nil {
		return fmt.Errorf("create key locker: %w", err)
	}
	slog.Info("Key locker initialized", "type", c.config.Lock.Type.String())

	emailProvider := external.NewSMTPEmailProviderAdapter(external.EmailProviderConfig{
		Host:     c.config.Email.SMTPHost,
		Port:     c.config.Email.SMTPPort,
		Username: c.config.Email.SMTPUsername,
		Password: c.config.Email.SMTPPassword,
		FromName: c.config.Email.FromName,
		FromAddr: c.config.Email.FromAddress,
	})

	var cacheMetrics ports.CacheMetrics
	if m, ok := cacheProvider.(ports.CacheMetrics); ok {
		cacheMetrics = m
	}

	c.ports = &ports.ApplicationPorts{
		Transactions:           database.NewTransactionManagerAdapter(c.db),
		UserRepository:         database.NewUserRepositoryAdapter(c.db),
		CityRepository:         database.NewCityRepositoryAdapter(c.db),
		SubscriptionRepository: database.NewSubscriptionRepositoryAdapter(c.db),
		WeatherRepository:      database.NewWeatherReadingRepositoryAdapter(c.db),
		JobStore:               database.NewJobStoreAdapter(c.db),

		WeatherSource: source,
		ReadingCache:  external.NewReadingCacheAdapter(cacheProvider),

		EmailProvider: emailProvider,
		KeyLocker:     locker,
		CacheMetrics:  cacheMetrics,

		ConfigProvider: infrastructure.NewConfigProviderAdapter(c.config),
		Logger:         logger,
		Metrics:        c.metrics,
		Database:       c.db,
	}

	slog.Info("Ports initialized successfully")
	return nil
}

// ApplicationPorts returns the built ports
func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

// Database returns the gorm handle
func (c *DependencyContainer) Database() *gorm.DB {
	return c.db
}

// Metrics returns the Prometheus recorder backing the Metrics port
func (c *DependencyContainer) Metrics() *infrastructure.PrometheusMetrics {
	return c.metrics
}

// Backends returns the factory that owns the shared Redis client
func (c *DependencyContainer) Backends() *external.BackendFactory {
	return c.backends
}

// Cleanup releases Redis, the provider log file and the database pool
func (c *DependencyContainer) Cleanup() error {
	var firstErr error
	record := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	record(c.backends.Close())
	if c.fileLogger != nil {
		record(c.fileLogger.Close())
	}
	if c.db != nil {
		if sqlDB, err := c.db.DB(); err == nil {
			record(sqlDB.Close())
		}
	}
	return firstErr
}
