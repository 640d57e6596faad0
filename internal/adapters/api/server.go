// Package api provides HTTP adapters for the hexagonal architecture
// These adapters handle incoming HTTP requests and translate them to use cases
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"weatherreminder.app/internal/core/subscription"
	"weatherreminder.app/internal/core/weather"
	"weatherreminder.app/internal/ports"
	"weatherreminder.app/pkg/errors"
)

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port int
}

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router              *gin.Engine
	server              *http.Server
	config              ServerConfig
	subscriptionUseCase SubscriptionUseCase
	weatherUseCase      WeatherUseCase
	jobLister           JobLister
	healthChecker       ports.SystemHealthChecker
	metricsHandler      http.Handler
}

// Use case interfaces that the HTTP adapter depends on
type SubscriptionUseCase interface {
	Subscribe(ctx context.Context, params subscription.SubscribeParams) (*subscription.Subscription, error)
	ChangePeriod(ctx context.Context, params subscription.ChangePeriodParams) (*subscription.Subscription, error)
	Unsubscribe(ctx context.Context, params subscription.UnsubscribeParams) error
	UnsubscribeByKey(ctx context.Context, params subscription.UnsubscribeByKeyParams) error
	DeleteCity(ctx context.Context, params subscription.DeleteCityParams) error
	GetSubscription(ctx context.Context, id uint) (*subscription.Subscription, error)
	ListSubscriptions(ctx context.Context, email string) ([]*subscription.Subscription, error)
}

type WeatherUseCase interface {
	GetReading(ctx context.Context, cityID uint, provider weather.Provider) (*weather.Reading, error)
	GetProviderInfo() map[string]interface{}
}

type JobLister interface {
	ListJobs(ctx context.Context) ([]*ports.JobData, error)
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config              ServerConfig
	SubscriptionUseCase SubscriptionUseCase
	WeatherUseCase      WeatherUseCase
	JobLister           JobLister
	HealthChecker       ports.SystemHealthChecker
	MetricsHandler      http.Handler
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}
	if err := RegisterValidators(); err != nil {
		return nil, fmt.Errorf("register validators: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	server := &HTTPServerAdapter{
		router:              router,
		config:              opts.Config,
		subscriptionUseCase: opts.SubscriptionUseCase,
		weatherUseCase:      opts.WeatherUseCase,
		jobLister:           opts.JobLister,
		healthChecker:       opts.HealthChecker,
		metricsHandler:      opts.MetricsHandler,
	}

	server.setupRoutes()
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.SubscriptionUseCase == nil {
		return errors.NewValidationError("subscription use case is required")
	}
	if opts.WeatherUseCase == nil {
		return errors.NewValidationError("weather use case is required")
	}
	if opts.JobLister == nil {
		return errors.NewValidationError("job lister is required")
	}
	if opts.HealthChecker == nil {
		return errors.NewValidationError("health checker is required")
	}
	if opts.MetricsHandler == nil {
		return errors.NewValidationError("metrics handler is required")
	}
	return nil
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.POST("/subscriptions", s.subscribe)
		api.GET("/subscriptions", s.listSubscriptions)
		api.DELETE("/subscriptions", s.unsubscribeByKey)
		api.GET("/subscriptions/:id", s.getSubscription)
		api.PUT("/subscriptions/:id", s.changePeriod)
		api.DELETE("/subscriptions/:id", s.unsubscribe)
		api.DELETE("/cities/:id", s.deleteCity)
		api.GET("/readings", s.getReading)
		api.GET("/providers", s.getProviders)
		api.GET("/jobs", s.listJobs)
	}

	s.router.GET("/health", s.health)
	s.router.GET("/metrics", gin.WrapH(s.metricsHandler))
}

// Start serves HTTP until Shutdown is called
func (s *HTTPServerAdapter) Start(_ context.Context) error {
	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.config.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("Starting HTTP server", "port", s.config.Port)
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests
func (s *HTTPServerAdapter) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Debug("HTTP request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds())
	}
}
