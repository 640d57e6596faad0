package external

import (
	"context"
	"fmt"
	"sort"

	"weatherreminder.app/internal/core/weather"
	"weatherreminder.app/internal/ports"
	"weatherreminder.app/pkg/errors"
)

// WeatherSourceAdapter routes a fetch to the provider the subscription selected.
// There is no failover between providers: each subscription is bound to one service.
type WeatherSourceAdapter struct {
	providers map[string]ports.WeatherProvider
	logger    ports.Logger
}

// WeatherSourceConfig holds configuration for creating the weather source
type WeatherSourceConfig struct {
	OpenWeatherMapKey string
	OpenWeatherMapURL string
	WeatherBitKey     string
	WeatherBitURL     string
	Client            HTTPClient
	Breaker           BreakerSettings
	EnableLogging     bool
	Logger            ports.Logger
}

// NewWeatherSourceAdapter builds every provider that has an API key configured
func NewWeatherSourceAdapter(cfg WeatherSourceConfig) *WeatherSourceAdapter {
	source := &WeatherSourceAdapter{
		providers: make(map[string]ports.WeatherProvider),
		logger:    cfg.Logger,
	}

	if cfg.OpenWeatherMapKey != "" {
		source.Register(NewOpenWeatherMapProviderAdapter(OpenWeatherMapProviderParams{
			APIKey:  cfg.OpenWeatherMapKey,
			BaseURL: cfg.OpenWeatherMapURL,
			Client:  cfg.Client,
			Breaker: cfg.Breaker,
			Logger:  cfg.Logger,
		}), cfg.EnableLogging)
	}

	if cfg.WeatherBitKey != "" {
		source.Register(NewWeatherBitProviderAdapter(WeatherBitProviderParams{
			APIKey:  cfg.WeatherBitKey,
			BaseURL: cfg.WeatherBitURL,
			Client:  cfg.Client,
			Breaker: cfg.Breaker,
			Logger:  cfg.Logger,
		}), cfg.EnableLogging)
	}

	return source
}

// Register adds or replaces a provider under its canonical name
func (s *WeatherSourceAdapter) Register(provider ports.WeatherProvider, withLogging bool) {
	name := provider.GetProviderName()
	if withLogging && s.logger != nil {
		provider = NewWeatherProviderLoggingDecorator(provider, s.logger)
	}
	s.providers[name] = provider

	if s.logger != nil {
		s.logger.Debug("Registered weather provider", ports.F("provider", name))
	}
}

// Fetch asks the named provider for the current weather in city
func (s *WeatherSourceAdapter) Fetch(ctx context.Context, city, provider string) (*ports.WeatherData, error) {
	parsed := weather.ProviderFromString(provider)
	if !parsed.IsValid() {
		return nil, errors.NewValidationError(fmt.Sprintf("unknown weather provider %q", provider))
	}

	p, ok := s.providers[parsed.String()]
	if !ok {
		return nil, errors.NewProviderUnavailableError(
			fmt.Sprintf("weather provider %s is not configured", parsed), nil)
	}

	return p.GetCurrentWeather(ctx, city)
}

// GetProviderInfo returns information about configured providers
func (s *WeatherSourceAdapter) GetProviderInfo() map[string]interface{} {
	names := make([]string, 0, len(s.providers))
	states := make(map[string]string, len(s.providers))
	for name, p := range s.providers {
		names = append(names, name)
		if b, ok := unwrapProvider(p).(interface{ BreakerState() string }); ok {
			states[name] = b.BreakerState()
		}
	}
	sort.Strings(names)

	return map[string]interface{}{
		"total_providers": len(names),
		"providers":       names,
		"breaker_states":  states,
	}
}

func unwrapProvider(p ports.WeatherProvider) ports.WeatherProvider {
	if d, ok := p.(*WeatherProviderLoggingDecorator); ok {
		return d.provider
	}
	return p
}
