package weather

import (
	"context"
	"fmt"
	"time"

	"weatherreminder.app/internal/ports"
	"weatherreminder.app/pkg/errors"
)

// UseCase keeps the stored weather readings populated and serves them
type UseCase struct {
	source        ports.WeatherSource
	readings      ports.WeatherReadingRepository
	subscriptions ports.SubscriptionRepository
	cache         ports.ReadingCache
	config        ports.ConfigProvider
	logger        ports.Logger
	metrics       ports.MetricsRecorder
}

// UseCaseDependencies contains all dependencies for the weather use case
type UseCaseDependencies struct {
	Source        ports.WeatherSource
	Readings      ports.WeatherReadingRepository
	Subscriptions ports.SubscriptionRepository
	Cache         ports.ReadingCache
	Config        ports.ConfigProvider
	Logger        ports.Logger
	Metrics       ports.MetricsRecorder
}

// NewUseCase creates a new weather use case
func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Source == nil {
		return nil, errors.NewValidationError("weather source is required")
	}
	if deps.Readings == nil {
		return nil, errors.NewValidationError("reading repository is required")
	}
	if deps.Subscriptions == nil {
		return nil, errors.NewValidationError("subscription repository is required")
	}
	if deps.Cache == nil {
		return nil, errors.NewValidationError("cache is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}

	return &UseCase{
		source:        deps.Source,
		readings:      deps.Readings,
		subscriptions: deps.Subscriptions,
		cache:         deps.Cache,
		config:        deps.Config,
		logger:        deps.Logger,
		metrics:       deps.Metrics,
	}, nil
}

// EnsureReading stores a first reading for the pair unless one already exists.
// A fetch failure is returned to the caller untouched by any write.
func (uc *UseCase) EnsureReading(ctx context.Context, city City, provider Provider) error {
	_, err := uc.readings.FindByCityAndProvider(ctx, city.ID, provider.String())
	if err == nil {
		uc.logger.Debug("Weather reading already present",
			ports.F("city", city.Name),
			ports.F("provider", provider.String()))
		return nil
	}
	if !errors.IsNotFoundError(err) {
		return fmt.Errorf("find reading for %s/%s: %w", city.Name, provider, err)
	}

	if _, err := uc.fetchAndStore(ctx, city, provider); err != nil {
		return err
	}
	return nil
}

// Refresh fetches a new reading and overwrites the stored one; concurrent refreshes are last-writer-wins
func (uc *UseCase) Refresh(ctx context.Context, city City, provider Provider) (*Reading, error) {
	reading, err := uc.fetchAndStore(ctx, city, provider)
	if err != nil {
		return nil, err
	}

	if uc.config.GetWeatherConfig().EnableCache {
		uc.writeCache(ctx, reading)
	}
	return reading, nil
}

// RefreshForSubscription refreshes the pair referenced by a subscription.
// A subscription deleted after the job fired is not an error.
func (uc *UseCase) RefreshForSubscription(ctx context.Context, subscriptionID uint) error {
	sub, err := uc.subscriptions.FindByID(ctx, subscriptionID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			uc.logger.Warn("Refresh fired for missing subscription", ports.F("subscriptionId", subscriptionID))
			return nil
		}
		return fmt.Errorf("find subscription %d: %w", subscriptionID, err)
	}

	provider := ProviderFromString(sub.Provider)
	if !provider.IsValid() {
		return errors.NewValidationError("subscription has unknown provider " + sub.Provider)
	}

	if _, err := uc.Refresh(ctx, City{ID: sub.CityID, Name: sub.CityName}, provider); err != nil {
		return fmt.Errorf("refresh for subscription %d: %w", subscriptionID, err)
	}
	return nil
}

// GetReading returns the stored reading for the pair, served from cache when enabled
func (uc *UseCase) GetReading(ctx context.Context, cityID uint, provider Provider) (*Reading, error) {
	cfg := uc.config.GetWeatherConfig()
	key := cacheKey(cityID, provider)

	if cfg.EnableCache {
		cached, err := uc.cache.Get(ctx, key)
		if err == nil && cached != nil {
			uc.metrics.RecordReadingCache(true)
			return fromReadingData(cached), nil
		}
		uc.metrics.RecordReadingCache(false)
	}

	data, err := uc.readings.FindByCityAndProvider(ctx, cityID, provider.String())
	if err != nil {
		return nil, fmt.Errorf("get reading for city %d/%s: %w", cityID, provider, err)
	}

	if cfg.EnableCache {
		if err := uc.cache.Set(ctx, key, data, cfg.CacheTTL); err != nil {
			uc.logger.Warn("Failed to cache weather reading",
				ports.F("key", key),
				ports.F("error", err))
		}
	}
	return fromReadingData(data), nil
}

// ForgetReading drops the pair's stored reading and its cache entry, so the
// next subscriber to the pair fetches a fresh one
func (uc *UseCase) ForgetReading(ctx context.Context, cityID uint, provider Provider) error {
	if err := uc.readings.DeleteByCityAndProvider(ctx, cityID, provider.String()); err != nil {
		return fmt.Errorf("delete reading for city %d/%s: %w", cityID, provider, err)
	}

	if err := uc.cache.Delete(ctx, cacheKey(cityID, provider)); err != nil {
		uc.logger.Warn("Failed to evict weather reading",
			ports.F("cityId", cityID),
			ports.F("provider", provider.String()),
			ports.F("error", err))
	}
	return nil
}

// ForgetCity removes every stored reading of a city and evicts them from cache
func (uc *UseCase) ForgetCity(ctx context.Context, cityID uint) error {
	if err := uc.readings.DeleteByCity(ctx, cityID); err != nil {
		return fmt.Errorf("delete readings for city %d: %w", cityID, err)
	}

	for _, p := range Providers() {
		if err := uc.cache.Delete(ctx, cacheKey(cityID, p)); err != nil {
			uc.logger.Warn("Failed to evict weather reading",
				ports.F("cityId", cityID),
				ports.F("provider", p.String()),
				ports.F("error", err))
		}
	}
	return nil
}

// GetProviderInfo describes the configured providers
func (uc *UseCase) GetProviderInfo() map[string]interface{} {
	return uc.source.GetProviderInfo()
}

func (uc *UseCase) fetchAndStore(ctx context.Context, city City, provider Provider) (*Reading, error) {
	data, err := uc.source.Fetch(ctx, city.Name, provider.String())
	if err != nil {
		uc.metrics.RecordProviderFetch(provider.String(), outcomeOf(err))
		uc.logger.Error("Weather fetch failed",
			ports.F("city", city.Name),
			ports.F("provider", provider.String()),
			ports.F("error", err))
		return nil, classifyFetchError(city.Name, provider, err)
	}
	uc.metrics.RecordProviderFetch(provider.String(), "success")

	reading := &Reading{
		CityID:       city.ID,
		Provider:     provider,
		ReportedCity: data.ReportedCity,
		CountryCode:  data.CountryCode,
		Longitude:    data.Longitude,
		Latitude:     data.Latitude,
		Temperature:  data.Temperature,
		Pressure:     data.Pressure,
		Humidity:     data.Humidity,
		UpdatedAt:    time.Now().UTC(),
	}
	if err := reading.IsValid(); err != nil {
		return nil, errors.NewProviderUnavailableError("invalid weather data from "+provider.String(), err)
	}

	if err := uc.readings.Upsert(ctx, toReadingData(reading)); err != nil {
		return nil, fmt.Errorf("store reading for %s/%s: %w", city.Name, provider, err)
	}

	uc.logger.Info("Weather reading stored",
		ports.F("city", city.Name),
		ports.F("provider", provider.String()),
		ports.F("temperature", reading.Temperature))
	return reading, nil
}

func (uc *UseCase) writeCache(ctx context.Context, reading *Reading) {
	key := cacheKey(reading.CityID, reading.Provider)
	if err := uc.cache.Set(ctx, key, toReadingData(reading), uc.config.GetWeatherConfig().CacheTTL); err != nil {
		uc.logger.Warn("Failed to cache weather reading",
			ports.F("key", key),
			ports.F("error", err))
	}
}

// classifyFetchError keeps rate-limit and unknown-city signals and folds everything else into ProviderUnavailable
func classifyFetchError(city string, provider Provider, err error) error {
	switch {
	case errors.IsRateLimitedError(err), errors.IsNotFoundError(err), errors.IsProviderUnavailableError(err):
		return err
	default:
		return errors.NewProviderUnavailableError(fmt.Sprintf("fetch weather for %s from %s", city, provider), err)
	}
}

func outcomeOf(err error) string {
	switch {
	case errors.IsRateLimitedError(err):
		return "rate_limited"
	case errors.IsNotFoundError(err):
		return "not_found"
	default:
		return "failure"
	}
}

func cacheKey(cityID uint, provider Provider) string {
	return fmt.Sprintf("reading:%d:%s", cityID, provider)
}

func toReadingData(r *Reading) *ports.WeatherReadingData {
	return &ports.WeatherReadingData{
		CityID:       r.CityID,
		Provider:     r.Provider.String(),
		ReportedCity: r.ReportedCity,
		CountryCode:  r.CountryCode,
		Longitude:    r.Longitude,
		Latitude:     r.Latitude,
		Temperature:  r.Temperature,
		Pressure:     r.Pressure,
		Humidity:     r.Humidity,
		UpdatedAt:    r.UpdatedAt,
	}
}

func fromReadingData(d *ports.WeatherReadingData) *Reading {
	return &Reading{
		CityID:       d.CityID,
		Provider:     ProviderFromString(d.Provider),
		ReportedCity: d.ReportedCity,
		CountryCode:  d.CountryCode,
		Longitude:    d.Longitude,
		Latitude:     d.Latitude,
		Temperature:  d.Temperature,
		Pressure:     d.Pressure,
		Humidity:     d.Humidity,
		UpdatedAt:    d.UpdatedAt,
	}
}
