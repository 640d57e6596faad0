package external

import (
	"context"
	"time"

	"weatherreminder.app/internal/ports"
	"weatherreminder.app/pkg/errors"
)

// WeatherProviderLoggingDecorator logs every fetch made through a provider
type WeatherProviderLoggingDecorator struct {
	provider ports.WeatherProvider
	logger   ports.Logger
}

func NewWeatherProviderLoggingDecorator(provider ports.WeatherProvider, logger ports.Logger) *WeatherProviderLoggingDecorator {
	return &WeatherProviderLoggingDecorator{
		provider: provider,
		logger:   logger,
	}
}

// GetCurrentWeather fetches through the wrapped provider. Unknown cities and
// retryable failures are logged as warnings, anything else as an error.
func (d *WeatherProviderLoggingDecorator) GetCurrentWeather(ctx context.Context, city string) (*ports.WeatherData, error) {
	name := d.provider.GetProviderName()
	d.logger.Debug("Provider fetch started", ports.F("provider", name), ports.F("city", city))

	started := time.Now()
	reading, err := d.provider.GetCurrentWeather(ctx, city)
	elapsed := time.Since(started).Milliseconds()

	if err != nil {
		fields := []ports.Field{
			ports.F("provider", name),
			ports.F("city", city),
			ports.F("duration_ms", elapsed),
			ports.F("error_type", errors.TypeOf(err).String()),
			ports.F("error", err.Error()),
		}
		switch {
		case errors.IsNotFoundError(err):
			d.logger.Warn("Provider does not know the city", fields...)
		case errors.IsRetryable(err):
			d.logger.Warn("Provider fetch failed, retryable", fields...)
		default:
			d.logger.Error("Provider fetch failed", fields...)
		}
		return nil, err
	}

	d.logger.Info("Provider fetch completed",
		ports.F("provider", name),
		ports.F("city", city),
		ports.F("duration_ms", elapsed),
		ports.F("reported_city", reading.ReportedCity),
		ports.F("country", reading.CountryCode),
		ports.F("temperature", reading.Temperature),
		ports.F("pressure", reading.Pressure),
		ports.F("humidity", reading.Humidity))

	return reading, nil
}

// GetProviderName must stay undecorated, the source registry is keyed by it.
func (d *WeatherProviderLoggingDecorator) GetProviderName() string {
	return d.provider.GetProviderName()
}
