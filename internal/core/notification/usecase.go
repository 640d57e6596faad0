package notification

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"weatherreminder.app/internal/core/weather"
	"weatherreminder.app/internal/ports"
	"weatherreminder.app/pkg/errors"
)

// ReadingReader returns the stored reading for a (city, provider) pair
type ReadingReader interface {
	GetReading(ctx context.Context, cityID uint, provider weather.Provider) (*weather.Reading, error)
}

type UseCase struct {
	subscriptionRepo ports.SubscriptionRepository
	readings         ReadingReader
	emailProvider    ports.EmailProvider
	config           ports.ConfigProvider
	logger           ports.Logger
}

type UseCaseDependencies struct {
	SubscriptionRepo ports.SubscriptionRepository
	Readings         ReadingReader
	EmailProvider    ports.EmailProvider
	Config           ports.ConfigProvider
	Logger           ports.Logger
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.SubscriptionRepo == nil {
		return nil, errors.NewValidationError("subscription repository is required")
	}
	if deps.Readings == nil {
		return nil, errors.NewValidationError("reading reader is required")
	}
	if deps.EmailProvider == nil {
		return nil, errors.NewValidationError("email provider is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &UseCase{
		subscriptionRepo: deps.SubscriptionRepo,
		readings:         deps.Readings,
		emailProvider:    deps.EmailProvider,
		config:           deps.Config,
		logger:           deps.Logger,
	}, nil
}

// SendForSubscription emails the stored reading to the subscriber.
// A subscription deleted after its job fired is not an error.
func (uc *UseCase) SendForSubscription(ctx context.Context, subscriptionID uint) error {
	sub, err := uc.subscriptionRepo.FindByID(ctx, subscriptionID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			uc.logger.Warn("Skipping notification for missing subscription",
				ports.F("subscription_id", subscriptionID))
			return nil
		}
		return fmt.Errorf("find subscription %d: %w", subscriptionID, err)
	}

	provider := weather.ProviderFromString(sub.Provider)
	reading, err := uc.readings.GetReading(ctx, sub.CityID, provider)
	if err != nil {
		return fmt.Errorf("load reading for %s/%s: %w", sub.CityName, provider, err)
	}

	n := &WeatherNotification{
		Email:       sub.Email,
		City:        sub.CityName,
		PeriodHours: sub.Period,
		Provider:    provider,
		CountryCode: reading.CountryCode,
		Longitude:   reading.Longitude,
		Latitude:    reading.Latitude,
		Temperature: reading.Temperature,
		Pressure:    reading.Pressure,
		Humidity:    reading.Humidity,
		UpdatedAt:   reading.UpdatedAt,
		ManageURL:   uc.manageURL(sub.Email),
	}
	if err := n.IsValid(); err != nil {
		return err
	}

	body, err := n.RenderBody()
	if err != nil {
		return err
	}

	if err := uc.emailProvider.SendEmail(ctx, ports.EmailParams{
		To:      n.Email,
		Subject: Subject,
		Body:    body,
		IsHTML:  true,
	}); err != nil {
		return fmt.Errorf("send notification to %s: %w", n.Email, err)
	}

	uc.logger.Debug("Weather notification sent",
		ports.F("subscription_id", subscriptionID),
		ports.F("city", n.City),
		ports.F("provider", provider.String()))
	return nil
}

func (uc *UseCase) manageURL(email string) string {
	base := strings.TrimRight(uc.config.GetAppConfig().BaseURL, "/")
	if base == "" {
		return ""
	}
	return fmt.Sprintf("%s/api/subscriptions?email=%s", base, url.QueryEscape(email))
}
