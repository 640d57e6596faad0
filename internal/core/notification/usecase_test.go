package notification

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherreminder.app/internal/core/weather"
	"weatherreminder.app/internal/mocks"
	"weatherreminder.app/internal/ports"
	"weatherreminder.app/pkg/errors"
)

type stubReadings struct {
	reading *weather.Reading
	err     error
	calls   []string
}

func (s *stubReadings) GetReading(ctx context.Context, cityID uint, provider weather.Provider) (*weather.Reading, error) {
	s.calls = append(s.calls, fmt.Sprintf("%d/%s", cityID, provider))
	return s.reading, s.err
}

type notificationFixture struct {
	subs     *mocks.SubscriptionRepository
	email    *mocks.EmailProvider
	config   *mocks.ConfigProvider
	readings *stubReadings
	uc       *UseCase
}

func newNotificationFixture(t *testing.T) *notificationFixture {
	t.Helper()

	f := &notificationFixture{
		subs:     mocks.NewSubscriptionRepository(t),
		email:    mocks.NewEmailProvider(t),
		config:   mocks.NewConfigProvider(t),
		readings: &stubReadings{},
	}
	f.config.EXPECT().GetAppConfig().Return(ports.AppConfig{BaseURL: "http://localhost:8080/"}).Maybe()

	uc, err := NewUseCase(UseCaseDependencies{
		SubscriptionRepo: f.subs,
		Readings:         f.readings,
		EmailProvider:    f.email,
		Config:           f.config,
		Logger:           mocks.NewPermissiveLogger(t),
	})
	require.NoError(t, err)
	f.uc = uc
	return f
}

func parisSubscription() *ports.SubscriptionData {
	return &ports.SubscriptionData{
		ID:       5,
		UserID:   1,
		CityID:   2,
		Provider: "OpenWeatherMap",
		Period:   6,
		Email:    "a@example.com",
		CityName: "Paris",
	}
}

func TestNewUseCase_RequiresDependencies(t *testing.T) {
	_, err := NewUseCase(UseCaseDependencies{})
	assert.True(t, errors.IsValidationError(err))
}

func TestUseCase_SendForSubscription_Success(t *testing.T) {
	f := newNotificationFixture(t)
	ctx := context.Background()

	f.subs.EXPECT().FindByID(ctx, uint(5)).Return(parisSubscription(), nil)
	f.readings.reading = &weather.Reading{
		CityID:      2,
		Provider:    weather.ProviderOpenWeatherMap,
		CountryCode: "FR",
		Longitude:   2.35,
		Latitude:    48.85,
		Temperature: 14,
		Pressure:    1010,
		Humidity:    70,
		UpdatedAt:   time.Now().UTC(),
	}

	f.email.EXPECT().SendEmail(ctx, mock.MatchedBy(func(p ports.EmailParams) bool {
		return p.To == "a@example.com" &&
			p.Subject == "Weather notification" &&
			p.IsHTML &&
			strings.Contains(p.Body, "every 6 hours") &&
			strings.Contains(p.Body, "Service: OpenWeatherMap") &&
			strings.Contains(p.Body, "http://localhost:8080/api/subscriptions?email=a%40example.com")
	})).Return(nil).Once()

	require.NoError(t, f.uc.SendForSubscription(ctx, 5))
	assert.Equal(t, []string{"2/OpenWeatherMap"}, f.readings.calls)
}

func TestUseCase_SendForSubscription_MissingSubscriptionIsNoop(t *testing.T) {
	f := newNotificationFixture(t)
	ctx := context.Background()

	f.subs.EXPECT().FindByID(ctx, uint(9)).Return(nil, errors.NewNotFoundError("subscription not found"))

	assert.NoError(t, f.uc.SendForSubscription(ctx, 9))
	assert.Empty(t, f.readings.calls)
}

func TestUseCase_SendForSubscription_MissingReading(t *testing.T) {
	f := newNotificationFixture(t)
	ctx := context.Background()

	f.subs.EXPECT().FindByID(ctx, uint(5)).Return(parisSubscription(), nil)
	f.readings.err = errors.NewNotFoundError("weather reading not found")

	err := f.uc.SendForSubscription(ctx, 5)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestUseCase_SendForSubscription_EmailFailure(t *testing.T) {
	f := newNotificationFixture(t)
	ctx := context.Background()

	f.subs.EXPECT().FindByID(ctx, uint(5)).Return(parisSubscription(), nil)
	f.readings.reading = &weather.Reading{CityID: 2, Provider: weather.ProviderOpenWeatherMap}
	f.email.EXPECT().SendEmail(ctx, mock.Anything).Return(errors.NewEmailError("smtp down", nil))

	err := f.uc.SendForSubscription(ctx, 5)
	assert.True(t, errors.IsEmailError(err))
}

func TestUseCase_SendForSubscription_RepositoryFailure(t *testing.T) {
	f := newNotificationFixture(t)
	ctx := context.Background()

	f.subs.EXPECT().FindByID(ctx, uint(5)).Return(nil, errors.NewDatabaseError("connection reset", nil))

	err := f.uc.SendForSubscription(ctx, 5)
	assert.True(t, errors.IsDatabaseError(err))
}
