package subscription

import (
	"context"
	"fmt"
	"strings"

	"weatherreminder.app/internal/core/scheduling"
	"weatherreminder.app/internal/core/weather"
	"weatherreminder.app/internal/ports"
	"weatherreminder.app/pkg/errors"
	"weatherreminder.app/pkg/validation"
)

// NotificationScheduler maintains the per-subscription notification jobs
type NotificationScheduler interface {
	OnSubscriptionCreated(ctx context.Context, sub scheduling.SubscriptionRef) error
	OnSubscriptionEdited(ctx context.Context, sub scheduling.SubscriptionRef) error
	OnSubscriptionDeleted(ctx context.Context, sub scheduling.SubscriptionRef) error
}

// RefreshCoordinator maintains the shared per-(city, provider) refresh jobs
type RefreshCoordinator interface {
	EnsureRefreshJob(ctx context.Context, cityID uint, provider string, representativeID uint) error
	ReleaseRefreshJob(ctx context.Context, cityID uint, provider string) error
	ReleaseRefreshJobUnconditional(ctx context.Context, cityID uint, provider string) error
}

// WeatherReadings populates and removes stored readings
type WeatherReadings interface {
	EnsureReading(ctx context.Context, city weather.City, provider weather.Provider) error
	ForgetReading(ctx context.Context, cityID uint, provider weather.Provider) error
	ForgetCity(ctx context.Context, cityID uint) error
}

// UseCase runs subscription lifecycle operations. Each operation holds the
// (city, provider) lock and runs in one transaction, so job mutations and
// reference counts commit or roll back together with the subscription rows.
type UseCase struct {
	tx            ports.TransactionManager
	locker        ports.KeyLocker
	users         ports.UserRepository
	cities        ports.CityRepository
	subscriptions ports.SubscriptionRepository
	weather       WeatherReadings
	scheduler     NotificationScheduler
	coordinator   RefreshCoordinator
	logger        ports.Logger
}

// UseCaseDependencies contains all dependencies for the subscription use case
type UseCaseDependencies struct {
	Transactions  ports.TransactionManager
	Locker        ports.KeyLocker
	Users         ports.UserRepository
	Cities        ports.CityRepository
	Subscriptions ports.SubscriptionRepository
	Weather       WeatherReadings
	Scheduler     NotificationScheduler
	Coordinator   RefreshCoordinator
	Logger        ports.Logger
}

// NewUseCase creates a new subscription use case
func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Transactions == nil {
		return nil, errors.NewValidationError("transaction manager is required")
	}
	if deps.Locker == nil {
		return nil, errors.NewValidationError("key locker is required")
	}
	if deps.Users == nil {
		return nil, errors.NewValidationError("user repository is required")
	}
	if deps.Cities == nil {
		return nil, errors.NewValidationError("city repository is required")
	}
	if deps.Subscriptions == nil {
		return nil, errors.NewValidationError("subscription repository is required")
	}
	if deps.Weather == nil {
		return nil, errors.NewValidationError("weather readings are required")
	}
	if deps.Scheduler == nil {
		return nil, errors.NewValidationError("scheduler is required")
	}
	if deps.Coordinator == nil {
		return nil, errors.NewValidationError("refresh coordinator is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &UseCase{
		tx:            deps.Transactions,
		locker:        deps.Locker,
		users:         deps.Users,
		cities:        deps.Cities,
		subscriptions: deps.Subscriptions,
		weather:       deps.Weather,
		scheduler:     deps.Scheduler,
		coordinator:   deps.Coordinator,
		logger:        deps.Logger,
	}, nil
}

func (uc *UseCase) validateSubscribeParams(params SubscribeParams) error {
	if !validation.IsNotEmpty(params.Email) {
		return errors.NewValidationError("email is required")
	}
	if !validation.IsValidEmail(params.Email) {
		return errors.NewValidationError("invalid email format")
	}
	if weather.NormalizeCityName(params.City) == "" {
		return errors.NewValidationError("city is required")
	}
	if !params.Provider.IsValid() {
		return errors.NewValidationError("invalid provider")
	}
	if !params.Period.IsValid() {
		return errors.NewValidationError("invalid period")
	}
	return nil
}

// Subscribe creates a subscription together with its first reading and jobs.
// Nothing persists when any step fails.
func (uc *UseCase) Subscribe(ctx context.Context, params SubscribeParams) (*Subscription, error) {
	if err := uc.validateSubscribeParams(params); err != nil {
		return nil, err
	}

	email := strings.TrimSpace(params.Email)
	cityName := weather.NormalizeCityName(params.City)
	provider := params.Provider.String()

	uc.logger.Debug("Processing subscription",
		ports.F("email", email),
		ports.F("city", cityName),
		ports.F("provider", provider),
		ports.F("period", params.Period.Hours()))

	unlock, err := uc.locker.Lock(ctx, lockKey(cityName, params.Provider))
	if err != nil {
		return nil, fmt.Errorf("lock %s/%s: %w", cityName, provider, err)
	}
	defer unlock()

	var created *ports.SubscriptionData
	err = uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		user, err := uc.users.FindOrCreateByEmail(ctx, email)
		if err != nil {
			return fmt.Errorf("resolve user: %w", err)
		}

		city, err := uc.cities.FindOrCreateByName(ctx, cityName)
		if err != nil {
			return fmt.Errorf("resolve city: %w", err)
		}

		_, err = uc.subscriptions.FindByKey(ctx, user.ID, city.ID, provider)
		if err == nil {
			return errors.NewAlreadyExistsError("already subscribed to " + cityName + " on " + provider)
		}
		if !errors.IsNotFoundError(err) {
			return fmt.Errorf("check existing subscription: %w", err)
		}

		sub := &ports.SubscriptionData{
			UserID:   user.ID,
			CityID:   city.ID,
			Provider: provider,
			Period:   params.Period.Hours(),
		}
		if err := uc.subscriptions.Create(ctx, sub); err != nil {
			return fmt.Errorf("create subscription: %w", err)
		}

		if err := uc.weather.EnsureReading(ctx, weather.City{ID: city.ID, Name: city.Name}, params.Provider); err != nil {
			return fmt.Errorf("ensure weather reading: %w", err)
		}

		if err := uc.scheduler.OnSubscriptionCreated(ctx, toRef(sub)); err != nil {
			return fmt.Errorf("schedule notification: %w", err)
		}

		if err := uc.coordinator.EnsureRefreshJob(ctx, city.ID, provider, sub.ID); err != nil {
			return fmt.Errorf("ensure refresh job: %w", err)
		}

		sub.Email = user.Email
		sub.CityName = city.Name
		created = sub
		return nil
	})
	if err != nil {
		uc.logger.Warn("Subscription rejected",
			ports.F("email", email),
			ports.F("city", cityName),
			ports.F("provider", provider),
			ports.F("error", err))
		return nil, err
	}

	uc.logger.Info("Subscription created",
		ports.F("subscriptionId", created.ID),
		ports.F("city", cityName),
		ports.F("provider", provider))
	return fromPortsSubscription(created), nil
}

// ChangePeriod updates the notification period and reschedules its job in place
func (uc *UseCase) ChangePeriod(ctx context.Context, params ChangePeriodParams) (*Subscription, error) {
	if !params.Period.IsValid() {
		return nil, errors.NewValidationError("invalid period")
	}

	current, err := uc.subscriptions.FindByID(ctx, params.SubscriptionID)
	if err != nil {
		return nil, fmt.Errorf("find subscription: %w", err)
	}
	if current.Period == params.Period.Hours() {
		return fromPortsSubscription(current), nil
	}

	unlock, err := uc.locker.Lock(ctx, lockKey(current.CityName, weather.ProviderFromString(current.Provider)))
	if err != nil {
		return nil, fmt.Errorf("lock subscription %d: %w", current.ID, err)
	}
	defer unlock()

	var updated *ports.SubscriptionData
	err = uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		sub, err := uc.subscriptions.FindByID(ctx, params.SubscriptionID)
		if err != nil {
			return fmt.Errorf("find subscription: %w", err)
		}

		if err := uc.subscriptions.UpdatePeriod(ctx, sub.ID, params.Period.Hours()); err != nil {
			return fmt.Errorf("update period: %w", err)
		}
		sub.Period = params.Period.Hours()

		if err := uc.scheduler.OnSubscriptionEdited(ctx, toRef(sub)); err != nil {
			return fmt.Errorf("reschedule notification: %w", err)
		}

		updated = sub
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Subscription period changed",
		ports.F("subscriptionId", updated.ID),
		ports.F("period", updated.Period))
	return fromPortsSubscription(updated), nil
}

// Unsubscribe removes one subscription and its notification job. When it was
// the pair's last subscription the refresh job and stored reading go too, and
// a city left without subscriptions is deleted.
func (uc *UseCase) Unsubscribe(ctx context.Context, params UnsubscribeParams) error {
	current, err := uc.subscriptions.FindByID(ctx, params.SubscriptionID)
	if err != nil {
		return fmt.Errorf("find subscription: %w", err)
	}

	// The city row may be removed, so every provider of the city is locked.
	unlock, err := uc.lockCity(ctx, current.CityName)
	if err != nil {
		return err
	}
	defer unlock()

	var cityRemoved bool
	err = uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		sub, err := uc.subscriptions.FindByID(ctx, params.SubscriptionID)
		if err != nil {
			return fmt.Errorf("find subscription: %w", err)
		}

		if err := uc.scheduler.OnSubscriptionDeleted(ctx, toRef(sub)); err != nil {
			return fmt.Errorf("unschedule notification: %w", err)
		}

		if err := uc.subscriptions.Delete(ctx, sub.ID); err != nil {
			return fmt.Errorf("delete subscription: %w", err)
		}

		if err := uc.coordinator.ReleaseRefreshJob(ctx, sub.CityID, sub.Provider); err != nil {
			return fmt.Errorf("release refresh job: %w", err)
		}

		cityRemoved, err = uc.dropUnreferenced(ctx, sub.CityID, weather.ProviderFromString(sub.Provider))
		return err
	})
	if err != nil {
		return err
	}

	uc.logger.Info("Subscription removed",
		ports.F("subscriptionId", current.ID),
		ports.F("city", current.CityName),
		ports.F("provider", current.Provider),
		ports.F("cityRemoved", cityRemoved))
	return nil
}

// dropUnreferenced forgets the pair's reading once no subscription uses it and
// deletes the city once no provider has subscriptions left. It reports whether
// the city was deleted.
func (uc *UseCase) dropUnreferenced(ctx context.Context, cityID uint, provider weather.Provider) (bool, error) {
	remaining, err := uc.subscriptions.CountByCityAndProvider(ctx, cityID, provider.String())
	if err != nil {
		return false, fmt.Errorf("count subscriptions: %w", err)
	}
	if remaining > 0 {
		return false, nil
	}

	if err := uc.weather.ForgetReading(ctx, cityID, provider); err != nil {
		return false, fmt.Errorf("forget reading: %w", err)
	}

	for _, p := range weather.Providers() {
		if p == provider {
			continue
		}
		n, err := uc.subscriptions.CountByCityAndProvider(ctx, cityID, p.String())
		if err != nil {
			return false, fmt.Errorf("count subscriptions: %w", err)
		}
		if n > 0 {
			return false, nil
		}
	}

	if err := uc.weather.ForgetCity(ctx, cityID); err != nil {
		return false, fmt.Errorf("forget readings: %w", err)
	}
	if err := uc.cities.Delete(ctx, cityID); err != nil {
		return false, fmt.Errorf("delete city: %w", err)
	}
	return true, nil
}

// UnsubscribeByKey removes the subscription identified by email, city and provider
func (uc *UseCase) UnsubscribeByKey(ctx context.Context, params UnsubscribeByKeyParams) error {
	if !params.Provider.IsValid() {
		return errors.NewValidationError("invalid provider")
	}

	user, err := uc.users.FindByEmail(ctx, strings.TrimSpace(params.Email))
	if err != nil {
		return fmt.Errorf("find user: %w", err)
	}

	city, err := uc.cities.FindByName(ctx, weather.NormalizeCityName(params.City))
	if err != nil {
		return fmt.Errorf("find city: %w", err)
	}

	sub, err := uc.subscriptions.FindByKey(ctx, user.ID, city.ID, params.Provider.String())
	if err != nil {
		return fmt.Errorf("find subscription: %w", err)
	}

	return uc.Unsubscribe(ctx, UnsubscribeParams{SubscriptionID: sub.ID})
}

// DeleteCity removes a city with every subscription, reading and job that references it
func (uc *UseCase) DeleteCity(ctx context.Context, params DeleteCityParams) error {
	city, err := uc.cities.FindByID(ctx, params.CityID)
	if err != nil {
		return fmt.Errorf("find city: %w", err)
	}

	unlock, err := uc.lockCity(ctx, city.Name)
	if err != nil {
		return err
	}
	defer unlock()

	var removed int64
	err = uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		subs, err := uc.subscriptions.ListByCity(ctx, city.ID)
		if err != nil {
			return fmt.Errorf("list subscriptions: %w", err)
		}

		for _, sub := range subs {
			if err := uc.scheduler.OnSubscriptionDeleted(ctx, toRef(sub)); err != nil {
				return fmt.Errorf("unschedule notification: %w", err)
			}
		}

		for _, p := range weather.Providers() {
			if err := uc.coordinator.ReleaseRefreshJobUnconditional(ctx, city.ID, p.String()); err != nil {
				return fmt.Errorf("release refresh job: %w", err)
			}
		}

		if removed, err = uc.subscriptions.DeleteByCity(ctx, city.ID); err != nil {
			return fmt.Errorf("delete subscriptions: %w", err)
		}

		if err := uc.weather.ForgetCity(ctx, city.ID); err != nil {
			return fmt.Errorf("forget readings: %w", err)
		}

		if err := uc.cities.Delete(ctx, city.ID); err != nil {
			return fmt.Errorf("delete city: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	uc.logger.Info("City removed",
		ports.F("cityId", city.ID),
		ports.F("city", city.Name),
		ports.F("subscriptions", removed))
	return nil
}

// GetSubscription returns one subscription by id
func (uc *UseCase) GetSubscription(ctx context.Context, id uint) (*Subscription, error) {
	sub, err := uc.subscriptions.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find subscription: %w", err)
	}
	return fromPortsSubscription(sub), nil
}

// ListSubscriptions returns every subscription owned by an email address
func (uc *UseCase) ListSubscriptions(ctx context.Context, email string) ([]*Subscription, error) {
	if !validation.IsValidEmail(email) {
		return nil, errors.NewValidationError("invalid email format")
	}

	user, err := uc.users.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.IsNotFoundError(err) {
			return []*Subscription{}, nil
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	subs, err := uc.subscriptions.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}

	out := make([]*Subscription, 0, len(subs))
	for _, s := range subs {
		out = append(out, fromPortsSubscription(s))
	}
	return out, nil
}

// lockCity takes the locks of every provider of a city in a fixed order
func (uc *UseCase) lockCity(ctx context.Context, cityName string) (func(), error) {
	var unlocks []func()
	release := func() {
		for i := len(unlocks) - 1; i >= 0; i-- {
			unlocks[i]()
		}
	}

	for _, p := range weather.Providers() {
		unlock, err := uc.locker.Lock(ctx, lockKey(cityName, p))
		if err != nil {
			release()
			return nil, fmt.Errorf("lock %s/%s: %w", cityName, p, err)
		}
		unlocks = append(unlocks, unlock)
	}
	return release, nil
}

func lockKey(cityName string, provider weather.Provider) string {
	return fmt.Sprintf("lock:city:%s:%s", strings.ToLower(cityName), provider)
}

func toRef(s *ports.SubscriptionData) scheduling.SubscriptionRef {
	return scheduling.SubscriptionRef{
		ID:          s.ID,
		UserID:      s.UserID,
		CityID:      s.CityID,
		Provider:    s.Provider,
		PeriodHours: s.Period,
	}
}

func fromPortsSubscription(s *ports.SubscriptionData) *Subscription {
	return &Subscription{
		ID:        s.ID,
		UserID:    s.UserID,
		CityID:    s.CityID,
		Email:     s.Email,
		City:      s.CityName,
		Provider:  weather.ProviderFromString(s.Provider),
		Period:    Period(s.Period),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
