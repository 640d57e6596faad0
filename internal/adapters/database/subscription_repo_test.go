package database_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"weatherreminder.app/internal/adapters/database"
	"weatherreminder.app/internal/adapters/database/databasetest"
	"weatherreminder.app/internal/ports"
	"weatherreminder.app/pkg/errors"
)

type fixture struct {
	db    *gorm.DB
	users ports.UserRepository
	city  ports.CityRepository
	subs  ports.SubscriptionRepository
}

func newFixture(t *testing.T) fixture {
	db := databasetest.NewSQLite(t)
	return fixture{
		db:    db,
		users: database.NewUserRepositoryAdapter(db),
		city:  database.NewCityRepositoryAdapter(db),
		subs:  database.NewSubscriptionRepositoryAdapter(db),
	}
}

func (f fixture) subscribe(t *testing.T, email, city, provider string, period int) *ports.SubscriptionData {
	t.Helper()
	ctx := context.Background()

	user, err := f.users.FindOrCreateByEmail(ctx, email)
	require.NoError(t, err)
	c, err := f.city.FindOrCreateByName(ctx, city)
	require.NoError(t, err)

	sub := &ports.SubscriptionData{UserID: user.ID, CityID: c.ID, Provider: provider, Period: period}
	require.NoError(t, f.subs.Create(ctx, sub))
	return sub
}

func TestUserRepository_FindOrCreateByEmail_IsStable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.users.FindOrCreateByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	second, err := f.users.FindOrCreateByEmail(ctx, "a@example.com")
	require.NoError(t, err)

	assert.NotZero(t, first.ID)
	assert.Equal(t, first.ID, second.ID)

	_, err = f.users.FindByEmail(ctx, "missing@example.com")
	assert.True(t, errors.IsNotFoundError(err))
}

func TestCityRepository_FindOrCreateByName(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	paris, err := f.city.FindOrCreateByName(ctx, "Paris")
	require.NoError(t, err)
	again, err := f.city.FindOrCreateByName(ctx, "Paris")
	require.NoError(t, err)
	assert.Equal(t, paris.ID, again.ID)

	_, err = f.city.FindOrCreateByName(ctx, "Berlin")
	require.NoError(t, err)

	cities, err := f.city.List(ctx)
	require.NoError(t, err)
	require.Len(t, cities, 2)
	assert.Equal(t, "Berlin", cities[0].Name)

	require.NoError(t, f.city.Delete(ctx, paris.ID))
	_, err = f.city.FindByID(ctx, paris.ID)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestCityRepository_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.city.FindOrCreateByName(ctx, "")
	assert.True(t, errors.IsValidationError(err))
	_, err = f.city.FindByID(ctx, 0)
	assert.True(t, errors.IsValidationError(err))
}

func TestSubscriptionRepository_Create_PopulatesRelations(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sub := f.subscribe(t, "a@example.com", "Paris", "OpenWeatherMap", 3)
	assert.NotZero(t, sub.ID)

	found, err := f.subs.FindByID(ctx, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", found.Email)
	assert.Equal(t, "Paris", found.CityName)
	assert.Equal(t, 3, found.Period)
	assert.Equal(t, "OpenWeatherMap", found.Provider)
}

func TestSubscriptionRepository_Create_Duplicate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sub := f.subscribe(t, "a@example.com", "Paris", "OpenWeatherMap", 3)
	dup := &ports.SubscriptionData{UserID: sub.UserID, CityID: sub.CityID, Provider: sub.Provider, Period: 6}

	err := f.subs.Create(ctx, dup)
	assert.True(t, errors.IsAlreadyExistsError(err))
}

func TestSubscriptionRepository_FindByKey(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sub := f.subscribe(t, "a@example.com", "Paris", "WeatherBit", 1)

	found, err := f.subs.FindByKey(ctx, sub.UserID, sub.CityID, "WeatherBit")
	require.NoError(t, err)
	assert.Equal(t, sub.ID, found.ID)

	_, err = f.subs.FindByKey(ctx, sub.UserID, sub.CityID, "OpenWeatherMap")
	assert.True(t, errors.IsNotFoundError(err))
}

func TestSubscriptionRepository_CountAndFindAny(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a := f.subscribe(t, "a@example.com", "Paris", "WeatherBit", 1)
	f.subscribe(t, "b@example.com", "Paris", "WeatherBit", 6)
	f.subscribe(t, "b@example.com", "Paris", "OpenWeatherMap", 6)

	count, err := f.subs.CountByCityAndProvider(ctx, a.CityID, "WeatherBit")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	anySub, err := f.subs.FindAnyByCityAndProvider(ctx, a.CityID, "WeatherBit")
	require.NoError(t, err)
	assert.Equal(t, a.ID, anySub.ID)

	require.NoError(t, f.subs.Delete(ctx, a.ID))
	count, err = f.subs.CountByCityAndProvider(ctx, a.CityID, "WeatherBit")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestSubscriptionRepository_ListAndDeleteByCity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a := f.subscribe(t, "a@example.com", "Paris", "WeatherBit", 1)
	f.subscribe(t, "a@example.com", "Paris", "OpenWeatherMap", 3)
	f.subscribe(t, "a@example.com", "Rome", "OpenWeatherMap", 3)

	byUser, err := f.subs.ListByUser(ctx, a.UserID)
	require.NoError(t, err)
	assert.Len(t, byUser, 3)

	byCity, err := f.subs.ListByCity(ctx, a.CityID)
	require.NoError(t, err)
	assert.Len(t, byCity, 2)

	removed, err := f.subs.DeleteByCity(ctx, a.CityID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	byUser, err = f.subs.ListByUser(ctx, a.UserID)
	require.NoError(t, err)
	require.Len(t, byUser, 1)
	assert.Equal(t, "Rome", byUser[0].CityName)
}

func TestSubscriptionRepository_UpdatePeriod(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sub := f.subscribe(t, "a@example.com", "Paris", "WeatherBit", 1)
	require.NoError(t, f.subs.UpdatePeriod(ctx, sub.ID, 12))

	found, err := f.subs.FindByID(ctx, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, 12, found.Period)

	err = f.subs.UpdatePeriod(ctx, sub.ID+100, 3)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestSubscriptionRepository_FindByID_Validation(t *testing.T) {
	f := newFixture(t)

	_, err := f.subs.FindByID(context.Background(), 0)
	assert.True(t, errors.IsValidationError(err))

	_, err = f.subs.FindByID(context.Background(), 42)
	assert.True(t, errors.IsNotFoundError(err))
}
