package database_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherreminder.app/internal/adapters/database"
	"weatherreminder.app/internal/adapters/database/databasetest"
	"weatherreminder.app/internal/ports"
	"weatherreminder.app/pkg/errors"
)

func TestWeatherReadingRepository_UpsertOverwritesInPlace(t *testing.T) {
	db := databasetest.NewSQLite(t)
	repo := database.NewWeatherReadingRepositoryAdapter(db)
	ctx := context.Background()

	first := &ports.WeatherReadingData{
		CityID: 1, Provider: "WeatherBit", ReportedCity: "Paris", CountryCode: "FR",
		Temperature: 10, Humidity: 80, UpdatedAt: time.Now().Add(-time.Hour).UTC(),
	}
	require.NoError(t, repo.Upsert(ctx, first))

	second := &ports.WeatherReadingData{
		CityID: 1, Provider: "WeatherBit", ReportedCity: "Paris", CountryCode: "FR",
		Temperature: 14, Humidity: 60, UpdatedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.Upsert(ctx, second))

	found, err := repo.FindByCityAndProvider(ctx, 1, "WeatherBit")
	require.NoError(t, err)
	assert.Equal(t, 14.0, found.Temperature)
	assert.Equal(t, 60.0, found.Humidity)

	var count int64
	require.NoError(t, db.Model(&database.WeatherReadingModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestWeatherReadingRepository_DeleteByCity(t *testing.T) {
	db := databasetest.NewSQLite(t)
	repo := database.NewWeatherReadingRepositoryAdapter(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &ports.WeatherReadingData{CityID: 1, Provider: "WeatherBit"}))
	require.NoError(t, repo.Upsert(ctx, &ports.WeatherReadingData{CityID: 1, Provider: "OpenWeatherMap"}))
	require.NoError(t, repo.Upsert(ctx, &ports.WeatherReadingData{CityID: 2, Provider: "WeatherBit"}))

	require.NoError(t, repo.DeleteByCity(ctx, 1))

	_, err := repo.FindByCityAndProvider(ctx, 1, "OpenWeatherMap")
	assert.True(t, errors.IsNotFoundError(err))
	_, err = repo.FindByCityAndProvider(ctx, 2, "WeatherBit")
	assert.NoError(t, err)
}

func TestWeatherReadingRepository_DeleteByCityAndProvider(t *testing.T) {
	db := databasetest.NewSQLite(t)
	repo := database.NewWeatherReadingRepositoryAdapter(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &ports.WeatherReadingData{CityID: 1, Provider: "WeatherBit"}))
	require.NoError(t, repo.Upsert(ctx, &ports.WeatherReadingData{CityID: 1, Provider: "OpenWeatherMap"}))

	require.NoError(t, repo.DeleteByCityAndProvider(ctx, 1, "WeatherBit"))
	require.NoError(t, repo.DeleteByCityAndProvider(ctx, 1, "WeatherBit"), "missing row is not an error")

	_, err := repo.FindByCityAndProvider(ctx, 1, "WeatherBit")
	assert.True(t, errors.IsNotFoundError(err))
	_, err = repo.FindByCityAndProvider(ctx, 1, "OpenWeatherMap")
	assert.NoError(t, err)
}
