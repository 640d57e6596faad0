package database_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherreminder.app/internal/adapters/database"
	"weatherreminder.app/internal/adapters/database/databasetest"
	"weatherreminder.app/pkg/errors"
)

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := databasetest.NewSQLite(t)
	tx := database.NewTransactionManagerAdapter(db)
	cities := database.NewCityRepositoryAdapter(db)
	ctx := context.Background()

	err := tx.WithinTransaction(ctx, func(ctx context.Context) error {
		_, err := cities.FindOrCreateByName(ctx, "Paris")
		require.NoError(t, err)
		return errors.NewRateLimitedError("provider throttled", nil)
	})
	assert.True(t, errors.IsRateLimitedError(err))

	_, err = cities.FindByName(ctx, "Paris")
	assert.True(t, errors.IsNotFoundError(err))
}

func TestTransactionManager_Commits(t *testing.T) {
	db := databasetest.NewSQLite(t)
	tx := database.NewTransactionManagerAdapter(db)
	cities := database.NewCityRepositoryAdapter(db)
	ctx := context.Background()

	err := tx.WithinTransaction(ctx, func(ctx context.Context) error {
		_, err := cities.FindOrCreateByName(ctx, "Paris")
		return err
	})
	require.NoError(t, err)

	city, err := cities.FindByName(ctx, "Paris")
	require.NoError(t, err)
	assert.Equal(t, "Paris", city.Name)
}

func TestTransactionManager_NestedJoinsOuter(t *testing.T) {
	db := databasetest.NewSQLite(t)
	tx := database.NewTransactionManagerAdapter(db)
	cities := database.NewCityRepositoryAdapter(db)
	ctx := context.Background()

	err := tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := tx.WithinTransaction(ctx, func(ctx context.Context) error {
			_, err := cities.FindOrCreateByName(ctx, "Lviv")
			return err
		}); err != nil {
			return err
		}
		return fmt.Errorf("outer failure")
	})
	require.Error(t, err)

	_, err = cities.FindByName(ctx, "Lviv")
	assert.True(t, errors.IsNotFoundError(err))
}
