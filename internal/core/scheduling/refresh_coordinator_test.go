package scheduling

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherreminder.app/internal/mocks"
	"weatherreminder.app/internal/ports"
	"weatherreminder.app/pkg/errors"
)

func newTestCoordinator(t *testing.T, store ports.JobStore, subs ports.SubscriptionRepository) *RefreshCoordinator {
	t.Helper()
	c, err := NewRefreshCoordinator(CoordinatorDependencies{
		JobStore:      store,
		Subscriptions: subs,
		Logger:        mocks.NewPermissiveLogger(t),
		Metrics:       mocks.NewPermissiveMetricsRecorder(t),
		Timezone:      "UTC",
	})
	require.NoError(t, err)
	return c
}

func TestNewRefreshCoordinator_Validation(t *testing.T) {
	c, err := NewRefreshCoordinator(CoordinatorDependencies{
		JobStore: mocks.NewJobStore(t),
		Logger:   mocks.NewLogger(t),
		Metrics:  mocks.NewMetricsRecorder(t),
	})
	assert.Nil(t, c)
	assert.ErrorContains(t, err, "subscription repository is required")
}

func TestRefreshCoordinator_EnsureRefreshJob_CreatesOnce(t *testing.T) {
	store := newMemoryJobStore()
	c := newTestCoordinator(t, store, mocks.NewSubscriptionRepository(t))
	ctx := context.Background()

	require.NoError(t, c.EnsureRefreshJob(ctx, 5, "WeatherBit", 10))
	require.NoError(t, c.EnsureRefreshJob(ctx, 5, "WeatherBit", 11))

	job, err := store.FindByKey(ctx, RefreshKey(5, "WeatherBit").toData())
	require.NoError(t, err)
	assert.Equal(t, ActionRefreshWeather, job.Action)
	assert.Equal(t, []uint{10}, job.Args)
	assert.Equal(t, "0 * * * *", CadenceOf(job).Spec())
	assert.Zero(t, job.Key.UserID)

	count, err := store.CountByKind(ctx, string(JobKindRefresh))
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestRefreshCoordinator_ReleaseRefreshJob_KeepsWhileReferenced(t *testing.T) {
	store := newMemoryJobStore()
	subs := mocks.NewSubscriptionRepository(t)
	c := newTestCoordinator(t, store, subs)
	ctx := context.Background()

	require.NoError(t, c.EnsureRefreshJob(ctx, 5, "OpenWeatherMap", 10))

	subs.EXPECT().CountByCityAndProvider(mock.Anything, uint(5), "OpenWeatherMap").Return(int64(1), nil)
	subs.EXPECT().FindByID(mock.Anything, uint(10)).
		Return(&ports.SubscriptionData{ID: 10, CityID: 5, Provider: "OpenWeatherMap"}, nil)

	require.NoError(t, c.ReleaseRefreshJob(ctx, 5, "OpenWeatherMap"))

	_, err := store.FindByKey(ctx, RefreshKey(5, "OpenWeatherMap").toData())
	assert.NoError(t, err)
}

func TestRefreshCoordinator_ReleaseRefreshJob_RebindsDeletedRepresentative(t *testing.T) {
	store := newMemoryJobStore()
	subs := mocks.NewSubscriptionRepository(t)
	c := newTestCoordinator(t, store, subs)
	ctx := context.Background()

	require.NoError(t, c.EnsureRefreshJob(ctx, 5, "OpenWeatherMap", 10))

	subs.EXPECT().CountByCityAndProvider(mock.Anything, uint(5), "OpenWeatherMap").Return(int64(1), nil)
	subs.EXPECT().FindByID(mock.Anything, uint(10)).Return(nil, errors.NewNotFoundError("subscription not found"))
	subs.EXPECT().FindAnyByCityAndProvider(mock.Anything, uint(5), "OpenWeatherMap").
		Return(&ports.SubscriptionData{ID: 12, CityID: 5, Provider: "OpenWeatherMap"}, nil)

	require.NoError(t, c.ReleaseRefreshJob(ctx, 5, "OpenWeatherMap"))

	job, err := store.FindByKey(ctx, RefreshKey(5, "OpenWeatherMap").toData())
	require.NoError(t, err)
	assert.Equal(t, []uint{12}, job.Args)
}

func TestRefreshCoordinator_ReleaseRefreshJob_DeletesAtZero(t *testing.T) {
	store := newMemoryJobStore()
	subs := mocks.NewSubscriptionRepository(t)
	c := newTestCoordinator(t, store, subs)
	ctx := context.Background()

	require.NoError(t, c.EnsureRefreshJob(ctx, 5, "OpenWeatherMap", 10))

	subs.EXPECT().CountByCityAndProvider(mock.Anything, uint(5), "OpenWeatherMap").Return(int64(0), nil).Twice()

	require.NoError(t, c.ReleaseRefreshJob(ctx, 5, "OpenWeatherMap"))
	require.NoError(t, c.ReleaseRefreshJob(ctx, 5, "OpenWeatherMap"))

	_, err := store.FindByKey(ctx, RefreshKey(5, "OpenWeatherMap").toData())
	assert.True(t, errors.IsNotFoundError(err))
}

func TestRefreshCoordinator_ReleaseRefreshJob_CountFailure(t *testing.T) {
	store := mocks.NewJobStore(t)
	subs := mocks.NewSubscriptionRepository(t)
	c := newTestCoordinator(t, store, subs)

	subs.EXPECT().CountByCityAndProvider(mock.Anything, uint(1), "WeatherBit").
		Return(int64(0), errors.NewDatabaseError("count failed", nil))

	err := c.ReleaseRefreshJob(context.Background(), 1, "WeatherBit")
	assert.True(t, errors.IsDatabaseError(err))
	store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestRefreshCoordinator_ReleaseRefreshJobUnconditional(t *testing.T) {
	store := mocks.NewJobStore(t)
	subs := mocks.NewSubscriptionRepository(t)
	c := newTestCoordinator(t, store, subs)
	key := RefreshKey(7, "WeatherBit").toData()

	store.EXPECT().Delete(mock.Anything, key).Return(true, nil).Once()
	store.EXPECT().Delete(mock.Anything, key).Return(false, nil).Once()

	assert.NoError(t, c.ReleaseRefreshJobUnconditional(context.Background(), 7, "WeatherBit"))
	assert.NoError(t, c.ReleaseRefreshJobUnconditional(context.Background(), 7, "WeatherBit"))
	subs.AssertNotCalled(t, "CountByCityAndProvider", mock.Anything, mock.Anything, mock.Anything)
}
