package scheduling

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherreminder.app/internal/mocks"
	"weatherreminder.app/internal/ports"
	"weatherreminder.app/pkg/errors"
)

func newTestScheduler(t *testing.T, store ports.JobStore) *SubscriptionScheduler {
	t.Helper()
	s, err := NewSubscriptionScheduler(SchedulerDependencies{
		JobStore: store,
		Logger:   mocks.NewPermissiveLogger(t),
		Metrics:  mocks.NewPermissiveMetricsRecorder(t),
		Timezone: "UTC",
	})
	require.NoError(t, err)
	return s
}

func TestNewSubscriptionScheduler_Validation(t *testing.T) {
	tests := []struct {
		name   string
		deps   SchedulerDependencies
		errMsg string
	}{
		{"missing_job_store", SchedulerDependencies{Logger: mocks.NewLogger(t), Metrics: mocks.NewMetricsRecorder(t)}, "job store is required"},
		{"missing_logger", SchedulerDependencies{JobStore: mocks.NewJobStore(t), Metrics: mocks.NewMetricsRecorder(t)}, "logger is required"},
		{"missing_metrics", SchedulerDependencies{JobStore: mocks.NewJobStore(t), Logger: mocks.NewLogger(t)}, "metrics is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSubscriptionScheduler(tt.deps)
			assert.Nil(t, s)
			assert.ErrorContains(t, err, tt.errMsg)
		})
	}
}

func TestSubscriptionScheduler_OnSubscriptionCreated_InsertsJob(t *testing.T) {
	store := mocks.NewJobStore(t)
	sub := SubscriptionRef{ID: 11, UserID: 2, CityID: 5, Provider: "OpenWeatherMap", PeriodHours: 3}
	key := NotificationKey(2, 5, "OpenWeatherMap").toData()

	store.EXPECT().FindByKey(mock.Anything, key).Return(nil, errors.NewNotFoundError("job not found"))
	store.EXPECT().Upsert(mock.Anything, mock.MatchedBy(func(job *ports.JobData) bool {
		return job.Key == key &&
			job.Action == ActionSendEmail &&
			assert.ObjectsAreEqual([]uint{11}, job.Args) &&
			job.Minute == "0" && job.Hour == "*/3" &&
			job.Timezone == "UTC" && job.Enabled
	})).Return(nil)

	err := newTestScheduler(t, store).OnSubscriptionCreated(context.Background(), sub)
	assert.NoError(t, err)
}

func TestSubscriptionScheduler_OnSubscriptionCreated_ExistingJobIsNoop(t *testing.T) {
	store := mocks.NewJobStore(t)
	sub := SubscriptionRef{ID: 11, UserID: 2, CityID: 5, Provider: "OpenWeatherMap", PeriodHours: 1}

	store.EXPECT().FindByKey(mock.Anything, sub.key().toData()).Return(&ports.JobData{ID: 1}, nil)

	err := newTestScheduler(t, store).OnSubscriptionCreated(context.Background(), sub)
	assert.NoError(t, err)
	store.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestSubscriptionScheduler_OnSubscriptionCreated_InvalidPeriod(t *testing.T) {
	store := mocks.NewJobStore(t)
	sub := SubscriptionRef{ID: 1, UserID: 1, CityID: 1, Provider: "WeatherBit", PeriodHours: 4}

	err := newTestScheduler(t, store).OnSubscriptionCreated(context.Background(), sub)
	assert.True(t, errors.IsValidationError(err))
}

func TestSubscriptionScheduler_OnSubscriptionCreated_StoreFailure(t *testing.T) {
	store := mocks.NewJobStore(t)
	sub := SubscriptionRef{ID: 1, UserID: 1, CityID: 1, Provider: "WeatherBit", PeriodHours: 6}

	store.EXPECT().FindByKey(mock.Anything, mock.Anything).
		Return(nil, errors.NewDatabaseError("query failed", fmt.Errorf("connection reset")))

	err := newTestScheduler(t, store).OnSubscriptionCreated(context.Background(), sub)
	assert.True(t, errors.IsDatabaseError(err))
}

func TestSubscriptionScheduler_OnSubscriptionEdited_MissingJobIsNoop(t *testing.T) {
	store := mocks.NewJobStore(t)
	sub := SubscriptionRef{ID: 3, UserID: 1, CityID: 9, Provider: "WeatherBit", PeriodHours: 12}

	store.EXPECT().FindByKey(mock.Anything, sub.key().toData()).Return(nil, errors.NewNotFoundError("job not found"))

	err := newTestScheduler(t, store).OnSubscriptionEdited(context.Background(), sub)
	assert.NoError(t, err)
}

func TestSubscriptionScheduler_OnSubscriptionDeleted_MissingJobIsNoop(t *testing.T) {
	store := mocks.NewJobStore(t)
	sub := SubscriptionRef{ID: 3, UserID: 1, CityID: 9, Provider: "WeatherBit", PeriodHours: 12}

	store.EXPECT().Delete(mock.Anything, sub.key().toData()).Return(false, nil)

	err := newTestScheduler(t, store).OnSubscriptionDeleted(context.Background(), sub)
	assert.NoError(t, err)
}

func TestSubscriptionScheduler_EditReplacesCadenceInPlace(t *testing.T) {
	store := newMemoryJobStore()
	s := newTestScheduler(t, store)
	ctx := context.Background()
	sub := SubscriptionRef{ID: 4, UserID: 1, CityID: 2, Provider: "OpenWeatherMap", PeriodHours: 1}

	require.NoError(t, s.OnSubscriptionCreated(ctx, sub))
	before, err := store.FindByKey(ctx, sub.key().toData())
	require.NoError(t, err)
	assert.Equal(t, "*", before.Hour)

	sub.PeriodHours = 12
	require.NoError(t, s.OnSubscriptionEdited(ctx, sub))

	after, err := store.FindByKey(ctx, sub.key().toData())
	require.NoError(t, err)
	assert.Equal(t, before.ID, after.ID)
	assert.Equal(t, before.Args, after.Args)
	assert.Equal(t, before.Action, after.Action)
	assert.Equal(t, "*/12", after.Hour)

	count, err := store.CountByKind(ctx, string(JobKindNotification))
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestSubscriptionScheduler_Idempotence(t *testing.T) {
	ctx := context.Background()
	sub := SubscriptionRef{ID: 8, UserID: 3, CityID: 4, Provider: "WeatherBit", PeriodHours: 6}

	ops := map[string]func(*SubscriptionScheduler) error{
		"created": func(s *SubscriptionScheduler) error { return s.OnSubscriptionCreated(ctx, sub) },
		"edited": func(s *SubscriptionScheduler) error {
			edited := sub
			edited.PeriodHours = 3
			return s.OnSubscriptionEdited(ctx, edited)
		},
		"deleted": func(s *SubscriptionScheduler) error { return s.OnSubscriptionDeleted(ctx, sub) },
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			once := newMemoryJobStore()
			twice := newMemoryJobStore()
			sOnce := newTestScheduler(t, once)
			sTwice := newTestScheduler(t, twice)

			// Both stores start with the job present so edit and delete have something to act on.
			require.NoError(t, sOnce.OnSubscriptionCreated(ctx, sub))
			require.NoError(t, sTwice.OnSubscriptionCreated(ctx, sub))

			require.NoError(t, op(sOnce))
			require.NoError(t, op(sTwice))
			require.NoError(t, op(sTwice))

			assert.Equal(t, once.snapshot(), twice.snapshot())
		})
	}
}

func TestSubscriptionScheduler_ListJobs(t *testing.T) {
	store := mocks.NewJobStore(t)
	jobs := []*ports.JobData{{ID: 1, Action: ActionSendEmail}}
	store.EXPECT().ListEnabled(mock.Anything).Return(jobs, nil)

	got, err := newTestScheduler(t, store).ListJobs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, jobs, got)
}
