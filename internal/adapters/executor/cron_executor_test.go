package executor

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherreminder.app/internal/core/scheduling"
	"weatherreminder.app/internal/mocks"
	"weatherreminder.app/internal/ports"
	"weatherreminder.app/pkg/errors"
)

// stubJobStore serves a mutable job list to Resync
type stubJobStore struct {
	*mocks.JobStore
	mu   sync.Mutex
	jobs []*ports.JobData
}

func newStubJobStore(t *testing.T) *stubJobStore {
	s := &stubJobStore{JobStore: mocks.NewJobStore(t)}
	s.EXPECT().ListEnabled(mock.Anything).RunAndReturn(func(context.Context) ([]*ports.JobData, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		out := make([]*ports.JobData, len(s.jobs))
		copy(out, s.jobs)
		return out, nil
	}).Maybe()
	return s
}

func (s *stubJobStore) set(jobs ...*ports.JobData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs = jobs
}

func notificationJob(subID, userID, cityID uint, hour string) *ports.JobData {
	return &ports.JobData{
		Key: ports.JobKeyData{
			Kind:     string(scheduling.JobKindNotification),
			UserID:   userID,
			CityID:   cityID,
			Provider: "openweathermap",
		},
		Action:      scheduling.ActionSendEmail,
		Args:        []uint{subID},
		Minute:      "0",
		Hour:        hour,
		DayOfWeek:   "*",
		DayOfMonth:  "*",
		MonthOfYear: "*",
		Timezone:    "Europe/Kyiv",
		Enabled:     true,
	}
}

func newTestExecutor(t *testing.T, store ports.JobStore, metrics ports.MetricsRecorder) *CronExecutor {
	t.Helper()
	if metrics == nil {
		metrics = mocks.NewPermissiveMetricsRecorder(t)
	}
	e, err := NewCronExecutor(Config{
		JobStore:   store,
		Logger:     mocks.NewPermissiveLogger(t),
		Metrics:    metrics,
		RunTimeout: time.Second,
	})
	require.NoError(t, err)
	return e
}

func TestNewCronExecutor_Validation(t *testing.T) {
	logger := mocks.NewPermissiveLogger(t)
	metrics := mocks.NewPermissiveMetricsRecorder(t)

	_, err := NewCronExecutor(Config{Logger: logger, Metrics: metrics})
	assert.True(t, errors.IsValidationError(err))

	_, err = NewCronExecutor(Config{JobStore: mocks.NewJobStore(t), Metrics: metrics})
	assert.True(t, errors.IsValidationError(err))

	_, err = NewCronExecutor(Config{JobStore: mocks.NewJobStore(t), Logger: logger})
	assert.True(t, errors.IsValidationError(err))

	e, err := NewCronExecutor(Config{JobStore: mocks.NewJobStore(t), Logger: logger, Metrics: metrics})
	require.NoError(t, err)
	assert.Equal(t, defaultResyncInterval, e.resync)
	assert.Equal(t, defaultRunTimeout, e.runTimeout)
}

func TestCronExecutor_ResyncIsStable(t *testing.T) {
	store := newStubJobStore(t)
	job := notificationJob(1, 1, 1, "*/3")
	store.set(job)

	e := newTestExecutor(t, store, nil)
	require.NoError(t, e.Resync(context.Background()))

	first, ok := e.entryID(job.Key)
	require.True(t, ok)

	require.NoError(t, e.Resync(context.Background()))
	second, ok := e.entryID(job.Key)
	require.True(t, ok)

	assert.Equal(t, first, second)
	assert.Len(t, e.cron.Entries(), 1)
}

func TestCronExecutor_ResyncReplacesChangedCadence(t *testing.T) {
	store := newStubJobStore(t)
	store.set(notificationJob(1, 1, 1, "*"))

	e := newTestExecutor(t, store, nil)
	require.NoError(t, e.Resync(context.Background()))
	key := notificationJob(1, 1, 1, "*").Key
	before, _ := e.entryID(key)

	store.set(notificationJob(1, 1, 1, "*/12"))
	require.NoError(t, e.Resync(context.Background()))
	after, ok := e.entryID(key)

	require.True(t, ok)
	assert.NotEqual(t, before, after)
	assert.Len(t, e.cron.Entries(), 1)
}

func TestCronExecutor_ResyncRemovesVanishedJobs(t *testing.T) {
	store := newStubJobStore(t)
	a := notificationJob(1, 1, 1, "*")
	b := notificationJob(2, 2, 1, "*/6")
	store.set(a, b)

	e := newTestExecutor(t, store, nil)
	require.NoError(t, e.Resync(context.Background()))
	assert.Len(t, e.Entries(), 2)

	store.set(b)
	require.NoError(t, e.Resync(context.Background()))

	_, ok := e.entryID(a.Key)
	assert.False(t, ok)
	assert.Len(t, e.cron.Entries(), 1)
}

func TestCronExecutor_ResyncSkipsInvalidCadence(t *testing.T) {
	store := newStubJobStore(t)
	bad := notificationJob(1, 1, 1, "*")
	bad.Timezone = "Mars/Olympus"
	store.set(bad)

	e := newTestExecutor(t, store, nil)
	require.NoError(t, e.Resync(context.Background()))
	assert.Empty(t, e.Entries())
}

func TestCronExecutor_ResyncStoreFailure(t *testing.T) {
	store := mocks.NewJobStore(t)
	store.EXPECT().ListEnabled(mock.Anything).Return(nil, errors.NewDatabaseError("down", nil))

	e := newTestExecutor(t, store, nil)
	err := e.Resync(context.Background())
	assert.True(t, errors.IsDatabaseError(err))
}

func TestCronExecutor_DispatchPassesArgs(t *testing.T) {
	store := newStubJobStore(t)
	job := notificationJob(42, 1, 1, "*")
	store.set(job)

	e := newTestExecutor(t, store, nil)

	var got uint
	e.Register(scheduling.ActionSendEmail, SubscriptionHandler(func(_ context.Context, id uint) error {
		got = id
		return nil
	}))
	require.NoError(t, e.Resync(context.Background()))

	id, _ := e.entryID(job.Key)
	e.cron.Entry(id).WrappedJob.Run()

	assert.Equal(t, uint(42), got)
}

func TestCronExecutor_ExecuteRecordsOutcome(t *testing.T) {
	tests := []struct {
		name    string
		handler Handler
		status  string
	}{
		{"Success", func(context.Context, []uint) error { return nil }, "success"},
		{"Failure", func(context.Context, []uint) error { return errors.NewEmailError("smtp down", nil) }, "failure"},
		{"Panic", func(context.Context, []uint) error { panic("boom") }, "panic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metrics := mocks.NewMetricsRecorder(t)
			metrics.EXPECT().RecordJobExecution(scheduling.ActionRefreshWeather, tt.status, mock.Anything).Once()

			e := newTestExecutor(t, mocks.NewJobStore(t), metrics)
			e.Register(scheduling.ActionRefreshWeather, tt.handler)

			err := e.execute(context.Background(), scheduling.RefreshKey(1, "weatherbit"), scheduling.ActionRefreshWeather, []uint{1})
			if tt.status == "success" {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestCronExecutor_ExecuteUnknownAction(t *testing.T) {
	metrics := mocks.NewMetricsRecorder(t)
	metrics.EXPECT().RecordJobExecution("unknown_task", "unknown_action", mock.Anything).Once()

	e := newTestExecutor(t, mocks.NewJobStore(t), metrics)
	err := e.execute(context.Background(), scheduling.RefreshKey(1, "weatherbit"), "unknown_task", nil)

	assert.True(t, errors.IsConfigurationError(err))
}

func TestSubscriptionHandler_RejectsWrongArity(t *testing.T) {
	h := SubscriptionHandler(func(context.Context, uint) error { return nil })

	assert.True(t, errors.IsValidationError(h(context.Background(), nil)))
	assert.True(t, errors.IsValidationError(h(context.Background(), []uint{1, 2})))
	assert.NoError(t, h(context.Background(), []uint{7}))
}

func TestCronExecutor_SkipsOverlappingRuns(t *testing.T) {
	store := newStubJobStore(t)
	job := notificationJob(1, 1, 1, "*")
	store.set(job)

	e := newTestExecutor(t, store, nil)

	release := make(chan struct{})
	started := make(chan struct{}, 2)
	var runs int32
	e.Register(scheduling.ActionSendEmail, func(context.Context, []uint) error {
		atomic.AddInt32(&runs, 1)
		started <- struct{}{}
		<-release
		return nil
	})
	require.NoError(t, e.Resync(context.Background()))

	id, _ := e.entryID(job.Key)
	wrapped := e.cron.Entry(id).WrappedJob

	done := make(chan struct{})
	go func() {
		wrapped.Run()
		close(done)
	}()
	<-started

	// the second tick returns immediately while the first run holds the job
	wrapped.Run()
	close(release)
	<-done

	assert.Equal(t, int32(1), atomic.LoadInt32(&runs))
}

func TestCronExecutor_StartStop(t *testing.T) {
	store := newStubJobStore(t)
	store.set(notificationJob(1, 1, 1, "*"))

	e := newTestExecutor(t, store, nil)
	require.NoError(t, e.Start(context.Background()))

	err := e.Start(context.Background())
	assert.True(t, errors.IsConfigurationError(err))
	assert.Len(t, e.Entries(), 1)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, e.Stop(ctx))
}
