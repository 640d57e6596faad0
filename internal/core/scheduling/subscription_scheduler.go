package scheduling

import (
	"context"
	"fmt"

	"weatherreminder.app/internal/ports"
	"weatherreminder.app/pkg/errors"
)

// SubscriptionRef carries the subscription fields a notification job is derived from
type SubscriptionRef struct {
	ID          uint
	UserID      uint
	CityID      uint
	Provider    string
	PeriodHours int
}

func (s SubscriptionRef) key() JobKey {
	return NotificationKey(s.UserID, s.CityID, s.Provider)
}

// SubscriptionScheduler translates subscription lifecycle events into notification job mutations.
// Every operation is idempotent.
type SubscriptionScheduler struct {
	jobs     ports.JobStore
	logger   ports.Logger
	metrics  ports.MetricsRecorder
	timezone string
}

// SchedulerDependencies contains all dependencies for the subscription scheduler
type SchedulerDependencies struct {
	JobStore ports.JobStore
	Logger   ports.Logger
	Metrics  ports.MetricsRecorder
	Timezone string
}

// NewSubscriptionScheduler creates a new subscription scheduler
func NewSubscriptionScheduler(deps SchedulerDependencies) (*SubscriptionScheduler, error) {
	if deps.JobStore == nil {
		return nil, errors.NewValidationError("job store is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}

	return &SubscriptionScheduler{
		jobs:     deps.JobStore,
		logger:   deps.Logger,
		metrics:  deps.Metrics,
		timezone: zoneOrDefault(deps.Timezone),
	}, nil
}

// OnSubscriptionCreated inserts the notification job for a new subscription unless one already exists
func (s *SubscriptionScheduler) OnSubscriptionCreated(ctx context.Context, sub SubscriptionRef) error {
	cadence, err := CadenceForPeriod(sub.PeriodHours, s.timezone)
	if err != nil {
		return err
	}

	key := sub.key()
	existing, err := findJob(ctx, s.jobs, key)
	if err != nil {
		return err
	}
	if existing != nil {
		s.logger.Debug("Notification job already scheduled", ports.F("job", key.String()))
		return nil
	}

	job := &ports.JobData{
		Key:     key.toData(),
		Action:  ActionSendEmail,
		Args:    []uint{sub.ID},
		Enabled: true,
	}
	cadence.applyTo(job)

	if err := s.jobs.Upsert(ctx, job); err != nil {
		return fmt.Errorf("create notification job %s: %w", key, err)
	}

	s.metrics.RecordJobMutation(string(key.Kind), "create")
	s.logger.Info("Notification job scheduled",
		ports.F("job", key.String()),
		ports.F("subscriptionId", sub.ID),
		ports.F("cron", cadence.Spec()))
	return nil
}

// OnSubscriptionEdited replaces the cadence of an existing notification job in place.
// A missing job means there is nothing to reschedule.
func (s *SubscriptionScheduler) OnSubscriptionEdited(ctx context.Context, sub SubscriptionRef) error {
	cadence, err := CadenceForPeriod(sub.PeriodHours, s.timezone)
	if err != nil {
		return err
	}

	key := sub.key()
	job, err := findJob(ctx, s.jobs, key)
	if err != nil {
		return err
	}
	if job == nil {
		s.logger.Debug("No notification job to reschedule", ports.F("job", key.String()))
		return nil
	}

	if CadenceOf(job) == cadence {
		return nil
	}

	cadence.applyTo(job)
	if err := s.jobs.Upsert(ctx, job); err != nil {
		return fmt.Errorf("reschedule notification job %s: %w", key, err)
	}

	s.metrics.RecordJobMutation(string(key.Kind), "update")
	s.logger.Info("Notification job rescheduled",
		ports.F("job", key.String()),
		ports.F("cron", cadence.Spec()))
	return nil
}

// OnSubscriptionDeleted removes the notification job of a subscription if present
func (s *SubscriptionScheduler) OnSubscriptionDeleted(ctx context.Context, sub SubscriptionRef) error {
	key := sub.key()
	removed, err := s.jobs.Delete(ctx, key.toData())
	if err != nil {
		return fmt.Errorf("delete notification job %s: %w", key, err)
	}
	if !removed {
		s.logger.Debug("Notification job already removed", ports.F("job", key.String()))
		return nil
	}

	s.metrics.RecordJobMutation(string(key.Kind), "delete")
	s.logger.Info("Notification job removed", ports.F("job", key.String()))
	return nil
}

// ListJobs returns every enabled job definition
func (s *SubscriptionScheduler) ListJobs(ctx context.Context) ([]*ports.JobData, error) {
	jobs, err := s.jobs.ListEnabled(ctx)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	return jobs, nil
}

// findJob returns nil without error when no job has the key
func findJob(ctx context.Context, store ports.JobStore, key JobKey) (*ports.JobData, error) {
	job, err := store.FindByKey(ctx, key.toData())
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find job %s: %w", key, err)
	}
	return job, nil
}
