package scheduling

import (
	"context"
	"fmt"

	"weatherreminder.app/internal/ports"
	"weatherreminder.app/pkg/errors"
)

// RefreshCoordinator manages the refresh job shared by all subscriptions of a (city, provider) pair.
// The job lives exactly as long as at least one subscription references the pair.
type RefreshCoordinator struct {
	jobs          ports.JobStore
	subscriptions ports.SubscriptionRepository
	logger        ports.Logger
	metrics       ports.MetricsRecorder
	timezone      string
}

// CoordinatorDependencies contains all dependencies for the refresh coordinator
type CoordinatorDependencies struct {
	JobStore      ports.JobStore
	Subscriptions ports.SubscriptionRepository
	Logger        ports.Logger
	Metrics       ports.MetricsRecorder
	Timezone      string
}

// NewRefreshCoordinator creates a new refresh coordinator
func NewRefreshCoordinator(deps CoordinatorDependencies) (*RefreshCoordinator, error) {
	if deps.JobStore == nil {
		return nil, errors.NewValidationError("job store is required")
	}
	if deps.Subscriptions == nil {
		return nil, errors.NewValidationError("subscription repository is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}

	return &RefreshCoordinator{
		jobs:          deps.JobStore,
		subscriptions: deps.Subscriptions,
		logger:        deps.Logger,
		metrics:       deps.Metrics,
		timezone:      zoneOrDefault(deps.Timezone),
	}, nil
}

// EnsureRefreshJob creates the refresh job for the pair unless one already exists.
// representativeID is any subscription referencing the pair.
func (c *RefreshCoordinator) EnsureRefreshJob(ctx context.Context, cityID uint, provider string, representativeID uint) error {
	key := RefreshKey(cityID, provider)
	existing, err := findJob(ctx, c.jobs, key)
	if err != nil {
		return err
	}
	if existing != nil {
		c.logger.Debug("Refresh job reused", ports.F("job", key.String()))
		return nil
	}

	job := &ports.JobData{
		Key:     key.toData(),
		Action:  ActionRefreshWeather,
		Args:    []uint{representativeID},
		Enabled: true,
	}
	RefreshCadence(c.timezone).applyTo(job)

	if err := c.jobs.Upsert(ctx, job); err != nil {
		return fmt.Errorf("create refresh job %s: %w", key, err)
	}

	c.metrics.RecordJobMutation(string(key.Kind), "create")
	c.logger.Info("Refresh job scheduled",
		ports.F("job", key.String()),
		ports.F("subscriptionId", representativeID))
	return nil
}

// ReleaseRefreshJob recounts the live subscriptions of the pair and removes the refresh job
// only when none remain. It must run after the subscription row is deleted, within the same transaction.
func (c *RefreshCoordinator) ReleaseRefreshJob(ctx context.Context, cityID uint, provider string) error {
	count, err := c.subscriptions.CountByCityAndProvider(ctx, cityID, provider)
	if err != nil {
		return fmt.Errorf("count subscriptions for city %d/%s: %w", cityID, provider, err)
	}

	if count > 0 {
		c.logger.Debug("Refresh job still referenced",
			ports.F("job", RefreshKey(cityID, provider).String()),
			ports.F("subscriptions", count))
		return c.RebindRefreshJob(ctx, cityID, provider)
	}

	return c.deleteRefreshJob(ctx, cityID, provider)
}

// ReleaseRefreshJobUnconditional removes the refresh job without counting subscriptions.
// Callers guarantee that no subscription of the pair survives.
func (c *RefreshCoordinator) ReleaseRefreshJobUnconditional(ctx context.Context, cityID uint, provider string) error {
	return c.deleteRefreshJob(ctx, cityID, provider)
}

// RebindRefreshJob points the refresh job at a live subscription when its
// representative has been deleted.
func (c *RefreshCoordinator) RebindRefreshJob(ctx context.Context, cityID uint, provider string) error {
	key := RefreshKey(cityID, provider)
	job, err := findJob(ctx, c.jobs, key)
	if err != nil || job == nil {
		return err
	}

	if len(job.Args) > 0 {
		current, err := c.subscriptions.FindByID(ctx, job.Args[0])
		if err == nil && current.CityID == cityID && current.Provider == provider {
			return nil
		}
		if err != nil && !errors.IsNotFoundError(err) {
			return fmt.Errorf("find representative subscription: %w", err)
		}
	}

	replacement, err := c.subscriptions.FindAnyByCityAndProvider(ctx, cityID, provider)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil
		}
		return fmt.Errorf("find replacement subscription: %w", err)
	}

	job.Args = []uint{replacement.ID}
	if err := c.jobs.Upsert(ctx, job); err != nil {
		return fmt.Errorf("rebind refresh job %s: %w", key, err)
	}

	c.metrics.RecordJobMutation(string(key.Kind), "rebind")
	c.logger.Info("Refresh job rebound",
		ports.F("job", key.String()),
		ports.F("subscriptionId", replacement.ID))
	return nil
}

func (c *RefreshCoordinator) deleteRefreshJob(ctx context.Context, cityID uint, provider string) error {
	key := RefreshKey(cityID, provider)
	removed, err := c.jobs.Delete(ctx, key.toData())
	if err != nil {
		return fmt.Errorf("delete refresh job %s: %w", key, err)
	}
	if !removed {
		c.logger.Debug("Refresh job already removed", ports.F("job", key.String()))
		return nil
	}

	c.metrics.RecordJobMutation(string(key.Kind), "delete")
	c.logger.Info("Refresh job removed", ports.F("job", key.String()))
	return nil
}
