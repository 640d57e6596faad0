// Package executor runs the stored periodic jobs on a cron engine
package executor

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"weatherreminder.app/internal/core/scheduling"
	"weatherreminder.app/internal/ports"
	"weatherreminder.app/pkg/errors"
)

const (
	defaultResyncInterval = 30 * time.Second
	defaultRunTimeout     = 2 * time.Minute
)

// Handler executes one job action with the job's stored arguments
type Handler func(ctx context.Context, args []uint) error

// SubscriptionHandler adapts an action that takes a single subscription id
func SubscriptionHandler(fn func(ctx context.Context, subscriptionID uint) error) Handler {
	return func(ctx context.Context, args []uint) error {
		if len(args) != 1 {
			return errors.NewValidationError(fmt.Sprintf("expected one subscription id, got %d arguments", len(args)))
		}
		return fn(ctx, args[0])
	}
}

// CronExecutor mirrors the enabled jobs of a JobStore into a robfig/cron engine.
// The store is the source of truth; Resync adds, replaces and removes entries to match it.
type CronExecutor struct {
	cron       *cron.Cron
	jobs       ports.JobStore
	handlers   map[string]Handler
	logger     ports.Logger
	metrics    ports.MetricsRecorder
	resync     time.Duration
	runTimeout time.Duration

	mu      sync.Mutex
	entries map[ports.JobKeyData]scheduledEntry
	baseCtx context.Context
	cancel  context.CancelFunc
	done    chan struct{}
}

type scheduledEntry struct {
	id          cron.EntryID
	fingerprint string
}

// Config holds dependencies and tuning for the executor
type Config struct {
	JobStore       ports.JobStore
	Logger         ports.Logger
	Metrics        ports.MetricsRecorder
	ResyncInterval time.Duration
	RunTimeout     time.Duration
}

// NewCronExecutor creates an executor; handlers are registered before Start
func NewCronExecutor(cfg Config) (*CronExecutor, error) {
	if cfg.JobStore == nil {
		return nil, errors.NewValidationError("job store is required")
	}
	if cfg.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if cfg.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}
	if cfg.ResyncInterval <= 0 {
		cfg.ResyncInterval = defaultResyncInterval
	}
	if cfg.RunTimeout <= 0 {
		cfg.RunTimeout = defaultRunTimeout
	}

	logger := cronLogger{logger: cfg.Logger}
	return &CronExecutor{
		cron: cron.New(
			cron.WithLogger(logger),
			cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
		),
		jobs:       cfg.JobStore,
		handlers:   make(map[string]Handler),
		logger:     cfg.Logger,
		metrics:    cfg.Metrics,
		resync:     cfg.ResyncInterval,
		runTimeout: cfg.RunTimeout,
		entries:    make(map[ports.JobKeyData]scheduledEntry),
		baseCtx:    context.Background(),
	}, nil
}

// Register binds an action name to its handler
func (e *CronExecutor) Register(action string, handler Handler) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.handlers[action] = handler
}

// Start loads the jobs, starts the cron engine and keeps it in sync until Stop
func (e *CronExecutor) Start(ctx context.Context) error {
	e.mu.Lock()
	if e.cancel != nil {
		e.mu.Unlock()
		return errors.NewConfigurationError("executor already started", nil)
	}
	e.baseCtx, e.cancel = context.WithCancel(ctx)
	e.done = make(chan struct{})
	runCtx := e.baseCtx
	e.mu.Unlock()

	if err := e.Resync(runCtx); err != nil {
		e.logger.Error("Initial job resync failed", ports.F("error", err))
	}

	e.cron.Start()
	go e.loop(runCtx)

	e.logger.Info("Job executor started", ports.F("resync_interval", e.resync.String()))
	return nil
}

// Stop halts scheduling and waits for running handlers or ctx expiry
func (e *CronExecutor) Stop(ctx context.Context) error {
	e.mu.Lock()
	cancel, done := e.cancel, e.done
	e.mu.Unlock()
	if cancel == nil {
		return nil
	}

	stopped := e.cron.Stop()
	cancel()

	select {
	case <-stopped.Done():
	case <-ctx.Done():
		return fmt.Errorf("wait for running jobs: %w", ctx.Err())
	}
	<-done

	e.logger.Info("Job executor stopped")
	return nil
}

func (e *CronExecutor) loop(ctx context.Context) {
	defer close(e.done)

	ticker := time.NewTicker(e.resync)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := e.Resync(ctx); err != nil {
				e.logger.Error("Job resync failed", ports.F("error", err))
			}
		}
	}
}

// Resync reconciles cron entries with the enabled jobs in the store
func (e *CronExecutor) Resync(ctx context.Context) error {
	jobs, err := e.jobs.ListEnabled(ctx)
	if err != nil {
		return fmt.Errorf("list enabled jobs: %w", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	seen := make(map[ports.JobKeyData]struct{}, len(jobs))
	added, replaced, removed := 0, 0, 0

	for _, job := range jobs {
		seen[job.Key] = struct{}{}
		fp := fingerprint(job)

		current, exists := e.entries[job.Key]
		if exists && current.fingerprint == fp {
			continue
		}

		schedule, err := scheduling.CadenceOf(job).Schedule()
		if err != nil {
			e.logger.Error("Skipping job with invalid cadence",
				ports.F("job", scheduling.KeyFromData(job.Key).String()),
				ports.F("error", err))
			continue
		}

		if exists {
			e.cron.Remove(current.id)
			replaced++
		} else {
			added++
		}

		id := e.cron.Schedule(schedule, e.jobFunc(job))
		e.entries[job.Key] = scheduledEntry{id: id, fingerprint: fp}
	}

	for key, entry := range e.entries {
		if _, ok := seen[key]; !ok {
			e.cron.Remove(entry.id)
			delete(e.entries, key)
			removed++
		}
	}

	if added+replaced+removed > 0 {
		e.logger.Info("Job entries synchronized",
			ports.F("added", added),
			ports.F("replaced", replaced),
			ports.F("removed", removed),
			ports.F("total", len(e.entries)))
	}
	return nil
}

func (e *CronExecutor) jobFunc(job *ports.JobData) cron.FuncJob {
	key := scheduling.KeyFromData(job.Key)
	action := job.Action
	args := append([]uint(nil), job.Args...)

	return func() {
		e.mu.Lock()
		base := e.baseCtx
		e.mu.Unlock()

		ctx, cancel := context.WithTimeout(base, e.runTimeout)
		defer cancel()
		_ = e.execute(ctx, key, action, args)
	}
}

// execute dispatches one run; failures are logged and counted, never retried
func (e *CronExecutor) execute(ctx context.Context, key scheduling.JobKey, action string, args []uint) (err error) {
	start := time.Now()
	status := "success"

	defer func() {
		if r := recover(); r != nil {
			status = "panic"
			err = fmt.Errorf("job %s panicked: %v", key, r)
			e.logger.Error("Job handler panicked",
				ports.F("job", key.String()),
				ports.F("action", action),
				ports.F("panic", fmt.Sprint(r)))
		}
		e.metrics.RecordJobExecution(action, status, time.Since(start))
	}()

	e.mu.Lock()
	handler, ok := e.handlers[action]
	e.mu.Unlock()
	if !ok {
		status = "unknown_action"
		e.logger.Error("No handler registered for job action",
			ports.F("job", key.String()),
			ports.F("action", action))
		return errors.NewConfigurationError("no handler for action "+action, nil)
	}

	if err := handler(ctx, args); err != nil {
		status = "failure"
		e.logger.Error("Job run failed",
			ports.F("job", key.String()),
			ports.F("action", action),
			ports.F("retryable", errors.IsRetryable(err)),
			ports.F("error", err))
		return err
	}

	e.logger.Debug("Job run completed",
		ports.F("job", key.String()),
		ports.F("action", action),
		ports.F("duration_ms", time.Since(start).Milliseconds()))
	return nil
}

// Entries reports the scheduled jobs and their next run time
func (e *CronExecutor) Entries() map[ports.JobKeyData]time.Time {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make(map[ports.JobKeyData]time.Time, len(e.entries))
	for key, entry := range e.entries {
		out[key] = e.cron.Entry(entry.id).Next
	}
	return out
}

func (e *CronExecutor) entryID(key ports.JobKeyData) (cron.EntryID, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	entry, ok := e.entries[key]
	return entry.id, ok
}

func fingerprint(job *ports.JobData) string {
	args := make([]string, len(job.Args))
	for i, a := range job.Args {
		args[i] = fmt.Sprint(a)
	}
	return strings.Join([]string{
		scheduling.CadenceOf(job).Spec(),
		job.Timezone,
		job.Action,
		strings.Join(args, ","),
	}, "|")
}
