package infrastructure

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusMetrics implements the MetricsRecorder port on its own registry
type PrometheusMetrics struct {
	registry *prometheus.Registry

	jobMutations  *prometheus.CounterVec
	jobRuns       *prometheus.CounterVec
	jobDuration   *prometheus.HistogramVec
	providerCalls *prometheus.CounterVec
	cacheLookups  *prometheus.CounterVec
}

// NewPrometheusMetrics registers the scheduler and weather collectors plus the
// standard Go and process collectors
func NewPrometheusMetrics() *PrometheusMetrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &PrometheusMetrics{
		registry: registry,
		jobMutations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weatherreminder_job_mutations_total",
				Help: "Periodic job store mutations by job kind and operation",
			},
			[]string{"kind", "operation"},
		),
		jobRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weatherreminder_job_runs_total",
				Help: "Executed job runs by action and outcome",
			},
			[]string{"action", "status"},
		),
		jobDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "weatherreminder_job_run_duration_seconds",
				Help:    "Job run duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"action"},
		),
		providerCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weatherreminder_provider_fetches_total",
				Help: "Weather provider fetches by provider and outcome",
			},
			[]string{"provider", "outcome"},
		),
		cacheLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weatherreminder_reading_cache_lookups_total",
				Help: "Reading cache lookups by result",
			},
			[]string{"hit"},
		),
	}
}

// RecordJobMutation counts a job insert, update or delete
func (m *PrometheusMetrics) RecordJobMutation(kind, operation string) {
	m.jobMutations.WithLabelValues(kind, operation).Inc()
}

// RecordJobExecution counts one executed run and observes its duration
func (m *PrometheusMetrics) RecordJobExecution(action, status string, duration time.Duration) {
	m.jobRuns.WithLabelValues(action, status).Inc()
	m.jobDuration.WithLabelValues(action).Observe(duration.Seconds())
}

// RecordProviderFetch counts one provider call
func (m *PrometheusMetrics) RecordProviderFetch(provider, outcome string) {
	m.providerCalls.WithLabelValues(provider, outcome).Inc()
}

// RecordReadingCache counts one reading cache lookup
func (m *PrometheusMetrics) RecordReadingCache(hit bool) {
	m.cacheLookups.WithLabelValues(strconv.FormatBool(hit)).Inc()
}

// Handler exposes the registry in the Prometheus text format
func (m *PrometheusMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry
func (m *PrometheusMetrics) Registry() *prometheus.Registry {
	return m.registry
}
