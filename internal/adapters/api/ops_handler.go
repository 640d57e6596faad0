package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"weatherreminder.app/internal/core/scheduling"
	"weatherreminder.app/internal/ports"
)

// JobResponse is the wire form of a stored periodic job
type JobResponse struct {
	Key       string    `json:"key"`
	Kind      string    `json:"kind"`
	Action    string    `json:"action"`
	Args      []uint    `json:"args"`
	Schedule  string    `json:"schedule"`
	Timezone  string    `json:"timezone"`
	Enabled   bool      `json:"enabled"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HealthResponse aggregates component health
type HealthResponse struct {
	Status     string                        `json:"status"`
	Components map[string]ports.HealthStatus `json:"components"`
}

// listJobs handles GET /api/jobs requests
func (s *HTTPServerAdapter) listJobs(c *gin.Context) {
	jobs, err := s.jobLister.ListJobs(c.Request.Context())
	if err != nil {
		s.handleError(c, err)
		return
	}

	out := make([]JobResponse, 0, len(jobs))
	for _, job := range jobs {
		out = append(out, JobResponse{
			Key:       scheduling.KeyFromData(job.Key).String(),
			Kind:      job.Key.Kind,
			Action:    job.Action,
			Args:      job.Args,
			Schedule:  scheduling.CadenceOf(job).Spec(),
			Timezone:  job.Timezone,
			Enabled:   job.Enabled,
			UpdatedAt: job.UpdatedAt,
		})
	}
	c.JSON(http.StatusOK, out)
}

// health handles GET /health requests
func (s *HTTPServerAdapter) health(c *gin.Context) {
	components := s.healthChecker.CheckAll(c.Request.Context())

	status := ports.StatusHealthy
	for _, component := range components {
		if component.Status == ports.StatusUnhealthy {
			status = ports.StatusUnhealthy
			break
		}
		if component.Status == ports.StatusDegraded {
			status = ports.StatusDegraded
		}
	}

	code := http.StatusOK
	if status == ports.StatusUnhealthy {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, HealthResponse{Status: status, Components: components})
}
