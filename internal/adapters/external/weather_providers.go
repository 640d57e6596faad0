// Package external provides adapters for external services
// These adapters implement ports for weather providers, email, caches and locks.
package external

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
	"weatherreminder.app/internal/ports"
	"weatherreminder.app/pkg/errors"
)

const (
	defaultHTTPTimeout      = 10 * time.Second
	defaultBreakerFailures  = 5
	defaultBreakerOpenFor   = 30 * time.Second
	maxProviderResponseSize = 1 << 20
)

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// BreakerSettings configures the circuit breaker guarding one provider
type BreakerSettings struct {
	ConsecutiveFailures uint32
	OpenTimeout         time.Duration
}

var errProviderRateLimited = stderrors.New("provider rate limit exceeded")

type providerResponse struct {
	status int
	body   []byte
}

// providerClient performs provider calls behind a circuit breaker.
// Server errors, transport failures and rate limiting count against the breaker;
// other client errors such as an unknown city do not.
type providerClient struct {
	name    string
	client  HTTPClient
	breaker *gobreaker.CircuitBreaker
	logger  ports.Logger
}

func newProviderClient(name string, client HTTPClient, settings BreakerSettings, logger ports.Logger) *providerClient {
	if client == nil {
		client = &http.Client{Timeout: defaultHTTPTimeout}
	}
	if settings.ConsecutiveFailures == 0 {
		settings.ConsecutiveFailures = defaultBreakerFailures
	}
	if settings.OpenTimeout <= 0 {
		settings.OpenTimeout = defaultBreakerOpenFor
	}

	pc := &providerClient{name: name, client: client, logger: logger}
	pc.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     settings.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= settings.ConsecutiveFailures
		},
		OnStateChange: func(breaker string, from, to gobreaker.State) {
			if pc.logger != nil {
				pc.logger.Warn("Provider circuit breaker changed state",
					ports.F("provider", breaker),
					ports.F("from", from.String()),
					ports.F("to", to.String()))
			}
		},
	})
	return pc
}

// getJSON issues a GET and decodes a 200 response into out.
// It returns the HTTP status so callers can interpret non-200 answers.
func (c *providerClient) getJSON(ctx context.Context, url string, out interface{}) (int, error) {
	result, err := c.breaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}

		resp, err := c.client.Do(req)
		if err != nil {
			return nil, err
		}
		defer func() {
			if closeErr := resp.Body.Close(); closeErr != nil && c.logger != nil {
				c.logger.Warn("Failed to close provider response body",
					ports.F("provider", c.name), ports.F("error", closeErr))
			}
		}()

		switch {
		case resp.StatusCode == http.StatusTooManyRequests:
			return nil, errProviderRateLimited
		case resp.StatusCode >= http.StatusInternalServerError:
			return nil, fmt.Errorf("%s returned status %d", c.name, resp.StatusCode)
		}

		body, err := io.ReadAll(io.LimitReader(resp.Body, maxProviderResponseSize))
		if err != nil {
			return nil, err
		}
		return providerResponse{status: resp.StatusCode, body: body}, nil
	})
	if err != nil {
		return 0, c.classify(err)
	}

	res := result.(providerResponse)
	if res.status != http.StatusOK {
		return res.status, nil
	}
	if err := json.Unmarshal(res.body, out); err != nil {
		return res.status, errors.NewExternalAPIError(fmt.Sprintf("failed to decode %s response", c.name), err)
	}
	return res.status, nil
}

func (c *providerClient) classify(err error) error {
	switch {
	case stderrors.Is(err, gobreaker.ErrOpenState), stderrors.Is(err, gobreaker.ErrTooManyRequests):
		return errors.NewProviderUnavailableError(fmt.Sprintf("%s circuit breaker is open", c.name), err)
	case stderrors.Is(err, errProviderRateLimited):
		return errors.NewRateLimitedError(fmt.Sprintf("%s rate limit exceeded", c.name), err)
	default:
		return errors.NewProviderUnavailableError(fmt.Sprintf("failed to call %s", c.name), err)
	}
}

// statusError maps a non-200 provider answer that did not trip the breaker
func (c *providerClient) statusError(status int, city string) error {
	switch status {
	case http.StatusNotFound, http.StatusNoContent, http.StatusBadRequest:
		return errors.NewNotFoundError(fmt.Sprintf("city %q not found by %s", city, c.name))
	default:
		return errors.NewExternalAPIError(fmt.Sprintf("%s returned status %d", c.name, status), nil)
	}
}

func (c *providerClient) state() string {
	return c.breaker.State().String()
}
