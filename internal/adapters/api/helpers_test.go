package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"weatherreminder.app/internal/core/subscription"
	"weatherreminder.app/internal/core/weather"
	"weatherreminder.app/internal/ports"
)

type fakeSubscriptions struct {
	subscribe        func(subscription.SubscribeParams) (*subscription.Subscription, error)
	changePeriod     func(subscription.ChangePeriodParams) (*subscription.Subscription, error)
	unsubscribe      func(subscription.UnsubscribeParams) error
	unsubscribeByKey func(subscription.UnsubscribeByKeyParams) error
	deleteCity       func(subscription.DeleteCityParams) error
	get              func(uint) (*subscription.Subscription, error)
	list             func(string) ([]*subscription.Subscription, error)
}

func (f *fakeSubscriptions) Subscribe(_ context.Context, p subscription.SubscribeParams) (*subscription.Subscription, error) {
	return f.subscribe(p)
}

func (f *fakeSubscriptions) ChangePeriod(_ context.Context, p subscription.ChangePeriodParams) (*subscription.Subscription, error) {
	return f.changePeriod(p)
}

func (f *fakeSubscriptions) Unsubscribe(_ context.Context, p subscription.UnsubscribeParams) error {
	return f.unsubscribe(p)
}

func (f *fakeSubscriptions) UnsubscribeByKey(_ context.Context, p subscription.UnsubscribeByKeyParams) error {
	return f.unsubscribeByKey(p)
}

func (f *fakeSubscriptions) DeleteCity(_ context.Context, p subscription.DeleteCityParams) error {
	return f.deleteCity(p)
}

func (f *fakeSubscriptions) GetSubscription(_ context.Context, id uint) (*subscription.Subscription, error) {
	return f.get(id)
}

func (f *fakeSubscriptions) ListSubscriptions(_ context.Context, email string) ([]*subscription.Subscription, error) {
	return f.list(email)
}

type fakeWeather struct {
	reading *weather.Reading
	err     error
	info    map[string]interface{}
}

func (f *fakeWeather) GetReading(_ context.Context, cityID uint, provider weather.Provider) (*weather.Reading, error) {
	if f.err != nil {
		return nil, f.err
	}
	r := *f.reading
	r.CityID, r.Provider = cityID, provider
	return &r, nil
}

func (f *fakeWeather) GetProviderInfo() map[string]interface{} { return f.info }

type fakeJobs struct {
	jobs []*ports.JobData
	err  error
}

func (f *fakeJobs) ListJobs(context.Context) ([]*ports.JobData, error) { return f.jobs, f.err }

type fakeHealth struct {
	results map[string]ports.HealthStatus
}

func (f *fakeHealth) CheckAll(context.Context) map[string]ports.HealthStatus { return f.results }

type testServer struct {
	server  *HTTPServerAdapter
	subs    *fakeSubscriptions
	weather *fakeWeather
	jobs    *fakeJobs
	health  *fakeHealth
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ts := &testServer{
		subs:    &fakeSubscriptions{},
		weather: &fakeWeather{},
		jobs:    &fakeJobs{},
		health:  &fakeHealth{results: map[string]ports.HealthStatus{}},
	}

	server, err := NewHTTPServerAdapter(ServerOptions{
		Config:              ServerConfig{Port: 0},
		SubscriptionUseCase: ts.subs,
		WeatherUseCase:      ts.weather,
		JobLister:           ts.jobs,
		HealthChecker:       ts.health,
		MetricsHandler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, "# metrics\n")
		}),
	})
	require.NoError(t, err)
	ts.server = server
	return ts
}

func (ts *testServer) do(t *testing.T, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	ts.server.GetRouter().ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
