package web

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanosuguru/go-event-listing/internal/client"
	"github.com/sanosuguru/go-event-listing/internal/pkg/metrics"
	"github.com/sanosuguru/go-event-listing/internal/ui"
)

// stubTransport は固定のボディを返すTransport
type stubTransport struct {
	body string
}

func (s stubTransport) Get(_ context.Context, _ string) (*client.Response, error) {
	return &client.Response{StatusCode: http.StatusOK, Body: []byte(s.body)}, nil
}

func newMetricsRouter(t *testing.T) http.Handler {
	t.Helper()
	reg := prometheus.NewRegistry()
	m := metrics.NewWithRegistry(reg)

	table := ui.NewTable()
	fetcher := client.NewFetcher(
		stubTransport{body: `{"status":"success","data":[{"id":1,"name":"A","date":"2025-01-01"}]}`},
		"http://localhost:5000/events",
		table,
		client.WithMetrics(m),
	)
	return NewRouter(NewPageHandler(fetcher, table), m, reg)
}

func TestRouter_Metrics(t *testing.T) {
	t.Setenv("METRICS_USER", "")
	t.Setenv("METRICS_PASSWORD", "")
	e := newMetricsRouter(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `client_loads_total{outcome="rendered"} 1`)
	assert.Contains(t, rec.Body.String(), `http_requests_total{method="GET",path="/",status_code="200"} 1`)
}

func TestRouter_MetricsRequiresAuth(t *testing.T) {
	t.Setenv("METRICS_USER", "admin")
	t.Setenv("METRICS_PASSWORD", "secret")
	e := newMetricsRouter(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte("admin:secret")))
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_WithoutGatherer(t *testing.T) {
	e := NewRouter(NewPageHandler(&MockLoader{table: ui.NewTable()}, ui.NewTable()), nil, nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
