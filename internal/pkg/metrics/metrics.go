package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics はアプリケーションのメトリクスを管理する
type Metrics struct {
	// HTTPリクエストの総数（method, path, status_code）
	HTTPRequestsTotal *prometheus.CounterVec
	// HTTPリクエストのレイテンシ（method, path）
	HTTPRequestDuration *prometheus.HistogramVec
	// 返却したエンベロープの数（status: success, fail, error）
	EnvelopesTotal *prometheus.CounterVec
	// クライアントの読み込み結果（outcome: rendered, failed, errored, transport_error）
	ClientLoadsTotal *prometheus.CounterVec
	// ストアに保持しているイベント数
	StoredEvents prometheus.Gauge
}

// New は新しいMetricsインスタンスを作成し、デフォルトレジストリに登録する
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry は指定したレジストリにメトリクスを登録する
func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
		EnvelopesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "event_envelopes_total",
				Help: "Total number of event envelopes returned by status",
			},
			[]string{"status"},
		),
		ClientLoadsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "client_loads_total",
				Help: "Total number of event list loads by outcome",
			},
			[]string{"outcome"},
		),
		StoredEvents: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "stored_events",
				Help: "Number of events held by the in-memory store",
			},
		),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.EnvelopesTotal,
		m.ClientLoadsTotal,
		m.StoredEvents,
	)

	return m
}
