package api

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sanosuguru/go-event-listing/internal/api/handler"
	"github.com/sanosuguru/go-event-listing/internal/api/middleware"
	"github.com/sanosuguru/go-event-listing/internal/pkg/metrics"
)

// RouterConfig はルーター構築に必要な依存関係
type RouterConfig struct {
	EventHandler  *handler.EventHandler
	HealthHandler *handler.HealthHandler
	Metrics       *metrics.Metrics
	// Gatherer が nil の場合は /metrics を公開しない
	Gatherer prometheus.Gatherer
}

// NewRouter はイベントAPIのEchoインスタンスを作成する
func NewRouter(cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = CustomHTTPErrorHandler

	middleware.SetupMiddleware(e, cfg.Metrics)

	e.GET("/health", cfg.HealthHandler.Check)
	e.GET("/events", cfg.EventHandler.List)

	if cfg.Gatherer != nil {
		e.GET("/metrics",
			echo.WrapHandler(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})),
			middleware.MetricsBasicAuth(),
		)
	}

	return e
}
