package web

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sanosuguru/go-event-listing/internal/api"
	"github.com/sanosuguru/go-event-listing/internal/api/handler"
	"github.com/sanosuguru/go-event-listing/internal/api/middleware"
	"github.com/sanosuguru/go-event-listing/internal/pkg/metrics"
)

// NewRouter はフロントエンドのEchoインスタンスを作成する
// gatherer が nil の場合は /metrics を公開しない
func NewRouter(page *PageHandler, m *metrics.Metrics, gatherer prometheus.Gatherer) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = api.CustomHTTPErrorHandler

	middleware.SetupMiddleware(e, m)

	e.GET("/", page.Index)
	e.GET("/health", handler.NewHealthHandler(nil).Check)

	if gatherer != nil {
		e.GET("/metrics",
			echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})),
			middleware.MetricsBasicAuth(),
		)
	}

	return e
}
