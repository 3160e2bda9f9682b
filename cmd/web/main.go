package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/sanosuguru/go-event-listing/internal/client"
	"github.com/sanosuguru/go-event-listing/internal/config"
	"github.com/sanosuguru/go-event-listing/internal/pkg/logger"
	"github.com/sanosuguru/go-event-listing/internal/pkg/metrics"
	"github.com/sanosuguru/go-event-listing/internal/ui"
	"github.com/sanosuguru/go-event-listing/internal/web"
)

func main() {
	cfg := config.Load()

	logger.Set(logger.NewWithFile(cfg.Log.Env, cfg.Log.Level, cfg.Log.File))
	defer func() { _ = logger.Sync() }()

	m := metrics.New()

	table := ui.NewTable()
	fetcher := client.NewFetcher(
		client.NewHTTPTransport(cfg.Web.ClientTimeout),
		cfg.Web.EventsAPIURL,
		table,
		client.WithLogger(logger.Get()),
		client.WithMetrics(m),
	)

	e := web.NewRouter(web.NewPageHandler(fetcher, table), m, prometheus.DefaultGatherer)
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	go func() {
		logger.Info("Web listening",
			zap.String("port", cfg.Web.Port),
			zap.String("events_api", cfg.Web.EventsAPIURL),
		)
		if err := e.Start(cfg.Web.Addr()); err != nil && err != http.ErrServerClosed {
			logger.Fatal("サーバー起動エラー", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("サーバーをシャットダウンしています...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal("サーバーシャットダウンエラー", zap.Error(err))
	}
}
