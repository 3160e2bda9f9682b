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

	"github.com/sanosuguru/go-event-listing/internal/api"
	"github.com/sanosuguru/go-event-listing/internal/api/handler"
	"github.com/sanosuguru/go-event-listing/internal/application"
	"github.com/sanosuguru/go-event-listing/internal/config"
	"github.com/sanosuguru/go-event-listing/internal/domain/event"
	"github.com/sanosuguru/go-event-listing/internal/infrastructure/memory"
	"github.com/sanosuguru/go-event-listing/internal/infrastructure/postgres"
	"github.com/sanosuguru/go-event-listing/internal/pkg/logger"
	"github.com/sanosuguru/go-event-listing/internal/pkg/metrics"
)

func main() {
	cfg := config.Load()

	logger.Set(logger.NewWithFile(cfg.Log.Env, cfg.Log.Level, cfg.Log.File))
	defer func() { _ = logger.Sync() }()

	// シードは起動時に一度だけ読み込む
	seed, err := loadSeed(cfg)
	if err != nil {
		logger.Fatal("シードの読み込みに失敗しました", zap.Error(err))
	}

	store, err := memory.NewEventStore(seed)
	if err != nil {
		logger.Fatal("イベントストアの作成に失敗しました", zap.Error(err))
	}

	m := metrics.New()
	m.StoredEvents.Set(float64(store.Len()))

	e := api.NewRouter(api.RouterConfig{
		EventHandler:  handler.NewEventHandler(application.NewEventService(store), m),
		HealthHandler: handler.NewHealthHandler(store),
		Metrics:       m,
		Gatherer:      prometheus.DefaultGatherer,
	})
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	go func() {
		logger.Info("App listening", zap.String("port", cfg.Server.Port), zap.Int("events", store.Len()))
		if err := e.Start(cfg.Server.Addr()); err != nil && err != http.ErrServerClosed {
			logger.Fatal("サーバー起動エラー", zap.Error(err))
		}
	}()

	// シグナル待機
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("サーバーをシャットダウンしています...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal("サーバーシャットダウンエラー", zap.Error(err))
	}

	logger.Info("サーバーが正常にシャットダウンしました")
}

func loadSeed(cfg *config.Config) ([]event.Event, error) {
	if !cfg.Database.Enabled() {
		return event.DefaultEvents(), nil
	}

	db, err := postgres.NewConnection(&cfg.Database)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	events, err := postgres.LoadEvents(ctx, db)
	if err != nil {
		return nil, err
	}
	logger.Info("シードをデータベースから読み込みました", zap.Int("events", len(events)))
	return events, nil
}
