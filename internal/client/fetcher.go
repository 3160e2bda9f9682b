package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"go.uber.org/zap"

	"github.com/sanosuguru/go-event-listing/internal/domain/event"
	"github.com/sanosuguru/go-event-listing/internal/pkg/logger"
	"github.com/sanosuguru/go-event-listing/internal/pkg/metrics"
)

// Renderer は取得したイベント一覧を描画する
type Renderer interface {
	Render(events []event.Event)
}

// Outcome は一回の読み込み結果
type Outcome string

const (
	OutcomeRendered       Outcome = "rendered"
	OutcomeFailed         Outcome = "failed"
	OutcomeErrored        Outcome = "errored"
	OutcomeTransportError Outcome = "transport_error"
)

// requestMode は常に success を要求する
const requestMode = "success"

// Fetcher はイベントAPIから一覧を取得し、エンベロープの status で処理を振り分ける
type Fetcher struct {
	transport Transport
	url       string
	renderer  Renderer
	log       *zap.Logger
	metrics   *metrics.Metrics
}

// Option はFetcherのオプション
type Option func(*Fetcher)

// WithLogger はロガーを差し替える
func WithLogger(l *zap.Logger) Option {
	return func(f *Fetcher) { f.log = l }
}

// WithMetrics は読み込み結果をメトリクスに記録する
func WithMetrics(m *metrics.Metrics) Option {
	return func(f *Fetcher) { f.metrics = m }
}

// NewFetcher はFetcherを作成する
func NewFetcher(transport Transport, endpoint string, renderer Renderer, opts ...Option) *Fetcher {
	f := &Fetcher{
		transport: transport,
		url:       endpoint,
		renderer:  renderer,
		log:       logger.Get(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Load は一度だけGETを行い、結果に応じて描画またはログ出力する
// 描画以外の結果では表示中のテーブルを変更しない
func (f *Fetcher) Load(ctx context.Context) Outcome {
	outcome := f.load(ctx)
	if f.metrics != nil {
		f.metrics.ClientLoadsTotal.WithLabelValues(string(outcome)).Inc()
	}
	return outcome
}

func (f *Fetcher) load(ctx context.Context) Outcome {
	target, err := withMode(f.url, requestMode)
	if err != nil {
		f.log.Error("Error fetching events", zap.String("url", f.url), zap.Error(err))
		return OutcomeTransportError
	}

	resp, err := f.transport.Get(ctx, target)
	if err != nil {
		f.log.Error("Error fetching events", zap.String("url", target), zap.Error(err))
		return OutcomeTransportError
	}

	// HTTPステータスではなくボディの status を信頼する
	var env event.Envelope
	if err := json.Unmarshal(resp.Body, &env); err != nil {
		f.log.Error("Error fetching events",
			zap.String("url", target),
			zap.Int("status_code", resp.StatusCode),
			zap.Error(fmt.Errorf("decode envelope: %w", err)),
		)
		return OutcomeTransportError
	}

	switch env.Status {
	case event.StatusSuccess:
		f.renderer.Render(env.Data)
		f.log.Debug("events rendered", zap.Int("count", len(env.Data)))
		return OutcomeRendered
	case event.StatusFail:
		f.log.Error("There was a failure", zap.String("message", env.Message))
		return OutcomeFailed
	default:
		f.log.Error("An error occurred", zap.String("status", string(env.Status)), zap.String("message", env.Message))
		return OutcomeErrored
	}
}

func withMode(endpoint, mode string) (string, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("parse url: %w", err)
	}
	q := u.Query()
	q.Set("mode", mode)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
