package web

import (
	"bytes"
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/sanosuguru/go-event-listing/internal/client"
	"github.com/sanosuguru/go-event-listing/internal/pkg/logger"
	"github.com/sanosuguru/go-event-listing/internal/ui"
)

// Loader はイベント一覧を読み込んでテーブルへ描画する
type Loader interface {
	Load(ctx context.Context) client.Outcome
}

// PageHandler はイベント一覧ページを返すハンドラー
type PageHandler struct {
	loader Loader
	table  *ui.Table
	title  string
}

// NewPageHandler はPageHandlerを作成する
func NewPageHandler(loader Loader, table *ui.Table) *PageHandler {
	return &PageHandler{loader: loader, table: table, title: ui.DefaultTitle}
}

// Index はページ表示ごとに一度だけ一覧を読み込み、現在のテーブルでページを返す
// 読み込みに失敗した場合は前回のテーブルのまま表示する
func (h *PageHandler) Index(c echo.Context) error {
	outcome := h.loader.Load(c.Request().Context())
	if outcome != client.OutcomeRendered {
		logger.Warn("イベント一覧を更新できませんでした", zap.String("outcome", string(outcome)))
	}

	var buf bytes.Buffer
	if err := ui.WritePage(&buf, h.title, h.table); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "ページの描画に失敗しました").SetInternal(err)
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}
