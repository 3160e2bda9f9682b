package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/sanosuguru/go-event-listing/internal/application"
	"github.com/sanosuguru/go-event-listing/internal/domain/event"
	"github.com/sanosuguru/go-event-listing/internal/pkg/logger"
	"github.com/sanosuguru/go-event-listing/internal/pkg/metrics"
)

// modeParam はモード選択子のクエリパラメータ名
const modeParam = "mode"

type EventHandler struct {
	eventService EventServiceInterface
	metrics      *metrics.Metrics
}

// NewEventHandler はEventHandlerを作成する
// m が nil の場合はメトリクスを記録しない
func NewEventHandler(eventService EventServiceInterface, m *metrics.Metrics) *EventHandler {
	return &EventHandler{eventService: eventService, metrics: m}
}

// List godoc
// @Summary イベント一覧を取得
// @Description mode に応じて成功・失敗・エラーのエンベロープを返します
// @Tags events
// @Produce json
// @Param mode query string false "success | fail | error" default(success)
// @Success 200 {object} event.Envelope
// @Failure 400 {object} event.Envelope
// @Failure 500 {object} event.Envelope
// @Router /events [get]
func (h *EventHandler) List(c echo.Context) error {
	raw, present := queryMode(c)
	mode := application.ParseMode(raw, present)

	code, env := h.respond(c, mode)
	if h.metrics != nil {
		h.metrics.EnvelopesTotal.WithLabelValues(string(env.Status)).Inc()
	}
	return c.JSON(code, env)
}

func (h *EventHandler) respond(c echo.Context, mode application.Mode) (int, event.Envelope) {
	switch mode.Kind {
	case application.ModeSuccess:
		events, err := h.eventService.ListEvents(c.Request().Context())
		if err != nil {
			logger.Error("イベント一覧取得失敗", zap.Error(err))
			return http.StatusInternalServerError, event.Error(event.MessageInternalError)
		}
		return http.StatusOK, event.Success(events)
	case application.ModeFail:
		return http.StatusBadRequest, event.Fail(event.MessageBadRequest)
	case application.ModeError:
		return http.StatusInternalServerError, event.Error(event.MessageInternalError)
	case application.ModeUnrecognized:
		// 既存クライアントとの互換のため 200 で fail を返す
		return http.StatusOK, event.InvalidMode(mode.Raw)
	}
	return http.StatusOK, event.InvalidMode(mode.Raw)
}

// queryMode はパラメータの有無も合わせて返す
func queryMode(c echo.Context) (string, bool) {
	values, ok := c.QueryParams()[modeParam]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}
