package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// EventCounter は保持しているイベント数を返す
type EventCounter interface {
	Len() int
}

// HealthHandler はヘルスチェックハンドラー
type HealthHandler struct {
	counter EventCounter
}

// NewHealthHandler はHealthHandlerを作成する
// counter が nil の場合はイベント数を返さない
func NewHealthHandler(counter EventCounter) *HealthHandler {
	return &HealthHandler{counter: counter}
}

// HealthResponse はヘルスチェックのレスポンス
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Events    *int   `json:"events,omitempty"`
}

// Check はヘルスチェックを行う
// @Summary ヘルスチェック
// @Description アプリケーションの健全性を確認する
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Check(c echo.Context) error {
	resp := HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().Format(time.RFC3339),
	}
	if h.counter != nil {
		n := h.counter.Len()
		resp.Events = &n
	}
	return c.JSON(http.StatusOK, resp)
}
