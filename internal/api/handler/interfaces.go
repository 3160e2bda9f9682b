package handler

import (
	"context"

	"github.com/sanosuguru/go-event-listing/internal/domain/event"
)

// EventServiceInterface はイベントサービスのインターフェース
type EventServiceInterface interface {
	ListEvents(ctx context.Context) ([]event.Event, error)
}
