package application

import (
	"context"
	"fmt"

	"github.com/sanosuguru/go-event-listing/internal/domain/event"
)

type EventService struct {
	eventRepo event.Reader
}

func NewEventService(eventRepo event.Reader) *EventService {
	return &EventService{eventRepo: eventRepo}
}

// ListEvents はストア順のイベント一覧を返す
func (s *EventService) ListEvents(ctx context.Context) ([]event.Event, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("イベント一覧取得に失敗しました: %w", err)
	}
	if events == nil {
		events = []event.Event{}
	}
	return events, nil
}
