package memory

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/sanosuguru/go-event-listing/internal/domain/event"
)

// EventStore は起動時に一度だけ構築される読み取り専用のイベントストア
// 構築後は書き込まれないためロックは不要
type EventStore struct {
	events []event.Event
}

// NewEventStore はイベントを検証してストアを作成する
// IDが重複している場合や形式が不正な場合はエラーを返す
func NewEventStore(events []event.Event) (*EventStore, error) {
	validate := validator.New()
	seen := make(map[int]struct{}, len(events))
	for i, e := range events {
		if err := validate.Struct(e); err != nil {
			return nil, fmt.Errorf("%w: index=%d: %v", event.ErrInvalidEvent, i, err)
		}
		if _, ok := seen[e.ID]; ok {
			return nil, fmt.Errorf("%w: id=%d", event.ErrDuplicateID, e.ID)
		}
		seen[e.ID] = struct{}{}
	}

	stored := make([]event.Event, len(events))
	copy(stored, events)
	return &EventStore{events: stored}, nil
}

// List はストア順のイベント一覧のコピーを返す
func (s *EventStore) List(_ context.Context) ([]event.Event, error) {
	out := make([]event.Event, len(s.events))
	copy(out, s.events)
	return out, nil
}

// Len は保持しているイベント数を返す
func (s *EventStore) Len() int {
	return len(s.events)
}

// インターフェースを満たしているか確認
var _ event.Reader = (*EventStore)(nil)
