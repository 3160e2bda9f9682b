package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/sanosuguru/go-event-listing/internal/domain/event"
)

const listEventsQuery = `
		SELECT id, name, to_char(date, 'YYYY-MM-DD') AS date
		FROM events
		ORDER BY id
	`

// eventRow はDBの行を表す構造体
type eventRow struct {
	ID   int    `db:"id"`
	Name string `db:"name"`
	Date string `db:"date"`
}

// toEntity はeventRowをEventエンティティに変換する
func (r *eventRow) toEntity() event.Event {
	return event.NewEvent(r.ID, r.Name, r.Date)
}

// LoadEvents は起動時のシードとしてイベント一覧を一度だけ読み込む
// 読み込み後はメモリ上のストアが使われ、DBへの書き込みは行わない
func LoadEvents(ctx context.Context, db *sqlx.DB) ([]event.Event, error) {
	var rows []eventRow
	if err := db.SelectContext(ctx, &rows, listEventsQuery); err != nil {
		return nil, fmt.Errorf("イベント一覧取得に失敗しました: %w", err)
	}

	events := make([]event.Event, len(rows))
	for i, row := range rows {
		events[i] = row.toEntity()
	}
	return events, nil
}
