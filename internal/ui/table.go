package ui

import (
	"bytes"
	"html/template"
	"sync"

	"github.com/sanosuguru/go-event-listing/internal/domain/event"
)

// ActionLabel は各行のボタンの表示名
const ActionLabel = "Action"

// TableBodyID はテーブル本体の要素ID
const TableBodyID = "eventTableBody"

// Button は行に付くアクションボタン
// EventID は data-id 属性として出力される
type Button struct {
	Label   string
	EventID int
}

// Row はテーブルの一行
type Row struct {
	Name   string
	Date   string
	Button Button
}

// Table はイベント一覧テーブルの本体を保持する
type Table struct {
	mu   sync.RWMutex
	rows []Row
}

// NewTable は空のテーブルを作成する
func NewTable() *Table {
	return &Table{}
}

// Render は既存の行をすべて削除し、入力順に一行ずつ追加する
func (t *Table) Render(events []event.Event) {
	rows := make([]Row, 0, len(events))
	for _, e := range events {
		rows = append(rows, Row{
			Name: e.Name,
			Date: e.Date,
			Button: Button{
				Label:   ActionLabel,
				EventID: e.ID,
			},
		})
	}

	t.mu.Lock()
	t.rows = rows
	t.mu.Unlock()
}

// Rows は現在の行のコピーを返す
func (t *Table) Rows() []Row {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]Row, len(t.rows))
	copy(out, t.rows)
	return out
}

// Len は現在の行数を返す
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}

// Row は index 番目の行を返す
func (t *Table) Row(index int) (Row, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if index < 0 || index >= len(t.rows) {
		return Row{}, false
	}
	return t.rows[index], true
}

// HTML はテーブル本体の HTML を返す
// 値は html/template によってエスケープされる
func (t *Table) HTML() (template.HTML, error) {
	var buf bytes.Buffer
	if err := pageTemplate.ExecuteTemplate(&buf, "tbody", tbodyData{ID: TableBodyID, Rows: t.Rows()}); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

type tbodyData struct {
	ID   string
	Rows []Row
}
