package ui

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

var ErrNoSuchRow = errors.New("指定された行が存在しません")

// Notifier はユーザーへの通知を行う
type Notifier interface {
	Notify(message string)
}

// ActionHandler はアクションボタンのクリックを処理する
type ActionHandler struct {
	notifier Notifier
}

// NewActionHandler はActionHandlerを作成する
func NewActionHandler(n Notifier) *ActionHandler {
	return &ActionHandler{notifier: n}
}

// Click は現在 index 番目にある行のボタンからIDを読み取り、通知する
// 再描画後は新しい行のIDが使われる
func (h *ActionHandler) Click(t *Table, index int) (int, error) {
	row, ok := t.Row(index)
	if !ok {
		return 0, fmt.Errorf("%w: index=%d", ErrNoSuchRow, index)
	}
	id := row.Button.EventID
	h.notifier.Notify(ClickMessage(id))
	return id, nil
}

// ClickMessage はクリック時の通知文言を返す
func ClickMessage(id int) string {
	return fmt.Sprintf("You clicked on event ID: %d", id)
}

// LogNotifier はロガーに通知内容を出力する
type LogNotifier struct {
	log *zap.Logger
}

// NewLogNotifier はLogNotifierを作成する
func NewLogNotifier(l *zap.Logger) *LogNotifier {
	return &LogNotifier{log: l}
}

func (n *LogNotifier) Notify(message string) {
	n.log.Info(message)
}
