package event

import "errors"

// Event ドメインのエラー定義
var (
	ErrInvalidEvent = errors.New("イベントの内容が不正です")
	ErrDuplicateID  = errors.New("イベントIDが重複しています")
)
