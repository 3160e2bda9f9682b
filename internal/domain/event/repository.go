package event

import "context"

// Reader はイベントの読み取り専用インターフェース
// 書き込み系の操作は提供しない
type Reader interface {
	// List はストア順のイベント一覧を返す
	List(ctx context.Context) ([]Event, error)
}
