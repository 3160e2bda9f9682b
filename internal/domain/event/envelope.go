package event

import (
	"encoding/json"
)

// Status はエンベロープの種別
type Status string

const (
	StatusSuccess Status = "success"
	StatusFail    Status = "fail"
	StatusError   Status = "error"
)

// 固定のエラーメッセージ
const (
	MessageBadRequest     = "Bad request while fetching events."
	MessageInternalError  = "Internal server error while fetching events."
	invalidModeMessageFmt = "Invalid mode: "
)

// Envelope はイベントAPIのレスポンス形式
// Status によって Data と Message のどちらが有効かが決まる
type Envelope struct {
	Status  Status  `json:"status"`
	Data    []Event `json:"data,omitempty"`
	Message string  `json:"message,omitempty"`
}

// Success は成功エンベロープを作成する
func Success(events []Event) Envelope {
	if events == nil {
		events = []Event{}
	}
	return Envelope{Status: StatusSuccess, Data: events}
}

// Fail は失敗エンベロープを作成する
func Fail(message string) Envelope {
	return Envelope{Status: StatusFail, Message: message}
}

// Error はエラーエンベロープを作成する
func Error(message string) Envelope {
	return Envelope{Status: StatusError, Message: message}
}

// InvalidMode は不明なモード用の失敗エンベロープを作成する
// 入力値はそのまま埋め込む
func InvalidMode(mode string) Envelope {
	return Fail(invalidModeMessageFmt + mode)
}

type successBody struct {
	Status Status  `json:"status"`
	Data   []Event `json:"data"`
}

type messageBody struct {
	Status  Status `json:"status"`
	Message string `json:"message"`
}

// MarshalJSON は success なら data のみ、それ以外は message のみを出力する
func (e Envelope) MarshalJSON() ([]byte, error) {
	if e.Status == StatusSuccess {
		data := e.Data
		if data == nil {
			data = []Event{}
		}
		return json.Marshal(successBody{Status: e.Status, Data: data})
	}
	return json.Marshal(messageBody{Status: e.Status, Message: e.Message})
}
