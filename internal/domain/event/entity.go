package event

// DateLayout はイベント日付の形式（ISO 8601 の暦日）
const DateLayout = "2006-01-02"

// Event はイベントエンティティを表す
type Event struct {
	ID   int    `json:"id" validate:"gt=0"`
	Name string `json:"name" validate:"required"`
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

// NewEvent は新しいイベントを作成する
func NewEvent(id int, name, date string) Event {
	return Event{ID: id, Name: name, Date: date}
}
