package event

// DefaultEvents は起動時に読み込む組み込みのイベント一覧を返す
func DefaultEvents() []Event {
	return []Event{
		NewEvent(1, "Spring Festival", "2025-06-01"),
		NewEvent(2, "Tech Conference", "2025-06-10"),
		NewEvent(3, "Music Gig", "2025-07-05"),
	}
}
