package application

// ModeKind はモード選択子の種別
type ModeKind int

const (
	ModeSuccess ModeKind = iota
	ModeFail
	ModeError
	ModeUnrecognized
)

// DefaultMode はモード未指定時に使う値
const DefaultMode = "success"

// Mode はクエリパラメータ mode を解釈した結果
// Raw は受け取った元の文字列（未指定なら DefaultMode）
type Mode struct {
	Kind ModeKind
	Raw  string
}

// ParseMode はモード文字列を解釈する
// present が false（パラメータなし）の場合は success とみなす
// 空文字列が明示された場合は不明なモードとして扱う
func ParseMode(raw string, present bool) Mode {
	if !present {
		return Mode{Kind: ModeSuccess, Raw: DefaultMode}
	}
	switch raw {
	case "success":
		return Mode{Kind: ModeSuccess, Raw: raw}
	case "fail":
		return Mode{Kind: ModeFail, Raw: raw}
	case "error":
		return Mode{Kind: ModeError, Raw: raw}
	default:
		return Mode{Kind: ModeUnrecognized, Raw: raw}
	}
}

func (k ModeKind) String() string {
	switch k {
	case ModeSuccess:
		return "success"
	case ModeFail:
		return "fail"
	case ModeError:
		return "error"
	case ModeUnrecognized:
		return "unrecognized"
	}
	return "unknown"
}
