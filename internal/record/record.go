package record

import (
	"time"

	apperrors "github.com/netxfw/eventlog/pkg/errors"
)

const (
	// DateLayout is the on-disk date format (DD.MM.YYYY).
	// DateLayout 是磁盘上的日期格式（DD.MM.YYYY）。
	DateLayout = "02.01.2006"

	// TimeLayout is the on-disk 24-hour time format (HH:MM:SS).
	// TimeLayout 是磁盘上的 24 小时制时间格式（HH:MM:SS）。
	TimeLayout = "15:04:05"

	// UserDateLayout is the date format accepted from the command line (YYYY-MM-DD).
	// UserDateLayout 是命令行接受的日期格式（YYYY-MM-DD）。
	UserDateLayout = "2006-01-02"
)

// EventType is the closed set of event sources.
// EventType 是事件来源的封闭集合。
type EventType string

const (
	TypeSystem EventType = "SYSTEM"
	TypeUser   EventType = "USER"
	TypeApp    EventType = "APP"
)

// EventTypes lists the valid event types in display order.
// EventTypes 按显示顺序列出有效的事件类型。
var EventTypes = []EventType{TypeSystem, TypeUser, TypeApp}

// ParseEventType validates an event type string. Matching is exact.
// ParseEventType 验证事件类型字符串，精确匹配。
func ParseEventType(s string) (EventType, error) {
	for _, t := range EventTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", apperrors.NewEventTypeError(s)
}

// Level is the closed set of severities.
// Level 是严重级别的封闭集合。
type Level string

const (
	LevelInfo    Level = "INFO"
	LevelWarning Level = "WARNING"
	LevelError   Level = "ERROR"
)

// Levels lists the valid levels in ascending severity.
// Levels 按严重程度升序列出有效级别。
var Levels = []Level{LevelInfo, LevelWarning, LevelError}

// ParseLevel validates a level string. Matching is exact.
// ParseLevel 验证级别字符串，精确匹配。
func ParseLevel(s string) (Level, error) {
	for _, l := range Levels {
		if string(l) == s {
			return l, nil
		}
	}
	return "", apperrors.NewLevelError(s)
}

// ANSI color codes used when rendering levels.
const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
)

// Color returns the ANSI escape sequence used to render the level.
// Color 返回用于渲染该级别的 ANSI 转义序列。
func (l Level) Color() string {
	switch l {
	case LevelInfo:
		return colorGreen
	case LevelWarning:
		return colorYellow
	case LevelError:
		return colorRed
	default:
		return ""
	}
}

// ColorReset is the ANSI sequence that ends a colored span.
const ColorReset = colorReset

// Record is one journal entry.
// Type and Level are kept as opaque strings so that lines with unknown
// values still decode, display and filter.
// Record 是一条日志记录。
// Type 和 Level 保存为原始字符串，以便包含未知值的行仍可解码、显示和过滤。
type Record struct {
	Date    string // DD.MM.YYYY
	Time    string // HH:MM:SS
	Type    string
	Level   string
	Message string
}

// New builds a record captured at ts. Sub-second precision and zone are dropped.
// New 创建在 ts 时刻捕获的记录，丢弃亚秒精度和时区。
func New(ts time.Time, eventType EventType, level Level, message string) Record {
	return Record{
		Date:    ts.Format(DateLayout),
		Time:    ts.Format(TimeLayout),
		Type:    string(eventType),
		Level:   string(level),
		Message: message,
	}
}

// Timestamp parses the date and time tokens back into a local time.
// Timestamp 将日期和时间字段解析回本地时间。
func (r Record) Timestamp() (time.Time, error) {
	return time.ParseInLocation(DateLayout+" "+TimeLayout, r.Date+" "+r.Time, time.Local)
}
