package record

import (
	"iter"
	"strings"
	"time"
	"unicode"

	apperrors "github.com/netxfw/eventlog/pkg/errors"
)

const (
	// fieldCount is the maximum number of tokens in a line; the last one is the message.
	// fieldCount 是一行中的最大字段数，最后一个是消息。
	fieldCount = 5

	// requiredFields are date, time, type and level.
	// requiredFields 为日期、时间、类型和级别。
	requiredFields = 4
)

// Encode renders r as a single newline-terminated line:
//
//	DD.MM.YYYY HH:MM:SS TYPE LEVEL message
//
// The message is written verbatim. A message containing a newline breaks
// the one-record-per-line layout and corrupts the lines after it.
// Encode 将 r 渲染为以换行符结尾的单行。消息原样写入；
// 包含换行符的消息会破坏每行一条记录的格式。
func Encode(r Record) string {
	var b strings.Builder
	b.Grow(len(r.Date) + len(r.Time) + len(r.Type) + len(r.Level) + len(r.Message) + fieldCount)
	b.WriteString(r.Date)
	b.WriteByte(' ')
	b.WriteString(r.Time)
	b.WriteByte(' ')
	b.WriteString(r.Type)
	b.WriteByte(' ')
	b.WriteString(r.Level)
	b.WriteByte(' ')
	b.WriteString(r.Message)
	b.WriteByte('\n')
	return b.String()
}

// Decode parses a stored line. The line is split on whitespace into at most
// five tokens so that the message keeps its inner spaces. Fewer than four
// tokens is ErrMalformedRecord. Type and level are not validated.
// Decode 解析一行存储的记录。按空白最多拆分为五个字段，使消息保留内部空格。
// 少于四个字段返回 ErrMalformedRecord，类型和级别不做校验。
func Decode(line string) (Record, error) {
	trimmed := strings.TrimSpace(line)
	tokens := splitFields(trimmed, fieldCount)
	if len(tokens) < requiredFields {
		return Record{}, apperrors.NewMalformedRecordError(trimmed, len(tokens))
	}

	r := Record{
		Date:  tokens[0],
		Time:  tokens[1],
		Type:  tokens[2],
		Level: tokens[3],
	}
	if len(tokens) == fieldCount {
		r.Message = tokens[4]
	}
	return r, nil
}

// splitFields splits s on runs of whitespace into at most n fields.
// The last field is the untouched remainder of s.
// splitFields 按连续空白将 s 拆分为最多 n 个字段，最后一个字段为 s 的剩余部分。
func splitFields(s string, n int) []string {
	fields := make([]string, 0, n)
	for len(fields) < n-1 {
		s = strings.TrimLeftFunc(s, unicode.IsSpace)
		if s == "" {
			return fields
		}
		end := strings.IndexFunc(s, unicode.IsSpace)
		if end < 0 {
			return append(fields, s)
		}
		fields = append(fields, s[:end])
		s = s[end:]
	}
	if rest := strings.TrimLeftFunc(s, unicode.IsSpace); rest != "" {
		fields = append(fields, rest)
	}
	return fields
}

// TranslateDate converts a YYYY-MM-DD date into the on-disk DD.MM.YYYY form
// so that date filters compare strings without re-parsing stored lines.
// TranslateDate 将 YYYY-MM-DD 日期转换为磁盘上的 DD.MM.YYYY 格式，
// 使日期过滤可以直接比较字符串。
func TranslateDate(userDate string) (string, error) {
	t, err := ParseUserDate(userDate)
	if err != nil {
		return "", err
	}
	return t.Format(DateLayout), nil
}

// ParseUserDate parses a YYYY-MM-DD calendar date in local time.
// Surrounding whitespace is rejected.
// ParseUserDate 以本地时间解析 YYYY-MM-DD 日历日期，不接受首尾空白。
func ParseUserDate(userDate string) (time.Time, error) {
	t, err := time.ParseInLocation(UserDateLayout, userDate, time.Local)
	if err != nil {
		return time.Time{}, apperrors.NewDateFormatError(userDate)
	}
	return t, nil
}

// DecodeLines lazily decodes lines, dropping malformed ones.
// onSkip, when set, is called for every dropped line.
// DecodeLines 惰性解码各行并丢弃格式错误的行；onSkip 非空时对每个丢弃的行调用。
func DecodeLines(lines iter.Seq[string], onSkip func(line string, err error)) iter.Seq[Record] {
	return func(yield func(Record) bool) {
		for line := range lines {
			r, err := Decode(line)
			if err != nil {
				if onSkip != nil {
					onSkip(line, err)
				}
				continue
			}
			if !yield(r) {
				return
			}
		}
	}
}
