package filter

import (
	"iter"
	"strings"

	"github.com/netxfw/eventlog/internal/record"
)

// Criteria is a set of optional constraints. An empty field imposes no
// constraint; set fields are AND-combined.
// Criteria 是一组可选约束。空字段不施加约束，非空字段按 AND 组合。
type Criteria struct {
	// Type must equal the record type exactly.
	// Type 必须与记录类型完全相等。
	Type string
	// Level must equal the record level exactly.
	// Level 必须与记录级别完全相等。
	Level string
	// Date is in the on-disk DD.MM.YYYY form, see record.TranslateDate.
	// Date 为磁盘格式 DD.MM.YYYY，参见 record.TranslateDate。
	Date string
	// Keyword must occur in the message (case sensitive).
	// Keyword 必须出现在消息中（区分大小写）。
	Keyword string
	// Where is an optional expr-lang expression, only honored by Matcher.
	// Where 是可选的 expr-lang 表达式，仅由 Matcher 处理。
	Where string
}

// IsEmpty reports whether no constraint is set.
// IsEmpty 报告是否未设置任何约束。
func (c Criteria) IsEmpty() bool {
	return c.Type == "" && c.Level == "" && c.Date == "" && c.Keyword == "" && strings.TrimSpace(c.Where) == ""
}

// Matches reports whether r satisfies the type, level, date and keyword criteria.
// Type, level and date are exact comparisons: a filter "USER" does not match
// "USERX" or "US". Keyword is a contiguous, case-sensitive substring of the
// message only.
// Matches 报告 r 是否满足类型、级别、日期和关键字条件。
// 类型、级别和日期为精确比较；关键字为消息中区分大小写的连续子串。
func Matches(c Criteria, r record.Record) bool {
	if c.Type != "" && r.Type != c.Type {
		return false
	}
	if c.Level != "" && r.Level != c.Level {
		return false
	}
	if c.Date != "" && r.Date != c.Date {
		return false
	}
	if c.Keyword != "" && !strings.Contains(r.Message, c.Keyword) {
		return false
	}
	return true
}

// Apply lazily yields the records satisfying c, in input order.
// The result can be ranged over again whenever records can.
// Apply 按输入顺序惰性产出满足 c 的记录。只要输入可重复遍历，结果也可以。
func Apply(c Criteria, records iter.Seq[record.Record]) iter.Seq[record.Record] {
	return func(yield func(record.Record) bool) {
		for r := range records {
			if !Matches(c, r) {
				continue
			}
			if !yield(r) {
				return
			}
		}
	}
}
