package journal

import (
	"github.com/netxfw/eventlog/internal/filter"
	"github.com/netxfw/eventlog/internal/record"
	apperrors "github.com/netxfw/eventlog/pkg/errors"
)

// Query holds user-facing filter options. Empty fields impose no constraint.
// Query 保存面向用户的过滤选项，空字段不施加约束。
type Query struct {
	Type    string
	Level   string
	Date    string // YYYY-MM-DD
	Keyword string
	Where   string
	Limit   int // keep the last N matches, 0 means all / 保留最后 N 条，0 表示全部
}

// Criteria converts q to filter criteria, translating Date to the on-disk form.
// Criteria 将 q 转换为过滤条件，并把 Date 转换为磁盘格式。
func (q Query) Criteria() (filter.Criteria, error) {
	c := filter.Criteria{
		Type:    q.Type,
		Level:   q.Level,
		Keyword: q.Keyword,
		Where:   q.Where,
	}
	if q.Date != "" {
		date, err := record.TranslateDate(q.Date)
		if err != nil {
			return filter.Criteria{}, err
		}
		c.Date = date
	}
	return c, nil
}

// Compile validates q and returns the matcher for it.
// Compile 验证 q 并返回对应的匹配器。
func (q Query) Compile() (*filter.Matcher, error) {
	if q.Limit < 0 {
		return nil, apperrors.NewLimitError(q.Limit)
	}
	c, err := q.Criteria()
	if err != nil {
		return nil, err
	}
	return filter.Compile(c)
}

// Result is the outcome of a query.
// Result 是查询结果。
type Result struct {
	Records   []record.Record
	Malformed int  // lines skipped as undecodable / 无法解码而跳过的行数
	Missing   bool // the log file does not exist yet / 日志文件尚不存在
}
