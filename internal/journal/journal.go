package journal

import (
	"context"
	"fmt"
	"io/fs"
	"slices"
	"strings"
	"time"

	"github.com/netxfw/eventlog/internal/record"
	"github.com/netxfw/eventlog/internal/utils/logger"
	apperrors "github.com/netxfw/eventlog/pkg/errors"
	"github.com/netxfw/eventlog/pkg/storage"
)

// Journal appends, queries and clears event records held in a Store.
// Journal 对 Store 中保存的事件记录进行追加、查询和清空。
type Journal struct {
	store storage.Store
	now   func() time.Time
}

// New creates a journal over store using the wall clock.
// New 基于 store 创建使用系统时钟的日志。
func New(store storage.Store) *Journal {
	return &Journal{store: store, now: time.Now}
}

// WithClock replaces the clock used to stamp appended records.
// WithClock 替换用于为追加记录打时间戳的时钟。
func (j *Journal) WithClock(now func() time.Time) *Journal {
	j.now = now
	return j
}

// Store returns the underlying store.
func (j *Journal) Store() storage.Store {
	return j.store
}

// Append validates the inputs, stamps the current time and appends one record.
// Append 验证输入、记录当前时间并追加一条记录。
func (j *Journal) Append(ctx context.Context, eventType, level, message string) (record.Record, error) {
	log := logger.Get(ctx)

	switch {
	case eventType == "":
		return record.Record{}, apperrors.NewMissingFieldError("type")
	case level == "":
		return record.Record{}, apperrors.NewMissingFieldError("level")
	case strings.TrimSpace(message) == "":
		return record.Record{}, apperrors.NewMissingFieldError("message")
	}

	t, err := record.ParseEventType(eventType)
	if err != nil {
		return record.Record{}, err
	}
	l, err := record.ParseLevel(level)
	if err != nil {
		return record.Record{}, err
	}

	r := record.New(j.now(), t, l, message)
	if err := j.store.Append(record.Encode(r)); err != nil {
		return record.Record{}, fmt.Errorf("failed to append to %s: %w", j.store.Path(), err)
	}
	log.Debugf("[JOURNAL] Appended %s %s record to %s", r.Type, r.Level, j.store.Path())
	return r, nil
}

// Query reads the journal and returns the records satisfying q in file order.
// Invalid dates, expressions and limits fail before anything is read.
// Query 读取日志并按文件顺序返回满足 q 的记录。
// 无效的日期、表达式和数量限制会在读取之前失败。
func (j *Journal) Query(ctx context.Context, q Query) (*Result, error) {
	log := logger.Get(ctx)

	matcher, err := q.Compile()
	if err != nil {
		return nil, err
	}

	exists, err := j.store.Exists()
	if err != nil {
		return nil, err
	}
	if !exists {
		log.Debugf("[JOURNAL] %s does not exist yet", j.store.Path())
		return &Result{Missing: true}, nil
	}

	lines, err := j.store.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", j.store.Path(), err)
	}

	res := &Result{}
	onSkip := func(line string, err error) {
		res.Malformed++
		log.Debugf("[JOURNAL] Skipping line: %v", err)
	}
	decoded := record.DecodeLines(slices.Values(lines), onSkip)
	res.Records = slices.Collect(matcher.Apply(decoded))

	if q.Limit > 0 && len(res.Records) > q.Limit {
		res.Records = res.Records[len(res.Records)-q.Limit:]
	}
	if res.Malformed > 0 {
		log.Warnf("[JOURNAL] Skipped %d malformed line(s) in %s", res.Malformed, j.store.Path())
	}
	return res, nil
}

// Clear truncates the journal. It refuses unless confirmed is true.
// Clear 清空日志，confirmed 为 false 时拒绝执行。
func (j *Journal) Clear(ctx context.Context, confirmed bool) error {
	if !confirmed {
		return apperrors.ErrClearNotConfirmed
	}

	exists, err := j.store.Exists()
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NewFileError(j.store.Path(), fs.ErrNotExist)
	}

	if err := j.store.Truncate(); err != nil {
		return err
	}
	logger.Get(ctx).Debugf("[JOURNAL] Cleared %s", j.store.Path())
	return nil
}

// Stats runs q and aggregates the matching records.
// Stats 执行 q 并汇总匹配的记录。
func (j *Journal) Stats(ctx context.Context, q Query) (*Stats, error) {
	res, err := j.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	return Summarize(res), nil
}
