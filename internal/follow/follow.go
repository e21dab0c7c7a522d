package follow

import (
	"context"
	"io"

	"github.com/netxfw/eventlog/internal/filter"
	"github.com/netxfw/eventlog/internal/record"
	"github.com/netxfw/eventlog/internal/utils/logger"
	"github.com/nxadm/tail"
)

// Options controls where reading starts and whether it keeps waiting.
// Options 控制读取的起始位置以及是否持续等待。
type Options struct {
	// FromStart replays the lines already in the file.
	// FromStart 重放文件中已有的行。
	FromStart bool
	// Follow keeps waiting for new lines until the context is cancelled.
	// When false the file is read to EOF and Run returns.
	// Follow 持续等待新行直到 context 取消；为 false 时读取到 EOF 后返回。
	Follow bool
}

// Summary counts what a run has seen.
// Summary 统计一次运行所处理的内容。
type Summary struct {
	Matched   int
	Malformed int
}

// Follower streams matching records from a growing log file.
// Follower 从不断增长的日志文件中流式输出匹配的记录。
type Follower struct {
	path    string
	matcher *filter.Matcher
	opts    Options
}

// New creates a follower for path. A nil matcher accepts every record.
// New 为 path 创建跟随器，matcher 为 nil 时接受所有记录。
func New(path string, matcher *filter.Matcher, opts Options) *Follower {
	if matcher == nil {
		matcher, _ = filter.Compile(filter.Criteria{})
	}
	return &Follower{path: path, matcher: matcher, opts: opts}
}

func (f *Follower) config() tail.Config {
	cfg := tail.Config{
		Follow:    f.opts.Follow,
		ReOpen:    f.opts.Follow, // Handle log rotation and clear
		MustExist: !f.opts.Follow,
		Poll:      true, // Fallback if inotify fails
		Logger:    tail.DiscardingLogger,
	}
	if !f.opts.FromStart {
		cfg.Location = &tail.SeekInfo{Offset: 0, Whence: io.SeekEnd}
	}
	return cfg
}

// Run hands every matching record to handle until the context is cancelled,
// handle fails, or (without Follow) EOF is reached. Undecodable lines are skipped.
// Run 将每条匹配记录交给 handle，直到 context 取消、handle 失败或（非 Follow 模式下）到达 EOF。
// 无法解码的行会被跳过。
func (f *Follower) Run(ctx context.Context, handle func(record.Record) error) (Summary, error) {
	log := logger.Get(ctx)
	var summary Summary

	t, err := tail.TailFile(f.path, f.config())
	if err != nil {
		return summary, err
	}
	defer t.Cleanup()
	log.Debugf("[FOLLOW] Tailing %s (follow=%v, from_start=%v)", f.path, f.opts.Follow, f.opts.FromStart)

	for {
		select {
		case <-ctx.Done():
			return summary, t.Stop()
		case line, ok := <-t.Lines:
			if !ok {
				return summary, t.Wait()
			}
			if line.Err != nil {
				log.Warnf("[FOLLOW] Error reading %s: %v", f.path, line.Err)
				continue
			}

			r, err := record.Decode(line.Text)
			if err != nil {
				summary.Malformed++
				log.Debugf("[FOLLOW] Skipping line: %v", err)
				continue
			}
			if !f.matcher.Match(r) {
				continue
			}

			summary.Matched++
			if err := handle(r); err != nil {
				_ = t.Stop()
				return summary, err
			}
		}
	}
}
