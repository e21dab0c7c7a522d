package filter

import (
	"iter"
	"regexp"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/ast"
	"github.com/expr-lang/expr/vm"
	"github.com/netxfw/eventlog/internal/record"
	"github.com/netxfw/eventlog/internal/utils/logger"
	apperrors "github.com/netxfw/eventlog/pkg/errors"
)

// maxCachedRegex bounds the shared regex cache used by Match.
const maxCachedRegex = 1000

var (
	regexCache sync.Map
	regexCount int64
)

// Env is the environment a Where expression runs against.
// Usage: Type == "USER" && Level != "INFO" && Contains("timeout")
// Env 是 Where 表达式的执行环境。
type Env struct {
	Date    string
	Time    string
	Type    string
	Level   string
	Message string
}

// Contains checks if the message contains needle (case sensitive).
// Contains 检查消息是否包含 needle（区分大小写）。
func (e *Env) Contains(needle string) bool {
	return strings.Contains(e.Message, needle)
}

// IContains checks if the message contains needle (case insensitive).
// IContains 检查消息是否包含 needle（不区分大小写）。
func (e *Env) IContains(needle string) bool {
	return strings.Contains(strings.ToLower(e.Message), strings.ToLower(needle))
}

// Match checks if the message matches the given regular expression.
// Match 检查消息是否匹配给定的正则表达式。
func (e *Env) Match(pattern string) bool {
	if v, ok := regexCache.Load(pattern); ok {
		return v.(*regexp.Regexp).MatchString(e.Message)
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		logger.Get(nil).Warnf("[FILTER] Invalid regex pattern %q: %v", pattern, err)
		return false
	}
	if atomic.LoadInt64(&regexCount) < maxCachedRegex {
		regexCache.Store(pattern, re)
		atomic.AddInt64(&regexCount, 1)
	}
	return re.MatchString(e.Message)
}

// Since checks if the record date is on or after a YYYY-MM-DD date.
// Since 检查记录日期是否不早于 YYYY-MM-DD 日期。
func (e *Env) Since(userDate string) bool {
	day, bound, ok := e.compareDates(userDate)
	return ok && !day.Before(bound)
}

// Until checks if the record date is on or before a YYYY-MM-DD date.
// Until 检查记录日期是否不晚于 YYYY-MM-DD 日期。
func (e *Env) Until(userDate string) bool {
	day, bound, ok := e.compareDates(userDate)
	return ok && !day.After(bound)
}

func (e *Env) compareDates(userDate string) (time.Time, time.Time, bool) {
	bound, err := record.ParseUserDate(userDate)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	day, err := time.ParseInLocation(record.DateLayout, e.Date, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return day, bound, true
}

// helperAliases maps lowercase helper names to the exported Env methods.
// contains is an expr operator and cannot be called, use Contains instead.
// helperAliases 将小写辅助函数名映射到导出的 Env 方法。
var helperAliases = map[string]string{
	"icontains": "IContains",
	"match":     "Match",
	"since":     "Since",
	"until":     "Until",
}

// helperPatcher renames aliased callees on the parsed tree, so string
// literals that happen to look like calls are left untouched.
// helperPatcher 在语法树上重命名别名调用，字符串字面量保持不变。
type helperPatcher struct{}

// Visit implements ast.Visitor.
func (helperPatcher) Visit(node *ast.Node) {
	call, ok := (*node).(*ast.CallNode)
	if !ok {
		return
	}
	ident, ok := call.Callee.(*ast.IdentifierNode)
	if !ok {
		return
	}
	if name, ok := helperAliases[ident.Value]; ok {
		ident.Value = name
	}
}

// Matcher evaluates Criteria including the compiled Where expression.
// Matcher 评估包含已编译 Where 表达式的 Criteria。
type Matcher struct {
	criteria Criteria
	program  *vm.Program
}

// Compile validates c and compiles its Where expression. A bad expression is
// reported as ErrInvalidExpression before any record is read.
// Compile 验证 c 并编译其 Where 表达式，无效表达式在读取任何记录前返回 ErrInvalidExpression。
func Compile(c Criteria) (*Matcher, error) {
	m := &Matcher{criteria: c}
	src := strings.TrimSpace(c.Where)
	if src == "" {
		return m, nil
	}

	program, err := expr.Compile(src, expr.Env(&Env{}), expr.Patch(helperPatcher{}), expr.AsBool())
	if err != nil {
		return nil, apperrors.NewExpressionError(c.Where, err)
	}
	m.program = program
	return m, nil
}

// Criteria returns the criteria the matcher was compiled from.
func (m *Matcher) Criteria() Criteria {
	return m.criteria
}

// Match reports whether r satisfies every criterion. An expression that fails
// at run time counts as no match for that record only.
// Match 报告 r 是否满足全部条件。运行时出错的表达式仅视为该记录不匹配。
func (m *Matcher) Match(r record.Record) bool {
	if !Matches(m.criteria, r) {
		return false
	}
	if m.program == nil {
		return true
	}

	env := &Env{
		Date:    r.Date,
		Time:    r.Time,
		Type:    r.Type,
		Level:   r.Level,
		Message: r.Message,
	}
	output, err := expr.Run(m.program, env)
	if err != nil {
		return false
	}
	matched, ok := output.(bool)
	return ok && matched
}

// Apply lazily yields the records accepted by Match, in input order.
// Apply 按输入顺序惰性产出 Match 接受的记录。
func (m *Matcher) Apply(records iter.Seq[record.Record]) iter.Seq[record.Record] {
	return func(yield func(record.Record) bool) {
		for r := range records {
			if !m.Match(r) {
				continue
			}
			if !yield(r) {
				return
			}
		}
	}
}
