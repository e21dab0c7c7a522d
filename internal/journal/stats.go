package journal

import "time"

// Key groups records by type and level.
// Key 按类型和级别对记录分组。
type Key struct {
	Type  string
	Level string
}

// Stats aggregates a query result.
// Stats 汇总查询结果。
type Stats struct {
	Total     int
	Counts    map[Key]int
	ByType    map[string]int
	ByLevel   map[string]int
	Malformed int
	Missing   bool
	// Last is the latest record timestamp, zero when none parsed.
	// Last 是最新记录的时间戳，无可解析记录时为零值。
	Last time.Time
}

// Summarize aggregates res.
// Summarize 汇总 res。
func Summarize(res *Result) *Stats {
	s := &Stats{
		Counts:    make(map[Key]int),
		ByType:    make(map[string]int),
		ByLevel:   make(map[string]int),
		Malformed: res.Malformed,
		Missing:   res.Missing,
	}
	for _, r := range res.Records {
		s.Total++
		s.Counts[Key{Type: r.Type, Level: r.Level}]++
		s.ByType[r.Type]++
		s.ByLevel[r.Level]++

		if ts, err := r.Timestamp(); err == nil && ts.After(s.Last) {
			s.Last = ts
		}
	}
	return s
}
