package common

import (
	"fmt"
	"io"
	"strings"

	"github.com/netxfw/eventlog/internal/record"
)

// FormatRecord renders r in the on-disk layout. With color the level is
// wrapped in its ANSI color; unknown levels stay plain.
// FormatRecord 以磁盘格式渲染 r。启用颜色时级别会带上 ANSI 颜色，未知级别保持原样。
func FormatRecord(r record.Record, color bool) string {
	if color {
		if c := record.Level(r.Level).Color(); c != "" {
			r.Level = c + r.Level + record.ColorReset
		}
	}
	return strings.TrimSuffix(record.Encode(r), "\n")
}

// PrintRecords writes one line per record.
// PrintRecords 每条记录输出一行。
func PrintRecords(w io.Writer, records []record.Record, color bool) {
	for _, r := range records {
		fmt.Fprintln(w, FormatRecord(r, color))
	}
}

// PrintCount writes the footer of show --count.
// PrintCount 输出 show --count 的汇总行。
func PrintCount(w io.Writer, shown, malformed int) {
	fmt.Fprintf(w, "\nTotal: %d event(s)", shown)
	if malformed > 0 {
		fmt.Fprintf(w, ", %d malformed line(s) skipped", malformed)
	}
	fmt.Fprintln(w)
}
