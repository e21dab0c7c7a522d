package commands

import (
	"github.com/netxfw/eventlog/internal/journal"
	"github.com/netxfw/eventlog/internal/record"
	"github.com/spf13/cobra"
)

// queryFlags are the filter flags shared by show and stats.
type queryFlags struct {
	eventType string
	level     string
	date      string
	keyword   string
	where     string
	limit     int
}

func (q *queryFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&q.eventType, "type", "t", "", "Only events of this type: SYSTEM | USER | APP")
	flags.StringVarP(&q.level, "level", "l", "", "Only events of this level: INFO | WARNING | ERROR")
	flags.StringVarP(&q.date, "date", "d", "", "Only events of this day (YYYY-MM-DD)")
	flags.StringVarP(&q.keyword, "keyword", "k", "", "Only events whose message contains this text (case sensitive)")
	flags.StringVarP(&q.where, "where", "w", "", `Filter expression, e.g. 'Level != "INFO" && icontains("disk")'`)
	registerEnumCompletions(cmd)
}

func (q *queryFlags) query() journal.Query {
	return journal.Query{
		Type:    q.eventType,
		Level:   q.level,
		Date:    q.date,
		Keyword: q.keyword,
		Where:   q.where,
		Limit:   q.limit,
	}
}

// registerEnumCompletions completes --type and --level with the known values.
func registerEnumCompletions(cmd *cobra.Command) {
	types := make([]string, 0, len(record.EventTypes))
	for _, t := range record.EventTypes {
		types = append(types, string(t))
	}
	levels := make([]string, 0, len(record.Levels))
	for _, l := range record.Levels {
		levels = append(levels, string(l))
	}
	_ = cmd.RegisterFlagCompletionFunc("type", cobra.FixedCompletions(types, cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc("level", cobra.FixedCompletions(levels, cobra.ShellCompDirectiveNoFileComp))
}
