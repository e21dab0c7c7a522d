package commands

import (
	"fmt"

	"github.com/netxfw/eventlog/cmd/eventlog/commands/common"
	"github.com/netxfw/eventlog/internal/follow"
	"github.com/netxfw/eventlog/internal/journal"
	"github.com/netxfw/eventlog/internal/record"
	"github.com/netxfw/eventlog/internal/utils/logger"
	"github.com/spf13/cobra"
)

type showOptions struct {
	query  queryFlags
	follow bool
	count  bool
}

func newShowCmd() *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show journal events",
		// Short: 显示日志事件
		Long: `Show journal events in file order. All filters are combined with AND.
按文件顺序显示日志事件，所有过滤条件按 AND 组合。

Type, level and date match exactly; --keyword is a case sensitive substring
of the message. --where takes an expression over Date, Time, Type, Level and
Message with the helpers Contains, icontains, match, since and until, plus
expr operators such as Message contains "disk".

Examples:
  eventlog show
  eventlog show --type SYSTEM --level ERROR
  eventlog show --date 2025-07-07 --keyword Disk
  eventlog show --where 'since("2025-07-01") && match("^login")'
  eventlog show --limit 20 --follow`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, opts)
		},
	}

	opts.query.register(cmd)
	cmd.Flags().IntVarP(&opts.query.limit, "limit", "n", 0, "Show only the last N matching events")
	cmd.Flags().BoolVarP(&opts.follow, "follow", "F", false, "Keep waiting for new events (Ctrl+C to stop)")
	cmd.Flags().BoolVar(&opts.count, "count", false, "Print the number of matching events")

	return cmd
}

func runShow(cmd *cobra.Command, opts *showOptions) error {
	executor := common.NewCommandExecutor(cmd)
	out := cmd.OutOrStdout()

	return executor.Do(func() error {
		j, err := executor.Journal()
		if err != nil {
			return err
		}

		q := opts.query.query()
		res, err := j.Query(cmd.Context(), q)
		if err != nil {
			return err
		}

		color := executor.UseColor()
		if res.Missing && !opts.follow {
			fmt.Fprintln(out, "Log file not found.")
			return nil
		}
		common.PrintRecords(out, res.Records, color)
		if opts.count {
			common.PrintCount(out, len(res.Records), res.Malformed)
		}

		if opts.follow {
			return followJournal(cmd, j, q, color)
		}
		return nil
	})
}

// followJournal streams events appended after the initial listing.
func followJournal(cmd *cobra.Command, j *journal.Journal, q journal.Query, color bool) error {
	log := logger.Get(cmd.Context())
	out := cmd.OutOrStdout()

	matcher, err := q.Compile()
	if err != nil {
		return err
	}

	path := j.Store().Path()
	log.Infof("[FOLLOW] Waiting for new events in %s", path)
	f := follow.New(path, matcher, follow.Options{Follow: true})
	summary, err := f.Run(cmd.Context(), func(r record.Record) error {
		fmt.Fprintln(out, common.FormatRecord(r, color))
		return nil
	})
	if summary.Malformed > 0 {
		log.Warnf("[FOLLOW] Skipped %d malformed line(s)", summary.Malformed)
	}
	return err
}
