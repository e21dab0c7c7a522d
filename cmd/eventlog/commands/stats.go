package commands

import (
	"github.com/netxfw/eventlog/cmd/eventlog/commands/common"
	"github.com/netxfw/eventlog/internal/metrics"
	"github.com/netxfw/eventlog/internal/utils/logger"
	"github.com/spf13/cobra"
)

type statsOptions struct {
	query    queryFlags
	textfile string
	push     string
	job      string
}

func newStatsCmd() *cobra.Command {
	opts := &statsOptions{}

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print journal statistics as Prometheus metrics",
		// Short: 以 Prometheus 指标格式输出日志统计
		Long: `Count journal events per type and level and print them in the
Prometheus text format. Accepts the same filters as show.
按类型和级别统计日志事件，并以 Prometheus 文本格式输出，支持与 show 相同的过滤条件。

The metrics can also be written to a node_exporter textfile or pushed to a
Pushgateway; both default to the metrics section of the configuration. A
failed push is reported on stderr and the metrics are still printed.

Examples:
  eventlog stats
  eventlog stats --date 2025-07-07
  eventlog stats --textfile /var/lib/node_exporter/eventlog.prom
  eventlog stats --push http://localhost:9091 --job eventlog`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd, opts)
		},
	}

	opts.query.register(cmd)
	cmd.Flags().StringVar(&opts.textfile, "textfile", "", "Also write the metrics atomically to this file")
	cmd.Flags().StringVar(&opts.push, "push", "", "Also push the metrics to this Pushgateway URL")
	cmd.Flags().StringVar(&opts.job, "job", "", "Pushgateway job name (default from configuration)")

	return cmd
}

func runStats(cmd *cobra.Command, opts *statsOptions) error {
	executor := common.NewCommandExecutor(cmd)
	log := logger.Get(cmd.Context())

	return executor.Do(func() error {
		cfg, err := executor.Config()
		if err != nil {
			return err
		}
		j, err := executor.Journal()
		if err != nil {
			return err
		}

		s, err := j.Stats(cmd.Context(), opts.query.query())
		if err != nil {
			return err
		}
		if s.Missing {
			executor.PrintWarning("Log file not found.")
		}

		collector := metrics.NewCollector()
		collector.Update(s)

		textfile := firstNonEmpty(opts.textfile, cfg.Metrics.TextfilePath)
		if textfile != "" {
			if err := collector.WriteTextFile(textfile); err != nil {
				return err
			}
			log.Infof("[METRICS] Wrote %s", textfile)
		}

		if url := firstNonEmpty(opts.push, cfg.Metrics.PushGateway); url != "" {
			job := firstNonEmpty(opts.job, cfg.Metrics.Job)
			log.Infof("[METRICS] Pushing metrics to %s (job=%s)", url, job)
			if err := collector.Push(cmd.Context(), url, job); err != nil {
				log.Warnf("[METRICS] Push failed: %v", err)
				executor.PrintError("Push failed: " + err.Error())
			}
		}

		return collector.WriteText(cmd.OutOrStdout())
	})
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
