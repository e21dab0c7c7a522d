package commands

import (
	"errors"
	"fmt"

	"github.com/netxfw/eventlog/cmd/eventlog/commands/common"
	apperrors "github.com/netxfw/eventlog/pkg/errors"
	"github.com/spf13/cobra"
)

type addOptions struct {
	eventType string
	level     string
	message   string
}

func newAddCmd() *cobra.Command {
	opts := &addOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append an event to the journal",
		// Short: 向日志追加一条事件
		Long: `Append an event stamped with the current local time.
追加一条带当前本地时间戳的事件。

Examples:
  eventlog add --type USER --level INFO --message "User logged in"
  eventlog add -t SYSTEM -l ERROR -m "Disk failure"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.eventType, "type", "t", "", "Event type: SYSTEM | USER | APP")
	cmd.Flags().StringVarP(&opts.level, "level", "l", "", "Level: INFO | WARNING | ERROR")
	cmd.Flags().StringVarP(&opts.message, "message", "m", "", "Event text")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("level")
	_ = cmd.MarkFlagRequired("message")
	registerEnumCompletions(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, opts *addOptions) error {
	executor := common.NewCommandExecutor(cmd)

	return executor.Do(func() error {
		j, err := executor.Journal()
		if err != nil {
			return err
		}

		r, err := j.Append(cmd.Context(), opts.eventType, opts.level, opts.message)
		if err != nil {
			if errors.Is(err, apperrors.ErrMissingField) {
				return fmt.Errorf("%w: make sure you specified --type, --level and --message", err)
			}
			return err
		}

		executor.PrintSuccess("Event recorded: " + common.FormatRecord(r, false))
		return nil
	})
}
