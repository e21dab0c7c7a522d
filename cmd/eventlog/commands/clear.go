package commands

import (
	"fmt"

	"github.com/netxfw/eventlog/cmd/eventlog/commands/common"
	"github.com/spf13/cobra"
)

func newClearCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all journal events",
		// Short: 删除所有日志事件
		Long: `Delete all journal events. The file itself is kept.
删除所有日志事件，文件本身会保留。

使用 --force 标志跳过确认提示。

Examples:
  eventlog clear           # 清空日志（需要确认）
  eventlog clear --force   # 清空日志（跳过确认）`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClear(cmd, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip the confirmation prompt")
	return cmd
}

func runClear(cmd *cobra.Command, force bool) error {
	executor := common.NewCommandExecutor(cmd)
	out := cmd.OutOrStdout()

	return executor.Do(func() error {
		j, err := executor.Journal()
		if err != nil {
			return err
		}

		exists, err := j.Store().Exists()
		if err != nil {
			return err
		}
		if !exists {
			fmt.Fprintln(out, "Log has not been created yet.")
			return nil
		}

		// 显示警告并确认（除非使用 --force）
		// Show warning and confirm (unless --force is used)
		if !force {
			fmt.Fprintf(out, "[WARNING] This will delete all events from %s!\n", j.Store().Path())
			if !common.AskConfirmation(cmd.InOrStdin(), out, "Do you really want to delete all records?") {
				fmt.Fprintln(out, "[CANCELLED] Clear cancelled")
				return nil
			}
		}

		if err := j.Clear(cmd.Context(), true); err != nil {
			return err
		}
		executor.PrintSuccess("Journal cleared.")
		return nil
	})
}
