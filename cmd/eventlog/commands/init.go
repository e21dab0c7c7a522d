package commands

import (
	"github.com/netxfw/eventlog/cmd/eventlog/commands/common"
	"github.com/netxfw/eventlog/internal/config"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		// Short: 写入默认配置文件
		Long: `Write a commented default configuration to --config (default: eventlog.yaml).
将带注释的默认配置写入 --config 指定的文件（默认：eventlog.yaml）。`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationSkipConfig: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			executor := common.NewCommandExecutor(cmd)
			return executor.Do(func() error {
				path := config.GetConfigPath()
				if err := config.WriteDefaultConfig(path, force); err != nil {
					return err
				}
				executor.PrintSuccess("Configuration written to " + path)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing configuration file")
	return cmd
}
