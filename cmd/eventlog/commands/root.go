package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/netxfw/eventlog/cmd/eventlog/commands/common"
	"github.com/netxfw/eventlog/internal/config"
	"github.com/netxfw/eventlog/internal/runtime"
	"github.com/netxfw/eventlog/internal/utils/logger"
	"github.com/spf13/cobra"
)

// annotationSkipConfig marks commands that must run even with a broken config.
const annotationSkipConfig = "eventlog/skip-config"

// legacyOptions holds the one-shot root flags: eventlog --add|--show|--clear.
type legacyOptions struct {
	add       bool
	show      bool
	clear     bool
	eventType string
	level     string
	message   string
	date      string
	keyword   string
}

// NewRootCmd builds the eventlog command tree.
// NewRootCmd 构建 eventlog 命令树。
func NewRootCmd() *cobra.Command {
	legacy := &legacyOptions{}

	root := &cobra.Command{
		Use:   "eventlog",
		Short: "Keep a plain-text event journal",
		// Short: 维护纯文本事件日志
		Long: `eventlog appends timestamped events to a plain-text journal,
shows them filtered by type, level, date and keyword, and clears the journal.
eventlog 将带时间戳的事件追加到纯文本日志中，
按类型、级别、日期和关键字过滤显示，并可清空日志。

Each line has the form:
  DD.MM.YYYY HH:MM:SS TYPE LEVEL message

Examples:
  eventlog add --type USER --level INFO --message "User logged in"
  eventlog show --type SYSTEM --date 2025-07-07
  eventlog --show --keyword Disk
  eventlog clear`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: persistentPreRun,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLegacy(cmd, legacy)
		},
	}

	// Config file path
	// 配置文件路径
	root.PersistentFlags().StringVarP(&runtime.ConfigPath, "config", "c", "", fmt.Sprintf("Path to configuration file (default: %s)", config.DefaultConfigPath))
	root.PersistentFlags().StringVarP(&runtime.LogFile, "file", "f", "", "Event log file, overrides log_file from the configuration")
	root.PersistentFlags().BoolVar(&runtime.NoColor, "no-color", false, "Disable colored levels")

	// One-shot flags kept for scripts using the --add/--show/--clear form
	// 为使用原有接口的脚本保留的一次性标志
	flags := root.Flags()
	flags.BoolVar(&legacy.add, "add", false, "Append an event (requires --type, --level and --message)")
	flags.BoolVar(&legacy.show, "show", false, "Show the journal")
	flags.BoolVar(&legacy.clear, "clear", false, "Clear the journal")
	flags.StringVar(&legacy.eventType, "type", "", "Event type: SYSTEM | USER | APP")
	flags.StringVar(&legacy.level, "level", "", "Level: INFO | WARNING | ERROR")
	flags.StringVar(&legacy.message, "message", "", "Event text")
	flags.StringVar(&legacy.date, "date", "", "Only events of this day (YYYY-MM-DD)")
	flags.StringVar(&legacy.keyword, "keyword", "", "Only events whose message contains this text")
	root.MarkFlagsMutuallyExclusive("add", "show", "clear")
	root.MarkFlagsOneRequired("add", "show", "clear")
	registerEnumCompletions(root)

	root.AddCommand(newAddCmd())
	root.AddCommand(newShowCmd())
	root.AddCommand(newClearCmd())
	root.AddCommand(newStatsCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newVersionCmd())

	// Replace default completion command with custom one (no powershell)
	// 用自定义补全命令替换默认命令（不含 powershell）
	root.CompletionOptions.DisableDefaultCmd = true
	root.AddCommand(createCustomCompletionCmd(root))

	return root
}

// persistentPreRun loads the configuration and injects the logger into the context.
// persistentPreRun 加载配置并将 Logger 注入 Context。
func persistentPreRun(cmd *cobra.Command, args []string) error {
	cfg, err := common.LoadConfig()
	if err != nil {
		// Console only logging when the config is unusable
		// 配置不可用时仅使用控制台日志
		logger.Init(config.DefaultConfig().Logging)
		if cmd.Annotations[annotationSkipConfig] == "" {
			return err
		}
		cmd.SetContext(logger.WithContext(cmd.Context(), logger.Get(nil)))
		return nil
	}

	logger.Init(cfg.Logging)
	ctx := logger.WithContext(cmd.Context(), logger.Get(nil))
	cmd.SetContext(common.WithConfig(ctx, cfg))
	return nil
}

func runLegacy(cmd *cobra.Command, opts *legacyOptions) error {
	switch {
	case opts.add:
		return runAdd(cmd, &addOptions{
			eventType: opts.eventType,
			level:     opts.level,
			message:   opts.message,
		})
	case opts.show:
		return runShow(cmd, &showOptions{
			query: queryFlags{
				eventType: opts.eventType,
				level:     opts.level,
				date:      opts.date,
				keyword:   opts.keyword,
			},
		})
	default:
		return runClear(cmd, false)
	}
}

// createCustomCompletionCmd creates a custom completion command without powershell.
// createCustomCompletionCmd 创建不含 powershell 的自定义补全命令。
func createCustomCompletionCmd(root *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish]",
		Short: "Generate shell autocompletion script",
		Long: `Generate shell autocompletion script for eventlog.
生成 eventlog 的 shell 自动补全脚本。

Supported shells:
  bash - Generate for bash
  zsh  - Generate for zsh
  fish - Generate for fish

Examples:
  eventlog completion bash > /etc/bash_completion.d/eventlog
  eventlog completion zsh  > "${fpath[1]}/_eventlog"
  eventlog completion fish > ~/.config/fish/completions/eventlog.fish`,
		Args:        cobra.ExactArgs(1),
		ValidArgs:   []string{"bash", "zsh", "fish"},
		Annotations: map[string]string{annotationSkipConfig: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch shell := args[0]; shell {
			case "bash":
				return root.GenBashCompletionV2(out, true)
			case "zsh":
				return root.GenZshCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, true)
			default:
				return fmt.Errorf("unsupported shell: %s (supported: bash, zsh, fish)", shell)
			}
		},
	}
}

// Execute runs the root command and exits 1 on error.
// SIGINT and SIGTERM cancel the command context, which stops show --follow.
// Execute 执行根命令，出错时以状态码 1 退出。SIGINT 和 SIGTERM 会取消命令上下文。
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := NewRootCmd().ExecuteContext(ctx)
	stop()
	_ = logger.Sync()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
