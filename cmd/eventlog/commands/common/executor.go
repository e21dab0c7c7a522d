package common

import (
	"context"
	"fmt"

	"github.com/netxfw/eventlog/internal/config"
	"github.com/netxfw/eventlog/internal/journal"
	"github.com/netxfw/eventlog/internal/runtime"
	"github.com/netxfw/eventlog/pkg/storage"
	"github.com/spf13/cobra"
)

type configKey struct{}

// WithConfig stores the loaded configuration in ctx.
// WithConfig 将已加载的配置存入 ctx。
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// ConfigFromContext returns the configuration stored by WithConfig.
// ConfigFromContext 返回 WithConfig 存入的配置。
func ConfigFromContext(ctx context.Context) (*config.Config, bool) {
	if ctx == nil {
		return nil, false
	}
	cfg, ok := ctx.Value(configKey{}).(*config.Config)
	return cfg, ok && cfg != nil
}

// LoadConfig loads the configuration and applies the --file and --no-color flags.
// LoadConfig 加载配置并应用 --file 和 --no-color 标志。
func LoadConfig() (*config.Config, error) {
	cm := config.NewConfigManager(config.GetConfigPath())
	if err := cm.LoadConfig(); err != nil {
		return nil, err
	}
	if runtime.LogFile != "" {
		cm.SetLogFile(runtime.LogFile)
	}
	if runtime.NoColor {
		cm.SetColor(false)
	}
	return cm.GetConfig(), nil
}

// CommandExecutor 统一的命令执行器，处理所有命令的通用逻辑
// CommandExecutor handles the logic shared by all commands
type CommandExecutor struct {
	cmd *cobra.Command
	cfg *config.Config
}

// NewCommandExecutor 创建新的命令执行器
// NewCommandExecutor creates a new command executor
func NewCommandExecutor(cmd *cobra.Command) *CommandExecutor {
	return &CommandExecutor{
		cmd: cmd,
	}
}

// Config 返回当前配置
// Config returns the configuration injected by the root command, loading it when absent
func (e *CommandExecutor) Config() (*config.Config, error) {
	if e.cfg != nil {
		return e.cfg, nil
	}
	if cfg, ok := ConfigFromContext(e.cmd.Context()); ok {
		e.cfg = cfg
		return cfg, nil
	}

	cfg, err := LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	e.cfg = cfg
	return cfg, nil
}

// Journal 打开配置的事件日志
// Journal opens the configured event journal
func (e *CommandExecutor) Journal() (*journal.Journal, error) {
	cfg, err := e.Config()
	if err != nil {
		return nil, err
	}
	return journal.New(storage.NewFileStore(cfg.LogFile)), nil
}

// UseColor 报告是否输出颜色
// UseColor reports whether levels are colorized
func (e *CommandExecutor) UseColor() bool {
	cfg, err := e.Config()
	if err != nil {
		return false
	}
	return cfg.Color && !runtime.NoColor
}

// Do 执行核心逻辑，错误附带命令名
// Do executes the core logic and prefixes any error with the command name.
func (e *CommandExecutor) Do(f func() error) error {
	if err := f(); err != nil {
		return fmt.Errorf("%s: %w", e.cmd.Name(), err)
	}
	return nil
}

// PrintSuccess 打印成功消息
// PrintSuccess prints success message
func (e *CommandExecutor) PrintSuccess(msg string) {
	fmt.Fprintln(e.cmd.OutOrStdout(), "[OK] "+msg)
}

// PrintError 打印错误消息
// PrintError prints error message
func (e *CommandExecutor) PrintError(msg string) {
	fmt.Fprintln(e.cmd.ErrOrStderr(), "[ERROR] "+msg)
}

// PrintWarning 打印警告消息
// PrintWarning prints warning message
func (e *CommandExecutor) PrintWarning(msg string) {
	fmt.Fprintln(e.cmd.ErrOrStderr(), "[WARN]  "+msg)
}
