package runtime

// ConfigPath stores the path to the configuration file provided via CLI flags.
// ConfigPath 存储通过 CLI 标志提供的配置文件路径。
var ConfigPath string

// LogFile overrides the event log file from the configuration when set via CLI flags.
// LogFile 通过 CLI 标志设置时覆盖配置中的事件日志文件。
var LogFile string

// NoColor disables ANSI colors in command output.
// NoColor 禁用命令输出中的 ANSI 颜色。
var NoColor bool

// Reset clears all CLI-provided state.
// Reset 清除所有通过 CLI 提供的状态。
func Reset() {
	ConfigPath = ""
	LogFile = ""
	NoColor = false
}
