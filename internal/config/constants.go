package config

const (
	// DefaultConfigPath is the configuration file looked up in the working directory.
	// DefaultConfigPath 是在工作目录中查找的配置文件。
	DefaultConfigPath = "eventlog.yaml"

	// DefaultEnvFile is the optional dotenv file read before environment overrides.
	// DefaultEnvFile 是在环境变量覆盖之前读取的可选 dotenv 文件。
	DefaultEnvFile = ".env"

	// DefaultLogFile is the event journal written by the add command.
	// DefaultLogFile 是 add 命令写入的事件日志文件。
	DefaultLogFile = "eventlog.log"

	// DefaultDiagnosticsPath is where diagnostics go when file logging is enabled.
	// DefaultDiagnosticsPath 是启用文件日志时诊断信息的输出位置。
	DefaultDiagnosticsPath = "eventlog-diagnostics.log"

	// DefaultMetricsJob is the Pushgateway job name.
	// DefaultMetricsJob 是 Pushgateway 的作业名称。
	DefaultMetricsJob = "eventlog"

	// EnvPrefix prefixes every environment override, e.g. EVENTLOG_FILE.
	// EnvPrefix 是所有环境变量覆盖的前缀，例如 EVENTLOG_FILE。
	EnvPrefix = "EVENTLOG_"
)

// DefaultConfigTemplate is written by the init command. It must stay in sync with DefaultConfig.
// DefaultConfigTemplate 由 init 命令写入，必须与 DefaultConfig 保持一致。
const DefaultConfigTemplate = `# eventlog configuration
# eventlog 配置

# Event journal file, one record per line.
# 事件日志文件，每行一条记录。
log_file: eventlog.log

# Colorize levels in show output.
# 在 show 输出中为级别着色。
color: true

# Diagnostics logging (not the event journal).
# 诊断日志（不是事件日志）。
logging:
  enabled: false
  level: warn
  path: eventlog-diagnostics.log
  max_size: 10
  max_backups: 3
  max_age: 30
  compress: true

# Stats export for the stats command.
# stats 命令的统计导出。
metrics:
  textfile_path: ""
  push_gateway: ""
  job: eventlog
`
