package logger

// LoggingConfig defines the configuration for diagnostics logging.
// Event records never go through this logger.
// LoggingConfig 定义诊断日志配置。事件记录不经过此日志记录器。
type LoggingConfig struct {
	Enabled bool `yaml:"enabled" env:"ENABLED"`
	// Enabled: 是否启用日志文件
	Level string `yaml:"level" env:"LEVEL"`
	// Level: 日志级别（debug, info, warn, error）
	Path string `yaml:"path" env:"PATH"`
	// Path: 日志文件路径
	MaxSize int `yaml:"max_size" env:"MAX_SIZE"`
	// MaxSize: 轮转前的最大大小（MB）
	MaxBackups int `yaml:"max_backups" env:"MAX_BACKUPS"`
	// MaxBackups: 保留的旧文件最大数量
	MaxAge int `yaml:"max_age" env:"MAX_AGE"`
	// MaxAge: 保留旧文件的最大天数
	Compress bool `yaml:"compress" env:"COMPRESS"`
	// Compress: 是否压缩旧文件
}
