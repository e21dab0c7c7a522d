package logger

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type contextKey string

const LoggerKey = contextKey("logger")

var globalLogger *zap.SugaredLogger

// stderr is where diagnostics go when no log file is configured.
var stderr io.Writer = os.Stderr

// ParseLevel maps a config level name to a zap level. Unknown names fall back to info.
// ParseLevel 将配置中的级别名称映射为 zap 级别，未知名称回退到 info。
func ParseLevel(name string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Init initializes the global logger based on configuration.
// Without a log file, only warnings and errors reach stderr so that command
// output stays clean.
// Init 根据配置初始化全局日志记录器。
// 未配置日志文件时，只有警告和错误输出到 stderr，以保持命令输出整洁。
func Init(cfg LoggingConfig) {
	writeSyncer := zapcore.AddSync(stderr)
	level := zapcore.WarnLevel
	if cfg.Level != "" && ParseLevel(cfg.Level) > level {
		level = ParseLevel(cfg.Level)
	}

	if cfg.Enabled && cfg.Path != "" {
		// Create directory if not exists
		dir := filepath.Dir(cfg.Path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			// Log to stderr if we can't create the directory
			// 如果无法创建目录，则输出到 stderr
			zap.New(zapcore.NewCore(newEncoder(), writeSyncer, zapcore.WarnLevel)).Sugar().
				Warnf("[WARN]  Failed to create log directory: %v", err)
		} else {
			rotator := &lumberjack.Logger{
				Filename:   cfg.Path,
				MaxSize:    cfg.MaxSize,
				MaxBackups: cfg.MaxBackups,
				MaxAge:     cfg.MaxAge,
				Compress:   cfg.Compress,
			}
			writeSyncer = zapcore.AddSync(rotator)
			level = ParseLevel(cfg.Level)
		}
	}

	core := zapcore.NewCore(newEncoder(), writeSyncer, level)
	logger := zap.New(core, zap.AddCaller())
	globalLogger = logger.Sugar()

	globalLogger.Debugf("[LOG] Logging initialized (Level: %s, Path: %s)", level, cfg.Path)
}

func newEncoder() zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return zapcore.NewConsoleEncoder(encoderConfig)
}

// Sync flushes any buffered log entries.
// Sync 刷新所有缓存的日志条目。
func Sync() error {
	if globalLogger != nil {
		return globalLogger.Sync()
	}
	return nil
}

// Get returns the logger from context or global logger
// Get 从 Context 或全局日志记录器返回 Logger。
func Get(ctx context.Context) *zap.SugaredLogger {
	if ctx != nil {
		if logger, ok := ctx.Value(LoggerKey).(*zap.SugaredLogger); ok {
			return logger
		}
	}
	if globalLogger == nil {
		// Fallback to a warn-level stderr logger if not initialized
		// 未初始化时回退到 warn 级别的 stderr 日志记录器
		return zap.New(zapcore.NewCore(newEncoder(), zapcore.AddSync(stderr), zapcore.WarnLevel)).Sugar()
	}
	return globalLogger
}

// WithContext adds logger to context
// WithContext 将 Logger 添加到 Context。
func WithContext(ctx context.Context, logger *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, LoggerKey, logger)
}
