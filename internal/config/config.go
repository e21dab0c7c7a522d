package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/netxfw/eventlog/internal/runtime"
	"github.com/netxfw/eventlog/internal/utils/fileutil"
	"github.com/netxfw/eventlog/internal/utils/logger"
	apperrors "github.com/netxfw/eventlog/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the eventlog configuration.
// Config 是 eventlog 的配置。
type Config struct {
	LogFile string               `yaml:"log_file" env:"FILE"`
	Color   bool                 `yaml:"color" env:"COLOR"`
	Logging logger.LoggingConfig `yaml:"logging" envPrefix:"LOGGING_"`
	Metrics MetricsConfig        `yaml:"metrics" envPrefix:"METRICS_"`
}

// MetricsConfig configures the stats exporters.
// MetricsConfig 配置统计导出。
type MetricsConfig struct {
	TextfilePath string `yaml:"textfile_path" env:"TEXTFILE_PATH"` // node_exporter textfile target / node_exporter 文本文件
	PushGateway  string `yaml:"push_gateway" env:"PUSH_GATEWAY"`   // Pushgateway URL / Pushgateway 地址
	Job          string `yaml:"job" env:"JOB"`
}

// DefaultConfig returns the built-in defaults.
// DefaultConfig 返回内置默认配置。
func DefaultConfig() *Config {
	return &Config{
		LogFile: DefaultLogFile,
		Color:   true,
		Logging: logger.LoggingConfig{
			Enabled:    false,
			Level:      "warn",
			Path:       DefaultDiagnosticsPath,
			MaxSize:    10, // 10MB
			MaxBackups: 3,
			MaxAge:     30, // 30 days
			Compress:   true,
		},
		Metrics: MetricsConfig{
			Job: DefaultMetricsJob,
		},
	}
}

// GetConfigPath returns the configuration file path.
// If runtime.ConfigPath is set (e.g., via CLI flag or test), it takes precedence.
// GetConfigPath 返回配置文件路径。
// 如果 runtime.ConfigPath 已设置（例如通过 CLI 标志或测试），则优先使用它。
func GetConfigPath() string {
	if runtime.ConfigPath != "" {
		return runtime.ConfigPath
	}
	return DefaultConfigPath
}

// LoadConfig loads path (missing file means defaults), then DefaultEnvFile,
// then EVENTLOG_* environment variables, and validates the result.
// LoadConfig 依次加载配置文件（不存在则使用默认值）、DefaultEnvFile 和 EVENTLOG_* 环境变量，并验证结果。
func LoadConfig(path string) (*Config, error) {
	return LoadConfigWithEnv(path, DefaultEnvFile)
}

// LoadConfigWithEnv is LoadConfig with an explicit dotenv file ("" skips it).
// Real environment variables win over dotenv values.
// LoadConfigWithEnv 与 LoadConfig 相同，但显式指定 dotenv 文件（"" 表示跳过）。
// 真实环境变量优先于 dotenv 中的值。
func LoadConfigWithEnv(path, envFile string) (*Config, error) {
	cfg := DefaultConfig()

	safePath := filepath.Clean(path)   // Sanitize path to prevent directory traversal
	data, err := os.ReadFile(safePath) // #nosec G304 // path is sanitized with filepath.Clean
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", safePath, err)
		}
	case errors.Is(err, fs.ErrNotExist):
		// Defaults only / 仅使用默认值
	default:
		return nil, err
	}

	environment, err := environmentWithDotenv(envFile)
	if err != nil {
		return nil, err
	}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix, Environment: environment}); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// environmentWithDotenv merges the dotenv file under the process environment
// without touching os.Environ.
func environmentWithDotenv(envFile string) (map[string]string, error) {
	environment := env.ToMap(os.Environ())
	if envFile == "" {
		return environment, nil
	}

	values, err := godotenv.Read(envFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return environment, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", envFile, err)
	}
	for k, v := range values {
		if _, ok := environment[k]; !ok {
			environment[k] = v
		}
	}
	return environment, nil
}

// Validate checks the configuration values.
// Validate 检查配置值。
func (c *Config) Validate() error {
	if strings.TrimSpace(c.LogFile) == "" {
		return apperrors.NewConfigError("log_file", c.LogFile)
	}

	switch strings.ToLower(c.Logging.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return apperrors.NewConfigError("logging.level", c.Logging.Level)
	}
	if c.Logging.Enabled && c.Logging.Path == "" {
		return apperrors.NewConfigError("logging.path", c.Logging.Path)
	}
	if c.Logging.MaxSize < 0 {
		return apperrors.NewConfigError("logging.max_size", c.Logging.MaxSize)
	}
	if c.Logging.MaxBackups < 0 {
		return apperrors.NewConfigError("logging.max_backups", c.Logging.MaxBackups)
	}
	if c.Logging.MaxAge < 0 {
		return apperrors.NewConfigError("logging.max_age", c.Logging.MaxAge)
	}

	if c.Metrics.PushGateway != "" && c.Metrics.Job == "" {
		return apperrors.NewConfigError("metrics.job", c.Metrics.Job)
	}
	return nil
}

// SaveConfig writes cfg as YAML to path atomically.
// SaveConfig 以原子方式将 cfg 以 YAML 格式写入 path。
func SaveConfig(path string, cfg *Config) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	return fileutil.AtomicWriteFile(filepath.Clean(path), buf.Bytes(), 0644)
}

// WriteDefaultConfig writes the commented template to path.
// It refuses to overwrite an existing file unless force is set.
// WriteDefaultConfig 将带注释的模板写入 path，除非 force 为真，否则不覆盖已有文件。
func WriteDefaultConfig(path string, force bool) error {
	safePath := filepath.Clean(path)
	if !force {
		if _, err := os.Stat(safePath); err == nil {
			return fmt.Errorf("config %s already exists, use --force to overwrite", safePath)
		}
	}
	return fileutil.AtomicWriteFile(safePath, []byte(DefaultConfigTemplate), 0644)
}
