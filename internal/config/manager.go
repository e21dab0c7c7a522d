package config

import (
	"sync"

	"github.com/netxfw/eventlog/internal/utils/logger"
)

// ConfigManager owns the loaded configuration of one invocation.
// ConfigManager 持有单次调用加载的配置。
type ConfigManager struct {
	configPath string
	envFile    string
	mutex      sync.RWMutex
	config     *Config
}

// NewConfigManager creates a new configuration manager instance
// NewConfigManager 创建新的配置管理器实例
func NewConfigManager(configPath string) *ConfigManager {
	return &ConfigManager{
		configPath: configPath,
		envFile:    DefaultEnvFile,
	}
}

// WithEnvFile sets the dotenv file read during LoadConfig ("" disables it).
// WithEnvFile 设置 LoadConfig 期间读取的 dotenv 文件（"" 表示禁用）。
func (cm *ConfigManager) WithEnvFile(envFile string) *ConfigManager {
	cm.mutex.Lock()
	defer cm.mutex.Unlock()
	cm.envFile = envFile
	return cm
}

// LoadConfig loads the configuration from the specified path
// LoadConfig 从指定路径加载配置
func (cm *ConfigManager) LoadConfig() error {
	cm.mutex.Lock()
	defer cm.mutex.Unlock()

	cfg, err := LoadConfigWithEnv(cm.configPath, cm.envFile)
	if err != nil {
		return err
	}

	cm.config = cfg
	return nil
}

// SaveConfig saves the current configuration to the specified path
// SaveConfig 将当前配置保存到指定路径
func (cm *ConfigManager) SaveConfig() error {
	cm.mutex.RLock()
	defer cm.mutex.RUnlock()

	if cm.config == nil {
		return nil
	}

	return SaveConfig(cm.configPath, cm.config)
}

// GetConfig returns a copy of the current configuration
// GetConfig 返回当前配置的副本
func (cm *ConfigManager) GetConfig() *Config {
	cm.mutex.RLock()
	defer cm.mutex.RUnlock()

	if cm.config == nil {
		return nil
	}

	cfgCopy := *cm.config
	return &cfgCopy
}

// UpdateConfig updates the current configuration
// UpdateConfig 更新当前配置
func (cm *ConfigManager) UpdateConfig(newConfig *Config) {
	cm.mutex.Lock()
	defer cm.mutex.Unlock()

	cm.config = newConfig
}

// GetLoggingConfig returns the logging configuration
// GetLoggingConfig 返回日志配置
func (cm *ConfigManager) GetLoggingConfig() *logger.LoggingConfig {
	cm.mutex.RLock()
	defer cm.mutex.RUnlock()

	if cm.config == nil {
		return nil
	}

	loggingCfg := cm.config.Logging
	return &loggingCfg
}

// GetMetricsConfig returns the metrics configuration
// GetMetricsConfig 返回指标配置
func (cm *ConfigManager) GetMetricsConfig() *MetricsConfig {
	cm.mutex.RLock()
	defer cm.mutex.RUnlock()

	if cm.config == nil {
		return nil
	}

	metricsCfg := cm.config.Metrics
	return &metricsCfg
}

// SetLogFile overrides the journal path, e.g. from the --file flag.
// SetLogFile 覆盖日志文件路径，例如来自 --file 标志。
func (cm *ConfigManager) SetLogFile(path string) {
	cm.mutex.Lock()
	defer cm.mutex.Unlock()

	if cm.config == nil {
		cm.config = DefaultConfig()
	}
	cm.config.LogFile = path
}

// SetColor overrides color output, e.g. from the --no-color flag.
// SetColor 覆盖彩色输出设置，例如来自 --no-color 标志。
func (cm *ConfigManager) SetColor(enabled bool) {
	cm.mutex.Lock()
	defer cm.mutex.Unlock()

	if cm.config == nil {
		cm.config = DefaultConfig()
	}
	cm.config.Color = enabled
}

// GetConfigPath returns the configuration file path
// GetConfigPath 返回配置文件路径
func (cm *ConfigManager) GetConfigPath() string {
	return cm.configPath
}

// Validate validates the current configuration
// Validate 验证当前配置
func (cm *ConfigManager) Validate() error {
	cm.mutex.RLock()
	defer cm.mutex.RUnlock()

	if cm.config == nil {
		return nil
	}

	return cm.config.Validate()
}
