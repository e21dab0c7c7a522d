package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConfigManager tests the configuration manager functionality
// TestConfigManager 测试配置管理器功能
func TestConfigManager(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eventlog.yaml")

	cfg := DefaultConfig()
	cfg.LogFile = "/var/log/app-events.log"
	cfg.Color = false
	cfg.Metrics.TextfilePath = "/var/lib/node_exporter/eventlog.prom"

	cfgManager := NewConfigManager(path).WithEnvFile("")
	cfgManager.UpdateConfig(cfg)
	require.NoError(t, cfgManager.SaveConfig())

	require.NoError(t, cfgManager.LoadConfig())
	loaded := cfgManager.GetConfig()
	require.NotNil(t, loaded)
	assert.Equal(t, cfg.LogFile, loaded.LogFile)
	assert.False(t, loaded.Color)

	assert.Equal(t, cfg.Metrics.TextfilePath, cfgManager.GetMetricsConfig().TextfilePath)
	assert.Equal(t, "warn", cfgManager.GetLoggingConfig().Level)
	assert.Equal(t, path, cfgManager.GetConfigPath())
	assert.NoError(t, cfgManager.Validate())
}

func TestConfigManager_Empty(t *testing.T) {
	cfgManager := NewConfigManager(filepath.Join(t.TempDir(), "none.yaml"))

	assert.Nil(t, cfgManager.GetConfig())
	assert.Nil(t, cfgManager.GetLoggingConfig())
	assert.Nil(t, cfgManager.GetMetricsConfig())
	assert.NoError(t, cfgManager.SaveConfig())
	assert.NoError(t, cfgManager.Validate())
}

func TestConfigManager_Overrides(t *testing.T) {
	cfgManager := NewConfigManager(filepath.Join(t.TempDir(), "none.yaml"))
	cfgManager.SetLogFile("custom.log")
	cfgManager.SetColor(false)

	cfg := cfgManager.GetConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, "custom.log", cfg.LogFile)
	assert.False(t, cfg.Color)
	assert.Equal(t, DefaultMetricsJob, cfg.Metrics.Job)
}

// TestConfigManager_GetConfigReturnsCopy 测试 GetConfig 返回副本
func TestConfigManager_GetConfigReturnsCopy(t *testing.T) {
	cfgManager := NewConfigManager("unused.yaml")
	cfgManager.UpdateConfig(DefaultConfig())

	cfg := cfgManager.GetConfig()
	cfg.LogFile = "changed.log"

	assert.Equal(t, DefaultLogFile, cfgManager.GetConfig().LogFile)
}

// TestConfigManagerConcurrentAccess tests concurrent read/write access
// TestConfigManagerConcurrentAccess 测试并发读写访问
func TestConfigManagerConcurrentAccess(t *testing.T) {
	cfgManager := NewConfigManager("unused.yaml")

	done := make(chan bool)

	go func() {
		for i := 0; i < 10; i++ {
			newCfg := DefaultConfig()
			newCfg.Color = i%2 == 0
			cfgManager.UpdateConfig(newCfg)
		}
		done <- true
	}()

	go func() {
		for i := 0; i < 10; i++ {
			cfg := cfgManager.GetConfig()
			if cfg != nil {
				_ = cfg.Color
			}
		}
		done <- true
	}()

	<-done
	<-done
}
