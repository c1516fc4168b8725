package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	config, err := loadConfigFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, getDefaultConfig(), config)
	assert.True(t, config.Display.KeepLegacy)
	assert.Equal(t, "auto", config.Display.Color)
	assert.Equal(t, 100, config.HistorySize)
}

func TestLoadConfigFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dllist.yaml")
	data := []byte(`
membership_checks: true
history_size: 25
debug: true
display:
  pretty: true
  color: always
  ascii: true
  paginate_help: 10
`)
	require.NoError(t, os.WriteFile(path, data, 0644))

	config, err := loadConfigFromFile(path)
	require.NoError(t, err)
	assert.True(t, config.MembershipChecks)
	assert.True(t, config.Debug)
	assert.Equal(t, 25, config.HistorySize)
	assert.True(t, config.Display.Pretty)
	assert.Equal(t, "always", config.Display.Color)
	assert.True(t, config.Display.ASCII)
	assert.Equal(t, 10, config.Display.Paginate)
	assert.True(t, config.Display.KeepLegacy, "unset fields keep their defaults")
}

func TestApplyDefaults(t *testing.T) {
	config := &Config{HistorySize: -3, Display: DisplayConfig{Color: "rainbow", Paginate: -1}}
	applyDefaults(config)
	assert.Equal(t, 100, config.HistorySize)
	assert.Equal(t, "auto", config.Display.Color)
	assert.Equal(t, 0, config.Display.Paginate)
}

func TestLoadConfigRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("history_size: [oops"), 0644))
	_, err := loadConfigFromFile(path)
	require.Error(t, err)
}

func TestConfigSingleton(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	got, err := GetConfig()
	require.NoError(t, err)
	assert.Same(t, config, got)
}
