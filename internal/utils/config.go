package utils

import (
	"errors"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Config struct holds application configuration
type Config struct {
	Display          DisplayConfig `yaml:"display"`
	MembershipChecks bool          `yaml:"membership_checks"`
	HistorySize      int           `yaml:"history_size"`
	LogFile          string        `yaml:"log_file"`
	Debug            bool          `yaml:"debug"`
}

// DisplayConfig holds the presentation toggles handed to the ui layer.
type DisplayConfig struct {
	Pretty     bool   `yaml:"pretty"`
	Color      string `yaml:"color"` // auto, always or never
	ClearMenu  bool   `yaml:"clear_menu"`
	KeepLegacy bool   `yaml:"keep_legacy"`
	Pause      bool   `yaml:"pause_after_sections"`
	Paginate   int    `yaml:"paginate_help"`
	Teach      bool   `yaml:"teach_mode"`
	ASCII      bool   `yaml:"ascii"`
}

var (
	configInstance *Config   // Singleton configInstance
	configOnce     sync.Once // Ensures thread-safe initialization
)

// LoadConfig initializes the singleton configInstance
func LoadConfig(filename string) (*Config, error) {
	var err error
	configOnce.Do(func() {
		configInstance, err = loadConfigFromFile(filename)
	})
	return configInstance, err
}

// DefaultConfigPath returns ~/.dllist/dllist.yaml
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "dllist.yaml"
	}
	return filepath.Join(homeDir, ".dllist", "dllist.yaml")
}

// loadConfigFromFile reads and parses the config file
func loadConfigFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return getDefaultConfig(), nil
		}
		return nil, err
	}

	config := getDefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	applyDefaults(config)
	return config, nil
}

// GetConfig returns the singleton config configInstance
func GetConfig() (*Config, error) {
	if configInstance == nil {
		return nil, errors.New("Config not initialized. Call LoadConfig() first")
	}
	return configInstance, nil
}

// getDefaultConfig returns default config values
func getDefaultConfig() *Config {
	return &Config{
		Display: DisplayConfig{
			Color:      "auto",
			KeepLegacy: true,
			Paginate:   0,
		},
		MembershipChecks: false,
		HistorySize:      100,
	}
}

// applyDefaults ensures missing values get defaults
func applyDefaults(config *Config) {
	if config.HistorySize <= 0 {
		config.HistorySize = 100
	}
	if config.Display.Color != "always" && config.Display.Color != "never" {
		config.Display.Color = "auto"
	}
	if config.Display.Paginate < 0 {
		config.Display.Paginate = 0
	}
}
