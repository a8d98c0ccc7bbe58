package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"

	sharedConfig "deskline/internal/shared/config"
)

type Config struct {
	API    sharedConfig.APIConfig    `mapstructure:"api"`
	State  sharedConfig.StateConfig  `mapstructure:"state"`
	Logger sharedConfig.LoggerConfig `mapstructure:"logger"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load loads configuration from file and environment variables.
// A missing config file is not an error: the client runs on defaults
// plus DESKLINE_* environment overrides.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(DefaultDir())
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("DESKLINE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.State.Dir == "" {
		config.State.Dir = DefaultDir()
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration.
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

// DefaultDir returns the per-user state directory.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".deskline"
	}
	return filepath.Join(home, ".deskline")
}

// Defaults returns the default settings as a nested map, in the same
// shape the YAML config file uses.
func Defaults() map[string]any {
	return map[string]any{
		"api": map[string]any{
			"base_url":        "http://localhost:8000/api",
			"timeout_seconds": 30,
		},
		"state": map[string]any{
			"dir":      DefaultDir(),
			"database": "deskline.db",
		},
		"logger": map[string]any{
			"level":       "info",
			"format":      "console",
			"output_path": "stderr",
		},
	}
}

func setDefaults() {
	for section, values := range Defaults() {
		for key, value := range values.(map[string]any) {
			viper.SetDefault(section+"."+key, value)
		}
	}
}
