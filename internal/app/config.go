// Package app provides application-level configuration and initialization.
package app

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/keysummon/keysummon/internal/model"
)

// Config holds the application configuration.
type Config struct {
	// Notifications controls how chain outcomes reach the user.
	Notifications model.NotificationConfig `json:"notifications"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"log_level"`
	// Initialized indicates if the first-run setup has been completed.
	Initialized bool `json:"initialized"`
	// Theme is the color theme (future use).
	Theme string `json:"theme"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Notifications: model.NotificationConfig{Desktop: true},
		LogLevel:      "info",
		Theme:         "catppuccin-mocha",
	}
}

// ConfigDir returns the per-user directory holding all application state.
func ConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "keysummon"), nil
}

// ConfigPath returns the path to the config file.
func ConfigPath(configDir string) string {
	return filepath.Join(configDir, "settings.json")
}

// LoadConfig loads the configuration from disk.
func LoadConfig(configDir string) (*Config, error) {
	path := ConfigPath(configDir)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// SaveConfig saves the configuration to disk.
func SaveConfig(configDir string, config *Config) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(ConfigPath(configDir), data, 0644)
}

// SlogLevel maps the configured level name to a slog level, defaulting to
// info for unknown values.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
