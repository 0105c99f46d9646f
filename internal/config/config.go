package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dshills/ked/internal/logging"
)

// Config holds every ked setting.
type Config struct {
	// Prompt is printed before each command read. Empty disables it.
	Prompt string `toml:"prompt" yaml:"prompt"`

	// Verbose prints error messages instead of the bare "?" marker.
	Verbose bool `toml:"verbose" yaml:"verbose"`

	Log     LogConfig     `toml:"log" yaml:"log"`
	History HistoryConfig `toml:"history" yaml:"history"`
}

// LogConfig configures diagnostic logging.
type LogConfig struct {
	// Level is the logging verbosity level ("debug", "info", "warn", "error").
	Level string `toml:"level" yaml:"level"`

	// File is the log file path (empty for no logging).
	File string `toml:"file" yaml:"file"`
}

// HistoryConfig configures interactive command history.
// An empty File keeps history for the session only.
type HistoryConfig struct {
	Enabled bool   `toml:"enabled" yaml:"enabled"`
	File    string `toml:"file" yaml:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{Level: "info"},
		History: HistoryConfig{
			Enabled: true,
			File:    defaultHistoryFile(),
		},
	}
}

// Validate checks settings that cannot be expressed by their type.
func (c *Config) Validate() error {
	if !logging.ValidLevel(c.Log.Level) {
		return fmt.Errorf("%w: %q", ErrInvalidLevel, c.Log.Level)
	}
	return nil
}

// LogLevel returns the parsed log level.
func (c *Config) LogLevel() logging.Level {
	return logging.ParseLevel(c.Log.Level)
}

// DefaultPath returns the user config file location, or "" if no config
// directory can be determined.
func DefaultPath() string {
	dir := defaultUserConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "ked.toml")
}

func defaultUserConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "ked")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "ked")
}

func defaultHistoryFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ked_history")
}
