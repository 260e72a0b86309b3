package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/viper"
)

const (
	DefaultDatabasePath = "~/.local/share/td/tasks.json"
	DefaultLogFile      = "~/.local/state/td/td-mcp.log"
	envPrefix           = "TD"
)

// Config holds the user settings shared by the td binaries
type Config struct {
	// Database is the task database file
	Database string `mapstructure:"database" toml:"database"`
	// Index mirrors tasks into a SQLite search index
	Index bool `mapstructure:"index" toml:"index"`
	// HistoryLimit caps undo steps in long-running sessions, 0 keeps all
	HistoryLimit int `mapstructure:"history_limit" toml:"history_limit"`
	// HideCompleted is the default for listings
	HideCompleted bool `mapstructure:"hide_completed" toml:"hide_completed"`
	// OldestFirst is the default listing order
	OldestFirst bool `mapstructure:"oldest_first" toml:"oldest_first"`
	// LogFile receives the MCP server log
	LogFile string `mapstructure:"log_file" toml:"log_file"`
}

// DefaultConfig returns the settings used when nothing is configured
func DefaultConfig() *Config {
	return &Config{
		Database:      DefaultDatabasePath,
		Index:         true,
		HistoryLimit:  0,
		HideCompleted: true,
		OldestFirst:   false,
		LogFile:       DefaultLogFile,
	}
}

// Load reads the config file at Path, if any, with TD_* environment overrides
func Load() (*Config, error) {
	return LoadFile(Path())
}

// LoadFile reads the config file at path with TD_* environment overrides.
// A missing file yields the defaults.
func LoadFile(path string) (*Config, error) {
	def := DefaultConfig()

	v := viper.New()
	v.SetDefault("database", def.Database)
	v.SetDefault("index", def.Index)
	v.SetDefault("history_limit", def.HistoryLimit)
	v.SetDefault("hide_completed", def.HideCompleted)
	v.SetDefault("oldest_first", def.OldestFirst)
	v.SetDefault("log_file", def.LogFile)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// Path returns the config file location under $XDG_CONFIG_HOME
func Path() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "td", "config.toml")
}

// DatabasePath returns the database path from TD_DATABASE env var,
// falling back to DefaultDatabasePath.
func DatabasePath() string {
	if env := os.Getenv("TD_DATABASE"); env != "" {
		return env
	}
	return DefaultDatabasePath
}

// Encode writes cfg as TOML
func (c *Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// WriteDefault writes the default config to path. An existing file is left alone.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config already exists: %s", path)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to check %s: %w", path, err)
	}

	var buf bytes.Buffer
	if err := DefaultConfig().Encode(&buf); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}
