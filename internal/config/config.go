// Package config loads weightlog settings from a YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultDisplayCount is how many entries the default view shows.
const DefaultDisplayCount = 5

// Config holds weightlog settings.
type Config struct {
	LogPath      string  `yaml:"log_path"`
	HeightCm     float64 `yaml:"height_cm,omitempty"`
	DisplayCount int     `yaml:"display_count"`
	Color        *bool   `yaml:"color,omitempty"`
	LogLevel     string  `yaml:"log_level,omitempty"`
}

// Default returns built-in defaults.
func Default() Config {
	return Config{
		LogPath:      DefaultLogPath(),
		DisplayCount: DefaultDisplayCount,
		LogLevel:     "warn",
	}
}

// DefaultLogPath returns ~/Documents/lists/weightlog.csv, or a file in the
// working directory when there is no home directory.
func DefaultLogPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "weightlog.csv"
	}
	return filepath.Join(home, "Documents", "lists", "weightlog.csv")
}

// DefaultPath returns where the config file is looked up when none is given.
func DefaultPath() string {
	if p := os.Getenv("WEIGHTLOG_CONFIG"); p != "" {
		return p
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "weightlog", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".config", "weightlog", "config.yaml")
}

// Load reads the YAML file at path over the defaults. An empty path or a
// missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// FromEnv overlays WEIGHTLOG_* environment variables onto cfg.
func FromEnv(cfg *Config) {
	if v := os.Getenv("WEIGHTLOG_FILE"); v != "" {
		cfg.LogPath = v
	}
	if v := os.Getenv("WEIGHTLOG_HEIGHT_CM"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.HeightCm = f
		}
	}
	if v := os.Getenv("WEIGHTLOG_DISPLAY_COUNT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.DisplayCount = n
		}
	}
	if v := os.Getenv("WEIGHTLOG_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.LogPath == "" {
		return errors.New("log_path must not be empty")
	}
	if c.HeightCm < 0 {
		return fmt.Errorf("height_cm must be positive, got %v", c.HeightCm)
	}
	if c.DisplayCount <= 0 {
		return fmt.Errorf("display_count must be positive, got %d", c.DisplayCount)
	}
	return nil
}

// Marshal renders cfg as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
