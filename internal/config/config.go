// Package config provides configuration types and defaults for beanthere.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// LoggingConfig holds diagnostic logging options. Logging is off by default
// so normal CLI output stays clean.
type LoggingConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Level   string `mapstructure:"level"` // "debug", "info", "warn", "error"
	Path    string `mapstructure:"path"`  // defaults to <data dir>/beanthere.log
}

// Config holds all configuration options for beanthere.
type Config struct {
	DatabasePath string `mapstructure:"database_path"`
	ExportDir    string `mapstructure:"export_dir"`

	// LowStockGrams is the inventory threshold: beans at or below this many
	// grams are flagged LOW STOCK.
	LowStockGrams float64 `mapstructure:"low_stock_grams"`

	// Defaults applied when a bean is first created.
	DefaultRoaster   string  `mapstructure:"default_roaster"`
	DefaultCostPerKg float64 `mapstructure:"default_cost_per_kg"`

	// Currency is the symbol prefixed to money amounts in output.
	Currency string `mapstructure:"currency"`

	Logging LoggingConfig `mapstructure:"logging"`
}

// DataDir returns the beanthere data directory (~/.beanthere), falling back
// to a relative directory when the home directory cannot be resolved.
func DataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".beanthere"
	}
	return filepath.Join(home, ".beanthere")
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	dataDir := DataDir()
	return Config{
		DatabasePath:     filepath.Join(dataDir, "beanthere.db"),
		ExportDir:        ".",
		LowStockGrams:    250,
		DefaultRoaster:   "Local Roaster",
		DefaultCostPerKg: 90.0,
		Currency:         "$",
		Logging: LoggingConfig{
			Enabled: false,
			Level:   "info",
			Path:    filepath.Join(dataDir, "beanthere.log"),
		},
	}
}

// Validate checks configuration values for errors.
func (c Config) Validate() error {
	if c.DatabasePath == "" {
		return fmt.Errorf("database_path is required")
	}
	if c.LowStockGrams < 0 {
		return fmt.Errorf("low_stock_grams must not be negative")
	}
	if c.DefaultCostPerKg < 0 {
		return fmt.Errorf("default_cost_per_kg must not be negative")
	}
	return nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# BeanThere Configuration

# Where the SQLite database lives
# database_path: ~/.beanthere/beanthere.db

# Directory CSV exports are written to
export_dir: .

# Beans at or below this many grams are flagged LOW STOCK
low_stock_grams: 250

# Defaults applied when a new bean is added
default_roaster: Local Roaster
default_cost_per_kg: 90.0

# Symbol prefixed to money amounts
currency: "$"

# Diagnostic logging (written to a file, never to the terminal)
logging:
  enabled: false
  level: info
  # path: ~/.beanthere/beanthere.log
`
}

// WriteDefaultConfig creates a config file at the given path with default
// settings and comments. Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
