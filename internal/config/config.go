// Package config holds adventnerd configuration: where puzzle inputs
// live, where answers are cached, the default fold policy, and logging.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the full adventnerd configuration.
type Config struct {
	// DataDir is the root of the puzzle input tree
	// (<DataDir>/<year>/day<day>.txt).
	DataDir string `yaml:"data_dir"`

	// DatabasePath is the SQLite answer cache location.
	DatabasePath string `yaml:"database_path"`

	Solve   SolveConfig   `yaml:"solve"`
	Logging LoggingConfig `yaml:"logging"`
}

// SolveConfig configures solver behavior.
type SolveConfig struct {
	// Policy is the default fold policy for record-oriented puzzles:
	// "strict" or "lenient".
	Policy string `yaml:"policy"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		DataDir:      "data",
		DatabasePath: filepath.Join("data", "answers.db"),
		Solve: SolveConfig{
			Policy: "strict",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load loads configuration from a YAML file. A missing file is not an
// error; defaults (plus environment overrides) are returned instead.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if dir := os.Getenv("ADVENT_DATA"); dir != "" {
		c.DataDir = dir
	}
	if path := os.Getenv("ADVENT_DB"); path != "" {
		c.DatabasePath = path
	}
	if level := os.Getenv("ADVENT_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}

// Validate checks the configuration for values the CLI cannot work
// with.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data_dir must not be empty")
	}
	switch c.Solve.Policy {
	case "strict", "lenient":
	default:
		return fmt.Errorf("invalid solve policy %q (want strict or lenient)", c.Solve.Policy)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "text":
	default:
		return fmt.Errorf("invalid log format %q (want json or text)", c.Logging.Format)
	}
	return nil
}
