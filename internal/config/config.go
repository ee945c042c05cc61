// Package config loads fortune configuration from YAML files and environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/talgya/fortune/internal/engine"
)

// Config holds all application configuration.
type Config struct {
	Simulation engine.Params  `yaml:"simulation"`
	Logging    LoggingConfig  `yaml:"logging"`
	Database   DatabaseConfig `yaml:"database"`
	Plot       PlotConfig     `yaml:"plot"`
}

// LoggingConfig sets log verbosity: "info" (default), "debug", or "trace".
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DatabaseConfig locates the run archive. An empty path disables archiving.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// PlotConfig controls rendered figures.
type PlotConfig struct {
	LogScale bool    `yaml:"log_scale"`
	Width    float64 `yaml:"width_in"`  // Inches
	Height   float64 `yaml:"height_in"` // Inches
}

// Default returns a Config with the baseline scenario and archiving disabled.
func Default() *Config {
	return &Config{
		Simulation: engine.DefaultParams(),
		Logging:    LoggingConfig{Level: "info"},
		Plot: PlotConfig{
			LogScale: true,
			Width:    10,
			Height:   4,
		},
	}
}

// LoadFromFile reads a YAML file over the defaults. Keys absent from the
// file keep their default values.
func LoadFromFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Load builds the configuration: defaults, then the file at path (if path
// is non-empty), then environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		var err error
		cfg, err = LoadFromFile(path)
		if err != nil {
			return nil, err
		}
	}
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("FORTUNE_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("FORTUNE_SEED: %w", err)
		}
		cfg.Simulation.Seed = seed
	}
	if v := os.Getenv("FORTUNE_N"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("FORTUNE_N: %w", err)
		}
		cfg.Simulation.N = n
	}
	if v := os.Getenv("FORTUNE_STEPS"); v != "" {
		steps, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("FORTUNE_STEPS: %w", err)
		}
		cfg.Simulation.NTimestamps = steps
	}
	if v := os.Getenv("FORTUNE_DB"); v != "" {
		cfg.Database.Path = v
	}
	if v := os.Getenv("FORTUNE_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	return nil
}

// Validate checks the simulation parameters and plot dimensions.
func (c *Config) Validate() error {
	if err := c.Simulation.Validate(); err != nil {
		return err
	}
	if c.Plot.Width <= 0 || c.Plot.Height <= 0 {
		return fmt.Errorf("plot.width_in and plot.height_in must be positive")
	}
	return nil
}
