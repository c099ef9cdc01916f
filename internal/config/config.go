// SPDX-License-Identifier: MIT

// Package config loads epimob run settings from YAML and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/epimob/intervention"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid value")

// Config is the complete CLI configuration.
type Config struct {
	// Simulation holds Monte Carlo defaults; CLI flags override them.
	Simulation SimulationConfig `json:"simulation" yaml:"simulation"`

	// Store configures where simulation runs are persisted.
	Store StoreConfig `json:"store" yaml:"store"`

	// Logging configures the stderr logger.
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// SimulationConfig mirrors the montecarlo options.
type SimulationConfig struct {
	Variant intervention.Variant `json:"variant" yaml:"variant"`
	Trials  int                  `json:"trials" yaml:"trials"`
	Seed    int64                `json:"seed" yaml:"seed"`
	Workers int                  `json:"workers" yaml:"workers"`
	Sigma   float64              `json:"sigma" yaml:"sigma"`
}

// StoreConfig points at the SQLite run database. An empty Path disables persistence.
type StoreConfig struct {
	Path string `json:"path" yaml:"path"`
}

// LoggingConfig sets verbosity ("debug", "info", "warn", "error") and format ("text", "json").
type LoggingConfig struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"`
}

// Default returns a Config with the library defaults.
func Default() *Config {
	return &Config{
		Simulation: SimulationConfig{
			Variant: intervention.RandomizedA,
			Trials:  1000,
			Seed:    0,
			Workers: 1,
			Sigma:   intervention.DefaultSigma,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load returns defaults, overlaid by the YAML file at path when path is
// non-empty, then by EPIMOB_* environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		fileCfg, err := LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg = fileCfg
	}
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromFile reads a YAML config file on top of Default.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	cfg.Store.Path = os.ExpandEnv(cfg.Store.Path)

	return cfg, nil
}

// Validate checks ranges that the flags and file cannot express.
func (c *Config) Validate() error {
	if c.Simulation.Trials < 1 {
		return fmt.Errorf("%w: trials must be >= 1, got %d", ErrInvalid, c.Simulation.Trials)
	}
	if c.Simulation.Workers < 1 {
		return fmt.Errorf("%w: workers must be >= 1, got %d", ErrInvalid, c.Simulation.Workers)
	}
	if c.Simulation.Sigma < 0 {
		return fmt.Errorf("%w: sigma must be >= 0, got %v", ErrInvalid, c.Simulation.Sigma)
	}
	if _, err := c.Simulation.Variant.MarshalText(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	switch c.Logging.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: log format %q (valid: text, json)", ErrInvalid, c.Logging.Format)
	}
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "warning": true, "error": true}
	if c.Logging.Level != "" && !validLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("%w: log level %q (valid: debug, info, warn, error)", ErrInvalid, c.Logging.Level)
	}

	return nil
}

// applyEnvOverrides applies EPIMOB_* variables. Malformed numbers are errors.
func applyEnvOverrides(c *Config) error {
	if v := os.Getenv("EPIMOB_VARIANT"); v != "" {
		variant, err := intervention.ParseVariant(v)
		if err != nil {
			return fmt.Errorf("EPIMOB_VARIANT: %w", err)
		}
		c.Simulation.Variant = variant
	}
	if v := os.Getenv("EPIMOB_TRIALS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("EPIMOB_TRIALS: %w", err)
		}
		c.Simulation.Trials = n
	}
	if v := os.Getenv("EPIMOB_SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("EPIMOB_SEED: %w", err)
		}
		c.Simulation.Seed = n
	}
	if v := os.Getenv("EPIMOB_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("EPIMOB_WORKERS: %w", err)
		}
		c.Simulation.Workers = n
	}
	if v := os.Getenv("EPIMOB_SIGMA"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("EPIMOB_SIGMA: %w", err)
		}
		c.Simulation.Sigma = f
	}
	if v := os.Getenv("EPIMOB_DB"); v != "" {
		c.Store.Path = v
	}
	if v := os.Getenv("EPIMOB_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("EPIMOB_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}

	return nil
}
