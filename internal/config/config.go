// Package config loads the simulator configuration. Embedded defaults are
// overlaid by an optional YAML file and then by command-line flags.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"ising/internal/sims/isingsim"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config is the full application configuration.
type Config struct {
	Lattice   isingsim.Config `yaml:"lattice"`
	Display   DisplayConfig   `yaml:"display"`
	Export    ExportConfig    `yaml:"export"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Log       LogConfig       `yaml:"log"`
}

type DisplayConfig struct {
	Extent          int     `yaml:"extent"`
	PanelWidth      int     `yaml:"panel_width"`
	TPS             int     `yaml:"tps"`
	EpochsPerSecond float64 `yaml:"epochs_per_second"`
}

type ExportConfig struct {
	Path string `yaml:"path"`
}

type TelemetryConfig struct {
	CSV      string `yaml:"csv"`
	LogEvery int    `yaml:"log_every"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Defaults returns the embedded configuration.
func Defaults() *Config {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		panic(fmt.Sprintf("parsing embedded defaults: %v", err))
	}
	return cfg
}

// Load reads the embedded defaults and overlays the file at path, if any.
// Keys missing from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}
	return cfg, nil
}

// Validate checks ranges the loader cannot express.
func (c *Config) Validate() error {
	if err := c.Lattice.Validate(); err != nil {
		return fmt.Errorf("lattice: %w", err)
	}
	if c.Display.Extent < 0 {
		return fmt.Errorf("%w: display.extent %d", ErrInvalidConfig, c.Display.Extent)
	}
	if c.Display.TPS <= 0 {
		return fmt.Errorf("%w: display.tps %d", ErrInvalidConfig, c.Display.TPS)
	}
	if c.Display.EpochsPerSecond < 1 || c.Display.EpochsPerSecond > 60 {
		return fmt.Errorf("%w: display.epochs_per_second %v not in [1, 60]", ErrInvalidConfig, c.Display.EpochsPerSecond)
	}
	if c.Telemetry.LogEvery < 0 {
		return fmt.Errorf("%w: telemetry.log_every %d", ErrInvalidConfig, c.Telemetry.LogEvery)
	}
	return nil
}

// WriteYAML saves the configuration, creating parent directories.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating config dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
