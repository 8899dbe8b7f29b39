package isingsim

import (
	"fmt"
	"strconv"

	"ising/pkg/ising"
)

// Config holds the construction parameters of the lattice. Temperature and
// MagneticField also track the live values adjusted from the HUD.
type Config struct {
	Size          int     `yaml:"size"`
	Temperature   float64 `yaml:"temperature"`
	MagneticField float64 `yaml:"magnetic_field"`
	LatticeType   string  `yaml:"lattice_type"`
	PAntiferro    float64 `yaml:"p_antiferro"`
	InitialState  string  `yaml:"initial_state"`
	Seed          int64   `yaml:"seed"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Size:          32,
		Temperature:   1.0,
		MagneticField: 0,
		LatticeType:   "ferromagnetic",
		PAntiferro:    0.5,
		InitialState:  "random",
		Seed:          42,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	return DefaultConfig().WithOverrides(cfg)
}

// WithOverrides returns a copy of c with recognised keys replaced. Values that
// fail to parse or fall outside their range are ignored.
func (c Config) WithOverrides(cfg map[string]string) Config {
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Size = parsed
		}
	}
	if v, ok := cfg["temperature"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Temperature = parsed
		}
	}
	if v, ok := cfg["field"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.MagneticField = parsed
		}
	}
	if v, ok := cfg["lattice"]; ok {
		if _, err := ising.ParseLatticeType(v, c.PAntiferro); err == nil {
			c.LatticeType = v
		}
	}
	if v, ok := cfg["p_antiferro"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.PAntiferro = parsed
		}
	}
	if v, ok := cfg["initial"]; ok {
		if _, err := ising.ParseInitialState(v); err == nil {
			c.InitialState = v
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

// Validate checks the config can build a lattice.
func (c Config) Validate() error {
	if c.Size < 1 {
		return fmt.Errorf("%w: got %d", ising.ErrInvalidSize, c.Size)
	}
	if _, err := c.latticeType(); err != nil {
		return err
	}
	if _, err := ising.ParseInitialState(c.InitialState); err != nil {
		return err
	}
	return nil
}

func (c Config) latticeType() (ising.LatticeType, error) {
	return ising.ParseLatticeType(c.LatticeType, c.PAntiferro)
}
