package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ising/internal/sims/isingsim"
	"ising/pkg/ising"
)

func TestDefaultsMatchSimDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, isingsim.DefaultConfig(), cfg.Lattice)
	assert.Equal(t, "info", cfg.Log.Level)
	require.NoError(t, cfg.Validate())
}

func TestLoadOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	body := "lattice:\n  size: 64\n  lattice_type: spinglass\ndisplay:\n  epochs_per_second: 10\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.Lattice.Size)
	assert.Equal(t, "spinglass", cfg.Lattice.LatticeType)
	assert.InDelta(t, 0.5, cfg.Lattice.PAntiferro, 1e-9, "unset keys keep defaults")
	assert.InDelta(t, 10, cfg.Display.EpochsPerSecond, 1e-9)
	assert.Equal(t, 60, cfg.Display.TPS)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("lattice: [1, 2"), 0o644))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"size", func(c *Config) { c.Lattice.Size = 0 }, ising.ErrInvalidSize},
		{"probability", func(c *Config) { c.Lattice.LatticeType = "spinglass"; c.Lattice.PAntiferro = -1 }, ising.ErrInvalidProbability},
		{"tps", func(c *Config) { c.Display.TPS = 0 }, ErrInvalidConfig},
		{"eps", func(c *Config) { c.Display.EpochsPerSecond = 120 }, ErrInvalidConfig},
		{"extent", func(c *Config) { c.Display.Extent = -1 }, ErrInvalidConfig},
		{"log every", func(c *Config) { c.Telemetry.LogEvery = -2 }, ErrInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), tt.want)
		})
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg := Defaults()
	cfg.Lattice.Temperature = 2.25
	cfg.Export.Path = "out/lattice.png"

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	require.NoError(t, cfg.WriteYAML(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestOverridesApplyOnlyVisitedFlags(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	o := NewOverrides()
	o.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-size", "48", "-lattice", "antiferromagnetic", "-log-level", "debug"}))

	cfg := Defaults()
	cfg.Lattice.Temperature = 3
	o.Apply(fs, cfg)

	assert.Equal(t, 48, cfg.Lattice.Size)
	assert.Equal(t, "antiferromagnetic", cfg.Lattice.LatticeType)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.InDelta(t, 3, cfg.Lattice.Temperature, 1e-9, "unvisited flags must not reset file values")
}

func TestOverridesSetPairs(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	o := NewOverrides()
	o.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-set", "temperature=2.5", "-set", "initial=down", "-set", "size=oops"}))

	cfg := Defaults()
	o.Apply(fs, cfg)
	assert.InDelta(t, 2.5, cfg.Lattice.Temperature, 1e-9)
	assert.Equal(t, "down", cfg.Lattice.InitialState)
	assert.Equal(t, 32, cfg.Lattice.Size)

	assert.Error(t, fs.Parse([]string{"-set", "novalue"}))
}
