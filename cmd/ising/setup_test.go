package main

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("ising", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestSetupLayersFileAndFlags(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("lattice:\n  size: 20\n  temperature: 2.0\n"), 0o644))
	dump := filepath.Join(dir, "effective.yaml")

	cfg, logger, err := setup(newFlagSet(), []string{"-config", path, "-temperature", "3", "-log-level", "error", "-dump-config", dump})
	require.NoError(t, err)
	require.NotNil(t, logger)
	assert.Equal(t, 20, cfg.Lattice.Size)
	assert.InDelta(t, 3, cfg.Lattice.Temperature, 1e-9)

	_, err = os.Stat(dump)
	assert.NoError(t, err)
}

func TestSetupRejectsInvalidConfig(t *testing.T) {
	_, _, err := setup(newFlagSet(), []string{"-size", "0", "-log-level", "error"})
	assert.Error(t, err)

	_, _, err = setup(newFlagSet(), []string{"-config", filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, err)
}
