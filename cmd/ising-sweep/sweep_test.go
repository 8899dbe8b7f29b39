package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ising/internal/telemetry"
	"ising/pkg/ising"
)

func TestTemperatures(t *testing.T) {
	assert.Equal(t, []float64{1}, temperatures(1, 3, 1))
	got := temperatures(1, 3, 5)
	require.Len(t, got, 5)
	assert.InDelta(t, 1.0, got[0], 1e-12)
	assert.InDelta(t, 1.5, got[1], 1e-12)
	assert.InDelta(t, 3.0, got[4], 1e-12)
}

func TestSweepOrderedAndDeterministic(t *testing.T) {
	p := sweepParams{
		size:    6,
		warmup:  5,
		samples: 10,
		lattice: ising.FerromagneticLattice(),
		initial: ising.AllUp,
		seed:    3,
	}
	temps := temperatures(0.5, 5, 4)

	var seen int
	one, err := sweep(p, temps, 1, func(telemetry.Summary) { seen++ })
	require.NoError(t, err)
	assert.Equal(t, len(temps), seen)

	many, err := sweep(p, temps, 4, nil)
	require.NoError(t, err)
	assert.Equal(t, one, many, "results must not depend on the worker count")

	for i, s := range many {
		assert.InDelta(t, temps[i], s.Temperature, 1e-6)
		assert.Equal(t, 10, s.Samples)
	}
	assert.Greater(t, many[0].MeanAbsMagnetisation, many[3].MeanAbsMagnetisation)
}

func TestSweepPropagatesErrors(t *testing.T) {
	p := sweepParams{size: 0, samples: 1, lattice: ising.FerromagneticLattice()}
	_, err := sweep(p, []float64{1}, 2, nil)
	assert.ErrorIs(t, err, ising.ErrInvalidSize)
}
