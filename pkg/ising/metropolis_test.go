package ising

import (
	"math"
	"testing"

	"ising/pkg/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepAcceptsEnergyLoweringFlip(t *testing.T) {
	src := &scriptedSource{ints: []int{1, 1}}
	l, err := NewUniform(3, 1, 0, Up, FerromagneticLattice(), src)
	require.NoError(t, err)
	l.flip(1, 1)
	before := cloneSpins(l)

	require.True(t, l.Step())
	assert.Equal(t, 1, diffCount(before, l.state))
	assert.Equal(t, Up, l.At(1, 1))
	assert.Equal(t, 0, src.floatCalls, "downhill moves must not draw")
}

func TestStepAcceptsZeroEnergyChangeWithoutDraw(t *testing.T) {
	src := &scriptedSource{}
	l, err := NewUniform(1, 1, 0, Up, FerromagneticLattice(), src)
	require.NoError(t, err)

	require.True(t, l.Step())
	assert.Equal(t, Down, l.At(0, 0))
	require.True(t, l.Step())
	assert.Equal(t, Up, l.At(0, 0))
	assert.Equal(t, 0, src.floatCalls)
}

func TestStepRejectedMovesLeaveGridUnchanged(t *testing.T) {
	src := &scriptedSource{ints: []int{0, 1, 2, 2, 1, 0}, floats: []float64{0.999}}
	l, err := NewUniform(3, 1, 0, Up, FerromagneticLattice(), src)
	require.NoError(t, err)
	before := cloneSpins(l)

	for i := 0; i < 50; i++ {
		require.False(t, l.Step())
	}
	assert.Equal(t, before, l.state)
	assert.Equal(t, 50, src.floatCalls)
}

func TestStepUphillAcceptedOnLowDraw(t *testing.T) {
	src := &scriptedSource{ints: []int{2, 0}, floats: []float64{0}}
	l, err := NewUniform(3, 1, 0, Up, FerromagneticLattice(), src)
	require.NoError(t, err)
	before := cloneSpins(l)

	require.True(t, l.Step())
	assert.Equal(t, 1, diffCount(before, l.state))
	assert.Equal(t, Down, l.At(2, 0))
}

func TestStepZeroTemperatureNeverClimbs(t *testing.T) {
	for _, temp := range []float32{0, -1} {
		src := &scriptedSource{ints: []int{0, 1, 2}, floats: []float64{0}}
		l, err := NewUniform(3, temp, 0, Down, FerromagneticLattice(), src)
		require.NoError(t, err)
		before := cloneSpins(l)

		for i := 0; i < 30; i++ {
			require.False(t, l.Step())
		}
		assert.Equal(t, before, l.state, "temperature %v", temp)
		assert.Equal(t, 0, src.floatCalls, "temperature %v", temp)
	}
}

func TestEpochAttemptsSizeSquared(t *testing.T) {
	coords := make([]int, 0, 32)
	for i := 0; i < 16; i++ {
		coords = append(coords, i%4, i/4)
	}
	src := &scriptedSource{ints: coords}
	l, err := NewUniform(4, 0, 0, Up, FerromagneticLattice(), src)
	require.NoError(t, err)

	l.Epoch()
	assert.Equal(t, 32, src.intCalls, "two coordinate draws per attempt")
	assert.Equal(t, EpochStats{Attempts: 16, Accepted: 0}, l.LastEpoch())
	assert.Equal(t, float64(0), l.LastEpoch().AcceptanceRate())

	l.Epoch()
	assert.Equal(t, 64, src.intCalls)
}

func TestEpochLowTemperatureKeepsOrder(t *testing.T) {
	l, err := NewUniform(16, 0.1, 0, Up, FerromagneticLattice(), core.NewRNG(9))
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		l.Epoch()
	}
	assert.Greater(t, l.Magnetisation(), float32(0.99))
}

func TestEpochHighTemperatureDisorders(t *testing.T) {
	l, err := NewUniform(32, 1, 0, Up, FerromagneticLattice(), core.NewRNG(9))
	require.NoError(t, err)
	l.SetTemperature(1000)
	assert.Equal(t, float32(1000), l.Temperature())
	for i := 0; i < 20; i++ {
		l.Epoch()
	}
	assert.Less(t, math.Abs(float64(l.Magnetisation())), 0.2)
	assert.Greater(t, l.LastEpoch().AcceptanceRate(), 0.5)
}

func TestEpochFieldAlignsSpins(t *testing.T) {
	l, err := NewUniform(16, 1, 5, Down, FerromagneticLattice(), core.NewRNG(2))
	require.NoError(t, err)
	for i := 0; i < 50; i++ {
		l.Epoch()
	}
	assert.Greater(t, l.Magnetisation(), float32(0.9))
}
