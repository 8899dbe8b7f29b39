package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapNegativeInputs(t *testing.T) {
	tests := []struct {
		v, n, want int
	}{
		{0, 5, 0},
		{4, 5, 4},
		{5, 5, 0},
		{-1, 5, 4},
		{-5, 5, 0},
		{-6, 5, 4},
		{11, 5, 1},
		{-3, 1, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Wrap(tt.v, tt.n), "Wrap(%d, %d)", tt.v, tt.n)
	}
}

func TestTorusIndexPeriodic(t *testing.T) {
	for _, n := range []int{1, 2, 3, 7, 16} {
		tor := Torus{N: n}
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				idx := tor.Index(x, y)
				require.Equal(t, x+y*n, idx)
				require.Equal(t, idx, tor.Index(x+n, y))
				require.Equal(t, idx, tor.Index(x, y+n))
				require.Equal(t, idx, tor.Index(x-n, y))
				require.Equal(t, idx, tor.Index(x, y-n))
			}
		}
		assert.Equal(t, n*n, tor.Cells())
	}
}

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(7)
	b := NewRNG(7)
	for i := 0; i < 64; i++ {
		require.Equal(t, a.IntN(100), b.IntN(100))
		require.Equal(t, a.Float64(), b.Float64())
		require.Equal(t, a.Bool(), b.Bool())
	}
}

func TestChanceSaturates(t *testing.T) {
	rng := NewRNG(1)
	for i := 0; i < 32; i++ {
		assert.False(t, Chance(rng, 0))
		assert.False(t, Chance(rng, -0.5))
		assert.True(t, Chance(rng, 1))
		assert.True(t, Chance(rng, 2))
	}
}
