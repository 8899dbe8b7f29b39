package ising

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpinArithmetic(t *testing.T) {
	assert.Equal(t, Up, Up.Mul(Up))
	assert.Equal(t, Up, Down.Mul(Down))
	assert.Equal(t, Down, Up.Mul(Down))
	assert.Equal(t, Down, Down.Mul(Up))
	assert.Equal(t, Down, Up.Neg())
	assert.Equal(t, Up, Down.Neg())
	assert.Equal(t, 1, Up.Int())
	assert.Equal(t, -1, Down.Int())
	assert.False(t, Spin(0).Valid())
}

func TestParseNames(t *testing.T) {
	s, err := ParseSpin(" Down ")
	require.NoError(t, err)
	assert.Equal(t, Down, s)

	_, err = ParseSpin("sideways")
	assert.True(t, errors.Is(err, ErrInvalidSpin))

	lt, err := ParseLatticeType("spinglass", 0.25)
	require.NoError(t, err)
	assert.Equal(t, SpinGlassLattice(0.25), lt)

	lt, err = ParseLatticeType("antiferro", 0)
	require.NoError(t, err)
	assert.Equal(t, Antiferromagnetic, lt.Coupling)

	_, err = ParseLatticeType("spinglass", 1.5)
	assert.True(t, errors.Is(err, ErrInvalidProbability))

	_, err = ParseLatticeType("paramagnet", 0)
	assert.True(t, errors.Is(err, ErrUnknownLatticeType))

	st, err := ParseInitialState("all_down")
	require.NoError(t, err)
	assert.Equal(t, AllDown, st)

	_, err = ParseInitialState("checkerboard")
	assert.True(t, errors.Is(err, ErrUnknownInitialState))
}
