package ising

import (
	"testing"

	"ising/pkg/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func patternLattice(t *testing.T) *Lattice {
	t.Helper()
	l, err := NewUniform(2, 1, 0, Up, FerromagneticLattice(), core.NewRNG(1))
	require.NoError(t, err)
	copy(l.state, []Spin{Up, Down, Down, Up})
	return l
}

func TestExportRawKnownPattern(t *testing.T) {
	l := patternLattice(t)
	rgb, side := l.ExportRaw()
	assert.Equal(t, 2, side)
	assert.Equal(t, []byte{0, 0, 255, 255, 0, 0, 255, 0, 0, 0, 0, 255}, rgb)
}

func TestRenderPreviewUpscales(t *testing.T) {
	l := patternLattice(t)
	buf := l.RenderPreview(3)
	require.Equal(t, 4, buf.Width)
	require.Equal(t, 4, buf.Height)
	require.Len(t, buf.RGB, 4*4*3)

	for py := 0; py < 4; py++ {
		for px := 0; px < 4; px++ {
			want := spinColor(l.At(px/2, py/2))
			base := (py*4 + px) * 3
			got := buf.RGB[base : base+3]
			assert.Equal(t, []byte{want.R, want.G, want.B}, got, "pixel (%d,%d)", px, py)
		}
	}
}

func TestPreviewScale(t *testing.T) {
	tests := []struct {
		extent, size, want int
	}{
		{3, 2, 2},
		{0, 5, 1},
		{-10, 5, 1},
		{4, 5, 1},
		{512, 32, 17},
		{511, 32, 16},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PreviewScale(tt.extent, tt.size), "extent %d size %d", tt.extent, tt.size)
	}
}

func TestRenderPreviewIsPure(t *testing.T) {
	l := patternLattice(t)
	before := cloneSpins(l)
	first := l.RenderPreview(10)
	second := l.RenderPreview(10)
	assert.Equal(t, first, second)
	assert.Equal(t, before, l.state)
}
