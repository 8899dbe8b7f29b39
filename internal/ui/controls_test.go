package ui

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ising/internal/core"
	"ising/internal/logging"
	"ising/internal/sims/isingsim"
)

func newPanel(t *testing.T) (*controlPanel, *isingsim.Sim) {
	t.Helper()
	cfg := isingsim.DefaultConfig()
	cfg.Size = 8
	sim, err := isingsim.New(cfg, logging.New(io.Discard, "error"))
	require.NoError(t, err)
	p := newControlPanel(sim)
	p.refresh(sim.Parameters())
	return p, sim
}

func controlIndex(t *testing.T, p *controlPanel, key string) int {
	t.Helper()
	for i, c := range p.controls {
		if c.control.Key == key {
			return i
		}
	}
	t.Fatalf("control %q not found", key)
	return -1
}

func TestRefreshReadsSnapshot(t *testing.T) {
	p, _ := newPanel(t)

	temp := p.controls[controlIndex(t, p, "temperature")]
	assert.True(t, temp.hasValue)
	assert.Equal(t, "1.00", temp.value)

	lattice := p.controls[controlIndex(t, p, "lattice")]
	assert.Equal(t, "ferromagnetic", lattice.value)
	assert.Zero(t, lattice.number)
}

func TestAdjustFloatClampsAndApplies(t *testing.T) {
	p, sim := newPanel(t)
	i := controlIndex(t, p, "temperature")

	require.True(t, p.adjust(i, 1))
	assert.InDelta(t, 1.05, sim.Lattice().Temperature(), 1e-6)

	require.True(t, sim.SetFloatParameter("temperature", 0))
	p.refresh(sim.Parameters())
	_, ok := p.target(i, -1)
	assert.False(t, ok, "cannot step below the minimum")
}

func TestAdjustChoiceWraps(t *testing.T) {
	p, sim := newPanel(t)
	i := controlIndex(t, p, "lattice")

	require.True(t, p.adjust(i, -1))
	assert.Equal(t, "spinglass", sim.Config().LatticeType)
	assert.Equal(t, "spinglass", p.controls[i].value)

	p.refresh(sim.Parameters())
	assert.True(t, p.controls[i].pending)

	require.True(t, p.adjust(i, 1))
	assert.Equal(t, "ferromagnetic", sim.Config().LatticeType)
}

func TestAdjustIntUsesStep(t *testing.T) {
	p, sim := newPanel(t)
	i := controlIndex(t, p, "size")

	require.True(t, p.adjust(i, 1))
	assert.Equal(t, 16, sim.Config().Size)
	assert.Equal(t, 8, sim.Lattice().Size(), "size waits for reset")
}

func TestSelectNextWraps(t *testing.T) {
	p, _ := newPanel(t)
	n := len(p.controls)
	require.Greater(t, n, 1)

	p.selectNext(-1)
	assert.Equal(t, n-1, p.selected)
	p.selectNext(1)
	assert.Zero(t, p.selected)
}

func TestPanelWithoutProviders(t *testing.T) {
	p := newControlPanel(bareSim{})
	assert.Empty(t, p.controls)
	p.selectNext(1)
	assert.False(t, p.adjust(0, 1))
}

type bareSim struct{}

func (bareSim) Name() string      { return "bare" }
func (bareSim) Size() core.Size   { return core.Size{W: 1, H: 1} }
func (bareSim) Reset(int64) error { return nil }
func (bareSim) Step()             {}
func (bareSim) Cells() []uint8    { return []uint8{0} }
