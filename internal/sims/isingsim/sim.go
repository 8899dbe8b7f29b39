// Package isingsim adapts the Ising lattice to the interactive host: it owns
// the seeded random source, rebuilds the lattice on demand and exposes the
// parameter and readout surfaces used by the HUD.
package isingsim

import (
	"fmt"
	"log/slog"
	"strconv"

	"ising/internal/core"
	"ising/internal/logging"
	"ising/internal/telemetry"
	grid "ising/pkg/core"
	"ising/pkg/ising"
)

const (
	cellDown uint8 = 0
	cellUp   uint8 = 1
)

// Sim drives one lattice. Changes to size, coupling or initial state are held
// in the pending config until the next Reset.
type Sim struct {
	cfg   Config
	built Config

	lattice *ising.Lattice
	seed    int64
	epoch   int
	display []uint8

	log *slog.Logger
}

var (
	_ core.Sim                       = (*Sim)(nil)
	_ core.ReadoutProvider           = (*Sim)(nil)
	_ core.FieldProvider             = (*Sim)(nil)
	_ core.ParameterProvider         = (*Sim)(nil)
	_ core.ParameterControlsProvider = (*Sim)(nil)
	_ core.IntParameterSetter        = (*Sim)(nil)
	_ core.FloatParameterSetter      = (*Sim)(nil)
)

// New builds a Sim and its initial lattice from cfg.
func New(cfg Config, logger *slog.Logger) (*Sim, error) {
	s := &Sim{cfg: cfg, log: logging.OrDefault(logger).With("sim", "ising")}
	if err := s.Reset(0); err != nil {
		return nil, err
	}
	return s, nil
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "ising" }

// Size reports the grid dimensions of the current lattice.
func (s *Sim) Size() core.Size {
	n := s.lattice.Size()
	return core.Size{W: n, H: n}
}

// Cells exposes the display buffer: 1 for Up, 0 for Down.
func (s *Sim) Cells() []uint8 { return s.display }

// Lattice exposes the current lattice.
func (s *Sim) Lattice() *ising.Lattice { return s.lattice }

// Epoch returns the number of epochs since the last Reset.
func (s *Sim) Epoch() int { return s.epoch }

// Seed returns the seed the current lattice was built with.
func (s *Sim) Seed() int64 { return s.seed }

// Config returns the pending configuration.
func (s *Sim) Config() Config { return s.cfg }

// Reset rebuilds the lattice from the pending config. A zero seed reuses the
// configured one. On error the previous lattice is kept.
func (s *Sim) Reset(seed int64) error {
	if seed == 0 {
		seed = s.cfg.Seed
	}
	if err := s.cfg.Validate(); err != nil {
		return fmt.Errorf("regenerate lattice: %w", err)
	}
	latticeType, err := s.cfg.latticeType()
	if err != nil {
		return fmt.Errorf("regenerate lattice: %w", err)
	}
	initial, err := ising.ParseInitialState(s.cfg.InitialState)
	if err != nil {
		return fmt.Errorf("regenerate lattice: %w", err)
	}

	lattice, err := ising.New(s.cfg.Size, float32(s.cfg.Temperature), float32(s.cfg.MagneticField), initial, latticeType, grid.NewRNG(seed))
	if err != nil {
		return fmt.Errorf("regenerate lattice: %w", err)
	}

	s.cfg.LatticeType = latticeType.Coupling.Name()
	s.cfg.InitialState = initial.String()
	s.built = s.cfg
	s.lattice = lattice
	s.seed = seed
	s.epoch = 0
	s.display = make([]uint8, s.cfg.Size*s.cfg.Size)
	s.refreshDisplay()

	s.log.Info("lattice regenerated",
		"size", s.cfg.Size,
		"lattice", latticeType.String(),
		"initial", initial.String(),
		"temperature", s.cfg.Temperature,
		"field", s.cfg.MagneticField,
		"seed", seed,
	)
	return nil
}

// Step advances the lattice by one epoch.
func (s *Sim) Step() {
	s.lattice.Epoch()
	s.epoch++
	s.refreshDisplay()
}

func (s *Sim) refreshDisplay() {
	n := s.lattice.Size()
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			v := cellDown
			if s.lattice.At(x, y) == ising.Up {
				v = cellUp
			}
			s.display[x+y*n] = v
		}
	}
}

// Field returns the per-site Hamiltonian for the energy overlay.
func (s *Sim) Field() []float32 { return s.lattice.LocalEnergies() }

// Record captures the current observables as a telemetry row.
func (s *Sim) Record() telemetry.Record {
	return telemetry.FromObservables(s.epoch, s.lattice.Measure(), s.lattice.LastEpoch())
}

// Readouts formats the live observables for the HUD.
func (s *Sim) Readouts() []core.Readout {
	obs := s.lattice.Measure()
	return []core.Readout{
		{Label: "Magnetisation", Value: strconv.FormatFloat(float64(obs.Magnetisation), 'f', 4, 32)},
		{Label: "Heat capacity", Value: strconv.FormatFloat(float64(obs.HeatCapacity), 'f', 2, 32)},
		{Label: "Internal energy", Value: strconv.FormatFloat(float64(obs.Energy), 'f', 1, 32)},
		{Label: "Acceptance", Value: strconv.FormatFloat(100*s.lattice.LastEpoch().AcceptanceRate(), 'f', 1, 64) + "%"},
		{Label: "Epoch", Value: strconv.Itoa(s.epoch)},
	}
}

// Preview renders the lattice for a target pixel extent.
func (s *Sim) Preview(extent int) ising.PixelBuffer {
	return s.lattice.RenderPreview(extent)
}

// Export returns the 1:1 RGB buffer and side length.
func (s *Sim) Export() ([]byte, int) {
	return s.lattice.ExportRaw()
}
