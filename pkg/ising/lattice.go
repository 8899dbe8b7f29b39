package ising

import (
	"fmt"
	"math"

	"ising/pkg/core"
)

// Lattice is a square toroidal Ising lattice.
type Lattice struct {
	state        []Spin
	interactions []InteractionSet
	torus        core.Torus
	size         int

	temperature float32
	// z component of the external magnetic field
	magneticField float32

	src  core.Source
	last EpochStats
}

// EpochStats counts the Metropolis attempts of a single epoch.
type EpochStats struct {
	Attempts int
	Accepted int
}

// AcceptanceRate returns Accepted/Attempts, or 0 before the first epoch.
func (s EpochStats) AcceptanceRate() float64 {
	if s.Attempts == 0 {
		return 0
	}
	return float64(s.Accepted) / float64(s.Attempts)
}

// NewRandom builds a lattice where each site is an independent fair coin flip.
func NewRandom(size int, temperature, magneticField float32, latticeType LatticeType, src core.Source) (*Lattice, error) {
	l, err := newLattice(size, temperature, magneticField, latticeType, src)
	if err != nil {
		return nil, err
	}
	for i := range l.state {
		if src.IntN(2) == 1 {
			l.state[i] = Up
		} else {
			l.state[i] = Down
		}
	}
	l.buildInteractions(latticeType)
	return l, nil
}

// NewUniform builds a lattice where every site holds spin.
func NewUniform(size int, temperature, magneticField float32, spin Spin, latticeType LatticeType, src core.Source) (*Lattice, error) {
	if !spin.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSpin, spin)
	}
	l, err := newLattice(size, temperature, magneticField, latticeType, src)
	if err != nil {
		return nil, err
	}
	for i := range l.state {
		l.state[i] = spin
	}
	l.buildInteractions(latticeType)
	return l, nil
}

// New dispatches to NewRandom or NewUniform according to initial.
func New(size int, temperature, magneticField float32, initial InitialState, latticeType LatticeType, src core.Source) (*Lattice, error) {
	switch initial {
	case Random:
		return NewRandom(size, temperature, magneticField, latticeType, src)
	case AllUp:
		return NewUniform(size, temperature, magneticField, Up, latticeType, src)
	case AllDown:
		return NewUniform(size, temperature, magneticField, Down, latticeType, src)
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownInitialState, initial)
}

func newLattice(size int, temperature, magneticField float32, latticeType LatticeType, src core.Source) (*Lattice, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	if err := latticeType.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, ErrNilSource
	}
	return &Lattice{
		state:         make([]Spin, size*size),
		interactions:  make([]InteractionSet, size*size),
		torus:         core.Torus{N: size},
		size:          size,
		temperature:   temperature,
		magneticField: magneticField,
		src:           src,
	}, nil
}

func (l *Lattice) buildInteractions(latticeType LatticeType) {
	for i := range l.interactions {
		l.interactions[i] = latticeType.bonds(l.src)
	}
}

// Size returns the side length.
func (l *Lattice) Size() int { return l.size }

// Temperature returns the current temperature.
func (l *Lattice) Temperature() float32 { return l.temperature }

// SetTemperature changes the temperature used by subsequent steps.
func (l *Lattice) SetTemperature(t float32) { l.temperature = t }

// MagneticField returns the external field strength.
func (l *Lattice) MagneticField() float32 { return l.magneticField }

// SetMagneticField changes the field used by subsequent energy evaluations.
func (l *Lattice) SetMagneticField(b float32) { l.magneticField = b }

// Index maps (x, y) to the flat grid index with periodic wrapping.
func (l *Lattice) Index(x, y int) int { return l.torus.Index(x, y) }

// At returns the spin at (x, y) with periodic wrapping.
func (l *Lattice) At(x, y int) Spin { return l.state[l.Index(x, y)] }

// LastEpoch returns the attempt counters of the most recent Epoch call.
func (l *Lattice) LastEpoch() EpochStats { return l.last }

// EffectiveInteractions assembles the four couplings of (x, y) from the site
// itself and its right and lower neighbours.
func (l *Lattice) EffectiveInteractions(x, y int) Interactions {
	current := l.interactions[l.Index(x, y)]
	right := l.interactions[l.Index(x+1, y)]
	below := l.interactions[l.Index(x, y+1)]
	return Interactions{
		Up:    current.Up,
		Left:  current.Left,
		Down:  below.Up,
		Right: right.Left,
	}
}

// Hamiltonian returns the energy contribution of site (x, y), including its
// share of the external field term.
func (l *Lattice) Hamiltonian(x, y int) float32 {
	s := l.At(x, y)
	in := l.EffectiveInteractions(x, y)

	var energy float32
	energy -= in.Left * float32(s.Mul(l.At(x-1, y)))
	energy -= in.Up * float32(s.Mul(l.At(x, y-1)))
	energy -= in.Right * float32(s.Mul(l.At(x+1, y)))
	energy -= in.Down * float32(s.Mul(l.At(x, y+1)))

	energy -= float32(s) * l.magneticField
	return energy
}

// neighbourhoodEnergy sums the Hamiltonian of (x, y) and its four neighbours,
// the only sites whose terms depend on the spin at (x, y).
func (l *Lattice) neighbourhoodEnergy(x, y int) float32 {
	return l.Hamiltonian(x, y) +
		l.Hamiltonian(x-1, y) +
		l.Hamiltonian(x, y-1) +
		l.Hamiltonian(x+1, y) +
		l.Hamiltonian(x, y+1)
}

func (l *Lattice) flip(x, y int) {
	i := l.Index(x, y)
	l.state[i] = l.state[i].Neg()
}

// Step proposes flipping one uniformly chosen site and applies the Metropolis
// acceptance rule. It reports whether the flip was kept.
//
// Moves that do not raise the energy are always kept. Energy-raising moves are
// kept with probability exp(-dE/T); at T <= 0 they are always undone.
func (l *Lattice) Step() bool {
	x := l.src.IntN(l.size)
	y := l.src.IntN(l.size)

	dEnergy := -l.neighbourhoodEnergy(x, y)
	l.flip(x, y)
	dEnergy += l.neighbourhoodEnergy(x, y)

	if dEnergy > 0 && !l.acceptUphill(dEnergy) {
		l.flip(x, y)
		return false
	}
	return true
}

func (l *Lattice) acceptUphill(dEnergy float32) bool {
	if l.temperature <= 0 {
		return false
	}
	return l.src.Float64() <= boltzmann(dEnergy, l.temperature)
}

// boltzmann is the acceptance probability for an energy increase at a
// positive temperature.
func boltzmann(dEnergy, temperature float32) float64 {
	return math.Exp(-float64(dEnergy) / float64(temperature))
}

// Epoch performs size² independent Step attempts.
func (l *Lattice) Epoch() {
	stats := EpochStats{Attempts: l.size * l.size}
	for i := 0; i < stats.Attempts; i++ {
		if l.Step() {
			stats.Accepted++
		}
	}
	l.last = stats
}
