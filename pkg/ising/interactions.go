package ising

import (
	"fmt"
	"math"
	"strings"

	"ising/pkg/core"
)

// InteractionSet is the per-site bond storage. The coupling to the site below
// is the Up value stored at that site, and the coupling to the site on the
// right is the Left value stored there.
type InteractionSet struct {
	Up   float32
	Left float32
}

var (
	ferromagneticBonds     = InteractionSet{Up: 1, Left: 1}
	antiferromagneticBonds = InteractionSet{Up: -1, Left: -1}
)

// Interactions holds the four effective couplings of a single site.
type Interactions struct {
	Up    float32
	Down  float32
	Left  float32
	Right float32
}

// Coupling selects the bond topology of a lattice.
type Coupling uint8

const (
	// Ferromagnetic sets every bond to +1.
	Ferromagnetic Coupling = iota
	// Antiferromagnetic sets every bond to -1.
	Antiferromagnetic
	// SpinGlass draws every bond independently as -1 with probability
	// PAntiferro and +1 otherwise.
	SpinGlass
)

// LatticeType describes how bonds are generated at construction time.
type LatticeType struct {
	Coupling   Coupling
	PAntiferro float64
}

// FerromagneticLattice returns the all +1 bond topology.
func FerromagneticLattice() LatticeType { return LatticeType{Coupling: Ferromagnetic} }

// AntiferromagneticLattice returns the all -1 bond topology.
func AntiferromagneticLattice() LatticeType { return LatticeType{Coupling: Antiferromagnetic} }

// SpinGlassLattice returns a randomized topology where each bond is -1 with
// probability p.
func SpinGlassLattice(p float64) LatticeType {
	return LatticeType{Coupling: SpinGlass, PAntiferro: p}
}

// Validate reports ErrInvalidProbability for spin glasses with p outside [0, 1].
func (t LatticeType) Validate() error {
	switch t.Coupling {
	case Ferromagnetic, Antiferromagnetic:
		return nil
	case SpinGlass:
		if math.IsNaN(t.PAntiferro) || t.PAntiferro < 0 || t.PAntiferro > 1 {
			return fmt.Errorf("%w: got %v", ErrInvalidProbability, t.PAntiferro)
		}
		return nil
	}
	return fmt.Errorf("%w: coupling %d", ErrUnknownLatticeType, t.Coupling)
}

func (t LatticeType) String() string {
	switch t.Coupling {
	case Ferromagnetic:
		return "ferromagnetic"
	case Antiferromagnetic:
		return "antiferromagnetic"
	case SpinGlass:
		return fmt.Sprintf("spinglass(p=%g)", t.PAntiferro)
	}
	return fmt.Sprintf("LatticeType(%d)", t.Coupling)
}

// Name returns the config name of the coupling without parameters.
func (c Coupling) Name() string {
	switch c {
	case Ferromagnetic:
		return "ferromagnetic"
	case Antiferromagnetic:
		return "antiferromagnetic"
	case SpinGlass:
		return "spinglass"
	}
	return ""
}

// ParseLatticeType resolves a config name. p is only used for spin glasses.
func ParseLatticeType(name string, p float64) (LatticeType, error) {
	var t LatticeType
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ferromagnetic", "ferro", "":
		t = FerromagneticLattice()
	case "antiferromagnetic", "antiferro":
		t = AntiferromagneticLattice()
	case "spinglass", "spin_glass", "spin-glass", "glass":
		t = SpinGlassLattice(p)
	default:
		return LatticeType{}, fmt.Errorf("%w: %q", ErrUnknownLatticeType, name)
	}
	if err := t.Validate(); err != nil {
		return LatticeType{}, err
	}
	return t, nil
}

// bonds returns the stored couplings for one site. Spin glasses draw the up
// bond before the left bond.
func (t LatticeType) bonds(src core.Source) InteractionSet {
	switch t.Coupling {
	case Antiferromagnetic:
		return antiferromagneticBonds
	case SpinGlass:
		return InteractionSet{
			Up:   glassBond(src, t.PAntiferro),
			Left: glassBond(src, t.PAntiferro),
		}
	default:
		return ferromagneticBonds
	}
}

func glassBond(src core.Source, p float64) float32 {
	if core.Chance(src, p) {
		return -1
	}
	return 1
}

// InitialState selects how spins are assigned when a lattice is built.
type InitialState uint8

const (
	// Random assigns every site an independent fair coin flip.
	Random InitialState = iota
	// AllUp assigns Up to every site.
	AllUp
	// AllDown assigns Down to every site.
	AllDown
)

func (s InitialState) String() string {
	switch s {
	case Random:
		return "random"
	case AllUp:
		return "up"
	case AllDown:
		return "down"
	}
	return fmt.Sprintf("InitialState(%d)", uint8(s))
}

// ParseInitialState resolves "random", "up" or "down".
func ParseInitialState(name string) (InitialState, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "random", "":
		return Random, nil
	case "up", "all_up", "allup":
		return AllUp, nil
	case "down", "all_down", "alldown":
		return AllDown, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownInitialState, name)
}
