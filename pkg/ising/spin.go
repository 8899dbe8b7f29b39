package ising

import (
	"fmt"
	"strings"
)

// Spin is a two-state magnetic moment.
type Spin int8

const (
	// Up is the +1 spin state.
	Up Spin = 1
	// Down is the -1 spin state.
	Down Spin = -1
)

// Valid reports whether s is Up or Down.
func (s Spin) Valid() bool { return s == Up || s == Down }

// Int returns +1 for Up and -1 for Down.
func (s Spin) Int() int { return int(s) }

// Mul returns Up when both spins are aligned and Down otherwise.
func (s Spin) Mul(o Spin) Spin { return s * o }

// Neg returns the flipped spin.
func (s Spin) Neg() Spin { return -s }

func (s Spin) String() string {
	switch s {
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return fmt.Sprintf("Spin(%d)", int8(s))
	}
}

// ParseSpin converts "up" or "down" (case-insensitive) to a Spin.
func ParseSpin(name string) (Spin, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "up", "+1", "+":
		return Up, nil
	case "down", "-1", "-":
		return Down, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidSpin, name)
}
