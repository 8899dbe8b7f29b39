package ising

import "errors"

var (
	// ErrInvalidSize indicates a lattice side length below one.
	ErrInvalidSize = errors.New("ising: lattice size must be at least 1")
	// ErrInvalidProbability indicates a spin-glass antiferromagnetic probability outside [0, 1].
	ErrInvalidProbability = errors.New("ising: spin glass probability must lie in [0, 1]")
	// ErrInvalidSpin indicates a spin value other than Up or Down.
	ErrInvalidSpin = errors.New("ising: spin must be Up or Down")
	// ErrNilSource indicates a lattice constructed without a random source.
	ErrNilSource = errors.New("ising: random source is required")
	// ErrUnknownLatticeType indicates an unrecognised coupling topology name.
	ErrUnknownLatticeType = errors.New("ising: unknown lattice type")
	// ErrUnknownInitialState indicates an unrecognised initial state name.
	ErrUnknownInitialState = errors.New("ising: unknown initial state")
)
