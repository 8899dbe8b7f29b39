// Package ising simulates a square two-dimensional Ising lattice with
// periodic boundaries using single-spin Metropolis updates.
//
// A Lattice owns a row-major grid of spins and a parallel grid of bond
// couplings. Each site stores only its up and left couplings; the down and
// right couplings are read from the neighbours that own those bonds, so every
// bond has exactly one stored value.
//
// The energy bookkeeping follows a per-site Hamiltonian that counts every bond
// from both endpoints. InternalEnergy and HeatCapacity are defined against that
// convention rather than the canonical bond energy.
//
// A Lattice is not safe for concurrent use. Hosts that simulate and render from
// different goroutines must serialise access themselves.
package ising
