package core

// Wrap returns v modulo n using the mathematical (non-negative) modulus, so
// Wrap(-1, n) == n-1. n must be positive.
func Wrap(v, n int) int {
	return (v%n + n) % n
}

// Torus addresses a square N×N grid stored in row-major order with periodic
// boundaries on both axes.
type Torus struct {
	N int
}

// Index returns the linear slice index for (x, y) after toroidal wrapping.
func (t Torus) Index(x, y int) int {
	return Wrap(x, t.N) + Wrap(y, t.N)*t.N
}

// Cells returns the number of sites on the torus.
func (t Torus) Cells() int { return t.N * t.N }
