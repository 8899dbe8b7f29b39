package ising

// scriptedSource replays fixed integer and float sequences and counts draws.
// Integer values are reduced modulo n; an empty float script yields 0.
type scriptedSource struct {
	ints   []int
	floats []float64

	intCalls   int
	floatCalls int
}

func (s *scriptedSource) IntN(n int) int {
	if len(s.ints) == 0 {
		s.intCalls++
		return 0
	}
	v := s.ints[s.intCalls%len(s.ints)] % n
	s.intCalls++
	return v
}

func (s *scriptedSource) Float64() float64 {
	if len(s.floats) == 0 {
		s.floatCalls++
		return 0
	}
	v := s.floats[s.floatCalls%len(s.floats)]
	s.floatCalls++
	return v
}

func cloneSpins(l *Lattice) []Spin {
	return append([]Spin(nil), l.state...)
}

func diffCount(a, b []Spin) int {
	n := 0
	for i := range a {
		if a[i] != b[i] {
			n++
		}
	}
	return n
}
