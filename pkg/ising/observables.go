package ising

// Observables bundles the thermodynamic readouts of a lattice at one instant.
type Observables struct {
	Size          int
	Temperature   float32
	MagneticField float32
	Energy        float32
	HeatCapacity  float32
	Magnetisation float32
}

// InternalEnergy sums the per-site Hamiltonian over the whole lattice.
func (l *Lattice) InternalEnergy() float32 {
	var energy float32
	for y := 0; y < l.size; y++ {
		for x := 0; x < l.size; x++ {
			energy += l.Hamiltonian(x, y)
		}
	}
	return energy
}

// HeatCapacity returns (ΣH² - InternalEnergy) / size². This is the simulator's
// own fluctuation proxy and not a normalised specific heat.
func (l *Lattice) HeatCapacity() float32 {
	var squares float32
	for y := 0; y < l.size; y++ {
		for x := 0; x < l.size; x++ {
			h := l.Hamiltonian(x, y)
			squares += h * h
		}
	}
	return (squares - l.InternalEnergy()) / float32(len(l.state))
}

// Magnetisation returns the mean spin value in [-1, 1].
func (l *Lattice) Magnetisation() float32 {
	sum := 0
	for _, s := range l.state {
		sum += s.Int()
	}
	return float32(sum) / float32(len(l.state))
}

// LocalEnergies returns the Hamiltonian of every site in row-major order.
func (l *Lattice) LocalEnergies() []float32 {
	out := make([]float32, len(l.state))
	for y := 0; y < l.size; y++ {
		for x := 0; x < l.size; x++ {
			out[x+y*l.size] = l.Hamiltonian(x, y)
		}
	}
	return out
}

// Measure evaluates all observables.
func (l *Lattice) Measure() Observables {
	return Observables{
		Size:          l.size,
		Temperature:   l.temperature,
		MagneticField: l.magneticField,
		Energy:        l.InternalEnergy(),
		HeatCapacity:  l.HeatCapacity(),
		Magnetisation: l.Magnetisation(),
	}
}
