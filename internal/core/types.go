package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim is the contract between a host loop and a grid simulation. Step
// advances one host tick; Reset rebuilds the state from the pending
// configuration and may reject it.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64) error
	Step()
	Cells() []uint8
}

// Readout is a labelled, preformatted value shown by the HUD.
type Readout struct {
	Label string
	Value string
}

// ReadoutProvider exposes live measurements of a simulation.
type ReadoutProvider interface {
	Readouts() []Readout
}

// FieldProvider exposes a per-cell scalar field for overlays, row-major and
// the same length as Cells.
type FieldProvider interface {
	Field() []float32
}
