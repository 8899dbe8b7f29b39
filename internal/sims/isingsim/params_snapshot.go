package isingsim

import (
	"strconv"

	"ising/internal/core"
	"ising/pkg/ising"
)

const (
	minSize        = 1
	maxSize        = 256
	maxTemperature = 10.0
	maxField       = 5.0
)

var (
	latticeOptions = []string{
		ising.Ferromagnetic.Name(),
		ising.Antiferromagnetic.Name(),
		ising.SpinGlass.Name(),
	}
	initialOptions = []string{
		ising.Random.String(),
		ising.AllUp.String(),
		ising.AllDown.String(),
	}
)

func (s *Sim) Parameters() core.ParameterSnapshot {
	pending := func(p core.Parameter, changed bool) core.Parameter {
		p.Pending = changed
		return p
	}
	groups := []core.ParameterGroup{
		{
			Name: "Lattice",
			Params: []core.Parameter{
				pending(intParam("size", "Size", s.cfg.Size), s.cfg.Size != s.built.Size),
				pending(choiceParam("lattice", "Lattice type", s.cfg.LatticeType), s.cfg.LatticeType != s.built.LatticeType),
				pending(floatParam("p_antiferro", "P(antiferro)", s.cfg.PAntiferro), s.cfg.PAntiferro != s.built.PAntiferro),
				pending(choiceParam("initial", "Initial state", s.cfg.InitialState), s.cfg.InitialState != s.built.InitialState),
				int64Param("seed", "Seed", s.seed),
			},
		},
		{
			Name: "Environment",
			Params: []core.Parameter{
				floatParam("temperature", "Temperature", s.cfg.Temperature),
				floatParam("field", "Magnetic field", s.cfg.MagneticField),
			},
		},
		{
			Name: "Simulation",
			Params: []core.Parameter{
				intParam("epoch", "Epoch", s.epoch),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the HUD-adjustable values in display order.
func (s *Sim) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "temperature", Label: "Temperature", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: maxTemperature},
		{Key: "field", Label: "Magnetic field", Type: core.ParamTypeFloat, Step: 0.1, Min: -maxField, Max: maxField},
		{Key: "size", Label: "Size", Type: core.ParamTypeInt, Step: 8, Min: minSize, Max: maxSize},
		{Key: "lattice", Label: "Lattice type", Type: core.ParamTypeChoice, Step: 1, Options: latticeOptions},
		{Key: "p_antiferro", Label: "P(antiferro)", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1},
		{Key: "initial", Label: "Initial state", Type: core.ParamTypeChoice, Step: 1, Options: initialOptions},
	}
}

// SetFloatParameter applies temperature and field to the running lattice.
// p_antiferro is stored and applied on the next Reset.
func (s *Sim) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "temperature":
		value = clampFloat(value, 0, maxTemperature)
		s.cfg.Temperature = value
		s.built.Temperature = value
		s.lattice.SetTemperature(float32(value))
	case "field":
		value = clampFloat(value, -maxField, maxField)
		s.cfg.MagneticField = value
		s.built.MagneticField = value
		s.lattice.SetMagneticField(float32(value))
	case "p_antiferro":
		s.cfg.PAntiferro = clampFloat(value, 0, 1)
	default:
		return false
	}
	return true
}

// SetIntParameter records size and choice changes for the next Reset.
func (s *Sim) SetIntParameter(key string, value int) bool {
	switch key {
	case "size":
		if value < minSize {
			value = minSize
		}
		if value > maxSize {
			value = maxSize
		}
		s.cfg.Size = value
	case "lattice":
		if value < 0 || value >= len(latticeOptions) {
			return false
		}
		s.cfg.LatticeType = latticeOptions[value]
	case "initial":
		if value < 0 || value >= len(initialOptions) {
			return false
		}
		s.cfg.InitialState = initialOptions[value]
	default:
		return false
	}
	return true
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func choiceParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeChoice,
		Value: value,
	}
}
