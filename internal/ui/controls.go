package ui

import (
	"image"
	"math"
	"strconv"

	"ising/internal/core"
)

const defaultFloatStep = 0.05

// controlState mirrors one HUD control. number holds the int value, the
// float value or the choice index depending on the control type.
type controlState struct {
	control  core.ParameterControl
	value    string
	number   float64
	hasValue bool
	pending  bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// controlPanel holds the keyboard and mouse adjustable controls of a sim.
type controlPanel struct {
	controls    []controlState
	selected    int
	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter
}

func newControlPanel(sim core.Sim) *controlPanel {
	p := &controlPanel{}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		controls := provider.ParameterControls()
		p.controls = make([]controlState, len(controls))
		for i, ctrl := range controls {
			p.controls[i] = controlState{control: ctrl, value: "--"}
		}
	}
	if setter, ok := sim.(core.IntParameterSetter); ok {
		p.intSetter = setter
	}
	if setter, ok := sim.(core.FloatParameterSetter); ok {
		p.floatSetter = setter
	}
	return p
}

// refresh reloads the displayed values from a parameter snapshot.
func (p *controlPanel) refresh(snapshot core.ParameterSnapshot) {
	for i := range p.controls {
		state := &p.controls[i]
		param, ok := snapshot.Find(state.control.Key)
		if !ok {
			state.hasValue = false
			state.value = "--"
			continue
		}
		state.pending = param.Pending
		switch state.control.Type {
		case core.ParamTypeInt:
			parsed, err := strconv.Atoi(param.Value)
			if err != nil {
				state.hasValue = false
				state.value = "--"
				continue
			}
			state.number = float64(parsed)
			state.value = strconv.Itoa(parsed)
			state.hasValue = true
		case core.ParamTypeFloat:
			parsed, err := strconv.ParseFloat(param.Value, 64)
			if err != nil {
				state.hasValue = false
				state.value = "--"
				continue
			}
			state.number = parsed
			state.value = formatFloat(state.control, parsed)
			state.hasValue = true
		case core.ParamTypeChoice:
			idx := -1
			for j, opt := range state.control.Options {
				if opt == param.Value {
					idx = j
					break
				}
			}
			if idx < 0 {
				state.hasValue = false
				state.value = param.Value
				continue
			}
			state.number = float64(idx)
			state.value = param.Value
			state.hasValue = true
		default:
			state.hasValue = false
			state.value = "--"
		}
	}
}

// selectNext moves the keyboard selection, wrapping at both ends.
func (p *controlPanel) selectNext(delta int) {
	n := len(p.controls)
	if n == 0 {
		return
	}
	p.selected = ((p.selected+delta)%n + n) % n
}

// target returns the value control i would take after one step in direction.
func (p *controlPanel) target(i, direction int) (float64, bool) {
	if i < 0 || i >= len(p.controls) || direction == 0 {
		return 0, false
	}
	state := &p.controls[i]
	if !state.hasValue {
		return 0, false
	}
	ctrl := state.control
	switch ctrl.Type {
	case core.ParamTypeInt:
		if p.intSetter == nil {
			return 0, false
		}
		step := math.Round(ctrl.Step)
		if step <= 0 {
			step = 1
		}
		next := ctrl.Clamp(state.number + float64(direction)*step)
		return next, next != state.number
	case core.ParamTypeFloat:
		if p.floatSetter == nil {
			return 0, false
		}
		step := ctrl.Step
		if step <= 0 {
			step = defaultFloatStep
		}
		next := ctrl.Clamp(state.number + float64(direction)*step)
		return next, math.Abs(next-state.number) >= 1e-9
	case core.ParamTypeChoice:
		if p.intSetter == nil || len(ctrl.Options) < 2 {
			return 0, false
		}
		next := ctrl.Clamp(state.number + float64(direction))
		return next, next != state.number
	}
	return 0, false
}

// adjust steps control i and pushes the new value to the sim.
func (p *controlPanel) adjust(i, direction int) bool {
	next, ok := p.target(i, direction)
	if !ok {
		return false
	}
	state := &p.controls[i]
	switch state.control.Type {
	case core.ParamTypeInt:
		v := int(math.Round(next))
		if !p.intSetter.SetIntParameter(state.control.Key, v) {
			return false
		}
		state.value = strconv.Itoa(v)
	case core.ParamTypeFloat:
		if !p.floatSetter.SetFloatParameter(state.control.Key, next) {
			return false
		}
		state.value = formatFloat(state.control, next)
	case core.ParamTypeChoice:
		idx := int(next)
		if !p.intSetter.SetIntParameter(state.control.Key, idx) {
			return false
		}
		state.value = state.control.Options[idx]
	}
	state.number = next
	return true
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = defaultFloatStep
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}
