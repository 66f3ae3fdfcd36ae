package ui

import (
	"math"
	"strconv"

	"snowtrack/internal/core"
)

// ControlPanel tracks the adjustable parameters of a target and applies
// step adjustments through its setters. It holds no drawing state.
type ControlPanel struct {
	controls    []controlState
	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter
	selected    int
}

type controlState struct {
	control    core.ParameterControl
	value      string
	intValue   int
	floatValue float64
	hasValue   bool
}

// Row is one rendered line of the panel.
type Row struct {
	Label    string
	Value    string
	Selected bool
	CanDec   bool
	CanInc   bool
}

// NewControlPanel inspects target for the parameter interfaces in core.
func NewControlPanel(target any) *ControlPanel {
	p := &ControlPanel{}
	if provider, ok := target.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			p.controls = append(p.controls, controlState{control: ctrl, value: "--"})
		}
	}
	p.intSetter, _ = target.(core.IntParameterSetter)
	p.floatSetter, _ = target.(core.FloatParameterSetter)
	return p
}

// Len reports the number of controls.
func (p *ControlPanel) Len() int { return len(p.controls) }

// Selected returns the index of the highlighted control.
func (p *ControlPanel) Selected() int { return p.selected }

// Select moves the highlight by delta, wrapping around.
func (p *ControlPanel) Select(delta int) {
	n := len(p.controls)
	if n == 0 {
		return
	}
	p.selected = ((p.selected+delta)%n + n) % n
}

// Refresh pulls current values from snap.
func (p *ControlPanel) Refresh(snap core.ParameterSnapshot) {
	for i := range p.controls {
		s := &p.controls[i]
		s.hasValue = false
		s.value = "--"
		param, ok := snap.Lookup(s.control.Key)
		if !ok {
			continue
		}
		switch s.control.Type {
		case core.ParamTypeInt:
			v, err := strconv.Atoi(param.Value)
			if err != nil {
				continue
			}
			s.intValue, s.floatValue = v, float64(v)
			s.value = strconv.Itoa(v)
			s.hasValue = true
		case core.ParamTypeFloat:
			v, err := strconv.ParseFloat(param.Value, 64)
			if err != nil {
				continue
			}
			s.floatValue = v
			s.value = formatFloat(s.control, v)
			s.hasValue = true
		}
	}
}

// Adjust steps control i in direction (-1 or +1). It reports whether the
// target accepted a new value.
func (p *ControlPanel) Adjust(i, direction int) bool {
	if i < 0 || i >= len(p.controls) || direction == 0 {
		return false
	}
	s := &p.controls[i]
	if !s.hasValue {
		return false
	}
	target, ok := p.next(s, direction)
	if !ok {
		return false
	}
	switch s.control.Type {
	case core.ParamTypeInt:
		v := int(target)
		if !p.intSetter.SetIntParameter(s.control.Key, v) {
			return false
		}
		s.intValue, s.floatValue = v, target
		s.value = strconv.Itoa(v)
	case core.ParamTypeFloat:
		if !p.floatSetter.SetFloatParameter(s.control.Key, target) {
			return false
		}
		s.floatValue = target
		s.value = formatFloat(s.control, target)
	}
	return true
}

// AdjustSelected steps the highlighted control.
func (p *ControlPanel) AdjustSelected(direction int) bool {
	return p.Adjust(p.selected, direction)
}

// next computes the clamped value one step away, or false when the control
// cannot move in that direction.
func (p *ControlPanel) next(s *controlState, direction int) (float64, bool) {
	switch s.control.Type {
	case core.ParamTypeInt:
		if p.intSetter == nil {
			return 0, false
		}
		step := int(math.Round(s.control.Step))
		if step <= 0 {
			step = 1
		}
		target := int(math.Round(s.control.Clamp(float64(s.intValue + direction*step))))
		return float64(target), target != s.intValue
	case core.ParamTypeFloat:
		if p.floatSetter == nil {
			return 0, false
		}
		step := s.control.Step
		if step <= 0 {
			step = 0.05
		}
		target := s.control.Clamp(s.floatValue + float64(direction)*step)
		return target, math.Abs(target-s.floatValue) >= 1e-9
	}
	return 0, false
}

// Rows returns the display state of every control.
func (p *ControlPanel) Rows() []Row {
	rows := make([]Row, len(p.controls))
	for i := range p.controls {
		s := &p.controls[i]
		rows[i] = Row{Label: s.control.Label, Value: s.value, Selected: i == p.selected}
		if s.hasValue {
			_, rows[i].CanDec = p.next(s, -1)
			_, rows[i].CanInc = p.next(s, 1)
		}
	}
	return rows
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	precision := 1
	switch step := ctrl.Step; {
	case step <= 0:
		precision = 2
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}
