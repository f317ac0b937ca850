package ui

import (
	"image"
	"math"
	"strconv"

	"isle/internal/core"
)

// controlState tracks one HUD row: the control, its last known value and
// where its buttons sit on the panel.
type controlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	summarySpacing = 16
	controlsGap    = 14
)

// newControlStates lays the controls out top-down on a panel of the given
// width, starting below firstTop.
func newControlStates(controls []core.ParameterControl, width, firstTop int) []controlState {
	states := make([]controlState, len(controls))
	for i, ctrl := range controls {
		top := firstTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plus := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		states[i] = controlState{control: ctrl, value: "--", top: top, minusRect: minus, plusRect: plus}
	}
	return states
}

// controlsTopFor is where the first control row starts below a summary of
// the given number of lines.
func controlsTopFor(summaryLines int) int {
	return panelPadding + headerBaseline + summaryLines*summarySpacing + controlsGap
}

// moveControls shifts every row so the first one starts at firstTop.
func moveControls(states []controlState, firstTop int) {
	if len(states) == 0 || states[0].top == firstTop {
		return
	}
	delta := image.Pt(0, firstTop-states[0].top)
	for i := range states {
		s := &states[i]
		s.top += delta.Y
		s.minusRect = s.minusRect.Add(delta)
		s.plusRect = s.plusRect.Add(delta)
	}
}

// refreshControls copies current values out of a parameter snapshot.
func refreshControls(states []controlState, snap core.ParameterSnapshot) {
	for i := range states {
		s := &states[i]
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

// next returns the value one step away in direction, clamped to the
// control's bounds. ok is false when the value cannot move that way.
func (s *controlState) next(direction int) (float64, bool) {
	if !s.hasValue || direction == 0 {
		return 0, false
	}
	ctrl := s.control
	switch ctrl.Type {
	case core.ParamTypeInt:
		step := int(math.Round(ctrl.Step))
		if step <= 0 {
			step = 1
		}
		target := s.intValue + direction*step
		if ctrl.HasMin {
			target = max(target, int(math.Round(ctrl.Min)))
		}
		if ctrl.HasMax {
			target = min(target, int(math.Round(ctrl.Max)))
		}
		return float64(target), target != s.intValue
	case core.ParamTypeFloat:
		step := ctrl.Step
		if step <= 0 {
			step = 0.05
		}
		target := s.floatValue + float64(direction)*step
		if ctrl.HasMin {
			target = math.Max(target, ctrl.Min)
		}
		if ctrl.HasMax {
			target = math.Min(target, ctrl.Max)
		}
		return target, math.Abs(target-s.floatValue) >= 1e-9
	}
	return 0, false
}

// apply pushes the next value through the matching setter and records it
// when accepted.
func (s *controlState) apply(direction int, ints core.IntParameterSetter, floats core.FloatParameterSetter) bool {
	target, ok := s.next(direction)
	if !ok {
		return false
	}
	switch s.control.Type {
	case core.ParamTypeInt:
		v := int(target)
		if ints == nil || !ints.SetIntParameter(s.control.Key, v) {
			return false
		}
		s.intValue, s.floatValue = v, target
		s.value = strconv.Itoa(v)
	case core.ParamTypeFloat:
		if floats == nil || !floats.SetFloatParameter(s.control.Key, target) {
			return false
		}
		s.floatValue = target
		s.value = formatFloat(s.control, target)
	default:
		return false
	}
	return true
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
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

func pointInRect(x, y int, rect image.Rectangle) bool {
	return image.Pt(x, y).In(rect)
}
