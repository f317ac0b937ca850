package ui

import (
	"testing"

	"isle/internal/core"
)

type fakeSetter struct {
	ints   map[string]int
	floats map[string]float64
	reject bool
}

func (f *fakeSetter) SetIntParameter(key string, v int) bool {
	if f.reject {
		return false
	}
	f.ints[key] = v
	return true
}

func (f *fakeSetter) SetFloatParameter(key string, v float64) bool {
	if f.reject {
		return false
	}
	f.floats[key] = v
	return true
}

func snapshot(params ...core.Parameter) core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{Name: "test", Params: params}}}
}

func TestControlLayout(t *testing.T) {
	states := newControlStates([]core.ParameterControl{{Key: "a"}, {Key: "b"}}, 200, 40)
	if states[1].top-states[0].top != lineHeight {
		t.Fatalf("rows are %d apart", states[1].top-states[0].top)
	}
	s := states[0]
	if s.plusRect.Max.X != 200-panelPadding || s.minusRect.Max.X != s.plusRect.Min.X-buttonGap {
		t.Fatalf("unexpected buttons %v %v", s.minusRect, s.plusRect)
	}
	if !pointInRect(s.plusRect.Min.X, s.plusRect.Min.Y, s.plusRect) || pointInRect(s.plusRect.Max.X, s.plusRect.Min.Y, s.plusRect) {
		t.Fatal("pointInRect should be half-open")
	}
}

func TestControlsFollowSummaryLength(t *testing.T) {
	ctrls := []core.ParameterControl{{Key: "a"}, {Key: "b"}}
	states := newControlStates(ctrls, 200, controlsTopFor(1))
	moveControls(states, controlsTopFor(3))

	want := newControlStates(ctrls, 200, controlsTopFor(3))
	for i := range states {
		if states[i].top != want[i].top || states[i].plusRect != want[i].plusRect || states[i].minusRect != want[i].minusRect {
			t.Fatalf("row %d at %d %v, want %d %v", i, states[i].top, states[i].plusRect, want[i].top, want[i].plusRect)
		}
	}
	lastSummary := panelPadding + headerBaseline + 3*summarySpacing
	if states[0].minusRect.Min.Y <= lastSummary {
		t.Fatalf("first row buttons start at %d, inside a summary ending at %d", states[0].minusRect.Min.Y, lastSummary)
	}
	moveControls(nil, 10)
}

func TestRefreshControls(t *testing.T) {
	states := newControlStates([]core.ParameterControl{
		{Key: "octave", Type: core.ParamTypeInt},
		{Key: "seed_spread", Type: core.ParamTypeFloat, Step: 0.025},
		{Key: "missing", Type: core.ParamTypeInt},
		{Key: "noise", Type: core.ParamTypeString},
	}, 200, 0)
	refreshControls(states, snapshot(
		core.Parameter{Key: "octave", Value: "3"},
		core.Parameter{Key: "seed_spread", Value: "0.2857142857142857"},
		core.Parameter{Key: "noise", Value: "perlin"},
	))
	if !states[0].hasValue || states[0].intValue != 3 || states[0].value != "3" {
		t.Fatalf("int control = %+v", states[0])
	}
	if !states[1].hasValue || states[1].value != "0.29" {
		t.Fatalf("float control shows %q", states[1].value)
	}
	if states[2].hasValue || states[2].value != "--" {
		t.Fatal("missing parameter should show a placeholder")
	}
	if states[3].hasValue {
		t.Fatal("string parameters are not adjustable")
	}
}

func TestControlNextClamps(t *testing.T) {
	s := controlState{
		control:  core.ParameterControl{Key: "octave", Type: core.ParamTypeInt, Step: 1, Min: 0, HasMin: true, Max: 6, HasMax: true},
		intValue: 6,
		hasValue: true,
	}
	if _, ok := s.next(1); ok {
		t.Fatal("int control at its max should not step up")
	}
	if v, ok := s.next(-1); !ok || v != 5 {
		t.Fatalf("step down = %v, %v", v, ok)
	}

	f := controlState{
		control:    core.ParameterControl{Key: "power_max", Type: core.ParamTypeFloat, Step: 0.25, Min: 0, HasMin: true, Max: 10, HasMax: true},
		floatValue: 0.1,
		hasValue:   true,
	}
	if v, ok := f.next(-1); !ok || v != 0 {
		t.Fatalf("float step below min should clamp to 0, got %v, %v", v, ok)
	}
	f.floatValue = 0
	if _, ok := f.next(-1); ok {
		t.Fatal("float control at its min should not step down")
	}
	if _, ok := (&controlState{}).next(1); ok {
		t.Fatal("control without a value should not move")
	}
}

func TestControlApply(t *testing.T) {
	set := &fakeSetter{ints: map[string]int{}, floats: map[string]float64{}}
	s := controlState{
		control:  core.ParameterControl{Key: "eruptions_max", Type: core.ParamTypeInt, Step: 8},
		intValue: 64,
		hasValue: true,
	}
	if !s.apply(1, set, set) || set.ints["eruptions_max"] != 72 || s.value != "72" {
		t.Fatalf("apply up: state=%+v setter=%v", s, set.ints)
	}
	set.reject = true
	if s.apply(1, set, set) || s.intValue != 72 {
		t.Fatal("rejected value should not be recorded")
	}
	if s.apply(1, nil, nil) {
		t.Fatal("apply without a setter should fail")
	}
}

func TestFormatFloat(t *testing.T) {
	cases := []struct {
		step float64
		want string
	}{
		{0.5, "1.2"},
		{0.05, "1.23"},
		{0.005, "1.235"},
		{0.0001, "1.2346"},
		{0, "1.23"},
	}
	for _, tc := range cases {
		if got := formatFloat(core.ParameterControl{Step: tc.step}, 1.23456); got != tc.want {
			t.Errorf("step %g: got %q, want %q", tc.step, got, tc.want)
		}
	}
}
