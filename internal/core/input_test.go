package core

import "testing"

func TestInputFrameAxis(t *testing.T) {
	tests := []struct {
		name     string
		held     []Action
		expected float64
	}{
		{"neither", nil, 0},
		{"up only", []Action{ActionLeftUp}, 1},
		{"down only", []Action{ActionLeftDown}, -1},
		{"both cancel", []Action{ActionLeftUp, ActionLeftDown}, 0},
		{"other paddle ignored", []Action{ActionRightUp}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInputFrame()
			for _, a := range tc.held {
				f.Set(a)
			}
			if got := f.Axis(ActionLeftUp, ActionLeftDown); got != tc.expected {
				t.Errorf("Axis() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestInputFrameReleasedIsSeparateFromHeld(t *testing.T) {
	f := NewInputFrame()
	f.SetReleased(ActionPause)

	if f.Has(ActionPause) {
		t.Error("a released action should not read as held")
	}
	if !f.JustReleased(ActionPause) {
		t.Error("JustReleased(Pause) should be true")
	}

	f.Clear()
	if f.JustReleased(ActionPause) {
		t.Error("Clear should drop release edges")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionLeftUp) || f.JustReleased(ActionPause) {
		t.Error("zero-value frame should report nothing")
	}
	f.Set(ActionLeftUp)
	if !f.Has(ActionLeftUp) {
		t.Error("Set on zero-value frame should allocate and record")
	}
}

func TestActionString(t *testing.T) {
	if ActionPause.String() != "Pause" {
		t.Errorf("ActionPause.String() = %q", ActionPause.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
}
