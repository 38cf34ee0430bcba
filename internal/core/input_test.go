package core

import "testing"

func TestInputFrameActions(t *testing.T) {
	var f InputFrame
	if f.Has(ActionConfirm) {
		t.Fatal("zero frame should have no actions")
	}

	f.Set(ActionConfirm)
	f.Set(ActionLeft)
	if !f.Has(ActionConfirm) || !f.Has(ActionLeft) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionRight) {
		t.Error("unset action reported")
	}
}

func TestInputFrameClicksAndClear(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Fatal("new frame should be empty")
	}

	f.AddClick(3, 4)
	f.AddClick(7, 1)
	f.Set(ActionBack)

	clone := f.Clone()
	f.Clear()

	if !f.Empty() {
		t.Errorf("Clear left %+v", f)
	}
	if len(clone.Clicks) != 2 || clone.Clicks[1] != (Click{X: 7, Y: 1}) {
		t.Errorf("clone clicks = %+v", clone.Clicks)
	}
	if !clone.Has(ActionBack) {
		t.Error("clone lost its actions")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionLeft:    "Left",
		ActionRestart: "Restart",
		Action(99):    "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, want %q", a, got, want)
		}
	}
}
