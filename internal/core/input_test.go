package core

import "testing"

func TestInputFrameEdges(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Fatal("new frame should be empty")
	}

	f.Set(ActionLeft)
	f.Release(ActionRight)

	if !f.Has(ActionLeft) {
		t.Error("Left press edge should be recorded")
	}
	if f.Has(ActionRight) {
		t.Error("Right was released, not pressed")
	}
	if !f.WasReleased(ActionRight) {
		t.Error("Right release edge should be recorded")
	}

	clone := f.Clone()
	f.Clear()

	if !f.Empty() {
		t.Error("Clear should drop all edges")
	}
	if !clone.Has(ActionLeft) || !clone.WasReleased(ActionRight) {
		t.Error("Clone should be independent of the original")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionRestart) || f.WasReleased(ActionRestart) {
		t.Error("zero frame should report no edges")
	}
	f.Set(ActionRestart)
	if !f.Has(ActionRestart) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	if ActionLeft.String() != "Left" || ActionRight.String() != "Right" {
		t.Error("unexpected action names")
	}
	if Action(99).String() != "Unknown" {
		t.Error("out of range action should be Unknown")
	}
}
