package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionFire) {
		t.Error("New frame should have no actions")
	}

	f.Set(ActionFire)
	if !f.Has(ActionFire) {
		t.Error("Has(ActionFire) should be true after Set")
	}

	f.Clear()
	if f.Has(ActionFire) {
		t.Error("Has(ActionFire) should be false after Clear")
	}
}

func TestInputFrameSetMoveKeepsLatest(t *testing.T) {
	// Rapid presses buffered between ticks must collapse to the newest
	// movement; an old press must never be replayed later.
	f := NewInputFrame()

	f.SetMove(ActionLeft)
	f.SetMove(ActionRight)
	f.SetMove(ActionUp)

	if f.Move() != ActionUp {
		t.Errorf("Move() = %v, expected Up", f.Move())
	}
	if f.Has(ActionLeft) || f.Has(ActionRight) {
		t.Error("Earlier movement presses should have been discarded")
	}
}

func TestInputFrameSetMoveDoesNotDropFire(t *testing.T) {
	f := NewInputFrame()

	f.SetMove(ActionFire)
	f.SetMove(ActionLeft)

	if !f.Has(ActionFire) {
		t.Error("Fire should survive a later movement press")
	}
	if f.Move() != ActionLeft {
		t.Errorf("Move() = %v, expected Left", f.Move())
	}
}

func TestInputFrameMoveEmpty(t *testing.T) {
	f := NewInputFrame()
	if f.Move() != ActionNone {
		t.Errorf("Move() on empty frame = %v, expected None", f.Move())
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionFire)

	clone := f.Clone()
	clone.Set(ActionUp)

	if f.Has(ActionUp) {
		t.Error("Mutating the clone should not affect the original")
	}
	if !clone.Has(ActionFire) {
		t.Error("Clone should carry the original's actions")
	}
}

func TestActionIsMove(t *testing.T) {
	moves := []Action{ActionUp, ActionDown, ActionLeft, ActionRight}
	for _, a := range moves {
		if !a.IsMove() {
			t.Errorf("%v should be a movement action", a)
		}
	}

	others := []Action{ActionNone, ActionFire, ActionRestart, ActionQuit}
	for _, a := range others {
		if a.IsMove() {
			t.Errorf("%v should not be a movement action", a)
		}
	}
}
