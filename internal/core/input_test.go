package core

import "testing"

func TestInputStatePressRelease(t *testing.T) {
	s := NewInputState()

	if s.IsHeld(KeyUp) {
		t.Error("new state should not report up as held")
	}

	s.Press(KeyUp)
	s.Press(Key("x")) // tracked but unused by gameplay
	if !s.IsHeld(KeyUp) {
		t.Error("up should be held after Press")
	}
	if !s.IsHeld(Key("x")) {
		t.Error("arbitrary keys should be tracked too")
	}

	s.Release(KeyUp)
	if s.IsHeld(KeyUp) {
		t.Error("up should not be held after Release")
	}
	if !s.IsHeld(Key("x")) {
		t.Error("releasing up should leave other keys held")
	}

	// Releasing a key that is not held is a no-op
	s.Release(KeyDown)
	if s.IsHeld(KeyDown) {
		t.Error("down should not be held")
	}

	s.Press(KeyDown)
	s.Reset()
	if s.IsHeld(Key("x")) || s.IsHeld(KeyDown) {
		t.Error("Reset should release every key")
	}
}

func TestInputStateZeroValue(t *testing.T) {
	var s InputState
	s.Press(KeyDown)
	if !s.IsHeld(KeyDown) {
		t.Error("zero-value state should accept Press")
	}

	var nilState *InputState
	if nilState.IsHeld(KeyDown) {
		t.Error("nil state should report nothing held")
	}
}

func TestInputStateSet(t *testing.T) {
	s := NewInputState()

	s.Set(KeyDown, true)
	if !s.IsHeld(KeyDown) {
		t.Error("Set(true) should hold the key")
	}

	s.Set(KeyDown, false)
	if s.IsHeld(KeyDown) {
		t.Error("Set(false) should release the key")
	}

	// Releasing twice is harmless
	s.Set(KeyDown, false)
	if s.IsHeld(KeyDown) {
		t.Error("Set(false) twice should leave the key released")
	}
}
