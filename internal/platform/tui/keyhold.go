package tui

import (
	"time"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// HoldTracker turns a terminal's press-only key stream into held/released
// state. A key stays held until its window runs out without another press:
// a long window after the first press bridges the auto-repeat delay, a short
// one after each repeat makes letting go feel immediate.
type HoldTracker struct {
	input   *core.InputState
	initial time.Duration
	repeat  time.Duration
	until   map[core.Key]time.Time
}

// NewHoldTracker creates a tracker writing into input.
func NewHoldTracker(input *core.InputState, initial, repeat time.Duration) *HoldTracker {
	return &HoldTracker{
		input:   input,
		initial: initial,
		repeat:  repeat,
		until:   make(map[core.Key]time.Time),
	}
}

// Press records a press of k at now.
func (h *HoldTracker) Press(k core.Key, now time.Time) {
	window := h.initial
	if h.input.IsHeld(k) {
		window = h.repeat
	}
	h.input.Press(k)
	h.until[k] = now.Add(window)
}

// Release lets go of k immediately.
func (h *HoldTracker) Release(k core.Key) {
	h.input.Release(k)
	delete(h.until, k)
}

// Expire releases every key whose window has run out by now.
func (h *HoldTracker) Expire(now time.Time) {
	for k, t := range h.until {
		if !now.Before(t) {
			h.Release(k)
		}
	}
}

// ReleaseAll lets go of every key.
func (h *HoldTracker) ReleaseAll() {
	for k := range h.until {
		h.Release(k)
	}
}
