package tui

import (
	"time"

	"github.com/vovakirdan/lane-dodger/internal/core"
)

// Default hold windows. Most terminals start auto-repeat 250-500ms after the
// first press and repeat every 30-50ms after that.
const (
	DefaultInitialHold = 350 * time.Millisecond
	DefaultRepeatHold  = 120 * time.Millisecond
)

type holdState struct {
	down    bool
	last    time.Time // Most recent press or repeat
	repeats int
}

// HoldTracker turns a terminal's key presses and auto-repeats into press and
// release edges. Terminals never report a key going up, so a key counts as
// released once its repeats stop arriving.
type HoldTracker struct {
	initialHold time.Duration
	repeatHold  time.Duration
	keys        map[core.Action]*holdState
	opposite    map[core.Action]core.Action
}

// NewHoldTracker creates a tracker. initial is how long a single press stays
// held while waiting for auto-repeat to begin; repeat is the allowed gap
// between repeats.
func NewHoldTracker(initial, repeat time.Duration) *HoldTracker {
	return &HoldTracker{
		initialHold: initial,
		repeatHold:  repeat,
		keys:        make(map[core.Action]*holdState),
		opposite: map[core.Action]core.Action{
			core.ActionLeft:  core.ActionRight,
			core.ActionRight: core.ActionLeft,
		},
	}
}

// Press records a key press or repeat for a held action at now.
// A press edge is written to frame only when the key was not already held.
// Pressing a direction releases the opposite one immediately.
func (h *HoldTracker) Press(a core.Action, now time.Time, frame *core.InputFrame) {
	if opp, ok := h.opposite[a]; ok {
		h.release(opp, frame)
	}

	st, ok := h.keys[a]
	if !ok {
		st = &holdState{}
		h.keys[a] = st
	}

	if !st.down {
		st.down = true
		st.repeats = 0
		frame.Set(a)
	} else {
		st.repeats++
	}
	st.last = now
}

// Expire releases every held key whose repeats stopped arriving before now.
func (h *HoldTracker) Expire(now time.Time, frame *core.InputFrame) {
	for a, st := range h.keys {
		if !st.down {
			continue
		}
		window := h.repeatHold
		if st.repeats == 0 {
			window = h.initialHold
		}
		if now.Sub(st.last) > window {
			h.release(a, frame)
		}
	}
}

// ReleaseAll releases every held key, e.g. when the game loses focus.
func (h *HoldTracker) ReleaseAll(frame *core.InputFrame) {
	for a := range h.keys {
		h.release(a, frame)
	}
}

// Held reports whether the action is currently considered held.
func (h *HoldTracker) Held(a core.Action) bool {
	st, ok := h.keys[a]
	return ok && st.down
}

func (h *HoldTracker) release(a core.Action, frame *core.InputFrame) {
	if !h.Held(a) {
		return
	}
	st := h.keys[a]
	st.down = false
	st.repeats = 0
	frame.Release(a)
}
