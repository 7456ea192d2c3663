package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A, H - steer left while held
	ActionRight          // Right arrow, D, L - steer right while held
	ActionRestart        // R - restart the run
	ActionPause          // P, Escape - pause/unpause
	ActionBack           // B - back to menu
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the input edges observed between two simulation ticks.
// A press edge means the key went down, a release edge means it went up.
// Holding a key produces no further edges.
type InputFrame struct {
	Pressed  map[Action]bool
	Released map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Pressed:  make(map[Action]bool),
		Released: make(map[Action]bool),
	}
}

// Set records a press edge for the action.
func (f *InputFrame) Set(a Action) {
	if f.Pressed == nil {
		f.Pressed = make(map[Action]bool)
	}
	f.Pressed[a] = true
}

// Release records a release edge for the action.
func (f *InputFrame) Release(a Action) {
	if f.Released == nil {
		f.Released = make(map[Action]bool)
	}
	f.Released[a] = true
}

// Has returns true if the action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Pressed[a]
}

// WasReleased returns true if the action was released this frame.
func (f InputFrame) WasReleased(a Action) bool {
	return f.Released[a]
}

// Empty reports whether no edges were recorded.
func (f InputFrame) Empty() bool {
	return len(f.Pressed) == 0 && len(f.Released) == 0
}

// Clear resets all edges for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Pressed {
		delete(f.Pressed, k)
	}
	for k := range f.Released {
		delete(f.Released, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Pressed {
		clone.Pressed[k] = v
	}
	for k, v := range f.Released {
		clone.Released[k] = v
	}
	return clone
}
