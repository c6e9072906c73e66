package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the engine to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - steer one row up
	ActionDown           // S, Down arrow - steer one row down
	ActionLeft           // A, Left arrow - steer one column left
	ActionRight          // D, Right arrow - steer one column right
	ActionFire           // Space - launch a projectile
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMove reports whether the action steers the player.
func (a Action) IsMove() bool {
	switch a {
	case ActionUp, ActionDown, ActionLeft, ActionRight:
		return true
	}
	return false
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// SetMove records a movement action, discarding any movement recorded
// earlier in the same frame. Keys buffered between ticks collapse to the
// most recent press, so fast typing never builds a backlog of stale moves.
func (f *InputFrame) SetMove(a Action) {
	if !a.IsMove() {
		f.Set(a)
		return
	}
	for k := range f.Actions {
		if k.IsMove() {
			delete(f.Actions, k)
		}
	}
	f.Set(a)
}

// Move returns the movement action recorded this frame, or ActionNone.
func (f InputFrame) Move() Action {
	for _, a := range []Action{ActionUp, ActionDown, ActionLeft, ActionRight} {
		if f.Actions[a] {
			return a
		}
	}
	return ActionNone
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
