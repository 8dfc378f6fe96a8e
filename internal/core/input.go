package core

// Action represents a semantic input action, abstracted from physical key presses.
// This allows the simulation to work with intents rather than raw keys.
type Action int

const (
	ActionNone      Action = iota
	ActionLeftUp           // W - left paddle up
	ActionLeftDown         // S - left paddle down
	ActionRightUp          // Up arrow - right paddle up
	ActionRightDown        // Down arrow - right paddle down
	ActionPause            // P - pause/unpause
	ActionQuit             // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeftUp:
		return "LeftUp"
	case ActionLeftDown:
		return "LeftDown"
	case ActionRightUp:
		return "RightUp"
	case ActionRightDown:
		return "RightDown"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the polled input state for one simulation tick.
// Held is level-triggered (key currently down); Released is edge-triggered
// (key went up since the previous frame).
type InputFrame struct {
	Held     map[Action]bool
	Released map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Held:     make(map[Action]bool),
		Released: make(map[Action]bool),
	}
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// SetReleased marks an action as released during this frame.
func (f *InputFrame) SetReleased(a Action) {
	if f.Released == nil {
		f.Released = make(map[Action]bool)
	}
	f.Released[a] = true
}

// Has returns true if the given action is held this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Held[a]
}

// JustReleased returns true if the given action was released this frame.
func (f InputFrame) JustReleased(a Action) bool {
	return f.Released[a]
}

// Axis folds a pair of opposing actions into -1, 0 or +1.
// Both or neither held cancel to 0.
func (f InputFrame) Axis(positive, negative Action) float64 {
	var dir float64
	if f.Has(positive) {
		dir++
	}
	if f.Has(negative) {
		dir--
	}
	return dir
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Held {
		delete(f.Held, k)
	}
	for k := range f.Released {
		delete(f.Released, k)
	}
}
