package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A - move left while held
	ActionRight          // Right arrow, D - move right while held
	ActionJump           // Space, Up, W - jump (edge triggered)
	ActionConfirm        // Enter - start from the idle screen, confirm menu selection
	ActionBack           // B, Escape - leave the game for the menu
	ActionRestart        // R - retry after game over
	ActionQuit           // Q, Ctrl+C - exit the arcade
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
	case ActionJump:
		return "Jump"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// KeyEvent is a single press or release of an action, in arrival order.
type KeyEvent struct {
	Action  Action
	Pressed bool
}

// InputFrame collects the input that arrived between two simulation ticks.
type InputFrame struct {
	// Actions maps action types to whether they were pressed this frame.
	Actions map[Action]bool

	// Events keeps presses and releases in the order they happened, so games
	// with hold semantics can replay them faithfully at the start of a tick.
	Events []KeyEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as pressed for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Press records a key-down for the action and marks it as pressed.
func (f *InputFrame) Press(a Action) {
	f.Set(a)
	f.Events = append(f.Events, KeyEvent{Action: a, Pressed: true})
}

// Release records a key-up for the action.
func (f *InputFrame) Release(a Action) {
	f.Events = append(f.Events, KeyEvent{Action: a, Pressed: false})
}

// Has returns true if the given action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions and events for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Events = f.Events[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	if len(f.Events) > 0 {
		clone.Events = append([]KeyEvent(nil), f.Events...)
	}
	return clone
}
