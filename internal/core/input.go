package core

// Action represents a semantic game action, abstracted from physical key presses.
// Games work with intents; the platform decides which keys produce them.
type Action int

const (
	ActionNone      Action = iota
	ActionAimLeft          // A, Left arrow - move the aim one column left
	ActionAimRight         // D, Right arrow - move the aim one column right
	ActionThrow            // Space - launch a ball
	ActionConfirm          // Enter - start the game from the tutorial
	ActionRetry            // R - retry the current level
	ActionNext             // N - continue to the next level
	ActionRestart          // X - restart the whole session
	ActionLanguage         // L - cycle the interface language
	ActionQuit             // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionAimLeft:
		return "AimLeft"
	case ActionAimRight:
		return "AimRight"
	case ActionThrow:
		return "Throw"
	case ActionConfirm:
		return "Confirm"
	case ActionRetry:
		return "Retry"
	case ActionNext:
		return "Next"
	case ActionRestart:
		return "Restart"
	case ActionLanguage:
		return "Language"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds the actions triggered during one simulation tick.
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
