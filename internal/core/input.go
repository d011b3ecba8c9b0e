package core

// Action represents a semantic game command, abstracted from the physical
// key or character that produced it.
type Action int

const (
	ActionNone    Action = iota
	ActionFire           // S - fire one bullet this tick
	ActionQuit           // Q - end the session
	ActionRestart        // Y - play again after game over
	ActionDecline        // N - decline to play again
	ActionPause          // P - freeze/unfreeze the simulation
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFire:
		return "Fire"
	case ActionQuit:
		return "Quit"
	case ActionRestart:
		return "Restart"
	case ActionDecline:
		return "Decline"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// ParseCommand maps a single command character to an action.
// Letters are case-insensitive; anything unrecognised is ActionNone and is
// meant to be ignored silently.
func ParseCommand(r rune) Action {
	switch r {
	case 'S', 's':
		return ActionFire
	case 'Q', 'q':
		return ActionQuit
	case 'Y', 'y':
		return ActionRestart
	case 'N', 'n':
		return ActionDecline
	case 'P', 'p':
		return ActionPause
	}
	return ActionNone
}

// InputFrame holds the actions triggered during a single tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// FrameOf creates a frame with the given actions set.
// ActionNone is dropped.
func FrameOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	c := NewInputFrame()
	for k, v := range f.Actions {
		c.Actions[k] = v
	}
	return c
}
