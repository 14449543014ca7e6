package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation to work with intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A, H - move ship left
	ActionRight          // Right arrow, D, L - move ship right
	ActionFire           // Space - fire (subject to cooldown)
	ActionPause          // P, Escape - pause/unpause
	ActionStart          // Enter - start from the title overlay
	ActionRestart        // R - restart the run
	ActionBack           // B - back to menu
	ActionQuit           // Q, Ctrl+C - exit
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
	case ActionFire:
		return "Fire"
	case ActionPause:
		return "Pause"
	case ActionStart:
		return "Start"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Latch holds a persistent "currently held" flag per action.
// Key-down events press, key-up events release; the frame loop only reads.
// Flags are never cleared automatically.
type Latch struct {
	held map[Action]bool
}

// NewLatch creates a latch with nothing held.
func NewLatch() *Latch {
	return &Latch{held: make(map[Action]bool)}
}

// Press marks an action as held.
func (l *Latch) Press(a Action) {
	if l.held == nil {
		l.held = make(map[Action]bool)
	}
	l.held[a] = true
}

// Release marks an action as no longer held.
func (l *Latch) Release(a Action) {
	delete(l.held, a)
}

// IsHeld reports whether the action is currently held.
func (l *Latch) IsHeld(a Action) bool {
	return l.held[a]
}

// ReleaseAll clears every latch.
func (l *Latch) ReleaseAll() {
	clear(l.held)
}
