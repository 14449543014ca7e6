package shooter

// Phase is the top-level game state.
type Phase int

const (
	PhasePaused Phase = iota
	PhaseRunning
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhasePaused:
		return "paused"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// State holds the counters shown on the HUD.
// Phase is GameOver exactly when Lives is 0.
type State struct {
	Score          int
	Lives          int
	ElapsedSeconds int
	Phase          Phase
}

// Overlay names the message box drawn over the field.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayStart
	OverlayPause
	OverlayGameOver
)

// EventKind classifies what happened during a frame.
type EventKind int

const (
	EventShot EventKind = iota
	EventHit
	EventEnemyEscaped
	EventLifeLost
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventShot:
		return "shot"
	case EventHit:
		return "hit"
	case EventEnemyEscaped:
		return "enemy_escaped"
	case EventLifeLost:
		return "life_lost"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is one change produced by a frame, positioned where it happened.
type Event struct {
	Kind EventKind
	At   Position
}

// FrameResult is returned by Game.Frame.
type FrameResult struct {
	State  State
	Events []Event
	FPS    float64
}

// Has reports whether the frame produced an event of the given kind.
func (r FrameResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// Count returns how many events of the given kind the frame produced.
func (r FrameResult) Count(kind EventKind) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
