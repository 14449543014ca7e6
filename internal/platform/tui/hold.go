package tui

import (
	"time"

	"github.com/vovakirdan/skyfire/internal/core"
)

// HoldTracker synthesises key releases. Terminals only deliver presses (and
// auto-repeats), so a held action is released once no repeat has arrived
// within the timeout.
type HoldTracker struct {
	timeout time.Duration
	last    map[core.Action]time.Time
}

// opposite pairs actions that cannot be held together on a terminal: a new
// key stops the auto-repeat of the previous one.
var opposite = map[core.Action]core.Action{
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
}

// NewHoldTracker creates a tracker releasing keys after timeout.
func NewHoldTracker(timeout time.Duration) *HoldTracker {
	return &HoldTracker{
		timeout: timeout,
		last:    make(map[core.Action]time.Time),
	}
}

// Press latches a and records when it was seen.
func (h *HoldTracker) Press(latch *core.Latch, a core.Action, now time.Time) {
	if o, ok := opposite[a]; ok {
		h.Release(latch, o)
	}
	latch.Press(a)
	h.last[a] = now
}

// Release drops a immediately.
func (h *HoldTracker) Release(latch *core.Latch, a core.Action) {
	latch.Release(a)
	delete(h.last, a)
}

// Expire releases every action whose last press is at least timeout old.
func (h *HoldTracker) Expire(latch *core.Latch, now time.Time) {
	for a, at := range h.last {
		if now.Sub(at) >= h.timeout {
			latch.Release(a)
			delete(h.last, a)
		}
	}
}

// Reset releases everything.
func (h *HoldTracker) Reset(latch *core.Latch) {
	for a := range h.last {
		latch.Release(a)
	}
	clear(h.last)
}
