package shooter

import (
	"math"

	"github.com/vovakirdan/skyfire/internal/core"
)

// Autopilot chases the lowest enemy and fires when lined up under it.
// It drives the attract mode and soak runs.
type Autopilot struct{}

// Steer implements Pilot.
func (Autopilot) Steer(s Snapshot, latch *core.Latch) {
	latch.Release(core.ActionLeft)
	latch.Release(core.ActionRight)
	latch.Release(core.ActionFire)

	if s.State.Phase != PhaseRunning || len(s.Enemies) == 0 {
		return
	}

	target := s.Enemies[0]
	for _, e := range s.Enemies[1:] {
		if e.Y > target.Y {
			target = e
		}
	}

	dx := target.CenterX() - s.Player.CenterX()
	// Within half a step the ship cannot get closer.
	deadZone := s.PlayerSpeed / 2
	switch {
	case dx < -deadZone:
		latch.Press(core.ActionLeft)
	case dx > deadZone:
		latch.Press(core.ActionRight)
	}

	if math.Abs(dx) < target.W/2 {
		latch.Press(core.ActionFire)
	}
}
