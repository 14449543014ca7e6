package shooter

import (
	"context"
	"time"

	"github.com/vovakirdan/skyfire/internal/core"
)

// Pilot writes the input latch before each frame in place of a keyboard.
type Pilot interface {
	Steer(s Snapshot, latch *core.Latch)
}

// LoopOptions configures Run.
type LoopOptions struct {
	TickRate       int  // Frames per second, defaults to 60
	StopOnGameOver bool // Return as soon as the game ends
	Pilot          Pilot
	OnFrame        func(FrameResult)
}

// Run drives g without a terminal. Frame, spawn and clock ticks come from
// three independent tickers but are handled by one select loop, so every
// mutation is serialised. The spawn ticker is re-armed whenever the
// difficulty changes the spawn period.
//
// Run returns the final state together with ctx.Err() when the context ends,
// or a nil error when StopOnGameOver fires.
func Run(ctx context.Context, g *Game, opts LoopOptions) (State, error) {
	rate := opts.TickRate
	if rate <= 0 {
		rate = 60
	}

	frames := time.NewTicker(time.Second / time.Duration(rate))
	defer frames.Stop()

	spawnEvery := g.SpawnInterval()
	spawns := time.NewTicker(spawnEvery)
	defer spawns.Stop()

	clock := time.NewTicker(g.ClockInterval())
	defer clock.Stop()

	for {
		select {
		case <-ctx.Done():
			return g.State(), ctx.Err()

		case now := <-frames.C:
			if opts.Pilot != nil {
				opts.Pilot.Steer(g.Snapshot(), g.Latch())
			}
			res := g.Frame(now)
			if opts.OnFrame != nil {
				opts.OnFrame(res)
			}
			if opts.StopOnGameOver && res.State.Phase == PhaseGameOver {
				return res.State, nil
			}

		case <-spawns.C:
			g.SpawnTick()
			if next := g.SpawnInterval(); next != spawnEvery {
				spawnEvery = next
				spawns.Reset(next)
			}

		case <-clock.C:
			g.ClockTick()
		}
	}
}
