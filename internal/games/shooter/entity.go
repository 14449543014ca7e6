package shooter

import "github.com/vovakirdan/skyfire/internal/core"

// Position is a point in world units, origin top-left, y growing downward.
type Position struct {
	X, Y float64
}

// Size is a width/height pair in world units.
type Size struct {
	W, H float64
}

// box combines a position and a size into a collision box.
func box(p Position, s Size) core.Box {
	return core.Box{X: p.X, Y: p.Y, W: s.W, H: s.H}
}

// Field is the bounded play area.
type Field struct {
	Width  float64
	Height float64
}

// Player is the ship. Its y never changes during a run.
type Player struct {
	Position
}

// Bullet travels upward at a constant speed until it leaves the field or hits.
type Bullet struct {
	Position
}

// Enemy descends at a constant speed until it is shot or reaches the bottom.
type Enemy struct {
	Position
}

// retain keeps the elements for which keep returns true, reusing the backing
// array. Elements are visited exactly once, in order.
func retain[T any](items []T, keep func(i int, item T) bool) []T {
	kept := items[:0]
	for i, item := range items {
		if keep(i, item) {
			kept = append(kept, item)
		}
	}
	return kept
}
