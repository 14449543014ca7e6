package shooter

import "time"

// FPSMeter counts frames over windows of at least one second.
// It is display-only and has no effect on the simulation.
type FPSMeter struct {
	windowStart time.Time
	frames      int
	fps         float64
}

// Sample records a frame at now and returns the latest measurement.
// The first sample has no reference point and yields 0.
func (m *FPSMeter) Sample(now time.Time) float64 {
	if m.windowStart.IsZero() {
		m.windowStart = now
		return m.fps
	}

	m.frames++
	elapsed := now.Sub(m.windowStart)
	if elapsed >= time.Second {
		m.fps = float64(m.frames) / elapsed.Seconds()
		m.frames = 0
		m.windowStart = now
	}
	return m.fps
}

// FPS returns the last measurement without sampling.
func (m *FPSMeter) FPS() float64 {
	return m.fps
}
