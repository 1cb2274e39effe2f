package core

import "time"

// DefaultTPS is the nominal frame rate the physics constants are tuned for.
const DefaultTPS = 60

// FrameClock measures the real time elapsed between consecutive frames.
// After Reset the next Delta reports the nominal step instead of the
// wall-clock gap, so time spent suspended never reaches the simulation.
type FrameClock struct {
	step time.Duration
	last time.Time
}

// NewFrameClock constructs a FrameClock whose nominal step matches tps.
func NewFrameClock(tps int) *FrameClock {
	c := &FrameClock{}
	c.SetTPS(tps)
	return c
}

// SetTPS changes the nominal frame rate.
func (c *FrameClock) SetTPS(tps int) {
	if tps <= 0 {
		tps = DefaultTPS
	}
	c.step = time.Second / time.Duration(tps)
}

// Step returns the nominal frame duration.
func (c *FrameClock) Step() time.Duration { return c.step }

// Reset forgets the previous frame timestamp.
func (c *FrameClock) Reset() { c.last = time.Time{} }

// Delta returns the time since the previous call and records now.
func (c *FrameClock) Delta(now time.Time) time.Duration {
	if c.last.IsZero() {
		c.last = now
		return c.step
	}
	d := now.Sub(c.last)
	c.last = now
	if d < 0 {
		return 0
	}
	return d
}
