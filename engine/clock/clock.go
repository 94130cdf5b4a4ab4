package clock

import "time"

// FrameClock measures the time elapsed between consecutive frames.
type FrameClock struct {
	now  func() time.Time
	last time.Time
	// started is false until the first Tick.
	started bool
}

// NewFrameClock creates a FrameClock backed by the wall clock.
//
// Returns:
//   - *FrameClock: the newly created clock
func NewFrameClock() *FrameClock {
	return NewFrameClockWithSource(time.Now)
}

// NewFrameClockWithSource creates a FrameClock reading time from now.
//
// Parameters:
//   - now: the time source
//
// Returns:
//   - *FrameClock: the newly created clock
func NewFrameClockWithSource(now func() time.Time) *FrameClock {
	return &FrameClock{now: now}
}

// Tick returns the seconds elapsed since the previous Tick.
// The first call returns 0, and a time source that steps backwards yields 0 rather than a
// negative delta, so the result can always be passed to camera movement.
//
// Returns:
//   - float32: elapsed seconds, never negative
func (c *FrameClock) Tick() float32 {
	t := c.now()
	if !c.started {
		c.started = true
		c.last = t
		return 0
	}
	dt := t.Sub(c.last)
	c.last = t
	if dt < 0 {
		return 0
	}
	return float32(dt.Seconds())
}

// Reset makes the next Tick behave like the first one.
func (c *FrameClock) Reset() {
	c.started = false
}
