package core

import "time"

// Clock supplies monotonic timestamps, measured from the clock's own epoch.
// Games use it for wall-clock cadences such as obstacle spawning.
type Clock interface {
	Now() time.Duration
}

// SystemClock reads Go's monotonic clock.
type SystemClock struct {
	epoch time.Time
}

// NewSystemClock creates a clock whose epoch is the moment of the call.
func NewSystemClock() *SystemClock {
	return &SystemClock{epoch: time.Now()}
}

// Now returns the time elapsed since the clock was created.
// time.Since uses the monotonic reading, so wall-clock jumps are invisible.
func (c *SystemClock) Now() time.Duration {
	return time.Since(c.epoch)
}

// FrameClock advances by a fixed step every time Advance is called.
// It makes time-based game logic reproducible for a given tick sequence.
type FrameClock struct {
	now  time.Duration
	step time.Duration
}

// NewFrameClock creates a frame clock for the given tick rate.
func NewFrameClock(tickRate int) *FrameClock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &FrameClock{step: time.Second / time.Duration(tickRate)}
}

// Now returns the accumulated time.
func (c *FrameClock) Now() time.Duration {
	return c.now
}

// Advance moves the clock forward by one frame.
func (c *FrameClock) Advance() {
	c.now += c.step
}

// Step returns the duration of one frame.
func (c *FrameClock) Step() time.Duration {
	return c.step
}
