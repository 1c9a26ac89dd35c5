package core

import "time"

// MaxFrameDelta is the largest time step, in seconds, fed to a simulation in
// one tick. Longer gaps (a suspended terminal, a slow SSH link) are cut down
// so entities cannot skip through each other.
const MaxFrameDelta = 0.1

// ClampDelta restricts a frame delta to [0, MaxFrameDelta].
func ClampDelta(dt float64) float64 {
	return ClampF(dt, 0, MaxFrameDelta)
}

// Clock measures elapsed wall-clock time between ticks.
// The zero value is ready to use; its first Tick returns 0.
type Clock struct {
	last    time.Time
	started bool
}

// Tick records now and returns the seconds elapsed since the previous tick,
// clamped to [0, MaxFrameDelta]. A clock that went backwards yields 0.
func (c *Clock) Tick(now time.Time) float64 {
	if !c.started {
		c.last = now
		c.started = true
		return 0
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	return ClampDelta(dt)
}

// Reset forgets the previous tick so the next Tick returns 0.
// Used when resuming from pause.
func (c *Clock) Reset() {
	c.started = false
	c.last = time.Time{}
}
