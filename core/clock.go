package core

// Clock supplies the current counter value.
// Implementations must be monotonic modulo wraparound.
type Clock interface {
	Now() Tick
}

// ClockFunc adapts a plain function (typically a hardware register read)
// to the Clock interface.
type ClockFunc func() Tick

// Now calls f
func (f ClockFunc) Now() Tick {
	return f()
}

// ManualClock is a Clock that only moves when told to.
// Used by tests and deterministic simulations.
type ManualClock struct {
	now Tick
}

// NewManualClock returns a clock reading start
func NewManualClock(start Tick) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current manual time
func (c *ManualClock) Now() Tick {
	return c.now
}

// Set moves the clock to an absolute tick value
func (c *ManualClock) Set(t Tick) {
	c.now = t
}

// Advance moves the clock forward by d ticks, wrapping at the counter width
func (c *ManualClock) Advance(d Tick) {
	c.now += d
}
