package core

// Callback is the work run by a PeriodicTimer when it fires.
// State the callback needs should be captured by the closure.
type Callback func()

// PeriodicTimer calls a Callback roughly every interval ticks.
//
// There is no interrupt behind it: the owner must call Poll as often as
// possible from its main loop. Poll never blocks, and the callback runs
// inline on the polling goroutine.
type PeriodicTimer struct {
	clock    Clock
	callback Callback
	interval Tick
	lastFire Tick
}

// NewPeriodicTimer creates a timer whose first period starts now.
// An interval of 0 fires on every Poll. callback must not be nil.
func NewPeriodicTimer(clock Clock, interval Tick, callback Callback) *PeriodicTimer {
	return &PeriodicTimer{
		clock:    clock,
		callback: callback,
		interval: interval,
		lastFire: clock.Now(),
	}
}

// Poll fires the callback if more than interval ticks have passed since the
// last fire (or since creation). A delta exactly equal to the interval does
// not fire yet.
//
// The baseline is re-read from the clock right before the callback runs, so
// the time spent in this check is not carried into the next period. A panic
// in the callback propagates to the caller.
func (p *PeriodicTimer) Poll() {
	if Elapsed(p.lastFire, p.clock.Now()) <= p.interval {
		return
	}
	p.lastFire = p.clock.Now()
	p.callback()
}

// Interval returns the configured period
func (p *PeriodicTimer) Interval() Tick {
	return p.interval
}

// LastFire returns the tick the current period started at
func (p *PeriodicTimer) LastFire() Tick {
	return p.lastFire
}
