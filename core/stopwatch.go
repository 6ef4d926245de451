package core

// Stopwatch measures the time since it was started.
// It is a value type; copying it copies the start time.
type Stopwatch struct {
	clock Clock
	start Tick
}

// StartStopwatch captures the current tick of clock as the start time
func StartStopwatch(clock Clock) Stopwatch {
	return Stopwatch{clock: clock, start: clock.Now()}
}

// Elapsed returns the ticks since the stopwatch was started.
// Correct across one counter wrap; it does not reset the stopwatch.
func (s Stopwatch) Elapsed() Tick {
	return Elapsed(s.start, s.clock.Now())
}
