package core

import "time"

// Tick is a reading of the free running microsecond counter. It wraps at
// 2^32, the width of the raw low timer word on RP2040/RP2350 and of the
// classic Arduino micros() counter.
type Tick uint32

// TicksPerSecond is the counter frequency (1MHz).
const TicksPerSecond Tick = 1000000

// Elapsed returns the number of ticks from start to now.
// The subtraction is done in Tick width so a single counter wrap between
// the two readings still yields the true distance.
func Elapsed(start, now Tick) Tick {
	return now - start
}

// TicksFromDuration converts d to ticks, truncating to whole microseconds.
// Negative durations give 0; durations longer than the counter range wrap.
func TicksFromDuration(d time.Duration) Tick {
	if d < 0 {
		return 0
	}
	return Tick(uint64(d / time.Microsecond))
}

// Duration converts a tick count to a time.Duration
func (t Tick) Duration() time.Duration {
	return time.Duration(t) * time.Microsecond
}
