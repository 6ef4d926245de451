// Package clock provides host side tick sources for running the
// application loop off-board.
package clock

import (
	"time"

	"microtick/core"
)

// NewMonotonic returns a clock counting microseconds from start using the
// host monotonic clock. The count wraps at the Tick width like the
// hardware timer does, so a start near the top of the range exercises
// wraparound within seconds.
func NewMonotonic(start core.Tick) core.Clock {
	origin := time.Now()
	return core.ClockFunc(func() core.Tick {
		return start + core.Tick(time.Since(origin).Microseconds())
	})
}
