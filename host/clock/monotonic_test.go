package clock

import (
	"math"
	"testing"
	"time"

	"microtick/core"
)

func TestMonotonicStartsAtOffset(t *testing.T) {
	c := NewMonotonic(5000)
	if got := c.Now(); got < 5000 || got > 5000+core.TicksPerSecond {
		t.Errorf("Now() = %d, expected close to 5000", got)
	}
}

func TestMonotonicAdvances(t *testing.T) {
	c := NewMonotonic(0)
	sw := core.StartStopwatch(c)

	time.Sleep(2 * time.Millisecond)
	if got := sw.Elapsed(); got < 2000 {
		t.Errorf("Elapsed() = %d after 2ms sleep", got)
	}
}

func TestMonotonicWraps(t *testing.T) {
	c := NewMonotonic(math.MaxUint32 - 100)
	sw := core.StartStopwatch(c)

	time.Sleep(time.Millisecond)
	now := c.Now()
	if now >= math.MaxUint32-100 {
		t.Fatalf("counter did not wrap: %d", now)
	}
	if got := sw.Elapsed(); got < 1000 {
		t.Errorf("Elapsed() across wrap = %d, expected at least 1000", got)
	}
}
