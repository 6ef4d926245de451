package core

import (
	"math"
	"testing"
	"time"
)

func TestElapsed(t *testing.T) {
	testCases := []struct {
		name     string
		start    Tick
		now      Tick
		expected Tick
	}{
		{"zero", 0, 0, 0},
		{"forward", 100, 250, 150},
		{"wrap", math.MaxUint32 - 5, 10, 16},
		{"wrap to zero", math.MaxUint32, 0, 1},
		{"full range minus one", 1, 0, math.MaxUint32},
	}

	for _, tc := range testCases {
		if got := Elapsed(tc.start, tc.now); got != tc.expected {
			t.Errorf("%s: Elapsed(%d, %d) = %d, expected %d", tc.name, tc.start, tc.now, got, tc.expected)
		}
	}
}

// Same construction as an 8-bit counter going 250 -> 10, scaled to Tick width.
func TestElapsedNarrowCounter(t *testing.T) {
	var start, now uint8 = 250, 10
	if got := now - start; got != 16 {
		t.Fatalf("8-bit elapsed = %d, expected 16", got)
	}

	base := Tick(math.MaxUint32 - 255)
	if got := Elapsed(base+Tick(start), Tick(now)); got != 16 {
		t.Errorf("Elapsed across wrap = %d, expected 16", got)
	}
}

func TestTicksFromDuration(t *testing.T) {
	testCases := []struct {
		d        time.Duration
		expected Tick
	}{
		{0, 0},
		{time.Microsecond, 1},
		{1500 * time.Nanosecond, 1},
		{100 * time.Millisecond, 100000},
		{time.Second, TicksPerSecond},
		{(math.MaxUint32 + 1) * time.Microsecond, 0},
		{-time.Microsecond, 0},
		{-time.Hour, 0},
	}

	for _, tc := range testCases {
		if got := TicksFromDuration(tc.d); got != tc.expected {
			t.Errorf("TicksFromDuration(%v) = %d, expected %d", tc.d, got, tc.expected)
		}
	}
}

func TestTickDuration(t *testing.T) {
	if got := Tick(2500).Duration(); got != 2500*time.Microsecond {
		t.Errorf("Duration() = %v, expected 2.5ms", got)
	}
	if got := TicksPerSecond.Duration(); got != time.Second {
		t.Errorf("TicksPerSecond.Duration() = %v, expected 1s", got)
	}
}

func TestClockFunc(t *testing.T) {
	calls := 0
	clock := ClockFunc(func() Tick {
		calls++
		return Tick(calls * 10)
	})

	if got := clock.Now(); got != 10 {
		t.Errorf("first Now() = %d, expected 10", got)
	}
	if got := clock.Now(); got != 20 {
		t.Errorf("second Now() = %d, expected 20", got)
	}
}

func TestManualClock(t *testing.T) {
	clock := NewManualClock(math.MaxUint32 - 1)

	clock.Advance(3)
	if got := clock.Now(); got != 1 {
		t.Errorf("Now() after wrapping advance = %d, expected 1", got)
	}

	clock.Set(500)
	if got := clock.Now(); got != 500 {
		t.Errorf("Now() after Set = %d, expected 500", got)
	}
}
