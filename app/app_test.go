package app

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"microtick/core"
)

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("write failed")
}

func TestCounterFire(t *testing.T) {
	var out bytes.Buffer
	c := NewCounter("B", 2, &out)

	c.Fire()
	c.Fire()

	expected := "  B = 0\r\n  B = 1\r\n"
	if out.String() != expected {
		t.Errorf("output = %q, expected %q", out.String(), expected)
	}
	if c.Count() != 2 {
		t.Errorf("Count() = %d, expected 2", c.Count())
	}
}

func TestCounterWriteErrors(t *testing.T) {
	c := NewCounter("A", 0, failingWriter{})
	c.Fire()

	if c.WriteErrors() != 1 {
		t.Errorf("WriteErrors() = %d, expected 1", c.WriteErrors())
	}
	if c.Count() != 1 {
		t.Errorf("Count() = %d, a failed write must still count", c.Count())
	}
}

func TestConfigValidate(t *testing.T) {
	testCases := []struct {
		name string
		cfg  Config
		err  error
	}{
		{"default", DefaultConfig(), nil},
		{"empty", Config{}, ErrNoCounters},
		{"no name", Config{Counters: []CounterConfig{{IntervalUS: 10}}}, ErrEmptyName},
		{"negative indent", Config{Counters: []CounterConfig{{Name: "A", Indent: -1}}}, ErrNegativeIndent},
		{"duplicate", Config{Counters: []CounterConfig{{Name: "A"}, {Name: "A"}}}, ErrDuplicateName},
		{"zero interval", Config{Counters: []CounterConfig{{Name: "A"}}}, nil},
		{"duration interval", Config{Counters: []CounterConfig{{Name: "A", Every: "250ms"}}}, nil},
		{"bad duration", Config{Counters: []CounterConfig{{Name: "A", Every: "soon"}}}, ErrBadInterval},
		{"negative duration", Config{Counters: []CounterConfig{{Name: "A", Every: "-1s"}}}, ErrBadInterval},
		{"both intervals", Config{Counters: []CounterConfig{{Name: "A", Every: "1s", IntervalUS: 5}}}, ErrTwoIntervals},
	}

	for _, tc := range testCases {
		err := tc.cfg.Validate()
		if !errors.Is(err, tc.err) {
			t.Errorf("%s: Validate() = %v, expected %v", tc.name, err, tc.err)
		}
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if len(cfg.Counters) != 2 {
		t.Fatalf("expected 2 counters, got %d", len(cfg.Counters))
	}
	if cfg.Counters[0].Interval() != 100000 {
		t.Errorf("A interval = %d, expected 100000", cfg.Counters[0].Interval())
	}
	if cfg.Counters[1].Interval() != core.TicksPerSecond {
		t.Errorf("B interval = %d, expected %d", cfg.Counters[1].Interval(), core.TicksPerSecond)
	}
}

func TestCounterConfigInterval(t *testing.T) {
	testCases := []struct {
		cfg      CounterConfig
		expected core.Tick
	}{
		{CounterConfig{IntervalUS: 100000}, 100000},
		{CounterConfig{Every: "100ms"}, 100000},
		{CounterConfig{Every: "1s"}, core.TicksPerSecond},
		{CounterConfig{Every: "1500ns"}, 1},
		{CounterConfig{Every: "soon"}, 0},
	}

	for _, tc := range testCases {
		if got := tc.cfg.Interval(); got != tc.expected {
			t.Errorf("%+v: Interval() = %d, expected %d", tc.cfg, got, tc.expected)
		}
	}
}

func TestAppStepFiresCountersInOrder(t *testing.T) {
	clock := core.NewManualClock(0)
	var out bytes.Buffer
	cfg := Config{Counters: []CounterConfig{
		{Name: "A", IntervalUS: 100},
		{Name: "B", Indent: 2, IntervalUS: 1000},
	}}
	a := New(clock, &out, cfg)

	for i := 0; i < 2000; i++ {
		clock.Advance(1)
		a.Step()
	}

	counters := a.Counters()
	if counters[0].Count() != 2000/101 {
		t.Errorf("A count = %d, expected %d", counters[0].Count(), 2000/101)
	}
	if counters[1].Count() != 2000/1001 {
		t.Errorf("B count = %d, expected %d", counters[1].Count(), 2000/1001)
	}
	if !strings.HasPrefix(out.String(), "A = 0\r\nA = 1\r\n") {
		t.Errorf("unexpected output: %q", out.String())
	}
	if !strings.Contains(out.String(), "  B = 0\r\n") {
		t.Errorf("B never printed")
	}
	if got := a.Stats().Iterations; got != 2000 {
		t.Errorf("Iterations = %d, expected 2000", got)
	}
}

func TestAppStepReportsOverhead(t *testing.T) {
	now := core.Tick(0)
	clock := core.ClockFunc(func() core.Tick {
		now += 2
		return now
	})
	var out bytes.Buffer
	cfg := Config{
		Counters:       []CounterConfig{{Name: "A", IntervalUS: 1000000}},
		ReportOverhead: true,
	}
	a := New(clock, &out, cfg)

	a.Step()

	// one poll read between stopwatch start and stop
	if out.String() != "Calling counters took: 4 uS.\r\n" {
		t.Errorf("output = %q", out.String())
	}
	stats := a.Stats()
	if stats.LastOverhead != 4 || stats.MaxOverhead != 4 {
		t.Errorf("overhead stats = %+v", stats)
	}
}

func TestAppWithTimer(t *testing.T) {
	clock := core.NewManualClock(0)
	fired := 0
	extra := core.NewPeriodicTimer(clock, 5, func() { fired++ })
	a := New(clock, &bytes.Buffer{}, Config{Counters: []CounterConfig{{Name: "A", IntervalUS: 100}}}, WithTimer(extra))

	clock.Set(6)
	a.Step()

	if fired != 1 {
		t.Errorf("extra timer fired %d times, expected 1", fired)
	}
}

func TestAppStatsCountsWriteErrors(t *testing.T) {
	clock := core.NewManualClock(0)
	cfg := Config{Counters: []CounterConfig{{Name: "A"}}, ReportOverhead: true}
	a := New(clock, failingWriter{}, cfg)

	clock.Advance(1)
	a.Step()

	// one counter line and one overhead line
	if got := a.Stats().WriteErrors; got != 2 {
		t.Errorf("WriteErrors = %d, expected 2", got)
	}
}

func TestAppRunStopsOnCancel(t *testing.T) {
	clock := core.NewManualClock(0)
	a := New(clock, &bytes.Buffer{}, Config{Counters: []CounterConfig{{Name: "A", IntervalUS: 10}}})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := a.Run(ctx, time.Millisecond)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Run() = %v, expected deadline exceeded", err)
	}
	if a.Stats().Iterations == 0 {
		t.Errorf("Run() never stepped")
	}
}
