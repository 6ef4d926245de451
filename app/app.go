// Package app wires periodic timers and counters into an explicit
// application context that a main loop drives one Step at a time.
package app

import (
	"context"
	"io"
	"time"

	"microtick/core"
)

const lineEnd = "\r\n"

// Stats describes the loop as observed so far
type Stats struct {
	Iterations   uint64
	LastOverhead core.Tick
	MaxOverhead  core.Tick
	WriteErrors  uint32
}

// Option configures an App
type Option func(*App)

// WithTimer adds a timer polled after the counter timers on every Step.
// Used for board level housekeeping such as a status LED.
func WithTimer(t *core.PeriodicTimer) Option {
	return func(a *App) {
		a.timers = append(a.timers, t)
	}
}

// App owns the clock, the output and every timer the loop polls
type App struct {
	clock          core.Clock
	out            io.Writer
	counters       []*Counter
	timers         []*core.PeriodicTimer
	reportOverhead bool
	buf            []byte
	stats          Stats
}

// New builds the application context from cfg.
// The config must be valid; see Config.Validate.
func New(clock core.Clock, out io.Writer, cfg Config, opts ...Option) *App {
	a := &App{
		clock:          clock,
		out:            out,
		reportOverhead: cfg.ReportOverhead,
		buf:            make([]byte, 0, 48),
	}

	for _, cc := range cfg.Counters {
		counter := NewCounter(cc.Name, cc.Indent, out)
		a.counters = append(a.counters, counter)
		a.timers = append(a.timers, core.NewPeriodicTimer(clock, cc.Interval(), counter.Fire))
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Step runs one loop iteration: poll every timer, then report the time it took
func (a *App) Step() {
	sw := core.StartStopwatch(a.clock)
	for _, t := range a.timers {
		t.Poll()
	}
	overhead := sw.Elapsed()

	a.stats.Iterations++
	a.stats.LastOverhead = overhead
	if overhead > a.stats.MaxOverhead {
		a.stats.MaxOverhead = overhead
	}

	if a.reportOverhead {
		a.buf = append(a.buf[:0], "Calling counters took: "...)
		a.buf = appendUint(a.buf, uint32(overhead))
		a.buf = append(a.buf, " uS."...)
		a.buf = append(a.buf, lineEnd...)
		if _, err := a.out.Write(a.buf); err != nil {
			a.stats.WriteErrors++
		}
	}
}

// Run calls Step until ctx is cancelled.
// A non-zero idle sleeps between steps to yield the CPU.
func (a *App) Run(ctx context.Context, idle time.Duration) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		a.Step()

		if idle > 0 {
			time.Sleep(idle)
		}
	}
}

// Counters returns the counters in configuration order
func (a *App) Counters() []*Counter {
	return a.counters
}

// Stats returns loop statistics including counter write failures
func (a *App) Stats() Stats {
	s := a.stats
	for _, c := range a.counters {
		s.WriteErrors += c.WriteErrors()
	}
	return s
}
