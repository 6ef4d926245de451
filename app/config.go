package app

import (
	"errors"
	"fmt"
	"time"

	"microtick/core"
)

var (
	ErrNoCounters     = errors.New("at least one counter is required")
	ErrEmptyName      = errors.New("counter name cannot be empty")
	ErrDuplicateName  = errors.New("duplicate counter name")
	ErrNegativeIndent = errors.New("counter indent cannot be negative")
	ErrBadInterval    = errors.New("counter interval must be a non-negative duration")
	ErrTwoIntervals   = errors.New("set either interval or interval_us, not both")
)

// CounterConfig describes one periodic counter.
// The period is either IntervalUS or Every ("100ms", "1s").
type CounterConfig struct {
	Name       string `yaml:"name" json:"name"`
	Indent     int    `yaml:"indent" json:"indent"`
	IntervalUS uint32 `yaml:"interval_us" json:"interval_us"`
	Every      string `yaml:"interval" json:"interval"`
}

// Interval returns the counter period in ticks.
// An unparsable Every gives 0; Validate reports it.
func (c CounterConfig) Interval() core.Tick {
	if c.Every == "" {
		return core.Tick(c.IntervalUS)
	}
	d, err := time.ParseDuration(c.Every)
	if err != nil {
		return 0
	}
	return core.TicksFromDuration(d)
}

func (c CounterConfig) validateInterval() error {
	if c.Every == "" {
		return nil
	}
	if c.IntervalUS != 0 {
		return ErrTwoIntervals
	}
	d, err := time.ParseDuration(c.Every)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadInterval, err)
	}
	if d < 0 {
		return fmt.Errorf("%w: %s", ErrBadInterval, c.Every)
	}
	return nil
}

// Config holds the application loop settings
type Config struct {
	Counters []CounterConfig `yaml:"counters" json:"counters"`

	// ReportOverhead prints how long each pass over the timers took
	ReportOverhead bool `yaml:"report_overhead" json:"report_overhead"`
}

// DefaultConfig returns the two counter setup: A every 100ms, B every second
func DefaultConfig() Config {
	interval := uint32(core.TicksPerSecond / 10)
	return Config{
		Counters: []CounterConfig{
			{Name: "A", IntervalUS: interval},
			{Name: "B", Indent: 2, IntervalUS: interval * 10},
		},
		ReportOverhead: true,
	}
}

// Validate checks the configuration for errors
func (c Config) Validate() error {
	if len(c.Counters) == 0 {
		return ErrNoCounters
	}

	seen := make(map[string]bool, len(c.Counters))
	for i, counter := range c.Counters {
		if counter.Name == "" {
			return fmt.Errorf("counter %d: %w", i, ErrEmptyName)
		}
		if counter.Indent < 0 {
			return fmt.Errorf("counter %q: %w", counter.Name, ErrNegativeIndent)
		}
		if err := counter.validateInterval(); err != nil {
			return fmt.Errorf("counter %q: %w", counter.Name, err)
		}
		if seen[counter.Name] {
			return fmt.Errorf("counter %q: %w", counter.Name, ErrDuplicateName)
		}
		seen[counter.Name] = true
	}

	return nil
}
