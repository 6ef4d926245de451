// Package monitor follows the text the counter firmware prints and keeps
// per-counter statistics.
package monitor

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
)

const overheadPrefix = "Calling counters took: "

// EventKind identifies the type of a parsed output line
type EventKind uint8

const (
	EventCounter  EventKind = iota + 1 // "<name> = <count>"
	EventOverhead                      // "Calling counters took: <n> uS."
)

// Event is one parsed line of firmware output
type Event struct {
	Kind  EventKind
	Name  string // counter name, empty for overhead events
	Value uint32 // count or overhead in microseconds
}

// ParseLine parses one line of firmware output.
// Leading indentation and trailing CR/LF are ignored.
func ParseLine(line string) (Event, bool) {
	line = strings.TrimSpace(line)

	if rest, ok := strings.CutPrefix(line, overheadPrefix); ok {
		value, ok := strings.CutSuffix(rest, " uS.")
		if !ok {
			return Event{}, false
		}
		n, err := strconv.ParseUint(value, 10, 32)
		if err != nil {
			return Event{}, false
		}
		return Event{Kind: EventOverhead, Value: uint32(n)}, true
	}

	name, value, ok := strings.Cut(line, " = ")
	if !ok || name == "" || strings.ContainsAny(name, " \t") {
		return Event{}, false
	}
	n, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return Event{}, false
	}
	return Event{Kind: EventCounter, Name: name, Value: uint32(n)}, true
}

// CounterStats tracks one counter seen on the wire
type CounterStats struct {
	Seen    uint64 // lines observed
	Last    uint32 // last printed count
	Skipped uint64 // counts missing between consecutive lines
	Resets  uint64 // times the count went back to 0 (board restart)
}

// Stats summarises everything observed so far
type Stats struct {
	Lines         uint64
	Unparsed      uint64
	Counters      map[string]*CounterStats
	OverheadCount uint64
	OverheadTotal uint64
	OverheadMax   uint32
}

// MeanOverhead returns the average reported loop overhead in microseconds
func (s Stats) MeanOverhead() float64 {
	if s.OverheadCount == 0 {
		return 0
	}
	return float64(s.OverheadTotal) / float64(s.OverheadCount)
}

// Monitor consumes firmware output
type Monitor struct {
	log   *slog.Logger
	stats Stats
}

// New creates a monitor logging through logger (slog.Default() if nil)
func New(logger *slog.Logger) *Monitor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Monitor{
		log:   logger,
		stats: Stats{Counters: make(map[string]*CounterStats)},
	}
}

// Observe processes a single output line
func (m *Monitor) Observe(line string) {
	if strings.TrimSpace(line) == "" {
		return
	}
	m.stats.Lines++

	evt, ok := ParseLine(line)
	if !ok {
		m.stats.Unparsed++
		m.log.Debug("unparsed line", "line", strings.TrimRight(line, "\r\n"))
		return
	}

	switch evt.Kind {
	case EventOverhead:
		m.stats.OverheadCount++
		m.stats.OverheadTotal += uint64(evt.Value)
		if evt.Value > m.stats.OverheadMax {
			m.stats.OverheadMax = evt.Value
		}
	case EventCounter:
		m.observeCounter(evt)
	}
}

func (m *Monitor) observeCounter(evt Event) {
	cs, exists := m.stats.Counters[evt.Name]
	if !exists {
		cs = &CounterStats{}
		m.stats.Counters[evt.Name] = cs
		m.log.Info("counter discovered", "counter", evt.Name, "count", evt.Value)
	} else {
		switch {
		case evt.Value == cs.Last+1:
		case evt.Value == 0:
			cs.Resets++
			m.log.Warn("counter reset", "counter", evt.Name, "last", cs.Last)
		case evt.Value > cs.Last:
			missing := uint64(evt.Value - cs.Last - 1)
			cs.Skipped += missing
			m.log.Warn("counter skipped", "counter", evt.Name, "last", cs.Last, "count", evt.Value, "missing", missing)
		default:
			m.log.Warn("counter went backwards", "counter", evt.Name, "last", cs.Last, "count", evt.Value)
		}
	}

	cs.Seen++
	cs.Last = evt.Value
	m.log.Debug("counter", "counter", evt.Name, "count", evt.Value)
}

// Run reads lines from r until EOF or ctx is cancelled.
// Serial read timeouts surface as reads returning no data; those are retried.
func (m *Monitor) Run(ctx context.Context, r io.Reader) error {
	rd := bufio.NewReader(r)
	var partial strings.Builder

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		chunk, err := rd.ReadString('\n')
		partial.WriteString(chunk)

		switch {
		case err == nil:
			m.Observe(partial.String())
			partial.Reset()
		case errors.Is(err, io.ErrNoProgress):
			continue
		case errors.Is(err, io.EOF):
			if partial.Len() > 0 {
				m.Observe(partial.String())
			}
			return nil
		default:
			return fmt.Errorf("read serial: %w", err)
		}
	}
}

// Stats returns a copy of the statistics gathered so far
func (m *Monitor) Stats() Stats {
	s := m.stats
	s.Counters = make(map[string]*CounterStats, len(m.stats.Counters))
	for name, cs := range m.stats.Counters {
		copied := *cs
		s.Counters[name] = &copied
	}
	return s
}

// LogSummary writes the final statistics at info level
func (m *Monitor) LogSummary() {
	m.log.Info("monitor summary",
		"lines", m.stats.Lines,
		"unparsed", m.stats.Unparsed,
		"overhead_mean_us", m.stats.MeanOverhead(),
		"overhead_max_us", m.stats.OverheadMax)
	for name, cs := range m.stats.Counters {
		m.log.Info("counter summary",
			"counter", name,
			"seen", cs.Seen,
			"last", cs.Last,
			"skipped", cs.Skipped,
			"resets", cs.Resets)
	}
}
