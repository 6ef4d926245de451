// Package config loads the host tool settings from YAML.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/goccy/go-yaml"

	"microtick/app"
	"microtick/core"
)

const (
	ModeSimulate = "simulate"
	ModeMonitor  = "monitor"
)

var ErrUnknownMode = errors.New("mode must be simulate or monitor")

// Config holds the microtick-host settings
type Config struct {
	Mode        string     `yaml:"mode"`
	Device      string     `yaml:"device"`
	Baud        int        `yaml:"baud"`
	ReadTimeout string     `yaml:"read_timeout"`
	Idle        string     `yaml:"idle"`
	StartTick   uint32     `yaml:"start_tick"`
	LogLevel    string     `yaml:"log_level"`
	LogFormat   string     `yaml:"log_format"` // "text" or "json"
	App         app.Config `yaml:"app"`
}

// Default returns the configuration used when no file is given
func Default() Config {
	return Config{
		Mode:        ModeSimulate,
		Device:      "/dev/ttyACM0",
		Baud:        9600,
		ReadTimeout: "100ms",
		LogLevel:    "info",
		LogFormat:   "text",
		App:         app.DefaultConfig(),
	}
}

// Load reads path and applies defaults to anything left unset.
// An empty path returns Default().
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML data and validates the result
func Parse(data []byte) (Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	// A missing app section means the default app, report_overhead included
	var sections struct {
		App *app.Config `yaml:"app"`
	}
	if err := yaml.Unmarshal(data, &sections); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if sections.App == nil {
		c.App = app.DefaultConfig()
	}

	applyDefaults(&c)

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// applyDefaults fills in missing values from Default()
func applyDefaults(c *Config) {
	def := Default()

	if c.Mode == "" {
		c.Mode = def.Mode
	}
	if c.Device == "" {
		c.Device = def.Device
	}
	if c.Baud == 0 {
		c.Baud = def.Baud
	}
	if c.ReadTimeout == "" {
		c.ReadTimeout = def.ReadTimeout
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = def.LogFormat
	}
	if len(c.App.Counters) == 0 {
		c.App.Counters = def.App.Counters
	}
}

// Validate checks values that cannot be defaulted
func (c Config) Validate() error {
	if c.Mode != ModeSimulate && c.Mode != ModeMonitor {
		return fmt.Errorf("%w: %q", ErrUnknownMode, c.Mode)
	}
	if _, err := c.ReadTimeoutDuration(); err != nil {
		return err
	}
	if _, err := c.IdleDuration(); err != nil {
		return err
	}
	if err := c.App.Validate(); err != nil {
		return fmt.Errorf("app: %w", err)
	}
	return nil
}

// ReadTimeoutDuration parses read_timeout
func (c Config) ReadTimeoutDuration() (time.Duration, error) {
	return parseDuration("read_timeout", c.ReadTimeout)
}

// IdleDuration parses idle; empty means no sleep between loop steps
func (c Config) IdleDuration() (time.Duration, error) {
	return parseDuration("idle", c.Idle)
}

// Start returns the tick the simulated counter begins at
func (c Config) Start() core.Tick {
	return core.Tick(c.StartTick)
}

func parseDuration(field, s string) (time.Duration, error) {
	if strings.TrimSpace(s) == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s: negative duration %s", field, s)
	}
	return d, nil
}

// ParseSlogLevel maps a log_level string to a slog level, defaulting to info
func ParseSlogLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds the logger described by log_level and log_format
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseSlogLevel(c.LogLevel)}

	var handler slog.Handler
	switch c.LogFormat {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}
