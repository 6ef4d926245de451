package serial

import (
	"errors"
	"io"
	"time"
)

var (
	ErrNilConfig   = errors.New("config cannot be nil")
	ErrEmptyDevice = errors.New("device path cannot be empty")
)

// Port is the byte stream from a board's serial console.
// Implementations:
// - Native serial (using github.com/tarm/serial)
// - In-memory readers in tests
type Port interface {
	io.ReadWriteCloser

	// Flush flushes any buffered data
	Flush() error

	// Device returns the path the port was opened on
	Device() string
}

// Config holds serial port configuration
type Config struct {
	// Device path (e.g., "/dev/ttyACM0", "COM3")
	Device string

	// Baud rate, 9600 for the counter firmware (USB CDC ignores this)
	Baud int

	// Read timeout (0 = blocking)
	ReadTimeout time.Duration
}

// DefaultConfig returns the settings the firmware configures its serial with
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        9600,
		ReadTimeout: 100 * time.Millisecond,
	}
}

// Validate checks that the config can be used to open a port
func (c *Config) Validate() error {
	if c == nil {
		return ErrNilConfig
	}
	if c.Device == "" {
		return ErrEmptyDevice
	}
	return nil
}
