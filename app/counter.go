package app

import "io"

// Counter is a callback target that prints and increments a count each
// time its timer fires. Its state lives in the struct, not in globals.
type Counter struct {
	name   string
	indent int
	count  uint32
	out    io.Writer
	buf    []byte

	writeErrors uint32
}

// NewCounter creates a counter that writes "<indent><name> = <count>" lines to out
func NewCounter(name string, indent int, out io.Writer) *Counter {
	return &Counter{
		name:   name,
		indent: indent,
		out:    out,
		buf:    make([]byte, 0, 32),
	}
}

// Fire writes the current count and then increments it
func (c *Counter) Fire() {
	c.buf = appendSpaces(c.buf[:0], c.indent)
	c.buf = append(c.buf, c.name...)
	c.buf = append(c.buf, " = "...)
	c.buf = appendUint(c.buf, c.count)
	c.buf = append(c.buf, lineEnd...)
	if _, err := c.out.Write(c.buf); err != nil {
		c.writeErrors++
	}
	c.count++
}

// Name returns the counter label
func (c *Counter) Name() string {
	return c.name
}

// Count returns how many times the counter has fired
func (c *Counter) Count() uint32 {
	return c.count
}

// WriteErrors returns how many output writes failed
func (c *Counter) WriteErrors() uint32 {
	return c.writeErrors
}
