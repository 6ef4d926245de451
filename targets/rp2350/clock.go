//go:build rp2350

package main

import (
	"runtime/volatile"
	"unsafe"

	"microtick/core"
)

// RP2350 Timer peripheral memory map
// NOTE: RP2350 timer is at a DIFFERENT address than RP2040!
// - RP2040 TIMER: 0x40054000
// - RP2350 TIMER0: 0x400B0000
const (
	timerBase     = 0x400B0000       // RP2350 TIMER0 base address
	timerTimeRawL = timerBase + 0x28 // Raw timer low (no latching)
)

var timerRawL = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTimeRawL)))

var hardwareClock = core.ClockFunc(func() core.Tick {
	return core.Tick(timerRawL.Get())
})

// initClock waits for the timer to settle after TinyGo's tick generator setup
func initClock() {
	// Read and discard a few values to ensure we get stable readings
	_ = timerRawL.Get()
	_ = timerRawL.Get()
	_ = timerRawL.Get()
}
