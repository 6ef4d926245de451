//go:build rp2040

package main

import (
	"runtime/volatile"
	"unsafe"

	"microtick/core"
)

// RP2040 Timer peripheral memory map
const (
	timerBase     = 0x40054000
	timerTIMERAWL = timerBase + 0x28 // Raw timer low word, no latching
)

var timerRAWL = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTIMERAWL)))

// hardwareClock reads the low 32 bits of the RP2040 1MHz timer.
// The raw register does not latch the high word, so reads have no side
// effects and every call sees the live counter.
var hardwareClock = core.ClockFunc(func() core.Tick {
	return core.Tick(timerRAWL.Get())
})
