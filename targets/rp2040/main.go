//go:build rp2040

package main

import (
	"machine"
	"time"

	"microtick/app"
	"microtick/core"
)

var heartbeatInterval = core.TicksFromDuration(500 * time.Millisecond)

func main() {
	// USB CDC ignores the baud rate, kept for UART consoles
	_ = machine.Serial.Configure(machine.UARTConfig{BaudRate: 9600})

	pixel := newStatusPixel(statusPixelPin)
	heartbeat := core.NewPeriodicTimer(hardwareClock, heartbeatInterval, pixel.Toggle)

	loop := app.New(hardwareClock, machine.Serial, app.DefaultConfig(), app.WithTimer(heartbeat))

	// Poll as fast as possible, no sleeps
	for {
		loop.Step()
	}
}
