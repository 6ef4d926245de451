//go:build rp2350

package main

import (
	"microtick/app"
)

func main() {
	initClock()

	loop := app.New(hardwareClock, consoleWriter(), app.DefaultConfig())

	for {
		loop.Step()
	}
}
