//go:build rp2040

package main

import (
	"image/color"
	"machine"

	"tinygo.org/x/drivers/ws2812"
)

// Onboard WS2812 on RP2040-Zero style boards
const statusPixelPin = machine.GPIO16

var (
	pixelOn  = []color.RGBA{{R: 0, G: 16, B: 0}}
	pixelOff = []color.RGBA{{}}
)

// statusPixel blinks a single WS2812 as a heartbeat
type statusPixel struct {
	dev ws2812.Device
	on  bool
}

func newStatusPixel(pin machine.Pin) *statusPixel {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return &statusPixel{dev: ws2812.New(pin)}
}

// Toggle flips the pixel. Write errors are ignored; the heartbeat is cosmetic.
func (s *statusPixel) Toggle() {
	s.on = !s.on
	if s.on {
		_ = s.dev.WriteColors(pixelOn)
	} else {
		_ = s.dev.WriteColors(pixelOff)
	}
}
