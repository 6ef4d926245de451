//go:build rp2350

package main

import (
	"io"
	"machine"
)

// debugUART mirrors counter output to UART1 on GPIO36 (TX) and GPIO37 (RX)
// so the loop can be watched while USB is busy or unplugged.
var debugUART *machine.UART

// initDebugUART configures UART1 at 115200 baud.
// Returns nil if the UART could not be configured.
func initDebugUART() io.Writer {
	uart := machine.UART1

	err := uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GPIO36, // UART1 TX
		RX:       machine.GPIO37, // UART1 RX
	})
	if err != nil {
		return nil
	}

	debugUART = uart
	debugUART.Write([]byte("=== RP2350 Debug UART Initialized ===\r\n"))
	return debugUART
}

// consoleWriter returns the writer counter output goes to: USB serial,
// plus the debug UART when it is available. The UART is written first since
// a USB write fails while no host is attached.
func consoleWriter() io.Writer {
	_ = machine.Serial.Configure(machine.UARTConfig{BaudRate: 9600})

	if uart := initDebugUART(); uart != nil {
		return io.MultiWriter(uart, machine.Serial)
	}
	return machine.Serial
}
