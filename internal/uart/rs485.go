// internal/uart/rs485.go
package uart

import "time"

// RS485Config is the declarative bus configuration for one port.
// The transceiver code interprets the three flags only; the timing
// fields ride along to the line discipline untouched.
type RS485Config struct {
	// Enabled selects 2-wire RS-485 operation. When false the port
	// runs 4-wire RS-422.
	Enabled bool

	// RxDuringTx keeps the receiver open while transmitting, so
	// locally transmitted data echoes back on receive.
	RxDuringTx bool

	// RTSOnSend lets the transceiver assert its own direction control
	// when outgoing data is detected.
	RTSOnSend bool

	DelayRTSBeforeSend time.Duration
	DelayRTSAfterSend  time.Duration
}
