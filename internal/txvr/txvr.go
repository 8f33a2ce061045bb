// internal/txvr/txvr.go

// Package txvr controls the integrated RS-422/RS-485 transceiver
// circuitry of 16550-family UARTs that carry a Port Control Register.
// It owns two extra registers past the standard 16550 map and nothing
// else: the PCR (wire mode, transceiver power, termination) and the
// read-only PMR (capability announcement).
package txvr

import (
	"errors"

	"github.com/tamzrod/txvr16550/internal/uart"
)

// Port Control Register.
const (
	PCROffset = 0x0F

	// PCR[1:0] wire mode encodings.
	PCRRS422     = 0x00 // 4-wire, separate transmit and receive pairs
	PCREchoRS485 = 0x01 // 2-wire, receiver open during transmit
	PCRDTRRS485  = 0x02 // 2-wire, direction driven by DTR, no echo
	PCRAutoRS485 = 0x03 // 2-wire, direction follows outgoing data

	PCRWireModeMask = 0x03

	PCRTxvrEnable  = 1 << 3
	PCRTermination = 1 << 6
)

// ErrInvalidTwoWireMode rejects configurations that ask for echo and
// automatic direction control at the same time. A 2-wire transceiver
// cannot do both.
var ErrInvalidTwoWireMode = errors.New("txvr: invalid 2-wire mode")

// Control is the transceiver capability for this UART family. It is
// stateless; one shared instance can serve any number of ports.
type Control struct{}

// EnableTransceivers sets the transceiver power bit in the PCR,
// leaving wire mode and termination untouched.
func (Control) EnableTransceivers(bus uart.Bus) error {
	pcr := bus.ReadRegister(PCROffset)
	pcr |= PCRTxvrEnable
	bus.WriteRegister(PCROffset, pcr)
	return nil
}

// DisableTransceivers clears the transceiver power bit in the PCR,
// leaving wire mode and termination untouched.
func (Control) DisableTransceivers(bus uart.Bus) error {
	pcr := bus.ReadRegister(PCROffset)
	pcr &^= PCRTxvrEnable
	bus.WriteRegister(PCROffset, pcr)
	return nil
}

// ConfigRS485 programs the PCR wire-mode field from cfg. Bits outside
// the wire-mode field are preserved, and the register is not written at
// all when cfg is rejected.
//
// With the bus enabled, echo takes precedence over automatic direction
// control, and the absence of both selects DTR-controlled operation.
// That ordering is a property of the transceiver circuitry.
func ConfigRS485(bus uart.Bus, cfg uart.RS485Config) error {
	pcr := bus.ReadRegister(PCROffset)
	pcr &^= PCRWireModeMask

	switch {
	case !cfg.Enabled:
		pcr |= PCRRS422
	case cfg.RxDuringTx && cfg.RTSOnSend:
		return ErrInvalidTwoWireMode
	case cfg.RxDuringTx:
		pcr |= PCREchoRS485
	case cfg.RTSOnSend:
		pcr |= PCRAutoRS485
	default:
		pcr |= PCRDTRRS485
	}

	bus.WriteRegister(PCROffset, pcr)
	return nil
}

// SetTermination drives the on-board bus termination resistor bit,
// leaving the rest of the PCR untouched.
func SetTermination(bus uart.Bus, on bool) {
	pcr := bus.ReadRegister(PCROffset)
	if on {
		pcr |= PCRTermination
	} else {
		pcr &^= PCRTermination
	}
	bus.WriteRegister(PCROffset, pcr)
}
