// internal/config/config.go
package config

import (
	"time"

	"github.com/tamzrod/txvr16550/internal/uart"
)

type Config struct {
	Ports []PortConfig `yaml:"ports"`
}

// Wire modes accepted in a port profile.
const (
	ModeRS422     = "rs422"      // 4-wire
	ModeRS485DTR  = "rs485-dtr"  // 2-wire, DTR-controlled, no echo
	ModeRS485Auto = "rs485-auto" // 2-wire, direction follows outgoing data
	ModeRS485Echo = "rs485-echo" // 2-wire, receiver open during transmit
)

// ---- PORT ----

type PortConfig struct {
	Name string `yaml:"name"`

	// IOBase is the io-port address of the UART register block.
	// Zero means the port can only be programmed in dry-run mode.
	IOBase uint16 `yaml:"io_base"`

	// Device is the tty node the probes talk through (optional).
	Device string `yaml:"device"`

	Mode        string `yaml:"mode"`
	Termination bool   `yaml:"termination"`

	// Prescaler, when present, is programmed through the SCR/ICR
	// indirect pair during bring-up.
	Prescaler *uint8 `yaml:"prescaler"`

	DelayRTSBeforeSendMs int `yaml:"delay_rts_before_send_ms"`
	DelayRTSAfterSendMs  int `yaml:"delay_rts_after_send_ms"`

	Probe *ProbeConfig `yaml:"probe"`
}

// ---- PROBE ----

type ProbeConfig struct {
	BaudRate  int  `yaml:"baud_rate"`
	TimeoutMs int  `yaml:"timeout_ms"`
	Loopback  bool `yaml:"loopback"`

	Modbus *ModbusProbeConfig `yaml:"modbus"`
}

type ModbusProbeConfig struct {
	SlaveID  uint8  `yaml:"slave_id"`
	Address  uint16 `yaml:"address"`
	Quantity uint16 `yaml:"quantity"`
}

// RS485 maps the declarative profile onto the bus configuration the
// transceiver code consumes.
func (p PortConfig) RS485() uart.RS485Config {
	cfg := uart.RS485Config{
		DelayRTSBeforeSend: time.Duration(p.DelayRTSBeforeSendMs) * time.Millisecond,
		DelayRTSAfterSend:  time.Duration(p.DelayRTSAfterSendMs) * time.Millisecond,
	}

	switch p.Mode {
	case ModeRS422:
		// Enabled stays false: 4-wire.
	case ModeRS485DTR:
		cfg.Enabled = true
	case ModeRS485Auto:
		cfg.Enabled = true
		cfg.RTSOnSend = true
	case ModeRS485Echo:
		cfg.Enabled = true
		cfg.RxDuringTx = true
	}

	return cfg
}
