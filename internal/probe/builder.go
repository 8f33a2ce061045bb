// internal/probe/builder.go
package probe

import (
	"errors"
	"time"

	"github.com/goburrow/modbus"
	"github.com/goburrow/serial"

	"github.com/tamzrod/txvr16550/internal/uart"
)

// OpenSerial opens the tty for the loopback probe, carrying the applied
// RS-485 configuration down to the line discipline so the kernel drives
// direction control the same way the transceiver was just programmed.
func OpenSerial(device string, baud int, timeout time.Duration, cfg uart.RS485Config) (serial.Port, error) {
	if device == "" {
		return nil, errors.New("probe: device required")
	}

	return serial.Open(&serial.Config{
		Address:  device,
		BaudRate: baud,
		DataBits: 8,
		StopBits: 1,
		Parity:   "N",
		Timeout:  timeout,
		RS485: serial.RS485Config{
			Enabled:            cfg.Enabled,
			RtsHighDuringSend:  cfg.RTSOnSend,
			RxDuringTx:         cfg.RxDuringTx,
			DelayRtsBeforeSend: cfg.DelayRTSBeforeSend,
			DelayRtsAfterSend:  cfg.DelayRTSAfterSend,
		},
	})
}

// NewRTUClient creates a connected Modbus RTU client for the smoke
// probe. The returned closer releases the serial line.
func NewRTUClient(device string, baud int, slaveID uint8, timeout time.Duration) (RegisterReader, func() error, error) {
	if device == "" {
		return nil, nil, errors.New("probe: device required")
	}

	h := modbus.NewRTUClientHandler(device)
	h.BaudRate = baud
	h.DataBits = 8
	h.StopBits = 1
	h.Parity = "N"
	h.SlaveId = slaveID
	h.Timeout = timeout

	if err := h.Connect(); err != nil {
		return nil, nil, err
	}

	return modbus.NewClient(h), h.Close, nil
}
