// internal/regio/portio_stub.go
//go:build !linux

package regio

import "errors"

// PortIO is only available on Linux, where /dev/port exposes the
// io-port space.
type PortIO struct{}

func OpenPortIO(base uint16) (*PortIO, error) {
	return nil, errors.New("regio: io-port access requires linux")
}

func (p *PortIO) ReadRegister(offset uint8) uint8         { return 0 }
func (p *PortIO) WriteRegister(offset uint8, value uint8) {}
func (p *PortIO) Err() error                              { return nil }
func (p *PortIO) Close() error                            { return nil }
