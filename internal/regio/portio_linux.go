// internal/regio/portio_linux.go
package regio

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// PortIO reaches io-port mapped UART registers through /dev/port, where
// the file offset is the io-port address. Each access is a pread/pwrite
// at base+offset, so no seek state is shared.
//
// The register-bus contract has no per-access error path; PortIO keeps
// the first failure sticky and callers check Err once the register
// sequence is done. After a failure reads return zero and writes are
// dropped.
type PortIO struct {
	f    *os.File
	base int64
	err  error
}

// OpenPortIO opens /dev/port for the register block at base. Requires
// CAP_SYS_RAWIO; failing to open is the fatal absent-medium case.
func OpenPortIO(base uint16) (*PortIO, error) {
	f, err := os.OpenFile("/dev/port", os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("regio: open /dev/port: %v", err)
	}
	return &PortIO{f: f, base: int64(base)}, nil
}

func (p *PortIO) ReadRegister(offset uint8) uint8 {
	if p.err != nil {
		return 0
	}
	var b [1]byte
	if _, err := unix.Pread(int(p.f.Fd()), b[:], p.base+int64(offset)); err != nil {
		p.err = fmt.Errorf("regio: read io-port %#x: %v", p.base+int64(offset), err)
		return 0
	}
	return b[0]
}

func (p *PortIO) WriteRegister(offset uint8, value uint8) {
	if p.err != nil {
		return
	}
	b := [1]byte{value}
	if _, err := unix.Pwrite(int(p.f.Fd()), b[:], p.base+int64(offset)); err != nil {
		p.err = fmt.Errorf("regio: write io-port %#x: %v", p.base+int64(offset), err)
	}
}

// Err returns the first access failure, if any.
func (p *PortIO) Err() error {
	return p.err
}

// Close releases /dev/port.
func (p *PortIO) Close() error {
	return p.f.Close()
}
