// internal/regio/mem.go

// Package regio provides register-bus backends: a flat in-memory
// register file for dry runs and tests, and a /dev/port backend for
// io-port mapped UARTs on Linux.
package regio

// Mem is a flat 256-byte register file. Reads return whatever was last
// written (or seeded); there is no banking emulation, which keeps it an
// honest recorder of the access sequences driven over it.
type Mem struct {
	regs [256]uint8
}

// NewMem returns an all-zero register file.
func NewMem() *Mem {
	return &Mem{}
}

func (m *Mem) ReadRegister(offset uint8) uint8 {
	return m.regs[offset]
}

func (m *Mem) WriteRegister(offset uint8, value uint8) {
	m.regs[offset] = value
}

// Seed sets a register without going through the bus interface, for
// staging hardware state before a dry run.
func (m *Mem) Seed(offset, value uint8) {
	m.regs[offset] = value
}
