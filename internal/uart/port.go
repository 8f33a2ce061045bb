// internal/uart/port.go
package uart

import (
	"errors"
	"sync"
)

// Transceiver powers the physical line drivers of a port on and off.
// An implementation is bound to a port once, at setup, and serves the
// port for its whole lifetime.
type Transceiver interface {
	EnableTransceivers(bus Bus) error
	DisableTransceivers(bus Bus) error
}

// RS485Configurer applies a bus configuration to the hardware. It must
// not touch the hardware when it rejects the configuration.
type RS485Configurer func(bus Bus, cfg RS485Config) error

var (
	errNoTransceiver = errors.New("uart: no transceiver capability bound")
	errNoConfigurer  = errors.New("uart: no rs485 configurer bound")
)

// Port ties one register bus to the transceiver capability bound to it
// and serializes all register access for that physical UART: every
// operation below holds the port lock for its whole register sequence.
type Port struct {
	mu  sync.Mutex
	bus Bus

	txvr      Transceiver
	configure RS485Configurer

	// rs485 is the last successfully applied configuration. Rejected
	// configurations never land here.
	rs485 RS485Config
}

// New returns a port over bus with no transceiver capability bound.
func New(bus Bus) *Port {
	return &Port{bus: bus}
}

// Bind attaches a transceiver capability, its configurer and the
// power-on default configuration. It is called exactly once, from port
// setup, before the port is shared.
func (p *Port) Bind(t Transceiver, fn RS485Configurer, def RS485Config) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.txvr = t
	p.configure = fn
	p.rs485 = def
}

// Bus returns the register bus. Bring-up code may use it directly
// before the port is shared; afterwards all access goes through the
// port operations.
func (p *Port) Bus() Bus {
	return p.bus
}

// EnableTransceivers powers the line drivers on.
func (p *Port) EnableTransceivers() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.txvr == nil {
		return errNoTransceiver
	}
	return p.txvr.EnableTransceivers(p.bus)
}

// DisableTransceivers powers the line drivers off.
func (p *Port) DisableTransceivers() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.txvr == nil {
		return errNoTransceiver
	}
	return p.txvr.DisableTransceivers(p.bus)
}

// SetRS485 applies cfg through the bound configurer. On success cfg
// replaces the cached configuration wholesale; on rejection the cache
// keeps its previous value.
func (p *Port) SetRS485(cfg RS485Config) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.configure == nil {
		return errNoConfigurer
	}
	if err := p.configure(p.bus, cfg); err != nil {
		return err
	}
	p.rs485 = cfg
	return nil
}

// RS485 returns the last successfully applied configuration.
func (p *Port) RS485() RS485Config {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rs485
}
