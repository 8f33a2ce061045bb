// internal/txvr/setup_test.go
package txvr

import (
	"testing"

	"github.com/tamzrod/txvr16550/internal/uart"
)

func TestPortSetup_SeedsHardwareDefault(t *testing.T) {
	bus := &fakeBus{}
	p := uart.New(bus)

	PortSetup(p)

	got := p.RS485()
	want := uart.RS485Config{Enabled: true, RTSOnSend: true}
	if got != want {
		t.Fatalf("default config = %+v, want %+v", got, want)
	}
	// Setup only binds; the hardware is not touched.
	if n := len(bus.ops); n != 0 {
		t.Fatalf("setup performed %d register accesses, want 0", n)
	}
}

func TestPortSetup_ThenReconfigureToEcho(t *testing.T) {
	bus := &fakeBus{}
	bus.regs[PCROffset] = PCRTxvrEnable | PCRAutoRS485

	p := uart.New(bus)
	PortSetup(p)

	next := uart.RS485Config{Enabled: true, RxDuringTx: true}
	if err := p.SetRS485(next); err != nil {
		t.Fatalf("SetRS485: %v", err)
	}

	if got := bus.regs[PCROffset] & PCRWireModeMask; got != PCREchoRS485 {
		t.Fatalf("wire mode = %#02x, want echo", got)
	}
	if p.RS485() != next {
		t.Fatalf("cache = %+v, want %+v", p.RS485(), next)
	}
}

func TestPortSetup_RejectionKeepsCache(t *testing.T) {
	bus := &fakeBus{}
	p := uart.New(bus)
	PortSetup(p)

	before := p.RS485()
	err := p.SetRS485(uart.RS485Config{
		Enabled:    true,
		RxDuringTx: true,
		RTSOnSend:  true,
	})
	if err == nil {
		t.Fatalf("expected rejection, got nil")
	}
	if p.RS485() != before {
		t.Fatalf("cache changed on rejection: %+v", p.RS485())
	}
}
