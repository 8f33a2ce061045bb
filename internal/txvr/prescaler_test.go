// internal/txvr/prescaler_test.go
package txvr

import (
	"testing"

	"github.com/tamzrod/txvr16550/internal/uart"
)

func TestSetPrescaler_AccessOrder(t *testing.T) {
	const savedLCR = 0x03 // 8N1
	const prescaler = 0x20

	bus := &fakeBus{}
	bus.regs[uart.LCR] = savedLCR

	SetPrescaler(bus, prescaler)

	want := []regOp{
		{write: false, offset: uart.LCR, value: savedLCR},
		{write: true, offset: uart.LCR, value: uart.LCRConfModeB},
		{write: false, offset: uart.EFR, value: 0},
		{write: true, offset: uart.EFR, value: uart.EFREnhanced},
		{write: true, offset: uart.LCR, value: savedLCR},
		{write: true, offset: uart.SCR, value: uart.CPR},
		{write: true, offset: uart.ICR, value: prescaler},
	}
	if len(bus.ops) != len(want) {
		t.Fatalf("got %d register accesses, want %d: %+v", len(bus.ops), len(want), bus.ops)
	}
	for i, op := range bus.ops {
		if op != want[i] {
			t.Fatalf("access %d = %+v, want %+v", i, op, want[i])
		}
	}
}

func TestSetPrescaler_RestoresLCRBeforeIndirectWrites(t *testing.T) {
	bus := &fakeBus{}
	bus.regs[uart.LCR] = 0x1B

	SetPrescaler(bus, 0x10)

	// The bank must be paged out before SCR/ICR are touched.
	restored := -1
	for i, op := range bus.ops {
		if op.write && op.offset == uart.LCR && op.value == 0x1B {
			restored = i
		}
		if op.write && (op.offset == uart.SCR || op.offset == uart.ICR) && restored == -1 {
			t.Fatalf("indirect write at access %d before LCR restore: %+v", i, bus.ops)
		}
	}
	if restored == -1 {
		t.Fatalf("LCR never restored: %+v", bus.ops)
	}
	if bus.regs[uart.LCR] != 0x1B {
		t.Fatalf("final LCR = %#02x, want %#02x", bus.regs[uart.LCR], 0x1B)
	}
}

func TestSetPrescaler_RepeatedCallsStable(t *testing.T) {
	bus := &fakeBus{}
	bus.regs[uart.LCR] = 0x03

	SetPrescaler(bus, 0x08)
	SetPrescaler(bus, 0x08)

	// The enhanced-mode bit is sticky: set on the first call, still set
	// (and simply re-written) on the second.
	if bus.regs[uart.EFR]&uart.EFREnhanced == 0 {
		t.Fatalf("EFR enhanced bit not set: efr=%#02x", bus.regs[uart.EFR])
	}
	if bus.regs[uart.ICR] != 0x08 {
		t.Fatalf("ICR = %#02x, want %#02x", bus.regs[uart.ICR], 0x08)
	}
	if bus.regs[uart.LCR] != 0x03 {
		t.Fatalf("LCR = %#02x, want %#02x", bus.regs[uart.LCR], 0x03)
	}
}
