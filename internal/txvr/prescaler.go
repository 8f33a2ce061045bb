// internal/txvr/prescaler.go
package txvr

import "github.com/tamzrod/txvr16550/internal/uart"

// withEnhancedBank pages in the enhanced register bank, runs fn, and
// restores the saved LCR on every path. EFR and the other enhanced
// registers are addressable only inside fn.
func withEnhancedBank(bus uart.Bus, fn func()) {
	lcr := bus.ReadRegister(uart.LCR)
	bus.WriteRegister(uart.LCR, uart.LCRConfModeB)
	defer bus.WriteRegister(uart.LCR, lcr)
	fn()
}

// SetPrescaler programs the clock prescaler through the SCR/ICR
// indirect pair. The enhanced-mode bit in EFR gates ICR writes; it is
// set here and left set afterwards, since clearing it would undo the
// prescaler path itself. The caller must keep all other register
// access off this port for the duration of the call.
func SetPrescaler(bus uart.Bus, value uint8) {
	withEnhancedBank(bus, func() {
		efr := bus.ReadRegister(uart.EFR)
		bus.WriteRegister(uart.EFR, efr|uart.EFREnhanced)
	})

	// Indirect addressing operates on the normal register map; the
	// bank must be paged out before SCR selects the target.
	bus.WriteRegister(uart.SCR, uart.CPR)
	bus.WriteRegister(uart.ICR, value)
}
