// internal/txvr/mode.go
package txvr

import "github.com/tamzrod/txvr16550/internal/uart"

// Port Mode Register. Read-only capability announcement.
const (
	PMROffset = 0x0E

	// PMR[1:0] port capabilities.
	PMRCapMask  = 0x03
	PMRNotImpl  = 0x00
	PMRCapRS232 = 0x01
	PMRCapRS485 = 0x02
	PMRCapDual  = 0x03

	// PMR[4] active interface mode on dual-mode ports.
	PMRModeMask  = 0x10
	PMRModeRS232 = 0x00
	PMRModeRS485 = 0x10
)

// IsRS232Mode reports whether the port is electrically operating as
// RS-232 right now. Pure read, no side effects.
//
// Ports that do not implement the PMR report RS-485: on this hardware
// family an unannounced port is wired to RS-485 transceivers.
func IsRS232Mode(bus uart.Bus) bool {
	pmr := bus.ReadRegister(PMROffset)

	switch pmr & PMRCapMask {
	case PMRNotImpl:
		return false
	case PMRCapDual:
		return pmr&PMRModeMask == PMRModeRS232
	default:
		return pmr&PMRCapMask == PMRCapRS232
	}
}
