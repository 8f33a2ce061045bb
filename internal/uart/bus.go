// internal/uart/bus.go
package uart

// Bus is byte-wide access to the register file of one UART.
// Offsets are relative to the start of the register block.
// Implementations do not fail per access; an absent medium is a
// construction-time problem, not a per-register one.
type Bus interface {
	ReadRegister(offset uint8) uint8
	WriteRegister(offset uint8, value uint8)
}

// Standard 16550-family register offsets and sentinel values used by the
// extended-feature paths. PCR/PMR are family-specific and live with the
// transceiver code.
const (
	// EFR overlays offset 2 while the enhanced bank is paged in.
	EFR = 2
	// LCR gates both line format and, via the config-mode sentinels,
	// register bank selection.
	LCR = 3
	// ICR is the indirect control register; SCR selects its target.
	ICR = 5
	// SCR is the scratch register, reused as the indirect-select
	// register on 16C950-class parts.
	SCR = 7
)

const (
	// LCRConfModeB pages in the enhanced register bank when written
	// to LCR.
	LCRConfModeB = 0xBF
	// EFREnhanced is EFR[4], the enhanced-mode enable bit. It gates
	// writes through the SCR/ICR indirect pair.
	EFREnhanced = 0x10
	// CPR is the indirect address of the clock prescaler register.
	CPR = 0x01
)
