// Package fault defines the panic-carried error values the emulator core
// raises for programmer-error conditions (unknown opcodes, illegal bus
// access). These are not meant to be recovered inside the core; the host
// binary recovers them at its outermost loop, logs, and exits.
package fault

import "fmt"

// Kind identifies the category of an EmulationFault.
type Kind int

const (
	UnknownOpcode Kind = iota
	IllegalBusAccess
	BadPaletteAddress
)

func (k Kind) String() string {
	switch k {
	case UnknownOpcode:
		return "unknown opcode"
	case IllegalBusAccess:
		return "illegal bus access"
	case BadPaletteAddress:
		return "bad palette address"
	default:
		return "unknown fault"
	}
}

// EmulationFault is panicked by the CPU/Bus/PPU on conditions spec.md §7
// classifies as fatal: they indicate a bug in this emulator or a corrupt
// ROM, not a recoverable runtime condition.
type EmulationFault struct {
	Kind    Kind
	PC      uint16
	Address uint16
	Byte    uint8
	Msg     string
}

func (f *EmulationFault) Error() string {
	return fmt.Sprintf("%s: %s (PC=$%04X addr=$%04X byte=$%02X)", f.Kind, f.Msg, f.PC, f.Address, f.Byte)
}

// Raise panics with a populated EmulationFault. Callers at the CPU/Bus/PPU
// boundary use this instead of returning an error because spec.md treats
// these conditions as programmer-error aborts, not propagated results.
func Raise(kind Kind, pc, addr uint16, b uint8, msg string) {
	panic(&EmulationFault{Kind: kind, PC: pc, Address: addr, Byte: b, Msg: msg})
}
