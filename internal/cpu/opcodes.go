package cpu

// Mode is the addressing mode an opcode decodes its operand with.
type Mode int

const (
	None Mode = iota // implied, accumulator, or relative-branch forms
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Absolute
	AbsoluteX
	AbsoluteY
	IndirectX // (zp,X)
	IndirectY // (zp),Y
	Indirect  // JMP only
)

// Instruction is the static, read-only decode of one opcode byte: its
// mnemonic (for the trace hook), its addressing mode, its length in bytes,
// and its base cycle count before page-cross/branch-taken penalties.
type Instruction struct {
	Name   string
	Mode   Mode
	Length uint8
	Cycles uint8
}

// opcodeTable maps opcode byte to Instruction. A zero-value entry (empty
// Name) means the byte is not a valid opcode in this emulator's opcode set
// (either truly undefined, or one of the unstable/JAM opcodes this
// implementation does not model) and triggers fault.UnknownOpcode.
var opcodeTable [256]Instruction

func def(op uint8, name string, mode Mode, length, cycles uint8) {
	opcodeTable[op] = Instruction{Name: name, Mode: mode, Length: length, Cycles: cycles}
}

func init() {
	// Load/Store
	def(0xA9, "LDA", Immediate, 2, 2)
	def(0xA5, "LDA", ZeroPage, 2, 3)
	def(0xB5, "LDA", ZeroPageX, 2, 4)
	def(0xAD, "LDA", Absolute, 3, 4)
	def(0xBD, "LDA", AbsoluteX, 3, 4)
	def(0xB9, "LDA", AbsoluteY, 3, 4)
	def(0xA1, "LDA", IndirectX, 2, 6)
	def(0xB1, "LDA", IndirectY, 2, 5)

	def(0xA2, "LDX", Immediate, 2, 2)
	def(0xA6, "LDX", ZeroPage, 2, 3)
	def(0xB6, "LDX", ZeroPageY, 2, 4)
	def(0xAE, "LDX", Absolute, 3, 4)
	def(0xBE, "LDX", AbsoluteY, 3, 4)

	def(0xA0, "LDY", Immediate, 2, 2)
	def(0xA4, "LDY", ZeroPage, 2, 3)
	def(0xB4, "LDY", ZeroPageX, 2, 4)
	def(0xAC, "LDY", Absolute, 3, 4)
	def(0xBC, "LDY", AbsoluteX, 3, 4)

	def(0x85, "STA", ZeroPage, 2, 3)
	def(0x95, "STA", ZeroPageX, 2, 4)
	def(0x8D, "STA", Absolute, 3, 4)
	def(0x9D, "STA", AbsoluteX, 3, 5)
	def(0x99, "STA", AbsoluteY, 3, 5)
	def(0x81, "STA", IndirectX, 2, 6)
	def(0x91, "STA", IndirectY, 2, 6)

	def(0x86, "STX", ZeroPage, 2, 3)
	def(0x96, "STX", ZeroPageY, 2, 4)
	def(0x8E, "STX", Absolute, 3, 4)

	def(0x84, "STY", ZeroPage, 2, 3)
	def(0x94, "STY", ZeroPageX, 2, 4)
	def(0x8C, "STY", Absolute, 3, 4)

	// Arithmetic
	def(0x69, "ADC", Immediate, 2, 2)
	def(0x65, "ADC", ZeroPage, 2, 3)
	def(0x75, "ADC", ZeroPageX, 2, 4)
	def(0x6D, "ADC", Absolute, 3, 4)
	def(0x7D, "ADC", AbsoluteX, 3, 4)
	def(0x79, "ADC", AbsoluteY, 3, 4)
	def(0x61, "ADC", IndirectX, 2, 6)
	def(0x71, "ADC", IndirectY, 2, 5)

	def(0xE9, "SBC", Immediate, 2, 2)
	def(0xEB, "SBC", Immediate, 2, 2) // unofficial alias
	def(0xE5, "SBC", ZeroPage, 2, 3)
	def(0xF5, "SBC", ZeroPageX, 2, 4)
	def(0xED, "SBC", Absolute, 3, 4)
	def(0xFD, "SBC", AbsoluteX, 3, 4)
	def(0xF9, "SBC", AbsoluteY, 3, 4)
	def(0xE1, "SBC", IndirectX, 2, 6)
	def(0xF1, "SBC", IndirectY, 2, 5)

	// Logical
	def(0x29, "AND", Immediate, 2, 2)
	def(0x25, "AND", ZeroPage, 2, 3)
	def(0x35, "AND", ZeroPageX, 2, 4)
	def(0x2D, "AND", Absolute, 3, 4)
	def(0x3D, "AND", AbsoluteX, 3, 4)
	def(0x39, "AND", AbsoluteY, 3, 4)
	def(0x21, "AND", IndirectX, 2, 6)
	def(0x31, "AND", IndirectY, 2, 5)

	def(0x09, "ORA", Immediate, 2, 2)
	def(0x05, "ORA", ZeroPage, 2, 3)
	def(0x15, "ORA", ZeroPageX, 2, 4)
	def(0x0D, "ORA", Absolute, 3, 4)
	def(0x1D, "ORA", AbsoluteX, 3, 4)
	def(0x19, "ORA", AbsoluteY, 3, 4)
	def(0x01, "ORA", IndirectX, 2, 6)
	def(0x11, "ORA", IndirectY, 2, 5)

	def(0x49, "EOR", Immediate, 2, 2)
	def(0x45, "EOR", ZeroPage, 2, 3)
	def(0x55, "EOR", ZeroPageX, 2, 4)
	def(0x4D, "EOR", Absolute, 3, 4)
	def(0x5D, "EOR", AbsoluteX, 3, 4)
	def(0x59, "EOR", AbsoluteY, 3, 4)
	def(0x41, "EOR", IndirectX, 2, 6)
	def(0x51, "EOR", IndirectY, 2, 5)

	// Shifts/rotates
	def(0x0A, "ASL", None, 1, 2)
	def(0x06, "ASL", ZeroPage, 2, 5)
	def(0x16, "ASL", ZeroPageX, 2, 6)
	def(0x0E, "ASL", Absolute, 3, 6)
	def(0x1E, "ASL", AbsoluteX, 3, 7)

	def(0x4A, "LSR", None, 1, 2)
	def(0x46, "LSR", ZeroPage, 2, 5)
	def(0x56, "LSR", ZeroPageX, 2, 6)
	def(0x4E, "LSR", Absolute, 3, 6)
	def(0x5E, "LSR", AbsoluteX, 3, 7)

	def(0x2A, "ROL", None, 1, 2)
	def(0x26, "ROL", ZeroPage, 2, 5)
	def(0x36, "ROL", ZeroPageX, 2, 6)
	def(0x2E, "ROL", Absolute, 3, 6)
	def(0x3E, "ROL", AbsoluteX, 3, 7)

	def(0x6A, "ROR", None, 1, 2)
	def(0x66, "ROR", ZeroPage, 2, 5)
	def(0x76, "ROR", ZeroPageX, 2, 6)
	def(0x6E, "ROR", Absolute, 3, 6)
	def(0x7E, "ROR", AbsoluteX, 3, 7)

	// Compare
	def(0xC9, "CMP", Immediate, 2, 2)
	def(0xC5, "CMP", ZeroPage, 2, 3)
	def(0xD5, "CMP", ZeroPageX, 2, 4)
	def(0xCD, "CMP", Absolute, 3, 4)
	def(0xDD, "CMP", AbsoluteX, 3, 4)
	def(0xD9, "CMP", AbsoluteY, 3, 4)
	def(0xC1, "CMP", IndirectX, 2, 6)
	def(0xD1, "CMP", IndirectY, 2, 5)

	def(0xE0, "CPX", Immediate, 2, 2)
	def(0xE4, "CPX", ZeroPage, 2, 3)
	def(0xEC, "CPX", Absolute, 3, 4)

	def(0xC0, "CPY", Immediate, 2, 2)
	def(0xC4, "CPY", ZeroPage, 2, 3)
	def(0xCC, "CPY", Absolute, 3, 4)

	// Inc/Dec
	def(0xE6, "INC", ZeroPage, 2, 5)
	def(0xF6, "INC", ZeroPageX, 2, 6)
	def(0xEE, "INC", Absolute, 3, 6)
	def(0xFE, "INC", AbsoluteX, 3, 7)

	def(0xC6, "DEC", ZeroPage, 2, 5)
	def(0xD6, "DEC", ZeroPageX, 2, 6)
	def(0xCE, "DEC", Absolute, 3, 6)
	def(0xDE, "DEC", AbsoluteX, 3, 7)

	def(0xE8, "INX", None, 1, 2)
	def(0xCA, "DEX", None, 1, 2)
	def(0xC8, "INY", None, 1, 2)
	def(0x88, "DEY", None, 1, 2)

	// Transfers
	def(0xAA, "TAX", None, 1, 2)
	def(0x8A, "TXA", None, 1, 2)
	def(0xA8, "TAY", None, 1, 2)
	def(0x98, "TYA", None, 1, 2)
	def(0xBA, "TSX", None, 1, 2)
	def(0x9A, "TXS", None, 1, 2)

	// Stack
	def(0x48, "PHA", None, 1, 3)
	def(0x68, "PLA", None, 1, 4)
	def(0x08, "PHP", None, 1, 3)
	def(0x28, "PLP", None, 1, 4)

	// Flags
	def(0x18, "CLC", None, 1, 2)
	def(0x38, "SEC", None, 1, 2)
	def(0x58, "CLI", None, 1, 2)
	def(0x78, "SEI", None, 1, 2)
	def(0xB8, "CLV", None, 1, 2)
	def(0xD8, "CLD", None, 1, 2)
	def(0xF8, "SED", None, 1, 2)

	// Control flow
	def(0x4C, "JMP", Absolute, 3, 3)
	def(0x6C, "JMP", Indirect, 3, 5)
	def(0x20, "JSR", Absolute, 3, 6)
	def(0x60, "RTS", None, 1, 6)
	def(0x40, "RTI", None, 1, 6)

	// Branches (Relative, decoded directly by the handler)
	def(0x90, "BCC", None, 2, 2)
	def(0xB0, "BCS", None, 2, 2)
	def(0xD0, "BNE", None, 2, 2)
	def(0xF0, "BEQ", None, 2, 2)
	def(0x10, "BPL", None, 2, 2)
	def(0x30, "BMI", None, 2, 2)
	def(0x50, "BVC", None, 2, 2)
	def(0x70, "BVS", None, 2, 2)

	// Misc
	def(0x24, "BIT", ZeroPage, 2, 3)
	def(0x2C, "BIT", Absolute, 3, 4)
	def(0x00, "BRK", None, 1, 7)

	// Unofficial NOPs
	for _, op := range []uint8{0xEA, 0x1A, 0x3A, 0x5A, 0x7A, 0xDA, 0xFA} {
		def(op, "NOP", None, 1, 2)
	}
	for _, op := range []uint8{0x80, 0x82, 0x89, 0xC2, 0xE2} {
		def(op, "NOP", Immediate, 2, 2)
	}
	for _, op := range []uint8{0x04, 0x44, 0x64} {
		def(op, "NOP", ZeroPage, 2, 3)
	}
	for _, op := range []uint8{0x14, 0x34, 0x54, 0x74, 0xD4, 0xF4} {
		def(op, "NOP", ZeroPageX, 2, 4)
	}
	def(0x0C, "NOP", Absolute, 3, 4)
	for _, op := range []uint8{0x1C, 0x3C, 0x5C, 0x7C, 0xDC, 0xFC} {
		def(op, "NOP", AbsoluteX, 3, 4)
	}

	// Unofficial: LAX (load A and X together)
	def(0xA3, "LAX", IndirectX, 2, 6)
	def(0xA7, "LAX", ZeroPage, 2, 3)
	def(0xAF, "LAX", Absolute, 3, 4)
	def(0xB3, "LAX", IndirectY, 2, 5)
	def(0xB7, "LAX", ZeroPageY, 2, 4)
	def(0xBF, "LAX", AbsoluteY, 3, 4)

	// Unofficial: SAX (store A&X)
	def(0x83, "SAX", IndirectX, 2, 6)
	def(0x87, "SAX", ZeroPage, 2, 3)
	def(0x8F, "SAX", Absolute, 3, 4)
	def(0x97, "SAX", ZeroPageY, 2, 4)

	// Unofficial RMW-combo opcodes: DCP, ISB, SLO, RLA, SRE, RRA
	type rmw struct {
		name             string
		zp, zpx, abs, ax, ay, indx, indy uint8
	}
	rmws := []rmw{
		{"DCP", 0xC7, 0xD7, 0xCF, 0xDF, 0xDB, 0xC3, 0xD3},
		{"ISB", 0xE7, 0xF7, 0xEF, 0xFF, 0xFB, 0xE3, 0xF3},
		{"SLO", 0x07, 0x17, 0x0F, 0x1F, 0x1B, 0x03, 0x13},
		{"RLA", 0x27, 0x37, 0x2F, 0x3F, 0x3B, 0x23, 0x33},
		{"SRE", 0x47, 0x57, 0x4F, 0x5F, 0x5B, 0x43, 0x53},
		{"RRA", 0x67, 0x77, 0x6F, 0x7F, 0x7B, 0x63, 0x73},
	}
	for _, r := range rmws {
		def(r.zp, r.name, ZeroPage, 2, 5)
		def(r.zpx, r.name, ZeroPageX, 2, 6)
		def(r.abs, r.name, Absolute, 3, 6)
		def(r.ax, r.name, AbsoluteX, 3, 7)
		def(r.ay, r.name, AbsoluteY, 3, 7)
		def(r.indx, r.name, IndirectX, 2, 8)
		def(r.indy, r.name, IndirectY, 2, 8)
	}

	// Unofficial immediate-operand combo opcodes
	def(0x0B, "ANC", Immediate, 2, 2)
	def(0x2B, "ANC", Immediate, 2, 2)
	def(0x4B, "ALR", Immediate, 2, 2)
	def(0x6B, "ARR", Immediate, 2, 2)
	def(0xCB, "AXS", Immediate, 2, 2)

	// Unstable group: implemented to commonly-documented behaviour only;
	// spec.md §4.6/§9 says not to assert on their exact semantics.
	def(0xAB, "LXA", Immediate, 2, 2)
	def(0x8B, "XAA", Immediate, 2, 2)
	def(0xBB, "LAS", AbsoluteY, 3, 4)
	def(0x9B, "TAS", AbsoluteY, 3, 5)
	def(0x93, "AHX", IndirectY, 2, 6)
	def(0x9F, "AHX", AbsoluteY, 3, 5)
	def(0x9E, "SHX", AbsoluteY, 3, 5)
	def(0x9C, "SHY", AbsoluteX, 3, 5)
	// JAM/KIL opcodes (0x02, 0x12, 0x22, ...) are deliberately left
	// undefined: they hang real hardware and are not in spec.md's
	// enumerated unofficial set, so they fault as unknown opcodes.
}
