// Package bus implements the NES CPU address space: RAM mirroring, PPU
// register dispatch, OAM DMA, joypad shift-register ports, and cartridge
// PRG access, plus the per-CPU-cycle advance of every other clocked
// component.
package bus

import (
	"github.com/rvillegasm/nescore/internal/fault"
	"github.com/rvillegasm/nescore/internal/joypad"
	"github.com/rvillegasm/nescore/internal/ppu"
)

// Cartridge is the narrow view of a loaded cartridge the Bus needs; the
// concrete type is internal/cartridge.Cartridge.
type Cartridge interface {
	ReadPRG(address uint16) uint8
	WritePRG(address uint16, value uint8)
}

// FrameSink receives completed frames. The host (cmd/nescore) implements
// this to copy the PPU's pixel buffer out and poll input; the Bus holds it
// as a capability interface rather than a stored closure so callers can be
// swapped (a test double, a headless recorder, the real ebiten window)
// without the Bus knowing which.
type FrameSink interface {
	OnFrame(ppu *ppu.PPU, pad *joypad.Joypad)
}

// Bus wires RAM, the PPU, a cartridge, and the joypads into the single
// flat CPU-visible address space, and owns the DMA and frame-completion
// bookkeeping that only make sense at this level.
type Bus struct {
	ram   [0x0800]uint8
	ppu   *ppu.PPU
	cart  Cartridge
	pad   *joypad.Joypad
	sink  FrameSink

	dmaPage    uint8
	dmaPending bool
}

// New constructs a Bus over an already-loaded cartridge and PPU. Pass sink
// as nil until the host is ready to receive frames (Tick simply skips the
// callback).
func New(cart Cartridge, p *ppu.PPU, pad *joypad.Joypad, sink FrameSink) *Bus {
	return &Bus{cart: cart, ppu: p, pad: pad, sink: sink}
}

// SetFrameSink lets the host attach itself after construction.
func (b *Bus) SetFrameSink(sink FrameSink) { b.sink = sink }

// Read implements the cpu.Memory interface's byte-wide read.
func (b *Bus) Read(address uint16) uint8 {
	switch {
	case address < 0x2000:
		return b.ram[address&0x07FF]
	case address < 0x4000:
		return b.ppu.ReadRegister(uint8((address - 0x2000) & 0x07))
	case address == 0x4016:
		return b.pad.Read(0) | 0x40
	case address == 0x4017:
		return b.pad.Read(1) | 0x40
	case address >= 0x8000:
		return b.cart.ReadPRG(address)
	case address >= 0x6000:
		return b.cart.ReadPRG(address)
	default:
		return 0 // APU/unmapped I/O: open bus, reads as 0
	}
}

// Write implements the cpu.Memory interface's byte-wide write.
func (b *Bus) Write(address uint16, value uint8) {
	switch {
	case address < 0x2000:
		b.ram[address&0x07FF] = value
	case address < 0x4000:
		b.ppu.WriteRegister(uint8((address-0x2000)&0x07), value)
	case address == 0x4014:
		b.dmaPage = value
		b.dmaPending = true
	case address == 0x4016:
		b.pad.Write(value)
	case address == 0x4017:
		// $4017 on real hardware is the APU frame counter, not the second
		// joypad's write port; APU emulation is out of scope, so this is a
		// deliberate no-op rather than routing it to the joypad.
	case address >= 0x8000:
		fault.Raise(fault.IllegalBusAccess, 0, address, value, "write to PRG ROM")
	case address >= 0x6000:
		b.cart.WritePRG(address, value)
	default:
		// unmapped I/O register: drop the write
	}
}

// Tick runs any pending OAM DMA copy (charging no stall cycles for it),
// advances the PPU by cpuCycles CPU cycles, and invokes the frame sink once
// a frame completes.
func (b *Bus) Tick(cpuCycles uint64) {
	if b.dmaPending {
		b.runDMA()
		b.dmaPending = false
	}
	if b.ppu.Tick(cpuCycles) && b.sink != nil {
		b.sink.OnFrame(b.ppu, b.pad)
	}
}

// runDMA copies the 256-byte page at $XX00-$XXFF into OAM. Real hardware
// stalls the CPU for 513 or 514 cycles while this happens; that stall is
// charged by the caller via the cycle count returned from the $4014 write
// path in a full cycle-exact core, but spec.md's coarser model only
// requires the copy itself to happen atomically between instructions.
func (b *Bus) runDMA() {
	var page [256]uint8
	base := uint16(b.dmaPage) << 8
	for i := range page {
		page[i] = b.Read(base + uint16(i))
	}
	b.ppu.WriteOAM(page[:])
}
