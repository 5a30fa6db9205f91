// Package ppu implements the NES 2C02 picture processing unit as a
// register-mapped state machine: CPU-visible register read/write side
// effects, VRAM/palette storage with hardware mirroring, OAM, and the
// scanline/dot counters that drive frame timing and NMI generation. Pixel
// decode itself lives in the renderer package, which consumes this package's
// PPUView interface.
package ppu

import "github.com/rvillegasm/nescore/internal/fault"

// Mirroring identifies how the two hardware nametables fold across the
// PPU's 4 logical nametable slots. Defined here (rather than imported from
// the cartridge package) so this package has no dependency on cartridge
// layout, only on the single byte the cartridge header already reduced it
// to.
type Mirroring int

const (
	Horizontal Mirroring = iota
	Vertical
	FourScreen
)

// CHRMemory is the narrow view of cartridge CHR ROM/RAM the PPU needs for
// pattern-table access via $2007 and the renderer's tile fetches.
type CHRMemory interface {
	ReadCHR(address uint16) uint8
	WriteCHR(address uint16, value uint8)
}

// NMIRequester receives the PPU's request to assert CPU /NMI. The PPU has
// no dependency on the cpu package; the host wires a CPU instance in here
// (via New or SetNMIRequester) through this single-method interface.
type NMIRequester interface {
	RequestNMI()
}

// Control bits of PPUCTRL ($2000).
const (
	ctrlNametableMask  = 0x03
	ctrlIncrement32     = 0x04
	ctrlSpritePattern   = 0x08
	ctrlBGPattern       = 0x10
	ctrlSpriteSize8x16  = 0x20
	ctrlNMIEnable       = 0x80
)

// Status bits of PPUSTATUS ($2002).
const (
	statusSpriteOverflow = 0x20
	statusSprite0Hit     = 0x40
	statusVBlank         = 0x80
)

const (
	dotsPerScanline     = 341
	scanlinesPerFrame   = 262
	vblankStartScanline = 241
	preRenderScanline   = 261
)

// PPU is the register-mapped picture processor. Registers live as plain
// fields rather than a byte array because each one's read/write side
// effects differ too much to share decode logic.
type PPU struct {
	ctrl   uint8
	mask   uint8
	status uint8

	oamAddr uint8
	oam     [256]uint8

	// writeToggle is the single latch ("w" on real hardware) shared by the
	// write-twice $2005/$2006 registers; a PPUSTATUS read resets it.
	writeToggle bool
	addrLatchHi uint8
	vramAddr    uint16
	scrollX     uint8
	scrollY     uint8

	readBuffer uint8 // PPUDATA's one-byte-delayed read buffer

	vram    [0x800]uint8 // 2KiB physical nametable RAM
	palette [32]uint8

	chr     CHRMemory
	mirror  Mirroring
	nmi     NMIRequester

	scanline int
	dot      int

	frame [256 * 240]uint32
}

// New constructs a PPU wired to chr (pattern-table storage) and a mirroring
// mode decoded from the cartridge header. nmi may be nil at construction
// time (the CPU that implements it is typically built after the PPU, since
// the Bus sits between them); call SetNMIRequester once it exists.
func New(chr CHRMemory, mirror Mirroring, nmi NMIRequester) *PPU {
	p := &PPU{chr: chr, mirror: mirror, nmi: nmi}
	p.scanline = preRenderScanline
	return p
}

// SetNMIRequester attaches (or replaces) the PPU's interrupt line after
// construction, for the wiring order where the CPU is built after the PPU.
func (p *PPU) SetNMIRequester(nmi NMIRequester) { p.nmi = nmi }

// ReadRegister handles a CPU read of $2000-$2007 (already reduced mod 8 by
// the Bus's mirroring of $2008-$3FFF).
func (p *PPU) ReadRegister(reg uint8) uint8 {
	switch reg {
	case 2: // PPUSTATUS
		v := p.status
		p.status &^= statusVBlank
		p.writeToggle = false
		return v
	case 4: // OAMDATA
		return p.oam[p.oamAddr]
	case 7: // PPUDATA
		return p.readData()
	default:
		fault.Raise(fault.IllegalBusAccess, 0, 0x2000+uint16(reg), 0, "read of a write-only PPU register")
		return 0
	}
}

// WriteRegister handles a CPU write of $2000-$2007.
func (p *PPU) WriteRegister(reg uint8, value uint8) {
	switch reg {
	case 0: // PPUCTRL
		wasEnabled := p.ctrl&ctrlNMIEnable != 0
		p.ctrl = value
		nowEnabled := p.ctrl&ctrlNMIEnable != 0
		if !wasEnabled && nowEnabled && p.status&statusVBlank != 0 && p.nmi != nil {
			p.nmi.RequestNMI()
		}
	case 1: // PPUMASK
		p.mask = value
	case 2:
		fault.Raise(fault.IllegalBusAccess, 0, 0x2002, value, "write to read-only PPUSTATUS")
	case 3: // OAMADDR
		p.oamAddr = value
	case 4: // OAMDATA
		p.oam[p.oamAddr] = value
		p.oamAddr++
	case 5: // PPUSCROLL, write-twice
		if !p.writeToggle {
			p.scrollX = value
		} else {
			p.scrollY = value
		}
		p.writeToggle = !p.writeToggle
	case 6: // PPUADDR, write-twice
		if !p.writeToggle {
			p.addrLatchHi = value
		} else {
			p.vramAddr = uint16(p.addrLatchHi)<<8 | uint16(value)
		}
		p.writeToggle = !p.writeToggle
	case 7: // PPUDATA
		p.writeData(value)
	}
}

// WriteOAM is the sink for an OAM DMA transfer ($4014): 256 bytes copied in
// starting at the current OAMADDR.
func (p *PPU) WriteOAM(data []uint8) {
	for _, b := range data {
		p.oam[p.oamAddr] = b
		p.oamAddr++
	}
}

func (p *PPU) readData() uint8 {
	addr := p.vramAddr & 0x3FFF
	var value uint8
	if addr >= 0x3F00 {
		value = p.readPalette(addr)
		p.readBuffer = p.readVRAM(addr - 0x1000) // nametable mirror beneath palette space
	} else {
		value = p.readBuffer
		p.readBuffer = p.readInternal(addr)
	}
	p.incrementAddr()
	return value
}

func (p *PPU) writeData(value uint8) {
	addr := p.vramAddr & 0x3FFF
	if addr >= 0x3F00 {
		p.writePalette(addr, value)
	} else {
		p.writeInternal(addr, value)
	}
	p.incrementAddr()
}

func (p *PPU) incrementAddr() {
	if p.ctrl&ctrlIncrement32 != 0 {
		p.vramAddr += 32
	} else {
		p.vramAddr++
	}
}

func (p *PPU) readInternal(addr uint16) uint8 {
	if addr < 0x2000 {
		return p.chr.ReadCHR(addr)
	}
	return p.vram[p.mirrorNametable(addr)]
}

func (p *PPU) writeInternal(addr uint16, value uint8) {
	if addr < 0x2000 {
		p.chr.WriteCHR(addr, value)
		return
	}
	p.vram[p.mirrorNametable(addr)] = value
}

// readVRAM is readInternal restricted to nametable space, used for the
// PPUDATA buffer refill while reading palette addresses.
func (p *PPU) readVRAM(addr uint16) uint8 {
	return p.vram[p.mirrorNametable(addr&0x2FFF)]
}

// mirrorNametable folds a $2000-$2FFF address onto the 2KiB of physical
// VRAM according to the cartridge's mirroring mode.
func (p *PPU) mirrorNametable(addr uint16) uint16 {
	addr = (addr - 0x2000) % 0x1000
	table := addr / 0x0400
	offset := addr % 0x0400
	switch p.mirror {
	case Vertical:
		return (table%2)*0x0400 + offset
	case Horizontal:
		return (table/2)*0x0400 + offset
	default: // FourScreen: no folding, but we only carry 2KiB of physical
		// VRAM, so fold every other table onto itself rather than fault.
		return (table%2)*0x0400 + offset
	}
}

func (p *PPU) readPalette(addr uint16) uint8 {
	return p.palette[paletteIndex(addr)]
}

func (p *PPU) writePalette(addr uint16, value uint8) {
	p.palette[paletteIndex(addr)] = value & 0x3F
}

// paletteIndex folds the 32-byte palette RAM's background-color mirror
// ($3F10/$3F14/$3F18/$3F1C alias $3F00/$3F04/$3F08/$3F0C).
func paletteIndex(addr uint16) uint16 {
	idx := (addr - 0x3F00) % 0x20
	if idx >= 0x10 && idx%4 == 0 {
		idx -= 0x10
	}
	return idx
}

// Tick advances the PPU by cpuCycles*3 dots (the 2C02 runs three times the
// CPU's clock) and reports whether a frame just completed.
func (p *PPU) Tick(cpuCycles uint64) bool {
	frameComplete := false
	for i := uint64(0); i < cpuCycles*3; i++ {
		p.dot++
		if p.dot >= dotsPerScanline {
			p.dot = 0
			p.scanline++
			if p.scanline == vblankStartScanline {
				p.status |= statusVBlank
				if p.ctrl&ctrlNMIEnable != 0 && p.nmi != nil {
					p.nmi.RequestNMI()
				}
			}
			if p.scanline > preRenderScanline {
				p.scanline = 0
				p.status &^= (statusVBlank | statusSprite0Hit | statusSpriteOverflow)
				frameComplete = true
			}
		}
	}
	return frameComplete
}

// FrameBuffer returns the PPU's owned 256x240 RGBA (packed as 0xAARRGGBB)
// pixel buffer for the renderer to fill and the host to blit.
func (p *PPU) FrameBuffer() *[256 * 240]uint32 { return &p.frame }

// -- PPUView: the narrow read-only surface the renderer package consumes. --

func (p *PPU) Palette(i int) uint8            { return p.palette[i&0x1F] }
func (p *PPU) Nametable(addr uint16) uint8    { return p.vram[p.mirrorNametable(addr)] }
func (p *PPU) CHR(addr uint16) uint8          { return p.chr.ReadCHR(addr) }
func (p *PPU) OAM(i int) uint8                { return p.oam[uint8(i)] }
func (p *PPU) BackgroundPatternTable() uint16 {
	if p.ctrl&ctrlBGPattern != 0 {
		return 0x1000
	}
	return 0
}
func (p *PPU) SpritePatternTable() uint16 {
	if p.ctrl&ctrlSpritePattern != 0 {
		return 0x1000
	}
	return 0
}
func (p *PPU) SpriteSize16() bool  { return p.ctrl&ctrlSpriteSize8x16 != 0 }
func (p *PPU) ShowBackground() bool { return p.mask&0x08 != 0 }
func (p *PPU) ShowSprites() bool    { return p.mask&0x10 != 0 }
func (p *PPU) ScrollX() uint8       { return p.scrollX }
func (p *PPU) ScrollY() uint8       { return p.scrollY }
