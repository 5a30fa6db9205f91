// Package renderer decodes PPU state into a 256x240 RGBA pixel buffer: the
// background tile/attribute path and the OAM sprite path. It has no
// dependency on the ppu package's internals, only on the narrow PPUView
// interface below.
package renderer

// PPUView is everything the renderer needs to read out of a running PPU.
// Defined here, not in ppu, so the renderer depends on a capability
// interface rather than a concrete type.
type PPUView interface {
	Palette(i int) uint8
	Nametable(addr uint16) uint8
	CHR(addr uint16) uint8
	OAM(i int) uint8
	BackgroundPatternTable() uint16
	SpritePatternTable() uint16
	SpriteSize16() bool
	ShowBackground() bool
	ShowSprites() bool
	ScrollX() uint8
	ScrollY() uint8
}

const (
	screenWidth  = 256
	screenHeight = 240
)

// nesPalette is the standard 64-entry NES master palette, ARGB-packed.
var nesPalette = [64]uint32{
	0xFF666666, 0xFF002A88, 0xFF1412A7, 0xFF3B00A4, 0xFF5C007E, 0xFF6E0040, 0xFF6C0600, 0xFF561D00,
	0xFF333500, 0xFF0B4800, 0xFF005200, 0xFF004F08, 0xFF00404D, 0xFF000000, 0xFF000000, 0xFF000000,
	0xFFADADAD, 0xFF155FD9, 0xFF4240FF, 0xFF7527FE, 0xFFA01ACC, 0xFFB71E7B, 0xFFB53120, 0xFF994E00,
	0xFF6B6D00, 0xFF388700, 0xFF0C9300, 0xFF008F32, 0xFF007C8D, 0xFF000000, 0xFF000000, 0xFF000000,
	0xFFFFFEFF, 0xFF64B0FF, 0xFF9290FF, 0xFFC676FF, 0xFFF36AFF, 0xFFFE6ECC, 0xFFFE8170, 0xFFEA9E22,
	0xFFBCBE00, 0xFF88D800, 0xFF5CE430, 0xFF45E082, 0xFF48CDDE, 0xFF4F4F4F, 0xFF000000, 0xFF000000,
	0xFFFFFEFF, 0xFFC0DFFF, 0xFFD3D2FF, 0xFFE8C8FF, 0xFFFBC2FF, 0xFFFEC4EA, 0xFFFECCC5, 0xFFF7D8A5,
	0xFFE4E594, 0xFFCFEF96, 0xFFBDF4AB, 0xFFB3F3CC, 0xFFB5EBF2, 0xFFB8B8B8, 0xFF000000, 0xFF000000,
}

// Render fills out with the current frame's background and sprite pixels,
// reading only through view. Background is decoded tile-by-tile across the
// visible 32x30 nametable grid; sprites are then composited in reverse OAM
// order so sprite 0 wins ties, matching real hardware priority.
func Render(view PPUView, out *[screenWidth * screenHeight]uint32) {
	bg := nesPalette[view.Palette(0)&0x3F]
	for i := range out {
		out[i] = bg
	}
	if view.ShowBackground() {
		renderBackground(view, out)
	}
	if view.ShowSprites() {
		renderSprites(view, out)
	}
}

func renderBackground(view PPUView, out *[screenWidth * screenHeight]uint32) {
	patternBase := view.BackgroundPatternTable()
	for ty := 0; ty < 30; ty++ {
		for tx := 0; tx < 32; tx++ {
			tileIndex := view.Nametable(uint16(0x2000 + ty*32 + tx))
			palette := attributePalette(view, tx, ty)
			drawTile(view, out, patternBase, tileIndex, palette, tx*8, ty*8, false, false)
		}
	}
}

// attributePalette decodes the 2-bit palette index for an 8x8 background
// tile from its 2x2-tile attribute-table quadrant.
func attributePalette(view PPUView, tx, ty int) uint8 {
	attrAddr := uint16(0x23C0 + (ty/4)*8 + tx/4)
	attrByte := view.Nametable(attrAddr)
	quadrantShift := uint((ty%4)/2*4 + (tx%4)/2*2)
	return (attrByte >> quadrantShift) & 0x03
}

func drawTile(view PPUView, out *[screenWidth * screenHeight]uint32, patternBase uint16, tileIndex uint8, palette uint8, px, py int, flipX, flipY bool) {
	for row := 0; row < 8; row++ {
		lo := view.CHR(patternBase + uint16(tileIndex)*16 + uint16(row))
		hi := view.CHR(patternBase + uint16(tileIndex)*16 + uint16(row) + 8)
		for col := 0; col < 8; col++ {
			bit := uint(7 - col)
			colorIndex := (lo>>bit)&0x01 | ((hi>>bit)&0x01)<<1
			x, y := px+col, py+row
			if flipX {
				x = px + (7 - col)
			}
			if flipY {
				y = py + (7 - row)
			}
			if x < 0 || x >= screenWidth || y < 0 || y >= screenHeight {
				continue
			}
			if colorIndex == 0 {
				continue // transparent: background color 0 shows through
			}
			paletteAddr := int(palette)*4 + int(colorIndex)
			out[y*screenWidth+x] = nesPalette[view.Palette(paletteAddr)&0x3F]
		}
	}
}

// renderSprites iterates OAM from entry 63 down to 0 so that lower-indexed
// sprites, drawn last, correctly win pixel ties over higher-indexed ones.
func renderSprites(view PPUView, out *[screenWidth * screenHeight]uint32) {
	patternBase := view.SpritePatternTable()
	for i := 63; i >= 0; i-- {
		base := i * 4
		y := int(view.OAM(base)) + 1
		tile := view.OAM(base + 1)
		attr := view.OAM(base + 2)
		x := int(view.OAM(base + 3))

		palette := (attr & 0x03) + 4 // sprite palettes start after the 4 background palettes
		flipX := attr&0x40 != 0
		flipY := attr&0x80 != 0

		if view.SpriteSize16() {
			pb := uint16(tile&0x01) * 0x1000
			top, bottom := tile&^0x01, tile|0x01
			if flipY {
				top, bottom = bottom, top
			}
			drawTile(view, out, pb, top, palette, x, y, flipX, flipY)
			drawTile(view, out, pb, bottom, palette, x, y+8, flipX, flipY)
			continue
		}
		drawTile(view, out, patternBase, tile, palette, x, y, flipX, flipY)
	}
}
