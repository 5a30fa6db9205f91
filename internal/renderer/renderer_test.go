package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubView is a hand-rolled PPUView with explicit per-address overrides, so
// each test can control exactly one tile/sprite/palette entry.
type stubView struct {
	nametable map[uint16]uint8
	chr       map[uint16]uint8
	oam       [256]uint8
	palette   [32]uint8

	bgPattern, spritePattern uint16
	sprite16                 bool
	showBG, showSprites      bool
	scrollX, scrollY         uint8
}

func newStubView() *stubView {
	return &stubView{nametable: map[uint16]uint8{}, chr: map[uint16]uint8{}, showBG: true, showSprites: true}
}

func (s *stubView) Palette(i int) uint8         { return s.palette[i&0x1F] }
func (s *stubView) Nametable(addr uint16) uint8 { return s.nametable[addr] }
func (s *stubView) CHR(addr uint16) uint8       { return s.chr[addr] }
func (s *stubView) OAM(i int) uint8             { return s.oam[uint8(i)] }
func (s *stubView) BackgroundPatternTable() uint16 { return s.bgPattern }
func (s *stubView) SpritePatternTable() uint16     { return s.spritePattern }
func (s *stubView) SpriteSize16() bool             { return s.sprite16 }
func (s *stubView) ShowBackground() bool           { return s.showBG }
func (s *stubView) ShowSprites() bool              { return s.showSprites }
func (s *stubView) ScrollX() uint8                 { return s.scrollX }
func (s *stubView) ScrollY() uint8                 { return s.scrollY }

func TestBackgroundTileDecodesTwoBitPlanes(t *testing.T) {
	v := newStubView()
	v.nametable[0x2000] = 1 // tile index 1 at top-left
	// Tile 1, row 0: low plane bit7 set, high plane bit7 set => colorIndex 3
	v.chr[16+0] = 0x80
	v.chr[16+8] = 0x80
	v.palette[3] = 0x20 // arbitrary NES palette entry

	var out [256 * 240]uint32
	Render(v, &out)
	assert.Equal(t, nesPalette[0x20], out[0])
}

func TestTransparentBackgroundPixelShowsUniversalColor(t *testing.T) {
	v := newStubView()
	v.palette[0] = 0x0F
	var out [256 * 240]uint32
	Render(v, &out)
	assert.Equal(t, nesPalette[0x0F], out[0])
}

func TestAttributeQuadrantSelectsPalette(t *testing.T) {
	v := newStubView()
	v.nametable[uint16(0x2000+0*32+4)] = 1 // tile at tx=4,ty=0 (top-left quadrant of its attr cell)
	v.chr[16+0] = 0xFF
	v.chr[16+8] = 0xFF
	v.nametable[0x23C1] = 0x01 // attribute cell (tx/4=1, ty/4=0); quadrant shift 0 selects bits 0-1
	v.palette[4+3] = 0x11      // palette 1, color 3

	var out [256 * 240]uint32
	Render(v, &out)
	assert.Equal(t, nesPalette[0x11], out[4*8])
}

func TestSpriteZeroWinsOverHigherIndexSprite(t *testing.T) {
	v := newStubView()
	v.showBG = false
	v.oam[0], v.oam[1], v.oam[2], v.oam[3] = 0, 0, 0, 0 // sprite 0 at (0,1), palette 0
	v.oam[4], v.oam[5], v.oam[6], v.oam[7] = 0, 0, 1, 0 // sprite 1 at same spot, palette 1

	v.chr[0] = 0xFF
	v.chr[8] = 0x00
	v.palette[4*4+1] = 0x01 // sprite 0's color
	v.palette[5*4+1] = 0x02 // sprite 1's color, should be overwritten by sprite 0 drawing last

	var out [256 * 240]uint32
	Render(v, &out)
	assert.Equal(t, nesPalette[0x01], out[1*256+0])
}

func TestSpriteHorizontalFlip(t *testing.T) {
	v := newStubView()
	v.showBG = false
	v.oam[0], v.oam[1], v.oam[2], v.oam[3] = 0, 0, 0x40, 0
	for i := 4; i < 256; i += 4 {
		v.oam[i] = 0xFF // park sprites 1-63 below the visible area
	}
	v.chr[0] = 0x80 // bit 7 (leftmost column) set
	v.palette[4*4+1] = 0x30

	var out [256 * 240]uint32
	Render(v, &out)
	// Flipped horizontally, the set pixel should land at column 7, not 0.
	assert.Equal(t, nesPalette[0x30], out[1*256+7])
	assert.NotEqual(t, nesPalette[0x30], out[1*256+0])
}
