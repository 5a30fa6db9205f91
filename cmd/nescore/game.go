package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/rvillegasm/nescore/internal/bus"
	"github.com/rvillegasm/nescore/internal/cartridge"
	"github.com/rvillegasm/nescore/internal/cpu"
	"github.com/rvillegasm/nescore/internal/joypad"
	"github.com/rvillegasm/nescore/internal/ppu"
	"github.com/rvillegasm/nescore/internal/renderer"
)

const (
	screenWidth  = 256
	screenHeight = 240
)

// Game drives the emulator core from ebiten's Update/Draw cycle and is
// also the bus.FrameSink the core calls back into once per completed PPU
// frame: both roles stay on ebiten's single game-loop goroutine, matching
// the core's single-threaded cooperative scheduling.
type Game struct {
	cpu   *cpu.CPU
	ppu   *ppu.PPU
	image *ebiten.Image
	scale int

	frameReady bool
	fault      error
}

func ppuMirror(cart *cartridge.Cartridge) ppu.Mirroring {
	switch cart.Mirror {
	case cartridge.MirrorVertical:
		return ppu.Vertical
	case cartridge.MirrorFourScreen:
		return ppu.FourScreen
	default:
		return ppu.Horizontal
	}
}

// NewGame wires up a fresh CPU/Bus/PPU/Joypad stack over cart and returns a
// Game ready to be handed to ebiten.RunGame.
func NewGame(cart *cartridge.Cartridge, scale int) *Game {
	pad := joypad.New()
	ppuCore := ppu.New(cart, ppuMirror(cart), nil)
	b := bus.New(cart, ppuCore, pad, nil)
	c := cpu.New(b)
	ppuCore.SetNMIRequester(c)

	g := &Game{cpu: c, ppu: ppuCore, scale: scale}
	b.SetFrameSink(g)
	c.Reset()

	g.image = ebiten.NewImage(screenWidth, screenHeight)
	return g
}

// OnFrame implements bus.FrameSink. It runs on the same goroutine as Update,
// so it can safely mutate Game's frame state without synchronization.
func (g *Game) OnFrame(p *ppu.PPU, pad *joypad.Joypad) {
	renderer.Render(p, p.FrameBuffer())
	pollInput(pad)
	g.frameReady = true
}

func pollInput(pad *joypad.Joypad) {
	type mapping struct {
		key ebiten.Key
		btn joypad.Button
	}
	mappings := []mapping{
		{ebiten.KeyZ, joypad.A},
		{ebiten.KeyX, joypad.B},
		{ebiten.KeyBackspace, joypad.Select},
		{ebiten.KeyEnter, joypad.Start},
		{ebiten.KeyUp, joypad.Up},
		{ebiten.KeyDown, joypad.Down},
		{ebiten.KeyLeft, joypad.Left},
		{ebiten.KeyRight, joypad.Right},
	}
	for _, m := range mappings {
		pad.SetButton(0, m.btn, ebiten.IsKeyPressed(m.key))
	}
}

// Update steps the CPU (and, transitively through Bus.Tick, the PPU) until
// a frame completes or a fault halts the core. BRK-induced halts and
// EmulationFault panics are both turned into an error that Update returns,
// which ends ebiten.RunGame so main can log it and exit instead of the
// process dying on an unrecovered panic.
func (g *Game) Update() error {
	if g.fault != nil {
		return g.fault
	}
	defer func() {
		if r := recover(); r != nil {
			g.fault = fmt.Errorf("emulation fault: %v", r)
		}
	}()

	g.frameReady = false
	for !g.frameReady {
		if g.cpu.Halted() {
			g.fault = fmt.Errorf("cpu halted (BRK) at PC=$%04X", g.cpu.PC)
			return nil
		}
		g.cpu.Step()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	frame := g.ppu.FrameBuffer()
	pixels := make([]byte, 0, screenWidth*screenHeight*4)
	for _, px := range frame {
		pixels = append(pixels,
			uint8(px>>16), uint8(px>>8), uint8(px), 0xFF,
		)
	}
	g.image.WritePixels(pixels)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.image, op)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth * g.scale, screenHeight * g.scale
}
