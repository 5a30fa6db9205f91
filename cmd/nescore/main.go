// Command nescore is the playable host for the emulator core: it loads an
// iNES ROM, opens an ebiten window, and drives the CPU/PPU loop from
// ebiten's single game-loop goroutine.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/rvillegasm/nescore/internal/cartridge"
)

func main() {
	romPath := flag.String("rom", "", "path to an iNES (.nes) ROM file")
	tracePath := flag.String("trace", "", "optional path to write a per-instruction CPU trace log to")
	scale := flag.Int("scale", 3, "integer window scale factor")
	flag.Parse()

	if *romPath == "" {
		fmt.Fprintln(os.Stderr, "usage: nescore -rom path/to/game.nes")
		os.Exit(2)
	}

	f, err := os.Open(*romPath)
	if err != nil {
		log.Fatalf("opening ROM: %v", err)
	}
	defer f.Close()

	cart, err := cartridge.Load(f)
	if err != nil {
		log.Fatalf("loading ROM: %v", err)
	}

	game := NewGame(cart, *scale)

	if *tracePath != "" {
		traceFile, err := os.Create(*tracePath)
		if err != nil {
			log.Fatalf("opening trace file: %v", err)
		}
		defer traceFile.Close()
		game.cpu.SetTraceSink(traceFile)
	}

	ebiten.SetWindowSize(screenWidth*(*scale), screenHeight*(*scale))
	ebiten.SetWindowTitle("nescore: " + *romPath)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
