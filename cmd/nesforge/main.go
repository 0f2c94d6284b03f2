// Command nesforge loads an iNES ROM and runs it in an ebiten window.
// Grounded on gintendo.go's wiring (cartridge -> mapper -> console ->
// ebiten.RunGame), with flag.String replaced by kong.
package main

import (
	"log"
	"os"

	"github.com/alecthomas/kong"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/nesforge/nesforge/internal/cartridge"
	"github.com/nesforge/nesforge/internal/console"
)

var cli struct {
	Rom string `arg:"" name:"rom" help:"Path to the iNES ROM file to run." type:"existingfile"`
}

func main() {
	kong.Parse(&cli,
		kong.Name("nesforge"),
		kong.Description("A NES emulator."),
	)

	logger := log.New(os.Stderr, "nesforge: ", log.LstdFlags)

	cart, err := cartridge.Load(cli.Rom)
	if err != nil {
		logger.Fatalf("invalid ROM: %v", err)
	}

	sys, err := console.New(cart, logger)
	if err != nil {
		logger.Fatalf("couldn't start console: %v", err)
	}

	ebiten.SetWindowSize(512, 480)
	ebiten.SetWindowTitle("nesforge")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(sys); err != nil {
		logger.Fatal(err)
	}
}
