// Package console assembles a cartridge, bus, CPU, PPU and controller
// pair into a runnable machine, and implements ebiten.Game so the
// result can be driven by ebiten's render loop.
//
// Grounded on console/bus.go's Run/Update/Draw/Layout wiring
// (ebiten.Game on the bus-equivalent type, 3 PPU ticks per CPU cycle,
// NMI delivery via the PPU signaling the CPU through the harness).
package console

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/nesforge/nesforge/internal/apu"
	"github.com/nesforge/nesforge/internal/bus"
	"github.com/nesforge/nesforge/internal/cartridge"
	"github.com/nesforge/nesforge/internal/cpu"
	"github.com/nesforge/nesforge/internal/input"
	"github.com/nesforge/nesforge/internal/mappers"
	"github.com/nesforge/nesforge/internal/ppu"
)

const (
	screenWidth  = 256
	screenHeight = 240
)

// System owns every emulated component and interleaves CPU instruction
// execution with PPU dot-clock ticks at the hardware's fixed 1:3
// ratio, delivering NMI to the CPU whenever the PPU reports VBlank
// with NMI output enabled.
type System struct {
	cpu  *cpu.CPU
	ppu  *ppu.PPU
	apu  *apu.APU
	bus  *bus.Bus
	pad1 *input.Controller
	pad2 *input.Controller

	log *log.Logger

	image *ebiten.Image
}

// New constructs a System from an already-loaded cartridge.
func New(cart *cartridge.Cartridge, logger *log.Logger) (*System, error) {
	if logger == nil {
		logger = log.Default()
	}

	mapper, err := mappers.New(cart)
	if err != nil {
		return nil, fmt.Errorf("console: %w", err)
	}

	s := &System{
		ppu:  ppu.New(mapper, logger),
		apu:  apu.New(),
		pad1: input.New(),
		pad2: input.New(),
		log:  logger,
	}
	s.bus = bus.New(mapper, s.ppu, s.apu, s.pad1, s.pad2, logger)
	s.cpu = cpu.New(s.bus, logger)

	s.log.Printf("console: loaded mapper %d, %d PRG banks, %d CHR banks", cart.MapperNum, cart.PRGBankCount(), cart.CHRBankCount())

	return s, nil
}

// NextFrame runs the machine until one full frame has been produced,
// per the pull-based frame API: the caller advances time exactly one
// frame at a time rather than the machine free-running on its own
// goroutine.
func (s *System) NextFrame() {
	target := s.ppu.FrameCount() + 1
	for s.ppu.FrameCount() < target {
		cycles := s.cpu.Step(s.bus)
		for i := 0; i < cycles*3; i++ {
			if s.ppu.Step() {
				s.cpu.RequestNMI()
			}
		}
	}
}

// Update advances emulation by exactly one frame; part of the
// ebiten.Game interface.
func (s *System) Update() error {
	s.NextFrame()
	return nil
}

// Draw blits the PPU's frame buffer onto the ebiten screen. The
// backing ebiten.Image is created lazily so that System can be built
// and driven headlessly (tests) without requiring a graphics context.
func (s *System) Draw(screen *ebiten.Image) {
	if s.image == nil {
		s.image = ebiten.NewImage(screenWidth, screenHeight)
	}
	pix := s.ppu.Frame()
	buf := make([]byte, screenWidth*screenHeight*4)
	for i, c := range pix {
		r := uint8(c >> 24)
		g := uint8(c >> 16)
		b := uint8(c >> 8)
		a := uint8(c)
		buf[i*4+0] = r
		buf[i*4+1] = g
		buf[i*4+2] = b
		buf[i*4+3] = a
	}
	s.image.WritePixels(buf)
	screen.DrawImage(s.image, nil)
}

// Layout reports the NES's fixed native resolution; ebiten scales the
// window around it rather than us tracking an arbitrary window size.
func (s *System) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

// FrameImage renders the current frame buffer as a standard image.Image,
// for headless use (tests, snapshotting) outside of an ebiten window.
func (s *System) FrameImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, screenWidth, screenHeight))
	for i, c := range s.ppu.Frame() {
		img.Set(i%screenWidth, i/screenWidth, color.RGBA{
			R: uint8(c >> 24),
			G: uint8(c >> 16),
			B: uint8(c >> 8),
			A: uint8(c),
		})
	}
	return img
}
