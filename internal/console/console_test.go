package console

import (
	"bytes"
	"testing"

	"github.com/nesforge/nesforge/internal/cartridge"
)

// buildNROM returns a minimal one-bank NROM image with a reset vector
// pointing at a tight infinite JMP loop, so NextFrame always has
// something to execute without ever halting.
func buildNROM() []byte {
	var buf bytes.Buffer
	buf.WriteString("NES\x1a")
	buf.Write([]byte{1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}) // 1 PRG bank, 1 CHR bank

	prg := make([]byte, 16384)
	prg[0] = 0x4C // JMP $8000
	prg[1] = 0x00
	prg[2] = 0x80
	prg[0x3FFC] = 0x00 // reset vector -> $8000
	prg[0x3FFD] = 0x80
	buf.Write(prg)
	buf.Write(make([]byte, 8192)) // CHR-ROM bank

	return buf.Bytes()
}

func newTestSystem(t *testing.T) *System {
	t.Helper()
	cart, err := cartridge.LoadReader(bytes.NewReader(buildNROM()))
	if err != nil {
		t.Fatalf("LoadReader: %v", err)
	}
	s, err := New(cart, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestNextFrameAdvancesFrameCount(t *testing.T) {
	s := newTestSystem(t)

	before := s.ppu.FrameCount()
	s.NextFrame()
	if s.ppu.FrameCount() != before+1 {
		t.Errorf("FrameCount after NextFrame = %d, want %d", s.ppu.FrameCount(), before+1)
	}
}

func TestLayoutReportsNativeResolution(t *testing.T) {
	s := newTestSystem(t)
	w, h := s.Layout(1920, 1080)
	if w != screenWidth || h != screenHeight {
		t.Errorf("Layout() = %d,%d, want %d,%d", w, h, screenWidth, screenHeight)
	}
}

func TestFrameImageMatchesPPUBuffer(t *testing.T) {
	s := newTestSystem(t)
	s.NextFrame()

	img := s.FrameImage()
	bounds := img.Bounds()
	if bounds.Dx() != screenWidth || bounds.Dy() != screenHeight {
		t.Errorf("FrameImage bounds = %v, want %dx%d", bounds, screenWidth, screenHeight)
	}
}

func TestNewRejectsUnsupportedMapper(t *testing.T) {
	data := buildNROM()
	data[7] = 0xF0 // mapper number high nibble -> unsupported mapper

	cart, err := cartridge.LoadReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("LoadReader: %v", err)
	}
	if _, err := New(cart, nil); err == nil {
		t.Errorf("New() with unsupported mapper number: got nil error, want non-nil")
	}
}
