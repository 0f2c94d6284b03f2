// Package bus implements the CPU-side memory map: the address decoder
// that routes 16-bit CPU addresses to internal RAM, the PPU's
// registers, OAM DMA, the APU, the controller ports, and the
// cartridge mapper.
// https://www.nesdev.org/wiki/CPU_memory_map
package bus

import (
	"log"

	"github.com/nesforge/nesforge/internal/mappers"
)

const (
	ramSize      = 0x0800
	maxRAM       = 0x1FFF
	maxPPUMirror = 0x3FFF
	oamDMA       = 0x4014
	ctrlStrobe   = 0x4016
	ctrlPort2    = 0x4017
)

// PPURegisters is the register-level interface the PPU exposes to the
// bus; $2000-$2007, mirrored every 8 bytes into $2008-$3FFF.
type PPURegisters interface {
	ReadRegister(addr uint16) uint8
	WriteRegister(addr uint16, val uint8)
}

// APUPorts is the register-level interface the bus routes
// $4000-$4013, $4015 and $4017 writes to. Per spec, the APU is a sink:
// it accepts writes and returns a defined byte on reads of $4015
// (apu.APU returns the low five bits last written there, 0 until then).
type APUPorts interface {
	Read(addr uint16) uint8
	Write(addr uint16, val uint8)
}

// Pad is a single controller port: a strobe-latched shift register
// that yields one bit per read.
type Pad interface {
	Write(val uint8)
	Read() uint8
}

// Mapper is the subset of mappers.Mapper the bus needs for CPU-side
// accesses ($4020 and up).
type Mapper interface {
	Read(addr uint16) uint8
	Write(addr uint16, val uint8)
}

var _ Mapper = mappers.Mapper(nil)

// Bus owns the 2KB of internal RAM and routes every other CPU address
// to its collaborators. Per the "explicit dependency" design, Bus does
// not hold a reference back to the CPU: it is handed to CPU.Step as a
// parameter for the duration of one instruction, so ownership flows
// one way (console -> bus -> {ppu, apu, pads, mapper}).
type Bus struct {
	ram    [ramSize]byte
	mapper Mapper
	ppu    PPURegisters
	apu    APUPorts
	pad1   Pad
	pad2   Pad
	log    *log.Logger
}

// New constructs a Bus wired to its collaborators. logger may be nil,
// in which case log.Default() is used.
func New(mapper Mapper, ppu PPURegisters, apu APUPorts, pad1, pad2 Pad, logger *log.Logger) *Bus {
	if logger == nil {
		logger = log.Default()
	}
	return &Bus{mapper: mapper, ppu: ppu, apu: apu, pad1: pad1, pad2: pad2, log: logger}
}

// Read reads a single byte from the CPU's address space.
func (b *Bus) Read(addr uint16) uint8 {
	switch {
	case addr <= maxRAM:
		return b.ram[addr&0x07FF]
	case addr <= maxPPUMirror:
		return b.ppu.ReadRegister(0x2000 + addr&7)
	case addr == ctrlStrobe:
		return b.pad1.Read()
	case addr == ctrlPort2:
		return b.pad2.Read()
	case addr <= ctrlPort2:
		return b.apu.Read(addr)
	default:
		return b.mapper.Read(addr)
	}
}

// Write writes a single byte into the CPU's address space.
func (b *Bus) Write(addr uint16, val uint8) {
	switch {
	case addr <= maxRAM:
		b.ram[addr&0x07FF] = val
	case addr <= maxPPUMirror:
		b.ppu.WriteRegister(0x2000+addr&7, val)
	case addr == oamDMA:
		b.runOAMDMA(val)
	case addr == ctrlStrobe:
		b.pad1.Write(val)
		b.pad2.Write(val)
	case addr <= ctrlPort2:
		b.apu.Write(addr, val)
	default:
		b.mapper.Write(addr, val)
	}
}

// runOAMDMA copies 256 bytes from CPU page val<<8 into OAM via the
// PPU's OAMDATA register, so OAMADDR wrapping happens exactly as it
// would for 256 individual $2004 writes.
func (b *Bus) runOAMDMA(val uint8) {
	base := uint16(val) << 8
	b.log.Printf("bus: OAM DMA from page %#04x", base)
	for i := 0; i < 256; i++ {
		b.ppu.WriteRegister(0x2004, b.Read(base+uint16(i)))
	}
}

// Read16 performs a little-endian 16-bit read. When pageWrap is true,
// the high byte is fetched from (addr & 0xFF00) | ((addr+1) & 0xFF),
// reproducing both the indirect-JMP page-wrap bug and the zero-page
// wraparound used by (indirect,X)/(indirect),Y pointer fetches.
func (b *Bus) Read16(addr uint16, pageWrap bool) uint16 {
	lo := uint16(b.Read(addr))
	var hiAddr uint16
	if pageWrap {
		hiAddr = (addr & 0xFF00) | ((addr + 1) & 0x00FF)
	} else {
		hiAddr = addr + 1
	}
	hi := uint16(b.Read(hiAddr))
	return lo | (hi << 8)
}

// Write16 performs a little-endian 16-bit write.
func (b *Bus) Write16(addr uint16, val uint16) {
	b.Write(addr, uint8(val))
	b.Write(addr+1, uint8(val>>8))
}
