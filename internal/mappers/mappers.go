// Package mappers implements the cartridge-side bank-switching logic
// that extends the CPU's $4020-$FFFF window and the PPU's $0000-$1FFF
// pattern-table window. https://www.nesdev.org/wiki/Mapper
package mappers

import (
	"fmt"

	"github.com/nesforge/nesforge/internal/cartridge"
)

// Mapper is the narrow interface every bank-switching variant
// implements. ReadCHR/WriteCHR service the PPU's pattern-table window;
// MapsCHR reports whether the mapper (rather than PPU VRAM) backs that
// window for a given ROM — always true here, since a CHR-RAM cartridge
// is still mapper-owned storage.
type Mapper interface {
	Read(addr uint16) uint8
	Write(addr uint16, val uint8)
	ReadCHR(addr uint16) uint8
	WriteCHR(addr uint16, val uint8)
	MapsCHR() bool
	Mirroring() cartridge.Mirroring
}

// New constructs the mapper named by the cartridge's header mapper
// number, or an error if that number isn't one of the four variants
// this emulator supports.
func New(c *cartridge.Cartridge) (Mapper, error) {
	switch c.MapperNum {
	case 0:
		return newNROM(c), nil
	case 1:
		return newMMC1(c), nil
	case 2:
		return newUxROM(c), nil
	case 3:
		return newCNROM(c), nil
	default:
		return nil, fmt.Errorf("mappers: unsupported mapper %d", c.MapperNum)
	}
}
