package mappers

import "github.com/nesforge/nesforge/internal/cartridge"

// nrom is mapper 0: a fixed mapping of PRG and CHR with no bank
// switching. A single 16KiB PRG bank is mirrored into both the
// $8000-$BFFF and $C000-$FFFF windows.
type nrom struct {
	cart *cartridge.Cartridge
}

func newNROM(c *cartridge.Cartridge) *nrom {
	return &nrom{cart: c}
}

func (m *nrom) Read(addr uint16) uint8 {
	switch {
	case addr >= 0x6000 && addr < 0x8000:
		return m.cart.PRGRAM[(addr-0x6000)%uint16(len(m.cart.PRGRAM))]
	case addr >= 0x8000:
		off := int(addr-0x8000) % len(m.cart.PRG)
		return m.cart.PRG[off]
	}
	return 0
}

func (m *nrom) Write(addr uint16, val uint8) {
	if addr >= 0x6000 && addr < 0x8000 {
		m.cart.PRGRAM[(addr-0x6000)%uint16(len(m.cart.PRGRAM))] = val
	}
}

func (m *nrom) ReadCHR(addr uint16) uint8 {
	return m.cart.CHR[addr%uint16(len(m.cart.CHR))]
}

func (m *nrom) WriteCHR(addr uint16, val uint8) {
	if m.cart.ChrIsRAM {
		m.cart.CHR[addr%uint16(len(m.cart.CHR))] = val
	}
}

func (m *nrom) MapsCHR() bool { return true }

func (m *nrom) Mirroring() cartridge.Mirroring { return m.cart.Mirror }
