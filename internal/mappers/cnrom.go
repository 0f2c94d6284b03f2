package mappers

import "github.com/nesforge/nesforge/internal/cartridge"

// cnrom is mapper 3: fixed PRG (one or two 16KiB banks, mirrored the
// way NROM is), switchable 8KiB CHR bank.
type cnrom struct {
	cart    *cartridge.Cartridge
	chrBank int
}

func newCNROM(c *cartridge.Cartridge) *cnrom {
	return &cnrom{cart: c}
}

func (m *cnrom) Read(addr uint16) uint8 {
	switch {
	case addr >= 0x6000 && addr < 0x8000:
		return m.cart.PRGRAM[(addr-0x6000)%uint16(len(m.cart.PRGRAM))]
	case addr >= 0x8000:
		off := int(addr-0x8000) % len(m.cart.PRG)
		return m.cart.PRG[off]
	}
	return 0
}

func (m *cnrom) Write(addr uint16, val uint8) {
	switch {
	case addr >= 0x6000 && addr < 0x8000:
		m.cart.PRGRAM[(addr-0x6000)%uint16(len(m.cart.PRGRAM))] = val
	case addr >= 0x8000:
		m.chrBank = int(val) % m.cart.CHRBankCount()
	}
}

func (m *cnrom) ReadCHR(addr uint16) uint8 {
	base := m.chrBank * 0x2000
	return m.cart.CHR[base+int(addr)]
}

func (m *cnrom) WriteCHR(addr uint16, val uint8) {
	if m.cart.ChrIsRAM {
		base := m.chrBank * 0x2000
		m.cart.CHR[base+int(addr)] = val
	}
}

func (m *cnrom) MapsCHR() bool { return true }

func (m *cnrom) Mirroring() cartridge.Mirroring { return m.cart.Mirror }
