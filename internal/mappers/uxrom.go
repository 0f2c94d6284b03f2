package mappers

import "github.com/nesforge/nesforge/internal/cartridge"

// uxrom is mapper 2: a switchable 16KiB PRG window at $8000, fixed at
// the last bank for $C000-$FFFF. CHR is a single unbanked 8KiB bank,
// writable only when it is CHR-RAM.
type uxrom struct {
	cart    *cartridge.Cartridge
	prgBank int
}

func newUxROM(c *cartridge.Cartridge) *uxrom {
	return &uxrom{cart: c}
}

func (m *uxrom) Read(addr uint16) uint8 {
	switch {
	case addr >= 0x6000 && addr < 0x8000:
		return m.cart.PRGRAM[(addr-0x6000)%uint16(len(m.cart.PRGRAM))]
	case addr >= 0x8000 && addr < 0xC000:
		base := m.prgBank * 0x4000
		return m.cart.PRG[base+int(addr-0x8000)]
	case addr >= 0xC000:
		last := m.cart.PRGBankCount() - 1
		base := last * 0x4000
		return m.cart.PRG[base+int(addr-0xC000)]
	}
	return 0
}

func (m *uxrom) Write(addr uint16, val uint8) {
	switch {
	case addr >= 0x6000 && addr < 0x8000:
		m.cart.PRGRAM[(addr-0x6000)%uint16(len(m.cart.PRGRAM))] = val
	case addr >= 0x8000:
		m.prgBank = int(val) % m.cart.PRGBankCount()
	}
}

func (m *uxrom) ReadCHR(addr uint16) uint8 {
	return m.cart.CHR[addr%uint16(len(m.cart.CHR))]
}

func (m *uxrom) WriteCHR(addr uint16, val uint8) {
	if m.cart.ChrIsRAM {
		m.cart.CHR[addr%uint16(len(m.cart.CHR))] = val
	}
}

func (m *uxrom) MapsCHR() bool { return true }

func (m *uxrom) Mirroring() cartridge.Mirroring { return m.cart.Mirror }
