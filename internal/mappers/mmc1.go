package mappers

import "github.com/nesforge/nesforge/internal/cartridge"

// mmc1 is mapper 1: a serial shift register. Five consecutive writes
// to $8000-$FFFF (one bit each, LSB first) load a 5-bit value that is
// then applied to one of four internal registers chosen by the
// address of the fifth write. A write with bit 7 set resets the shift
// register and forces PRG bank mode 3 regardless of which write it
// was.
//
// https://www.nesdev.org/wiki/MMC1
// Grounded on other_examples/ed831e32_hkhalsa-helloworld__mapper-mapper_1.go.go
type mmc1 struct {
	cart *cartridge.Cartridge

	shift   uint8
	writes  int
	control uint8 // CPPMM
	chrBank0 uint8
	chrBank1 uint8
	prgBank  uint8

	mirror cartridge.Mirroring
}

func newMMC1(c *cartridge.Cartridge) *mmc1 {
	return &mmc1{
		cart:    c,
		control: 0x0C, // PRG mode 3 (fix last bank at $C000) on power-on
		mirror:  c.Mirror,
	}
}

func (m *mmc1) chrBankMode4K() bool  { return m.control&0x10 != 0 }
func (m *mmc1) prgBankMode() uint8   { return (m.control >> 2) & 0x03 }

func (m *mmc1) Read(addr uint16) uint8 {
	switch {
	case addr >= 0x6000 && addr < 0x8000:
		return m.cart.PRGRAM[(addr-0x6000)%uint16(len(m.cart.PRGRAM))]
	case addr >= 0x8000:
		return m.cart.PRG[m.prgOffset(addr)]
	}
	return 0
}

func (m *mmc1) prgOffset(addr uint16) int {
	banks := m.cart.PRGBankCount()
	switch m.prgBankMode() {
	case 0, 1:
		// switch 32KiB at $8000, ignoring the low bit of the bank number
		pairs := banks / 2
		if pairs == 0 {
			pairs = 1
		}
		bank := int(m.prgBank>>1) % pairs
		base := bank * 0x8000
		return base + int(addr-0x8000)
	case 2:
		// fix first bank at $8000, switch 16KiB at $C000
		if addr < 0xC000 {
			return int(addr - 0x8000)
		}
		bank := int(m.prgBank) % banks
		return bank*0x4000 + int(addr-0xC000)
	default: // 3
		// switch 16KiB at $8000, fix last bank at $C000
		if addr < 0xC000 {
			bank := int(m.prgBank) % banks
			return bank*0x4000 + int(addr-0x8000)
		}
		last := banks - 1
		return last*0x4000 + int(addr-0xC000)
	}
}

func (m *mmc1) Write(addr uint16, val uint8) {
	if addr >= 0x6000 && addr < 0x8000 {
		m.cart.PRGRAM[(addr-0x6000)%uint16(len(m.cart.PRGRAM))] = val
		return
	}
	if addr < 0x8000 {
		return
	}

	if val&0x80 != 0 {
		m.shift = 0
		m.writes = 0
		m.control |= 0x0C
		return
	}

	m.shift |= (val & 1) << m.writes
	m.writes++
	if m.writes < 5 {
		return
	}

	v := m.shift
	m.shift = 0
	m.writes = 0

	switch {
	case addr < 0xA000:
		m.control = v
		switch v & 0x03 {
		case 0:
			m.mirror = cartridge.MirrorSingleLower
		case 1:
			m.mirror = cartridge.MirrorSingleUpper
		case 2:
			m.mirror = cartridge.MirrorVertical
		case 3:
			m.mirror = cartridge.MirrorHorizontal
		}
	case addr < 0xC000:
		m.chrBank0 = v
	case addr < 0xE000:
		m.chrBank1 = v
	default:
		m.prgBank = v & 0x0F
	}
}

func (m *mmc1) chrOffset(addr uint16) int {
	banks := m.cart.CHRBankCount()
	if !m.chrBankMode4K() {
		// switch 8KiB at a time; low bit of the bank number is ignored
		bank := int(m.chrBank0>>1) % banks
		return bank*0x2000 + int(addr)
	}

	if addr < 0x1000 {
		bank := int(m.chrBank0) % (banks * 2)
		return bank*0x1000 + int(addr)
	}
	bank := int(m.chrBank1) % (banks * 2)
	return bank*0x1000 + int(addr-0x1000)
}

func (m *mmc1) ReadCHR(addr uint16) uint8 {
	off := m.chrOffset(addr) % len(m.cart.CHR)
	return m.cart.CHR[off]
}

func (m *mmc1) WriteCHR(addr uint16, val uint8) {
	if m.cart.ChrIsRAM {
		off := m.chrOffset(addr) % len(m.cart.CHR)
		m.cart.CHR[off] = val
	}
}

func (m *mmc1) MapsCHR() bool { return true }

func (m *mmc1) Mirroring() cartridge.Mirroring { return m.mirror }
