package cartridge

import (
	"fmt"
	"io"
	"os"
)

// Cartridge holds the PRG/CHR banks and header-derived metadata parsed
// from an iNES file. It exposes raw bank storage; mapper
// implementations in internal/mappers translate CPU/PPU addresses
// into offsets here.
type Cartridge struct {
	MapperNum uint8
	Mirror    Mirroring
	HasBattery bool

	PRG []byte // prgBankSize * prgBanks
	CHR []byte // chrBankSize * chrBanks, or one chrBankSize of CHR-RAM if chrBanks == 0
	PRGRAM []byte

	ChrIsRAM bool
}

// Load parses the iNES file at path.
func Load(path string) (*Cartridge, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cartridge: open %q: %w", path, err)
	}
	defer f.Close()

	return LoadReader(f)
}

// LoadReader parses an iNES image from r.
func LoadReader(r io.Reader) (*Cartridge, error) {
	hb := make([]byte, headerSize)
	if _, err := io.ReadFull(r, hb); err != nil {
		return nil, fmt.Errorf("cartridge: reading header: %w", err)
	}

	h, err := parseHeader(hb)
	if err != nil {
		return nil, err
	}

	if h.hasTrainer() {
		return nil, fmt.Errorf("cartridge: trainer present, unsupported")
	}

	c := &Cartridge{
		MapperNum:  h.mapperNum(),
		Mirror:     h.mirroring(),
		HasBattery: h.hasBattery(),
		PRGRAM:     make([]byte, prgRAMSize*int(h.prgRAMBanks())),
	}

	prgLen := prgBankSize * int(h.prgBanks)
	c.PRG = make([]byte, prgLen)
	if _, err := io.ReadFull(r, c.PRG); err != nil {
		return nil, fmt.Errorf("cartridge: reading PRG ROM (want %d bytes): %w", prgLen, err)
	}

	if h.chrBanks == 0 {
		c.CHR = make([]byte, chrBankSize)
		c.ChrIsRAM = true
		return c, nil
	}

	chrLen := chrBankSize * int(h.chrBanks)
	c.CHR = make([]byte, chrLen)
	if _, err := io.ReadFull(r, c.CHR); err != nil {
		return nil, fmt.Errorf("cartridge: reading CHR ROM (want %d bytes): %w", chrLen, err)
	}

	return c, nil
}

// PRGBankCount returns the number of 16KiB PRG banks.
func (c *Cartridge) PRGBankCount() int {
	return len(c.PRG) / prgBankSize
}

// CHRBankCount returns the number of 8KiB CHR banks (1 for CHR-RAM).
func (c *Cartridge) CHRBankCount() int {
	return len(c.CHR) / chrBankSize
}
