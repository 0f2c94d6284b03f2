package ppu

// CPU-visible register addresses, $2000-$2007 (mirrored every 8 bytes
// through $3FFF by the bus). Grounded on ppu/ppu.go's PPUCTRL..OAMDMA
// constant block.
const (
	regCtrl   uint16 = 0x2000
	regMask   uint16 = 0x2001
	regStatus uint16 = 0x2002
	regOAMAddr uint16 = 0x2003
	regOAMData uint16 = 0x2004
	regScroll  uint16 = 0x2005
	regAddr    uint16 = 0x2006
	regData    uint16 = 0x2007
)

// PPUCTRL ($2000) bits.
const (
	ctrlNametableMask    uint8 = 0x03
	ctrlIncrement32      uint8 = 1 << 2
	ctrlSpritePatternHi  uint8 = 1 << 3
	ctrlBgPatternHi      uint8 = 1 << 4
	ctrlSpriteSize16     uint8 = 1 << 5
	ctrlNMIEnable        uint8 = 1 << 7
)

// PPUMASK ($2001) bits.
const (
	maskGreyscale    uint8 = 1 << 0
	maskShowBgLeft   uint8 = 1 << 1
	maskShowSprLeft  uint8 = 1 << 2
	maskShowBg       uint8 = 1 << 3
	maskShowSprites  uint8 = 1 << 4
)

// PPUSTATUS ($2002) bits.
const (
	statusSprite0Hit uint8 = 1 << 6
	statusVBlank     uint8 = 1 << 7
)
