package ppu

// systemPalette is the 64-entry 2C02 RGBA palette, R packed into the
// high byte of the 32-bit word per the frame buffer's documented
// layout. Color values are the teacher's SYSTEM_PALETTE literal
// (ppu/ppu.go), repacked from a []uint8{r,g,b,a} slice into a single
// uint32 per entry.
var systemPalette = [64]uint32{
	rgba(0x80, 0x80, 0x80), rgba(0x00, 0x3D, 0xA6), rgba(0x00, 0x12, 0xB0), rgba(0x44, 0x00, 0x96), rgba(0xA1, 0x00, 0x5E),
	rgba(0xC7, 0x00, 0x28), rgba(0xBA, 0x06, 0x00), rgba(0x8C, 0x17, 0x00), rgba(0x5C, 0x2F, 0x00), rgba(0x10, 0x45, 0x00),
	rgba(0x05, 0x4A, 0x00), rgba(0x00, 0x47, 0x2E), rgba(0x00, 0x41, 0x66), rgba(0x00, 0x00, 0x00), rgba(0x05, 0x05, 0x05),
	rgba(0x05, 0x05, 0x05), rgba(0xC7, 0xC7, 0xC7), rgba(0x00, 0x77, 0xFF), rgba(0x21, 0x55, 0xFF), rgba(0x82, 0x37, 0xFA),
	rgba(0xEB, 0x2F, 0xB5), rgba(0xFF, 0x29, 0x50), rgba(0xFF, 0x22, 0x00), rgba(0xD6, 0x32, 0x00), rgba(0xC4, 0x62, 0x00),
	rgba(0x35, 0x80, 0x00), rgba(0x05, 0x8F, 0x00), rgba(0x00, 0x8A, 0x55), rgba(0x00, 0x99, 0xCC), rgba(0x21, 0x21, 0x21),
	rgba(0x09, 0x09, 0x09), rgba(0x09, 0x09, 0x09), rgba(0xFF, 0xFF, 0xFF), rgba(0x0F, 0xD7, 0xFF), rgba(0x69, 0xA2, 0xFF),
	rgba(0xD4, 0x80, 0xFF), rgba(0xFF, 0x45, 0xF3), rgba(0xFF, 0x61, 0x8B), rgba(0xFF, 0x88, 0x33), rgba(0xFF, 0x9C, 0x12),
	rgba(0xFA, 0xBC, 0x20), rgba(0x9F, 0xE3, 0x0E), rgba(0x2B, 0xF0, 0x35), rgba(0x0C, 0xF0, 0xA4), rgba(0x05, 0xFB, 0xFF),
	rgba(0x5E, 0x5E, 0x5E), rgba(0x0D, 0x0D, 0x0D), rgba(0x0D, 0x0D, 0x0D), rgba(0xFF, 0xFF, 0xFF), rgba(0xA6, 0xFC, 0xFF),
	rgba(0xB3, 0xEC, 0xFF), rgba(0xDA, 0xAB, 0xEB), rgba(0xFF, 0xA8, 0xF9), rgba(0xFF, 0xAB, 0xB3), rgba(0xFF, 0xD2, 0xB0),
	rgba(0xFF, 0xEF, 0xA6), rgba(0xFF, 0xF7, 0x9C), rgba(0xD7, 0xE8, 0x95), rgba(0xA6, 0xED, 0xAF), rgba(0xA2, 0xF2, 0xDA),
	rgba(0x99, 0xFF, 0xFC), rgba(0xDD, 0xDD, 0xDD), rgba(0x11, 0x11, 0x11), rgba(0x11, 0x11, 0x11),
}

func rgba(r, g, b uint8) uint32 {
	return uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | 0xFF
}
