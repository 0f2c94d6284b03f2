package cpu

// Addressing modes, per https://www.nesdev.org/obelisk-6502-guide/addressing.html
const (
	ModeImplied = iota
	ModeAccumulator
	ModeImmediate
	ModeZeroPage
	ModeZeroPageX
	ModeZeroPageY
	ModeRelative
	ModeAbsolute
	ModeAbsoluteX
	ModeAbsoluteY
	ModeIndirect
	ModeIndirectX
	ModeIndirectY
)

// operandAddr resolves the effective address for mode, assuming PC
// currently points at the first operand byte. It must not be called
// for ModeImplied/ModeAccumulator. Read-only absolute,X/Y and
// (indirect),Y forms record a page-cross penalty in c.extraCycles;
// callers that need the fixed higher cycle count for read-modify-write
// or store variants simply ignore it (the opcode table already encodes
// the non-crossing cost for those forms).
func (c *CPU) operandAddr(mode uint8) uint16 {
	switch mode {
	case ModeImmediate:
		return c.PC
	case ModeZeroPage:
		return uint16(c.bus.Read(c.PC))
	case ModeZeroPageX:
		return uint16(c.bus.Read(c.PC) + c.X)
	case ModeZeroPageY:
		return uint16(c.bus.Read(c.PC) + c.Y)
	case ModeAbsolute:
		return c.read16(c.PC, false)
	case ModeAbsoluteX:
		base := c.read16(c.PC, false)
		addr := base + uint16(c.X)
		if pageCrossed(base, addr) {
			c.extraCycles++
		}
		return addr
	case ModeAbsoluteY:
		base := c.read16(c.PC, false)
		addr := base + uint16(c.Y)
		if pageCrossed(base, addr) {
			c.extraCycles++
		}
		return addr
	case ModeIndirect:
		ptr := c.read16(c.PC, false)
		return c.read16(ptr, true)
	case ModeIndirectX:
		zp := uint16(c.bus.Read(c.PC) + c.X)
		return c.read16(zp, true)
	case ModeIndirectY:
		zp := uint16(c.bus.Read(c.PC))
		base := c.read16(zp, true)
		addr := base + uint16(c.Y)
		if pageCrossed(base, addr) {
			c.extraCycles++
		}
		return addr
	case ModeRelative:
		// Relative to PC after the full two-byte branch
		// instruction; PC is still pointed at the offset byte here.
		return (c.PC + 1) + uint16(int8(c.bus.Read(c.PC)))
	default:
		panic("cpu: invalid addressing mode")
	}
}

// addrWriteOnly resolves an address the same as operandAddr, but
// without charging a page-cross penalty; used by read-modify-write
// and store instructions, whose opcode-table cycle count already
// reflects the fixed (non-crossing) cost.
func (c *CPU) addrWriteOnly(mode uint8) uint16 {
	before := c.extraCycles
	addr := c.operandAddr(mode)
	c.extraCycles = before
	return addr
}
