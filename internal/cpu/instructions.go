package cpu

// opcode describes one entry of the static dispatch table: the
// addressing mode to resolve, the instruction's total byte length
// (opcode + operands), its base cycle cost, and the handler to run.
// run is a method expression (e.g. (*CPU).ADC) bound to the mode at
// call time — this is what replaces the source's reflection dispatch.
type opcode struct {
	name   string
	mode   uint8
	bytes  uint8
	cycles uint8
	run    func(c *CPU, mode uint8)
}

var opcodeTable [256]opcode

func def(code uint8, name string, mode uint8, bytes, cycles uint8, run func(c *CPU, mode uint8)) {
	opcodeTable[code] = opcode{name, mode, bytes, cycles, run}
}

func init() {
	def(0x69, "ADC", ModeImmediate, 2, 2, (*CPU).ADC)
	def(0x65, "ADC", ModeZeroPage, 2, 3, (*CPU).ADC)
	def(0x75, "ADC", ModeZeroPageX, 2, 4, (*CPU).ADC)
	def(0x6D, "ADC", ModeAbsolute, 3, 4, (*CPU).ADC)
	def(0x7D, "ADC", ModeAbsoluteX, 3, 4, (*CPU).ADC)
	def(0x79, "ADC", ModeAbsoluteY, 3, 4, (*CPU).ADC)
	def(0x61, "ADC", ModeIndirectX, 2, 6, (*CPU).ADC)
	def(0x71, "ADC", ModeIndirectY, 2, 5, (*CPU).ADC)

	def(0x29, "AND", ModeImmediate, 2, 2, (*CPU).AND)
	def(0x25, "AND", ModeZeroPage, 2, 3, (*CPU).AND)
	def(0x35, "AND", ModeZeroPageX, 2, 4, (*CPU).AND)
	def(0x2D, "AND", ModeAbsolute, 3, 4, (*CPU).AND)
	def(0x3D, "AND", ModeAbsoluteX, 3, 4, (*CPU).AND)
	def(0x39, "AND", ModeAbsoluteY, 3, 4, (*CPU).AND)
	def(0x21, "AND", ModeIndirectX, 2, 6, (*CPU).AND)
	def(0x31, "AND", ModeIndirectY, 2, 5, (*CPU).AND)

	def(0x0A, "ASL", ModeAccumulator, 1, 2, (*CPU).ASL)
	def(0x06, "ASL", ModeZeroPage, 2, 5, (*CPU).ASL)
	def(0x16, "ASL", ModeZeroPageX, 2, 6, (*CPU).ASL)
	def(0x0E, "ASL", ModeAbsolute, 3, 6, (*CPU).ASL)
	def(0x1E, "ASL", ModeAbsoluteX, 3, 7, (*CPU).ASL)

	def(0x90, "BCC", ModeRelative, 2, 2, (*CPU).BCC)
	def(0xB0, "BCS", ModeRelative, 2, 2, (*CPU).BCS)
	def(0xF0, "BEQ", ModeRelative, 2, 2, (*CPU).BEQ)
	def(0x30, "BMI", ModeRelative, 2, 2, (*CPU).BMI)
	def(0xD0, "BNE", ModeRelative, 2, 2, (*CPU).BNE)
	def(0x10, "BPL", ModeRelative, 2, 2, (*CPU).BPL)
	def(0x50, "BVC", ModeRelative, 2, 2, (*CPU).BVC)
	def(0x70, "BVS", ModeRelative, 2, 2, (*CPU).BVS)

	def(0x24, "BIT", ModeZeroPage, 2, 3, (*CPU).BIT)
	def(0x2C, "BIT", ModeAbsolute, 3, 4, (*CPU).BIT)

	def(0x00, "BRK", ModeImplied, 1, 7, (*CPU).BRK)

	def(0x18, "CLC", ModeImplied, 1, 2, (*CPU).CLC)
	def(0xD8, "CLD", ModeImplied, 1, 2, (*CPU).CLD)
	def(0x58, "CLI", ModeImplied, 1, 2, (*CPU).CLI)
	def(0xB8, "CLV", ModeImplied, 1, 2, (*CPU).CLV)

	def(0xC9, "CMP", ModeImmediate, 2, 2, (*CPU).CMP)
	def(0xC5, "CMP", ModeZeroPage, 2, 3, (*CPU).CMP)
	def(0xD5, "CMP", ModeZeroPageX, 2, 4, (*CPU).CMP)
	def(0xCD, "CMP", ModeAbsolute, 3, 4, (*CPU).CMP)
	def(0xDD, "CMP", ModeAbsoluteX, 3, 4, (*CPU).CMP)
	def(0xD9, "CMP", ModeAbsoluteY, 3, 4, (*CPU).CMP)
	def(0xC1, "CMP", ModeIndirectX, 2, 6, (*CPU).CMP)
	def(0xD1, "CMP", ModeIndirectY, 2, 5, (*CPU).CMP)

	def(0xE0, "CPX", ModeImmediate, 2, 2, (*CPU).CPX)
	def(0xE4, "CPX", ModeZeroPage, 2, 3, (*CPU).CPX)
	def(0xEC, "CPX", ModeAbsolute, 3, 4, (*CPU).CPX)

	def(0xC0, "CPY", ModeImmediate, 2, 2, (*CPU).CPY)
	def(0xC4, "CPY", ModeZeroPage, 2, 3, (*CPU).CPY)
	def(0xCC, "CPY", ModeAbsolute, 3, 4, (*CPU).CPY)

	def(0xC6, "DEC", ModeZeroPage, 2, 5, (*CPU).DEC)
	def(0xD6, "DEC", ModeZeroPageX, 2, 6, (*CPU).DEC)
	def(0xCE, "DEC", ModeAbsolute, 3, 6, (*CPU).DEC)
	def(0xDE, "DEC", ModeAbsoluteX, 3, 7, (*CPU).DEC)

	def(0xCA, "DEX", ModeImplied, 1, 2, (*CPU).DEX)
	def(0x88, "DEY", ModeImplied, 1, 2, (*CPU).DEY)

	def(0x49, "EOR", ModeImmediate, 2, 2, (*CPU).EOR)
	def(0x45, "EOR", ModeZeroPage, 2, 3, (*CPU).EOR)
	def(0x55, "EOR", ModeZeroPageX, 2, 4, (*CPU).EOR)
	def(0x4D, "EOR", ModeAbsolute, 3, 4, (*CPU).EOR)
	def(0x5D, "EOR", ModeAbsoluteX, 3, 4, (*CPU).EOR)
	def(0x59, "EOR", ModeAbsoluteY, 3, 4, (*CPU).EOR)
	def(0x41, "EOR", ModeIndirectX, 2, 6, (*CPU).EOR)
	def(0x51, "EOR", ModeIndirectY, 2, 5, (*CPU).EOR)

	def(0xE6, "INC", ModeZeroPage, 2, 5, (*CPU).INC)
	def(0xF6, "INC", ModeZeroPageX, 2, 6, (*CPU).INC)
	def(0xEE, "INC", ModeAbsolute, 3, 6, (*CPU).INC)
	def(0xFE, "INC", ModeAbsoluteX, 3, 7, (*CPU).INC)

	def(0xE8, "INX", ModeImplied, 1, 2, (*CPU).INX)
	def(0xC8, "INY", ModeImplied, 1, 2, (*CPU).INY)

	def(0x4C, "JMP", ModeAbsolute, 3, 3, (*CPU).JMP)
	def(0x6C, "JMP", ModeIndirect, 3, 5, (*CPU).JMP)

	def(0x20, "JSR", ModeAbsolute, 3, 6, (*CPU).JSR)

	def(0xA9, "LDA", ModeImmediate, 2, 2, (*CPU).LDA)
	def(0xA5, "LDA", ModeZeroPage, 2, 3, (*CPU).LDA)
	def(0xB5, "LDA", ModeZeroPageX, 2, 4, (*CPU).LDA)
	def(0xAD, "LDA", ModeAbsolute, 3, 4, (*CPU).LDA)
	def(0xBD, "LDA", ModeAbsoluteX, 3, 4, (*CPU).LDA)
	def(0xB9, "LDA", ModeAbsoluteY, 3, 4, (*CPU).LDA)
	def(0xA1, "LDA", ModeIndirectX, 2, 6, (*CPU).LDA)
	def(0xB1, "LDA", ModeIndirectY, 2, 5, (*CPU).LDA)

	def(0xA2, "LDX", ModeImmediate, 2, 2, (*CPU).LDX)
	def(0xA6, "LDX", ModeZeroPage, 2, 3, (*CPU).LDX)
	def(0xB6, "LDX", ModeZeroPageY, 2, 4, (*CPU).LDX)
	def(0xAE, "LDX", ModeAbsolute, 3, 4, (*CPU).LDX)
	def(0xBE, "LDX", ModeAbsoluteY, 3, 4, (*CPU).LDX)

	def(0xA0, "LDY", ModeImmediate, 2, 2, (*CPU).LDY)
	def(0xA4, "LDY", ModeZeroPage, 2, 3, (*CPU).LDY)
	def(0xB4, "LDY", ModeZeroPageX, 2, 4, (*CPU).LDY)
	def(0xAC, "LDY", ModeAbsolute, 3, 4, (*CPU).LDY)
	def(0xBC, "LDY", ModeAbsoluteX, 3, 4, (*CPU).LDY)

	def(0x4A, "LSR", ModeAccumulator, 1, 2, (*CPU).LSR)
	def(0x46, "LSR", ModeZeroPage, 2, 5, (*CPU).LSR)
	def(0x56, "LSR", ModeZeroPageX, 2, 6, (*CPU).LSR)
	def(0x4E, "LSR", ModeAbsolute, 3, 6, (*CPU).LSR)
	def(0x5E, "LSR", ModeAbsoluteX, 3, 7, (*CPU).LSR)

	def(0xEA, "NOP", ModeImplied, 1, 2, (*CPU).NOP)

	def(0x09, "ORA", ModeImmediate, 2, 2, (*CPU).ORA)
	def(0x05, "ORA", ModeZeroPage, 2, 3, (*CPU).ORA)
	def(0x15, "ORA", ModeZeroPageX, 2, 4, (*CPU).ORA)
	def(0x0D, "ORA", ModeAbsolute, 3, 4, (*CPU).ORA)
	def(0x1D, "ORA", ModeAbsoluteX, 3, 4, (*CPU).ORA)
	def(0x19, "ORA", ModeAbsoluteY, 3, 4, (*CPU).ORA)
	def(0x01, "ORA", ModeIndirectX, 2, 6, (*CPU).ORA)
	def(0x11, "ORA", ModeIndirectY, 2, 5, (*CPU).ORA)

	def(0x48, "PHA", ModeImplied, 1, 3, (*CPU).PHA)
	def(0x08, "PHP", ModeImplied, 1, 3, (*CPU).PHP)
	def(0x68, "PLA", ModeImplied, 1, 4, (*CPU).PLA)
	def(0x28, "PLP", ModeImplied, 1, 4, (*CPU).PLP)

	def(0x2A, "ROL", ModeAccumulator, 1, 2, (*CPU).ROL)
	def(0x26, "ROL", ModeZeroPage, 2, 5, (*CPU).ROL)
	def(0x36, "ROL", ModeZeroPageX, 2, 6, (*CPU).ROL)
	def(0x2E, "ROL", ModeAbsolute, 3, 6, (*CPU).ROL)
	def(0x3E, "ROL", ModeAbsoluteX, 3, 7, (*CPU).ROL)

	def(0x6A, "ROR", ModeAccumulator, 1, 2, (*CPU).ROR)
	def(0x66, "ROR", ModeZeroPage, 2, 5, (*CPU).ROR)
	def(0x76, "ROR", ModeZeroPageX, 2, 6, (*CPU).ROR)
	def(0x6E, "ROR", ModeAbsolute, 3, 6, (*CPU).ROR)
	def(0x7E, "ROR", ModeAbsoluteX, 3, 7, (*CPU).ROR)

	def(0x40, "RTI", ModeImplied, 1, 6, (*CPU).RTI)
	def(0x60, "RTS", ModeImplied, 1, 6, (*CPU).RTS)

	def(0xE9, "SBC", ModeImmediate, 2, 2, (*CPU).SBC)
	def(0xE5, "SBC", ModeZeroPage, 2, 3, (*CPU).SBC)
	def(0xF5, "SBC", ModeZeroPageX, 2, 4, (*CPU).SBC)
	def(0xED, "SBC", ModeAbsolute, 3, 4, (*CPU).SBC)
	def(0xFD, "SBC", ModeAbsoluteX, 3, 4, (*CPU).SBC)
	def(0xF9, "SBC", ModeAbsoluteY, 3, 4, (*CPU).SBC)
	def(0xE1, "SBC", ModeIndirectX, 2, 6, (*CPU).SBC)
	def(0xF1, "SBC", ModeIndirectY, 2, 5, (*CPU).SBC)

	def(0x38, "SEC", ModeImplied, 1, 2, (*CPU).SEC)
	def(0xF8, "SED", ModeImplied, 1, 2, (*CPU).SED)
	def(0x78, "SEI", ModeImplied, 1, 2, (*CPU).SEI)

	def(0x85, "STA", ModeZeroPage, 2, 3, (*CPU).STA)
	def(0x95, "STA", ModeZeroPageX, 2, 4, (*CPU).STA)
	def(0x8D, "STA", ModeAbsolute, 3, 4, (*CPU).STA)
	def(0x9D, "STA", ModeAbsoluteX, 3, 5, (*CPU).STA)
	def(0x99, "STA", ModeAbsoluteY, 3, 5, (*CPU).STA)
	def(0x81, "STA", ModeIndirectX, 2, 6, (*CPU).STA)
	def(0x91, "STA", ModeIndirectY, 2, 6, (*CPU).STA)

	def(0x86, "STX", ModeZeroPage, 2, 3, (*CPU).STX)
	def(0x96, "STX", ModeZeroPageY, 2, 4, (*CPU).STX)
	def(0x8E, "STX", ModeAbsolute, 3, 4, (*CPU).STX)

	def(0x84, "STY", ModeZeroPage, 2, 3, (*CPU).STY)
	def(0x94, "STY", ModeZeroPageX, 2, 4, (*CPU).STY)
	def(0x8C, "STY", ModeAbsolute, 3, 4, (*CPU).STY)

	def(0xAA, "TAX", ModeImplied, 1, 2, (*CPU).TAX)
	def(0xA8, "TAY", ModeImplied, 1, 2, (*CPU).TAY)
	def(0xBA, "TSX", ModeImplied, 1, 2, (*CPU).TSX)
	def(0x8A, "TXA", ModeImplied, 1, 2, (*CPU).TXA)
	def(0x9A, "TXS", ModeImplied, 1, 2, (*CPU).TXS)
	def(0x98, "TYA", ModeImplied, 1, 2, (*CPU).TYA)
}

// addWithCarry implements ADC's addend/flag semantics; SBC reuses it
// on the ones-complement of its operand, yielding identical carry and
// overflow rules.
func (c *CPU) addWithCarry(operand uint8) {
	a := c.A
	carryIn := uint16(0)
	if c.flag(FlagC) {
		carryIn = 1
	}
	sum := uint16(a) + uint16(operand) + carryIn
	result := uint8(sum)

	c.setFlag(FlagC, sum > 0xFF)
	c.setFlag(FlagV, (a^operand)&0x80 == 0 && (a^result)&0x80 != 0)
	c.A = result
	c.setZN(c.A)
}

func (c *CPU) compare(reg, mem uint8) {
	result := reg - mem
	c.setZN(result)
	c.setFlag(FlagC, reg >= mem)
}

func (c *CPU) branchIf(mask uint8, want bool) {
	target := c.operandAddr(ModeRelative)
	if c.flag(mask) == want {
		c.extraCycles++
		if pageCrossed(target, c.PC+1) {
			c.extraCycles++
		}
		c.PC = target
	}
}

func (c *CPU) ADC(mode uint8) { c.addWithCarry(c.bus.Read(c.operandAddr(mode))) }
func (c *CPU) SBC(mode uint8) { c.addWithCarry(^c.bus.Read(c.operandAddr(mode))) }

func (c *CPU) AND(mode uint8) {
	c.A &= c.bus.Read(c.operandAddr(mode))
	c.setZN(c.A)
}

func (c *CPU) EOR(mode uint8) {
	c.A ^= c.bus.Read(c.operandAddr(mode))
	c.setZN(c.A)
}

func (c *CPU) ORA(mode uint8) {
	c.A |= c.bus.Read(c.operandAddr(mode))
	c.setZN(c.A)
}

func (c *CPU) ASL(mode uint8) {
	if mode == ModeAccumulator {
		carry := c.A&0x80 != 0
		c.A <<= 1
		c.setFlag(FlagC, carry)
		c.setZN(c.A)
		return
	}
	addr := c.addrWriteOnly(mode)
	v := c.bus.Read(addr)
	result := v << 1
	c.bus.Write(addr, result)
	c.setFlag(FlagC, v&0x80 != 0)
	c.setZN(result)
}

func (c *CPU) LSR(mode uint8) {
	if mode == ModeAccumulator {
		carry := c.A&1 != 0
		c.A >>= 1
		c.setFlag(FlagC, carry)
		c.setZN(c.A)
		return
	}
	addr := c.addrWriteOnly(mode)
	v := c.bus.Read(addr)
	result := v >> 1
	c.bus.Write(addr, result)
	c.setFlag(FlagC, v&1 != 0)
	c.setZN(result)
}

func (c *CPU) ROL(mode uint8) {
	carryIn := uint8(0)
	if c.flag(FlagC) {
		carryIn = 1
	}
	if mode == ModeAccumulator {
		carryOut := c.A&0x80 != 0
		c.A = (c.A << 1) | carryIn
		c.setFlag(FlagC, carryOut)
		c.setZN(c.A)
		return
	}
	addr := c.addrWriteOnly(mode)
	v := c.bus.Read(addr)
	result := (v << 1) | carryIn
	c.bus.Write(addr, result)
	c.setFlag(FlagC, v&0x80 != 0)
	c.setZN(result)
}

func (c *CPU) ROR(mode uint8) {
	carryIn := uint8(0)
	if c.flag(FlagC) {
		carryIn = 0x80
	}
	if mode == ModeAccumulator {
		carryOut := c.A&1 != 0
		c.A = (c.A >> 1) | carryIn
		c.setFlag(FlagC, carryOut)
		c.setZN(c.A)
		return
	}
	addr := c.addrWriteOnly(mode)
	v := c.bus.Read(addr)
	result := (v >> 1) | carryIn
	c.bus.Write(addr, result)
	c.setFlag(FlagC, v&1 != 0)
	c.setZN(result)
}

func (c *CPU) BIT(mode uint8) {
	m := c.bus.Read(c.operandAddr(mode))
	c.setFlag(FlagZ, c.A&m == 0)
	c.setFlag(FlagN, m&0x80 != 0)
	c.setFlag(FlagV, m&0x40 != 0)
}

func (c *CPU) BCC(mode uint8) { c.branchIf(FlagC, false) }
func (c *CPU) BCS(mode uint8) { c.branchIf(FlagC, true) }
func (c *CPU) BEQ(mode uint8) { c.branchIf(FlagZ, true) }
func (c *CPU) BNE(mode uint8) { c.branchIf(FlagZ, false) }
func (c *CPU) BMI(mode uint8) { c.branchIf(FlagN, true) }
func (c *CPU) BPL(mode uint8) { c.branchIf(FlagN, false) }
func (c *CPU) BVC(mode uint8) { c.branchIf(FlagV, false) }
func (c *CPU) BVS(mode uint8) { c.branchIf(FlagV, true) }

func (c *CPU) BRK(mode uint8) {
	// c.PC already points past the BRK opcode byte (Step's uniform
	// pre-increment); +1 more reaches the real-hardware return
	// address, which also skips the padding byte after BRK.
	c.pushAddress(c.PC + 1)
	c.pushStack(c.P | FlagU)
	c.P |= FlagI
	c.PC = c.read16(vectorBRK, false)
}

func (c *CPU) CLC(mode uint8) { c.setFlag(FlagC, false) }
func (c *CPU) CLD(mode uint8) { c.setFlag(FlagD, false) }
func (c *CPU) CLI(mode uint8) { c.setFlag(FlagI, false) }
func (c *CPU) CLV(mode uint8) { c.setFlag(FlagV, false) }
func (c *CPU) SEC(mode uint8) { c.setFlag(FlagC, true) }
func (c *CPU) SED(mode uint8) { c.setFlag(FlagD, true) }
func (c *CPU) SEI(mode uint8) { c.setFlag(FlagI, true) }

func (c *CPU) CMP(mode uint8) { c.compare(c.A, c.bus.Read(c.operandAddr(mode))) }
func (c *CPU) CPX(mode uint8) { c.compare(c.X, c.bus.Read(c.operandAddr(mode))) }
func (c *CPU) CPY(mode uint8) { c.compare(c.Y, c.bus.Read(c.operandAddr(mode))) }

func (c *CPU) DEC(mode uint8) {
	addr := c.addrWriteOnly(mode)
	v := c.bus.Read(addr) - 1
	c.bus.Write(addr, v)
	c.setZN(v)
}

func (c *CPU) INC(mode uint8) {
	addr := c.addrWriteOnly(mode)
	v := c.bus.Read(addr) + 1
	c.bus.Write(addr, v)
	c.setZN(v)
}

func (c *CPU) DEX(mode uint8) { c.X--; c.setZN(c.X) }
func (c *CPU) DEY(mode uint8) { c.Y--; c.setZN(c.Y) }
func (c *CPU) INX(mode uint8) { c.X++; c.setZN(c.X) }
func (c *CPU) INY(mode uint8) { c.Y++; c.setZN(c.Y) }

func (c *CPU) JMP(mode uint8) { c.PC = c.operandAddr(mode) }

func (c *CPU) JSR(mode uint8) {
	// operandAddr(ModeAbsolute) does not advance PC; the return
	// address pushed is that of the last byte of the JSR operand.
	target := c.operandAddr(mode)
	c.pushAddress(c.PC + 1)
	c.PC = target
}

func (c *CPU) RTS(mode uint8) { c.PC = c.popAddress() + 1 }
func (c *CPU) RTI(mode uint8) {
	c.P = c.popStack()
	c.PC = c.popAddress()
}

func (c *CPU) LDA(mode uint8) { c.A = c.bus.Read(c.operandAddr(mode)); c.setZN(c.A) }
func (c *CPU) LDX(mode uint8) { c.X = c.bus.Read(c.operandAddr(mode)); c.setZN(c.X) }
func (c *CPU) LDY(mode uint8) { c.Y = c.bus.Read(c.operandAddr(mode)); c.setZN(c.Y) }

func (c *CPU) STA(mode uint8) { c.bus.Write(c.addrWriteOnly(mode), c.A) }
func (c *CPU) STX(mode uint8) { c.bus.Write(c.addrWriteOnly(mode), c.X) }
func (c *CPU) STY(mode uint8) { c.bus.Write(c.addrWriteOnly(mode), c.Y) }

func (c *CPU) NOP(mode uint8) {}

func (c *CPU) PHA(mode uint8) { c.pushStack(c.A) }
func (c *CPU) PHP(mode uint8) { c.pushStack(c.P | FlagU) }
func (c *CPU) PLA(mode uint8) { c.A = c.popStack(); c.setZN(c.A) }
func (c *CPU) PLP(mode uint8) { c.P = c.popStack() }

func (c *CPU) TAX(mode uint8) { c.X = c.A; c.setZN(c.X) }
func (c *CPU) TAY(mode uint8) { c.Y = c.A; c.setZN(c.Y) }
func (c *CPU) TSX(mode uint8) { c.X = c.S; c.setZN(c.X) }
func (c *CPU) TXA(mode uint8) { c.A = c.X; c.setZN(c.A) }
func (c *CPU) TXS(mode uint8) { c.S = c.X }
func (c *CPU) TYA(mode uint8) { c.A = c.Y; c.setZN(c.A) }
