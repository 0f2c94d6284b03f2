package cpu

import "testing"

func TestDisassembleAddressingModes(t *testing.T) {
	type tc struct {
		name string
		mem  map[uint16]uint8
		addr uint16
		want string
		len  uint8
	}
	cases := []tc{
		{"implied", map[uint16]uint8{0x8000: 0x18}, 0x8000, "CLC", 1},
		{"accumulator", map[uint16]uint8{0x8000: 0x0A}, 0x8000, "ASL A", 1},
		{"immediate", map[uint16]uint8{0x8000: 0x69, 0x8001: 0x42}, 0x8000, "ADC #$42", 2},
		{"zeropage", map[uint16]uint8{0x8000: 0x65, 0x8001: 0x10}, 0x8000, "ADC $10", 2},
		{"zeropage,x", map[uint16]uint8{0x8000: 0x75, 0x8001: 0x10}, 0x8000, "ADC $10,X", 2},
		{"absolute", map[uint16]uint8{0x8000: 0x6D, 0x8001: 0x34, 0x8002: 0x12}, 0x8000, "ADC $1234", 3},
		{"absolute,x", map[uint16]uint8{0x8000: 0x7D, 0x8001: 0x34, 0x8002: 0x12}, 0x8000, "ADC $1234,X", 3},
		{"indirect", map[uint16]uint8{0x8000: 0x6C, 0x8001: 0x34, 0x8002: 0x12}, 0x8000, "JMP ($1234)", 3},
		{"indirect,x", map[uint16]uint8{0x8000: 0x61, 0x8001: 0x10}, 0x8000, "ADC ($10,X)", 2},
		{"indirect,y", map[uint16]uint8{0x8000: 0x71, 0x8001: 0x10}, 0x8000, "ADC ($10),Y", 2},
	}

	for _, c := range cases {
		cpu, b := newTestCPU(0x8000)
		for addr, v := range c.mem {
			b.mem[addr] = v
		}
		got, n := cpu.Disassemble(b, c.addr)
		if got != c.want {
			t.Errorf("%s: Disassemble = %q, want %q", c.name, got, c.want)
		}
		if n != c.len {
			t.Errorf("%s: length = %d, want %d", c.name, n, c.len)
		}
	}
}

func TestDisassembleRelativeResolvesBranchTarget(t *testing.T) {
	cpu, b := newTestCPU(0x8000)
	b.mem[0x8000] = 0xF0 // BEQ
	b.mem[0x8001] = 0x05 // +5, target = 0x8002 + 5 = 0x8007

	got, n := cpu.Disassemble(b, 0x8000)
	if want := "BEQ $8007"; got != want {
		t.Errorf("Disassemble = %q, want %q", got, want)
	}
	if n != 2 {
		t.Errorf("length = %d, want 2", n)
	}
}

func TestDisassembleUnimplementedOpcode(t *testing.T) {
	cpu, b := newTestCPU(0x8000)
	b.mem[0x8000] = 0x02 // not in opcodeTable

	got, n := cpu.Disassemble(b, 0x8000)
	if want := ".byte $02"; got != want {
		t.Errorf("Disassemble = %q, want %q", got, want)
	}
	if n != 1 {
		t.Errorf("length = %d, want 1", n)
	}
}
