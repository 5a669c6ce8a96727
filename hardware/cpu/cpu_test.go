// This file is part of Gopherodyssey.
//
// Gopherodyssey is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherodyssey is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherodyssey.  If not, see <https://www.gnu.org/licenses/>.

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopherodyssey/hardware/cpu"
	"github.com/jetsetilly/gopherodyssey/test"
)

func TestReset(t *testing.T) {
	m := newMachine()
	mc := m.mc

	mc.A = 0x12
	mc.PC = 0x345
	mc.PSW.Carry = true
	mc.PSW.BankSelect = true
	mc.PSW.SP = 4
	mc.F1 = true
	mc.MemoryBank = true
	mc.Interrupts.ExternalEnabled = true
	mc.Interrupts.InIRQ = true
	mc.Timer.Start(cpu.TimerTimer)
	mc.Timer.Value = 0x80

	mc.Reset()
	test.ExpectEquality(t, mc.A, 0)
	test.ExpectEquality(t, mc.PC, 0)
	test.ExpectEquality(t, mc.PSW.Value(), 0x08)
	test.ExpectEquality(t, mc.F1, false)
	test.ExpectEquality(t, mc.MemoryBank, false)
	test.ExpectEquality(t, mc.Interrupts, cpu.Interrupts{})
	test.ExpectEquality(t, mc.Timer.Mode, cpu.TimerOff)
	test.ExpectEquality(t, mc.Timer.Value, 0)
}

func TestNop(t *testing.T) {
	m := newMachine()
	m.mem.putInstructions(0, 0x00)
	step(t, m.mc, 1)
	test.ExpectEquality(t, m.mc.PC, 1)
	test.ExpectEquality(t, m.mc.A, 0)
}

func TestAddition(t *testing.T) {
	m := newMachine()
	mc := m.mc

	// exhaustive check of ADD A,R0 and ADDC A,R0 against a reference
	// computation
	m.mem.putInstructions(0, 0x68, 0x78)
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			for _, carry := range []bool{false, true} {
				mc.PC = 0
				mc.A = uint8(a)
				mc.RAM[0] = uint8(b)
				mc.PSW.Carry = carry
				step(t, mc, 1)

				sum := a + b
				if mc.A != uint8(sum) || mc.PSW.Carry != (sum > 0xff) || mc.PSW.AuxCarry != ((a&0xf)+(b&0xf) > 0xf) {
					t.Fatalf("ADD A,R0 failed for %02x + %02x", a, b)
				}

				mc.A = uint8(a)
				mc.PSW.Carry = carry
				step(t, mc, 1)

				c := 0
				if carry {
					c = 1
				}
				sum = a + b + c
				if mc.A != uint8(sum) || mc.PSW.Carry != (sum > 0xff) || mc.PSW.AuxCarry != ((a&0xf)+(b&0xf)+c > 0xf) {
					t.Fatalf("ADDC A,R0 failed for %02x + %02x + %d", a, b, c)
				}
			}
		}
	}
}

func TestAddImmediate(t *testing.T) {
	m := newMachine()
	mc := m.mc

	// MOV A,#0xf8; ADD A,#0x09; ADDC A,#0x00
	m.mem.putInstructions(0, 0x23, 0xf8, 0x03, 0x09, 0x13, 0x00)
	step(t, mc, 2)
	test.ExpectEquality(t, mc.A, 0xf8)
	step(t, mc, 2)
	test.ExpectEquality(t, mc.A, 0x01)
	test.ExpectEquality(t, mc.PSW.Carry, true)
	test.ExpectEquality(t, mc.PSW.AuxCarry, true)
	step(t, mc, 2)
	test.ExpectEquality(t, mc.A, 0x02)
	test.ExpectEquality(t, mc.PSW.Carry, false)
	test.ExpectEquality(t, mc.PC, 6)
}

func TestDecimalAdjust(t *testing.T) {
	m := newMachine()
	mc := m.mc
	m.mem.putInstructions(0, 0x57)

	adjust := func(a uint8, aux bool, carry bool) {
		t.Helper()
		mc.PC = 0
		mc.A = a
		mc.PSW.AuxCarry = aux
		mc.PSW.Carry = carry
		step(t, mc, 1)
	}

	adjust(0x9a, false, false)
	test.ExpectEquality(t, mc.A, 0x00)
	test.ExpectEquality(t, mc.PSW.Carry, true)

	// already valid BCD values are unchanged
	for hi := 0; hi < 10; hi++ {
		for lo := 0; lo < 10; lo++ {
			v := uint8(hi<<4 | lo)
			adjust(v, false, false)
			test.ExpectEquality(t, mc.A, v)
			test.ExpectEquality(t, mc.PSW.Carry, false)
		}
	}

	// 0x38 + 0x29 = 0x61 with aux carry. adjusts to 67
	adjust(0x61, true, false)
	test.ExpectEquality(t, mc.A, 0x67)
	test.ExpectEquality(t, mc.PSW.Carry, false)

	// 0x99 + 0x99 = 0x132. accumulator 0x32 with carry and aux carry
	adjust(0x32, true, true)
	test.ExpectEquality(t, mc.A, 0x98)
	test.ExpectEquality(t, mc.PSW.Carry, true)
}

func TestLogic(t *testing.T) {
	m := newMachine()
	mc := m.mc

	// MOV A,#0xf0; ANL A,#0x3c; ORL A,#0x01; XRL A,#0xff; CPL A; CLR A
	m.mem.putInstructions(0, 0x23, 0xf0, 0x53, 0x3c, 0x43, 0x01, 0xd3, 0xff, 0x37, 0x27)
	step(t, mc, 2)
	step(t, mc, 2)
	test.ExpectEquality(t, mc.A, 0x30)
	step(t, mc, 2)
	test.ExpectEquality(t, mc.A, 0x31)
	step(t, mc, 2)
	test.ExpectEquality(t, mc.A, 0xce)
	step(t, mc, 1)
	test.ExpectEquality(t, mc.A, 0x31)
	step(t, mc, 1)
	test.ExpectEquality(t, mc.A, 0x00)
}

func TestRotate(t *testing.T) {
	m := newMachine()
	mc := m.mc

	// RL A; RR A; RLC A; RRC A; SWAP A
	m.mem.putInstructions(0, 0xe7, 0x77, 0xf7, 0x67, 0x47)
	mc.A = 0x81
	step(t, mc, 1)
	test.ExpectEquality(t, mc.A, 0x03)
	step(t, mc, 1)
	test.ExpectEquality(t, mc.A, 0x81)
	step(t, mc, 1)
	test.ExpectEquality(t, mc.A, 0x02)
	test.ExpectEquality(t, mc.PSW.Carry, true)
	step(t, mc, 1)
	test.ExpectEquality(t, mc.A, 0x81)
	test.ExpectEquality(t, mc.PSW.Carry, false)
	step(t, mc, 1)
	test.ExpectEquality(t, mc.A, 0x18)
}

func TestRegisterBanks(t *testing.T) {
	m := newMachine()
	mc := m.mc

	// MOV R2,#0x11; SEL RB1; MOV R2,#0x22; MOV A,R2; SEL RB0; ADD A,R2
	m.mem.putInstructions(0, 0xba, 0x11, 0xd5, 0xba, 0x22, 0xfa, 0xc5, 0x6a)
	step(t, mc, 2)
	step(t, mc, 1)
	test.ExpectEquality(t, mc.PSW.BankSelect, true)
	step(t, mc, 2)
	step(t, mc, 1)
	test.ExpectEquality(t, mc.A, 0x22)
	step(t, mc, 1)
	step(t, mc, 1)
	test.ExpectEquality(t, mc.A, 0x33)
	test.ExpectEquality(t, mc.RAM[cpu.RegisterBank0+2], 0x11)
	test.ExpectEquality(t, mc.RAM[cpu.RegisterBank1+2], 0x22)
}

func TestIndirect(t *testing.T) {
	m := newMachine()
	mc := m.mc

	// MOV R0,#0x70; MOV @R0,#0x5a; MOV A,@R0; INC @R0; XRL A,@R0; XCH A,@R0
	m.mem.putInstructions(0, 0xb8, 0x70, 0xb0, 0x5a, 0xf0, 0x10, 0xd0, 0x20)
	step(t, mc, 2)
	step(t, mc, 2)

	// the pointer is masked to the size of internal RAM
	test.ExpectEquality(t, mc.RAM[0x30], 0x5a)
	step(t, mc, 1)
	test.ExpectEquality(t, mc.A, 0x5a)
	step(t, mc, 1)
	test.ExpectEquality(t, mc.RAM[0x30], 0x5b)
	step(t, mc, 1)
	test.ExpectEquality(t, mc.A, 0x01)
	step(t, mc, 1)
	test.ExpectEquality(t, mc.A, 0x5b)
	test.ExpectEquality(t, mc.RAM[0x30], 0x01)
}

func TestXCHD(t *testing.T) {
	m := newMachine()
	mc := m.mc

	// XCHD A,@R1
	m.mem.putInstructions(0, 0x31)
	mc.RAM[1] = 0x20
	mc.RAM[0x20] = 0xab
	mc.A = 0x12
	step(t, mc, 1)
	test.ExpectEquality(t, mc.A, 0x1b)
	test.ExpectEquality(t, mc.RAM[0x20], 0xa2)
}

func TestStack(t *testing.T) {
	m := newMachine()
	mc := m.mc

	// CALL 0x123 from 0x010; RET
	m.mem.putInstructions(0x010, 0x34, 0x23)
	m.mem.putInstructions(0x123, 0x83)
	mc.PC = 0x010
	mc.PSW.Carry = true
	step(t, mc, 2)
	test.ExpectEquality(t, mc.PC, 0x123)
	test.ExpectEquality(t, mc.PSW.SP, 2)
	test.ExpectEquality(t, mc.RAM[cpu.StackOrigin], 0x12)
	test.ExpectEquality(t, mc.RAM[cpu.StackOrigin+1], 0x80)
	step(t, mc, 2)
	test.ExpectEquality(t, mc.PC, 0x012)
	test.ExpectEquality(t, mc.PSW.SP, 0)
}

func TestStackWrap(t *testing.T) {
	m := newMachine()
	mc := m.mc

	// nine nested calls to the same location. the ninth call wraps the stack
	// pointer and overwrites the first return address
	m.mem.putInstructions(0x200, 0x54, 0x00)
	mc.PC = 0x200
	for _i := 0; _i < 8; _i++ {
		step(t, mc, 2)
	}
	test.ExpectEquality(t, mc.PSW.SP, 0)
	step(t, mc, 2)
	test.ExpectEquality(t, mc.PSW.SP, 2)

	// popping past the bottom of the stack wraps to the top
	m.mem.putInstructions(0x200, 0x83, 0x00, 0x83)
	step(t, mc, 2)
	test.ExpectEquality(t, mc.PSW.SP, 0)
	step(t, mc, 2)
	test.ExpectEquality(t, mc.PSW.SP, 14)
}

func TestPSW(t *testing.T) {
	m := newMachine()
	mc := m.mc

	// MOV A,#0xf3; MOV PSW,A; MOV A,PSW; CLR C; CPL F0; CPL F1
	m.mem.putInstructions(0, 0x23, 0xf3, 0xd7, 0xc7, 0x97, 0x95, 0xb5)
	step(t, mc, 2)
	step(t, mc, 1)
	test.ExpectEquality(t, mc.PSW.Carry, true)
	test.ExpectEquality(t, mc.PSW.BankSelect, true)
	test.ExpectEquality(t, mc.PSW.SP, 6)
	step(t, mc, 1)
	test.ExpectEquality(t, mc.A, 0xfb)
	step(t, mc, 1)
	test.ExpectEquality(t, mc.PSW.Carry, false)
	step(t, mc, 1)
	test.ExpectEquality(t, mc.PSW.F0, false)
	step(t, mc, 1)
	test.ExpectEquality(t, mc.F1, true)
}

func TestConditionalJumps(t *testing.T) {
	m := newMachine()
	mc := m.mc

	// JZ at 0x1ff. the operand is on the next page and so the jump is
	// relative to that page
	m.mem.putInstructions(0x1ff, 0xc6, 0x40)
	mc.PC = 0x1ff
	step(t, mc, 2)
	test.ExpectEquality(t, mc.PC, 0x240)

	// JNZ not taken
	m.mem.putInstructions(0x240, 0x96, 0x00)
	step(t, mc, 2)
	test.ExpectEquality(t, mc.PC, 0x242)

	// JB3 taken
	m.mem.putInstructions(0x242, 0x72, 0x80)
	mc.A = 0x08
	step(t, mc, 2)
	test.ExpectEquality(t, mc.PC, 0x280)

	// DJNZ R7 twice
	m.mem.putInstructions(0x280, 0xef, 0x80)
	mc.RAM[7] = 2
	step(t, mc, 2)
	test.ExpectEquality(t, mc.PC, 0x280)
	step(t, mc, 2)
	test.ExpectEquality(t, mc.PC, 0x282)

	// JT0 never jumps. JNT0 always jumps
	m.mem.putInstructions(0x282, 0x36, 0x00, 0x26, 0x90)
	step(t, mc, 2)
	test.ExpectEquality(t, mc.PC, 0x284)
	step(t, mc, 2)
	test.ExpectEquality(t, mc.PC, 0x290)

	// JT1 follows the port state
	m.mem.putInstructions(0x290, 0x56, 0xa0)
	m.ports.T1 = true
	step(t, mc, 2)
	test.ExpectEquality(t, mc.PC, 0x2a0)
}

func TestJumpBanks(t *testing.T) {
	m := newMachine()
	mc := m.mc

	// SEL MB1; JMP 0x345
	m.mem.putInstructions(0, 0xf5, 0x64, 0x45)
	step(t, mc, 1)
	step(t, mc, 2)
	test.ExpectEquality(t, mc.PC, 0xb45)

	// SEL MB0; JMP 0x100
	m.mem.putInstructions(0xb45, 0xe5, 0x24, 0x00)
	step(t, mc, 1)
	step(t, mc, 2)
	test.ExpectEquality(t, mc.PC, 0x100)
}

func TestJMPP(t *testing.T) {
	m := newMachine()
	mc := m.mc

	// JMPP @A; MOVP A,@A; MOVP3 A,@A
	m.mem.putInstructions(0x300, 0xb3)
	m.mem.putInstructions(0x305, 0x20)
	m.mem.putInstructions(0x320, 0xa3)
	m.mem.putInstructions(0x321, 0xe3)
	m.mem.putInstructions(0x310, 0x77)
	m.mem.putInstructions(0x377, 0x99)
	mc.PC = 0x300
	mc.A = 0x05
	step(t, mc, 2)
	test.ExpectEquality(t, mc.PC, 0x320)

	mc.A = 0x10
	step(t, mc, 2)
	test.ExpectEquality(t, mc.A, 0x77)
	step(t, mc, 2)
	test.ExpectEquality(t, mc.A, 0x99)
}

func TestPorts(t *testing.T) {
	m := newMachine()
	mc := m.mc

	// MOV A,#0x02; OUTL P1,A; ORL P1,#0x01; ANL P1,#0xfe; IN A,P2; INS A,BUS
	m.mem.putInstructions(0, 0x23, 0x02, 0x39, 0x89, 0x01, 0x99, 0xfe, 0x0a, 0x08)
	step(t, mc, 2)
	step(t, mc, 2)
	test.ExpectEquality(t, m.ports.P1, 0x02)
	step(t, mc, 2)
	test.ExpectEquality(t, m.ports.P1, 0x03)
	step(t, mc, 2)
	test.ExpectEquality(t, m.ports.P1, 0x02)

	// each write to P1 selects a bank
	test.DemandEquality(t, len(m.mem.banks), 3)
	test.ExpectEquality(t, m.mem.banks[0], 2)
	test.ExpectEquality(t, m.mem.banks[1], 3)
	test.ExpectEquality(t, m.mem.banks[2], 2)

	m.ports.P2 = 0x01
	step(t, mc, 2)
	test.ExpectEquality(t, m.input.scans, 1)
	test.ExpectEquality(t, mc.A, 0xf1)

	m.input.bus = 0x1b
	step(t, mc, 2)
	test.ExpectEquality(t, mc.A, 0x1b)
}

func TestMOVX(t *testing.T) {
	m := newMachine()
	mc := m.mc

	// MOV R0,#0xa3; MOV A,#0x42; MOVX @R0,A; CLR A; MOVX A,@R0
	m.mem.putInstructions(0, 0xb8, 0xa3, 0x23, 0x42, 0x90, 0x27, 0x80, 0x80)
	step(t, mc, 2)
	step(t, mc, 2)
	step(t, mc, 2)
	test.ExpectEquality(t, m.ext.data[0xa3], 0x42)
	step(t, mc, 1)
	step(t, mc, 2)
	test.ExpectEquality(t, mc.A, 0x42)

	// the accumulator is unchanged if nothing drives the bus
	m.ext.driven = false
	m.ext.data[0xa3] = 0x00
	step(t, mc, 2)
	test.ExpectEquality(t, mc.A, 0x42)
}

func TestExpander(t *testing.T) {
	m := newMachine()
	mc := m.mc

	// MOVD A,P4; MOVD P5,A; ORLD P6,A; ANLD P7,A; ENT0 CLK
	m.mem.putInstructions(0, 0x0c, 0x3d, 0x8e, 0x9f, 0x75)
	mc.A = 0x5a
	step(t, mc, 2)
	test.ExpectEquality(t, mc.A, 0x50)
	step(t, mc, 2)
	step(t, mc, 2)
	step(t, mc, 2)
	step(t, mc, 1)
	test.ExpectEquality(t, mc.PC, 5)
	test.ExpectEquality(t, mc.A, 0x50)
}

func TestDisassemble(t *testing.T) {
	m := newMachine()
	mc := m.mc

	m.mem.putInstructions(0, 0x23, 0x42, 0x94, 0x10, 0xc6, 0x20, 0x01)
	test.ExpectEquality(t, mc.Disassemble(0).Mnemonic, "MOV A,#0x42")
	test.ExpectEquality(t, mc.Disassemble(2).Mnemonic, "CALL 0x410")
	test.ExpectEquality(t, mc.Disassemble(4).Mnemonic, "JZ 0x20")
	test.ExpectEquality(t, mc.Disassemble(6).Mnemonic, "??? (0x01)")
	test.ExpectEquality(t, len(mc.Disassemble(4).Bytes), 2)
	test.ExpectEquality(t, mc.Disassemble(0).String(), "0x000: 23 42  MOV A,#0x42")

	// disassembly does not change the state of the CPU
	test.ExpectEquality(t, mc.PC, 0)
}
