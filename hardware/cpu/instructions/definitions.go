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

package instructions

import "sync"

var definitions []*Definition
var definitionsOnce sync.Once

// GetDefinitions returns the table of 256 opcode definitions. The table is
// built on first use and is shared by all callers. It should not be modified.
func GetDefinitions() []*Definition {
	definitionsOnce.Do(func() {
		definitions = buildDefinitions()
	})
	return definitions
}

// table is used to build the list of definitions.
type table []*Definition

func (tb table) set(opcode uint8, operator Operator, dest Operand, src Operand, index int, cycles int) {
	bytes := 1
	if src == Immediate || src == Address {
		bytes = 2
	}
	tb[opcode] = &Definition{
		OpCode:   opcode,
		Operator: operator,
		Dest:     dest,
		Src:      src,
		Index:    index,
		Bytes:    bytes,
		Cycles:   cycles,
	}
}

// registers sets the eight opcodes of a register family starting at base.
func (tb table) registers(base uint8, operator Operator, dest Operand, src Operand, cycles int) {
	for n := 0; n < 8; n++ {
		tb.set(base+uint8(n), operator, dest, src, n, cycles)
	}
}

// indirect sets the two opcodes of an indirect family starting at base.
func (tb table) indirect(base uint8, operator Operator, dest Operand, src Operand, cycles int) {
	for n := 0; n < 2; n++ {
		tb.set(base+uint8(n), operator, dest, src, n, cycles)
	}
}

// simple sets an opcode with no operands.
func (tb table) simple(opcode uint8, operator Operator, cycles int) {
	tb.set(opcode, operator, None, None, 0, cycles)
}

// jump sets a conditional jump opcode.
func (tb table) jump(opcode uint8, operator Operator) {
	tb.set(opcode, operator, None, Address, 0, 2)
}

func buildDefinitions() []*Definition {
	tb := make(table, 256)

	// accumulator arithmetic and logic
	tb.registers(0x68, Add, Accumulator, Register, 1)
	tb.indirect(0x60, Add, Accumulator, Indirect, 1)
	tb.set(0x03, Add, Accumulator, Immediate, 0, 2)
	tb.registers(0x78, Addc, Accumulator, Register, 1)
	tb.indirect(0x70, Addc, Accumulator, Indirect, 1)
	tb.set(0x13, Addc, Accumulator, Immediate, 0, 2)
	tb.registers(0x58, Anl, Accumulator, Register, 1)
	tb.indirect(0x50, Anl, Accumulator, Indirect, 1)
	tb.set(0x53, Anl, Accumulator, Immediate, 0, 2)
	tb.registers(0x48, Orl, Accumulator, Register, 1)
	tb.indirect(0x40, Orl, Accumulator, Indirect, 1)
	tb.set(0x43, Orl, Accumulator, Immediate, 0, 2)
	tb.registers(0xd8, Xrl, Accumulator, Register, 1)
	tb.indirect(0xd0, Xrl, Accumulator, Indirect, 1)
	tb.set(0xd3, Xrl, Accumulator, Immediate, 0, 2)

	tb.set(0x17, Inc, Accumulator, None, 0, 1)
	tb.registers(0x18, Inc, Register, None, 1)
	tb.indirect(0x10, Inc, Indirect, None, 1)
	tb.set(0x07, Dec, Accumulator, None, 0, 1)
	tb.registers(0xc8, Dec, Register, None, 1)

	tb.set(0x27, Clr, Accumulator, None, 0, 1)
	tb.set(0x37, Cpl, Accumulator, None, 0, 1)
	tb.set(0x57, Da, Accumulator, None, 0, 1)
	tb.set(0x47, Swap, Accumulator, None, 0, 1)
	tb.set(0xe7, Rl, Accumulator, None, 0, 1)
	tb.set(0xf7, Rlc, Accumulator, None, 0, 1)
	tb.set(0x77, Rr, Accumulator, None, 0, 1)
	tb.set(0x67, Rrc, Accumulator, None, 0, 1)

	// data moves
	tb.registers(0xf8, Mov, Accumulator, Register, 1)
	tb.indirect(0xf0, Mov, Accumulator, Indirect, 1)
	tb.set(0x23, Mov, Accumulator, Immediate, 0, 2)
	tb.registers(0xa8, Mov, Register, Accumulator, 1)
	tb.indirect(0xa0, Mov, Indirect, Accumulator, 1)
	tb.registers(0xb8, Mov, Register, Immediate, 2)
	tb.indirect(0xb0, Mov, Indirect, Immediate, 2)
	tb.set(0xc7, Mov, Accumulator, PSW, 0, 1)
	tb.set(0xd7, Mov, PSW, Accumulator, 0, 1)
	tb.set(0x42, Mov, Accumulator, Timer, 0, 1)
	tb.set(0x62, Mov, Timer, Accumulator, 0, 1)
	tb.registers(0x28, Xch, Accumulator, Register, 1)
	tb.indirect(0x20, Xch, Accumulator, Indirect, 1)
	tb.indirect(0x30, Xchd, Accumulator, Indirect, 1)
	tb.indirect(0x80, Movx, Accumulator, Indirect, 2)
	tb.indirect(0x90, Movx, Indirect, Accumulator, 2)
	tb.set(0xa3, Movp, Accumulator, IndirectA, 0, 2)
	tb.set(0xe3, Movp3, Accumulator, IndirectA, 0, 2)

	// flags
	tb.set(0x97, Clr, Carry, None, 0, 1)
	tb.set(0xa7, Cpl, Carry, None, 0, 1)
	tb.set(0x85, Clr, Flag0, None, 0, 1)
	tb.set(0x95, Cpl, Flag0, None, 0, 1)
	tb.set(0xa5, Clr, Flag1, None, 0, 1)
	tb.set(0xb5, Cpl, Flag1, None, 0, 1)

	// flow control. JMP and CALL take the page number from the top three
	// bits of the opcode
	for page := 0; page < 8; page++ {
		tb.set(uint8(page<<5)|0x04, Jmp, None, Address, page, 2)
		tb.set(uint8(page<<5)|0x14, Call, None, Address, page, 2)
		tb.set(uint8(page<<5)|0x12, Jb, None, Address, page, 2)
	}
	tb.set(0xb3, Jmpp, None, IndirectA, 0, 2)
	tb.simple(0x83, Ret, 2)
	tb.simple(0x93, Retr, 2)
	tb.registers(0xe8, Djnz, Register, Address, 2)
	tb.jump(0xf6, Jc)
	tb.jump(0xe6, Jnc)
	tb.jump(0xc6, Jz)
	tb.jump(0x96, Jnz)
	tb.jump(0x36, Jt0)
	tb.jump(0x26, Jnt0)
	tb.jump(0x56, Jt1)
	tb.jump(0x46, Jnt1)
	tb.jump(0xb6, Jf0)
	tb.jump(0x76, Jf1)
	tb.jump(0x16, Jtf)
	tb.jump(0x86, Jni)

	// interrupts and timer
	tb.simple(0x05, EnI, 1)
	tb.simple(0x15, DisI, 1)
	tb.simple(0x25, EnTcnti, 1)
	tb.simple(0x35, DisTcnti, 1)
	tb.simple(0x45, StrtCnt, 1)
	tb.simple(0x55, StrtT, 1)
	tb.simple(0x65, StopTcnt, 1)
	tb.simple(0x75, Ent0Clk, 1)

	// bank selection
	tb.simple(0xc5, SelRb0, 1)
	tb.simple(0xd5, SelRb1, 1)
	tb.simple(0xe5, SelMb0, 1)
	tb.simple(0xf5, SelMb1, 1)

	// ports
	tb.set(0x09, In, Accumulator, Port, 1, 2)
	tb.set(0x0a, In, Accumulator, Port, 2, 2)
	tb.set(0x08, Ins, Accumulator, Bus, 0, 2)
	tb.set(0x02, Outl, Bus, Accumulator, 0, 2)
	tb.set(0x39, Outl, Port, Accumulator, 1, 2)
	tb.set(0x3a, Outl, Port, Accumulator, 2, 2)
	tb.set(0x88, Orl, Bus, Immediate, 0, 2)
	tb.set(0x89, Orl, Port, Immediate, 1, 2)
	tb.set(0x8a, Orl, Port, Immediate, 2, 2)
	tb.set(0x98, Anl, Bus, Immediate, 0, 2)
	tb.set(0x99, Anl, Port, Immediate, 1, 2)
	tb.set(0x9a, Anl, Port, Immediate, 2, 2)

	// expander ports P4 to P7
	for p := 0; p < 4; p++ {
		tb.set(0x0c+uint8(p), Movd, Accumulator, Port, 4+p, 2)
		tb.set(0x3c+uint8(p), Movd, Port, Accumulator, 4+p, 2)
		tb.set(0x8c+uint8(p), Orld, Port, Accumulator, 4+p, 2)
		tb.set(0x9c+uint8(p), Anld, Port, Accumulator, 4+p, 2)
	}

	tb.simple(0x00, Nop, 1)

	// remaining entries are illegal
	for i := range tb {
		if tb[i] == nil {
			tb[i] = &Definition{
				OpCode:   uint8(i),
				Operator: Illegal,
				Bytes:    1,
				Cycles:   1,
			}
		}
	}

	return tb
}
