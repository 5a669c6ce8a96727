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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/gopherodyssey/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherodyssey/test"
)

func TestTableSize(t *testing.T) {
	defs := instructions.GetDefinitions()
	test.DemandEquality(t, len(defs), 256)

	var legal int
	for i, d := range defs {
		test.ExpectEquality(t, d.OpCode, uint8(i))
		if d.IsLegal() {
			legal++
		}
		test.ExpectSuccess(t, d.Cycles == 1 || d.Cycles == 2, d.OpCode)
		test.ExpectSuccess(t, d.Bytes == 1 || d.Bytes == 2, d.OpCode)
	}
	test.ExpectEquality(t, legal, 230)
}

func TestIllegalOpcodes(t *testing.T) {
	defs := instructions.GetDefinitions()
	illegal := []uint8{0x01, 0x06, 0x0b, 0x22, 0x33, 0x38, 0x3b, 0x63, 0x66,
		0x73, 0x82, 0x87, 0x8b, 0x9b, 0xa2, 0xa6, 0xb7, 0xc0, 0xc1, 0xc2, 0xc3,
		0xd6, 0xe0, 0xe1, 0xe2, 0xf3}
	for _, o := range illegal {
		test.ExpectEquality(t, defs[o].Operator, instructions.Illegal, o)
		test.ExpectEquality(t, defs[o].Cycles, 1, o)
	}
}

func TestMnemonics(t *testing.T) {
	defs := instructions.GetDefinitions()
	test.ExpectEquality(t, defs[0x00].Mnemonic(), "NOP")
	test.ExpectEquality(t, defs[0x6b].Mnemonic(), "ADD A,R3")
	test.ExpectEquality(t, defs[0x61].Mnemonic(), "ADD A,@R1")
	test.ExpectEquality(t, defs[0x03].Mnemonic(), "ADD A,#data")
	test.ExpectEquality(t, defs[0xb8].Mnemonic(), "MOV R0,#data")
	test.ExpectEquality(t, defs[0x72].Mnemonic(), "JB3 addr")
	test.ExpectEquality(t, defs[0xe4].Mnemonic(), "JMP addr")
	test.ExpectEquality(t, defs[0xed].Mnemonic(), "DJNZ R5,addr")
	test.ExpectEquality(t, defs[0x39].Mnemonic(), "OUTL P1,A")
	test.ExpectEquality(t, defs[0x0e].Mnemonic(), "MOVD A,P6")
	test.ExpectEquality(t, defs[0x25].Mnemonic(), "EN TCNTI")
	test.ExpectEquality(t, defs[0xa3].Mnemonic(), "MOVP A,@A")
	test.ExpectEquality(t, defs[0x97].Mnemonic(), "CLR C")
	test.ExpectEquality(t, defs[0xd7].Mnemonic(), "MOV PSW,A")
	test.ExpectEquality(t, defs[0x22].Mnemonic(), "???")
}

func TestCycles(t *testing.T) {
	defs := instructions.GetDefinitions()

	// immediate forms
	test.ExpectEquality(t, defs[0x03].Cycles, 2)
	test.ExpectEquality(t, defs[0x23].Cycles, 2)
	test.ExpectEquality(t, defs[0xb9].Cycles, 2)

	// jumps and calls
	for _, d := range defs {
		if d.Operator.IsJump() {
			test.ExpectEquality(t, d.Cycles, 2, d.Mnemonic())
		}
	}

	// single cycle register operations
	test.ExpectEquality(t, defs[0x68].Cycles, 1)
	test.ExpectEquality(t, defs[0xc5].Cycles, 1)
	test.ExpectEquality(t, defs[0x57].Cycles, 1)
}
