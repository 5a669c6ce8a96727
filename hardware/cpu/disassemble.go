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

package cpu

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherodyssey/hardware/cpu/instructions"
)

// Entry is a single disassembled instruction.
type Entry struct {
	Address  uint16
	Bytes    []uint8
	Mnemonic string
	Defn     *instructions.Definition
}

func (e Entry) String() string {
	b := strings.Builder{}
	for _, v := range e.Bytes {
		b.WriteString(fmt.Sprintf("%02x ", v))
	}
	return fmt.Sprintf("0x%03x: %-6s %s", e.Address, b.String(), e.Mnemonic)
}

// Disassemble the instruction at the address in the currently selected bank.
// The state of the CPU is not changed.
func (mc *CPU) Disassemble(address uint16) Entry {
	address &= pcMask
	opcode := mc.prog.Read(address)
	defn := mc.definitions[opcode]

	e := Entry{
		Address: address,
		Bytes:   []uint8{opcode},
		Defn:    defn,
	}

	m := defn.Mnemonic()
	if defn.Bytes == 2 {
		operand := mc.prog.Read((address + 1) & pcMask)
		e.Bytes = append(e.Bytes, operand)

		switch defn.Operator {
		case instructions.Jmp, instructions.Call:
			m = strings.Replace(m, "addr", fmt.Sprintf("0x%03x", uint16(defn.Index)<<8|uint16(operand)), 1)
		default:
			m = strings.Replace(m, "addr", fmt.Sprintf("0x%02x", operand), 1)
			m = strings.Replace(m, "#data", fmt.Sprintf("#0x%02x", operand), 1)
		}
	}

	if !defn.IsLegal() {
		m = fmt.Sprintf("??? (0x%02x)", opcode)
	}

	e.Mnemonic = m
	return e
}
