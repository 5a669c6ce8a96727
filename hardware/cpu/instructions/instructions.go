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

import (
	"fmt"
	"strings"
)

// Definition defines an opcode.
type Definition struct {
	OpCode   uint8
	Operator Operator
	Dest     Operand
	Src      Operand

	// Index is the register number for Register and Indirect operands, the
	// port number for Port operands, the bit number for the JB instruction and
	// the page number for JMP and CALL
	Index int

	Bytes  int
	Cycles int
}

func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s (%d bytes) (%d cycles)", defn.OpCode, defn.Mnemonic(), defn.Bytes, defn.Cycles)
}

// Mnemonic returns the assembler form of the instruction with place holders
// for any data taken from the instruction stream.
func (defn Definition) Mnemonic() string {
	s := strings.Builder{}
	s.WriteString(defn.Operator.String())

	if defn.Operator == Jb {
		s.WriteString(fmt.Sprintf("%d", defn.Index))
	}

	dest := defn.operandText(defn.Dest)
	src := defn.operandText(defn.Src)
	if dest != "" {
		s.WriteRune(' ')
		s.WriteString(dest)
		if src != "" {
			s.WriteRune(',')
			s.WriteString(src)
		}
	} else if src != "" {
		s.WriteRune(' ')
		s.WriteString(src)
	}

	return s.String()
}

func (defn Definition) operandText(o Operand) string {
	switch o {
	case Accumulator:
		return "A"
	case Register:
		return fmt.Sprintf("R%d", defn.Index)
	case Indirect:
		return fmt.Sprintf("@R%d", defn.Index)
	case Immediate:
		return "#data"
	case Address:
		return "addr"
	case Timer:
		return "T"
	case PSW:
		return "PSW"
	case Port:
		return fmt.Sprintf("P%d", defn.Index)
	case Bus:
		return "BUS"
	case Carry:
		return "C"
	case Flag0:
		return "F0"
	case Flag1:
		return "F1"
	case IndirectA:
		return "@A"
	}
	return ""
}

// IsLegal returns false if the opcode has no instruction assigned to it.
func (defn Definition) IsLegal() bool {
	return defn.Operator != Illegal
}
