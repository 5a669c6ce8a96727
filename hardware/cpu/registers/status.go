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

package registers

import (
	"fmt"
	"strings"
)

// the number of bytes in the stack
const StackSize = 16

// StatusWord is the program status word (PSW) of the 8048.
type StatusWord struct {
	Carry      bool
	AuxCarry   bool
	F0         bool
	BankSelect bool

	// the stack pointer counts bytes and is always in the range 0 to 15. in
	// the packed form it is stored as the number of two byte stack entries
	SP uint8
}

// Label returns the canonical name for the status word.
func (sw StatusWord) Label() string {
	return "PSW"
}

func (sw StatusWord) String() string {
	s := strings.Builder{}

	if sw.Carry {
		s.WriteRune('C')
	} else {
		s.WriteRune('c')
	}
	if sw.AuxCarry {
		s.WriteRune('A')
	} else {
		s.WriteRune('a')
	}
	if sw.F0 {
		s.WriteRune('F')
	} else {
		s.WriteRune('f')
	}
	if sw.BankSelect {
		s.WriteRune('B')
	} else {
		s.WriteRune('b')
	}

	s.WriteString(fmt.Sprintf(" SP=%d", sw.SP>>1))

	return s.String()
}

// Reset status word to initial state.
func (sw *StatusWord) Reset() {
	*sw = StatusWord{}
}

// Value packs the status word into an 8-bit value.
func (sw StatusWord) Value() uint8 {
	var v uint8

	if sw.Carry {
		v |= 0x80
	}
	if sw.AuxCarry {
		v |= 0x40
	}
	if sw.F0 {
		v |= 0x20
	}
	if sw.BankSelect {
		v |= 0x10
	}

	// unused bit is always 1
	v |= 0x08

	v |= (sw.SP >> 1) & 0x07

	return v
}

// Load unpacks an 8-bit value into the status word, including the stack
// pointer.
func (sw *StatusWord) Load(v uint8) {
	sw.LoadNoSP(v)
	sw.SP = (v & 0x07) << 1
}

// LoadNoSP unpacks the flags from an 8-bit value. The stack pointer is left
// unchanged.
func (sw *StatusWord) LoadNoSP(v uint8) {
	sw.Carry = v&0x80 == 0x80
	sw.AuxCarry = v&0x40 == 0x40
	sw.F0 = v&0x20 == 0x20
	sw.BankSelect = v&0x10 == 0x10
}
