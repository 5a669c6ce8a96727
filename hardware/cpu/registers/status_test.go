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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/gopherodyssey/hardware/cpu/registers"
	"github.com/jetsetilly/gopherodyssey/test"
)

func TestStatusPacking(t *testing.T) {
	var sw registers.StatusWord

	// unused bit is always set
	test.ExpectEquality(t, sw.Value(), 0x08)
	test.ExpectEquality(t, sw.String(), "cafb SP=0")

	sw.Carry = true
	sw.BankSelect = true
	sw.SP = 6
	test.ExpectEquality(t, sw.Value(), 0x9b)
	test.ExpectEquality(t, sw.String(), "CafB SP=3")

	sw.Reset()
	sw.Load(0x67)
	test.ExpectEquality(t, sw.Carry, false)
	test.ExpectEquality(t, sw.AuxCarry, true)
	test.ExpectEquality(t, sw.F0, true)
	test.ExpectEquality(t, sw.BankSelect, false)
	test.ExpectEquality(t, sw.SP, 14)
	test.ExpectEquality(t, sw.Value(), 0x6f)
}

func TestStatusRoundTrip(t *testing.T) {
	var sw registers.StatusWord
	for v := 0; v < 256; v++ {
		sw.Load(uint8(v))
		test.ExpectEquality(t, sw.Value(), uint8(v)|0x08)
	}
}

func TestStatusLoadNoSP(t *testing.T) {
	var sw registers.StatusWord
	sw.SP = 10
	sw.LoadNoSP(0x87)
	test.ExpectEquality(t, sw.Carry, true)
	test.ExpectEquality(t, sw.AuxCarry, false)
	test.ExpectEquality(t, sw.SP, 10)
	test.ExpectEquality(t, sw.Label(), "PSW")
}
