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

package ports_test

import (
	"testing"

	"github.com/jetsetilly/gopherodyssey/hardware/ports"
	"github.com/jetsetilly/gopherodyssey/test"
)

func TestReset(t *testing.T) {
	p := ports.NewPorts()
	test.ExpectEquality(t, p.P1, 0xff)
	test.ExpectEquality(t, p.P2, 0xff)
	test.ExpectEquality(t, p.T1, true)
	test.ExpectEquality(t, p.Bank(), 3)

	p.P1 = 0x00
	p.P2 = 0x12
	p.T1 = false
	test.ExpectEquality(t, p.Bank(), 0)
	test.ExpectEquality(t, p.String(), "P1=0x00 P2=0x12 T1=false")

	p.Reset()
	test.ExpectEquality(t, p.String(), "P1=0xff P2=0xff T1=true")
}

func TestBank(t *testing.T) {
	p := ports.NewPorts()
	for b := 0; b < 4; b++ {
		p.P1 = 0xf0 | uint8(b)
		test.ExpectEquality(t, p.Bank(), b)
	}
}
