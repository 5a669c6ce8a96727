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

package debugger

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

type breakpoints struct {
	addresses map[uint16]bool
}

func newBreakpoints() *breakpoints {
	return &breakpoints{
		addresses: make(map[uint16]bool),
	}
}

// check implements the Breakpoints predicate of the hardware.Console type.
func (bp *breakpoints) check(pc uint16) bool {
	return bp.addresses[pc]
}

func (bp *breakpoints) add(address uint16) {
	bp.addresses[address] = true
}

func (bp *breakpoints) clear() {
	clear(bp.addresses)
}

// list returns the breakpoint addresses in order.
func (bp *breakpoints) list() []uint16 {
	l := make([]uint16, 0, len(bp.addresses))
	for a := range bp.addresses {
		l = append(l, a)
	}
	slices.Sort(l)
	return l
}

func (bp *breakpoints) String() string {
	if len(bp.addresses) == 0 {
		return "No breakpoints"
	}
	s := strings.Builder{}
	for i, a := range bp.list() {
		if i > 0 {
			s.WriteRune('\n')
		}
		s.WriteString(fmt.Sprintf("Breakpoint at 0x%02x", a))
	}
	return s.String()
}

// parseAddress accepts a hexadecimal number with or without the 0x prefix.
// The program counter is twelve bits wide.
func parseAddress(s string) (uint16, error) {
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	a, err := strconv.ParseUint(s, 16, 12)
	if err != nil {
		return 0, fmt.Errorf("invalid address")
	}
	return uint16(a), nil
}
