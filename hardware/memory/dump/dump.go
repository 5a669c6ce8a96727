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

// Package dump formats areas of memory for the debugging console.
package dump

import (
	"fmt"
	"io"
	"strings"
)

// Write the memory to the io.Writer. Sixteen bytes are written on each line,
// prefixed with the offset of the first byte. The two groups of eight bytes
// are separated by an extra space.
func Write(w io.Writer, mem []uint8) {
	s := strings.Builder{}
	for i, v := range mem {
		if i%16 == 0 {
			s.WriteString(fmt.Sprintf("0x%02x: ", i))
		}
		s.WriteString(fmt.Sprintf("%02x", v))
		switch {
		case (i+1)%16 == 0:
			s.WriteRune('\n')
		case (i+1)%8 == 0:
			s.WriteString("  ")
		default:
			s.WriteRune(' ')
		}
	}

	// incomplete final line
	if len(mem)%16 != 0 {
		s.WriteRune('\n')
	}

	io.WriteString(w, s.String())
}

// String returns the formatted memory as a string.
func String(mem []uint8) string {
	s := strings.Builder{}
	Write(&s, mem)
	return s.String()
}
