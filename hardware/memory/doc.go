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

// Package memory implements the external storage of the console and the
// router that connects it to the CPU.
//
// The CPU's MOVX instructions address a 256 byte window. What is behind the
// window depends on the bits of port 1:
//
//	bit 3 low, bit 4 high, bit 6 low                -> VDC register file (read)
//	bit 3 low, bit 4 low, bit 6 high                -> external RAM (read)
//	bit 3 high, bit 4 low                           -> external RAM (read)
//	port 1 is zero                                  -> junk value (read)
//	bit 3 low                                       -> VDC register file (write)
//	bit 4 low and bit 6 low                         -> external RAM (write)
//
// A write may be seen by both the VDC and the external RAM, or by neither.
// When a read matches no rule the bus is not driven and the CPU's accumulator
// keeps its value.
//
// The Memory type also holds the cartridge so that the console has one
// place to find every addressable area. The CPU reads the program store
// through the cartridge directly.
package memory
