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

// Package vdc emulates the 8244 video display controller of the Odyssey².
//
// The VDC is a state machine over two counters: the cycle position within the
// scanline and the scanline within the frame. Each call to Step() advances the
// cycle counter by one. The console calls Step() a fixed number of times for
// every CPU cycle (see the specification package).
//
// The VDC signals the CPU through the IRQ interface: the external interrupt at
// the start of vertical blank (and optionally at the start of horizontal
// blank) and the event counter at the end of every visible horizontal blank.
// It also sets the T1 input in the shared ports during vertical blank.
//
// The picture is built one pixel at a time as the cycle counter passes across
// the visible part of the scanline. The objects that make up the picture are
// all described by the register file, which the CPU reads and writes through
// the MOVX bus. In order of priority, from lowest to highest:
//
//	background colour
//	grid
//	characters (12)
//	quads (4 groups of 4 characters)
//	sprites (4, sprite 0 has the highest priority)
//
// Every object belongs to a collision class. When an object is drawn over a
// pixel already holding another class, the overlap is recorded. The program
// selects the classes it is interested in by writing a mask to the COLLISION
// register and reads back the classes that have overlapped with them.
package vdc
