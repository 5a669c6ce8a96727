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

// Package hardware is the base package for the Odyssey² emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The Console type is the root of the emulation and contains external
// references to all the console sub-systems. From here, the emulation can
// either be started to run continuously (with a callback to check for
// continuation) or it can be stepped one instruction or one frame at a time.
//
// The CPU and the VDC are not clocked together. After every CPU instruction
// the VDC is stepped a fixed number of times for every machine cycle the
// instruction took. Any interrupt raised by the VDC during those steps is
// seen by the CPU before the next instruction is fetched.
package hardware
