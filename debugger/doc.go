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

// Package debugger runs the emulation in one of two modes. In play mode the
// console runs at full speed with input from the GUI. In debugger mode the
// emulation is halted and controlled from a terminal, with commands to step
// the CPU, set breakpoints and inspect the state of the console.
//
// The debugger moves from play mode to debugger mode when a breakpoint is
// reached, when the CPU executes an illegal opcode (if the IllegalBreak
// preference is set) or when the user requests it. The continue command
// returns to play mode.
package debugger
