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

// Package instructions defines the instruction set of the 8048. Every one of
// the 256 opcodes has a Definition, including the opcodes that are not
// assigned an instruction by the data sheet. Those have an Operator of
// Illegal.
//
// A Definition describes what an opcode does in terms of an operator and up to
// two operands, rather than with a handler function. The CPU switches on the
// operator and uses the operand and index fields to select the data to work
// with. The eight near identical opcodes of a register family therefore share
// a single implementation.
package instructions
