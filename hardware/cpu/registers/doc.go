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

// Package registers implements the program status word of the 8048. The other
// registers of the CPU are simple enough to be represented by native types.
//
// The status word is stored unpacked and is only packed into an 8-bit value
// when the program asks for it (MOV A,PSW and during interrupt or subroutine
// calls). Unpacking is done with Load() or with LoadNoSP(). The latter is used
// by RETR and leaves the stack pointer as it is.
package registers
