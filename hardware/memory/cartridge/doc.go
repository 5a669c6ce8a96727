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

// Package cartridge implements the bank-switched program store of the
// Odyssey². The program store is made up of four banks of 4096 bytes. The
// 1024 byte BIOS sits at the bottom of every bank and the cartridge ROM is
// arranged in the remaining 3072 bytes according to its size.
//
// The bank is selected by the low two bits of P1. The CPU calls SelectBank()
// with the new P1 value whenever it writes to the port.
package cartridge
