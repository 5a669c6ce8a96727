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

// Package cartridgeloader is used to specify the data that is to be attached
// to the emulated console.
//
// A cartridge on its own is not enough to start the console. The program
// store also needs the 1k BIOS image, which is specified alongside the
// cartridge file:
//
//	cl := cartridgeloader.NewLoader("roms/Munchkin.bin", "o2rom.bin")
//
// When the cartridge is ready to be loaded into the emulator, the Load()
// function should be used. The Load() function handles loading of data from
// different sources. Currently local files and data over HTTP are supported,
// for both the cartridge and the BIOS.
package cartridgeloader
