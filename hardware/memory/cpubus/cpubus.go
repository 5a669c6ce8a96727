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

// Package cpubus defines the interfaces through which the CPU reaches the
// rest of the console. The CPU knows nothing about the program store, the
// external bus or the input peripherals other than what is listed here.
package cpubus

// ProgramMemory is the bank-switched program store. Addresses are masked to
// the 4096 byte bank by the implementation.
//
// SelectBank is called with the new value of P1 whenever the CPU writes to the
// port. The implementation decides which bits of P1 are significant.
type ProgramMemory interface {
	Read(address uint16) uint8
	SelectBank(p1 uint8)
}

// ExternalMemory is the MOVX bus. The boolean result of Read is false when
// nothing drives the bus, in which case the CPU leaves the accumulator
// unchanged.
type ExternalMemory interface {
	Read(offset uint8) (uint8, bool)
	Write(offset uint8, data uint8)
}

// Input is the input peripheral collection as seen by the CPU. ScanKeyboard
// updates P2 with the state of the keyboard row selected by P2. JoystickBus
// returns the value read by the INS instruction.
type Input interface {
	ScanKeyboard()
	JoystickBus() uint8
}
