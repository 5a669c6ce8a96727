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

// Package ports is the machine context shared by the CPU, the VDC and the
// input peripherals. The two 8-bit ports of the 8048 and the T1 input line are
// the only channels through which the components of the console communicate
// apart from the MOVX bus and the two interrupt signals.
//
// There is exactly one Ports instance per console. It is created with the
// console and passed by reference to every component that needs it.
package ports

import "fmt"

// Meaning of P1 bits. Bits that are active low are named for what happens
// when the bit is clear.
const (
	// the two bits select one of the four program banks
	P1BankSelect = 0x03

	// when set the keyboard is not scanned into P2
	P1KeyboardDisable = 0x04

	// active low chip select for the VDC
	P1VDCSelect = 0x08

	// active low chip select for the external RAM
	P1ExtRAMSelect = 0x10

	// copy mode. MOVX reads come from the external RAM and writes go to the
	// VDC when set in combination with the select lines
	P1CopyMode = 0x40

	// background luminance
	P1Luminance = 0x80
)

// Meaning of P2 bits.
const (
	// the low three bits select the keyboard row or the joystick
	P2Select = 0x07

	// when clear a pressed key has been detected. also enables the joystick
	// bus when set
	P2KeyNotDetected = 0x10

	// the column of the pressed key
	P2KeyColumn = 0xe0
)

// Ports holds the shared port state of the console.
type Ports struct {
	P1 uint8
	P2 uint8

	// the T1 input. set by the VDC during vertical blank
	T1 bool
}

// NewPorts is the preferred method of initialisation for the Ports type.
func NewPorts() *Ports {
	p := &Ports{}
	p.Reset()
	return p
}

// Reset the ports to their power-on state.
func (p *Ports) Reset() {
	p.P1 = 0xff
	p.P2 = 0xff
	p.T1 = true
}

func (p *Ports) String() string {
	return fmt.Sprintf("P1=0x%02x P2=0x%02x T1=%v", p.P1, p.P2, p.T1)
}

// Bank returns the program bank selected by P1.
func (p *Ports) Bank() int {
	return int(p.P1 & P1BankSelect)
}
