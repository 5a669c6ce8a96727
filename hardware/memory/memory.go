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

package memory

import (
	"errors"
	"fmt"

	"github.com/jetsetilly/gopherodyssey/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherodyssey/hardware/ports"
	"github.com/jetsetilly/gopherodyssey/hardware/preferences"
)

// VDCBus is the view of the VDC register file from the external bus.
type VDCBus interface {
	Read(offset uint8) uint8
	Write(offset uint8, data uint8)
	Peek(offset uint8) uint8
}

// Junk is the source of the values read from the external bus when port 1 is
// zero.
type Junk interface {
	Byte() uint8
}

// Area identifies an addressable area for the Peek() and Poke() functions.
type Area int

// List of valid Area values.
const (
	AreaVDC Area = iota
	AreaExtRAM
)

func (a Area) String() string {
	switch a {
	case AreaVDC:
		return "VDC"
	case AreaExtRAM:
		return "ExtRAM"
	}
	return "unknown area"
}

// ErrNoVDC is returned by Peek() and Poke() if no VDC has been attached.
var ErrNoVDC = errors.New("memory: no VDC attached")

// Memory is the external storage of the console.
type Memory struct {
	ports *ports.Ports
	junk  Junk

	Cart   *cartridge.Cartridge
	ExtRAM *ExtRAM
	VDC    VDCBus
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The VDC is attached with the Plumb() function.
func NewMemory(prefs *preferences.Preferences, p *ports.Ports, junk Junk) *Memory {
	return &Memory{
		ports:  p,
		junk:   junk,
		Cart:   cartridge.NewCartridge(),
		ExtRAM: NewExtRAM(prefs),
	}
}

// Plumb the VDC into the external bus.
func (mem *Memory) Plumb(vdc VDCBus) {
	mem.VDC = vdc
}

// Reset the external RAM and the bank selection of the cartridge.
func (mem *Memory) Reset() {
	mem.ExtRAM.Reset()
	mem.Cart.SelectBank(mem.ports.P1)
}

func (mem *Memory) bitLow(mask uint8) bool {
	return mem.ports.P1&mask == 0
}

func (mem *Memory) bitHigh(mask uint8) bool {
	return mem.ports.P1&mask == mask
}

func (mem *Memory) routeVDC() bool {
	return mem.bitLow(ports.P1VDCSelect) && mem.bitHigh(ports.P1ExtRAMSelect) && mem.bitLow(ports.P1CopyMode)
}

func (mem *Memory) routeExtRAM() bool {
	return (mem.bitLow(ports.P1VDCSelect) && mem.bitLow(ports.P1ExtRAMSelect) && mem.bitHigh(ports.P1CopyMode)) ||
		(mem.bitHigh(ports.P1VDCSelect) && mem.bitLow(ports.P1ExtRAMSelect))
}

// Read implements the cpubus.ExternalMemory interface. The boolean return
// value is false if nothing is driving the bus.
func (mem *Memory) Read(offset uint8) (uint8, bool) {
	switch {
	case mem.routeVDC():
		if mem.VDC == nil {
			return 0, false
		}
		return mem.VDC.Read(offset), true
	case mem.routeExtRAM():
		return mem.ExtRAM.Read(offset), true
	case mem.ports.P1 == 0:
		if mem.junk == nil {
			return 0, true
		}
		return mem.junk.Byte(), true
	}
	return 0, false
}

// Write implements the cpubus.ExternalMemory interface.
func (mem *Memory) Write(offset uint8, data uint8) {
	if mem.bitLow(ports.P1VDCSelect) && mem.VDC != nil {
		mem.VDC.Write(offset, data)
	}
	if mem.bitLow(ports.P1ExtRAMSelect) && mem.bitLow(ports.P1CopyMode) {
		mem.ExtRAM.Write(offset, data)
	}
}

// Peek returns the value in the area at the offset without triggering any
// side effects.
func (mem *Memory) Peek(area Area, offset uint8) (uint8, error) {
	switch area {
	case AreaVDC:
		if mem.VDC == nil {
			return 0, ErrNoVDC
		}
		return mem.VDC.Peek(offset), nil
	case AreaExtRAM:
		return mem.ExtRAM.RAM[offset], nil
	}
	return 0, fmt.Errorf("memory: %v", area)
}

// Poke sets the value in the area at the offset. Writes to the VDC register
// file are subject to the same restrictions as writes from the CPU.
func (mem *Memory) Poke(area Area, offset uint8, data uint8) error {
	switch area {
	case AreaVDC:
		if mem.VDC == nil {
			return ErrNoVDC
		}
		mem.VDC.Write(offset, data)
		return nil
	case AreaExtRAM:
		mem.ExtRAM.RAM[offset] = data
		return nil
	}
	return fmt.Errorf("memory: %v", area)
}
