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
	"github.com/jetsetilly/gopherodyssey/hardware/memory/dump"
	"github.com/jetsetilly/gopherodyssey/hardware/preferences"
)

// ExtRAMSize is the size of the external RAM.
const ExtRAMSize = 256

// ExtRAM is the RAM chip on the external bus.
type ExtRAM struct {
	prefs *preferences.Preferences
	RAM   [ExtRAMSize]uint8
}

// NewExtRAM is the preferred method of initialisation for the ExtRAM type.
// The prefs argument can be nil.
func NewExtRAM(prefs *preferences.Preferences) *ExtRAM {
	ram := &ExtRAM{
		prefs: prefs,
	}
	ram.Reset()
	return ram
}

// Snapshot creates a copy of the ExtRAM in its current state.
func (ram *ExtRAM) Snapshot() *ExtRAM {
	n := *ram
	return &n
}

// Reset the contents of the RAM. If the RandomState preference is set the RAM
// is filled with random values, otherwise it is zeroed.
func (ram *ExtRAM) Reset() {
	for i := range ram.RAM {
		if ram.prefs != nil && ram.prefs.RandomState.Get().(bool) {
			ram.RAM[i] = uint8(ram.prefs.RandSrc.Intn(0x100))
		} else {
			ram.RAM[i] = 0
		}
	}
}

func (ram *ExtRAM) String() string {
	return dump.String(ram.RAM[:])
}

// Read the value at offset.
func (ram *ExtRAM) Read(offset uint8) uint8 {
	return ram.RAM[offset]
}

// Write data to offset.
func (ram *ExtRAM) Write(offset uint8, data uint8) {
	ram.RAM[offset] = data
}
