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

package peripherals

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherodyssey/hardware/ports"
)

// Direction is a bit on the joystick bus.
type Direction int

// List of valid Direction values. The value is the bit number on the bus.
const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
	DirAction
)

// the value of the joystick bus when nothing is pressed. the bits are active
// low
const busIdle = 0x1f

// NumSticks is the number of joysticks attached to the console.
const NumSticks = 2

// Joysticks are the two joysticks of the console.
type Joysticks struct {
	ports *ports.Ports
	buses [NumSticks]uint8
}

// NewJoysticks is the preferred method of initialisation for the Joysticks
// type.
func NewJoysticks(p *ports.Ports) *Joysticks {
	joy := &Joysticks{
		ports: p,
	}
	joy.Reset()
	return joy
}

func (joy *Joysticks) String() string {
	s := strings.Builder{}
	for i, b := range joy.buses {
		if i > 0 {
			s.WriteString(" ")
		}
		s.WriteString(fmt.Sprintf("stick %d: %05b", i, b))
	}
	return s.String()
}

// Reset both joysticks to the idle position.
func (joy *Joysticks) Reset() {
	for i := range joy.buses {
		joy.buses[i] = busIdle
	}
}

// Set the state of a direction (or the action button) of a stick.
func (joy *Joysticks) Set(stick int, dir Direction, pressed bool) error {
	if stick < 0 || stick >= NumSticks {
		return fmt.Errorf("joysticks: no stick %d", stick)
	}
	if dir < DirUp || dir > DirAction {
		return fmt.Errorf("joysticks: unrecognised direction (%d)", dir)
	}

	if pressed {
		joy.buses[stick] &^= 1 << dir
	} else {
		joy.buses[stick] |= 1 << dir
	}

	return nil
}

// Stick returns the raw bus value of the stick.
func (joy *Joysticks) Stick(stick int) uint8 {
	return joy.buses[stick%NumSticks]
}

// Bus returns the value on the data bus. The sticks only drive the bus when
// port 1 bit 3 and port 2 bit 4 are both high. The stick is selected by the
// lower bits of port 2.
func (joy *Joysticks) Bus() uint8 {
	if joy.ports.P1&ports.P1VDCSelect == 0 || joy.ports.P2&ports.P2KeyNotDetected == 0 {
		return 0
	}

	sel := int(joy.ports.P2 & ports.P2Select)
	if sel < NumSticks {
		return joy.buses[sel]
	}

	return 0
}
