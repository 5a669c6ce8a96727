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

// PortID identifies the device an event is intended for.
type PortID int

// List of valid PortID values.
const (
	PortKeyboard PortID = iota
	PortStick0
	PortStick1
)

func (id PortID) String() string {
	switch id {
	case PortKeyboard:
		return "keyboard"
	case PortStick0:
		return "stick 0"
	case PortStick1:
		return "stick 1"
	}
	return "unknown port"
}

// Event describes a change of input state.
type Event int

// List of valid Event values.
const (
	NoEvent Event = iota

	// keyboard. event data must be of type Key
	KeyDown
	KeyUp

	// joystick. no event data
	Fire
	NoFire
	Up
	NoUp
	Down
	NoDown
	Left
	NoLeft
	Right
	NoRight
)

func (ev Event) String() string {
	switch ev {
	case NoEvent:
		return "no event"
	case KeyDown:
		return "key down"
	case KeyUp:
		return "key up"
	case Fire:
		return "fire"
	case NoFire:
		return "no fire"
	case Up:
		return "up"
	case NoUp:
		return "no up"
	case Down:
		return "down"
	case NoDown:
		return "no down"
	case Left:
		return "left"
	case NoLeft:
		return "no left"
	case Right:
		return "right"
	case NoRight:
		return "no right"
	}
	return "unknown event"
}

// EventData is the value associated with an event.
type EventData any
