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

	"github.com/jetsetilly/gopherodyssey/hardware/ports"
)

// Peripherals connects the keyboard and joysticks to the CPU. It satisfies
// the cpubus.Input interface.
type Peripherals struct {
	Keyboard  *Keyboard
	Joysticks *Joysticks
}

// NewPeripherals is the preferred method of initialisation for the
// Peripherals type.
func NewPeripherals(p *ports.Ports) *Peripherals {
	return &Peripherals{
		Keyboard:  NewKeyboard(p),
		Joysticks: NewJoysticks(p),
	}
}

func (per *Peripherals) String() string {
	return fmt.Sprintf("%s %s", per.Keyboard, per.Joysticks)
}

// Reset both devices.
func (per *Peripherals) Reset() {
	per.Keyboard.Reset()
	per.Joysticks.Reset()
}

// ScanKeyboard implements the cpubus.Input interface.
func (per *Peripherals) ScanKeyboard() {
	per.Keyboard.Scan()
}

// JoystickBus implements the cpubus.Input interface.
func (per *Peripherals) JoystickBus() uint8 {
	return per.Joysticks.Bus()
}

var stickEvents = map[Event]struct {
	dir     Direction
	pressed bool
}{
	Fire:    {DirAction, true},
	NoFire:  {DirAction, false},
	Up:      {DirUp, true},
	NoUp:    {DirUp, false},
	Down:    {DirDown, true},
	NoDown:  {DirDown, false},
	Left:    {DirLeft, true},
	NoLeft:  {DirLeft, false},
	Right:   {DirRight, true},
	NoRight: {DirRight, false},
}

// HandleEvent forwards an input event to the device on the port. Returns
// false if the event is not meaningful for the device.
func (per *Peripherals) HandleEvent(id PortID, ev Event, data EventData) (bool, error) {
	if ev == NoEvent {
		return false, nil
	}

	switch id {
	case PortKeyboard:
		var k Key
		switch d := data.(type) {
		case Key:
			k = d
		case rune:
			var ok bool
			k, ok = KeyFromRune(d)
			if !ok {
				return false, fmt.Errorf("peripherals: %v: unrecognised key (%q)", id, d)
			}
		default:
			return false, fmt.Errorf("peripherals: %v: %v: unexpected event data", id, ev)
		}

		switch ev {
		case KeyDown:
			if err := per.Keyboard.Press(k); err != nil {
				return false, fmt.Errorf("peripherals: %w", err)
			}
		case KeyUp:
			per.Keyboard.Release(k)
		default:
			return false, nil
		}

	case PortStick0, PortStick1:
		e, ok := stickEvents[ev]
		if !ok {
			return false, nil
		}
		if err := per.Joysticks.Set(int(id-PortStick0), e.dir, e.pressed); err != nil {
			return false, fmt.Errorf("peripherals: %w", err)
		}

	default:
		return false, fmt.Errorf("peripherals: %v", id)
	}

	return true, nil
}
