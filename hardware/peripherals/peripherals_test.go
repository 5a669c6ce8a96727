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

package peripherals_test

import (
	"testing"

	"github.com/jetsetilly/gopherodyssey/hardware/peripherals"
	"github.com/jetsetilly/gopherodyssey/hardware/ports"
	"github.com/jetsetilly/gopherodyssey/test"
)

func TestKeyFromRune(t *testing.T) {
	k, ok := peripherals.KeyFromRune('a')
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, peripherals.Key('A'))

	k, ok = peripherals.KeyFromRune('\r')
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, peripherals.KeyEnter)

	_, ok = peripherals.KeyFromRune('!')
	test.ExpectFailure(t, ok)

	_, ok = peripherals.KeyFromRune(0)
	test.ExpectFailure(t, ok)
}

func TestKeyboardScan(t *testing.T) {
	p := ports.NewPorts()
	kb := peripherals.NewKeyboard(p)

	// P1 resets to 0xff which disables the keyboard
	p.P1 = 0x00

	// no key pressed
	p.P2 = 0x00
	kb.Scan()
	test.ExpectEquality(t, p.P2, uint8(0xf0))

	// 'E' is in row 2, column 2
	test.DemandSuccess(t, kb.Press('E'))
	p.P2 = 0x02
	kb.Scan()
	test.ExpectEquality(t, p.P2, uint8(0x02|(2^7)<<5))
	test.ExpectEquality(t, p.P2&ports.P2KeyNotDetected, uint8(0))

	// wrong row
	p.P2 = 0x03
	kb.Scan()
	test.ExpectEquality(t, p.P2, uint8(0xf3))

	// enter is the last key of the last row
	test.DemandSuccess(t, kb.Press(peripherals.KeyEnter))
	p.P2 = 0x05
	kb.Scan()
	test.ExpectEquality(t, p.P2, uint8(0x05))

	// rows beyond the matrix leave the port unchanged
	p.P2 = 0x06
	kb.Scan()
	test.ExpectEquality(t, p.P2, uint8(0x06))

	// keyboard disabled
	p.P1 = ports.P1KeyboardDisable
	p.P2 = 0x05
	kb.Scan()
	test.ExpectEquality(t, p.P2, uint8(0xf5))

	// releasing a different key has no effect
	kb.Release('E')
	test.ExpectEquality(t, kb.Pressed(), peripherals.KeyEnter)
	kb.Release(peripherals.KeyEnter)
	test.ExpectEquality(t, kb.Pressed(), peripherals.NoKey)

	test.ExpectFailure(t, kb.Press('!'))
}

func TestJoysticks(t *testing.T) {
	p := ports.NewPorts()
	joy := peripherals.NewJoysticks(p)

	p.P1 = ports.P1VDCSelect
	p.P2 = ports.P2KeyNotDetected

	test.ExpectEquality(t, joy.Bus(), uint8(0x1f))

	test.DemandSuccess(t, joy.Set(0, peripherals.DirUp, true))
	test.DemandSuccess(t, joy.Set(0, peripherals.DirAction, true))
	test.ExpectEquality(t, joy.Bus(), uint8(0x0e))

	// the second stick is selected by port 2
	p.P2 |= 0x01
	test.ExpectEquality(t, joy.Bus(), uint8(0x1f))
	test.DemandSuccess(t, joy.Set(1, peripherals.DirLeft, true))
	test.ExpectEquality(t, joy.Bus(), uint8(0x17))

	// no stick
	p.P2 = ports.P2KeyNotDetected | 0x02
	test.ExpectEquality(t, joy.Bus(), uint8(0x00))

	// bus not enabled
	p.P2 = 0x00
	test.ExpectEquality(t, joy.Bus(), uint8(0x00))
	p.P1 = 0x00
	p.P2 = ports.P2KeyNotDetected
	test.ExpectEquality(t, joy.Bus(), uint8(0x00))

	p.P1 = ports.P1VDCSelect
	test.DemandSuccess(t, joy.Set(0, peripherals.DirUp, false))
	test.ExpectEquality(t, joy.Bus(), uint8(0x0f))

	test.ExpectFailure(t, joy.Set(2, peripherals.DirUp, true))
	test.ExpectFailure(t, joy.Set(0, peripherals.Direction(5), true))

	joy.Reset()
	test.ExpectEquality(t, joy.Bus(), uint8(0x1f))
}

func TestHandleEvent(t *testing.T) {
	p := ports.NewPorts()
	per := peripherals.NewPeripherals(p)

	ok, err := per.HandleEvent(peripherals.PortKeyboard, peripherals.KeyDown, 'q')
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, per.Keyboard.Pressed(), peripherals.Key('Q'))

	ok, err = per.HandleEvent(peripherals.PortKeyboard, peripherals.KeyUp, peripherals.Key('Q'))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, per.Keyboard.Pressed(), peripherals.NoKey)

	_, err = per.HandleEvent(peripherals.PortKeyboard, peripherals.KeyDown, 10)
	test.ExpectFailure(t, err)

	ok, err = per.HandleEvent(peripherals.PortStick1, peripherals.Fire, nil)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, per.Joysticks.Stick(1), uint8(0x0f))

	// keyboard events are not meaningful for joysticks
	ok, err = per.HandleEvent(peripherals.PortStick0, peripherals.KeyDown, nil)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, ok)

	ok, err = per.HandleEvent(peripherals.PortStick0, peripherals.NoEvent, nil)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, ok)

	per.Reset()
	test.ExpectEquality(t, per.Joysticks.Stick(1), uint8(0x1f))
}

func TestInput(t *testing.T) {
	p := ports.NewPorts()
	per := peripherals.NewPeripherals(p)
	test.DemandSuccess(t, per.Keyboard.Press('0'))

	p.P1 = 0x00
	p.P2 = 0x00
	per.ScanKeyboard()
	test.ExpectEquality(t, p.P2, uint8(7<<5))

	p.P1 = ports.P1VDCSelect
	p.P2 = ports.P2KeyNotDetected
	test.ExpectEquality(t, per.JoystickBus(), uint8(0x1f))
}
