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

package userinput

import (
	"github.com/jetsetilly/gopherodyssey/gui"
	"github.com/jetsetilly/gopherodyssey/hardware/peripherals"
)

// HandleInput conceptualises data being sent to the console peripherals.
type HandleInput interface {
	// HandleEvent forwards the Event and EventData to the device connected to
	// the specified PortID.
	HandleEvent(id peripherals.PortID, ev peripherals.Event, d peripherals.EventData) (bool, error)
}

// Command is an instruction to the emulator that arrives through the GUI.
type Command int

// List of valid Command values.
const (
	CmdNone Command = iota
	CmdQuit
	CmdTogglePause
	CmdDebugger
	CmdReset
	CmdScreenshot
)

func (cmd Command) String() string {
	switch cmd {
	case CmdQuit:
		return "quit"
	case CmdTogglePause:
		return "pause"
	case CmdDebugger:
		return "debugger"
	case CmdReset:
		return "reset"
	case CmdScreenshot:
		return "screenshot"
	}
	return ""
}

// commands are triggered when the key is released
var commands = map[string]Command{
	"Escape":      CmdQuit,
	"F1":          CmdTogglePause,
	"F4":          CmdDebugger,
	"F5":          CmdReset,
	"PrintScreen": CmdScreenshot,
}

type stickInput struct {
	port peripherals.PortID
	down peripherals.Event
	up   peripherals.Event
}

var stickKeys = map[string]stickInput{
	"Up":          {peripherals.PortStick0, peripherals.Up, peripherals.NoUp},
	"Down":        {peripherals.PortStick0, peripherals.Down, peripherals.NoDown},
	"Left":        {peripherals.PortStick0, peripherals.Left, peripherals.NoLeft},
	"Right":       {peripherals.PortStick0, peripherals.Right, peripherals.NoRight},
	"Right Shift": {peripherals.PortStick0, peripherals.Fire, peripherals.NoFire},
	"W":           {peripherals.PortStick1, peripherals.Up, peripherals.NoUp},
	"S":           {peripherals.PortStick1, peripherals.Down, peripherals.NoDown},
	"A":           {peripherals.PortStick1, peripherals.Left, peripherals.NoLeft},
	"D":           {peripherals.PortStick1, peripherals.Right, peripherals.NoRight},
	"Space":       {peripherals.PortStick1, peripherals.Fire, peripherals.NoFire},
}

var gamepadButtons = map[gui.GamepadButton]stickInput{
	gui.GamepadUp:    {peripherals.PortStick1, peripherals.Up, peripherals.NoUp},
	gui.GamepadDown:  {peripherals.PortStick1, peripherals.Down, peripherals.NoDown},
	gui.GamepadLeft:  {peripherals.PortStick1, peripherals.Left, peripherals.NoLeft},
	gui.GamepadRight: {peripherals.PortStick1, peripherals.Right, peripherals.NoRight},
	gui.GamepadFire:  {peripherals.PortStick1, peripherals.Fire, peripherals.NoFire},
}

// the names of keys that do not translate directly to a console key
var keyNames = map[string]peripherals.Key{
	"Space":        peripherals.KeySpace,
	"/":            peripherals.KeyQuestion,
	"?":            peripherals.KeyQuestion,
	"=":            peripherals.KeyEquals,
	"+":            peripherals.KeyPlus,
	"Keypad +":     peripherals.KeyPlus,
	"-":            peripherals.KeyMinus,
	"Keypad -":     peripherals.KeyMinus,
	"*":            peripherals.KeyMultiply,
	"Keypad *":     peripherals.KeyMultiply,
	"Keypad /":     peripherals.KeyDivide,
	".":            peripherals.KeyPeriod,
	"Keypad .":     peripherals.KeyPeriod,
	"Backspace":    peripherals.KeyClear,
	"Delete":       peripherals.KeyClear,
	"Return":       peripherals.KeyEnter,
	"Keypad Enter": peripherals.KeyEnter,
}

// shifted keys that have their own key on the console keyboard
var shiftedKeyNames = map[string]peripherals.Key{
	"=": peripherals.KeyPlus,
	"8": peripherals.KeyMultiply,
}

// ConsoleKey translates the name of a host key to the console key. The
// boolean return value is false if there is no console key.
func ConsoleKey(name string, mod gui.KeyMod) (peripherals.Key, bool) {
	if mod&gui.KeyModShift == gui.KeyModShift {
		if k, ok := shiftedKeyNames[name]; ok {
			return k, true
		}
	}
	if k, ok := keyNames[name]; ok {
		return k, true
	}

	r := []rune(name)
	if len(r) != 1 {
		return peripherals.NoKey, false
	}
	return peripherals.KeyFromRune(r[0])
}

// Controllers keeps track of hardware userinput options.
type Controllers struct {
	// the console key for each host key that is currently held down. a key
	// released after caps lock has changed is still released correctly
	held map[string]peripherals.Key
}

// HandleUserInput translates the event to the console peripherals. Returns a
// Command if the event is an instruction for the emulator itself.
func (c *Controllers) HandleUserInput(ev gui.Event, handle HandleInput) (Command, error) {
	switch ev := ev.(type) {
	case gui.EventQuit:
		return CmdQuit, nil

	case gui.EventKeyboard:
		return c.keyboard(ev, handle)

	case gui.EventGamepad:
		s, ok := gamepadButtons[ev.Button]
		if !ok {
			return CmdNone, nil
		}
		_, err := handle.HandleEvent(s.port, pick(ev.Down, s.down, s.up), nil)
		return CmdNone, err
	}

	return CmdNone, nil
}

func pick(down bool, d peripherals.Event, u peripherals.Event) peripherals.Event {
	if down {
		return d
	}
	return u
}

func (c *Controllers) keyboard(ev gui.EventKeyboard, handle HandleInput) (Command, error) {
	if ev.Repeat {
		return CmdNone, nil
	}

	if cmd, ok := commands[ev.Key]; ok {
		if !ev.Down {
			return cmd, nil
		}
		return CmdNone, nil
	}

	if c.held == nil {
		c.held = make(map[string]peripherals.Key)
	}

	// key releases go to the console keyboard if the press did
	if !ev.Down {
		if k, ok := c.held[ev.Key]; ok {
			delete(c.held, ev.Key)
			_, err := handle.HandleEvent(peripherals.PortKeyboard, peripherals.KeyUp, k)
			return CmdNone, err
		}
	}

	if ev.Mod&gui.KeyModCaps != gui.KeyModCaps || !ev.Down {
		if s, ok := stickKeys[ev.Key]; ok {
			_, err := handle.HandleEvent(s.port, pick(ev.Down, s.down, s.up), nil)
			return CmdNone, err
		}
	}

	if !ev.Down {
		return CmdNone, nil
	}

	k, ok := ConsoleKey(ev.Key, ev.Mod)
	if !ok {
		return CmdNone, nil
	}
	c.held[ev.Key] = k
	_, err := handle.HandleEvent(peripherals.PortKeyboard, peripherals.KeyDown, k)
	return CmdNone, err
}
