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

// Package sdlinput translates SDL events to gui events. It is shared by the
// SDL based GUI implementations.
package sdlinput

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/gopherodyssey/gui"
	"github.com/jetsetilly/gopherodyssey/logger"
)

// Input collects SDL events and forwards them to the event channel. SDL must
// have been initialised before calling NewInput().
type Input struct {
	joysticks []*sdl.Joystick

	// the most recent value of the joystick hat
	hat uint8
}

// NewInput is the preferred method of initialisation for the Input type.
func NewInput() *Input {
	in := &Input{}

	for i := 0; i < sdl.NumJoysticks(); i++ {
		joy := sdl.JoystickOpen(i)
		if joy != nil && joy.Attached() {
			logger.Logf(logger.Allow, "sdl", "joystick: %s", joy.Name())
			in.joysticks = append(in.joysticks, joy)
		}
	}

	if len(in.joysticks) == 0 {
		logger.Log(logger.Allow, "sdl", "no joysticks found")
	}

	return in
}

// Close any opened joysticks.
func (in *Input) Close() {
	for _, joy := range in.joysticks {
		joy.Close()
	}
	in.joysticks = in.joysticks[:0]
}

func send(events chan gui.Event, ev gui.Event) {
	if events == nil {
		return
	}
	select {
	case events <- ev:
	default:
		logger.Logf(logger.Allow, "sdl", "dropped %T event", ev)
	}
}

// Poll the SDL event queue until it is empty. Events are dropped if the
// channel is nil or full. MUST only be called from the main thread.
func (in *Input) Poll(events chan gui.Event) {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			send(events, gui.EventQuit{})

		case *sdl.KeyboardEvent:
			send(events, gui.EventKeyboard{
				Key:    sdl.GetKeyName(ev.Keysym.Sym),
				Down:   ev.Type == sdl.KEYDOWN,
				Repeat: ev.Repeat != 0,
				Mod:    keyMod(ev.Keysym.Mod),
			})

		case *sdl.JoyButtonEvent:
			// any button is the fire button
			send(events, gui.EventGamepad{
				Button: gui.GamepadFire,
				Down:   ev.State == sdl.PRESSED,
			})

		case *sdl.JoyHatEvent:
			for _, e := range hatEvents(in.hat, ev.Value) {
				send(events, e)
			}
			in.hat = ev.Value
		}
	}
}

func keyMod(m uint16) gui.KeyMod {
	mod := gui.KeyModNone
	if m&sdl.KMOD_LSHIFT == sdl.KMOD_LSHIFT || m&sdl.KMOD_RSHIFT == sdl.KMOD_RSHIFT {
		mod |= gui.KeyModShift
	}
	if m&sdl.KMOD_LCTRL == sdl.KMOD_LCTRL || m&sdl.KMOD_RCTRL == sdl.KMOD_RCTRL {
		mod |= gui.KeyModCtrl
	}
	if m&sdl.KMOD_LALT == sdl.KMOD_LALT || m&sdl.KMOD_RALT == sdl.KMOD_RALT {
		mod |= gui.KeyModAlt
	}
	if m&sdl.KMOD_CAPS == sdl.KMOD_CAPS {
		mod |= gui.KeyModCaps
	}
	return mod
}

var hatButtons = []struct {
	bit    uint8
	button gui.GamepadButton
}{
	{sdl.HAT_UP, gui.GamepadUp},
	{sdl.HAT_RIGHT, gui.GamepadRight},
	{sdl.HAT_DOWN, gui.GamepadDown},
	{sdl.HAT_LEFT, gui.GamepadLeft},
}

// the hat value is a bit field of directions. an event is produced for every
// direction that has changed
func hatEvents(prev uint8, next uint8) []gui.Event {
	var evs []gui.Event
	for _, h := range hatButtons {
		if prev&h.bit != next&h.bit {
			evs = append(evs, gui.EventGamepad{
				Button: h.button,
				Down:   next&h.bit == h.bit,
			})
		}
	}
	return evs
}
