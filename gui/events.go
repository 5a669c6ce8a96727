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

package gui

// Event is the type sent over the registered event channel. Do not confuse
// this with the peripherals.Event type.
type Event any

// EventQuit is sent when the gui window has been closed.
type EventQuit struct{}

// KeyMod identifies the modifier keys held during a keyboard event.
type KeyMod int

// List of valid key modifiers. The lock keys can be combined with the other
// modifiers.
const (
	KeyModNone  KeyMod = 0x00
	KeyModShift KeyMod = 0x01
	KeyModCtrl  KeyMod = 0x02
	KeyModAlt   KeyMod = 0x04
	KeyModCaps  KeyMod = 0x08
)

// EventKeyboard is sent when a key has been pressed or released. The Key
// field is the name of the key as defined by SDL.
type EventKeyboard struct {
	Key    string
	Down   bool
	Repeat bool
	Mod    KeyMod
}

// GamepadButton identifies the buttons and directions of a game controller.
type GamepadButton int

// List of valid GamepadButton values.
const (
	GamepadUp GamepadButton = iota
	GamepadDown
	GamepadLeft
	GamepadRight
	GamepadFire
)

// EventGamepad is sent when a game controller button or direction changes.
type EventGamepad struct {
	Button GamepadButton
	Down   bool
}
