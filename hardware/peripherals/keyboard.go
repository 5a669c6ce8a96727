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
	"unicode"

	"github.com/jetsetilly/gopherodyssey/hardware/ports"
)

// Key is a key on the console keyboard. Keys with a printable legend are
// represented by the upper-case rune of the legend.
type Key rune

// NoKey indicates that no key is pressed.
const NoKey Key = 0

// Keys that do not have a single character legend or that are more usefully
// referred to by name.
const (
	KeySpace    Key = ' '
	KeyQuestion Key = '?'
	KeyPeriod   Key = '.'
	KeyPlus     Key = '+'
	KeyMinus    Key = '-'
	KeyMultiply Key = '*'
	KeyDivide   Key = '/'
	KeyEquals   Key = '='
	KeyYes      Key = 'Y'
	KeyNo       Key = 'N'
	KeyClear    Key = '\b'
	KeyEnter    Key = '\n'
)

func (k Key) String() string {
	switch k {
	case NoKey:
		return "none"
	case KeySpace:
		return "space"
	case KeyClear:
		return "clear"
	case KeyEnter:
		return "enter"
	}
	return string(rune(k))
}

// the keyboard matrix. the row is selected by the lower bits of port 2
var keymap = [6][8]Key{
	{'0', '1', '2', '3', '4', '5', '6', '7'},
	{'8', '9', NoKey, NoKey, KeySpace, KeyQuestion, 'L', 'P'},
	{KeyPlus, 'W', 'E', 'R', 'T', 'U', 'I', 'O'},
	{'Q', 'S', 'D', 'F', 'G', 'H', 'J', 'K'},
	{'A', 'Z', 'X', 'C', 'V', 'B', 'M', KeyPeriod},
	{KeyMinus, KeyMultiply, KeyDivide, KeyEquals, KeyYes, KeyNo, KeyClear, KeyEnter},
}

// alternative runes for some keys
var aliases = map[rune]Key{
	'\r': KeyEnter,
	0x7f: KeyClear,
	'÷':  KeyDivide,
	'×':  KeyMultiply,
}

// KeyFromRune converts a rune to a Key. Letters are case insensitive. The
// boolean return value is false if there is no key for the rune.
func KeyFromRune(r rune) (Key, bool) {
	if k, ok := aliases[r]; ok {
		return k, true
	}

	k := Key(unicode.ToUpper(r))
	if k == NoKey {
		return NoKey, false
	}

	for _, row := range keymap {
		for _, c := range row {
			if c == k {
				return k, true
			}
		}
	}

	return NoKey, false
}

// Keyboard is the membrane keyboard of the console. Only one key is
// recognised at a time.
type Keyboard struct {
	ports   *ports.Ports
	pressed Key
}

// NewKeyboard is the preferred method of initialisation for the Keyboard type.
func NewKeyboard(p *ports.Ports) *Keyboard {
	return &Keyboard{
		ports: p,
	}
}

func (kb *Keyboard) String() string {
	return fmt.Sprintf("keyboard: %v", kb.pressed)
}

// Reset releases any pressed key.
func (kb *Keyboard) Reset() {
	kb.pressed = NoKey
}

// Pressed returns the currently pressed key.
func (kb *Keyboard) Pressed() Key {
	return kb.pressed
}

// Press a key. Returns an error if the key is not on the keyboard.
func (kb *Keyboard) Press(k Key) error {
	if _, ok := KeyFromRune(rune(k)); !ok {
		return fmt.Errorf("keyboard: unrecognised key (%v)", k)
	}
	kb.pressed = k
	return nil
}

// Release a key. Releasing a key that is not the pressed key has no effect.
func (kb *Keyboard) Release(k Key) {
	if kb.pressed == k {
		kb.pressed = NoKey
	}
}

// Scan the keyboard matrix for the row selected by port 2 and update the
// upper bits of port 2.
func (kb *Keyboard) Scan() {
	if kb.pressed == NoKey || kb.ports.P1&ports.P1KeyboardDisable == ports.P1KeyboardDisable {
		kb.ports.P2 |= ports.P2KeyColumn | ports.P2KeyNotDetected
		return
	}

	row := int(kb.ports.P2 & ports.P2Select)
	if row >= len(keymap) {
		return
	}

	for col, k := range keymap[row] {
		if k == kb.pressed {
			kb.ports.P2 = (kb.ports.P2 & 0x0f) | uint8(col^0x07)<<5
			return
		}
	}

	kb.ports.P2 |= ports.P2KeyColumn | ports.P2KeyNotDetected
}
