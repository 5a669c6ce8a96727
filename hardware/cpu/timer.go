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

package cpu

import "fmt"

// TimerMode is the current mode of the timer/counter.
type TimerMode int

// List of valid TimerMode values.
const (
	TimerOff TimerMode = iota
	TimerCounter
	TimerTimer
)

func (m TimerMode) String() string {
	switch m {
	case TimerCounter:
		return "counter"
	case TimerTimer:
		return "timer"
	}
	return "off"
}

// the number of CPU cycles for each tick of the timer in timer mode
const TimerPrescale = 32

// Timer is the 8-bit timer/event counter of the 8048.
type Timer struct {
	Mode  TimerMode
	Value uint8

	// set on overflow. cleared by the JTF instruction
	Overflow bool

	// cycles remaining until the next tick in timer mode
	prescale int
}

func (tm Timer) String() string {
	return fmt.Sprintf("%s value=0x%02x overflow=%v prescale=%d", tm.Mode, tm.Value, tm.Overflow, tm.prescale)
}

// Reset timer to its power-on state.
func (tm *Timer) Reset() {
	*tm = Timer{prescale: TimerPrescale}
}

// Start the timer in the specified mode.
func (tm *Timer) Start(mode TimerMode) {
	tm.Mode = mode
	tm.prescale = TimerPrescale
}

// Stop the timer. The value is left unchanged.
func (tm *Timer) Stop() {
	tm.Mode = TimerOff
}

// increment the value and return true on overflow.
func (tm *Timer) increment() bool {
	tm.Value++
	if tm.Value == 0 {
		tm.Overflow = true
		return true
	}
	return false
}

// tick advances the timer by the number of CPU cycles. Returns true if the
// timer overflowed. Only has an effect in timer mode.
func (tm *Timer) tick(cycles int) bool {
	if tm.Mode != TimerTimer {
		return false
	}
	tm.prescale -= cycles
	if tm.prescale <= 0 {
		tm.prescale += TimerPrescale
		return tm.increment()
	}
	return false
}
