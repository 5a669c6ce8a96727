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

// Package userinput handles input from real hardware that the the user of the
// emulator is using to control the emulated console.
//
// It can be thought of as a translation layer between the GUI implementation
// and the hardware peripherals package. As such, this package attempts to
// hide details of the GUI implementation while protecting the peripherals
// package from complication.
//
// By default the cursor keys and right shift control the first joystick. The
// W, A, S, D keys and the space bar control the second joystick, as does a
// game controller. All other keys go to the console keyboard. When caps lock
// is on every key goes to the console keyboard.
//
// Some keys are commands for the emulator rather than input for the console.
// These are returned by HandleUserInput() as a Command value.
package userinput
