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

package terminal

import (
	"errors"
	"os"

	"github.com/jetsetilly/gopherodyssey/gui"
)

// Sentinal errors. Returned by TermRead() if caught whilst waiting for input.
var (
	// the interrupt key was pressed or the interrupt signal was received
	ErrUserInterrupt = errors.New("user interrupt")

	// the input has ended (end of file or the end-of-transmission key)
	ErrUserQuit = errors.New("user quit")
)

// ReadEvents *must* be monitored during a TermRead().
type ReadEvents struct {
	// events from the GUI. these must be serviced while waiting for input or
	// else the GUI will stall
	UserInput        chan gui.Event
	UserInputHandler func(gui.Event) error

	// interrupt signals from the operating system
	Signal        chan os.Signal
	SignalHandler func(os.Signal) error
}

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead returns a single line of input without the line terminator.
	// Any error returned by an event handler in ReadEvents is returned by
	// TermRead.
	TermRead(prompt Prompt, events *ReadEvents) (string, error)

	// IsInteractive() should return true for implementations that require
	// user interaction. Instances that don't expect user intervention should
	// return false.
	IsInteractive() bool
}

// Output defines the operations required by an interface that allows output.
type Output interface {
	TermPrintLine(Style, string)
}

// Terminal defines the operations required by the debugger's command line
// interface.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. not all terminal implementations will need to
	// do anything.
	Initialise() error

	// Restore the terminal to it's original state, if possible.
	CleanUp()

	// Silence all input and output except error messages. In other words,
	// TermPrintLine() should display error messages even if silenced is true.
	Silence(silenced bool)
}
