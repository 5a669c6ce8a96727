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

package debugger

import (
	"errors"
	"fmt"

	"github.com/jetsetilly/gopherodyssey/debugger/govern"
	"github.com/jetsetilly/gopherodyssey/debugger/terminal"
)

// debuggerLoop reads commands from the terminal until the mode changes or
// the user quits.
func (dbg *Debugger) debuggerLoop() error {
	for dbg.mode == govern.ModeDebugger && !dbg.quit {
		// events that arrived while the emulation was running
		if err := dbg.checkEvents(false); err != nil {
			return err
		}

		prompt := terminal.Prompt{
			Content: fmt.Sprintf("0x%03x", dbg.con.CPU.PC),
			Break:   dbg.halted,
		}

		input, err := dbg.term.TermRead(prompt, &dbg.events)
		if err != nil {
			if errors.Is(err, terminal.ErrUserInterrupt) {
				return terminal.ErrUserQuit
			}
			return err
		}
		dbg.halted = false

		dbg.term.TermPrintLine(terminal.StyleEcho, input)

		if err := dbg.parseCommand(input); err != nil {
			return err
		}
	}

	return nil
}
