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

	"github.com/jetsetilly/gopherodyssey/debugger/govern"
	"github.com/jetsetilly/gopherodyssey/debugger/terminal"
	"github.com/jetsetilly/gopherodyssey/hardware"
)

// playLoop runs the console until the mode changes or the user quits.
func (dbg *Debugger) playLoop() error {
	err := dbg.con.Run(dbg.continueCheck)
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, terminal.ErrUserQuit):
		return err

	case errors.Is(err, hardware.ErrBreakpoint):
		dbg.printLine(terminal.StyleFeedback, "Breakpoint reached")
		dbg.printLine(terminal.StyleCPUStep, dbg.con.CPU.Dump())
		dbg.halted = true
		dbg.setMode(govern.ModeDebugger)
		return nil

	case errors.Is(err, hardware.ErrIllegalOpcode):
		if dbg.term == nil {
			return err
		}
		dbg.printLine(terminal.StyleError, err.Error())
		dbg.halted = true
		dbg.setMode(govern.ModeDebugger)
		return nil
	}

	return err
}

// continueCheck is called by the console once per frame, or repeatedly while
// paused.
func (dbg *Debugger) continueCheck() (govern.State, error) {
	if err := dbg.checkEvents(dbg.paused); err != nil {
		return govern.Ending, err
	}

	if dbg.quit || dbg.mode != govern.ModePlay {
		return govern.Ending, nil
	}

	if dbg.reset {
		dbg.reset = false
		return govern.Resetting, nil
	}

	if dbg.paused {
		return govern.Paused, nil
	}

	dbg.lmtr.CheckFrame()
	dbg.lmtr.MeasureActual()

	return govern.Running, nil
}
