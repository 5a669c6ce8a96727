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
	"os"

	"github.com/jetsetilly/gopherodyssey/debugger/govern"
	"github.com/jetsetilly/gopherodyssey/debugger/terminal"
	"github.com/jetsetilly/gopherodyssey/gui"
	"github.com/jetsetilly/gopherodyssey/logger"
	"github.com/jetsetilly/gopherodyssey/paths"
	"github.com/jetsetilly/gopherodyssey/userinput"
)

// userInputHandler forwards the gui event to the console peripherals and acts
// on any resulting command.
func (dbg *Debugger) userInputHandler(ev gui.Event) error {
	cmd, err := dbg.controllers.HandleUserInput(ev, dbg.con.Peripherals)
	if err != nil {
		// a key that has no meaning for the console is not fatal
		logger.Log(logger.Allow, "debugger", err)
		return nil
	}

	switch cmd {
	case userinput.CmdQuit:
		dbg.quit = true
		return terminal.ErrUserQuit

	case userinput.CmdTogglePause:
		if dbg.mode == govern.ModePlay {
			dbg.setPause(!dbg.paused)
		}

	case userinput.CmdDebugger:
		dbg.setMode(govern.ModeDebugger)

	case userinput.CmdReset:
		// the reset happens between frames in play mode
		if dbg.mode == govern.ModePlay {
			dbg.reset = true
		} else {
			dbg.con.Reset()
		}
		dbg.printLine(terminal.StyleFeedback, "Reset the virtual machine")

	case userinput.CmdScreenshot:
		dbg.screenshot()
	}

	return nil
}

// signalHandler is called when an interrupt signal is received.
func (dbg *Debugger) signalHandler(sig os.Signal) error {
	logger.Logf(logger.Allow, "debugger", "caught signal: %v", sig)

	// an interrupt in play mode drops into the debugger if possible
	if dbg.mode == govern.ModePlay && dbg.term != nil {
		dbg.setMode(govern.ModeDebugger)
		return nil
	}

	dbg.quit = true
	return terminal.ErrUserQuit
}

func (dbg *Debugger) setPause(paused bool) {
	dbg.paused = paused
	if paused {
		dbg.printLine(terminal.StyleFeedback, "-- PAUSED (press F1 to return to emulation) --")
	} else {
		dbg.printLine(terminal.StyleFeedback, "Returning to emulation")
	}

	if dbg.gui != nil {
		if err := dbg.gui.SetFeature(gui.ReqSetPause, paused); err != nil {
			logger.Log(logger.Allow, "debugger", err)
		}
	}
}

func (dbg *Debugger) screenshot() {
	if dbg.gui == nil {
		return
	}
	fn := paths.UniqueFilename("screenshot", dbg.cartName) + ".png"
	if err := dbg.gui.SetFeature(gui.ReqScreenshot, fn); err != nil {
		dbg.printLine(terminal.StyleError, err.Error())
	}
}

// checkEvents services all pending events without blocking. if block is true
// the function waits for at least one event.
func (dbg *Debugger) checkEvents(block bool) error {
	if block {
		select {
		case ev := <-dbg.events.UserInput:
			if err := dbg.events.UserInputHandler(ev); err != nil {
				return err
			}
		case sig := <-dbg.events.Signal:
			if err := dbg.events.SignalHandler(sig); err != nil {
				return err
			}
		}
	}

	for {
		select {
		case ev := <-dbg.events.UserInput:
			if err := dbg.events.UserInputHandler(ev); err != nil {
				return err
			}
		case sig := <-dbg.events.Signal:
			if err := dbg.events.SignalHandler(sig); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}
