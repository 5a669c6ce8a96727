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
	"os"
	"os/signal"
	"strings"

	"github.com/jetsetilly/gopherodyssey/cartridgeloader"
	"github.com/jetsetilly/gopherodyssey/debugger/govern"
	"github.com/jetsetilly/gopherodyssey/debugger/terminal"
	"github.com/jetsetilly/gopherodyssey/gui"
	"github.com/jetsetilly/gopherodyssey/hardware"
	"github.com/jetsetilly/gopherodyssey/logger"
	"github.com/jetsetilly/gopherodyssey/performance/limiter"
	"github.com/jetsetilly/gopherodyssey/userinput"
)

// Debugger is the outermost layer of the emulation. It runs the console in
// play mode or debugger mode.
type Debugger struct {
	con *hardware.Console

	// the gui and terminal can be nil. without a terminal the debugger mode
	// is not available
	gui  gui.GUI
	term terminal.Terminal

	mode govern.Mode

	// set when the user asks to quit the emulation
	quit bool

	// the emulation should be reset on the next check
	reset bool

	// pause state of the play loop
	paused bool

	// the emulation entered debugger mode because of a breakpoint
	halted bool

	breakpoints *breakpoints
	controllers userinput.Controllers

	lmtr *limiter.Limiter

	// gui events and interrupt signals
	events terminal.ReadEvents

	// name of cartridge, used for screenshot and memviz filenames
	cartName string
}

// NewDebugger is the preferred method of initialisation for the Debugger
// type. The gui and terminal arguments can be nil.
func NewDebugger(con *hardware.Console, g gui.GUI, term terminal.Terminal, fpsCap bool) (*Debugger, error) {
	if con == nil {
		return nil, fmt.Errorf("debugger: no console")
	}

	dbg := &Debugger{
		con:         con,
		gui:         g,
		term:        term,
		breakpoints: newBreakpoints(),
		lmtr:        limiter.NewLimiter(con.Spec.FramesPerSecond),
	}

	dbg.lmtr.Active.Store(fpsCap)

	dbg.events = terminal.ReadEvents{
		UserInput:        make(chan gui.Event, 64),
		UserInputHandler: dbg.userInputHandler,
		Signal:           make(chan os.Signal, 1),
		SignalHandler:    dbg.signalHandler,
	}

	con.Breakpoints = dbg.breakpoints.check

	return dbg, nil
}

// UserInput returns the channel used by the debugger for gui events.
func (dbg *Debugger) UserInput() chan gui.Event {
	return dbg.events.UserInput
}

// Mode returns the current emulation mode.
func (dbg *Debugger) Mode() govern.Mode {
	return dbg.mode
}

func (dbg *Debugger) setMode(mode govern.Mode) {
	if mode == dbg.mode {
		return
	}

	if mode == govern.ModeDebugger && dbg.term == nil {
		logger.Log(logger.Allow, "debugger", "debugger mode is not available without a terminal")
		return
	}

	dbg.mode = mode
	logger.Logf(logger.Allow, "debugger", "switched to %s", mode)

	// the window is minimised in the original machine when entering debugger
	// mode. we just unpause it in case it was paused in play mode
	if dbg.paused {
		dbg.setPause(false)
	}
}

// Start the emulation in the specified mode with the cartridge. Returns when
// the user quits or on an unrecoverable error.
func (dbg *Debugger) Start(mode govern.Mode, cartload *cartridgeloader.Loader) error {
	if mode != govern.ModePlay && mode != govern.ModeDebugger {
		return fmt.Errorf("debugger: cannot start in %s mode", mode)
	}

	if dbg.term != nil {
		if err := dbg.term.Initialise(); err != nil {
			return fmt.Errorf("debugger: %w", err)
		}
		defer dbg.term.CleanUp()
	} else if mode == govern.ModeDebugger {
		return fmt.Errorf("debugger: no terminal for debugger mode")
	}

	defer dbg.lmtr.Stop()

	if err := dbg.con.AttachCartridge(cartload); err != nil {
		return fmt.Errorf("debugger: %w", err)
	}
	dbg.cartName = cartload.ShortName()

	if dbg.gui != nil {
		if err := dbg.gui.SetFeature(gui.ReqSetEventChan, dbg.events.UserInput); err != nil {
			return fmt.Errorf("debugger: %w", err)
		}
		if err := dbg.gui.SetFeature(gui.ReqSetVisibility, true); err != nil {
			return fmt.Errorf("debugger: %w", err)
		}
	}

	signal.Notify(dbg.events.Signal, os.Interrupt)
	defer signal.Stop(dbg.events.Signal)

	dbg.mode = mode
	dbg.printLine(terminal.StyleFeedback, "Emulation started")

	for !dbg.quit {
		var err error

		switch dbg.mode {
		case govern.ModePlay:
			err = dbg.playLoop()
		case govern.ModeDebugger:
			err = dbg.debuggerLoop()
		default:
			err = fmt.Errorf("unsupported mode (%s)", dbg.mode)
		}

		if err != nil {
			if errors.Is(err, terminal.ErrUserQuit) {
				break
			}
			return fmt.Errorf("debugger: %w", err)
		}
	}

	dbg.printLine(terminal.StyleFeedback, "Virtual machine quit")

	return nil
}

// printLine sends the string to the terminal, one line at a time. If there
// is no terminal the string is logged.
func (dbg *Debugger) printLine(sty terminal.Style, s string, a ...any) {
	if len(a) > 0 {
		s = fmt.Sprintf(s, a...)
	}

	s = strings.TrimRight(s, "\n")
	if len(s) == 0 {
		return
	}

	if dbg.term == nil {
		logger.Log(logger.Allow, "debugger", s)
		return
	}

	for _, l := range strings.Split(s, "\n") {
		dbg.term.TermPrintLine(sty, l)
	}
}

// styleWriter implements the io.Writer interface. output is sent to the
// terminal with the style
type styleWriter struct {
	dbg   *Debugger
	style terminal.Style
}

func (dbg *Debugger) printStyle(sty terminal.Style) *styleWriter {
	return &styleWriter{
		dbg:   dbg,
		style: sty,
	}
}

func (wrt styleWriter) Write(p []byte) (n int, err error) {
	wrt.dbg.printLine(wrt.style, string(p))
	return len(p), nil
}
