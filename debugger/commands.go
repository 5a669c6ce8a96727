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
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/gopherodyssey/debugger/govern"
	"github.com/jetsetilly/gopherodyssey/debugger/terminal"
	"github.com/jetsetilly/gopherodyssey/disassembly"
	"github.com/jetsetilly/gopherodyssey/hardware"
	"github.com/jetsetilly/gopherodyssey/hardware/memory/dump"
	"github.com/jetsetilly/gopherodyssey/logger"
	"github.com/jetsetilly/gopherodyssey/paths"
)

// List of commands. Each command has a long form and a short form.
const (
	cmdBreakpoint = "breakpoint"
	cmdContinue   = "continue"
	cmdExtRAM     = "extram"
	cmdHelp       = "help"
	cmdIntRAM     = "intram"
	cmdPrint      = "print"
	cmdQuit       = "quit"
	cmdReset      = "reset"
	cmdStep       = "step"
	cmdTiming     = "timing"
	cmdVDC        = "vdc"
	cmdMemviz     = "memviz"
	cmdLog        = "log"
	cmdDisasm     = "disasm"
)

var shortCommands = map[string]string{
	"b": cmdBreakpoint,
	"c": cmdContinue,
	"e": cmdExtRAM,
	"h": cmdHelp,
	"?": cmdHelp,
	"i": cmdIntRAM,
	"p": cmdPrint,
	"q": cmdQuit,
	"r": cmdReset,
	"s": cmdStep,
	"t": cmdTiming,
	"v": cmdVDC,
}

const helpText = `The following commands are recognized:
b/breakpoint ADDR  Set a breakpoint at the (hexadecimal) address
b/breakpoint       List breakpoints
b/breakpoint CLEAR Remove all breakpoints
c/continue         Return to emulation
e/extram           Dump the contents of the external RAM
i/intram           Dump the contents of the internal RAM
p/print            Print the contents of some CPU structures
q/quit             Quit Gopherodyssey
r/reset            Reset the virtual machine
s/step [N]         Execute a single CPU step (or N steps)
t/timing           Show timing information
v/vdc              Dump the contents of the VDC memory
memviz [FILE]      Write a graphviz file of the console state
log [N]            Show the most recent log entries
disasm [N]         Disassemble N instructions from the program counter`

// default number of log entries shown by the log command
const defaultLogTail = 10

// default number of instructions shown by the disasm command
const defaultDisasm = 8

// parseCommand acts on a single line of user input.
func (dbg *Debugger) parseCommand(input string) error {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return nil
	}

	command := strings.ToLower(fields[0])
	if c, ok := shortCommands[command]; ok {
		command = c
	}
	args := fields[1:]

	switch command {
	case cmdBreakpoint:
		if len(args) == 0 {
			dbg.printLine(terminal.StyleFeedback, dbg.breakpoints.String())
			return nil
		}
		if strings.EqualFold(args[0], "clear") {
			dbg.breakpoints.clear()
			dbg.printLine(terminal.StyleFeedback, "Breakpoints cleared")
			return nil
		}
		a, err := parseAddress(args[0])
		if err != nil {
			dbg.printLine(terminal.StyleError, "Invalid address")
			return nil
		}
		dbg.breakpoints.add(a)
		dbg.printLine(terminal.StyleFeedback, "Breakpoint set at 0x%02x", a)

	case cmdContinue:
		dbg.setMode(govern.ModePlay)

	case cmdExtRAM:
		dump.Write(dbg.printStyle(terminal.StyleInstrument), dbg.con.Mem.ExtRAM.RAM[:])

	case cmdHelp:
		dbg.printLine(terminal.StyleHelp, helpText)

	case cmdIntRAM:
		dump.Write(dbg.printStyle(terminal.StyleInstrument), dbg.con.CPU.RAM[:])

	case cmdPrint:
		dbg.printLine(terminal.StyleInstrument, dbg.con.CPU.Dump())

	case cmdQuit:
		return terminal.ErrUserQuit

	case cmdReset:
		dbg.con.Reset()
		dbg.printLine(terminal.StyleFeedback, "Reset the virtual machine")

	case cmdStep:
		n := 1
		if len(args) > 0 {
			var err error
			n, err = strconv.Atoi(args[0])
			if err != nil || n < 1 {
				dbg.printLine(terminal.StyleError, "Invalid number of steps")
				return nil
			}
		}
		if err := dbg.step(n); err != nil {
			return err
		}
		dbg.printLine(terminal.StyleCPUStep, dbg.con.CPU.Dump())

	case cmdTiming:
		dbg.printLine(terminal.StyleInstrument, dbg.con.VDC.Timing())

	case cmdVDC:
		dbg.printLine(terminal.StyleInstrument, dbg.con.VDC.String())

	case cmdMemviz:
		fn := paths.UniqueFilename("memviz", dbg.cartName) + ".dot"
		if len(args) > 0 {
			fn = args[0]
		}
		if err := dbg.memviz(fn); err != nil {
			dbg.printLine(terminal.StyleError, err.Error())
			return nil
		}
		dbg.printLine(terminal.StyleFeedback, "Console state written to %s", fn)

	case cmdLog:
		n := defaultLogTail
		if len(args) > 0 {
			var err error
			n, err = strconv.Atoi(args[0])
			if err != nil || n < 1 {
				dbg.printLine(terminal.StyleError, "Invalid number of log entries")
				return nil
			}
		}
		s := strings.Builder{}
		logger.Tail(&s, n)
		dbg.printLine(terminal.StyleLog, s.String())

	case cmdDisasm:
		n := defaultDisasm
		if len(args) > 0 {
			var err error
			n, err = strconv.Atoi(args[0])
			if err != nil || n < 1 {
				dbg.printLine(terminal.StyleError, "Invalid number of instructions")
				return nil
			}
		}
		s := strings.Builder{}
		a := dbg.con.CPU.PC
		for _i := 0; _i < n; _i++ {
			e := dbg.con.CPU.Disassemble(a)
			_ = disassembly.WriteLine(&s, disassembly.WriteAttr{ByteCode: true, Cycles: true}, e)
			a += uint16(len(e.Bytes))
		}
		dbg.printLine(terminal.StyleInstrument, s.String())

	default:
		dbg.printLine(terminal.StyleError, "Unknown command, use \"help\" or \"h\" for help")
	}

	return nil
}

// step the CPU n times. breakpoints are ignored.
func (dbg *Debugger) step(n int) error {
	for _i := 0; _i < n; _i++ {
		_, err := dbg.con.Step()
		if errors.Is(err, hardware.ErrBreakpoint) {
			_, err = dbg.con.Step()
		}
		if err != nil {
			if errors.Is(err, hardware.ErrIllegalOpcode) {
				dbg.printLine(terminal.StyleError, err.Error())
				return nil
			}
			return err
		}
	}
	return nil
}

func (dbg *Debugger) memviz(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("memviz: %w", err)
	}
	defer f.Close()

	memviz.Map(f, dbg.con.Snapshot())

	return nil
}
