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

// Package plainterm implements the Terminal interface for the gopherodyssey
// debugger. It's a simple as simple can be and offers no special features.
package plainterm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/jetsetilly/gopherodyssey/debugger/terminal"
)

type readResult struct {
	line string
	err  error
}

// PlainTerminal is the default, most basic terminal interface. It keeps the
// terminal in whatever mode it started, probably cooked mode. As such, it
// offers only rudimentary editing facility and little control over output.
type PlainTerminal struct {
	input      io.Reader
	output     io.Writer
	realInput  bool
	realOutput bool
	silenced   bool

	// lines are read in a separate goroutine so that events can be serviced
	// while waiting for input
	lines chan readResult
}

// NewPlainTerminal is the preferred method of initialisation for the
// PlainTerminal type. Nil values for input and output default to os.Stdin
// and os.Stdout.
func NewPlainTerminal(input io.Reader, output io.Writer) *PlainTerminal {
	if input == nil {
		input = os.Stdin
	}
	if output == nil {
		output = os.Stdout
	}
	return &PlainTerminal{
		input:  input,
		output: output,
	}
}

func isTerminal(v any) bool {
	if f, ok := v.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// Initialise perfoms any setting up required for the terminal.
func (pt *PlainTerminal) Initialise() error {
	pt.realInput = isTerminal(pt.input)
	pt.realOutput = isTerminal(pt.output)

	pt.lines = make(chan readResult)
	go func() {
		scanner := bufio.NewScanner(pt.input)
		for scanner.Scan() {
			pt.lines <- readResult{line: scanner.Text()}
		}
		err := scanner.Err()
		if err == nil {
			err = io.EOF
		}
		pt.lines <- readResult{err: err}
	}()

	return nil
}

// CleanUp perfoms any cleaning up required for the terminal.
func (pt *PlainTerminal) CleanUp() {
}

// Silence implements the terminal.Terminal interface.
func (pt *PlainTerminal) Silence(silenced bool) {
	pt.silenced = silenced
}

// TermPrintLine implements the terminal.Output interface.
func (pt *PlainTerminal) TermPrintLine(style terminal.Style, s string) {
	if pt.silenced && style != terminal.StyleError {
		return
	}

	// we don't need to echo user input for this type of terminal
	if style == terminal.StyleEcho {
		return
	}

	if style == terminal.StyleError {
		s = fmt.Sprintf("* %s", s)
	}

	fmt.Fprintln(pt.output, strings.TrimRight(s, "\n"))
}

// TermRead implements the terminal.Input interface.
func (pt *PlainTerminal) TermRead(prompt terminal.Prompt, events *terminal.ReadEvents) (string, error) {
	// insert prompt into output stream
	if pt.realInput && !pt.silenced {
		io.WriteString(pt.output, prompt.String())
	}

	if events == nil {
		events = &terminal.ReadEvents{}
	}

	for {
		select {
		case r := <-pt.lines:
			if r.err == io.EOF {
				return "", terminal.ErrUserQuit
			}
			if r.err != nil {
				return "", fmt.Errorf("plainterm: %w", r.err)
			}
			return r.line, nil

		case ev := <-events.UserInput:
			if events.UserInputHandler != nil {
				if err := events.UserInputHandler(ev); err != nil {
					return "", err
				}
			}

		case sig := <-events.Signal:
			if events.SignalHandler != nil {
				if err := events.SignalHandler(sig); err != nil {
					return "", err
				}
			}
		}
	}
}

// IsInteractive implements the terminal.Input interface.
func (pt *PlainTerminal) IsInteractive() bool {
	return pt.realInput && pt.realOutput
}
