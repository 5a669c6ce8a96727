//go:build !windows

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

// Package colorterm implements the Terminal interface for the gopherodyssey
// debugger. It supports color output, history and line editing.
package colorterm

import (
	"bufio"
	"os"

	"github.com/jetsetilly/gopherodyssey/debugger/terminal"
	"github.com/jetsetilly/gopherodyssey/debugger/terminal/colorterm/easyterm"
)

type readRune struct {
	r   rune
	err error
}

// ColorTerminal implements debugger UI interface with a basic ANSI terminal.
type ColorTerminal struct {
	easyterm.EasyTerm

	// runes are read in a separate goroutine so that events can be serviced
	// while waiting for input
	runes chan readRune

	commandHistory []string

	silenced bool
}

// Initialise perfoms any setting up required for the terminal.
func (ct *ColorTerminal) Initialise() error {
	if err := ct.EasyTerm.Initialise(os.Stdin, os.Stdout); err != nil {
		return err
	}

	ct.runes = make(chan readRune)
	go func() {
		rd := bufio.NewReader(os.Stdin)
		for {
			r, _, err := rd.ReadRune()
			ct.runes <- readRune{r: r, err: err}
			if err != nil {
				return
			}
		}
	}()

	return nil
}

// CleanUp perfoms any cleaning up required for the terminal.
func (ct *ColorTerminal) CleanUp() {
	ct.TermPrint("\r")
	_ = ct.Flush()
	ct.EasyTerm.CleanUp()
}

// IsInteractive implements the terminal.Input interface.
func (ct *ColorTerminal) IsInteractive() bool {
	return true
}

// Silence implements the terminal.Terminal interface.
func (ct *ColorTerminal) Silence(silenced bool) {
	ct.silenced = silenced
}

// addHistory appends the input to the command history unless it is the same
// as the most recent entry.
func (ct *ColorTerminal) addHistory(input string) {
	if input == "" {
		return
	}
	if len(ct.commandHistory) > 0 && ct.commandHistory[len(ct.commandHistory)-1] == input {
		return
	}
	ct.commandHistory = append(ct.commandHistory, input)
}

var _ terminal.Terminal = (*ColorTerminal)(nil)
