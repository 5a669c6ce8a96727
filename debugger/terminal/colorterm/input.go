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

package colorterm

import (
	"fmt"
	"io"
	"unicode"

	"github.com/jetsetilly/gopherodyssey/debugger/terminal"
	"github.com/jetsetilly/gopherodyssey/debugger/terminal/colorterm/easyterm"
	"github.com/jetsetilly/gopherodyssey/debugger/terminal/colorterm/easyterm/ansi"
)

// line is the input being edited.
type line struct {
	input  []rune
	cursor int
}

func (l *line) insert(r rune) {
	l.input = append(l.input, 0)
	copy(l.input[l.cursor+1:], l.input[l.cursor:])
	l.input[l.cursor] = r
	l.cursor++
}

func (l *line) backspace() {
	if l.cursor > 0 {
		l.input = append(l.input[:l.cursor-1], l.input[l.cursor:]...)
		l.cursor--
	}
}

func (l *line) delete() {
	if l.cursor < len(l.input) {
		l.input = append(l.input[:l.cursor], l.input[l.cursor+1:]...)
	}
}

func (l *line) set(s string) {
	l.input = []rune(s)
	l.cursor = len(l.input)
}

func (ct *ColorTerminal) redraw(prompt terminal.Prompt, l *line) {
	ct.TermPrint(fmt.Sprintf("\r%s%s%s%s%s", ansi.ClearLine, ansi.PenStyles["bold"], prompt, ansi.NormalPen, string(l.input)))
	ct.TermPrint(ansi.CursorMove(l.cursor - len(l.input)))
}

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(prompt terminal.Prompt, events *terminal.ReadEvents) (string, error) {
	if ct.silenced {
		return "", nil
	}

	if events == nil {
		events = &terminal.ReadEvents{}
	}

	ct.RawMode()
	defer ct.CanonicalMode()

	l := &line{}
	history := len(ct.commandHistory)

	// the input being edited is preserved while scrolling through history
	var edit string

	for {
		ct.redraw(prompt, l)

		var r rune

		select {
		case rr := <-ct.runes:
			if rr.err == io.EOF {
				ct.TermPrint("\n")
				return "", terminal.ErrUserQuit
			}
			if rr.err != nil {
				return "", fmt.Errorf("colorterm: %w", rr.err)
			}
			r = rr.r

		case ev := <-events.UserInput:
			if events.UserInputHandler != nil {
				if err := events.UserInputHandler(ev); err != nil {
					ct.TermPrint("\n")
					return "", err
				}
			}
			continue

		case sig := <-events.Signal:
			if events.SignalHandler != nil {
				if err := events.SignalHandler(sig); err != nil {
					ct.TermPrint("\n")
					return "", err
				}
			}
			continue
		}

		switch r {
		case easyterm.KeyInterrupt:
			ct.TermPrint("\n")
			return "", terminal.ErrUserInterrupt

		case easyterm.KeyEndOfTransmit:
			if len(l.input) == 0 {
				ct.TermPrint("\n")
				return "", terminal.ErrUserQuit
			}

		case easyterm.KeySuspend:
			ct.SuspendProcess()

		case easyterm.KeyCarriageReturn, '\n':
			s := string(l.input)
			ct.addHistory(s)
			ct.TermPrint("\n")
			return s, nil

		case easyterm.KeyBackspace, easyterm.KeyDelete:
			l.backspace()
			history = len(ct.commandHistory)

		case easyterm.KeyEsc:
			if err := ct.escape(l, &history, &edit); err != nil {
				return "", err
			}

		default:
			if unicode.IsPrint(r) {
				l.insert(r)
				history = len(ct.commandHistory)
			}
		}
	}
}

func (ct *ColorTerminal) next() (rune, error) {
	rr := <-ct.runes
	return rr.r, rr.err
}

// escape handles the cursor key escape sequences.
func (ct *ColorTerminal) escape(l *line, history *int, edit *string) error {
	r, err := ct.next()
	if err != nil {
		return fmt.Errorf("colorterm: %w", err)
	}
	if r != easyterm.EscCursor {
		return nil
	}

	r, err = ct.next()
	if err != nil {
		return fmt.Errorf("colorterm: %w", err)
	}

	switch r {
	case easyterm.CursorUp:
		if *history > 0 {
			if *history == len(ct.commandHistory) {
				*edit = string(l.input)
			}
			*history--
			l.set(ct.commandHistory[*history])
		}
	case easyterm.CursorDown:
		if *history < len(ct.commandHistory)-1 {
			*history++
			l.set(ct.commandHistory[*history])
		} else if *history == len(ct.commandHistory)-1 {
			*history++
			l.set(*edit)
		}
	case easyterm.CursorForward:
		if l.cursor < len(l.input) {
			l.cursor++
		}
	case easyterm.CursorBackward:
		if l.cursor > 0 {
			l.cursor--
		}
	case easyterm.CursorHome:
		l.cursor = 0
	case easyterm.CursorEnd:
		l.cursor = len(l.input)
	case easyterm.CursorDelete:
		// delete key is followed by a tilde
		if _, err := ct.next(); err != nil {
			return fmt.Errorf("colorterm: %w", err)
		}
		l.delete()
		*history = len(ct.commandHistory)
	}

	return nil
}
