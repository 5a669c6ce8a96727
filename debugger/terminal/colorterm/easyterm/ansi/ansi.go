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

// Package ansi defines ANSI control codes for styles and colours.
package ansi

import (
	"fmt"
	"strings"
)

// ansi colours, in the order they are numbered by the standard.
var colours = []string{"BLACK", "RED", "GREEN", "YELLOW", "BLUE", "MAGENTA", "CYAN", "WHITE"}

// the default colour
const colDefault = 9

// ansi target.
const (
	targetPen         = 3
	targetPaper       = 4
	targetBrightPen   = 9
	targetBrightPaper = 10
)

// ansi attributes.
var attributes = map[string]int{
	"BOLD":      1,
	"DIM":       2,
	"UNDERLINE": 4,
	"INVERSE":   7,
	"STRIKE":    9,
}

// Pens is the table of colors to be used for text.
var Pens = make(map[string]string)

// DimPens is the table of pastel colors to be used for text.
var DimPens = make(map[string]string)

// PenStyles is the table of styles to be used for text.
var PenStyles = make(map[string]string)

// NormalPen is the CSI sequence for regular text.
const NormalPen = "\033[m"

func init() {
	for _, c := range colours[1:] {
		n := strings.ToLower(c)
		Pens[n] = must(ColorBuild(c, "", "", true, false))
		DimPens[n] = must(ColorBuild(c, "", "", false, false))
	}
	PenStyles["bold"] = must(ColorBuild("", "", "bold", false, false))
	PenStyles["underline"] = must(ColorBuild("", "", "underline", false, false))
}

func must(s string, err error) string {
	if err != nil {
		panic(err)
	}
	return s
}

func colour(name string, target int) (string, error) {
	name = strings.ToUpper(name)
	if name == "NORMAL" {
		return fmt.Sprintf("%d%d", target, colDefault), nil
	}
	for i, c := range colours {
		if c == name {
			return fmt.Sprintf("%d%d", target, i), nil
		}
	}
	return "", fmt.Errorf("ansi: unknown colour (%s)", name)
}

// ColorBuild creates the ANSI sequence to create the pen with the correct
// foreground/background color and attribute.
func ColorBuild(pen, paper, attribute string, brightPen, brightPaper bool) (string, error) {
	var codes []string

	if pen != "" {
		target := targetPen
		if brightPen {
			target = targetBrightPen
		}
		c, err := colour(pen, target)
		if err != nil {
			return "", err
		}
		codes = append(codes, c)
	}

	if paper != "" {
		target := targetPaper
		if brightPaper {
			target = targetBrightPaper
		}
		c, err := colour(paper, target)
		if err != nil {
			return "", err
		}
		codes = append(codes, c)
	}

	if attribute != "" && strings.ToUpper(attribute) != "NORMAL" {
		a, ok := attributes[strings.ToUpper(attribute)]
		if !ok {
			return "", fmt.Errorf("ansi: unknown attribute (%s)", attribute)
		}
		codes = append(codes, fmt.Sprintf("%d", a))
	}

	return fmt.Sprintf("\033[%sm", strings.Join(codes, ";")), nil
}

// ClearLine is the CSI sequence to clear the entire of the current line.
const ClearLine = "\033[2K"

// CursorStore if the CSI sequence to store the current cursor position.
const CursorStore = "\033[s"

// CursorRestore if the CSI sequence to restore the cursor position to a
// previous store.
const CursorRestore = "\033[u"

// CursorForwardOne is the CSI sequence to move the cursor forward one
// character.
const CursorForwardOne = "\033[1C"

// CursorBackwardOne is the CSI sequence to move the cursor backward one
// character.
const CursorBackwardOne = "\033[1D"

// CursorMove is the CSI sequence to move the cursor n characters forward
// (positive numbers) or n characters backwards (negative numbers).
func CursorMove(n int) string {
	if n < 0 {
		return fmt.Sprintf("\033[%dD", -n)
	} else if n > 0 {
		return fmt.Sprintf("\033[%dC", n)
	}
	return ""
}
