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

// Package specification contains the definitions of the NTSC and PAL versions
// of the Odyssey² as they affect timing.
package specification

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherodyssey/hardware/clocks"
)

// SpecList is the list of specifications that the console may adopt.
var SpecList = []string{"NTSC", "PAL"}

// Spec is used to define the two console specifications.
type Spec struct {
	ID string

	// the scanline on which drawing of the visible screen starts. vertical
	// blank starts ScreenHeight scanlines later
	FirstDrawingScanline int

	// the number of VDC steps to run for every CPU cycle
	VDCRatio int

	// the number of frames per second
	FramesPerSecond float32

	// on PAL consoles the external interrupt is cleared on a fixed scanline.
	// the value is -1 if there is no such scanline
	ClearIRQScanline int
}

func (spec Spec) String() string {
	return spec.ID
}

// ScanlinesTotal returns the number of scanlines in a frame.
func (spec Spec) ScanlinesTotal() int {
	return ScreenHeight + spec.FirstDrawingScanline
}

// The visible screen size is the same for both specifications.
const (
	ScreenWidth  = 170
	ScreenHeight = 240
)

// SpecNTSC is the specification for NTSC consoles.
var SpecNTSC = Spec{
	ID:                   "NTSC",
	FirstDrawingScanline: 21,
	VDCRatio:             clocks.NTSC_Ratio,
	FramesPerSecond:      60.0,
	ClearIRQScanline:     -1,
}

// SpecPAL is the specification for PAL consoles.
var SpecPAL = Spec{
	ID:                   "PAL",
	FirstDrawingScanline: 72,
	VDCRatio:             clocks.PAL_Ratio,
	FramesPerSecond:      50.0,
	ClearIRQScanline:     21,
}

// Search returns the specification with the ID. The search is case
// insensitive. The empty string and "AUTO" return the NTSC specification.
func Search(id string) (Spec, error) {
	switch strings.ToUpper(strings.TrimSpace(id)) {
	case "", "AUTO", "NTSC":
		return SpecNTSC, nil
	case "PAL":
		return SpecPAL, nil
	}
	return Spec{}, fmt.Errorf("specification: unknown specification (%s)", id)
}
