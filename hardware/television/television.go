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

package television

import (
	"fmt"
	"image"
)

// Colour is an index into the palette.
type Colour uint8

// Renderer is implemented by presentation backends.
//
// Plot() and Fill() are called by the VDC as it draws. Blit() is called once
// per frame as the VDC enters vertical blank. The VDC does not call
// Present(). It is called by the host to show the most recent complete frame
// and may be called from a different goroutine to the other functions.
type Renderer interface {
	Plot(x, y int, c Colour)
	Fill(r image.Rectangle, c Colour)
	Blit() error
	Present() error
}

// Coords identify a moment of the emulation from the point of view of the
// VDC.
type Coords struct {
	Frame    int
	Scanline int
	Cycle    int
}

func (c Coords) String() string {
	return fmt.Sprintf("Frame: %d  Scanline: %03d  Cycle: %03d", c.Frame, c.Scanline, c.Cycle)
}

// Sum translates the coordinates into a single value. The value is unique
// for every position in a frame of the specified number of scanlines.
func (c Coords) Sum(scanlinesPerFrame int, cyclesPerScanline int) int64 {
	return int64(c.Frame*scanlinesPerFrame*cyclesPerScanline + c.Scanline*cyclesPerScanline + c.Cycle)
}
