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

import "image/color"

// Offsets into the palette.
const (
	// background and grid colours. the dark variants are selected by the
	// luminance bit
	BackgroundColours = 0
	DarkColours       = 8

	// colours of characters, quads and sprites
	ObjectColours = 16

	PaletteSize = 24
)

// Palette is the RGB value of every Colour.
var Palette = [PaletteSize]color.RGBA{
	// background and grid
	{R: 95, G: 110, B: 107, A: 255},  // dark gray
	{R: 106, G: 161, B: 255, A: 255}, // blue
	{R: 61, G: 240, B: 122, A: 255},  // green
	{R: 49, G: 255, B: 255, A: 255},  // cyan
	{R: 255, G: 66, B: 85, A: 255},   // red
	{R: 255, G: 152, B: 255, A: 255}, // violet
	{R: 217, G: 173, B: 93, A: 255},  // yellow
	{R: 255, G: 255, B: 255, A: 255}, // white

	// background and grid with luminance
	{R: 0, G: 0, B: 0, A: 255},       // black
	{R: 14, G: 61, B: 212, A: 255},   // dark blue
	{R: 0, G: 152, B: 27, A: 255},    // dark green
	{R: 0, G: 187, B: 217, A: 255},   // cyan
	{R: 199, G: 0, B: 8, A: 255},     // red
	{R: 204, G: 22, B: 179, A: 255},  // violet
	{R: 157, G: 135, B: 16, A: 255},  // orange
	{R: 225, G: 209, B: 225, A: 255}, // light gray

	// objects
	{R: 95, G: 110, B: 107, A: 255},  // dark gray
	{R: 255, G: 66, B: 85, A: 255},   // red
	{R: 61, G: 240, B: 122, A: 255},  // green
	{R: 217, G: 173, B: 93, A: 255},  // yellow
	{R: 106, G: 161, B: 255, A: 255}, // blue
	{R: 255, G: 152, B: 255, A: 255}, // violet
	{R: 49, G: 255, B: 255, A: 255},  // cyan
	{R: 255, G: 255, B: 255, A: 255}, // white
}

// ToRGBA returns the colour value of the palette entry. Out of range entries
// are returned as black.
func (c Colour) ToRGBA() color.RGBA {
	if int(c) >= PaletteSize {
		return color.RGBA{A: 255}
	}
	return Palette[c]
}
