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

package vdc

import (
	"github.com/jetsetilly/gopherodyssey/hardware/ports"
	"github.com/jetsetilly/gopherodyssey/hardware/television"
)

// Grid geometry.
const (
	gridLeft       = 12
	gridTop        = 24
	gridCellWidth  = 16
	gridCellHeight = 24
	gridBarWidth   = 18
	gridLineWidth  = 2
	gridThickness  = 4
	gridRows       = 8
)

// sprite row shifts for even and odd rows, indexed by the two lowest bits of
// the sprite control byte
var spriteShift = [4][2]int{
	{0, 0},
	{1, 1},
	{1, 0},
	{0, 1},
}

// pixel collects the result of every object that covers a single pixel.
type pixel struct {
	x, y   int
	colour television.Colour
	col    *collisions
}

func (px *pixel) paint(class uint8, colour television.Colour) {
	px.col.record(px.x, px.y, class)
	px.colour = colour
}

func (vd *VDC) drawPixel(x, y int) {
	px := pixel{
		x:   x,
		y:   y,
		col: &vd.collisions,
	}

	px.colour = television.Colour((vd.Mem[Color] >> 3) & 0x07)
	if vd.ports.P1&ports.P1Luminance == ports.P1Luminance {
		px.colour += television.DarkColours
	}

	if vd.gridEnabled() {
		vd.drawGrid(&px)
	}

	if vd.foregroundEnabled() {
		vd.drawChars(&px)
		vd.drawQuads(&px)
		vd.drawSprites(&px)
	}

	if vd.renderer != nil {
		vd.renderer.Plot(x, y, px.colour)
	}
}

// gridColumn returns true if x falls within width pixels of the left edge of
// column i.
func gridColumn(x, i, width int) bool {
	dx := x - (gridLeft + i*gridCellWidth)
	return dx >= 0 && dx < width
}

func (vd *VDC) drawGrid(px *pixel) {
	colour := television.Colour(vd.Mem[Color] & 0x07)
	if vd.Mem[Color]&0x40 == 0 {
		colour += television.DarkColours
	}

	// a pixel can fall within two adjacent columns because the horizontal
	// segments and the wide vertical bars are wider than a grid cell
	var i0 int
	if px.x >= gridLeft {
		i0 = (px.x - gridLeft) / gridCellWidth
	} else {
		i0 = -1
	}

	dy := px.y - gridTop
	if dy < 0 {
		return
	}
	row := dy / gridCellHeight
	rowOffset := dy % gridCellHeight

	// horizontal segments
	if rowOffset < gridThickness && row <= gridRows {
		for i := i0 - 1; i <= i0; i++ {
			if i < 0 || i >= NumHGrid || !gridColumn(px.x, i, gridBarWidth) {
				continue
			}
			var set bool
			if row < gridRows {
				set = vd.Mem[HGridOrigin+i]&(1<<row) != 0
			} else {
				set = vd.Mem[HGrid9Origin+i]&0x01 != 0
			}
			if set {
				px.paint(ClassHGrid, colour)
				break
			}
		}
	}

	// vertical segments
	if row >= gridRows {
		return
	}

	height := gridCellHeight
	if vd.Mem[Control]&ControlGridDots == ControlGridDots {
		height = gridThickness
	}
	width := gridLineWidth
	if vd.Mem[Control]&ControlGridWide == ControlGridWide {
		width = gridBarWidth
	}

	if rowOffset >= height {
		return
	}

	for i := i0 - 1; i <= i0; i++ {
		if i < 0 || i >= NumVGrid || !gridColumn(px.x, i, width) {
			continue
		}
		if vd.Mem[VGridOrigin+i]&(1<<row) != 0 {
			px.paint(ClassVGrid, colour)
			break
		}
	}
}

// objectX converts the horizontal register value of an object to a screen
// position.
func objectX(v uint8) int {
	return int(v)%CyclesPerScanline + objectXOffset
}

// drawChar paints the pixel if it is covered by the character described by
// the four bytes starting at offset. The horizontal position is given
// separately because characters in a quad are positioned relative to the first
// character.
func (vd *VDC) drawChar(px *pixel, offset int, x0 int) {
	dx := px.x - x0
	if dx < 0 || dx >= 8 {
		return
	}

	y0 := int(vd.Mem[offset] &^ 0x01)
	dy := px.y - y0
	if dy < 0 || dy >= 16 {
		return
	}

	attr := vd.Mem[offset+3]
	ptr := int(vd.Mem[offset+2]) | int(attr&0x01)<<8

	idx := (ptr + (y0+dy)/2) & (CharsetSize - 1)

	// the character is cut off at the end of the glyph
	if dy/2 > idx%8 {
		return
	}

	if Charset[idx]&(0x80>>dx) != 0 {
		px.paint(ClassChars, television.ObjectColours+television.Colour((attr>>1)&0x07))
	}
}

func (vd *VDC) drawChars(px *pixel) {
	for i := 0; i < NumChars; i++ {
		offset := CharsOrigin + i*4
		vd.drawChar(px, offset, objectX(vd.Mem[offset+1]))
	}
}

func (vd *VDC) drawQuads(px *pixel) {
	for q := 0; q < NumQuads; q++ {
		offset := QuadsOrigin + q*16
		x0 := objectX(vd.Mem[offset+1])
		for k := 0; k < charsPerQuad; k++ {
			vd.drawChar(px, offset+k*4, x0+k*16)
		}
	}
}

func (vd *VDC) drawSprite(px *pixel, i int) {
	ctrl := vd.Mem[SpriteControlOrigin+i*4:]

	scale := 1
	if ctrl[2]&0x04 == 0x04 {
		scale = 2
	}

	dy := px.y - int(ctrl[0])
	if dy < 0 {
		return
	}
	row := dy / (2 * scale)
	if row >= 8 {
		return
	}

	dx := px.x - objectX(ctrl[1]) - spriteShift[ctrl[2]&0x03][row%2]
	if dx < 0 {
		return
	}
	bit := dx / scale
	if bit >= 8 {
		return
	}

	if vd.Mem[SpriteShapeOrigin+i*8+row]&(1<<bit) != 0 {
		px.paint(1<<i, television.ObjectColours+television.Colour((ctrl[2]>>3)&0x07))
	}
}

func (vd *VDC) drawSprites(px *pixel) {
	for i := NumSprites - 1; i >= 0; i-- {
		vd.drawSprite(px, i)
	}
}
