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

import "github.com/jetsetilly/gopherodyssey/hardware/television/specification"

// Collision classes. Each bit of the COLLISION register refers to one class.
const (
	ClassSprite0  = 0x01
	ClassSprite1  = 0x02
	ClassSprite2  = 0x04
	ClassSprite3  = 0x08
	ClassVGrid    = 0x10
	ClassHGrid    = 0x20
	ClassExternal = 0x40
	ClassChars    = 0x80
)

type collisions struct {
	// the classes that have painted each pixel this frame
	table [specification.ScreenWidth * specification.ScreenHeight]uint8

	// for each class, the classes it has overlapped with this frame
	class [8]uint8

	// every class that has overlapped with any other class this frame
	accum uint8

	// classes selected by the last write to the COLLISION register
	mask uint8
}

func (col *collisions) reset() {
	col.table = [specification.ScreenWidth * specification.ScreenHeight]uint8{}
	col.class = [8]uint8{}
	col.accum = 0
}

// record that class c has been painted at the pixel.
func (col *collisions) record(x, y int, c uint8) {
	i := y*specification.ScreenWidth + x
	e := col.table[i]

	if e&^c != 0 {
		for b := 0; b < 8; b++ {
			if e&(1<<b) != 0 {
				col.class[b] |= c
			}
			if c&(1<<b) != 0 {
				col.class[b] |= e &^ (1 << b)
			}
		}
		col.accum |= c | e
	}

	col.table[i] |= c
}

func (col *collisions) read() uint8 {
	var v uint8
	for b := 0; b < 8; b++ {
		if col.mask&(1<<b) != 0 {
			v |= col.class[b]
		}
	}
	return v
}

// Collisions returns every class that has overlapped with another class since
// the start of the visible frame.
func (vd *VDC) Collisions() uint8 {
	return vd.collisions.accum
}

// ClearCollisions forgets all collisions and pixel ownership for the frame.
func (vd *VDC) ClearCollisions() {
	vd.collisions.reset()
}

// CollisionsAt returns the classes that have painted the pixel this frame.
func (vd *VDC) CollisionsAt(x, y int) uint8 {
	if x < 0 || x >= specification.ScreenWidth || y < 0 || y >= specification.ScreenHeight {
		return 0
	}
	return vd.collisions.table[y*specification.ScreenWidth+x]
}
