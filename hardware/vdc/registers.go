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

// Read a register as the CPU sees it. Some registers have side effects when
// read. Use Peek() to read a register without side effects.
func (vd *VDC) Read(offset uint8) uint8 {
	var v uint8

	switch offset {
	case Status:
		vd.irq.ClearExternalIRQ()
		v = vd.Mem[Status]
		vd.Mem[Status] &^= StatusVBlank
		return v
	case Collision:
		return vd.collisions.read()
	case Y:
		if vd.Mem[Control]&ControlStrobe == ControlStrobe {
			v = vd.latchY
		} else {
			v = uint8(vd.DrawingLine())
		}
	case X:
		if vd.Mem[Control]&ControlStrobe == ControlStrobe {
			v = vd.latchX
		} else {
			v = uint8(vd.Cycles)
		}
	default:
		return vd.Mem[offset]
	}

	// the value is written back so that it is visible in the register dump
	vd.Mem[offset] = v
	return v
}

// Peek returns the value of a register without any side effects.
func (vd *VDC) Peek(offset uint8) uint8 {
	return vd.Mem[offset]
}

// Write a value to a register. Writes to regions that are currently being
// displayed are dropped.
func (vd *VDC) Write(offset uint8, value uint8) {
	if vd.locked(offset) {
		return
	}

	// the first two bytes of a character in a quad are shared by all four
	// characters of the quad
	if offset >= QuadsOrigin && offset < SpriteShapeOrigin && offset%4 < 2 {
		base := offset &^ 0x0c
		for i := uint8(0); i < charsPerQuad; i++ {
			vd.Mem[base+i*4] = value
		}
		return
	}

	diff := vd.Mem[offset] ^ value
	vd.Mem[offset] = value

	switch offset {
	case Control:
		if value&ControlStrobe == ControlStrobe {
			vd.latchX = uint8(vd.Cycles)
			vd.latchY = uint8(vd.DrawingLine())
		}
		if diff&ControlStrobe == ControlStrobe {
			if value&ControlStrobe == ControlStrobe {
				vd.Mem[Status] |= StatusStrobe
			} else {
				vd.Mem[Status] &^= StatusStrobe
			}
		}
	case Collision:
		vd.collisions.mask = value
	}
}

func (vd *VDC) locked(offset uint8) bool {
	if vd.foregroundEnabled() && offset < SpriteShapeOrigin {
		// the high bytes of quad characters remain writeable
		if offset < QuadsOrigin || offset&0x02 == 0 {
			return true
		}
	}

	if vd.gridEnabled() {
		switch {
		case offset >= HGridOrigin && offset < HGridOrigin+NumHGrid:
			return true
		case offset >= HGrid9Origin && offset < HGrid9Origin+NumHGrid:
			return true
		case offset >= VGridOrigin && offset < VGridOrigin+NumVGrid:
			return true
		}
	}

	return false
}
