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

// CharsetSize is the number of bytes in the character generator. Each glyph
// is eight bytes, the last of which is always blank.
const CharsetSize = 512

// Charset is the built-in character generator. Bit 7 of each byte is the
// leftmost pixel.
var Charset = [CharsetSize]uint8{
	0x38, 0x44, 0x44, 0x44, 0x44, 0x44, 0x38, 0x00, // 0
	0x10, 0x30, 0x10, 0x10, 0x10, 0x10, 0x38, 0x00, // 1
	0x38, 0x44, 0x04, 0x08, 0x10, 0x20, 0x7c, 0x00, // 2
	0x7c, 0x04, 0x08, 0x18, 0x04, 0x44, 0x38, 0x00, // 3
	0x08, 0x18, 0x28, 0x48, 0x7c, 0x08, 0x08, 0x00, // 4
	0x7c, 0x40, 0x78, 0x04, 0x04, 0x44, 0x38, 0x00, // 5
	0x38, 0x40, 0x40, 0x78, 0x44, 0x44, 0x38, 0x00, // 6
	0x7c, 0x04, 0x08, 0x10, 0x20, 0x20, 0x20, 0x00, // 7
	0x38, 0x44, 0x44, 0x38, 0x44, 0x44, 0x38, 0x00, // 8
	0x38, 0x44, 0x44, 0x3c, 0x04, 0x04, 0x38, 0x00, // 9
	0x00, 0x10, 0x00, 0x00, 0x00, 0x10, 0x00, 0x00, // :
	0x10, 0x3c, 0x50, 0x38, 0x14, 0x78, 0x10, 0x00, // $
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, //  
	0x38, 0x44, 0x04, 0x08, 0x10, 0x00, 0x10, 0x00, // ?
	0x40, 0x40, 0x40, 0x40, 0x40, 0x40, 0x7c, 0x00, // L
	0x78, 0x44, 0x44, 0x78, 0x40, 0x40, 0x40, 0x00, // P
	0x00, 0x10, 0x10, 0x7c, 0x10, 0x10, 0x00, 0x00, // +
	0x44, 0x44, 0x44, 0x54, 0x54, 0x6c, 0x44, 0x00, // W
	0x7c, 0x40, 0x40, 0x78, 0x40, 0x40, 0x7c, 0x00, // E
	0x78, 0x44, 0x44, 0x78, 0x50, 0x48, 0x44, 0x00, // R
	0x7c, 0x10, 0x10, 0x10, 0x10, 0x10, 0x10, 0x00, // T
	0x44, 0x44, 0x44, 0x44, 0x44, 0x44, 0x38, 0x00, // U
	0x38, 0x10, 0x10, 0x10, 0x10, 0x10, 0x38, 0x00, // I
	0x38, 0x44, 0x44, 0x44, 0x44, 0x44, 0x38, 0x00, // O
	0x38, 0x44, 0x44, 0x44, 0x54, 0x48, 0x34, 0x00, // Q
	0x38, 0x44, 0x40, 0x38, 0x04, 0x44, 0x38, 0x00, // S
	0x78, 0x44, 0x44, 0x44, 0x44, 0x44, 0x78, 0x00, // D
	0x7c, 0x40, 0x40, 0x78, 0x40, 0x40, 0x40, 0x00, // F
	0x38, 0x44, 0x40, 0x5c, 0x44, 0x44, 0x38, 0x00, // G
	0x44, 0x44, 0x44, 0x7c, 0x44, 0x44, 0x44, 0x00, // H
	0x04, 0x04, 0x04, 0x04, 0x04, 0x44, 0x38, 0x00, // J
	0x44, 0x48, 0x50, 0x60, 0x50, 0x48, 0x44, 0x00, // K
	0x38, 0x44, 0x44, 0x7c, 0x44, 0x44, 0x44, 0x00, // A
	0x7c, 0x04, 0x08, 0x10, 0x20, 0x40, 0x7c, 0x00, // Z
	0x44, 0x44, 0x28, 0x10, 0x28, 0x44, 0x44, 0x00, // X
	0x38, 0x44, 0x40, 0x40, 0x40, 0x44, 0x38, 0x00, // C
	0x44, 0x44, 0x44, 0x44, 0x44, 0x28, 0x10, 0x00, // V
	0x78, 0x44, 0x44, 0x78, 0x44, 0x44, 0x78, 0x00, // B
	0x44, 0x6c, 0x54, 0x54, 0x44, 0x44, 0x44, 0x00, // M
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10, 0x00, // .
	0x00, 0x00, 0x00, 0x7c, 0x00, 0x00, 0x00, 0x00, // -
	0x00, 0x44, 0x28, 0x10, 0x28, 0x44, 0x00, 0x00, // x
	0x00, 0x10, 0x00, 0x7c, 0x00, 0x10, 0x00, 0x00, // div
	0x00, 0x00, 0x7c, 0x00, 0x7c, 0x00, 0x00, 0x00, // =
	0x44, 0x44, 0x28, 0x10, 0x10, 0x10, 0x10, 0x00, // Y
	0x44, 0x64, 0x54, 0x4c, 0x44, 0x44, 0x44, 0x00, // N
	0x00, 0x04, 0x08, 0x10, 0x20, 0x40, 0x00, 0x00, // /
	0xfe, 0xfe, 0xfe, 0xfe, 0xfe, 0xfe, 0xfe, 0x00, // box
	0x4c, 0xd2, 0x52, 0x52, 0x52, 0x52, 0xec, 0x00, // 10
	0x00, 0x38, 0x7c, 0x7c, 0x7c, 0x38, 0x00, 0x00, // ball
	0x18, 0x18, 0x38, 0x5a, 0x18, 0x24, 0x42, 0x00, // man right
	0x18, 0x18, 0x1c, 0x5a, 0x18, 0x24, 0x42, 0x00, // man left
	0x18, 0x18, 0x3c, 0x59, 0x18, 0x26, 0x40, 0x00, // man run right
	0x18, 0x18, 0x3c, 0x9a, 0x18, 0x64, 0x02, 0x00, // man run left
	0x00, 0x80, 0xc4, 0xff, 0xc4, 0x80, 0x00, 0x00, // plane right
	0x00, 0x01, 0x23, 0xff, 0x23, 0x01, 0x00, 0x00, // plane left
	0x00, 0x38, 0x6c, 0xff, 0xff, 0x66, 0x00, 0x00, // car right
	0x00, 0x1c, 0x36, 0xff, 0xff, 0x66, 0x00, 0x00, // car left
	0x10, 0x38, 0x7c, 0xfe, 0x10, 0x10, 0x10, 0x00, // tree
	0x00, 0x08, 0x0c, 0xfe, 0x0c, 0x08, 0x00, 0x00, // arrow right
	0x00, 0x10, 0x30, 0x7f, 0x30, 0x10, 0x00, 0x00, // arrow left
	0x00, 0x6c, 0xfe, 0xfe, 0x7c, 0x38, 0x10, 0x00, // heart
	0x10, 0x38, 0x7c, 0xfe, 0x7c, 0x38, 0x10, 0x00, // diamond
	0x00, 0x00, 0x63, 0x94, 0x08, 0x00, 0x00, 0x00, // wave
}
