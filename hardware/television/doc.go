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

// Package television is the narrow interface between the VDC and whatever is
// presenting the image. The VDC knows nothing about windows, textures or
// files. It plots palette indexes with the Renderer interface and says when a
// frame has finished with Blit().
//
// Frame is an implementation of Renderer that keeps the image in memory. It
// is used directly by headless modes and is embedded in the presentation
// backends of the gui package.
package television
