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

package digest

import (
	"crypto/sha1"
	"fmt"
	"image"

	"github.com/jetsetilly/gopherodyssey/hardware/television"
	"github.com/jetsetilly/gopherodyssey/hardware/television/specification"
)

// Video is an implementation of the television.Renderer interface with an
// embedded Digest implementation. The hash is updated at the end of every
// frame.
type Video struct {
	digest   [sha1.Size]byte
	pixels   []byte
	frameNum int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	dig := &Video{}

	// length of pixels array contains enough room for the previous frames
	// digest value
	dig.pixels = make([]byte, len(dig.digest)+specification.ScreenWidth*specification.ScreenHeight)

	return dig
}

// Hash implements the Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Video) ResetDigest() {
	clear(dig.digest[:])
	dig.frameNum = 0
}

// Frames returns the number of frames that have contributed to the hash.
func (dig *Video) Frames() int {
	return dig.frameNum
}

func (dig *Video) offset(x, y int) int {
	return len(dig.digest) + y*specification.ScreenWidth + x
}

// Plot implements the television.Renderer interface.
func (dig *Video) Plot(x, y int, c television.Colour) {
	if x < 0 || x >= specification.ScreenWidth || y < 0 || y >= specification.ScreenHeight {
		return
	}
	dig.pixels[dig.offset(x, y)] = byte(c)
}

// Fill implements the television.Renderer interface.
func (dig *Video) Fill(r image.Rectangle, c television.Colour) {
	r = r.Intersect(image.Rect(0, 0, specification.ScreenWidth, specification.ScreenHeight))
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			dig.pixels[dig.offset(x, y)] = byte(c)
		}
	}
}

// Blit implements the television.Renderer interface.
func (dig *Video) Blit() error {
	// chain fingerprints by copying the value of the last fingerprint
	// to the head of the video data
	n := copy(dig.pixels, dig.digest[:])
	if n != len(dig.digest) {
		return fmt.Errorf("digest: video: digest error during new frame")
	}
	dig.digest = sha1.Sum(dig.pixels)
	dig.frameNum++
	return nil
}

// Present implements the television.Renderer interface.
func (dig *Video) Present() error {
	return nil
}
