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
	"image/draw"
	"image/png"
	"io"
	"sync"

	xdraw "golang.org/x/image/draw"

	"github.com/jetsetilly/gopherodyssey/hardware/television/specification"
)

// Frame is an in-memory implementation of the Renderer interface. The image
// being drawn and the most recently completed image are kept separately. The
// completed image can be read from any goroutine.
type Frame struct {
	crit sync.Mutex

	working *image.RGBA
	ready   *image.RGBA

	// number of calls to Blit()
	count int

	// called by Present() with the most recent complete image. the image
	// must not be retained after the function returns
	OnPresent func(img *image.RGBA) error
}

// NewFrame is the preferred method of initialisation for the Frame type.
func NewFrame() *Frame {
	r := image.Rect(0, 0, specification.ScreenWidth, specification.ScreenHeight)
	return &Frame{
		working: image.NewRGBA(r),
		ready:   image.NewRGBA(r),
	}
}

// Plot implements the Renderer interface.
func (fr *Frame) Plot(x, y int, c Colour) {
	fr.working.SetRGBA(x, y, c.ToRGBA())
}

// Fill implements the Renderer interface.
func (fr *Frame) Fill(r image.Rectangle, c Colour) {
	draw.Draw(fr.working, r, image.NewUniform(c.ToRGBA()), image.Point{}, draw.Src)
}

// Blit implements the Renderer interface. The working image becomes the ready
// image.
func (fr *Frame) Blit() error {
	fr.crit.Lock()
	defer fr.crit.Unlock()
	copy(fr.ready.Pix, fr.working.Pix)
	fr.count++
	return nil
}

// Present implements the Renderer interface.
func (fr *Frame) Present() error {
	if fr.OnPresent == nil {
		return nil
	}
	fr.crit.Lock()
	defer fr.crit.Unlock()
	return fr.OnPresent(fr.ready)
}

// Count returns the number of frames completed.
func (fr *Frame) Count() int {
	fr.crit.Lock()
	defer fr.crit.Unlock()
	return fr.count
}

// Image returns a copy of the most recently completed image.
func (fr *Frame) Image() *image.RGBA {
	fr.crit.Lock()
	defer fr.crit.Unlock()
	img := image.NewRGBA(fr.ready.Bounds())
	copy(img.Pix, fr.ready.Pix)
	return img
}

// Screenshot writes the most recently completed image to the io.Writer as a
// PNG file. The image is scaled by the integer scale value. Each pixel of the
// Odyssey² is wider than it is tall and so the horizontal scaling is doubled.
func (fr *Frame) Screenshot(w io.Writer, scale int) error {
	if scale < 1 {
		return fmt.Errorf("television: screenshot: scale must be one or more")
	}

	src := fr.Image()
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale*2, b.Dy()*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)

	if err := png.Encode(w, dst); err != nil {
		return fmt.Errorf("television: screenshot: %w", err)
	}
	return nil
}
