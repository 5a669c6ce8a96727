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

// Package sdlsoft is a GUI implementation using the SDL renderer. The frame is
// drawn to a streaming texture which is scaled to fit the window.
package sdlsoft

import (
	"fmt"
	"image"
	"runtime"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/gopherodyssey/gui"
	"github.com/jetsetilly/gopherodyssey/gui/sdlinput"
	"github.com/jetsetilly/gopherodyssey/hardware/television"
	"github.com/jetsetilly/gopherodyssey/hardware/television/specification"
	"github.com/jetsetilly/gopherodyssey/version"
)

// the number of bytes in each pixel of the texture
const pixelDepth = 4

type featureRequest struct {
	request gui.FeatureReq
	args    []gui.FeatureReqData
}

// SdlSoft implements the gui.GUI interface.
type SdlSoft struct {
	*television.Frame

	input  *sdlinput.Input
	events chan gui.Event

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	scale  int
	paused bool

	featureReq chan featureRequest
	featureErr chan error
}

// NewSdlSoft is the preferred method of initialisation for the SdlSoft type.
//
// MUST ONLY be called from the main thread.
func NewSdlSoft(scale int) (*SdlSoft, error) {
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_JOYSTICK)
	if err != nil {
		return nil, fmt.Errorf("sdlsoft: %w", err)
	}

	scr := &SdlSoft{
		Frame:      television.NewFrame(),
		featureReq: make(chan featureRequest, 1),
		featureErr: make(chan error, 1),
	}

	scr.window, err = sdl.CreateWindow(version.ApplicationName,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		0, 0,
		sdl.WINDOW_HIDDEN)
	if err != nil {
		scr.Destroy()
		return nil, fmt.Errorf("sdlsoft: %w", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		scr.Destroy()
		return nil, fmt.Errorf("sdlsoft: %w", err)
	}

	// nearest neighbour scaling
	sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, "0")

	scr.texture, err = scr.renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888,
		sdl.TEXTUREACCESS_STREAMING,
		specification.ScreenWidth, specification.ScreenHeight)
	if err != nil {
		scr.Destroy()
		return nil, fmt.Errorf("sdlsoft: %w", err)
	}

	err = scr.setScale(scale)
	if err != nil {
		scr.Destroy()
		return nil, fmt.Errorf("sdlsoft: %w", err)
	}

	scr.Frame.OnPresent = scr.present
	scr.input = sdlinput.NewInput()

	return scr, nil
}

// Destroy implements the gui.GUI interface.
func (scr *SdlSoft) Destroy() {
	if scr.input != nil {
		scr.input.Close()
	}
	if scr.texture != nil {
		_ = scr.texture.Destroy()
		scr.texture = nil
	}
	if scr.renderer != nil {
		_ = scr.renderer.Destroy()
		scr.renderer = nil
	}
	if scr.window != nil {
		_ = scr.window.Destroy()
		scr.window = nil
	}
	sdl.Quit()
}

// each console pixel is twice as wide as it is tall
func (scr *SdlSoft) setScale(scale int) error {
	if scale < 1 {
		return fmt.Errorf("scale must be one or more")
	}
	scr.scale = scale
	scr.window.SetSize(int32(specification.ScreenWidth*2*scale), int32(specification.ScreenHeight*scale))
	return nil
}

// called by Frame.Present() with the most recently completed image
func (scr *SdlSoft) present(img *image.RGBA) error {
	err := scr.texture.Update(nil, unsafe.Pointer(&img.Pix[0]), img.Stride)
	if err != nil {
		return fmt.Errorf("sdlsoft: %w", err)
	}

	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return fmt.Errorf("sdlsoft: %w", err)
	}

	scr.renderer.Present()
	return nil
}

// Service implements the gui.GUI interface.
//
// MUST ONLY be called from the main thread.
func (scr *SdlSoft) Service() error {
	select {
	case r := <-scr.featureReq:
		scr.featureErr <- scr.serviceFeatureRequest(r)
	default:
	}

	scr.input.Poll(scr.events)

	return scr.Frame.Present()
}
