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

// Package sdlgl is a GUI implementation using an OpenGL 2.1 context created
// by SDL. The frame is uploaded to a texture and drawn as a single quad.
package sdlgl

import (
	"fmt"
	"image"
	"runtime"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/gopherodyssey/gui"
	"github.com/jetsetilly/gopherodyssey/gui/sdlinput"
	"github.com/jetsetilly/gopherodyssey/hardware/television"
	"github.com/jetsetilly/gopherodyssey/hardware/television/specification"
	"github.com/jetsetilly/gopherodyssey/logger"
	"github.com/jetsetilly/gopherodyssey/version"
)

type featureRequest struct {
	request gui.FeatureReq
	args    []gui.FeatureReqData
}

// SdlGL implements the gui.GUI interface.
type SdlGL struct {
	*television.Frame

	input  *sdlinput.Input
	events chan gui.Event

	window    *sdl.Window
	glContext sdl.GLContext
	texture   uint32

	// the texture is created on the first call to present() and updated
	// thereafter
	createTexture bool

	scale  int
	paused bool

	featureReq chan featureRequest
	featureErr chan error
}

// NewSdlGL is the preferred method of initialisation for the SdlGL type.
//
// MUST ONLY be called from the main thread.
func NewSdlGL(scale int) (*SdlGL, error) {
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_JOYSTICK)
	if err != nil {
		return nil, fmt.Errorf("sdlgl: %w", err)
	}

	scr := &SdlGL{
		Frame:         television.NewFrame(),
		createTexture: true,
		featureReq:    make(chan featureRequest, 1),
		featureErr:    make(chan error, 1),
	}

	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 2)
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
	_ = sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)

	scr.window, err = sdl.CreateWindow(version.ApplicationName,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		0, 0,
		sdl.WINDOW_HIDDEN|sdl.WINDOW_OPENGL)
	if err != nil {
		scr.Destroy()
		return nil, fmt.Errorf("sdlgl: %w", err)
	}

	scr.glContext, err = scr.window.GLCreateContext()
	if err != nil {
		scr.Destroy()
		return nil, fmt.Errorf("sdlgl: %w", err)
	}

	err = scr.window.GLMakeCurrent(scr.glContext)
	if err != nil {
		scr.Destroy()
		return nil, fmt.Errorf("sdlgl: %w", err)
	}

	err = gl.Init()
	if err != nil {
		scr.Destroy()
		return nil, fmt.Errorf("sdlgl: %w", err)
	}

	logger.Logf(logger.Allow, "sdlgl", "vendor: %s", gl.GoStr(gl.GetString(gl.VENDOR)))
	logger.Logf(logger.Allow, "sdlgl", "renderer: %s", gl.GoStr(gl.GetString(gl.RENDERER)))
	logger.Logf(logger.Allow, "sdlgl", "driver: %s", gl.GoStr(gl.GetString(gl.VERSION)))

	// the swap interval is not important. the frame rate is governed by the
	// limiter
	_ = sdl.GLSetSwapInterval(0)

	gl.Enable(gl.TEXTURE_2D)
	gl.GenTextures(1, &scr.texture)
	gl.BindTexture(gl.TEXTURE_2D, scr.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)

	err = scr.setScale(scale)
	if err != nil {
		scr.Destroy()
		return nil, fmt.Errorf("sdlgl: %w", err)
	}

	scr.Frame.OnPresent = scr.present
	scr.input = sdlinput.NewInput()

	return scr, nil
}

// Destroy implements the gui.GUI interface.
func (scr *SdlGL) Destroy() {
	if scr.input != nil {
		scr.input.Close()
	}
	if scr.texture != 0 {
		gl.DeleteTextures(1, &scr.texture)
		scr.texture = 0
	}
	if scr.glContext != nil {
		sdl.GLDeleteContext(scr.glContext)
		scr.glContext = nil
	}
	if scr.window != nil {
		_ = scr.window.Destroy()
		scr.window = nil
	}
	sdl.Quit()
}

// each console pixel is twice as wide as it is tall
func (scr *SdlGL) setScale(scale int) error {
	if scale < 1 {
		return fmt.Errorf("scale must be one or more")
	}
	scr.scale = scale

	w := int32(specification.ScreenWidth * 2 * scale)
	h := int32(specification.ScreenHeight * scale)
	scr.window.SetSize(w, h)
	gl.Viewport(0, 0, w, h)

	return nil
}

// called by Frame.Present() with the most recently completed image
func (scr *SdlGL) present(img *image.RGBA) error {
	w := int32(img.Bounds().Dx())
	h := int32(img.Bounds().Dy())

	gl.BindTexture(gl.TEXTURE_2D, scr.texture)
	if scr.createTexture {
		scr.createTexture = false
		gl.TexImage2D(gl.TEXTURE_2D, 0,
			gl.RGBA, w, h, 0,
			gl.RGBA, gl.UNSIGNED_BYTE,
			gl.Ptr(img.Pix))
	} else {
		gl.TexSubImage2D(gl.TEXTURE_2D, 0,
			0, 0, w, h,
			gl.RGBA, gl.UNSIGNED_BYTE,
			gl.Ptr(img.Pix))
	}

	gl.ClearColor(0.0, 0.0, 0.0, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	// the top of the image is at the top of the window
	gl.Begin(gl.QUADS)
	gl.TexCoord2f(0, 1)
	gl.Vertex2f(-1, -1)
	gl.TexCoord2f(1, 1)
	gl.Vertex2f(1, -1)
	gl.TexCoord2f(1, 0)
	gl.Vertex2f(1, 1)
	gl.TexCoord2f(0, 0)
	gl.Vertex2f(-1, 1)
	gl.End()

	scr.window.GLSwap()

	if e := gl.GetError(); e != gl.NO_ERROR {
		return fmt.Errorf("sdlgl: error %#x", e)
	}
	return nil
}

// Service implements the gui.GUI interface.
//
// MUST ONLY be called from the main thread.
func (scr *SdlGL) Service() error {
	select {
	case r := <-scr.featureReq:
		scr.featureErr <- scr.serviceFeatureRequest(r)
	default:
	}

	scr.input.Poll(scr.events)

	return scr.Frame.Present()
}
