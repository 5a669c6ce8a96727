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
	"fmt"
	"image"
	"strings"

	"github.com/jetsetilly/gopherodyssey/hardware/memory/dump"
	"github.com/jetsetilly/gopherodyssey/hardware/ports"
	"github.com/jetsetilly/gopherodyssey/hardware/television"
	"github.com/jetsetilly/gopherodyssey/hardware/television/specification"
)

// Timing of the scanline.
const (
	CyclesPerScanline = 228
	HBlankStart       = 178
	HBlankEnd         = 222
)

// the horizontal position of an object is offset from the value in the
// register
const objectXOffset = 4

// Size of the register file.
const MemorySize = 256

// Register file layout.
const (
	SpriteControlOrigin = 0x00
	CharsOrigin         = 0x10
	QuadsOrigin         = 0x40
	SpriteShapeOrigin   = 0x80
	HGridOrigin         = 0xc0
	HGrid9Origin        = 0xd0
	VGridOrigin         = 0xe0

	Control   = 0xa0
	Status    = 0xa1
	Collision = 0xa2
	Color     = 0xa3
	Y         = 0xa4
	X         = 0xa5
)

// Number of each object type.
const (
	NumSprites   = 4
	NumChars     = 12
	NumQuads     = 4
	NumHGrid     = 9
	NumVGrid     = 10
	charsPerQuad = 4
)

// CONTROL register bits.
const (
	ControlHBlankIRQ  = 0x01
	ControlStrobe     = 0x02
	ControlGrid       = 0x08
	ControlForeground = 0x20
	ControlGridDots   = 0x40
	ControlGridWide   = 0x80
)

// STATUS register bits.
const (
	StatusNotHBlank = 0x01
	StatusStrobe    = 0x02
	StatusVBlank    = 0x08
)

// IRQ is the connection to the CPU.
type IRQ interface {
	ExternalIRQ()
	ClearExternalIRQ()
	CounterIncrement()
}

// VDC is the video display controller.
type VDC struct {
	spec     specification.Spec
	ports    *ports.Ports
	irq      IRQ
	renderer television.Renderer

	// the register file
	Mem [MemorySize]uint8

	// beam position
	Cycles   int
	Scanline int

	// number of vertical blanks since reset
	FrameNum int

	enteredVBlank bool
	inVBlank      bool

	// beam position captured by the strobe
	latchX uint8
	latchY uint8

	collisions collisions
}

// NewVDC is the preferred method of initialisation for the VDC type.
func NewVDC(spec specification.Spec, p *ports.Ports, irq IRQ, renderer television.Renderer) *VDC {
	vd := &VDC{
		spec:     spec,
		ports:    p,
		irq:      irq,
		renderer: renderer,
	}
	vd.Reset()
	return vd
}

// Reset the VDC to its power-on state. The register file is cleared.
func (vd *VDC) Reset() {
	vd.Mem = [MemorySize]uint8{}
	vd.Cycles = 0
	vd.Scanline = 0
	vd.FrameNum = 0
	vd.enteredVBlank = false
	vd.inVBlank = true
	vd.latchX = 0
	vd.latchY = 0
	vd.collisions.reset()

	if vd.renderer != nil {
		vd.renderer.Fill(image.Rect(0, 0, specification.ScreenWidth, specification.ScreenHeight), 0)
	}
}

// Spec returns the timing specification of the VDC.
func (vd *VDC) Spec() specification.Spec {
	return vd.spec
}

// Plumb a new renderer into the VDC.
func (vd *VDC) Plumb(renderer television.Renderer) {
	vd.renderer = renderer
}

// DrawingLine returns the scanline relative to the first visible scanline.
// The value is negative during the top part of vertical blank.
func (vd *VDC) DrawingLine() int {
	return vd.Scanline - vd.spec.FirstDrawingScanline
}

// GetCoords returns the current position of the beam.
func (vd *VDC) GetCoords() television.Coords {
	return television.Coords{
		Frame:    vd.FrameNum,
		Scanline: vd.Scanline,
		Cycle:    vd.Cycles,
	}
}

// EnteredVBlank returns true once after the VDC has entered vertical blank.
func (vd *VDC) EnteredVBlank() bool {
	if vd.enteredVBlank {
		vd.enteredVBlank = false
		return true
	}
	return false
}

// InVBlank returns true if the beam is in the vertical blank.
func (vd *VDC) InVBlank() bool {
	return vd.inVBlank
}

// Step advances the VDC by one cycle. The only error returned is an error from
// the renderer.
func (vd *VDC) Step() error {
	var err error

	if vd.Cycles >= CyclesPerScanline {
		vd.Cycles -= CyclesPerScanline
		vd.Scanline++

		if vd.Scanline >= vd.spec.ScanlinesTotal() {
			vd.Scanline = 0
			err = vd.enterVBlank()
		} else if vd.Scanline == vd.spec.FirstDrawingScanline {
			vd.leaveVBlank()
		}

		if vd.Scanline == vd.spec.ClearIRQScanline {
			vd.irq.ClearExternalIRQ()
		}
	}

	switch vd.Cycles {
	case HBlankStart:
		vd.Mem[Status] &^= StatusNotHBlank
		if vd.Mem[Control]&ControlHBlankIRQ == ControlHBlankIRQ {
			vd.irq.ExternalIRQ()
		}
	case HBlankEnd:
		vd.Mem[Status] |= StatusNotHBlank
		if vd.DrawingLine() >= 0 {
			vd.irq.CounterIncrement()
		}
	}

	line := vd.DrawingLine()
	if line >= 0 && line < specification.ScreenHeight && vd.Cycles < specification.ScreenWidth {
		vd.drawPixel(vd.Cycles, line)
	}

	vd.Cycles++

	return err
}

func (vd *VDC) enterVBlank() error {
	vd.Mem[Status] |= StatusVBlank
	vd.ports.T1 = true
	vd.irq.ExternalIRQ()
	vd.FrameNum++
	vd.enteredVBlank = true
	vd.inVBlank = true

	if vd.renderer != nil {
		if err := vd.renderer.Blit(); err != nil {
			return fmt.Errorf("vdc: %w", err)
		}
	}

	return nil
}

func (vd *VDC) leaveVBlank() {
	vd.ports.T1 = false
	vd.inVBlank = false
	vd.collisions.reset()
}

func (vd *VDC) foregroundEnabled() bool {
	return vd.Mem[Control]&ControlForeground == ControlForeground
}

func (vd *VDC) gridEnabled() bool {
	return vd.Mem[Control]&ControlGrid == ControlGrid
}

func (vd *VDC) String() string {
	return dump.String(vd.Mem[:])
}

// Timing returns the current beam position in the format used by the
// debugging console.
func (vd *VDC) Timing() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("Scanline: %d (0x%x) Beam: %d (0x%x)", vd.Scanline, vd.Scanline, vd.Cycles, vd.Cycles))
	if vd.inVBlank {
		s.WriteString(" [vblank]")
	}
	return s.String()
}

// Snapshot creates a copy of the VDC in its current state. The copy shares
// the ports, IRQ and renderer with the original and should only be used for
// inspection.
func (vd *VDC) Snapshot() *VDC {
	n := *vd
	return &n
}
