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

package preferences

import (
	"errors"
	"math/rand"
	"time"

	"github.com/jetsetilly/gopherodyssey/paths"
	"github.com/jetsetilly/gopherodyssey/prefs"
)

// Renderer names accepted by the GUI renderer preference.
const (
	RendererSoftware = "software"
	RendererOpenGL   = "opengl"
)

// Preferences for the console.
type Preferences struct {
	dsk *prefs.Disk

	// initialise the external RAM to an unknown state on reset
	RandomState prefs.Bool

	// stop the emulation and return to the debugger when the CPU encounters
	// an illegal opcode. outside of the debugger an illegal opcode is logged
	// and executed as a one cycle NOP
	IllegalBreak prefs.Bool

	// use the PAL timing specification rather than NTSC
	PAL prefs.Bool

	// the integer scaling of the window
	Scale prefs.Int

	// name of the presentation backend. one of the Renderer constants
	Renderer prefs.String

	// limit the frame rate of the emulation to the rate of the timing
	// specification
	FPSCap prefs.Bool

	// random values generated in the hardware package should use the
	// following number source
	RandSrc *rand.Rand

	// the number used to seed RandSrc
	RandSeed int64
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the global preferences file.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return newPreferences(pth)
}

func newPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.Scale.SetRange(1, 8)
	p.Renderer.SetOptions(RendererSoftware, RendererOpenGL)
	p.Reseed(0)
	p.SetDefaults()

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("hardware.randstate", &p.RandomState)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("cpu.illegalbreak", &p.IllegalBreak)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("vdc.pal", &p.PAL)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("gui.scale", &p.Scale)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("gui.renderer", &p.Renderer)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("run.fpscap", &p.FPSCap)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		// ignore missing prefs file errors
		if !errors.Is(err, prefs.ErrNoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	p.RandomState.Set(false)
	p.IllegalBreak.Set(false)
	p.PAL.Set(false)
	p.Scale.Set(3)
	p.Renderer.Set(RendererSoftware)
	p.FPSCap.Set(true)
}

// Reseed the random number source. A seed of zero will seed the source with
// the current time.
func (p *Preferences) Reseed(seed int64) {
	if seed == 0 {
		p.RandSeed = int64(time.Now().Nanosecond())
	} else {
		p.RandSeed = seed
	}
	p.RandSrc = rand.New(rand.NewSource(p.RandSeed))
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
