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

package hardware

import (
	"errors"
	"fmt"

	"github.com/jetsetilly/gopherodyssey/cartridgeloader"
	"github.com/jetsetilly/gopherodyssey/hardware/cpu"
	"github.com/jetsetilly/gopherodyssey/hardware/memory"
	"github.com/jetsetilly/gopherodyssey/hardware/peripherals"
	"github.com/jetsetilly/gopherodyssey/hardware/ports"
	"github.com/jetsetilly/gopherodyssey/hardware/preferences"
	"github.com/jetsetilly/gopherodyssey/hardware/television"
	"github.com/jetsetilly/gopherodyssey/hardware/television/specification"
	"github.com/jetsetilly/gopherodyssey/hardware/vdc"
	"github.com/jetsetilly/gopherodyssey/random"
)

// Sentinel errors returned by the Step() function.
var (
	// the CPU is about to execute the instruction at a breakpoint
	ErrBreakpoint = errors.New("breakpoint")

	// the CPU has executed an illegal opcode and the IllegalBreak preference
	// is set
	ErrIllegalOpcode = errors.New("illegal opcode")
)

// Console is the root of the emulation.
type Console struct {
	Prefs *preferences.Preferences
	Spec  specification.Spec

	Ports       *ports.Ports
	Mem         *memory.Memory
	CPU         *cpu.CPU
	VDC         *vdc.VDC
	Peripherals *peripherals.Peripherals
	Random      *random.Random

	// Breakpoints is checked against the program counter before every
	// instruction. A nil value means there are no breakpoints
	Breakpoints func(pc uint16) bool

	// the number of VDC steps for every CPU cycle
	ratio int

	// true if the previous call to Step() returned ErrBreakpoint. the
	// breakpoint is not checked again until an instruction has been executed
	breakSkip bool

	// the number of CPU cycles since reset
	Cycles int64
}

// NewConsole is the preferred method of initialisation for the Console type.
// The renderer can be nil for a console with no presentation. The prefs
// argument can also be nil, in which case the default preferences are used.
func NewConsole(spec specification.Spec, renderer television.Renderer, prefs *preferences.Preferences) (*Console, error) {
	if spec.VDCRatio <= 0 {
		return nil, fmt.Errorf("console: invalid specification (%s)", spec.ID)
	}

	con := &Console{
		Prefs: prefs,
		Spec:  spec,
		Ports: ports.NewPorts(),
		ratio: spec.VDCRatio,
	}

	con.Random = random.NewRandom(con)
	con.Peripherals = peripherals.NewPeripherals(con.Ports)
	con.Mem = memory.NewMemory(prefs, con.Ports, con.Random)
	con.CPU = cpu.NewCPU(con.Ports, con.Mem.Cart, con.Mem, con.Peripherals)
	con.VDC = vdc.NewVDC(spec, con.Ports, con.CPU, renderer)
	con.Mem.Plumb(con.VDC)

	con.Reset()

	return con, nil
}

func (con *Console) String() string {
	return fmt.Sprintf("%s %s", con.Spec.ID, con.CPU)
}

// GetCoords implements the random.Coords interface.
func (con *Console) GetCoords() television.Coords {
	return con.VDC.GetCoords()
}

// AttachCartridge loads the cartridge and BIOS specified by the loader into
// the program store and resets the console.
func (con *Console) AttachCartridge(cl *cartridgeloader.Loader) error {
	if err := cl.Load(); err != nil {
		return err
	}

	if err := con.Mem.Cart.Load(cl.Data, cl.BIOSData); err != nil {
		return err
	}

	con.Reset()

	return nil
}

// Reset the console. The program store is unchanged.
func (con *Console) Reset() {
	con.Ports.Reset()
	con.Mem.Reset()
	con.CPU.Reset()
	con.VDC.Reset()
	con.Peripherals.Reset()
	con.breakSkip = false
	con.Cycles = 0
}

// Step executes one CPU instruction, or dispatches one interrupt, and steps
// the VDC for the number of cycles consumed. Returns the number of CPU cycles
// consumed.
//
// ErrBreakpoint is returned, without executing anything, if the CPU is about
// to execute an instruction at a breakpoint. The next call to Step() will
// execute the instruction.
func (con *Console) Step() (int, error) {
	if con.Breakpoints != nil && !con.breakSkip && con.Breakpoints(con.CPU.PC) {
		con.breakSkip = true
		return 0, ErrBreakpoint
	}
	con.breakSkip = false

	cycles := con.CPU.Step()
	con.Cycles += int64(cycles)

	for i := 0; i < cycles*con.ratio; i++ {
		if err := con.VDC.Step(); err != nil {
			return cycles, err
		}
	}

	if con.CPU.Illegal && con.Prefs != nil && con.Prefs.IllegalBreak.Get().(bool) {
		return cycles, fmt.Errorf("%w: 0x%02x at 0x%03x", ErrIllegalOpcode, con.Mem.Cart.Read(con.CPU.LastPC), con.CPU.LastPC)
	}

	return cycles, nil
}

// StepFrame runs the console until the VDC next enters vertical blank.
func (con *Console) StepFrame() error {
	for !con.VDC.EnteredVBlank() {
		if _, err := con.Step(); err != nil {
			return err
		}
	}
	return nil
}
