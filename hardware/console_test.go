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

package hardware_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopherodyssey/cartridgeloader"
	"github.com/jetsetilly/gopherodyssey/debugger/govern"
	"github.com/jetsetilly/gopherodyssey/hardware"
	"github.com/jetsetilly/gopherodyssey/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherodyssey/hardware/preferences"
	"github.com/jetsetilly/gopherodyssey/hardware/television/specification"
	"github.com/jetsetilly/gopherodyssey/hardware/vdc"
	"github.com/jetsetilly/gopherodyssey/test"
)

// a BIOS that enables the external interrupt and loops forever. the interrupt
// service routine counts interrupts in R7 and acknowledges the interrupt by
// reading the VDC status register
var countingBIOS = map[uint16][]uint8{
	0x000: {0x05, 0x04, 0x01}, // EN I; JMP 0x001
	0x003: {0x04, 0x10},       // JMP 0x010
	0x010: {
		0x1f,       // INC R7
		0xb8, 0xa1, // MOV R0,#STATUS
		0x99, 0xb7, // ANL P1,#0xb7
		0x80,       // MOVX A,@R0
		0x89, 0x48, // ORL P1,#0x48
		0x93, // RETR
	},
}

func newLoader(bios map[uint16][]uint8) *cartridgeloader.Loader {
	cl := &cartridgeloader.Loader{
		Data:     make([]uint8, 2048),
		BIOSData: make([]uint8, cartridge.BIOSSize),
	}
	for origin, b := range bios {
		copy(cl.BIOSData[origin:], b)
	}
	return cl
}

func newConsole(t *testing.T, spec specification.Spec, bios map[uint16][]uint8) *hardware.Console {
	t.Helper()
	con, err := hardware.NewConsole(spec, nil, nil)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, con.AttachCartridge(newLoader(bios)))
	return con
}

func TestStepFrame(t *testing.T) {
	con := newConsole(t, specification.SpecNTSC, countingBIOS)

	test.DemandSuccess(t, con.StepFrame())
	test.ExpectEquality(t, con.VDC.FrameNum, 1)
	test.ExpectEquality(t, con.VDC.Scanline, 0)
	test.ExpectEquality(t, con.Ports.T1, true)

	// every VDC step is accounted for by CPU cycles
	vdcSteps := int64(specification.SpecNTSC.ScanlinesTotal()*vdc.CyclesPerScanline + 1)
	steps := con.Cycles * int64(specification.SpecNTSC.VDCRatio)
	test.ExpectSuccess(t, steps >= vdcSteps && steps < vdcSteps+18)
}

func TestInterruptEachFrame(t *testing.T) {
	con := newConsole(t, specification.SpecNTSC, countingBIOS)

	test.DemandSuccess(t, con.RunForFrameCount(3, nil))
	test.ExpectEquality(t, con.VDC.FrameNum, 3)

	// the interrupt for the most recent frame has not yet been serviced
	test.ExpectEquality(t, con.CPU.RAM[7], uint8(2))

	for _i := 0; _i < 20; _i++ {
		_, err := con.Step()
		test.DemandSuccess(t, err)
	}
	test.ExpectEquality(t, con.CPU.RAM[7], uint8(3))
	test.ExpectEquality(t, con.CPU.Interrupts.ExternalPending, false)
	test.ExpectEquality(t, con.CPU.Interrupts.InIRQ, false)
}

func TestPALRatio(t *testing.T) {
	ntsc := newConsole(t, specification.SpecNTSC, countingBIOS)
	pal := newConsole(t, specification.SpecPAL, countingBIOS)

	for _i := 0; _i < 100; _i++ {
		_, err := ntsc.Step()
		test.DemandSuccess(t, err)
		_, err = pal.Step()
		test.DemandSuccess(t, err)
	}

	ntscSteps := ntsc.VDC.Scanline*vdc.CyclesPerScanline + ntsc.VDC.Cycles
	palSteps := pal.VDC.Scanline*vdc.CyclesPerScanline + pal.VDC.Cycles
	test.ExpectEquality(t, int64(ntscSteps), ntsc.Cycles*9)
	test.ExpectEquality(t, int64(palSteps), pal.Cycles*10)
}

func TestBreakpoint(t *testing.T) {
	con := newConsole(t, specification.SpecNTSC, countingBIOS)
	con.Breakpoints = func(pc uint16) bool {
		return pc == 0x001
	}

	cycles, err := con.Step()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cycles, 1)

	cycles, err = con.Step()
	test.ExpectEquality(t, errors.Is(err, hardware.ErrBreakpoint), true)
	test.ExpectEquality(t, cycles, 0)
	test.ExpectEquality(t, con.CPU.PC, uint16(0x001))

	// the instruction at the breakpoint is executed on the next step
	cycles, err = con.Step()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cycles, 2)

	_, err = con.Step()
	test.ExpectEquality(t, errors.Is(err, hardware.ErrBreakpoint), true)

	// the run loop stops at the breakpoint after executing the instruction
	// that the previous step stopped on
	err = con.Run(nil)
	test.ExpectEquality(t, errors.Is(err, hardware.ErrBreakpoint), true)
	test.ExpectEquality(t, con.CPU.PC, uint16(0x001))
}

func TestIllegalBreak(t *testing.T) {
	prefs := &preferences.Preferences{}
	con, err := hardware.NewConsole(specification.SpecNTSC, nil, prefs)
	test.DemandSuccess(t, err)

	illegal := map[uint16][]uint8{0x000: {0x01, 0x01}}
	test.DemandSuccess(t, con.AttachCartridge(newLoader(illegal)))

	_, err = con.Step()
	test.DemandSuccess(t, err)

	test.DemandSuccess(t, prefs.IllegalBreak.Set(true))
	_, err = con.Step()
	test.ExpectEquality(t, errors.Is(err, hardware.ErrIllegalOpcode), true)
}

func TestRun(t *testing.T) {
	con := newConsole(t, specification.SpecNTSC, countingBIOS)

	states := []govern.State{
		govern.Running,
		govern.Paused,
		govern.Paused,
		govern.Running,
		govern.Ending,
	}

	var calls int
	err := con.Run(func() (govern.State, error) {
		s := states[calls]
		calls++
		return s, nil
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, calls, len(states))

	// the first frame is run before the first check
	test.ExpectEquality(t, con.VDC.FrameNum, 3)

	// reset from inside the run loop
	states = []govern.State{govern.Resetting, govern.Ending}
	calls = 0
	test.DemandSuccess(t, con.Run(func() (govern.State, error) {
		s := states[calls]
		calls++
		return s, nil
	}))
	test.ExpectEquality(t, con.VDC.FrameNum, 0)
	test.ExpectEquality(t, con.CPU.PC, uint16(0x000))

	// continue check errors stop the run
	checkErr := errors.New("check")
	err = con.Run(func() (govern.State, error) {
		return govern.Running, checkErr
	})
	test.ExpectEquality(t, errors.Is(err, checkErr), true)

	err = con.Run(func() (govern.State, error) {
		return govern.Initialising, nil
	})
	test.ExpectFailure(t, err)
}

func TestRunForFrameCountEarlyEnd(t *testing.T) {
	con := newConsole(t, specification.SpecNTSC, countingBIOS)

	var frames []int
	err := con.RunForFrameCount(10, func(frame int) (govern.State, error) {
		frames = append(frames, frame)
		if frame == 4 {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(frames), 4)
	test.ExpectEquality(t, con.VDC.FrameNum, 4)
}

func TestAttachErrors(t *testing.T) {
	con, err := hardware.NewConsole(specification.SpecNTSC, nil, nil)
	test.DemandSuccess(t, err)

	cl := &cartridgeloader.Loader{
		Data:     make([]uint8, 1000),
		BIOSData: make([]uint8, cartridge.BIOSSize),
	}
	err = con.AttachCartridge(cl)
	test.ExpectEquality(t, errors.Is(err, cartridge.ErrROMSize), true)

	cl = &cartridgeloader.Loader{
		Data:     make([]uint8, 2048),
		BIOSData: make([]uint8, 512),
	}
	err = con.AttachCartridge(cl)
	test.ExpectEquality(t, errors.Is(err, cartridge.ErrBIOSSize), true)

	_, err = hardware.NewConsole(specification.Spec{ID: "bad"}, nil, nil)
	test.ExpectFailure(t, err)
}

func TestSnapshot(t *testing.T) {
	con := newConsole(t, specification.SpecNTSC, countingBIOS)
	test.DemandSuccess(t, con.StepFrame())

	snap := con.Snapshot()
	pc := snap.CPU.PC
	frame := snap.VDC.FrameNum

	test.DemandSuccess(t, con.StepFrame())
	test.ExpectEquality(t, snap.CPU.PC, pc)
	test.ExpectEquality(t, snap.VDC.FrameNum, frame)
	test.ExpectInequality(t, con.VDC.FrameNum, frame)
}

func TestPowerOn(t *testing.T) {
	cl := &cartridgeloader.Loader{
		Data:     make([]uint8, 4096),
		BIOSData: make([]uint8, cartridge.BIOSSize),
	}

	con, err := hardware.NewConsole(specification.SpecNTSC, nil, nil)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, con.AttachCartridge(cl))

	test.ExpectEquality(t, con.CPU.PC, uint16(0))
	test.ExpectEquality(t, con.CPU.A, uint8(0))

	// BIOS byte zero is a NOP
	cycles, err := con.Step()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cycles, 1)
	test.ExpectEquality(t, con.CPU.PC, uint16(1))
}

// every bank starts with the same code at the ROM origin, reading a marker
// byte from the current page. the marker differs between ROM sections
func bankedLoader(romSize int, bank int) *cartridgeloader.Loader {
	cl := &cartridgeloader.Loader{
		Data:     make([]uint8, romSize),
		BIOSData: make([]uint8, cartridge.BIOSSize),
	}

	copy(cl.BIOSData, []uint8{
		0x23, 0xfc | uint8(bank), // MOV A,#selector
		0x39,       // OUTL P1,A
		0x84, 0x00, // JMP 0x400
	})

	section := romSize / cartridge.NumBanks
	if romSize == 4096 {
		section = romSize / 2
	}
	for s := 0; s < romSize/section; s++ {
		copy(cl.Data[s*section:], []uint8{
			0x23, 0x10, // MOV A,#0x10
			0xa3, // MOVP A,@A
		})
		cl.Data[s*section+0x10] = 0xb0 | uint8(s)
	}

	return cl
}

func TestBankSelection(t *testing.T) {
	for _, tc := range []struct {
		romSize int
		markers [cartridge.NumBanks]uint8
	}{
		{romSize: 4096, markers: [cartridge.NumBanks]uint8{0xb0, 0xb1, 0xb0, 0xb1}},
		{romSize: 8192, markers: [cartridge.NumBanks]uint8{0xb0, 0xb1, 0xb2, 0xb3}},
	} {
		for bank := 0; bank < cartridge.NumBanks; bank++ {
			con, err := hardware.NewConsole(specification.SpecNTSC, nil, nil)
			test.DemandSuccess(t, err)
			test.DemandSuccess(t, con.AttachCartridge(bankedLoader(tc.romSize, bank)))

			for _i := 0; _i < 5; _i++ {
				_, err := con.Step()
				test.DemandSuccess(t, err)
			}

			test.ExpectEquality(t, con.Ports.P1, 0xfc|uint8(bank), tc.romSize, bank)
			test.ExpectEquality(t, con.Mem.Cart.Bank(), bank, tc.romSize, bank)
			test.ExpectEquality(t, con.CPU.PC, uint16(0x403), tc.romSize, bank)
			test.ExpectEquality(t, con.CPU.A, tc.markers[bank], tc.romSize, bank)
		}
	}
}
