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


package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopherodyssey/cartridgeloader"
	"github.com/jetsetilly/gopherodyssey/gui"
	"github.com/jetsetilly/gopherodyssey/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherodyssey/hardware/television/specification"
	"github.com/jetsetilly/gopherodyssey/test"
)

// runs launch() with the arguments and returns the exit value requested of
// the main thread.
func runLaunch(t *testing.T, args ...string) int {
	t.Helper()

	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (gui.GUI, error)),
		creation:      make(chan gui.GUI),
		creationError: make(chan error),
	}

	go launch(sync, args)

	for {
		select {
		case <-sync.creator:
			t.Fatalf("unexpected gui creation")
		case state := <-sync.state:
			if state.req != reqQuit {
				continue
			}
			if state.args == nil {
				return 0
			}
			return state.args.(int)
		}
	}
}

// writes a BIOS that enables interrupts and loops forever, and an empty
// cartridge.
func testFiles(t *testing.T) (string, string) {
	t.Helper()

	dir := t.TempDir()

	bios := make([]byte, cartridge.BIOSSize)
	copy(bios, []byte{0x05, 0x04, 0x01})
	biosFile := filepath.Join(dir, "bios.bin")
	test.DemandSuccess(t, os.WriteFile(biosFile, bios, 0o644))

	cartFile := filepath.Join(dir, "cart.bin")
	test.DemandSuccess(t, os.WriteFile(cartFile, make([]byte, 2048), 0o644))

	return biosFile, cartFile
}

func TestTVSpec(t *testing.T) {
	spec, err := tvSpec("", nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, spec.ID, specification.SpecNTSC.ID)

	spec, err = tvSpec("pal", nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, spec.ID, specification.SpecPAL.ID)

	_, err = tvSpec("SECAM", nil)
	test.ExpectFailure(t, err)
}

func TestLaunchModes(t *testing.T) {
	test.ExpectEquality(t, runLaunch(t, "VERSION"), 0)
	test.ExpectEquality(t, runLaunch(t, "DISASM", "-nosuchflag"), 20)
	test.ExpectEquality(t, runLaunch(t, "DISASM"), 20)
	test.ExpectEquality(t, runLaunch(t, "DIGEST", "-frames", "0", "cart.bin"), 20)

	bios, cart := testFiles(t)
	test.ExpectEquality(t, runLaunch(t, "DIGEST", "-bios", bios, "-frames", "2", cart), 0)
	test.ExpectEquality(t, runLaunch(t, "DISASM", "-bios", bios, "-bytecode", cart), 0)
	test.ExpectEquality(t, runLaunch(t, "DISASM", "-bios", bios, "-bank", "9", cart), 20)
}

// a BIOS that reads the VDC colour register while nothing is selected on the
// external bus, ie. a junk read, and writes the result back to the VDC
var junkBIOS = []byte{
	0x99, 0x00, // ANL P1,#0x00
	0xb8, 0xa3, // MOV R0,#0xa3
	0x80,       // MOVX A,@R0
	0x89, 0x10, // ORL P1,#0x10
	0x90,       // MOVX @R0,A
	0x04, 0x00, // JMP 0x000
}

func TestDigestRepeatable(t *testing.T) {
	var hashes []string

	for range 2 {
		cl := &cartridgeloader.Loader{
			Filename: "junk.bin",
			Data:     make([]byte, 2048),
			BIOSData: make([]byte, cartridge.BIOSSize),
		}
		copy(cl.BIOSData, junkBIOS)

		con, dig, err := newDigestConsole(specification.SpecNTSC, cl)
		test.DemandSuccess(t, err)
		test.ExpectSuccess(t, con.Random.ZeroSeed)

		test.DemandSuccess(t, con.RunForFrameCount(3, nil))
		hashes = append(hashes, dig.Hash())
	}

	test.ExpectEquality(t, hashes[0], hashes[1])
}
