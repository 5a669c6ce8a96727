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

package disassembly_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopherodyssey/cartridgeloader"
	"github.com/jetsetilly/gopherodyssey/disassembly"
	"github.com/jetsetilly/gopherodyssey/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherodyssey/test"
)

func newLoader() *cartridgeloader.Loader {
	cl := &cartridgeloader.Loader{
		Data:     make([]uint8, 4096),
		BIOSData: make([]uint8, cartridge.BIOSSize),
	}
	copy(cl.BIOSData, []uint8{0x05, 0x04, 0x01, 0x23, 0x42})

	// the last byte of the BIOS is the first byte of a two byte instruction
	cl.BIOSData[cartridge.BIOSSize-1] = 0x23

	// bank 1 begins with a different instruction to bank 0
	cl.Data[0] = 0x15
	cl.Data[2048] = 0x1f
	return cl
}

func TestFromCartridge(t *testing.T) {
	dsm, err := disassembly.FromCartridge(newLoader())
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, dsm.BIOS[0].Mnemonic, "EN I")
	test.ExpectEquality(t, dsm.BIOS[1].Mnemonic, "JMP 0x001")
	test.ExpectEquality(t, dsm.BIOS[2].Address, uint16(0x003))

	// the straddling instruction is not included
	last := dsm.BIOS[len(dsm.BIOS)-1]
	test.ExpectEquality(t, last.Address, uint16(cartridge.BIOSSize-2))

	test.ExpectEquality(t, dsm.Banks[0][0].Address, uint16(cartridge.ROMOrigin))
	test.ExpectEquality(t, dsm.Banks[0][0].Mnemonic, "DIS I")
	test.ExpectEquality(t, dsm.Banks[1][0].Mnemonic, "INC R7")
	test.ExpectEquality(t, dsm.Banks[2][0].Mnemonic, "DIS I")
}

func TestWrite(t *testing.T) {
	dsm, err := disassembly.FromCartridge(newLoader())
	test.DemandSuccess(t, err)

	s := strings.Builder{}
	test.DemandSuccess(t, dsm.WriteBank(&s, disassembly.WriteAttr{ByteCode: true, Cycles: true}, 1))
	lines := strings.Split(s.String(), "\n")
	test.ExpectEquality(t, lines[0], "--- bank 1 ---")
	test.ExpectEquality(t, lines[1], "0x400 1f     INC R7 [1]")

	test.ExpectFailure(t, dsm.WriteBank(&s, disassembly.WriteAttr{}, 4))

	s.Reset()
	test.DemandSuccess(t, dsm.Write(&s, disassembly.WriteAttr{}))
	test.ExpectSuccess(t, strings.HasPrefix(s.String(), "--- bios ---\n0x000 EN I\n0x001 JMP 0x001\n0x003 MOV A,#0x42\n"))
	test.ExpectEquality(t, strings.Count(s.String(), "--- bank"), cartridge.NumBanks)
}
