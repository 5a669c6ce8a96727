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

package disassembly

import (
	"fmt"

	"github.com/jetsetilly/gopherodyssey/cartridgeloader"
	"github.com/jetsetilly/gopherodyssey/hardware/cpu"
	"github.com/jetsetilly/gopherodyssey/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherodyssey/hardware/ports"
)

// Disassembly of the program store.
type Disassembly struct {
	BIOS  []cpu.Entry
	Banks [cartridge.NumBanks][]cpu.Entry
}

// bankView fixes the CPU's view of the program store to a single bank.
type bankView struct {
	cart *cartridge.Cartridge
	bank int
}

func (v bankView) Read(address uint16) uint8 {
	return v.cart.Peek(v.bank, address)
}

func (v bankView) SelectBank(_ uint8) {
}

// FromCartridge loads the cartridge and BIOS and disassembles them.
func FromCartridge(cartload *cartridgeloader.Loader) (*Disassembly, error) {
	if err := cartload.Load(); err != nil {
		return nil, fmt.Errorf("disassembly: %w", err)
	}

	cart := cartridge.NewCartridge()
	if err := cart.Load(cartload.Data, cartload.BIOSData); err != nil {
		return nil, fmt.Errorf("disassembly: %w", err)
	}

	return FromMemory(cart), nil
}

// FromMemory disassembles the program store.
func FromMemory(cart *cartridge.Cartridge) *Disassembly {
	dsm := &Disassembly{}
	p := ports.NewPorts()

	for b := 0; b < cartridge.NumBanks; b++ {
		mc := cpu.NewCPU(p, bankView{cart: cart, bank: b}, nil, nil)
		if b == 0 {
			dsm.BIOS = linear(mc, 0, cartridge.BIOSSize)
		}
		dsm.Banks[b] = linear(mc, cartridge.ROMOrigin, cartridge.BankSize)
	}

	return dsm
}

// disassemble from the start address up to but not including the end address.
// an instruction that straddles the end address is not included
func linear(mc *cpu.CPU, start int, end int) []cpu.Entry {
	var entries []cpu.Entry
	for a := start; a < end; {
		e := mc.Disassemble(uint16(a))
		if a+len(e.Bytes) > end {
			break
		}
		entries = append(entries, e)
		a += len(e.Bytes)
	}
	return entries
}
