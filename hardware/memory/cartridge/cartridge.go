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

package cartridge

import (
	"errors"
	"fmt"
)

// Size of the program store.
const (
	BankSize  = 4096
	NumBanks  = 4
	BIOSSize  = 1024
	ROMOrigin = BIOSSize
	ROMSpace  = BankSize - BIOSSize
)

// Sentinel errors returned by Load().
var (
	ErrROMSize  = errors.New("unsupported ROM size")
	ErrBIOSSize = errors.New("unsupported BIOS size")
)

// Cartridge is the program store.
type Cartridge struct {
	banks [NumBanks][BankSize]uint8

	// the currently selected bank
	bank int

	// size of the ROM used by the last successful Load()
	romSize int
}

// NewCartridge is the preferred method of initialisation for the Cartridge
// type. The program store is empty until Load() is called.
func NewCartridge() *Cartridge {
	return &Cartridge{}
}

func (cart *Cartridge) String() string {
	return fmt.Sprintf("rom=%d bytes bank=%d", cart.romSize, cart.bank)
}

// layouts describes how a ROM of a given size is placed in the four banks.
// each entry is the index into the ROM of the section copied into that bank.
var layouts = map[int][NumBanks]int{
	2048:  {0, 0, 0, 0},
	3072:  {0, 0, 0, 0},
	4096:  {0, 2048, 0, 2048},
	6144:  {0, 3072, 0, 3072},
	8192:  {0, 2048, 4096, 6144},
	12288: {0, 3072, 6144, 9216},
}

// Load the program store with the ROM and BIOS data. The previous contents of
// the program store are lost, even if an error is returned.
func (cart *Cartridge) Load(rom []uint8, bios []uint8) error {
	cart.banks = [NumBanks][BankSize]uint8{}
	cart.romSize = 0

	if len(bios) != BIOSSize {
		return fmt.Errorf("cartridge: %w: %d bytes", ErrBIOSSize, len(bios))
	}

	layout, ok := layouts[len(rom)]
	if !ok {
		return fmt.Errorf("cartridge: %w: %d bytes", ErrROMSize, len(rom))
	}

	// the amount of ROM in each bank
	section := len(rom) / NumBanks
	switch len(rom) {
	case 2048, 3072:
		section = len(rom)
	case 4096, 6144:
		section = len(rom) / 2
	}

	for b := 0; b < NumBanks; b++ {
		copy(cart.banks[b][:BIOSSize], bios)
		copy(cart.banks[b][ROMOrigin:], rom[layout[b]:layout[b]+section])
	}

	cart.romSize = len(rom)

	return nil
}

// Reset the bank selection to bank zero.
func (cart *Cartridge) Reset() {
	cart.bank = 0
}

// SelectBank implements the cpubus.ProgramMemory interface.
func (cart *Cartridge) SelectBank(p1 uint8) {
	cart.bank = int(p1 & 0x03)
}

// Bank returns the currently selected bank.
func (cart *Cartridge) Bank() int {
	return cart.bank
}

// Read implements the cpubus.ProgramMemory interface.
func (cart *Cartridge) Read(address uint16) uint8 {
	return cart.banks[cart.bank][address%BankSize]
}

// Peek returns the value at the address in the specified bank.
func (cart *Cartridge) Peek(bank int, address uint16) uint8 {
	return cart.banks[bank%NumBanks][address%BankSize]
}
