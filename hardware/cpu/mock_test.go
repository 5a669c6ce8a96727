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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopherodyssey/hardware/cpu"
	"github.com/jetsetilly/gopherodyssey/hardware/ports"
)

type mockMem struct {
	internal [4096]uint8
	banks    []uint8
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.internal[(origin+uint16(i))&0xfff] = b
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) Read(address uint16) uint8 {
	return mem.internal[address&0xfff]
}

func (mem *mockMem) SelectBank(p1 uint8) {
	mem.banks = append(mem.banks, p1&0x03)
}

type mockExt struct {
	data   [256]uint8
	driven bool
}

func (ext *mockExt) Read(offset uint8) (uint8, bool) {
	return ext.data[offset], ext.driven
}

func (ext *mockExt) Write(offset uint8, data uint8) {
	ext.data[offset] = data
}

type mockInput struct {
	p     *ports.Ports
	scans int
	bus   uint8
}

func (in *mockInput) ScanKeyboard() {
	in.scans++
	in.p.P2 = in.p.P2&0x0f | 0xf0
}

func (in *mockInput) JoystickBus() uint8 {
	return in.bus
}

type machine struct {
	mc    *cpu.CPU
	mem   *mockMem
	ext   *mockExt
	input *mockInput
	ports *ports.Ports
}

func newMachine() *machine {
	m := &machine{
		mem:   &mockMem{},
		ext:   &mockExt{driven: true},
		ports: ports.NewPorts(),
	}
	m.input = &mockInput{p: m.ports}
	m.mc = cpu.NewCPU(m.ports, m.mem, m.ext, m.input)
	return m
}

func step(t *testing.T, mc *cpu.CPU, expectedCycles int) {
	t.Helper()
	c := mc.Step()
	if c != expectedCycles {
		t.Errorf("unexpected number of cycles for instruction at 0x%03x (%d instead of %d)", mc.LastPC, c, expectedCycles)
	}
}
