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

package memory_test

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/gopherodyssey/hardware/memory"
	"github.com/jetsetilly/gopherodyssey/hardware/ports"
	"github.com/jetsetilly/gopherodyssey/hardware/preferences"
	"github.com/jetsetilly/gopherodyssey/test"
)

type mockVDC struct {
	reg    [256]uint8
	reads  int
	writes int
}

func (vd *mockVDC) Read(offset uint8) uint8 {
	vd.reads++
	return vd.reg[offset]
}

func (vd *mockVDC) Write(offset uint8, data uint8) {
	vd.writes++
	vd.reg[offset] = data
}

func (vd *mockVDC) Peek(offset uint8) uint8 {
	return vd.reg[offset]
}

type mockJunk struct{}

func (mockJunk) Byte() uint8 {
	return 0x5a
}

func newMemory() (*memory.Memory, *mockVDC, *ports.Ports) {
	p := ports.NewPorts()
	mem := memory.NewMemory(nil, p, mockJunk{})
	vd := &mockVDC{}
	mem.Plumb(vd)
	return mem, vd, p
}

func TestReadRouting(t *testing.T) {
	mem, vd, p := newMemory()
	vd.reg[0x10] = 0xaa
	mem.ExtRAM.RAM[0x10] = 0xbb

	const vdcSel = ports.P1VDCSelect
	const ramSel = ports.P1ExtRAMSelect
	const copyMode = ports.P1CopyMode

	type route int
	const (
		none route = iota
		toVDC
		toRAM
		toJunk
	)

	tests := []struct {
		p1     uint8
		expect route
	}{
		{p1: ramSel, expect: toVDC},
		{p1: ramSel | 0x83, expect: toVDC},
		{p1: copyMode, expect: toRAM},
		{p1: vdcSel, expect: toRAM},
		{p1: vdcSel | copyMode, expect: toRAM},
		{p1: 0x00, expect: toJunk},
		{p1: vdcSel | ramSel, expect: none},
		{p1: ramSel | copyMode, expect: none},
		{p1: 0xff, expect: none},
		{p1: 0x01, expect: none},
	}

	for _, tc := range tests {
		p.P1 = tc.p1
		tag := fmt.Sprintf("P1=0x%02x", tc.p1)

		v, driven := mem.Read(0x10)
		switch tc.expect {
		case none:
			test.ExpectEquality(t, driven, false, tag)
		case toVDC:
			test.ExpectEquality(t, driven, true, tag)
			test.ExpectEquality(t, v, uint8(0xaa), tag)
		case toRAM:
			test.ExpectEquality(t, driven, true, tag)
			test.ExpectEquality(t, v, uint8(0xbb), tag)
		case toJunk:
			test.ExpectEquality(t, driven, true, tag)
			test.ExpectEquality(t, v, uint8(0x5a), tag)
		}
	}
}

func TestWriteRouting(t *testing.T) {
	mem, vd, p := newMemory()

	tests := []struct {
		p1    uint8
		toVDC bool
		toRAM bool
	}{
		{p1: 0x00, toVDC: true, toRAM: true},
		{p1: ports.P1ExtRAMSelect, toVDC: true, toRAM: false},
		{p1: ports.P1VDCSelect, toVDC: false, toRAM: true},
		{p1: ports.P1CopyMode, toVDC: true, toRAM: false},
		{p1: ports.P1VDCSelect | ports.P1ExtRAMSelect, toVDC: false, toRAM: false},
		{p1: 0xff, toVDC: false, toRAM: false},
	}

	for i, tc := range tests {
		p.P1 = tc.p1
		tag := fmt.Sprintf("P1=0x%02x", tc.p1)

		offset := uint8(i)
		mem.Write(offset, 0x11)
		test.ExpectEquality(t, vd.reg[offset] == 0x11, tc.toVDC, tag)
		test.ExpectEquality(t, mem.ExtRAM.RAM[offset] == 0x11, tc.toRAM, tag)
	}
}

func TestPeek(t *testing.T) {
	mem, vd, _ := newMemory()
	vd.reg[0xa1] = 0x08
	mem.ExtRAM.RAM[0xff] = 0x42

	v, err := mem.Peek(memory.AreaVDC, 0xa1)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x08))
	test.ExpectEquality(t, vd.reads, 0)

	v, err = mem.Peek(memory.AreaExtRAM, 0xff)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x42))

	_, err = mem.Peek(memory.Area(10), 0)
	test.ExpectFailure(t, err)

	test.ExpectSuccess(t, mem.Poke(memory.AreaExtRAM, 0x00, 0x99))
	test.ExpectEquality(t, mem.ExtRAM.RAM[0], uint8(0x99))
}

func TestNoVDC(t *testing.T) {
	p := ports.NewPorts()
	mem := memory.NewMemory(nil, p, nil)

	p.P1 = ports.P1ExtRAMSelect
	_, driven := mem.Read(0)
	test.ExpectEquality(t, driven, false)
	mem.Write(0, 1)

	_, err := mem.Peek(memory.AreaVDC, 0)
	test.ExpectFailure(t, err)
}

func TestExtRAMReset(t *testing.T) {
	ram := memory.NewExtRAM(nil)
	ram.Write(0x20, 0x01)
	test.ExpectEquality(t, ram.Read(0x20), uint8(0x01))

	snap := ram.Snapshot()
	ram.Reset()
	test.ExpectEquality(t, ram.Read(0x20), uint8(0x00))
	test.ExpectEquality(t, snap.Read(0x20), uint8(0x01))
}

func TestExtRAMRandomState(t *testing.T) {
	prefs := &preferences.Preferences{}
	test.DemandSuccess(t, prefs.RandomState.Set(true))

	// every byte value is possible in the random state
	var seen [256]bool
	for seed := int64(1); seed <= 50; seed++ {
		prefs.Reseed(seed)
		ram := memory.NewExtRAM(prefs)
		ram.Reset()
		for i := range ram.RAM {
			seen[ram.RAM[i]] = true
		}
	}
	test.ExpectSuccess(t, seen[0xff])
	test.ExpectSuccess(t, seen[0x00])
}
