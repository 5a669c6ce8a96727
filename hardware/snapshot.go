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
	"github.com/jetsetilly/gopherodyssey/hardware/cpu"
	"github.com/jetsetilly/gopherodyssey/hardware/memory"
	"github.com/jetsetilly/gopherodyssey/hardware/ports"
	"github.com/jetsetilly/gopherodyssey/hardware/vdc"
)

// State stores the state of the console sub-systems at a moment in time. It
// is used for inspection by the debugger.
type State struct {
	Ports  ports.Ports
	CPU    *cpu.CPU
	ExtRAM *memory.ExtRAM
	VDC    *vdc.VDC
}

// Snapshot creates a copy of the console state.
func (con *Console) Snapshot() *State {
	return &State{
		Ports:  *con.Ports,
		CPU:    con.CPU.Snapshot(),
		ExtRAM: con.Mem.ExtRAM.Snapshot(),
		VDC:    con.VDC.Snapshot(),
	}
}
