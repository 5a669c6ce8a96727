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

// Package cpu emulates the 8048 microcontroller found in the Odyssey². The
// 8048 has a 12-bit program counter, a single 8-bit accumulator, 64 bytes of
// internal RAM holding two banks of eight working registers and a sixteen byte
// stack, an 8-bit timer/event counter and two interrupt sources.
//
// The CPU reaches the rest of the console through the interfaces in the
// cpubus package and through the shared port state in the ports package.
//
// The bread-and-butter of the CPU type is the Step() function. It executes
// exactly one instruction, or one interrupt dispatch, and returns the number
// of machine cycles it took. The console uses this number to run the VDC for
// the equivalent amount of time.
//
//	mc := cpu.NewCPU(p, prog, ext, input)
//	mc.Reset()
//
//	for {
//		cycles := mc.Step()
//		for range cycles * ratio {
//			vdc.Step()
//		}
//	}
//
// Interrupts are raised from outside the CPU with ExternalIRQ(). The event
// counter is driven from outside the CPU with CounterIncrement(). Both are
// called by the VDC.
package cpu
