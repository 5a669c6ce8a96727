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

// Package clocks defines the constant values that define the speed of the
// clocks in the Odyssey². The CPU and the VDC are clocked from different
// crystals and so the number of VDC steps per CPU cycle differs between NTSC
// and PAL consoles.
package clocks

// The CPU clock of each console type, in MHz. The 8048 takes 15 clock periods
// for each machine cycle.
const (
	NTSC = 5.369318
	PAL  = 5.910000
)

// The VDC clock of each console type, in MHz.
const (
	NTSC_VDC = 3.579545
	PAL_VDC  = 3.546894
)

// The number of VDC steps run for each CPU machine cycle.
const (
	NTSC_Ratio = 9
	PAL_Ratio  = 10
)
