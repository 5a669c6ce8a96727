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

// Package peripherals implements the input devices of the console: the
// membrane keyboard and the two joysticks.
//
// Neither device is clocked. The keyboard matrix is sampled when the CPU reads
// port 2 and the joystick buses are sampled when the CPU reads the data bus.
// The host (the GUI or a test) changes the state of the devices with the
// HandleEvent() function or with the functions of the device types directly.
package peripherals
