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

// Package prefs facilitates the storage of preferential values in the
// emulation. Preference values of type Bool, Int and String are registered
// with a Disk instance under a key name:
//
//	var pal prefs.Bool
//	dsk, _ := prefs.NewDisk(pth)
//	_ = dsk.Add("vdc.pal", &pal)
//	_ = dsk.Load()
//
// The file on disk is a plain text file with one entry per line in the form:
//
//	key :: value
//
// More than one Disk instance can use the same file. Entries in the file that
// have not been registered with a Disk instance are preserved when that
// instance saves its values.
package prefs
