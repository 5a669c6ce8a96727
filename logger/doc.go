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

// Package logger is the central log repository for the emulator. Entries are
// made with Log() and Logf() and can be retrieved with Write() and Tail().
//
// Each entry has a tag and a detail string. The tag is usually the name of
// the package making the entry. Consecutive entries with the same tag and
// detail are collapsed into one entry with a repeat count:
//
//	cpu: illegal opcode (0x01) at 0x0412 (repeat x3)
//
// Every logging call takes a Permission argument. The emulation can use this
// to prevent log entries being made from contexts where they would be noise,
// for example while the debugger is probing memory. For most purposes the
// logger.Allow value is sufficient.
//
// Separate logger instances can be created with NewLogger(). This is useful
// for testing and should not be needed otherwise.
package logger
