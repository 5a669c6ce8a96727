//go:build !windows

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

package easyterm

import (
	"golang.org/x/sys/unix"
)

// SuspendProcess manually suspends the current process. This is useful if
// terminal is in raw mode and the suspend key is pressed.
func (et *EasyTerm) SuspendProcess() {
	et.CanonicalMode()
	_ = unix.Kill(unix.Getpid(), unix.SIGTSTP)
	et.RawMode()
}
