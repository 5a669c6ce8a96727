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

package cartridgeloader

import (
	"path/filepath"
	"slices"
	"strings"
)

// FileExtensions is the list of file extensions that are recognised by the
// cartridgeloader package.
var FileExtensions = [...]string{".BIN", ".ROM", ".O2"}

// IsCartridgeFile returns true if the filename has one of the recognised
// extensions. The test is case insensitive.
func IsCartridgeFile(filename string) bool {
	ext := strings.ToUpper(filepath.Ext(filename))
	return slices.Contains(FileExtensions[:], ext)
}
