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

package paths_test

import (
	"os"
	"testing"
	"time"

	"github.com/jetsetilly/gopherodyssey/paths"
	"github.com/jetsetilly/gopherodyssey/test"
)

func TestLocalResourcePath(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	test.DemandSuccess(t, os.Mkdir(".gopherodyssey", 0700))

	pth, err := paths.ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".gopherodyssey/foo/bar/baz")

	// the sub-path is created but not the file
	_, err = os.Stat(".gopherodyssey/foo/bar")
	test.ExpectSuccess(t, err)
	_, err = os.Stat(".gopherodyssey/foo/bar/baz")
	test.ExpectFailure(t, err)

	pth, err = paths.ResourcePath("", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".gopherodyssey/baz")

	pth, err = paths.ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".gopherodyssey")
}

func TestUniqueFilename(t *testing.T) {
	n := time.Date(1978, time.December, 1, 9, 5, 3, 0, time.UTC)
	test.ExpectEquality(t, paths.UniqueFilenameAt("screenshot", "munchkin", n), "screenshot_munchkin_19781201_090503")
	test.ExpectEquality(t, paths.UniqueFilenameAt("memviz", " ", n), "memviz_19781201_090503")
}
