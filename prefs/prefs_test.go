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

package prefs_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopherodyssey/prefs"
	"github.com/jetsetilly/gopherodyssey/test"
)

func cmpFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("true"))

	test.DemandSuccess(t, dsk.Save())
	cmpFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")

	test.ExpectFailure(t, v.Set(10))
}

func TestString(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &v))
	test.ExpectSuccess(t, v.Set("bar"))

	test.DemandSuccess(t, dsk.Save())
	cmpFile(t, fn, "foo :: bar\n")
}

func TestInt(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	var w prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("numberB", &w))

	test.ExpectSuccess(t, v.Set(10))

	// string conversion to int
	test.ExpectSuccess(t, w.Set("99"))

	test.DemandSuccess(t, dsk.Save())
	cmpFile(t, fn, "number :: 10\nnumberB :: 99\n")

	test.ExpectFailure(t, v.Set("---"))
	test.ExpectFailure(t, v.Set(1.0))
}

func TestLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var pal prefs.Bool
	var scale prefs.Int
	test.ExpectSuccess(t, dsk.Add("vdc.pal", &pal))
	test.ExpectSuccess(t, dsk.Add("gui.scale", &scale))

	// file doesn't exist yet
	err = dsk.Load()
	test.ExpectSuccess(t, errors.Is(err, prefs.ErrNoPrefsFile))

	test.ExpectSuccess(t, pal.Set(true))
	test.ExpectSuccess(t, scale.Set(3))
	test.DemandSuccess(t, dsk.Save())

	test.ExpectSuccess(t, dsk.Reset())
	test.ExpectEquality(t, pal.Get().(bool), false)
	test.ExpectEquality(t, scale.Get().(int), 0)

	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, pal.Get().(bool), true)
	test.ExpectEquality(t, scale.Get().(int), 3)
}

func TestSharedFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	dskA, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	dskB, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var a prefs.String
	var b prefs.String
	test.ExpectSuccess(t, dskA.Add("a", &a))
	test.ExpectSuccess(t, dskB.Add("b", &b))

	test.ExpectSuccess(t, a.Set("alpha"))
	test.ExpectSuccess(t, b.Set("beta"))

	test.DemandSuccess(t, dskA.Save())
	test.DemandSuccess(t, dskB.Save())

	// saving B must not have lost the value saved by A
	cmpFile(t, fn, "a :: alpha\nb :: beta\n")
}

func TestRestrictions(t *testing.T) {
	var scale prefs.Int
	scale.SetRange(1, 8)
	test.ExpectSuccess(t, scale.Set(4))
	test.ExpectFailure(t, scale.Set(9))
	test.ExpectFailure(t, scale.Set("0"))
	test.ExpectEquality(t, scale.Get().(int), 4)

	var renderer prefs.String
	renderer.SetOptions("software", "opengl")
	test.ExpectSuccess(t, renderer.Set("OpenGL"))
	test.ExpectFailure(t, renderer.Set("vulkan"))
	test.ExpectEquality(t, renderer.Get().(string), "OpenGL")

	// out of range values on disk keep the existing value
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)
	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, dsk.Add("gui.scale", &scale))
	test.DemandSuccess(t, os.WriteFile(fn, []byte(prefs.WarningBoilerPlate+"\ngui.scale :: 20\n"), 0600))
	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, scale.Get().(int), 4)
}

func TestHookPost(t *testing.T) {
	var pal prefs.Bool
	var seen []bool
	pal.SetHookPost(func(v prefs.Value) error {
		seen = append(seen, v.(bool))
		return nil
	})
	test.ExpectSuccess(t, pal.Set(true))
	test.ExpectSuccess(t, pal.Set("false"))
	test.ExpectEquality(t, len(seen), 2)
	test.ExpectEquality(t, seen[0], true)
	test.ExpectEquality(t, seen[1], false)
}
