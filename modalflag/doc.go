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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Arguments are given to NewArgs() and then Parse() is called with no
// arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "DEBUG")
//	_, _ = md.Parse()
//
// After parsing, Mode() is the sub-mode that was selected. If the first
// non-flag argument did not name a sub-mode then the first sub-mode in the
// list is selected. Sub-mode comparisons are case insensitive.
//
// Each mode can have its own flags. NewMode() starts a new layer of flags and
// sub-modes, parsed by another call to Parse():
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		pal := md.AddBool("pal", false, "use PAL timing")
//		p, err := md.Parse()
//		switch p {
//		case modalflag.ParseHelp:
//			return nil
//		case modalflag.ParseError:
//			return err
//		}
//		run(*pal, md.GetArg(0))
//	}
//
// Modes can be chained as deeply as required. Path() returns the sequence of
// modes selected so far, separated by a slash.
package modalflag
