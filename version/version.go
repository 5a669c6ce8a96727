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


// Package version reports the version of the program. The version number is
// set by the linker when building a release, for example:
//
//	go build -ldflags "-X github.com/jetsetilly/gopherodyssey/version.number=v0.1.0"
//
// Otherwise the version is derived from the VCS information embedded by the
// Go toolchain.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Gopherodyssey"

// set by the linker
var number string

// Info describes the build of the running program.
type Info struct {
	// the release number, "unreleased" for a build from a VCS checkout or
	// "local" if there is no version information at all
	Version string

	// VCS revision, suffixed with "+dirty" if the checkout had uncommitted
	// changes
	Revision string

	// Version is a numbered release
	Release bool

	// version of the Go toolchain used to build the program
	GoVersion string
}

var info Info

func init() {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		info = derive(number, "", nil)
		return
	}
	info = derive(number, bi.GoVersion, bi.Settings)
}

func derive(number string, goVersion string, settings []debug.BuildSetting) Info {
	inf := Info{
		Version:   number,
		Revision:  "no revision information",
		Release:   number != "",
		GoVersion: goVersion,
	}

	var vcs, modified bool
	for _, s := range settings {
		switch s.Key {
		case "vcs":
			vcs = true
		case "vcs.revision":
			if s.Value != "" {
				inf.Revision = s.Value
			}
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}

	if modified && inf.Revision != "no revision information" {
		inf.Revision += "+dirty"
	}

	if !inf.Release {
		if vcs {
			inf.Version = "unreleased"
		} else {
			inf.Version = "local"
		}
	}

	return inf
}

// Get returns the build information of the running program.
func Get() Info {
	return info
}

// Version returns the version string, the revision string and whether this
// is a numbered release. The revision should be used sparingly for releases.
func Version() (string, string, bool) {
	return info.Version, info.Revision, info.Release
}

// String returns a single line summary of the version.
func String() string {
	if info.Release {
		return fmt.Sprintf("%s %s", ApplicationName, info.Version)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, info.Version, info.Revision)
}
