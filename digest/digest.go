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

// Package digest is used to create fingerprints of the emulation output. The
// Video type implements the television.Renderer interface and chains a SHA-1
// hash of every frame onto the hash of the previous frame. Two runs of the
// same program for the same number of frames produce the same hash only if
// every frame was identical.
//
// The digest is used by the DIGEST mode of the main program and by tests that
// need to compare the output of the VDC over many frames.
package digest

// Digest implementations compute a hash of emulation output.
type Digest interface {
	Hash() string
	ResetDigest()
}
