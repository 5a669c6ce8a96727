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

package random

import (
	"math/rand"
	"time"

	"github.com/jetsetilly/gopherodyssey/hardware/television"
	"github.com/jetsetilly/gopherodyssey/hardware/television/specification"
	"github.com/jetsetilly/gopherodyssey/hardware/vdc"
)

var baseSeed int64

func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// the number of scanlines used to sum the beam coordinates. the largest
// frame of any specification so that every position in a frame is unique
var scanlinesPerFrame int

func init() {
	for _, id := range specification.SpecList {
		spec, err := specification.Search(id)
		if err != nil {
			panic(err)
		}
		scanlinesPerFrame = max(scanlinesPerFrame, spec.ScanlinesTotal())
	}
}

// Coords is the source of the beam position.
type Coords interface {
	GetCoords() television.Coords
}

// Random is a random number generator that returns numbers based on the
// current beam position.
type Random struct {
	coords Coords

	// use zero seed rather than the random base seed. this is only really
	// useful for tests and for the digest mode, where random numbers must be
	// predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(coords Coords) *Random {
	return &Random{
		coords: coords,
	}
}

func (rnd *Random) rand() *rand.Rand {
	sum := rnd.coords.GetCoords().Sum(scanlinesPerFrame, vdc.CyclesPerScanline)
	if rnd.ZeroSeed {
		return rand.New(rand.NewSource(sum))
	}
	return rand.New(rand.NewSource(baseSeed + sum))
}

// Intn returns a number in the range [0, n) for the current beam position.
func (rnd *Random) Intn(n int) int {
	return rnd.rand().Intn(n)
}

// Byte returns a random byte for the current beam position.
func (rnd *Random) Byte() uint8 {
	return uint8(rnd.Intn(0x100))
}
