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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions report a failed test but allow the test to
// continue. The Demand*() functions are the same except that the test is
// halted on failure. The Demand*() functions should be used when the outcome
// of a test is used by subsequent tests.
//
// It is worth describing how success and failure is decided for values of
// different types because it is not obvious. A boolean value is a success if
// it is true. An error value is a success if it is nil. The nil value itself
// is considered a success. This may not be how we want to interpret nil in all
// situations but because of how errors usually work (nil to indicate no error)
// we *need* to interpret nil in this way.
//
// Every function accepts an optional list of tags. The tags are prepended to
// the failure message and are useful to identify the iteration of a loop in
// which a test failed.
package test
