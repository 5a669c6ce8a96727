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

package gui

import (
	"errors"

	"github.com/jetsetilly/gopherodyssey/hardware/television"
)

// GUI defines the operations that can be performed on visual user
// interfaces.
type GUI interface {
	television.Renderer

	// Service the GUI. Events are sent to the channel registered with the
	// ReqSetEventChan request. Must only be called from the main thread.
	Service() error

	// Send a request to set a GUI feature. Can be called from any goroutine
	// but the request will only be serviced by the next call to Service().
	SetFeature(request FeatureReq, args ...FeatureReqData) error

	// Destroy the GUI. Must only be called from the main thread.
	Destroy()
}

// ErrUnsupportedFeature is returned if the GUI does not support the requested
// feature.
var ErrUnsupportedFeature = errors.New("unsupported gui feature")
