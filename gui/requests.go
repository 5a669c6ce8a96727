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

// FeatureReq is used to request the setting of a gui attribute.
type FeatureReq string

// FeatureReqData represents the information associated with a FeatureReq. See
// commentary for the defined FeatureReq values for the underlying type.
type FeatureReqData any

// List of valid feature requests. argument must be of the type specified or
// else the type assertion will fail and the request will return an error.
const (
	// the channel that events will be sent to
	ReqSetEventChan FeatureReq = "ReqSetEventChan" // chan Event

	// whether the gui is visible or not
	ReqSetVisibility FeatureReq = "ReqSetVisibility" // bool

	// integer scaling of the window
	ReqSetScale FeatureReq = "ReqSetScale" // int

	// the emulation is paused. the gui may indicate this in the window title
	ReqSetPause FeatureReq = "ReqSetPause" // bool

	// save a PNG of the most recent frame to the named file
	ReqScreenshot FeatureReq = "ReqScreenshot" // string
)
