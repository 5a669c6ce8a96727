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

package sdlsoft

import (
	"fmt"

	"github.com/jetsetilly/gopherodyssey/gui"
	"github.com/jetsetilly/gopherodyssey/version"
)

// SetFeature implements the gui.GUI interface. The request is serviced by the
// next call to Service().
//
// MUST NOT be called from the main thread.
func (scr *SdlSoft) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	scr.featureReq <- featureRequest{request: request, args: args}
	return <-scr.featureErr
}

func (scr *SdlSoft) serviceFeatureRequest(r featureRequest) (err error) {
	// lazy handling of type assertion errors
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("sdlsoft: %v: %v", r.request, p)
		}
	}()

	switch r.request {
	case gui.ReqSetEventChan:
		scr.events = r.args[0].(chan gui.Event)

	case gui.ReqSetVisibility:
		if r.args[0].(bool) {
			scr.window.Show()
		} else {
			scr.window.Hide()
		}

	case gui.ReqSetScale:
		err = scr.setScale(r.args[0].(int))

	case gui.ReqSetPause:
		scr.paused = r.args[0].(bool)
		scr.window.SetTitle(gui.WindowTitle(version.ApplicationName, scr.paused))

	case gui.ReqScreenshot:
		err = gui.SaveScreenshot(scr.Frame, r.args[0].(string), scr.scale)

	default:
		return fmt.Errorf("sdlsoft: %w: %v", gui.ErrUnsupportedFeature, r.request)
	}

	if err != nil {
		return fmt.Errorf("sdlsoft: %w", err)
	}
	return nil
}
