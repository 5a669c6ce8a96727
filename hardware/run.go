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

package hardware

import (
	"fmt"

	"github.com/jetsetilly/gopherodyssey/debugger/govern"
)

// Run sets the emulation running as quickly as possible. continueCheck()
// is called once per frame while running and once per instruction while
// stepping. The value it returns decides what the console does next.
//
// In the Paused state nothing is executed and continueCheck() is called
// again immediately. It should therefore block or sleep while the emulation is
// paused.
//
// Run returns when continueCheck() returns Ending, or when stepping the
// console returns an error. A nil continueCheck will run the console
// forever, or until an error.
func (con *Console) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := govern.Running
	for state != govern.Ending {
		switch state {
		case govern.Running:
			if err := con.StepFrame(); err != nil {
				return err
			}
		case govern.Stepping:
			if _, err := con.Step(); err != nil {
				return err
			}
		case govern.Resetting:
			con.Reset()
		case govern.Paused:
		default:
			return fmt.Errorf("console: unsupported emulation state (%s) in Run() function", state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForFrameCount sets emulator running for the specified number of frames.
// The continueCheck function is called after every frame with the frame
// number and can end the run early by returning Ending. Other states are
// ignored.
func (con *Console) RunForFrameCount(numFrames int, continueCheck func(frame int) (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func(frame int) (govern.State, error) { return govern.Running, nil }
	}

	targetFrame := con.VDC.FrameNum + numFrames

	state := govern.Running
	for con.VDC.FrameNum < targetFrame && state != govern.Ending {
		if err := con.StepFrame(); err != nil {
			return err
		}

		var err error
		state, err = continueCheck(con.VDC.FrameNum)
		if err != nil {
			return err
		}
	}

	return nil
}
