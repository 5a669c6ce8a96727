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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopherodyssey/cartridgeloader"
	"github.com/jetsetilly/gopherodyssey/debugger/govern"
	"github.com/jetsetilly/gopherodyssey/hardware"
	"github.com/jetsetilly/gopherodyssey/hardware/preferences"
	"github.com/jetsetilly/gopherodyssey/hardware/television/specification"
	"github.com/jetsetilly/gopherodyssey/performance/limiter"
)

// sentinal error returned by Run() loop.
var timedOut = errors.New("performance timed out")

// the amount of time to run the emulation before the measurement begins
const leadTime = 2 * time.Second

// Check the performance of the emulator using the supplied cartridge.
//
// Emulation will run of specificed duration and will create a cpu, memory
// profile, a trace (or a combination of those) as defined by the Profile
// argument.
func Check(output io.Writer, profile Profile, cartload *cartridgeloader.Loader, spec specification.Spec, uncapped bool, duration string) error {
	// parse supplied duration
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	prefs, err := preferences.NewPreferences()
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	con, err := hardware.NewConsole(spec, nil, prefs)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}
	con.Random.ZeroSeed = true

	err = con.AttachCartridge(cartload)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	lmtr := limiter.NewLimiter(spec.FramesPerSecond)
	defer lmtr.Stop()
	lmtr.Active.Store(!uncapped)

	// get starting frame number (should be 0)
	startFrame := con.VDC.FrameNum

	// run for specified period of time
	runner := func() error {
		// the leadtime timer signals that measurement should start. the
		// duration timer signals that measurement should end
		lead := time.NewTimer(leadTime)
		defer lead.Stop()

		var end <-chan time.Time

		return con.Run(func() (govern.State, error) {
			lmtr.CheckFrame()

			select {
			case <-lead.C:
				startFrame = con.VDC.FrameNum
				end = time.After(dur)
			case <-end:
				return govern.Ending, timedOut
			default:
			}

			return govern.Running, nil
		})
	}

	// launch runner directly or through the CPU profiler, depending on
	// supplied arguments
	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return fmt.Errorf("performance: %w", err)
	}

	// calculate performance
	numFrames := con.VDC.FrameNum - startFrame
	fps, accuracy := CalcFPS(spec, numFrames, dur.Seconds())
	_, err = fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, dur.Seconds(), accuracy)

	return err
}
