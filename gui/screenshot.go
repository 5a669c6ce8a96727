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
	"fmt"
	"os"

	"github.com/jetsetilly/gopherodyssey/hardware/television"
	"github.com/jetsetilly/gopherodyssey/logger"
)

// SaveScreenshot writes the most recent complete frame to the named file as
// a PNG image.
func SaveScreenshot(fr *television.Frame, filename string, scale int) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}
	defer f.Close()

	err = fr.Screenshot(f, scale)
	if err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}

	logger.Logf(logger.Allow, "gui", "screenshot saved to %s", filename)
	return nil
}

// WindowTitle returns the title for an emulation window.
func WindowTitle(name string, paused bool) string {
	if paused {
		return fmt.Sprintf("%s (paused)", name)
	}
	return name
}
