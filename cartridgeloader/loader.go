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

package cartridgeloader

import (
	"crypto/sha1"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// DefaultBIOS is the filename of the BIOS image used when none is specified.
// It is looked for in the resource directory.
const DefaultBIOS = "o2rom.bin"

// Sentinel errors returned by the Load() function.
var (
	ErrNoBIOS         = errors.New("cartridgeloader: BIOS image file not specified")
	ErrUnexpectedHash = errors.New("cartridgeloader: unexpected hash value")
)

// Loader is used to specify the cartridge and BIOS to use when attaching
// to the console.
type Loader struct {
	// filename of cartridge to load. can be a URL
	Filename string

	// filename of the BIOS image. can be a URL
	BIOS string

	// expected hash of the loaded cartridge. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data. subsequent calls to Load() will not reload
	// the data
	Data     []byte
	BIOSData []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string, bios string) Loader {
	return Loader{
		Filename: strings.TrimSpace(filename),
		BIOS:     strings.TrimSpace(bios),
	}
}

// ShortName returns a shortened version of the cartridge filename. The path
// and extension are removed.
func (cl Loader) ShortName() string {
	shortCartName := filepath.Base(cl.Filename)
	shortCartName = strings.TrimSuffix(shortCartName, filepath.Ext(cl.Filename))
	return shortCartName
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0 && len(cl.BIOSData) > 0
}

// Load the cartridge and BIOS data and calculate the hash of the cartridge.
func (cl *Loader) Load() error {
	if cl.HasLoaded() {
		return nil
	}

	if cl.BIOS == "" {
		return ErrNoBIOS
	}

	var err error

	cl.Data, err = load(cl.Filename)
	if err != nil {
		return err
	}

	cl.BIOSData, err = load(cl.BIOS)
	if err != nil {
		cl.Data = nil
		return err
	}

	hash := fmt.Sprintf("%x", sha1.Sum(cl.Data))
	if cl.Hash != "" && cl.Hash != hash {
		cl.Data = nil
		cl.BIOSData = nil
		return ErrUnexpectedHash
	}
	cl.Hash = hash

	return nil
}

func load(filename string) ([]byte, error) {
	scheme := "file"
	u, err := url.Parse(filename)
	if err == nil && len(u.Scheme) > 1 {
		// single letter schemes are windows drive letters
		scheme = u.Scheme
	}

	switch scheme {
	case "http", "https":
		resp, err := http.Get(filename)
		if err != nil {
			return nil, fmt.Errorf("cartridgeloader: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("cartridgeloader: %s: %s", filename, resp.Status)
		}

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("cartridgeloader: %w", err)
		}
		return data, nil

	case "file":
		data, err := os.ReadFile(filename)
		if err != nil {
			return nil, fmt.Errorf("cartridgeloader: %w", err)
		}
		return data, nil
	}

	return nil, fmt.Errorf("cartridgeloader: unsupported URL scheme (%s)", scheme)
}
