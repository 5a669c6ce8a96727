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

package disassembly

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/gopherodyssey/hardware/cpu"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	ByteCode bool
	Cycles   bool
}

// Write the entire disassembly to io.Writer.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	if err := dsm.WriteBIOS(output, attr); err != nil {
		return err
	}
	for bank := range dsm.Banks {
		if err := dsm.WriteBank(output, attr, bank); err != nil {
			return err
		}
	}
	return nil
}

// WriteBIOS writes the disassembly of the BIOS to io.Writer.
func (dsm *Disassembly) WriteBIOS(output io.Writer, attr WriteAttr) error {
	if _, err := io.WriteString(output, "--- bios ---\n"); err != nil {
		return fmt.Errorf("disassembly: %w", err)
	}
	for _, e := range dsm.BIOS {
		if err := WriteLine(output, attr, e); err != nil {
			return err
		}
	}
	return nil
}

// WriteBank writes the disassembly of the selected bank to io.Writer.
func (dsm *Disassembly) WriteBank(output io.Writer, attr WriteAttr, bank int) error {
	if bank < 0 || bank >= len(dsm.Banks) {
		return fmt.Errorf("disassembly: no such bank (%d)", bank)
	}

	if _, err := io.WriteString(output, fmt.Sprintf("--- bank %d ---\n", bank)); err != nil {
		return fmt.Errorf("disassembly: %w", err)
	}
	for _, e := range dsm.Banks[bank] {
		if err := WriteLine(output, attr, e); err != nil {
			return err
		}
	}
	return nil
}

// WriteLine writes a single entry to io.Writer.
func WriteLine(output io.Writer, attr WriteAttr, e cpu.Entry) error {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("0x%03x ", e.Address))

	if attr.ByteCode {
		b := strings.Builder{}
		for _, v := range e.Bytes {
			b.WriteString(fmt.Sprintf("%02x ", v))
		}
		s.WriteString(fmt.Sprintf("%-6s ", b.String()))
	}

	s.WriteString(e.Mnemonic)

	if attr.Cycles && e.Defn != nil && e.Defn.IsLegal() {
		s.WriteString(fmt.Sprintf(" [%d]", e.Defn.Cycles))
	}

	s.WriteRune('\n')

	if _, err := io.WriteString(output, s.String()); err != nil {
		return fmt.Errorf("disassembly: %w", err)
	}
	return nil
}
