// This file is part of c64core.
//
// c64core is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// c64core is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with c64core.  If not, see <https://www.gnu.org/licenses/>.

package disk

import "strings"

// LoadPRG wraps a single flat .prg file (a 2-byte load address followed
// by raw bytes, exactly as it would appear on a real disk's file data)
// as a single-entry directory, named after its host filename with a
// ".prg" or ".PRG" suffix stripped, so the host-directory backend can present a bare
// folder of .prg files as if it were a one-drive-letter-per-file disk.
func LoadPRG(raw []byte, hostName string) Entry {
	name := strings.TrimSuffix(hostName, ".prg")
	name = strings.TrimSuffix(name, ".PRG")
	return Entry{Name: strings.ToUpper(name), Data: raw}
}

// SavePRG returns the raw bytes to write back to the host filesystem
// for entry - simply its data as-is, since a PRG file's on-disk layout
// already matches this package's in-memory Entry representation.
func SavePRG(e Entry) []byte {
	return e.Data
}
