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

import (
	"strconv"
	"strings"

	"github.com/vintage64/c64core/errors"
)

// LoadLNX parses a "Lynx" archive: a single PRG whose own contents are a
// BASIC-loadable directory header followed by each archived file's
// 254-byte PETSCII name/size record and raw data, back to back with no
// binary offsets at all (everything is derived by walking the archive
// sequentially) - a format born from the one-file-per-disk-side
// simplicity of the C64 cassette/disk transfer tools this tried to
// replace. Read-only, like T64.
func LoadLNX(raw []byte) ([]Entry, error) {
	if len(raw) < 2 {
		return nil, errors.Errorf(errors.UnsupportedDiskFormat, "lnx")
	}

	body := raw[2:] // skip PRG load address
	lines := strings.Split(string(body), "\r")
	if len(lines) < 2 {
		return nil, errors.Errorf(errors.UnsupportedDiskFormat, "lnx")
	}

	count, err := strconv.Atoi(strings.TrimSpace(petsciiToASCII(lines[1])))
	if err != nil {
		return nil, errors.Errorf(errors.UnsupportedDiskFormat, "lnx")
	}

	var entries []Entry
	lineIdx := 2
	// the directory header's line count (including the banner and file
	// count lines already consumed) tells us where file data starts;
	// conventionally this is a fixed 2-line count per real Lynx headers
	// the way workbench tools generate them.
	dataOffset := 0
	for i, l := range lines[:lineIdx] {
		dataOffset += len(l) + 1
		_ = i
	}

	cursor := dataOffset
	for i := 0; i < count && lineIdx < len(lines); i++ {
		dirLine := lines[lineIdx]
		lineIdx++
		fields := strings.Fields(dirLine)
		if len(fields) < 2 {
			continue
		}
		name := petsciiToASCII(fields[0])
		sizeBlocks, err := strconv.Atoi(fields[len(fields)-1])
		if err != nil {
			continue
		}
		size := sizeBlocks * 254
		if cursor+size > len(body) {
			size = len(body) - cursor
		}
		if size < 0 {
			size = 0
		}
		entries = append(entries, Entry{Name: name, Data: append([]byte(nil), body[cursor:cursor+size]...)})
		cursor += size
	}

	return entries, nil
}

// petsciiToASCII is a best-effort PETSCII-to-ASCII pass for directory
// text embedded in archive headers; it only remaps the handful of
// control/graphics codes that would otherwise render as garbage in a
// host directory listing, not a full character set conversion.
func petsciiToASCII(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= 0xc1 && r <= 0xda {
			b.WriteRune(r - 0x80)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
