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
	"encoding/binary"
	"strings"

	"github.com/vintage64/c64core/errors"
)

// Entry is one archived program within a T64/LNX-style tape image or a
// single flat PRG: its PETSCII name, C64 load address, and raw bytes
// (load address included, as LOAD "name" expects to see it).
type Entry struct {
	Name string
	Data []byte
}

// t64DirEntry mirrors one 32-byte directory record in a T64 tape image.
type t64DirEntry struct {
	entryType  uint8
	fileType   uint8
	startAddr  uint16
	endAddr    uint16
	offset     uint32
	name       string
}

// LoadT64 parses a T64 tape image (a simple archival container some
// cross-platform transfer tools produced) into its contained program
// entries. This is read-only: T64 has no concept of a writable
// filesystem, only an archive of already-assembled PRG-equivalent
// blobs, so there is no SaveT64 counterpart.
func LoadT64(raw []byte) ([]Entry, error) {
	if len(raw) < 64 || !strings.HasPrefix(string(raw[:32]), "C64") {
		return nil, errors.Errorf(errors.UnsupportedDiskFormat, "t64")
	}

	maxEntries := int(binary.LittleEndian.Uint16(raw[34:36]))
	usedEntries := int(binary.LittleEndian.Uint16(raw[36:38]))
	if usedEntries > maxEntries {
		usedEntries = maxEntries
	}

	var entries []Entry
	dirBase := 64
	for i := 0; i < usedEntries; i++ {
		off := dirBase + i*32
		if off+32 > len(raw) {
			break
		}
		rec := t64DirEntry{
			entryType: raw[off],
			fileType:  raw[off+1],
			startAddr: binary.LittleEndian.Uint16(raw[off+2 : off+4]),
			endAddr:   binary.LittleEndian.Uint16(raw[off+4 : off+6]),
			offset:    binary.LittleEndian.Uint32(raw[off+8 : off+12]),
			name:      petsciiTrim(raw[off+16 : off+32]),
		}
		if rec.entryType == 0 {
			continue
		}

		size := int(rec.endAddr) - int(rec.startAddr)
		if size < 0 || int(rec.offset)+size > len(raw) {
			continue
		}

		data := make([]byte, 2+size)
		data[0] = byte(rec.startAddr)
		data[1] = byte(rec.startAddr >> 8)
		copy(data[2:], raw[rec.offset:int(rec.offset)+size])

		entries = append(entries, Entry{Name: rec.name, Data: data})
	}

	return entries, nil
}

// petsciiTrim strips the trailing 0xA0 (shifted-space) padding T64/D64
// directory entries use instead of NUL termination.
func petsciiTrim(b []byte) string {
	end := len(b)
	for end > 0 && (b[end-1] == 0xa0 || b[end-1] == 0x00) {
		end--
	}
	return string(b[:end])
}
