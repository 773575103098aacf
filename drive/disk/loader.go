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
	"path/filepath"
	"strings"

	"github.com/vintage64/c64core/drive"
	"github.com/vintage64/c64core/errors"
)

// Load sniffs raw by both its file extension and its content (the
// extension is trusted first since it is unambiguous for every format
// this package supports; content fingerprinting only matters for the
// handful of formats sharing a generic ".bin"-style extension) and
// returns a drive.Image - decoding read-only archival formats (T64,
// LNX, flat PRG) into a synthetic single-file D64-shaped image so the
// rest of the emulation core never needs to know which format a disk
// arrived in.
func Load(path string, raw []byte) (*drive.Image, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".d64":
		return LoadD64(raw, false)
	case ".g64":
		return LoadG64(raw, true)
	case ".x64":
		return LoadX64(raw)
	case ".t64":
		entries, err := LoadT64(raw)
		if err != nil {
			return nil, err
		}
		return imageFromEntries(entries)
	case ".lnx":
		entries, err := LoadLNX(raw)
		if err != nil {
			return nil, err
		}
		return imageFromEntries(entries)
	case ".prg":
		return imageFromEntries([]Entry{LoadPRG(raw, filepath.Base(path))})
	}

	if len(raw) >= 8 && string(raw[:8]) == g64Signature {
		return LoadG64(raw, true)
	}
	if len(raw) >= 7 && string(raw[:7]) == x64Signature {
		return LoadX64(raw)
	}
	if len(raw) >= 3 && strings.HasPrefix(string(raw[:3]), "C64") {
		entries, err := LoadT64(raw)
		if err == nil {
			return imageFromEntries(entries)
		}
	}

	return nil, errors.Errorf(errors.UnsupportedDiskFormat, path)
}

// imageFromEntries builds a minimal read-only disk image holding the
// given program entries as if they were the sole files on an otherwise
// empty disk, synthesising just enough of track 18's BAM/directory
// structure for a LOAD "$" or LOAD "name" to find them.
func imageFromEntries(entries []Entry) (*drive.Image, error) {
	img := drive.NewImage()

	nextTrack, nextSector := 1, 0
	var dirEntries []dirRecord

	for _, e := range entries {
		startTrack, startSector := nextTrack, nextSector
		data := e.Data
		for len(data) > 0 {
			chunk := data
			if len(chunk) > 254 {
				chunk = chunk[:254]
			}
			var sector [256]byte
			more := len(data) > 254
			if more {
				sector[0] = byte(nextTrack)
				sector[1] = byte(nextSector + 1)
			}
			copy(sector[2:], chunk)
			if err := img.WriteSector(nextTrack, nextSector, sector); err != nil {
				return nil, err
			}

			data = data[len(chunk):]
			nextSector++
			if nextSector >= drive.SectorsPerTrack(nextTrack) {
				nextSector = 0
				nextTrack++
			}
			if !more {
				break
			}
			nextSector++
			if nextSector >= drive.SectorsPerTrack(nextTrack) {
				nextSector = 0
				nextTrack++
			}
		}

		dirEntries = append(dirEntries, dirRecord{name: e.Name, track: startTrack, sector: startSector})
	}

	writeDirectory(img, dirEntries)
	return img, nil
}

type dirRecord struct {
	name          string
	track, sector int
}

// writeDirectory writes a single directory sector (track 18, sector 1)
// sufficient for the command-channel Directory() call to enumerate
// entries; it writes no BAM sector and does not maintain a block
// availability map, since this synthetic image is never written back
// to as a D64 file.
func writeDirectory(img *drive.Image, entries []dirRecord) {
	var dir [256]byte
	dir[0] = 0 // track 0: this is the last directory sector (none follow)
	dir[1] = 0xff

	offset := 2
	for _, e := range entries {
		if offset+32 > 256 {
			break
		}
		dir[offset+0] = 0x82 // PRG, not locked, not closed-dirty
		dir[offset+1] = byte(e.track)
		dir[offset+2] = byte(e.sector)
		name := []byte(e.name)
		for i := 0; i < 16; i++ {
			if i < len(name) {
				dir[offset+3+i] = name[i]
			} else {
				dir[offset+3+i] = 0xa0
			}
		}
		offset += 32
	}

	_ = img.WriteSector(18, 1, dir)
}
