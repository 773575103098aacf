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

package drive

import (
	"bytes"
	"strings"

	"github.com/vintage64/c64core/errors"
	"github.com/vintage64/c64core/logger"
)

// Filesystem adapts an Image's track-18 directory structure to the
// iec.Filesystem interface the command-channel parser needs, so CBM DOS
// commands addressed to this drive can resolve filenames to sector
// chains without the iec package needing to know anything about BAMs
// or directory sector layout.
type Filesystem struct {
	Image *Image
}

// NewFilesystem constructs a Filesystem view over img.
func NewFilesystem(img *Image) *Filesystem {
	return &Filesystem{Image: img}
}

type dirEntry struct {
	name          string
	track, sector int
	dirSector     int
	dirOffset     int
}

func (f *Filesystem) readDirectory() ([]dirEntry, error) {
	var entries []dirEntry

	track, sector := 18, 1
	visited := map[int]bool{}
	for track != 0 && !visited[track*64+sector] {
		visited[track*64+sector] = true
		data, err := f.Image.ReadSector(track, sector)
		if err != nil {
			return entries, nil
		}

		for off := 2; off+32 <= 256; off += 32 {
			fileType := data[off]
			if fileType == 0 {
				continue
			}
			name := petsciiTrim(data[off+3 : off+19])
			if name == "" {
				continue
			}
			entries = append(entries, dirEntry{
				name:      name,
				track:     int(data[off+1]),
				sector:    int(data[off+2]),
				dirSector: sector,
				dirOffset: off,
			})
		}

		nextTrack := int(data[0])
		nextSector := int(data[1])
		if nextTrack == 0 {
			break
		}
		track, sector = nextTrack, nextSector
	}

	return entries, nil
}

func petsciiTrim(b []byte) string {
	end := len(b)
	for end > 0 && (b[end-1] == 0xa0 || b[end-1] == 0x00) {
		end--
	}
	return string(b[:end])
}

// Open implements iec.Filesystem.
func (f *Filesystem) Open(name string, write bool) ([]byte, error) {
	name = strings.TrimSuffix(name, ",P,W")
	name = strings.TrimSuffix(name, ",S,W")
	name = strings.TrimSuffix(name, "W")

	if write {
		// SAVE support needs BAM-aware free-sector allocation and directory
		// entry creation on channel close, neither of which this
		// synthesised directory view implements yet. Reject rather than
		// hand back an empty write channel that would silently discard
		// everything written to it.
		logger.Logf(logger.Allow, "drive", "rejecting write-channel open for %q: SAVE is not implemented", name)
		return nil, errors.Errorf(errors.DriveNotReady, "write not supported: %s", name)
	}

	if name == "$" {
		return f.Directory()
	}

	entries, _ := f.readDirectory()
	for _, e := range entries {
		if e.name == name || matchesWildcard(name, e.name) {
			return f.readChain(e.track, e.sector)
		}
	}
	return nil, errors.Errorf(errors.DriveNotReady, "file not found: %s", name)
}

func matchesWildcard(pattern, name string) bool {
	if !strings.ContainsAny(pattern, "*?") {
		return false
	}
	if idx := strings.IndexByte(pattern, '*'); idx >= 0 {
		return strings.HasPrefix(name, pattern[:idx])
	}
	if len(pattern) != len(name) {
		return false
	}
	for i := range pattern {
		if pattern[i] != '?' && pattern[i] != name[i] {
			return false
		}
	}
	return true
}

func (f *Filesystem) readChain(track, sector int) ([]byte, error) {
	var out bytes.Buffer
	visited := map[int]bool{}
	for track != 0 && !visited[track*64+sector] {
		visited[track*64+sector] = true
		data, err := f.Image.ReadSector(track, sector)
		if err != nil {
			return nil, err
		}
		next := int(data[0])
		nextSector := int(data[1])
		if next == 0 {
			out.Write(data[2 : 2+nextSector])
			break
		}
		out.Write(data[2:])
		track, sector = next, nextSector
	}
	return out.Bytes(), nil
}

// Directory implements iec.Filesystem: a simplified listing for a
// LOAD "$" - the $0801 load address, one fixed "DISK" header line, then
// each entry's name followed by a zero byte, then a zero terminator. The
// entries carry no link pointers, line numbers or block counts, and no
// BLOCKS FREE footer line is emitted.
func (f *Filesystem) Directory() ([]byte, error) {
	entries, _ := f.readDirectory()

	var out bytes.Buffer
	out.Write([]byte{0x01, 0x08}) // load address $0801, as for any BASIC program
	out.Write([]byte{0x01, 0x01, 0x00, 0x00, 0x12, '"', 'D', 'I', 'S', 'K', '"', 0x00})
	for _, e := range entries {
		out.WriteString(e.name)
		out.WriteByte(0x00)
	}
	out.Write([]byte{0x00, 0x00, 0x00})
	return out.Bytes(), nil
}

// Rename implements iec.Filesystem's R: command by patching the matched
// directory entry's name field in place.
func (f *Filesystem) Rename(from, to string) error {
	entries, _ := f.readDirectory()
	for _, e := range entries {
		if e.name != from {
			continue
		}
		data, err := f.Image.ReadSector(18, e.dirSector)
		if err != nil {
			return err
		}
		for i := 0; i < 16; i++ {
			if i < len(to) {
				data[e.dirOffset+3+i] = to[i]
			} else {
				data[e.dirOffset+3+i] = 0xa0
			}
		}
		return f.Image.WriteSector(18, e.dirSector, data)
	}
	return errors.Errorf(errors.DriveNotReady, "file not found: %s", from)
}

// Scratch implements iec.Filesystem's S: command by clearing the file
// type byte of every matching entry (the same "soft delete" a real BAM
// update performs; block reclamation against the BAM itself is not
// modelled for this synthesised directory).
func (f *Filesystem) Scratch(pattern string) (int, error) {
	entries, _ := f.readDirectory()
	deleted := 0
	for _, e := range entries {
		if e.name != pattern && !matchesWildcard(pattern, e.name) {
			continue
		}
		data, err := f.Image.ReadSector(18, e.dirSector)
		if err != nil {
			return deleted, err
		}
		data[e.dirOffset] = 0
		if err := f.Image.WriteSector(18, e.dirSector, data); err != nil {
			return deleted, err
		}
		deleted++
	}
	return deleted, nil
}

// Format implements iec.Filesystem's N: command by replacing the image
// with a freshly blanked one of the same geometry.
func (f *Filesystem) Format(name, id string) error {
	*f.Image = *NewImage()
	return nil
}
