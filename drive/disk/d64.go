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

// Package disk implements loaders (and, where the source format allows
// it, writers) for the disk and tape image formats a 1541-compatible
// drive can be presented with: the sector-level D64, the bit-level G64,
// and the read-only archival T64/X64/LNX/flat-PRG formats.
package disk

import (
	"github.com/vintage64/c64core/drive"
	"github.com/vintage64/c64core/errors"
)

// d64SectorCount is the size, in 256-byte sectors, of a standard
// 35-track D64 image with no error-info block appended.
const d64SectorCount = 683

// LoadD64 decodes a raw D64 image buffer into a drive.Image. A D64 is
// simply the 683 sectors of a standard disk laid out back to back in
// track/sector order with no GCR encoding or header framing at all -
// the simplest of the formats this package supports, and the one real
// 1541 tools overwhelmingly produce.
func LoadD64(raw []byte, readOnly bool) (*drive.Image, error) {
	if len(raw) != d64SectorCount*256 && len(raw) != d64SectorCount*256+d64SectorCount {
		return nil, errors.Errorf(errors.BadDiskImageSize, "d64", len(raw))
	}

	sectors := make([][256]byte, d64SectorCount)
	for i := range sectors {
		copy(sectors[i][:], raw[i*256:(i+1)*256])
	}
	return drive.NewImageFromSectors(sectors, readOnly), nil
}

// SaveD64 serialises img back into its raw 683-sector D64 byte layout.
func SaveD64(img *drive.Image) []byte {
	sectors := img.Sectors()
	out := make([]byte, 0, len(sectors)*256)
	for _, s := range sectors {
		out = append(out, s[:]...)
	}
	return out
}
