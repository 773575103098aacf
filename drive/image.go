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

import "github.com/vintage64/c64core/errors"

// Image is a format-independent, sector-addressable view of a disk: a
// flat array of 256-byte sectors indexed by (track, sector), the layout
// every format in drive/disk ultimately decodes into or encodes from.
type Image struct {
	sectors  [][256]byte
	ReadOnly bool
}

// NewImage constructs a blank, formatted 35-track image (683 sectors,
// matching a standard D64).
func NewImage() *Image {
	return &Image{sectors: make([][256]byte, TotalSectors())}
}

// NewImageFromSectors wraps an already-decoded flat sector array (as
// produced by drive/disk's format loaders) into an Image.
func NewImageFromSectors(sectors [][256]byte, readOnly bool) *Image {
	return &Image{sectors: sectors, ReadOnly: readOnly}
}

func (img *Image) index(track, sector int) (int, error) {
	if err := ValidateSector(track, sector); err != nil {
		return 0, err
	}
	base, err := TrackOffset(track)
	if err != nil {
		return 0, err
	}
	return base + sector, nil
}

// ReadSector returns a copy of the 256-byte sector at (track, sector).
func (img *Image) ReadSector(track, sector int) ([256]byte, error) {
	i, err := img.index(track, sector)
	if err != nil {
		return [256]byte{}, err
	}
	if i >= len(img.sectors) {
		return [256]byte{}, errors.Errorf(errors.SectorOutOfRange, track, sector)
	}
	return img.sectors[i], nil
}

// WriteSector overwrites the 256-byte sector at (track, sector).
func (img *Image) WriteSector(track, sector int, data [256]byte) error {
	if img.ReadOnly {
		return errors.Errorf(errors.DriveNotReady, "image is read-only")
	}
	i, err := img.index(track, sector)
	if err != nil {
		return err
	}
	if i >= len(img.sectors) {
		return errors.Errorf(errors.SectorOutOfRange, track, sector)
	}
	img.sectors[i] = data
	return nil
}

// Sectors returns the flat sector array backing the image, for a
// drive/disk writer to serialise back to its native file format.
func (img *Image) Sectors() [][256]byte {
	return img.sectors
}
