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

	"github.com/vintage64/c64core/drive"
	"github.com/vintage64/c64core/errors"
)

const g64Signature = "GCR-1541"

// g64Header mirrors the fixed 12-byte G64 file header: signature,
// version byte, track count, and max track size.
type g64Header struct {
	Version    uint8
	TrackCount uint8
	MaxSize    uint16
}

// LoadG64 decodes a raw G64 image - a container of already-GCR-encoded,
// variable-length raw track data plus a speed-zone table per track -
// into a drive.Image by GCR-decoding each track's sectors back into
// plain 256-byte form. Real G64 images are used to preserve copy
// protection schemes that rely on non-standard sector counts or sync
// timing; this loader handles the standard case (21/19/18/17 sectors
// per the ordinary speed zones) and reports GCRDecodeError for tracks
// whose layout doesn't match.
func LoadG64(raw []byte, readOnly bool) (*drive.Image, error) {
	if len(raw) < 12 || string(raw[:8]) != g64Signature {
		return nil, errors.Errorf(errors.UnsupportedDiskFormat, "g64")
	}

	hdr := g64Header{
		Version:    raw[8],
		TrackCount: raw[9],
		MaxSize:    binary.LittleEndian.Uint16(raw[10:12]),
	}

	numTracks := int(hdr.TrackCount) / 2
	if numTracks < 1 || numTracks > drive.Tracks {
		numTracks = drive.Tracks
	}

	trackOffsetTable := 12
	sectors := make([][256]byte, 0, drive.TotalSectors())

	for track := 1; track <= numTracks; track++ {
		entryOffset := trackOffsetTable + (track-1)*2*4
		if entryOffset+4 > len(raw) {
			return nil, errors.Errorf(errors.BadDiskImageSize, "g64", len(raw))
		}
		trackDataOffset := binary.LittleEndian.Uint32(raw[entryOffset : entryOffset+4])
		if trackDataOffset == 0 {
			// unformatted track; fill with blank sectors.
			for s := 0; s < drive.SectorsPerTrack(track); s++ {
				sectors = append(sectors, [256]byte{})
			}
			continue
		}

		trackLen := int(binary.LittleEndian.Uint16(raw[trackDataOffset : trackDataOffset+2]))
		trackStart := int(trackDataOffset) + 2
		if trackStart+trackLen > len(raw) {
			return nil, errors.Errorf(errors.BadDiskImageSize, "g64", len(raw))
		}
		trackData := raw[trackStart : trackStart+trackLen]

		decoded, err := decodeTrack(trackData, track)
		if err != nil {
			return nil, err
		}
		sectors = append(sectors, decoded...)
	}

	return drive.NewImageFromSectors(sectors, readOnly), nil
}

// decodeTrack splits a raw GCR track bitstream into its per-sector
// 325-byte groups (sync marks and gap bytes between sectors are not
// modelled; this loader assumes sectors are packed back to back without
// them, which holds for G64s produced by straightforward rippers rather
// than ones preserving exotic protection schemes).
func decodeTrack(trackData []byte, track int) ([][256]byte, error) {
	count := drive.SectorsPerTrack(track)
	sectors := make([][256]byte, 0, count)
	for s := 0; s < count; s++ {
		start := s * 325
		end := start + 325
		if end > len(trackData) {
			sectors = append(sectors, [256]byte{})
			continue
		}
		data, _, err := drive.DecodeSector(trackData[start:end], track, s)
		if err != nil {
			return nil, err
		}
		sectors = append(sectors, data)
	}
	return sectors, nil
}
