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

// Tracks is the number of tracks a standard single-sided 1541 disk
// exposes without half-track stepping.
const Tracks = 35

// SectorsPerTrack is the 1541's variable zone layout: outer tracks spin
// under the head for longer per rotation at the drive's fixed angular
// velocity, so they hold more sectors than inner ones.
func SectorsPerTrack(track int) int {
	switch {
	case track >= 1 && track <= 17:
		return 21
	case track >= 18 && track <= 24:
		return 19
	case track >= 25 && track <= 30:
		return 18
	case track >= 31 && track <= 35:
		return 17
	default:
		return 0
	}
}

// SpeedZone returns the drive's four-value bit-rate selector (3 for the
// outer, fastest zone, 0 for the innermost, slowest) for track, matching the divisor the real drive's bit clock
// uses per zone so track-to-track read timing stays consistent.
func SpeedZone(track int) int {
	switch {
	case track >= 1 && track <= 17:
		return 3
	case track >= 18 && track <= 24:
		return 2
	case track >= 25 && track <= 30:
		return 1
	default:
		return 0
	}
}

// TrackOffset returns the cumulative sector count of every track before
// track (1-based), i.e. the D64 image byte offset of track's first
// sector divided by 256.
func TrackOffset(track int) (int, error) {
	if track < 1 || track > Tracks {
		return 0, errors.Errorf(errors.TrackOutOfRange, track)
	}
	total := 0
	for t := 1; t < track; t++ {
		total += SectorsPerTrack(t)
	}
	return total, nil
}

// ValidateSector reports an error if sector is out of range for track.
func ValidateSector(track, sector int) error {
	if track < 1 || track > Tracks {
		return errors.Errorf(errors.TrackOutOfRange, track)
	}
	if sector < 0 || sector >= SectorsPerTrack(track) {
		return errors.Errorf(errors.SectorOutOfRange, track, sector)
	}
	return nil
}

// TotalSectors is the sector count of a standard 35-track disk (683,
// matching the canonical 174848-byte D64 image size).
func TotalSectors() int {
	total := 0
	for t := 1; t <= Tracks; t++ {
		total += SectorsPerTrack(t)
	}
	return total
}
