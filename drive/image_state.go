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

// ImageState is the serializable form of the sector data the job engine
// reads and writes - the part of a snapshot's "GCR job state" that
// actually varies between two points in an emulation session, since jobs
// themselves are dispatched synchronously and leave no queued state behind.
type ImageState struct {
	Sectors  [][256]byte
	ReadOnly bool
}

// Snapshot captures the image's complete sector contents.
func (img *Image) Snapshot() ImageState {
	sectors := make([][256]byte, len(img.sectors))
	copy(sectors, img.sectors)
	return ImageState{Sectors: sectors, ReadOnly: img.ReadOnly}
}

// Restore replaces the image's sector contents with a previously captured
// Snapshot.
func (img *Image) Restore(s ImageState) {
	img.sectors = make([][256]byte, len(s.Sectors))
	copy(img.sectors, s.Sectors)
	img.ReadOnly = s.ReadOnly
}
