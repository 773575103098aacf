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

package drive_test

import (
	"testing"

	"github.com/vintage64/c64core/drive"
)

func TestGCREncodeDecodeRoundtrip(t *testing.T) {
	var data [256]byte
	for i := range data {
		data[i] = byte(i)
	}
	checksum := drive.Checksum(data)

	encoded := drive.EncodeSector(data, checksum)
	if len(encoded) != 325 {
		t.Fatalf("expected 325-byte encoded sector, got %d", len(encoded))
	}

	decoded, decChecksum, err := drive.DecodeSector(encoded, 1, 0)
	if err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	if decoded != data {
		t.Errorf("decoded data does not match original")
	}
	if decChecksum != checksum {
		t.Errorf("decoded checksum %#02x != original %#02x", decChecksum, checksum)
	}
}

func TestSectorsPerTrackZones(t *testing.T) {
	cases := map[int]int{1: 21, 17: 21, 18: 19, 24: 19, 25: 18, 30: 18, 31: 17, 35: 17}
	for track, want := range cases {
		if got := drive.SectorsPerTrack(track); got != want {
			t.Errorf("track %d: got %d sectors, want %d", track, got, want)
		}
	}
	if total := drive.TotalSectors(); total != 683 {
		t.Errorf("expected 683 total sectors on a standard disk, got %d", total)
	}
}

func TestJobEngineReadWrite(t *testing.T) {
	img := drive.NewImage()
	e := drive.NewEngine(img)

	buf := make([]byte, 256)
	for i := range buf {
		buf[i] = byte(i ^ 0x55)
	}
	if result := e.Execute(drive.Job{Code: drive.JobWrite, Track: 1, Sector: 0, Buffer: buf}); result != drive.JobResultOK {
		t.Fatalf("expected write job to succeed, got result %#02x", result)
	}

	readBuf := make([]byte, 256)
	e.Execute(drive.Job{Code: drive.JobRead, Track: 1, Sector: 0, Buffer: readBuf})
	for i := range buf {
		if readBuf[i] != buf[i] {
			t.Fatalf("byte %d: read back %#02x, wrote %#02x", i, readBuf[i], buf[i])
		}
	}
}

func TestJobEngineRejectsWriteOnReadOnlyImage(t *testing.T) {
	img := drive.NewImage()
	img.ReadOnly = true
	e := drive.NewEngine(img)

	result := e.Execute(drive.Job{Code: drive.JobWrite, Track: 1, Sector: 0, Buffer: make([]byte, 256)})
	if result != drive.JobResultWriteProtect {
		t.Errorf("expected write-protect result, got %#02x", result)
	}
}
