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

package disk_test

import (
	"testing"

	"github.com/vintage64/c64core/drive"
	"github.com/vintage64/c64core/drive/disk"
)

func TestLoadD64RejectsWrongSize(t *testing.T) {
	_, err := disk.LoadD64(make([]byte, 100), false)
	if err == nil {
		t.Fatalf("expected an error for a too-small buffer")
	}
}

func TestLoadD64RoundtripsStandardImage(t *testing.T) {
	raw := make([]byte, drive.TotalSectors()*256)
	raw[0] = 0xaa
	raw[255] = 0xbb

	img, err := disk.LoadD64(raw, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s, err := img.ReadSector(1, 0)
	if err != nil {
		t.Fatal(err)
	}
	if s[0] != 0xaa || s[255] != 0xbb {
		t.Errorf("sector contents not preserved by load")
	}

	back := disk.SaveD64(img)
	if len(back) != len(raw) {
		t.Fatalf("expected saved image to be %d bytes, got %d", len(raw), len(back))
	}
	if back[0] != 0xaa || back[255] != 0xbb {
		t.Errorf("saved image does not round-trip sector contents")
	}
}

func TestLoadPRGNamesEntryAfterHostFile(t *testing.T) {
	e := disk.LoadPRG([]byte{0x01, 0x08, 0xaa}, "game.prg")
	if e.Name != "GAME" {
		t.Errorf("expected entry name GAME, got %q", e.Name)
	}
}
