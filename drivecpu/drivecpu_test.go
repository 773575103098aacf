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

package drivecpu_test

import (
	"testing"

	"github.com/vintage64/c64core/drive"
	"github.com/vintage64/c64core/drivecpu"
)

func TestRAMMirrorsAcross2K(t *testing.T) {
	via1 := drive.NewVIA(nil, nil)
	via2 := drive.NewVIA(nil, nil)
	b := drivecpu.NewBus(via1, via2)

	b.Write(0x0010, 0x42)
	if v := b.Read(0x0810); v != 0x42 {
		t.Errorf("expected RAM to mirror every 2K, got %#02x at $0810", v)
	}
}

func TestVIARegistersAreReachableThroughBus(t *testing.T) {
	via1 := drive.NewVIA(nil, nil)
	via2 := drive.NewVIA(nil, nil)
	b := drivecpu.NewBus(via1, via2)

	b.Write(0x1800+drive.RegDDRA, 0xff)
	if via1.ReadRegister(drive.RegDDRA) != 0xff {
		t.Errorf("expected write through bus to reach VIA1's DDRA")
	}
}
