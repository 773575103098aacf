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

package machine

import (
	"testing"

	"github.com/vintage64/c64core/drive"
	"github.com/vintage64/c64core/iec"
)

func TestKeyboardWiringNoKeysHeldReadsAllOnes(t *testing.T) {
	k := newKeyboardWiring()
	k.WritePortA(0x00, 0xff) // select every row
	if got := k.ReadPortB(0x00); got != 0xff {
		t.Fatalf("ReadPortB with nothing held = %#02x, want $ff", got)
	}
}

func TestKeyboardWiringOnlySelectedRowIsScanned(t *testing.T) {
	k := newKeyboardWiring()
	matrix := [8]uint8{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}
	matrix[3] = 0xfe // some key in row 3 held down
	k.setMatrix(matrix, [2]uint8{0xff, 0xff})

	k.WritePortA(0xff, 0xff) // no row selected (all high)
	if got := k.ReadPortB(0x00); got != 0xff {
		t.Fatalf("ReadPortB with no row selected = %#02x, want $ff", got)
	}

	k.WritePortA(^uint8(1<<3), 0xff) // select only row 3
	if got := k.ReadPortB(0x00); got != 0xfe {
		t.Fatalf("ReadPortB with row 3 selected = %#02x, want $fe", got)
	}
}

func TestKeyboardWiringJoystick2SharesPortA(t *testing.T) {
	k := newKeyboardWiring()
	k.setMatrix([8]uint8{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, [2]uint8{0xff, 0xef})
	if got := k.ReadPortA(0x00); got != 0xef {
		t.Fatalf("ReadPortA with joystick 2 up held = %#02x, want $ef", got)
	}
}

func TestIECWiringBankSelectIsInverted(t *testing.T) {
	vm := &vicMemoryView{}
	w := newIECWiring(iec.NewBus(), "host")
	w.vicMem = vm

	w.WritePortA(0x00, 0xff) // bits 00 -> bank 3
	if vm.bank != 0xc000 {
		t.Fatalf("bank for PRA=0x00 = %#04x, want $C000", vm.bank)
	}
	w.WritePortA(0x03, 0xff) // bits 11 -> bank 0
	if vm.bank != 0x0000 {
		t.Fatalf("bank for PRA=0x03 = %#04x, want $0000", vm.bank)
	}
	w.WritePortA(0x01, 0xff) // bits 01 -> bank 2
	if vm.bank != 0x8000 {
		t.Fatalf("bank for PRA=0x01 = %#04x, want $8000", vm.bank)
	}
}

func TestIECWiringAssertsBusLines(t *testing.T) {
	bus := iec.NewBus()
	w := newIECWiring(bus, "host")

	w.WritePortA(iecBitATNOut, 0xff)
	if !bus.Level(iec.LineATN) {
		t.Fatalf("ATN not asserted after PRA write with ATN OUT bit set")
	}
	w.WritePortA(0x00, 0xff)
	if bus.Level(iec.LineATN) {
		t.Fatalf("ATN still asserted after releasing ATN OUT bit")
	}
}

func TestIECWiringReflectsDriveSideLevels(t *testing.T) {
	bus := iec.NewBus()
	drv := newDriveIECWiring(bus)
	drv.WritePortA(iecBitCLKOut, 0xff)

	host := newIECWiring(bus, "host")
	if host.ReadPortA(0x00)&iecBitCLKIn != 0 {
		t.Fatalf("host sees CLK released while drive is pulling it low")
	}
}

func TestDriveHeadWiringReportsWriteProtect(t *testing.T) {
	img := drive.NewImage()
	img.ReadOnly = true
	w := newDriveHeadWiring(drive.NewEngine(img))
	if got := w.ReadPortB(0x00); got&driveBitWriteProtect != 0 {
		t.Fatalf("write-protect bit set for a read-only image, want cleared")
	}

	img.ReadOnly = false
	if got := w.ReadPortB(0x00); got&driveBitWriteProtect == 0 {
		t.Fatalf("write-protect bit cleared for a writable image, want set")
	}
}
