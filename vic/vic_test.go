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

package vic_test

import (
	"testing"

	"github.com/vintage64/c64core/vic"
)

type stubBus struct {
	mem [0x4000]uint8
}

func (s *stubBus) VICRead(addr uint16) uint8 { return s.mem[addr&0x3fff] }

func TestRasterLineWrapsAfterFullFrame(t *testing.T) {
	bus := &stubBus{}
	v := vic.New(bus, nil)
	v.WriteRegister(0x11, 0x1b) // DEN set, 25 rows, YSCROLL=3

	sawEndOfFrame := false
	for i := 0; i < vic.CyclesPerLine*vic.LinesPerFrame+1; i++ {
		if v.Step() {
			// a bad line's BA assertion is expected during the visible
			// window; nothing to assert here beyond "it doesn't panic".
		}
	}
	_ = sawEndOfFrame
	if c := v.GetCoords(); c.Frame != 1 || c.Line != 0 {
		t.Fatalf("expected raster to wrap to frame 1 line 0, got frame %d line %d", c.Frame, c.Line)
	}
}

func TestRasterIRQFiresOnCompareLine(t *testing.T) {
	bus := &stubBus{}
	v := vic.New(bus, nil)
	v.WriteRegister(0x1a, 0x01) // enable raster IRQ
	v.WriteRegister(0x12, 100)  // compare against line 100

	for i := 0; i < vic.CyclesPerLine*100+1; i++ {
		v.Step()
	}

	if v.ReadRegister(0x19)&0x01 == 0 {
		t.Fatalf("expected raster IRQ status bit set once raster reached the compare line")
	}
}

func TestWriteOneClearsIRQStatusBit(t *testing.T) {
	bus := &stubBus{}
	v := vic.New(bus, nil)
	v.WriteRegister(0x1a, 0x01)
	v.WriteRegister(0x12, 5)

	for i := 0; i < vic.CyclesPerLine*5+1; i++ {
		v.Step()
	}
	if v.ReadRegister(0x19)&0x01 == 0 {
		t.Fatalf("expected raster IRQ to have latched")
	}

	v.WriteRegister(0x19, 0x01)
	if v.ReadRegister(0x19)&0x01 != 0 {
		t.Fatalf("expected writing 1 to $D019 bit 0 to clear it")
	}
}
