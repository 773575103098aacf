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

package memory_test

import (
	"testing"

	"github.com/vintage64/c64core/memory"
)

type stubChip struct {
	reads  []uint8
	writes []uint8
}

func (s *stubChip) ReadRegister(reg uint8) uint8 {
	s.reads = append(s.reads, reg)
	return reg
}

func (s *stubChip) WriteRegister(reg uint8, v uint8) {
	s.writes = append(s.writes, reg)
}

func TestDefaultBankConfigShowsBasicKernalIO(t *testing.T) {
	b := memory.NewBus(nil, false)
	b.InstallStubROMs()
	b.Basic[0] = 0xaa
	b.Kernal[0] = 0xbb

	if v := b.Read(0xa000); v != 0xaa {
		t.Errorf("expected BASIC visible at $A000 by default, got %#02x", v)
	}
	if v := b.Read(0xe000); v != 0xbb {
		t.Errorf("expected KERNAL visible at $E000 by default, got %#02x", v)
	}
}

func TestWritesAlwaysGoToRAMEvenUnderROM(t *testing.T) {
	b := memory.NewBus(nil, false)
	b.InstallStubROMs()
	b.Basic[0] = 0xaa

	b.Write(0xa000, 0x11)
	if v := b.Read(0xa000); v != 0xaa {
		t.Errorf("expected ROM still visible for reads, got %#02x", v)
	}
	if b.RAM[0xa000] != 0x11 {
		t.Errorf("expected write to have gone through to underlying RAM")
	}
}

func TestVICRegisterMirroring(t *testing.T) {
	b := memory.NewBus(nil, false)
	b.InstallStubROMs()
	chip := &stubChip{}
	b.VIC = chip

	b.Read(0xd000)
	b.Read(0xd040) // mirrors register 0 again, 0x40 bytes later

	if len(chip.reads) != 2 || chip.reads[0] != 0 || chip.reads[1] != 0 {
		t.Errorf("expected both reads to resolve to register 0, got %v", chip.reads)
	}
}

func TestOpenBusStickyAtDFFF(t *testing.T) {
	b := memory.NewBus(nil, false)
	b.InstallStubROMs()
	chip := &stubChip{}
	b.VIC = chip

	b.Read(0xd011) // register 0x11, sets open bus to 0x11
	// $DFFF ignores the open-bus value: it toggles 0x55/0xAA, starting at 0x55.
	if v := b.Read(0xdfff); v != 0x55 {
		t.Errorf("expected $DFFF to return its first toggle value 0x55, got %#02x", v)
	}
}

func TestProcessorPortLORAMDisablesBasic(t *testing.T) {
	b := memory.NewBus(nil, false)
	b.InstallStubROMs()
	b.Basic[0] = 0xaa

	b.Write(0, 0x07)    // all three lines as output
	b.Write(1, 0x07&^1) // drop LORAM -> basic no longer mapped

	if v := b.Read(0xa000); v == 0xaa {
		t.Errorf("expected RAM visible at $A000 once LORAM is cleared")
	}
}
