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

package cia_test

import (
	"testing"

	"github.com/vintage64/c64core/cia"
)

type stubWiring struct{}

func (stubWiring) ReadPortA(ddr uint8) uint8   { return 0xff }
func (stubWiring) ReadPortB(ddr uint8) uint8   { return 0xff }
func (stubWiring) WritePortA(value, ddr uint8) {}
func (stubWiring) WritePortB(value, ddr uint8) {}

func TestTimerAUnderflowRaisesIRQ(t *testing.T) {
	var asserted bool
	c := cia.New("test", 98524, stubWiring{}, func(a bool) { asserted = a })

	c.WriteRegister(cia.RegTALo, 2)
	c.WriteRegister(cia.RegTAHi, 0)
	c.WriteRegister(cia.RegICR, 0x81) // unmask timer A
	c.WriteRegister(cia.RegCRA, 0x11) // start, force load

	for i := 0; i < 3; i++ {
		c.Step(false)
	}

	if !asserted {
		t.Fatalf("expected IRQ line asserted after timer A underflow")
	}

	v := c.ReadRegister(cia.RegICR)
	if v&cia.FlagTimerA == 0 || v&0x80 == 0 {
		t.Errorf("expected ICR read to report timer A flag with bit7 set, got %#02x", v)
	}
}

func TestOneShotTimerStopsAfterUnderflow(t *testing.T) {
	c := cia.New("test", 98524, stubWiring{}, nil)
	c.WriteRegister(cia.RegTALo, 1)
	c.WriteRegister(cia.RegTAHi, 0)
	c.WriteRegister(cia.RegCRA, 0x19) // start, one-shot, force load

	c.Step(false)
	c.Step(false)

	cr := c.ReadRegister(cia.RegCRA)
	if cr&0x01 != 0 {
		t.Errorf("expected one-shot timer to have stopped itself, CRA=%#02x", cr)
	}
}

func TestTODSecondsRollover(t *testing.T) {
	c := cia.New("test", 1, stubWiring{}, nil)
	c.WriteRegister(cia.RegTODS, 0x59)
	for i := 0; i < 10; i++ {
		c.Step(false)
	}
	if v := c.ReadRegister(cia.RegTODS); v != 0x00 {
		t.Errorf("expected seconds to roll over to 0x00, got %#02x", v)
	}
	if v := c.ReadRegister(cia.RegTODM); v != 0x01 {
		t.Errorf("expected minutes to have incremented to 0x01, got %#02x", v)
	}
}

func TestICRWriteSetClearConvention(t *testing.T) {
	c := cia.New("test", 98524, stubWiring{}, nil)
	c.WriteRegister(cia.RegICR, 0x83) // set mask bits 0,1
	c.WriteRegister(cia.RegICR, 0x01) // clear mask bit 0

	c.WriteRegister(cia.RegTALo, 1)
	c.WriteRegister(cia.RegTAHi, 0)
	c.WriteRegister(cia.RegCRA, 0x11)
	c.Step(false)
	c.Step(false)

	v := c.ReadRegister(cia.RegICR)
	if v&0x80 != 0 {
		t.Errorf("expected timer A interrupt to be masked off, got ICR=%#02x", v)
	}
}
