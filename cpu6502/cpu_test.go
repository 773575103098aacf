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

package cpu6502_test

import (
	"testing"

	"github.com/vintage64/c64core/cpu6502"
)

type flatBus struct {
	mem [65536]uint8
}

func (b *flatBus) Read(addr uint16) uint8    { return b.mem[addr] }
func (b *flatBus) Write(addr uint16, v uint8) { b.mem[addr] = v }

func newTestCPU() (*cpu6502.CPU, *flatBus) {
	bus := &flatBus{}
	c := cpu6502.NewCPU(bus)
	bus.mem[0xfffc] = 0x00
	bus.mem[0xfffd] = 0x02
	c.Reset()
	return c, bus
}

func TestLoadImmediateSetsZeroFlag(t *testing.T) {
	c, bus := newTestCPU()
	bus.mem[0x0200] = 0xa9 // LDA #$00
	bus.mem[0x0201] = 0x00

	if _, err := c.ExecuteInstruction(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !c.Reg.Status.Zero {
		t.Errorf("expected zero flag set after loading 0")
	}
	if c.Reg.Status.Sign {
		t.Errorf("expected sign flag clear after loading 0")
	}
}

func TestDecimalAdd(t *testing.T) {
	c, bus := newTestCPU()
	bus.mem[0x0200] = 0xf8 // SED
	bus.mem[0x0201] = 0x18 // CLC
	bus.mem[0x0202] = 0xa9 // LDA #$58
	bus.mem[0x0203] = 0x58
	bus.mem[0x0204] = 0x69 // ADC #$46
	bus.mem[0x0205] = 0x46

	for i := 0; i < 4; i++ {
		if _, err := c.ExecuteInstruction(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	// 58 + 46 in BCD is 104, which wraps to 04 with carry set
	if c.Reg.A != 0x04 {
		t.Errorf("expected BCD result 0x04, got %#02x", c.Reg.A)
	}
	if !c.Reg.Status.Carry {
		t.Errorf("expected carry set for BCD overflow")
	}
}

func TestJSRThenRTSReturnsToNextInstruction(t *testing.T) {
	c, bus := newTestCPU()
	bus.mem[0x0200] = 0x20 // JSR $0300
	bus.mem[0x0201] = 0x00
	bus.mem[0x0202] = 0x03
	bus.mem[0x0203] = 0xea // NOP, should be reached after RTS

	bus.mem[0x0300] = 0x60 // RTS

	if _, err := c.ExecuteInstruction(); err != nil { // JSR
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Reg.PC != 0x0300 {
		t.Fatalf("expected PC at subroutine, got %#04x", c.Reg.PC)
	}

	if _, err := c.ExecuteInstruction(); err != nil { // RTS
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Reg.PC != 0x0203 {
		t.Errorf("expected PC back at caller+3, got %#04x", c.Reg.PC)
	}
}

func TestBranchTakenCostsExtraCycle(t *testing.T) {
	c, bus := newTestCPU()
	bus.mem[0x0200] = 0x18 // CLC
	bus.mem[0x0201] = 0x90 // BCC +2
	bus.mem[0x0202] = 0x02

	if _, err := c.ExecuteInstruction(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cycles, err := c.ExecuteInstruction()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cycles != 3 {
		t.Errorf("expected 3 cycles for taken same-page branch, got %d", cycles)
	}
	if c.Reg.PC != 0x0205 {
		t.Errorf("expected PC at 0x0205, got %#04x", c.Reg.PC)
	}
}

// fastPathStub records that the 0xf2 fabricated opcode was dispatched
// rather than executed as a genuine illegal instruction.
type fastPathStub struct {
	called bool
}

func (f *fastPathStub) HandleFastPath(c *cpu6502.CPU) int {
	f.called = true
	c.Reg.PC++ // consume the patch's single marker byte
	return 2
}

func TestFastPathOpcodeDispatchesToHandler(t *testing.T) {
	c, bus := newTestCPU()
	stub := &fastPathStub{}
	c.FastPath = stub

	bus.mem[0x0200] = 0xf2
	bus.mem[0x0201] = 0x00

	cycles, err := c.ExecuteInstruction()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !stub.called {
		t.Errorf("expected fast path handler to be invoked")
	}
	if cycles != 2 {
		t.Errorf("expected handler-reported cycle count, got %d", cycles)
	}
}

func TestIRQMaskedByInterruptDisable(t *testing.T) {
	c, bus := newTestCPU()
	bus.mem[0xfffe] = 0x00
	bus.mem[0xffff] = 0x04
	bus.mem[0x0200] = 0xea // NOP

	c.Reg.Status.InterruptDisable = true
	c.SetIRQ("test", true)

	if _, err := c.ExecuteInstruction(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Reg.PC != 0x0201 {
		t.Errorf("expected masked IRQ to be ignored, PC=%#04x", c.Reg.PC)
	}

	c.Reg.Status.InterruptDisable = false
	if _, err := c.ExecuteInstruction(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Reg.PC != 0x0400 {
		t.Errorf("expected IRQ to be serviced once unmasked, PC=%#04x", c.Reg.PC)
	}
}
