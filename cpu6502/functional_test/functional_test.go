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

package functional_test

import (
	"os"
	"testing"

	"github.com/vintage64/c64core/cpu6502"
)

type flatBus struct {
	mem [65536]uint8
}

func (b *flatBus) Read(addr uint16) uint8     { return b.mem[addr] }
func (b *flatBus) Write(addr uint16, v uint8) { b.mem[addr] = v }

// TestFunctional runs the well known 6502_functional_test.bin image (traps
// on failure by jumping to itself) to completion, checking that it reaches
// its designated success trap address rather than looping anywhere else.
func TestFunctional(t *testing.T) {
	path := os.Getenv("KLAUS_FUNCTIONAL_TEST_ROM")
	if path == "" {
		t.Skip("KLAUS_FUNCTIONAL_TEST_ROM not set, skipping functional test suite")
	}

	image, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading test rom: %v", err)
	}

	bus := &flatBus{}
	copy(bus.mem[0x0000:], image)

	const startAddress = 0x0400
	const successTrap = 0x3469

	c := cpu6502.NewCPU(bus)
	c.NoFastPath = true
	c.Reg.PC = startAddress

	var lastPC uint16
	for i := 0; i < 100_000_000; i++ {
		lastPC = c.Reg.PC
		if _, err := c.ExecuteInstruction(); err != nil {
			break
		}
		if c.Reg.PC == lastPC {
			break
		}
	}

	if lastPC != successTrap {
		t.Fatalf("functional test trapped at %#04x, expected success trap %#04x", lastPC, successTrap)
	}
}
