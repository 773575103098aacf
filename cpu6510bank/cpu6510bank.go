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

// Package cpu6510bank binds the bare cpu6502 interpreter to the C64's
// banked 64K address space, and provides the fast-serial dispatch point
// that the memory package's patched KERNAL entry points jump into.
package cpu6510bank

import (
	"github.com/vintage64/c64core/cpu6502"
	"github.com/vintage64/c64core/errors"
	"github.com/vintage64/c64core/logger"
	"github.com/vintage64/c64core/memory"
)

// FastHandler is implemented by whatever owns the IEC bus and CBM DOS
// command-channel logic, and is consulted whenever the CPU fetches the
// fabricated 0xF2 opcode at one of memory.WellKnownFastSerialPatches.
type FastHandler interface {
	// HandleFastSerial services the KERNAL routine whose entry point was
	// patched at pc, and returns the number of cycles the real routine
	// would have taken (used so that frame-relative timing loops in
	// calling code don't notice the difference).
	HandleFastSerial(pc uint16) (cycles int, err error)
}

// CPU is a 6510 wired to the C64 address space: the bare 6502 core plus
// the banked memory.Bus, with fast-serial dispatch routed to a
// FastHandler rather than an emulated IEC bit-bang loop.
type CPU struct {
	Core *cpu6502.CPU
	Bus  *memory.Bus
	Fast FastHandler
}

// New constructs a CPU bound to bus. Pass a non-nil FastHandler once the
// IEC bus owner is available; a fast-serial opcode reached while Fast is
// nil halts the CPU (setting Core.Halted) and logs the address.
func New(bus *memory.Bus, fast FastHandler) *CPU {
	c := &CPU{Bus: bus, Fast: fast}
	c.Core = cpu6502.NewCPU(bus)
	c.Core.FastPath = c
	return c
}

// HandleFastPath implements cpu6502.FastPathHandler.
func (c *CPU) HandleFastPath(core *cpu6502.CPU) int {
	if c.Fast == nil {
		core.Halted = true
		logger.Logf(logger.Allow, "cpu6510bank", "fast-serial opcode hit at %#04x with no handler installed", core.LastPC)
		return 2
	}

	cycles, err := c.Fast.HandleFastSerial(core.LastPC)
	if err != nil && !errors.Is(err, errors.DeviceNotPresent) {
		logger.Logf(logger.Allow, "cpu6510bank", "fast-serial dispatch at %#04x: %v", core.LastPC, err)
	}

	// the fast handler has already done the work the real KERNAL routine
	// would have done; standing in for that routine's own RTS, pop the
	// return address pushed by the JSR that got us here and resume the
	// caller directly, skipping the routine body entirely.
	lo := uint16(c.Bus.Read(0x0100 + uint16(core.Reg.SP) + 1))
	hi := uint16(c.Bus.Read(0x0100 + uint16(core.Reg.SP) + 2))
	core.Reg.SP += 2
	core.Reg.PC = (hi<<8 | lo) + 1

	return cycles
}
