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

package cpu6502

import "github.com/vintage64/c64core/cpu6502/registers"

// State is the complete serializable state of a CPU core: registers, the
// pending-interrupt bookkeeping that isn't visible in the register file,
// and the fields the functional-test harness and diagnostics rely on.
// The Bus and FastPath are wiring, supplied fresh by the caller on Restore.
type State struct {
	Reg registers.Registers

	IRQSources map[string]bool
	NMILine    bool
	NMIPending bool

	Halted bool

	LastPC     uint16
	LastOpcode uint8

	NoFastPath bool
}

// Snapshot captures the core's complete internal state.
func (c *CPU) Snapshot() State {
	sources := make(map[string]bool, len(c.irqSources))
	for k, v := range c.irqSources {
		sources[k] = v
	}
	return State{
		Reg:        c.Reg,
		IRQSources: sources,
		NMILine:    c.nmiLine,
		NMIPending: c.nmiPending,
		Halted:     c.Halted,
		LastPC:     c.LastPC,
		LastOpcode: c.LastOpcode,
		NoFastPath: c.NoFastPath,
	}
}

// Restore replaces the core's internal state with a previously captured
// Snapshot. Bus and FastPath are left as they are - wiring, not state.
func (c *CPU) Restore(s State) {
	c.Reg = s.Reg
	c.irqSources = make(map[string]bool, len(s.IRQSources))
	for k, v := range s.IRQSources {
		c.irqSources[k] = v
	}
	c.nmiLine = s.NMILine
	c.nmiPending = s.NMIPending
	c.Halted = s.Halted
	c.LastPC = s.LastPC
	c.LastOpcode = s.LastOpcode
	c.NoFastPath = s.NoFastPath
}
