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

package drivecpu

import (
	"github.com/vintage64/c64core/cpu6502"
	"github.com/vintage64/c64core/drive"
)

// State is the complete serializable state of a drive CPU: its 2K RAM, the
// two VIAs, and the bare 6502 core's own state. The ROM image and VIA
// wiring are left to the caller to have already re-established before
// Restore is called.
type State struct {
	RAM  [2048]uint8
	VIA1 drive.VIAState
	VIA2 drive.VIAState
	Core cpu6502.State
}

// Snapshot captures the drive CPU's complete internal state.
func (c *CPU) Snapshot() State {
	return State{
		RAM:  c.Bus.RAM,
		VIA1: c.Bus.VIA1.Snapshot(),
		VIA2: c.Bus.VIA2.Snapshot(),
		Core: c.Core.Snapshot(),
	}
}

// Restore replaces the drive CPU's internal state with a previously
// captured Snapshot.
func (c *CPU) Restore(s State) {
	c.Bus.RAM = s.RAM
	c.Bus.VIA1.Restore(s.VIA1)
	c.Bus.VIA2.Restore(s.VIA2)
	c.Core.Restore(s.Core)
}
