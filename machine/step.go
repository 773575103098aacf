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

// Step runs a single CPU instruction, ticking every other chip by the
// same number of cycles it consumed, and returns the cycle count. It is
// the same cycle-accurate step RunCycleAccurate loops over, exposed on
// its own for a debugger that wants to stop after each instruction
// rather than run freely.
func (m *Machine) Step() (int, error) {
	cycles, err := m.CPU.Core.ExecuteInstruction()
	if err != nil {
		return cycles, err
	}
	m.tickChips(cycles)
	if err := m.runDrive(); err != nil {
		return cycles, err
	}
	return cycles, nil
}
