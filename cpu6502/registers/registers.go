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

// Package registers implements the register file shared by the 6510 main
// CPU and the 6502 used in the 1541 drive - accumulator, index registers,
// stack pointer, program counter and status flags, plus the decimal-mode
// arithmetic shared by both chips.
package registers

// Registers is the NMOS 6502/6510 register file.
type Registers struct {
	A  uint8
	X  uint8
	Y  uint8
	SP uint8
	PC uint16

	Status StatusRegister
}

// Reset puts the register file into the state it has immediately after the
// internal reset sequence completes (the stack pointer has been decremented
// three times without any writes taking place, landing on 0xFD).
func (r *Registers) Reset() {
	r.A = 0
	r.X = 0
	r.Y = 0
	r.SP = 0xfd
	r.Status.Reset()
	r.Status.InterruptDisable = true
}

// SetZN sets the Zero and Sign flags from the given value, as almost every
// load/transfer/arithmetic instruction does with its result.
func (r *Registers) SetZN(v uint8) {
	r.Status.Zero = v == 0
	r.Status.Sign = v&0x80 == 0x80
}
