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

// Package instructions holds static metadata about the 6502 instruction set
// - mnemonic, addressing mode, operand length and base cycle count - used
// both by the interpreter to know how many operand bytes to fetch and by
// disassembly/tracing code.
package instructions

// AddressingMode identifies how an instruction's operand address is formed.
type AddressingMode int

const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndirectX
	IndirectY
	Relative
)

// OperandBytes returns the number of operand bytes that follow the opcode.
func (m AddressingMode) OperandBytes() int {
	switch m {
	case Implied, Accumulator:
		return 0
	case Immediate, ZeroPage, ZeroPageX, ZeroPageY, IndirectX, IndirectY, Relative:
		return 1
	default:
		return 2
	}
}

// Definition describes one opcode.
type Definition struct {
	Mnemonic string
	Mode     AddressingMode
	Cycles   int

	// PageBoundary is true if an extra cycle is spent when indexing crosses
	// a page boundary.
	PageBoundary bool

	// Unofficial is true for opcodes that are not part of the documented
	// 6502 instruction set but are nonetheless relied upon by real software
	// (KERNAL and drive DOS routines included).
	Unofficial bool
}
