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

package instructions

// Table is indexed by opcode byte and gives static metadata for every one of
// the 256 possible opcode values. Entries not assigned by the 6502 designers
// (and not claimed by one of the well known unofficial opcodes) behave, on
// real silicon, as NOPs of varying length; they are filled in here as such
// so that the interpreter always has something sane to execute rather than
// needing a fallback path for "no such opcode".
var Table [256]Definition

func def(op int, mnemonic string, mode AddressingMode, cycles int, pageBoundary bool) {
	Table[op] = Definition{Mnemonic: mnemonic, Mode: mode, Cycles: cycles, PageBoundary: pageBoundary}
}

func undef(op int, mnemonic string, mode AddressingMode, cycles int, pageBoundary bool) {
	Table[op] = Definition{Mnemonic: mnemonic, Mode: mode, Cycles: cycles, PageBoundary: pageBoundary, Unofficial: true}
}

func init() {
	for i := range Table {
		Table[i] = Definition{Mnemonic: "NOP", Mode: Implied, Cycles: 2, Unofficial: true}
	}

	// loads
	def(0xa9, "LDA", Immediate, 2, false)
	def(0xa5, "LDA", ZeroPage, 3, false)
	def(0xb5, "LDA", ZeroPageX, 4, false)
	def(0xad, "LDA", Absolute, 4, false)
	def(0xbd, "LDA", AbsoluteX, 4, true)
	def(0xb9, "LDA", AbsoluteY, 4, true)
	def(0xa1, "LDA", IndirectX, 6, false)
	def(0xb1, "LDA", IndirectY, 5, true)

	def(0xa2, "LDX", Immediate, 2, false)
	def(0xa6, "LDX", ZeroPage, 3, false)
	def(0xb6, "LDX", ZeroPageY, 4, false)
	def(0xae, "LDX", Absolute, 4, false)
	def(0xbe, "LDX", AbsoluteY, 4, true)

	def(0xa0, "LDY", Immediate, 2, false)
	def(0xa4, "LDY", ZeroPage, 3, false)
	def(0xb4, "LDY", ZeroPageX, 4, false)
	def(0xac, "LDY", Absolute, 4, false)
	def(0xbc, "LDY", AbsoluteX, 4, true)

	// stores
	def(0x85, "STA", ZeroPage, 3, false)
	def(0x95, "STA", ZeroPageX, 4, false)
	def(0x8d, "STA", Absolute, 4, false)
	def(0x9d, "STA", AbsoluteX, 5, false)
	def(0x99, "STA", AbsoluteY, 5, false)
	def(0x81, "STA", IndirectX, 6, false)
	def(0x91, "STA", IndirectY, 6, false)

	def(0x86, "STX", ZeroPage, 3, false)
	def(0x96, "STX", ZeroPageY, 4, false)
	def(0x8e, "STX", Absolute, 4, false)

	def(0x84, "STY", ZeroPage, 3, false)
	def(0x94, "STY", ZeroPageX, 4, false)
	def(0x8c, "STY", Absolute, 4, false)

	// transfers
	def(0xaa, "TAX", Implied, 2, false)
	def(0xa8, "TAY", Implied, 2, false)
	def(0xba, "TSX", Implied, 2, false)
	def(0x8a, "TXA", Implied, 2, false)
	def(0x9a, "TXS", Implied, 2, false)
	def(0x98, "TYA", Implied, 2, false)

	// stack
	def(0x48, "PHA", Implied, 3, false)
	def(0x08, "PHP", Implied, 3, false)
	def(0x68, "PLA", Implied, 4, false)
	def(0x28, "PLP", Implied, 4, false)

	// logic / arithmetic
	for _, e := range []struct {
		op    int
		mnem  string
		mode  AddressingMode
		cyc   int
		bound bool
	}{
		{0x29, "AND", Immediate, 2, false}, {0x25, "AND", ZeroPage, 3, false},
		{0x35, "AND", ZeroPageX, 4, false}, {0x2d, "AND", Absolute, 4, false},
		{0x3d, "AND", AbsoluteX, 4, true}, {0x39, "AND", AbsoluteY, 4, true},
		{0x21, "AND", IndirectX, 6, false}, {0x31, "AND", IndirectY, 5, true},

		{0x09, "ORA", Immediate, 2, false}, {0x05, "ORA", ZeroPage, 3, false},
		{0x15, "ORA", ZeroPageX, 4, false}, {0x0d, "ORA", Absolute, 4, false},
		{0x1d, "ORA", AbsoluteX, 4, true}, {0x19, "ORA", AbsoluteY, 4, true},
		{0x01, "ORA", IndirectX, 6, false}, {0x11, "ORA", IndirectY, 5, true},

		{0x49, "EOR", Immediate, 2, false}, {0x45, "EOR", ZeroPage, 3, false},
		{0x55, "EOR", ZeroPageX, 4, false}, {0x4d, "EOR", Absolute, 4, false},
		{0x5d, "EOR", AbsoluteX, 4, true}, {0x59, "EOR", AbsoluteY, 4, true},
		{0x41, "EOR", IndirectX, 6, false}, {0x51, "EOR", IndirectY, 5, true},

		{0x69, "ADC", Immediate, 2, false}, {0x65, "ADC", ZeroPage, 3, false},
		{0x75, "ADC", ZeroPageX, 4, false}, {0x6d, "ADC", Absolute, 4, false},
		{0x7d, "ADC", AbsoluteX, 4, true}, {0x79, "ADC", AbsoluteY, 4, true},
		{0x61, "ADC", IndirectX, 6, false}, {0x71, "ADC", IndirectY, 5, true},

		{0xe9, "SBC", Immediate, 2, false}, {0xe5, "SBC", ZeroPage, 3, false},
		{0xf5, "SBC", ZeroPageX, 4, false}, {0xed, "SBC", Absolute, 4, false},
		{0xfd, "SBC", AbsoluteX, 4, true}, {0xf9, "SBC", AbsoluteY, 4, true},
		{0xe1, "SBC", IndirectX, 6, false}, {0xf1, "SBC", IndirectY, 5, true},

		{0xc9, "CMP", Immediate, 2, false}, {0xc5, "CMP", ZeroPage, 3, false},
		{0xd5, "CMP", ZeroPageX, 4, false}, {0xcd, "CMP", Absolute, 4, false},
		{0xdd, "CMP", AbsoluteX, 4, true}, {0xd9, "CMP", AbsoluteY, 4, true},
		{0xc1, "CMP", IndirectX, 6, false}, {0xd1, "CMP", IndirectY, 5, true},

		{0xe0, "CPX", Immediate, 2, false}, {0xe4, "CPX", ZeroPage, 3, false}, {0xec, "CPX", Absolute, 4, false},
		{0xc0, "CPY", Immediate, 2, false}, {0xc4, "CPY", ZeroPage, 3, false}, {0xcc, "CPY", Absolute, 4, false},

		{0x24, "BIT", ZeroPage, 3, false}, {0x2c, "BIT", Absolute, 4, false},
	} {
		def(e.op, e.mnem, e.mode, e.cyc, e.bound)
	}

	// increments / decrements
	def(0xe6, "INC", ZeroPage, 5, false)
	def(0xf6, "INC", ZeroPageX, 6, false)
	def(0xee, "INC", Absolute, 6, false)
	def(0xfe, "INC", AbsoluteX, 7, false)
	def(0xe8, "INX", Implied, 2, false)
	def(0xc8, "INY", Implied, 2, false)

	def(0xc6, "DEC", ZeroPage, 5, false)
	def(0xd6, "DEC", ZeroPageX, 6, false)
	def(0xce, "DEC", Absolute, 6, false)
	def(0xde, "DEC", AbsoluteX, 7, false)
	def(0xca, "DEX", Implied, 2, false)
	def(0x88, "DEY", Implied, 2, false)

	// shifts/rotates
	def(0x0a, "ASL", Accumulator, 2, false)
	def(0x06, "ASL", ZeroPage, 5, false)
	def(0x16, "ASL", ZeroPageX, 6, false)
	def(0x0e, "ASL", Absolute, 6, false)
	def(0x1e, "ASL", AbsoluteX, 7, false)

	def(0x4a, "LSR", Accumulator, 2, false)
	def(0x46, "LSR", ZeroPage, 5, false)
	def(0x56, "LSR", ZeroPageX, 6, false)
	def(0x4e, "LSR", Absolute, 6, false)
	def(0x5e, "LSR", AbsoluteX, 7, false)

	def(0x2a, "ROL", Accumulator, 2, false)
	def(0x26, "ROL", ZeroPage, 5, false)
	def(0x36, "ROL", ZeroPageX, 6, false)
	def(0x2e, "ROL", Absolute, 6, false)
	def(0x3e, "ROL", AbsoluteX, 7, false)

	def(0x6a, "ROR", Accumulator, 2, false)
	def(0x66, "ROR", ZeroPage, 5, false)
	def(0x76, "ROR", ZeroPageX, 6, false)
	def(0x6e, "ROR", Absolute, 6, false)
	def(0x7e, "ROR", AbsoluteX, 7, false)

	// jumps / calls
	def(0x4c, "JMP", Absolute, 3, false)
	def(0x6c, "JMP", Indirect, 5, false)
	def(0x20, "JSR", Absolute, 6, false)
	def(0x60, "RTS", Implied, 6, false)
	def(0x40, "RTI", Implied, 6, false)

	// branches
	def(0x90, "BCC", Relative, 2, false)
	def(0xb0, "BCS", Relative, 2, false)
	def(0xf0, "BEQ", Relative, 2, false)
	def(0x30, "BMI", Relative, 2, false)
	def(0xd0, "BNE", Relative, 2, false)
	def(0x10, "BPL", Relative, 2, false)
	def(0x50, "BVC", Relative, 2, false)
	def(0x70, "BVS", Relative, 2, false)

	// status flags
	def(0x18, "CLC", Implied, 2, false)
	def(0xd8, "CLD", Implied, 2, false)
	def(0x58, "CLI", Implied, 2, false)
	def(0xb8, "CLV", Implied, 2, false)
	def(0x38, "SEC", Implied, 2, false)
	def(0xf8, "SED", Implied, 2, false)
	def(0x78, "SEI", Implied, 2, false)

	def(0x00, "BRK", Implied, 7, false)
	def(0xea, "NOP", Implied, 2, false)

	// fabricated opcode: dispatched to a FastPathHandler rather than
	// executed as a real instruction. reserved/unused on real silicon.
	undef(0xf2, "JAM", Implied, 1, false)

	// commonly relied-upon unofficial opcodes
	undef(0xa7, "LAX", ZeroPage, 3, false)
	undef(0xb7, "LAX", ZeroPageY, 4, false)
	undef(0xaf, "LAX", Absolute, 4, false)
	undef(0xbf, "LAX", AbsoluteY, 4, true)
	undef(0xa3, "LAX", IndirectX, 6, false)
	undef(0xb3, "LAX", IndirectY, 5, true)

	undef(0x87, "SAX", ZeroPage, 3, false)
	undef(0x97, "SAX", ZeroPageY, 4, false)
	undef(0x8f, "SAX", Absolute, 4, false)
	undef(0x83, "SAX", IndirectX, 6, false)

	undef(0xc7, "DCP", ZeroPage, 5, false)
	undef(0xd7, "DCP", ZeroPageX, 6, false)
	undef(0xcf, "DCP", Absolute, 6, false)
	undef(0xdf, "DCP", AbsoluteX, 7, false)
	undef(0xdb, "DCP", AbsoluteY, 7, false)
	undef(0xc3, "DCP", IndirectX, 8, false)
	undef(0xd3, "DCP", IndirectY, 8, false)

	undef(0xe7, "ISC", ZeroPage, 5, false)
	undef(0xf7, "ISC", ZeroPageX, 6, false)
	undef(0xef, "ISC", Absolute, 6, false)
	undef(0xff, "ISC", AbsoluteX, 7, false)
	undef(0xfb, "ISC", AbsoluteY, 7, false)
	undef(0xe3, "ISC", IndirectX, 8, false)
	undef(0xf3, "ISC", IndirectY, 8, false)

	undef(0x07, "SLO", ZeroPage, 5, false)
	undef(0x17, "SLO", ZeroPageX, 6, false)
	undef(0x0f, "SLO", Absolute, 6, false)
	undef(0x1f, "SLO", AbsoluteX, 7, false)
	undef(0x1b, "SLO", AbsoluteY, 7, false)
	undef(0x03, "SLO", IndirectX, 8, false)
	undef(0x13, "SLO", IndirectY, 8, false)

	undef(0x27, "RLA", ZeroPage, 5, false)
	undef(0x37, "RLA", ZeroPageX, 6, false)
	undef(0x2f, "RLA", Absolute, 6, false)
	undef(0x3f, "RLA", AbsoluteX, 7, false)
	undef(0x3b, "RLA", AbsoluteY, 7, false)
	undef(0x23, "RLA", IndirectX, 8, false)
	undef(0x33, "RLA", IndirectY, 8, false)

	undef(0x47, "SRE", ZeroPage, 5, false)
	undef(0x57, "SRE", ZeroPageX, 6, false)
	undef(0x4f, "SRE", Absolute, 6, false)
	undef(0x5f, "SRE", AbsoluteX, 7, false)
	undef(0x5b, "SRE", AbsoluteY, 7, false)
	undef(0x43, "SRE", IndirectX, 8, false)
	undef(0x53, "SRE", IndirectY, 8, false)

	undef(0x67, "RRA", ZeroPage, 5, false)
	undef(0x77, "RRA", ZeroPageX, 6, false)
	undef(0x6f, "RRA", Absolute, 6, false)
	undef(0x7f, "RRA", AbsoluteX, 7, false)
	undef(0x7b, "RRA", AbsoluteY, 7, false)
	undef(0x63, "RRA", IndirectX, 8, false)
	undef(0x73, "RRA", IndirectY, 8, false)

	undef(0x0b, "ANC", Immediate, 2, false)
	undef(0x2b, "ANC", Immediate, 2, false)
	undef(0x4b, "ALR", Immediate, 2, false)
	undef(0x6b, "ARR", Immediate, 2, false)
	undef(0xcb, "AXS", Immediate, 2, false)
	undef(0xeb, "SBC", Immediate, 2, false)

	// unofficial NOPs with operands, used by some copy-protection and
	// loader routines to waste a predictable number of cycles
	for _, op := range []int{0x04, 0x44, 0x64} {
		undef(op, "NOP", ZeroPage, 3, false)
	}
	for _, op := range []int{0x0c} {
		undef(op, "NOP", Absolute, 4, false)
	}
	for _, op := range []int{0x14, 0x34, 0x54, 0x74, 0xd4, 0xf4} {
		undef(op, "NOP", ZeroPageX, 4, false)
	}
	for _, op := range []int{0x1a, 0x3a, 0x5a, 0x7a, 0xda, 0xfa} {
		undef(op, "NOP", Implied, 2, false)
	}
	for _, op := range []int{0x1c, 0x3c, 0x5c, 0x7c, 0xdc, 0xfc} {
		undef(op, "NOP", AbsoluteX, 4, true)
	}
	for _, op := range []int{0x80, 0x82, 0x89, 0xc2, 0xe2} {
		undef(op, "NOP", Immediate, 2, false)
	}
}
