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

package registers

import "strings"

// StatusRegister is the special purpose register that stores the CPU flags.
type StatusRegister struct {
	Sign             bool
	Overflow         bool
	Break            bool
	DecimalMode      bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

func (sr StatusRegister) String() string {
	s := strings.Builder{}
	flag := func(b bool, c rune) {
		if b {
			s.WriteRune(c)
		} else {
			s.WriteRune(c + 32)
		}
	}
	flag(sr.Sign, 'S')
	flag(sr.Overflow, 'V')
	s.WriteRune('-')
	flag(sr.Break, 'B')
	flag(sr.DecimalMode, 'D')
	flag(sr.InterruptDisable, 'I')
	flag(sr.Zero, 'Z')
	flag(sr.Carry, 'C')
	return s.String()
}

// Reset clears all status flags.
func (sr *StatusRegister) Reset() {
	sr.FromValue(0)
}

// Value packs the flags into the byte representation pushed to the stack by
// PHP/BRK/interrupt entry. The unused bit is always set.
func (sr StatusRegister) Value(brk bool) uint8 {
	var v uint8
	if sr.Sign {
		v |= 0x80
	}
	if sr.Overflow {
		v |= 0x40
	}
	if brk {
		v |= 0x10
	}
	if sr.DecimalMode {
		v |= 0x08
	}
	if sr.InterruptDisable {
		v |= 0x04
	}
	if sr.Zero {
		v |= 0x02
	}
	if sr.Carry {
		v |= 0x01
	}
	v |= 0x20
	return v
}

// FromValue unpacks a byte (pulled from the stack by PLP/RTI, or loaded at
// reset) into the flags. The Break flag itself is not a real latch on the
// 6502 - it only exists as the bit pushed to the stack - so it is not
// restored from here.
func (sr *StatusRegister) FromValue(v uint8) {
	sr.Sign = v&0x80 == 0x80
	sr.Overflow = v&0x40 == 0x40
	sr.DecimalMode = v&0x08 == 0x08
	sr.InterruptDisable = v&0x04 == 0x04
	sr.Zero = v&0x02 == 0x02
	sr.Carry = v&0x01 == 0x01
}
