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

package registers_test

import (
	"testing"

	"github.com/vintage64/c64core/cpu6502/registers"
)

// These vectors follow the algorithm from Jorge Cwik's "Decimal mode in
// NMOS 6502" (v1.0): N and V come from the byte with the low nibble
// already decimal-adjusted but the high nibble not yet adjusted, using
// the same ~(A^operand) & (A^result) formula binary ADC uses.
func TestAddDecimalOverflow(t *testing.T) {
	cases := []struct {
		name             string
		a, val           uint8
		carryIn          bool
		wantA            uint8
		wantCarry        bool
		wantZero         bool
		wantOverflow     bool
		wantSign         bool
	}{
		{
			name:         "58 plus 46 carries into the overflow-triggering intermediate",
			a:            0x58,
			val:          0x46,
			wantA:        0x04,
			wantCarry:    true,
			wantOverflow: true,
			wantSign:     true,
		},
		{
			name:  "12 plus 34, no carry, no overflow",
			a:     0x12,
			val:   0x34,
			wantA: 0x46,
		},
		{
			// NMOS quirk: Z comes from the unadjusted sum and N from the
			// intermediate $A0, so a zero result leaves Z clear and N set.
			name:     "99 plus 1 wraps to zero with carry",
			a:        0x99,
			val:      0x01,
			wantA:    0x00,
			wantCarry: true,
			wantSign: true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := &registers.Registers{A: c.a}
			carry, zero, overflow, sign := r.AddDecimal(c.val, c.carryIn)

			if r.A != c.wantA {
				t.Errorf("A = %#02x, want %#02x", r.A, c.wantA)
			}
			if carry != c.wantCarry {
				t.Errorf("carry = %v, want %v", carry, c.wantCarry)
			}
			if zero != c.wantZero {
				t.Errorf("zero = %v, want %v", zero, c.wantZero)
			}
			if overflow != c.wantOverflow {
				t.Errorf("overflow = %v, want %v", overflow, c.wantOverflow)
			}
			if sign != c.wantSign {
				t.Errorf("sign = %v, want %v", sign, c.wantSign)
			}
		})
	}
}
