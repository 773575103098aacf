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

// decimal mode addition/subtraction for the NMOS 6502. The flag behaviour
// here (Z computed before decimal adjustment, N/V computed after adjusting
// only the low nibble) is exactly as documented in "Flags on Decimal mode in
// the NMOS 6502" v1.0 by Jorge Cwik.

func addDecimal(a, b uint8, carry bool) (r uint8, rcarry bool) {
	r = a + b
	if carry {
		r++
	}
	return r, r > 9
}

// AddDecimal adds val to A as though both were two-digit BCD values and
// stores the adjusted result in A. Returns the new carry, zero, overflow
// and sign flag states; it does not set the flags itself, leaving that to
// the caller.
func (r *Registers) AddDecimal(val uint8, carry bool) (bool, bool, bool, bool) {
	var zero, overflow, sign bool
	var ucarry, tcarry bool

	origA := r.A

	runits := r.A & 0x0f
	vunits := val & 0x0f
	runits, ucarry = addDecimal(runits, vunits, carry)

	rtens := (r.A & 0xf0) >> 4
	vtens := (val & 0xf0) >> 4
	rtens, tcarry = addDecimal(rtens, vtens, ucarry)

	// "The Z flag is computed before performing any decimal adjust."
	zero = runits == 0x00 && rtens == 0x00 && !ucarry

	if ucarry {
		runits -= 10
	}

	// "The N and V flags are computed after a decimal adjust of the low
	// nibble, but before adjusting the high nibble" - from the resulting
	// intermediate byte, using the same overflow formula the binary ADC
	// path uses on its own result: V = ~(A^operand) & (A^result).
	mid := (rtens << 4) | runits
	overflow = ^(origA^val)&(origA^mid)&0x80 != 0
	sign = mid&0x80 != 0

	if tcarry {
		rtens -= 10
	}

	r.A = (rtens << 4) | runits

	return tcarry, zero, overflow, sign
}

func subtractDecimal(a, b uint8, carry bool) (r uint8, rcarry bool) {
	r = a - b
	if carry {
		r--
	}
	return r, b > a || (carry && b == a)
}

// SubtractDecimal subtracts val from A as though both were two-digit BCD
// values, returning the new carry state. Zero/overflow/sign for SBC in
// decimal mode are taken from the binary subtraction, which the caller
// performs separately.
func (r *Registers) SubtractDecimal(val uint8, carry bool) bool {
	var ucarry, tcarry bool

	// the 6502 carry flag is inverted relative to a conventional borrow
	carry = !carry

	runits := r.A & 0x0f
	vunits := val & 0x0f
	runits, ucarry = subtractDecimal(runits, vunits, carry)

	rtens := (r.A & 0xf0) >> 4
	vtens := (val & 0xf0) >> 4
	rtens, tcarry = subtractDecimal(rtens, vtens, ucarry)

	if ucarry {
		runits += 10
	}
	if tcarry {
		rtens += 10
	}

	r.A = (rtens << 4) | runits

	return !tcarry
}
