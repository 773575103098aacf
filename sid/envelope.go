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

package sid

// envState is the ADSR generator's state machine position.
type envState int

const (
	envAttack envState = iota
	envDecaySustain
	envRelease
)

// attackRates/decayReleaseRates are the number of envelope clocks (each
// envelope clock itself being a fixed divide-down of the 1MHz SID clock)
// between 8-bit level increments, indexed by the 4-bit rate field in
// ATK/DKY. Values are the well-known table derived by reverse engineers
// of the real 6581/8580 exponential counter.
var attackRates = [16]int{
	2, 8, 16, 24, 38, 56, 68, 80, 100, 250, 500, 800, 1000, 3000, 5000, 8000,
}

var decayReleaseRates = [16]int{
	9, 32, 63, 95, 149, 220, 267, 313, 392, 977, 1954, 3126, 3907, 11720, 19532, 31251,
}

// Envelope models one voice's ADSR envelope generator: an 8-bit counter
// that ramps to 255 at the attack rate, falls to the sustain level at
// the decay rate, holds there while gated, and falls to zero at the
// release rate once the gate bit is cleared. The real chip's decay/
// release curve is exponential rather than linear - modelled here with
// the same coarse per-level rate multiplier real analyses use, rather
// than a full per-sample exponential lookup.
type Envelope struct {
	Attack  uint8 // 4-bit
	Decay   uint8 // 4-bit
	Sustain uint8 // 4-bit
	Release uint8 // 4-bit

	state envState
	level uint8
	gated bool

	counter int
	exponentialCounter int
}

// exponentialDivisor approximates the real chip's non-linear decay/
// release curve: the counter advances every N clocks where N grows as
// level falls, steepening the curve's tail the way the silicon's
// resistor-capacitor-like counter does.
func exponentialDivisor(level uint8) int {
	switch {
	case level > 0x5d:
		return 1
	case level > 0x36:
		return 2
	case level > 0x1a:
		return 4
	case level > 0x0e:
		return 8
	case level > 0x06:
		return 16
	case level > 0x00:
		return 30
	default:
		return 1
	}
}

// Gate is called on a write to the voice's control register when the
// gate bit (bit 0) changes value.
func (e *Envelope) Gate(on bool) {
	e.gated = on
	if on {
		e.state = envAttack
	} else {
		e.state = envRelease
	}
	e.counter = 0
	e.exponentialCounter = 0
}

// Step advances the envelope by one sample period (one SID clock tick,
// at whatever rate the caller is clocking oscillators).
func (e *Envelope) Step() {
	switch e.state {
	case envAttack:
		e.counter++
		if e.counter >= attackRates[e.Attack] {
			e.counter = 0
			if e.level == 0xff {
				e.state = envDecaySustain
			} else {
				e.level++
			}
		}
	case envDecaySustain:
		sustainLevel := e.Sustain<<4 | e.Sustain
		if e.level <= sustainLevel {
			return
		}
		e.exponentialCounter++
		if e.exponentialCounter >= exponentialDivisor(e.level) {
			e.exponentialCounter = 0
			e.counter++
			if e.counter >= decayReleaseRates[e.Decay] {
				e.counter = 0
				if e.level > 0 {
					e.level--
				}
			}
		}
	case envRelease:
		if e.level == 0 {
			return
		}
		e.exponentialCounter++
		if e.exponentialCounter >= exponentialDivisor(e.level) {
			e.exponentialCounter = 0
			e.counter++
			if e.counter >= decayReleaseRates[e.Release] {
				e.counter = 0
				e.level--
			}
		}
	}
}

// Level returns the envelope's current 8-bit amplitude.
func (e *Envelope) Level() uint8 {
	return e.level
}
