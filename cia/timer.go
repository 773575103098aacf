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

package cia

// InputMode selects what a timer counts.
type InputMode int

const (
	// CountPhi2 counts system clock cycles - the ordinary mode.
	CountPhi2 InputMode = iota
	// CountCNT counts positive edges on the CNT pin (serial clock input).
	CountCNT
	// CountTimerAUnderflow counts Timer A underflows; only meaningful for
	// Timer B, used to chain the two timers into a 32-bit counter.
	CountTimerAUnderflow
	// CountTimerAUnderflowAndCNT counts Timer A underflows while CNT is
	// high; also only meaningful for Timer B.
	CountTimerAUnderflowAndCNT
)

// Timer models one of a CIA's two independent 16-bit down-counters:
// free-running or one-shot, latched-reload-on-underflow, with an optional
// output on a PB pin (toggle or single strobe pulse) that this package
// leaves to the caller to apply, since PB wiring differs between CIA1 and
// CIA2 and neither chip is emulated at the pin level.
type Timer struct {
	Latch   uint16
	Counter uint16

	Running   bool
	OneShot   bool
	Mode      InputMode
	Underflow bool

	// pbPulse describes the pulse that would be emitted on the
	// associated PB pin for this cycle's underflow - populated by Step so
	// that a CIA wired to output timer pulses on the port can read it off
	// without duplicating underflow detection.
	pbPulse bool
}

// WriteLatchLo sets the low byte of the reload latch.
func (t *Timer) WriteLatchLo(v uint8) {
	t.Latch = t.Latch&0xff00 | uint16(v)
}

// WriteLatchHi sets the high byte of the reload latch. On a real CIA this
// also reloads Counter immediately if the timer is currently stopped, or
// if this is Timer A/B being started for the first time - callers that
// need that nuance should follow with ForceReload.
func (t *Timer) WriteLatchHi(v uint8) {
	t.Latch = uint16(v)<<8 | t.Latch&0x00ff
	if !t.Running {
		t.Counter = t.Latch
	}
}

// ForceReload copies the latch into the live counter immediately, as
// happens when the CPU writes to CRA/CRB with the force-load bit set.
func (t *Timer) ForceReload() {
	t.Counter = t.Latch
}

// Step advances the timer by one input pulse (whose meaning depends on
// Mode and is resolved by the caller - ordinarily one call per Phi2
// cycle). Returns true the cycle the counter underflows from 0 to the
// reload value, which is when IRQ/ICR logic and any PB pulse fire.
func (t *Timer) Step() bool {
	if !t.Running {
		t.pbPulse = false
		return false
	}

	if t.Counter == 0 {
		t.Counter = t.Latch
		if t.OneShot {
			t.Running = false
		}
		t.Underflow = true
		t.pbPulse = true
		return true
	}

	t.Counter--
	t.pbPulse = false
	return false
}

// PBPulse reports whether the immediately preceding Step call underflowed,
// for driving a toggled or strobed PB output pin.
func (t *Timer) PBPulse() bool {
	return t.pbPulse
}
