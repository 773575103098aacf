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

package drive

// VIAState is the complete serializable state of a VIA instance. The
// wiring and irq callback are left as they are - host-side plumbing, not
// part of the chip's own state.
type VIAState struct {
	DDRA, DDRB uint8
	ORA, ORB   uint8

	T1Counter, T1Latch uint16
	T1FreeRun          bool
	T1PB7Toggle        bool

	T2Counter       uint16
	T2Latch         uint8
	T2PulseCounting bool

	IFR, IER uint8
}

// Snapshot captures the VIA's complete internal state.
func (v *VIA) Snapshot() VIAState {
	return VIAState{
		DDRA: v.ddrA, DDRB: v.ddrB,
		ORA: v.orA, ORB: v.orB,
		T1Counter: v.t1Counter, T1Latch: v.t1Latch,
		T1FreeRun:   v.t1FreeRun,
		T1PB7Toggle: v.t1PB7Toggle,
		T2Counter:   v.t2Counter, T2Latch: v.t2Latch,
		T2PulseCounting: v.t2PulseCounting,
		IFR:             v.ifr, IER: v.ier,
	}
}

// Restore replaces the VIA's internal state with a previously captured
// Snapshot.
func (v *VIA) Restore(s VIAState) {
	v.ddrA, v.ddrB = s.DDRA, s.DDRB
	v.orA, v.orB = s.ORA, s.ORB
	v.t1Counter, v.t1Latch = s.T1Counter, s.T1Latch
	v.t1FreeRun = s.T1FreeRun
	v.t1PB7Toggle = s.T1PB7Toggle
	v.t2Counter, v.t2Latch = s.T2Counter, s.T2Latch
	v.t2PulseCounting = s.T2PulseCounting
	v.ifr, v.ier = s.IFR, s.IER
}
