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

// TimerState is the serializable form of one of the chip's two timers.
type TimerState struct {
	Latch   uint16
	Counter uint16

	Running   bool
	OneShot   bool
	Mode      InputMode
	Underflow bool

	PBPulse bool
}

// TODState is the serializable form of the time-of-day clock.
type TODState struct {
	Tenths uint8
	Second uint8
	Minute uint8
	Hour   uint8

	AlarmTenths uint8
	AlarmSecond uint8
	AlarmMinute uint8
	AlarmHour   uint8

	WritingAlarm bool
}

// ICRState is the serializable form of the interrupt control register.
type ICRState struct {
	Mask    uint8
	Pending uint8
}

// State is the complete serializable state of a CIA instance.
type State struct {
	TimerA TimerState
	TimerB TimerState
	TOD    TODState
	ICR    ICRState

	DDRA, DDRB uint8
	PRA, PRB   uint8

	SDR         uint8
	SDRLoaded   bool
	SDRBitsLeft int
}

func snapshotTimer(t *Timer) TimerState {
	return TimerState{
		Latch:     t.Latch,
		Counter:   t.Counter,
		Running:   t.Running,
		OneShot:   t.OneShot,
		Mode:      t.Mode,
		Underflow: t.Underflow,
		PBPulse:   t.pbPulse,
	}
}

func restoreTimer(s TimerState) Timer {
	return Timer{
		Latch:     s.Latch,
		Counter:   s.Counter,
		Running:   s.Running,
		OneShot:   s.OneShot,
		Mode:      s.Mode,
		Underflow: s.Underflow,
		pbPulse:   s.PBPulse,
	}
}

// Snapshot captures the chip's complete internal state. The wiring and irq
// callbacks are left untouched - those are host-side plumbing, not part of
// the chip's own state.
func (c *CIA) Snapshot() State {
	var s State
	s.TimerA = snapshotTimer(&c.TimerA)
	s.TimerB = snapshotTimer(&c.TimerB)

	if c.TOD != nil {
		s.TOD = TODState{
			Tenths:       c.TOD.Tenths,
			Second:       c.TOD.Second,
			Minute:       c.TOD.Minute,
			Hour:         c.TOD.Hour,
			AlarmTenths:  c.TOD.AlarmTenths,
			AlarmSecond:  c.TOD.AlarmSecond,
			AlarmMinute:  c.TOD.AlarmMinute,
			AlarmHour:    c.TOD.AlarmHour,
			WritingAlarm: c.TOD.writingAlarm,
		}
	}

	s.ICR = ICRState{Mask: c.icr.mask, Pending: c.icr.pending}

	s.DDRA, s.DDRB = c.ddrA, c.ddrB
	s.PRA, s.PRB = c.prA, c.prB

	s.SDR = c.sdr
	s.SDRLoaded = c.sdrLoaded
	s.SDRBitsLeft = c.sdrBitsLeft

	return s
}

// Restore replaces the chip's internal state with a previously captured
// Snapshot.
func (c *CIA) Restore(s State) {
	c.TimerA = restoreTimer(s.TimerA)
	c.TimerB = restoreTimer(s.TimerB)

	if c.TOD != nil {
		c.TOD.Tenths = s.TOD.Tenths
		c.TOD.Second = s.TOD.Second
		c.TOD.Minute = s.TOD.Minute
		c.TOD.Hour = s.TOD.Hour
		c.TOD.AlarmTenths = s.TOD.AlarmTenths
		c.TOD.AlarmSecond = s.TOD.AlarmSecond
		c.TOD.AlarmMinute = s.TOD.AlarmMinute
		c.TOD.AlarmHour = s.TOD.AlarmHour
		c.TOD.writingAlarm = s.TOD.WritingAlarm
	}

	c.icr.mask = s.ICR.Mask
	c.icr.pending = s.ICR.Pending

	c.ddrA, c.ddrB = s.DDRA, s.DDRB
	c.prA, c.prB = s.PRA, s.PRB

	c.sdr = s.SDR
	c.sdrLoaded = s.SDRLoaded
	c.sdrBitsLeft = s.SDRBitsLeft
}
