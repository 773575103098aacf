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

// TOD implements a CIA's time-of-day clock: BCD hours/minutes/seconds and
// tenths, counted from 50Hz or 60Hz line-frequency pulses, with a latch
// (so a multi-byte read is internally consistent even if the clock ticks
// mid-read) and an alarm register that raises an ICR event on match.
type TOD struct {
	Tenths uint8 // 0-9
	Second uint8 // BCD 00-59
	Minute uint8 // BCD 00-59
	Hour   uint8 // BCD 01-12, bit 7 is AM/PM (1 = PM)

	AlarmTenths uint8
	AlarmSecond uint8
	AlarmMinute uint8
	AlarmHour   uint8

	// writingAlarm is set once the CPU writes to Hours with the alarm
	// flag held by the caller (via SetAlarmMode), routing subsequent
	// byte writes to the alarm registers instead of the live clock.
	writingAlarm bool

	// halted is true between a Hours-write (latching Tenths at zero
	// pending a full write, per the real chip's quirk) and the following
	// Tenths write that restarts it.
	halted bool

	// latch holds a read-stabilised snapshot of the clock, taken when
	// Hours is read and held until Tenths is subsequently read.
	latch      [4]uint8
	latched    bool
	cyclesToGo int
	ticksPerTenth int
}

// NewTOD constructs a TOD clock driven by a 50Hz (PAL) or 60Hz (NTSC) line
// frequency, expressed as the number of Phi2 cycles between power-line
// half-cycles that the CIA actually counts (itself configurable via CRA/
// CRB bit 7, not modelled further here since both this emulation's clock
// sources already run at the right nominal rate).
func NewTOD(cyclesPerTenth int) *TOD {
	return &TOD{ticksPerTenth: cyclesPerTenth}
}

// SetAlarmMode switches subsequent register writes between the live clock
// and the alarm registers, mirroring CRA/CRB bit 7.
func (t *TOD) SetAlarmMode(alarm bool) {
	t.writingAlarm = alarm
}

// Tick should be called once per Phi2 cycle; it returns true the instant
// the clock rolls over into its alarm time, which the owning CIA routes
// into ICR bit 2.
func (t *TOD) Tick() bool {
	if t.halted {
		return false
	}

	t.cyclesToGo--
	if t.cyclesToGo > 0 {
		return false
	}
	t.cyclesToGo = t.ticksPerTenth

	t.Tenths = bcdIncrement(t.Tenths, 9)
	if t.Tenths != 0 {
		return t.checkAlarm()
	}

	t.Second = bcdIncrement(t.Second, 0x59)
	if t.Second != 0 {
		return t.checkAlarm()
	}

	t.Minute = bcdIncrement(t.Minute, 0x59)
	if t.Minute != 0 {
		return t.checkAlarm()
	}

	t.tickHour()
	return t.checkAlarm()
}

func (t *TOD) tickHour() {
	pm := t.Hour&0x80 != 0
	h := t.Hour & 0x7f
	h = bcdIncrement(h, 0x12)
	if h == 0 {
		h = 1
	}
	if h == 0x12 {
		pm = !pm
	}
	t.Hour = h
	if pm {
		t.Hour |= 0x80
	}
}

func (t *TOD) checkAlarm() bool {
	return t.Tenths == t.AlarmTenths &&
		t.Second == t.AlarmSecond &&
		t.Minute == t.AlarmMinute &&
		t.Hour == t.AlarmHour
}

// bcdIncrement increments a packed-BCD byte, wrapping to zero once it
// passes max (itself a BCD value, e.g. 0x59 for seconds/minutes).
func bcdIncrement(v uint8, max uint8) uint8 {
	lo := v & 0x0f
	hi := v >> 4
	lo++
	if lo > 9 {
		lo = 0
		hi++
	}
	v = hi<<4 | lo
	if v > max {
		return 0
	}
	return v
}

// ReadHours latches Minute/Second/Tenths for a consistent multi-byte read
// and returns the live Hour value.
func (t *TOD) ReadHours() uint8 {
	t.latch = [4]uint8{t.Hour, t.Minute, t.Second, t.Tenths}
	t.latched = true
	return t.Hour
}

// ReadMinutes returns the latched minute if a read is in progress.
func (t *TOD) ReadMinutes() uint8 {
	if t.latched {
		return t.latch[1]
	}
	return t.Minute
}

// ReadSeconds returns the latched second if a read is in progress.
func (t *TOD) ReadSeconds() uint8 {
	if t.latched {
		return t.latch[2]
	}
	return t.Second
}

// ReadTenths returns the latched tenths value and releases the latch.
func (t *TOD) ReadTenths() uint8 {
	v := t.Tenths
	if t.latched {
		v = t.latch[3]
	}
	t.latched = false
	return v
}

// WriteHours writes Hour or AlarmHour depending on SetAlarmMode, and (per
// the real chip) halts the clock until Tenths is next written.
func (t *TOD) WriteHours(v uint8) {
	if t.writingAlarm {
		t.AlarmHour = v
		return
	}
	t.Hour = v
	t.halted = true
}

// WriteMinutes writes Minute or AlarmMinute depending on SetAlarmMode.
func (t *TOD) WriteMinutes(v uint8) {
	if t.writingAlarm {
		t.AlarmMinute = v
		return
	}
	t.Minute = v
}

// WriteSeconds writes Second or AlarmSecond depending on SetAlarmMode.
func (t *TOD) WriteSeconds(v uint8) {
	if t.writingAlarm {
		t.AlarmSecond = v
		return
	}
	t.Second = v
}

// WriteTenths writes Tenths or AlarmTenths depending on SetAlarmMode, and
// restarts the clock if it was halted by a prior WriteHours.
func (t *TOD) WriteTenths(v uint8) {
	if t.writingAlarm {
		t.AlarmTenths = v
		return
	}
	t.Tenths = v
	t.halted = false
	t.cyclesToGo = t.ticksPerTenth
}
