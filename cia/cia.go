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

// Package cia emulates the 6526 Complex Interface Adapter, two of which
// sit on a C64: CIA1 drives the keyboard matrix/joysticks and raises IRQs,
// CIA2 drives the VIC bank select and IEC serial lines and raises NMIs.
// Both instances share this package's logic; what differs is only which
// port pins are wired to what, modelled by the PortWiring interface so
// this package stays free of C64-specific pin assignments.
package cia

// register offsets within a CIA's 16-byte page.
const (
	RegPRA  = 0x0
	RegPRB  = 0x1
	RegDDRA = 0x2
	RegDDRB = 0x3
	RegTALo = 0x4
	RegTAHi = 0x5
	RegTBLo = 0x6
	RegTBHi = 0x7
	RegTODT = 0x8
	RegTODS = 0x9
	RegTODM = 0xa
	RegTODH = 0xb
	RegSDR  = 0xc
	RegICR  = 0xd
	RegCRA  = 0xe
	RegCRB  = 0xf
)

// PortWiring is implemented by whatever owns the device-specific meaning
// of a CIA's two 8-bit ports: CIA1's port A/B feed the keyboard matrix
// and joystick ports, CIA2's feed the VIC bank select and IEC lines.
// This package calls back into it whenever software reads or writes
// PRA/PRB so the electrical behaviour (pull-ups, open-collector IEC
// lines, matrix scanning) lives with the caller rather than here.
type PortWiring interface {
	ReadPortA(ddr uint8) uint8
	ReadPortB(ddr uint8) uint8
	WritePortA(value, ddr uint8)
	WritePortB(value, ddr uint8)
}

// IRQLine is called whenever the chip's combined interrupt output
// changes state, so the caller can route it to the CPU's IRQ or NMI
// line (CIA1 and CIA2 respectively, on a C64).
type IRQLine func(asserted bool)

// CIA is one 6526 instance.
type CIA struct {
	TimerA Timer
	TimerB Timer
	TOD    *TOD
	icr    icr

	ddrA, ddrB uint8
	prA, prB   uint8

	sdr        uint8
	sdrLoaded  bool
	sdrBitsLeft int

	wiring PortWiring
	irq    IRQLine

	name string
}

// New constructs a CIA. cyclesPerTenth sets the TOD clock's tick rate
// (see NewTOD); name is used only for log messages.
func New(name string, cyclesPerTenth int, wiring PortWiring, irq IRQLine) *CIA {
	return &CIA{
		TOD:    NewTOD(cyclesPerTenth),
		wiring: wiring,
		irq:    irq,
		name:   name,
	}
}

// Step advances the chip by one Phi2 cycle: both timers (per their
// configured input mode), and the TOD clock. Call once per CPU cycle.
func (c *CIA) Step(cntHigh bool) {
	var underflowA bool
	switch c.TimerA.Mode {
	case CountPhi2:
		underflowA = c.TimerA.Step()
	case CountCNT:
		if cntHigh {
			underflowA = c.TimerA.Step()
		}
	}
	if underflowA {
		c.raise(FlagTimerA)
	}

	var underflowB bool
	switch c.TimerB.Mode {
	case CountPhi2:
		underflowB = c.TimerB.Step()
	case CountCNT:
		if cntHigh {
			underflowB = c.TimerB.Step()
		}
	case CountTimerAUnderflow:
		if underflowA {
			underflowB = c.TimerB.Step()
		}
	case CountTimerAUnderflowAndCNT:
		if underflowA && cntHigh {
			underflowB = c.TimerB.Step()
		}
	}
	if underflowB {
		c.raise(FlagTimerB)
	}

	if c.TOD.Tick() {
		c.raise(FlagTOD)
	}
}

// SetFlagLine is called by whatever drives the CIA's FLAG input (CIA1:
// the cassette read line, CIA2: the IEC SRQ line) on its active edge.
func (c *CIA) SetFlagLine() {
	c.raise(FlagFlagLine)
}

func (c *CIA) raise(flags uint8) {
	if c.icr.Set(flags) {
		c.assertIRQ()
	}
}

func (c *CIA) assertIRQ() {
	if c.irq != nil {
		c.irq(true)
	}
}

// ReadRegister implements memory.IOChip.
func (c *CIA) ReadRegister(reg uint8) uint8 {
	switch reg {
	case RegPRA:
		if c.wiring != nil {
			return c.wiring.ReadPortA(c.ddrA)
		}
		return 0xff
	case RegPRB:
		v := uint8(0xff)
		if c.wiring != nil {
			v = c.wiring.ReadPortB(c.ddrB)
		}
		return c.applyTimerPBOutputs(v)
	case RegDDRA:
		return c.ddrA
	case RegDDRB:
		return c.ddrB
	case RegTALo:
		return uint8(c.TimerA.Counter)
	case RegTAHi:
		return uint8(c.TimerA.Counter >> 8)
	case RegTBLo:
		return uint8(c.TimerB.Counter)
	case RegTBHi:
		return uint8(c.TimerB.Counter >> 8)
	case RegTODT:
		return c.TOD.ReadTenths()
	case RegTODS:
		return c.TOD.ReadSeconds()
	case RegTODM:
		return c.TOD.ReadMinutes()
	case RegTODH:
		return c.TOD.ReadHours()
	case RegSDR:
		return c.sdr
	case RegICR:
		v := c.icr.Read()
		if c.irq != nil {
			c.irq(false)
		}
		return v
	case RegCRA:
		return c.crValue(&c.TimerA, false)
	case RegCRB:
		return c.crValue(&c.TimerB, true)
	}
	return 0
}

func (c *CIA) applyTimerPBOutputs(v uint8) uint8 {
	// PB6/PB7 optionally echo Timer A/B underflow, per CRA/CRB bit 1
	// (PBON) - not separately tracked per-timer here since nothing in
	// this emulation's host-facing API consumes the pulse-output mode;
	// left for a future PBON implementation to hook into TimerA/B.PBPulse.
	return v
}

func (c *CIA) crValue(t *Timer, isB bool) uint8 {
	var v uint8
	if t.Running {
		v |= 0x01
	}
	if t.OneShot {
		v |= 0x08
	}
	if isB {
		switch t.Mode {
		case CountCNT:
			v |= 0x20
		case CountTimerAUnderflow:
			v |= 0x40
		case CountTimerAUnderflowAndCNT:
			v |= 0x60
		}
	} else if t.Mode == CountCNT {
		v |= 0x20
	}
	return v
}

// WriteRegister implements memory.IOChip.
func (c *CIA) WriteRegister(reg uint8, v uint8) {
	switch reg {
	case RegPRA:
		c.prA = v
		if c.wiring != nil {
			c.wiring.WritePortA(v, c.ddrA)
		}
	case RegPRB:
		c.prB = v
		if c.wiring != nil {
			c.wiring.WritePortB(v, c.ddrB)
		}
	case RegDDRA:
		c.ddrA = v
	case RegDDRB:
		c.ddrB = v
	case RegTALo:
		c.TimerA.WriteLatchLo(v)
	case RegTAHi:
		c.TimerA.WriteLatchHi(v)
	case RegTBLo:
		c.TimerB.WriteLatchLo(v)
	case RegTBHi:
		c.TimerB.WriteLatchHi(v)
	case RegTODT:
		c.TOD.WriteTenths(v)
	case RegTODS:
		c.TOD.WriteSeconds(v)
	case RegTODM:
		c.TOD.WriteMinutes(v)
	case RegTODH:
		c.TOD.WriteHours(v)
	case RegSDR:
		c.sdr = v
		c.sdrLoaded = true
	case RegICR:
		if c.icr.Write(v) {
			c.assertIRQ()
		}
	case RegCRA:
		c.writeCRA(v)
	case RegCRB:
		c.writeCRB(v)
	}
}

func (c *CIA) writeCRA(v uint8) {
	c.TimerA.Running = v&0x01 != 0
	c.TimerA.OneShot = v&0x08 != 0
	if v&0x10 != 0 {
		c.TimerA.ForceReload()
	}
	if v&0x20 != 0 {
		c.TimerA.Mode = CountCNT
	} else {
		c.TimerA.Mode = CountPhi2
	}
	c.TOD.SetAlarmMode(v&0x80 != 0)
}

func (c *CIA) writeCRB(v uint8) {
	c.TimerB.Running = v&0x01 != 0
	c.TimerB.OneShot = v&0x08 != 0
	if v&0x10 != 0 {
		c.TimerB.ForceReload()
	}
	switch (v >> 5) & 0x03 {
	case 0:
		c.TimerB.Mode = CountPhi2
	case 1:
		c.TimerB.Mode = CountCNT
	case 2:
		c.TimerB.Mode = CountTimerAUnderflow
	case 3:
		c.TimerB.Mode = CountTimerAUnderflowAndCNT
	}
}

// Reset restores power-on state: both timers stopped with all-ones
// latches, DDRs cleared to all-input, and the ICR mask cleared.
func (c *CIA) Reset() {
	c.TimerA = Timer{Latch: 0xffff, Counter: 0xffff}
	c.TimerB = Timer{Latch: 0xffff, Counter: 0xffff}
	c.ddrA, c.ddrB = 0, 0
	c.prA, c.prB = 0, 0
	c.icr = icr{}
	c.sdr = 0
	c.sdrLoaded = false
}
