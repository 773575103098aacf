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

// Package drive emulates the 1541 disk drive: its two 6522 VIAs, the GCR
// job-queue dispatch mechanism the real drive firmware polls, GCR bit
// encoding, and the 35-track variable-sector geometry table.
package drive

// PortWiring is implemented by whoever wires a VIA's two 8-bit ports to
// something meaningful: VIA1 talks to the IEC bus and the drive's device
// number jumpers, VIA2 talks to the read/write head, stepper motor and
// write-protect sensor.
type PortWiring interface {
	ReadPortA(ddr uint8) uint8
	ReadPortB(ddr uint8) uint8
	WritePortA(value, ddr uint8)
	WritePortB(value, ddr uint8)
}

// VIA models a 6522 Versatile Interface Adapter: two 8-bit ports with
// their own data direction registers, two 16-bit timers (T1 free-running
// or one-shot with PB7 pulse output, T2 one-shot or pulse-counting), and
// an interrupt flag/enable register pair analogous to the CIA's ICR but
// with the 6522's own bit layout.
type VIA struct {
	ddrA, ddrB uint8
	orA, orB   uint8

	t1Counter, t1Latch uint16
	t1FreeRun          bool
	t1PB7Toggle        bool

	t2Counter uint16
	t2Latch   uint8
	t2PulseCounting bool

	ifr, ier uint8

	wiring PortWiring
	irq    func(bool)
}

// VIA interrupt flag bits.
const (
	viaFlagCA2 = 1 << 0
	viaFlagCA1 = 1 << 1
	viaFlagSR  = 1 << 2
	viaFlagCB2 = 1 << 3
	viaFlagCB1 = 1 << 4
	viaFlagT2  = 1 << 5
	viaFlagT1  = 1 << 6
)

// register offsets within a VIA's 16-byte page.
const (
	RegORB  = 0x0
	RegORA  = 0x1
	RegDDRB = 0x2
	RegDDRA = 0x3
	RegT1CL = 0x4
	RegT1CH = 0x5
	RegT1LL = 0x6
	RegT1LH = 0x7
	RegT2CL = 0x8
	RegT2CH = 0x9
	RegIFR  = 0xd
	RegIER  = 0xe
)

// NewVIA constructs a VIA with the given port wiring and IRQ callback
// (both drive VIAs share the drive's single IRQ line into the 6502).
func NewVIA(wiring PortWiring, irq func(bool)) *VIA {
	return &VIA{wiring: wiring, irq: irq}
}

// Step advances both timers by one Phi2 cycle.
func (v *VIA) Step() {
	if v.t1Counter == 0 {
		if v.t1FreeRun {
			v.t1Counter = v.t1Latch
		}
		v.raise(viaFlagT1)
	} else {
		v.t1Counter--
	}

	if !v.t2PulseCounting {
		if v.t2Counter == 0 {
			v.raise(viaFlagT2)
		} else {
			v.t2Counter--
		}
	}
}

func (v *VIA) raise(flag uint8) {
	v.ifr |= flag
	if v.ifr&v.ier != 0 && v.irq != nil {
		v.irq(true)
	}
}

// ReadRegister implements memory.IOChip (the drive's own flat address
// space, not the C64's).
func (v *VIA) ReadRegister(reg uint8) uint8 {
	switch reg {
	case RegORA:
		if v.wiring != nil {
			return v.wiring.ReadPortA(v.ddrA)
		}
		return 0xff
	case RegORB:
		if v.wiring != nil {
			return v.wiring.ReadPortB(v.ddrB)
		}
		return 0xff
	case RegDDRA:
		return v.ddrA
	case RegDDRB:
		return v.ddrB
	case RegT1CL:
		v.ifr &^= viaFlagT1
		return uint8(v.t1Counter)
	case RegT1CH:
		return uint8(v.t1Counter >> 8)
	case RegT1LL:
		return uint8(v.t1Latch)
	case RegT1LH:
		return uint8(v.t1Latch >> 8)
	case RegT2CL:
		v.ifr &^= viaFlagT2
		return uint8(v.t2Counter)
	case RegT2CH:
		return uint8(v.t2Counter >> 8)
	case RegIFR:
		return v.ifr
	case RegIER:
		return v.ier | 0x80
	}
	return 0
}

// WriteRegister implements memory.IOChip.
func (v *VIA) WriteRegister(reg uint8, val uint8) {
	switch reg {
	case RegORA:
		v.orA = val
		if v.wiring != nil {
			v.wiring.WritePortA(val, v.ddrA)
		}
	case RegORB:
		v.orB = val
		if v.wiring != nil {
			v.wiring.WritePortB(val, v.ddrB)
		}
	case RegDDRA:
		v.ddrA = val
	case RegDDRB:
		v.ddrB = val
	case RegT1CL:
		v.t1Latch = v.t1Latch&0xff00 | uint16(val)
	case RegT1CH:
		v.t1Latch = uint16(val)<<8 | v.t1Latch&0x00ff
		v.t1Counter = v.t1Latch
		v.ifr &^= viaFlagT1
	case RegT1LL:
		v.t1Latch = v.t1Latch&0xff00 | uint16(val)
	case RegT1LH:
		v.t1Latch = uint16(val)<<8 | v.t1Latch&0x00ff
	case RegT2CL:
		v.t2Latch = val
	case RegT2CH:
		v.t2Counter = uint16(val)<<8 | uint16(v.t2Latch)
		v.ifr &^= viaFlagT2
	case RegIFR:
		v.ifr &^= val & 0x7f
	case RegIER:
		if val&0x80 != 0 {
			v.ier |= val & 0x7f
		} else {
			v.ier &^= val & 0x7f
		}
	}
}

// SetFreeRunning configures Timer 1's continuous-interrupt mode (ACR bit
// 6); the drive firmware uses this to generate its 1/60s job-scan tick.
func (v *VIA) SetFreeRunning(freeRun bool) {
	v.t1FreeRun = freeRun
}
