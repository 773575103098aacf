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

package iec

import (
	"github.com/vintage64/c64core/cpu6502"
	"github.com/vintage64/c64core/errors"
)

// KERNAL zero-page workspace addresses this dispatcher reads filename
// and device parameters from, matching the real KERNAL's own use of
// them (so that BASIC's OPEN/LOAD/SAVE, which poke these same cells
// before jumping into KERNAL code, work unmodified against the fast
// path).
const (
	zpFileNameLen   = 0xb7
	zpCurrentFile   = 0xb8
	zpSecondaryAddr = 0xb9
	zpCurrentDevice = 0xba
	zpFileNamePtr   = 0xbb // two bytes: lo at $BB, hi at $BC
)

// these must match the addresses in memory.WellKnownFastSerialPatches;
// duplicated here (rather than imported, which would pull the memory
// package into iec for no other reason) since they are simply
// well-known KERNAL entry point addresses, not memory layout this
// package otherwise cares about.
//
// pcOpen/pcTalk/pcListen/pcSave/pcLoad/pcChkin/pcChkout are the
// BASIC-facing whole-operation shortcuts this dispatcher has always
// serviced. pcIECOut through pcIECRelease are the eight lower-level
// serial-bus primitives (IECOut, IECOutATN, IECOutSec, IECIn, IECSetATN,
// IECRelATN, IECTurnaround, IECRelease) that a real KERNAL's OPEN/LOAD/
// TALK/etc. routines are themselves built from; patching these instead
// lets any KERNAL code path that bit-bangs the bus by hand - not just
// the handful of entry points above - hit the fast path.
const (
	pcReset  = 0xe4a9
	pcOpen   = 0xf48b
	pcTalk   = 0xf78f
	pcListen = 0xf6e4
	pcSave   = 0xf5be
	pcLoad   = 0xf56e
	pcChkin  = 0xf5cc
	pcChkout = 0xf651

	pcIECOut        = 0xeddd
	pcIECOutATN     = 0xed0c
	pcIECOutSec     = 0xedb9
	pcIECIn         = 0xee13
	pcIECSetATN     = 0xed4e
	pcIECRelATN     = 0xed5e
	pcIECTurnaround = 0xede3
	pcIECRelease    = 0xedef
)

// Sub-op numbers matching the fast-IEC dispatch table: the byte a real
// fabricated-0xF2 patch would carry immediately after the opcode. This
// dispatcher is keyed by patch address rather than by re-reading that
// byte (each address only ever carries the one sub-op it was patched
// with), but the sub-op identity is still worth naming for anyone
// cross-referencing the bus protocol this is standing in for.
const (
	subOutByte      = 0x00
	subOutByteATN   = 0x01
	subOutSecondary = 0x02
	subInByte       = 0x03
	subAssertATN    = 0x04
	subReleaseATN   = 0x05
	subTurnaround   = 0x06
	subReleaseBus   = 0x07
)

// fastSerialDevice is this dispatcher's identity on the wired-OR Bus -
// matching the "host" identity newIECWiring registers CIA2's own line
// driving under, so that ATN/CLK/DATA asserted here are visible to
// anything else sharing the bus (a drive-side VIA, in particular).
const fastSerialDevice = "host"

// primaryDeviceNumber is the only device number this single-drive model
// answers to. LISTEN/TALK addressed at any other device is refused, the
// same as a real bus with nothing else attached would leave it hanging.
const primaryDeviceNumber = 8

// FastPathDispatcher implements cpu6510bank.FastHandler, servicing the
// KERNAL's serial-bus entry points natively instead of running the real
// bit-banged routine. It is bound to the same cpu6502.CPU whose fast
// opcode triggered it, so it can read the filename/device parameters
// BASIC already placed in KERNAL zero-page workspace, and to the device
// this bus's single drive presents.
type FastPathDispatcher struct {
	cpu      *cpu6502.CPU
	channels *Channels
	commands *CommandProcessor
	fs       Filesystem
	bus      *Bus

	currentInput, currentOutput uint8

	addressedDevice    uint8
	addressedListening bool
}

// NewFastPathDispatcher constructs a dispatcher. cpu must be the same
// CPU that will have its FastPath field set to this dispatcher.
func NewFastPathDispatcher(cpu *cpu6502.CPU, channels *Channels, fs Filesystem, bus *Bus) *FastPathDispatcher {
	return &FastPathDispatcher{
		cpu:      cpu,
		channels: channels,
		commands: NewCommandProcessor(fs),
		fs:       fs,
		bus:      bus,
	}
}

// HandleFastSerial implements cpu6510bank.FastHandler.
func (d *FastPathDispatcher) HandleFastSerial(pc uint16) (cycles int, err error) {
	switch pc {
	case pcReset:
		return 6, nil
	case pcOpen:
		return d.open()
	case pcTalk, pcListen:
		// real fast loaders skip the bus handshake entirely; there is
		// nothing left for these two entry points to do.
		return 20, nil
	case pcLoad:
		return d.inByte()
	case pcSave:
		return d.outByte()
	case pcChkin:
		d.currentInput = d.cpu.Reg.A
		return 12, nil
	case pcChkout:
		d.currentOutput = d.cpu.Reg.A
		return 12, nil

	case pcIECOut:
		return d.outByte()
	case pcIECOutATN:
		return d.outByteATN()
	case pcIECOutSec:
		return d.outSecondary()
	case pcIECIn:
		return d.inByte()
	case pcIECSetATN:
		return d.assertATN()
	case pcIECRelATN:
		return d.releaseATN()
	case pcIECTurnaround:
		return d.turnaround()
	case pcIECRelease:
		return d.releaseBus()
	}
	return 0, errors.Errorf(errors.DeviceNotPresent, pc)
}

func (d *FastPathDispatcher) filename() string {
	length := d.cpu.Bus.Read(zpFileNameLen)
	lo := uint16(d.cpu.Bus.Read(zpFileNamePtr))
	hi := uint16(d.cpu.Bus.Read(zpFileNamePtr + 1))
	addr := hi<<8 | lo

	name := make([]byte, length)
	for i := range name {
		name[i] = d.cpu.Bus.Read(addr + uint16(i))
	}
	return string(name)
}

func (d *FastPathDispatcher) secondaryAddress() uint8 {
	return d.cpu.Bus.Read(zpSecondaryAddr)
}

func (d *FastPathDispatcher) open() (cycles int, err error) {
	return d.openChannel(d.secondaryAddress())
}

// openChannel resolves the filename left in zero page and opens it on
// logical channel sa, the operation sub-op 0x02 performs when the
// secondary-address byte it is given is an OPEN command ($F0|sa).
func (d *FastPathDispatcher) openChannel(sa uint8) (cycles int, err error) {
	name := d.filename()

	if sa == CommandChannel {
		d.commands.Execute(name)
		d.cpu.Reg.Status.Carry = d.commands.Status().Code != 0
		return 30, nil
	}

	write := len(name) > 0 && name[len(name)-1] == 'W'
	data, openErr := d.fs.Open(name, write)
	if openErr != nil {
		d.cpu.Reg.Status.Carry = true
		return 30, openErr
	}

	if err := d.channels.Open(sa, name, data); err != nil {
		d.cpu.Reg.Status.Carry = true
		return 30, err
	}

	d.cpu.Reg.Status.Carry = false
	return 30, nil
}

// outByteATN implements sub-op 0x01: A carries either a LISTEN/TALK
// address ($20|device or $40|device) or an UNLISTEN/UNTALK byte ($3F,
// $5F), sent to the bus with ATN held.
func (d *FastPathDispatcher) outByteATN() (cycles int, err error) {
	cmd := d.cpu.Reg.A

	switch {
	case cmd == 0x3f, cmd == 0x5f: // UNLISTEN, UNTALK
		d.addressedDevice = 0
		d.cpu.Reg.Status.Carry = false
		return 20, nil
	case cmd&0xe0 == 0x20: // LISTEN + device
		d.addressedDevice = cmd & 0x1f
		d.addressedListening = true
	case cmd&0xe0 == 0x40: // TALK + device
		d.addressedDevice = cmd & 0x1f
		d.addressedListening = false
	}

	if d.addressedDevice != primaryDeviceNumber {
		d.cpu.Reg.Status.Carry = true
		return 20, errors.Errorf(errors.DeviceNotPresent, d.addressedDevice)
	}
	d.cpu.Reg.Status.Carry = false
	return 20, nil
}

// outSecondary implements sub-op 0x02: A carries a secondary-address
// command byte - $F0|sa opens channel sa, $E0|sa closes it, and $60|sa
// merely selects sa as the channel the following data bytes address.
func (d *FastPathDispatcher) outSecondary() (cycles int, err error) {
	cmd := d.cpu.Reg.A
	sa := cmd & 0x0f

	switch cmd & 0xf0 {
	case 0xf0:
		return d.openChannel(sa)
	case 0xe0:
		d.channels.Close(sa)
		d.cpu.Reg.Status.Carry = false
		return 20, nil
	default:
		if d.addressedListening {
			d.currentOutput = sa
		} else {
			d.currentInput = sa
		}
		d.cpu.Reg.Status.Carry = false
		return 20, nil
	}
}

// assertATN implements sub-op 0x04.
func (d *FastPathDispatcher) assertATN() (cycles int, err error) {
	d.bus.Assert(fastSerialDevice, LineATN, true)
	return 3, nil
}

// releaseATN implements sub-op 0x05.
func (d *FastPathDispatcher) releaseATN() (cycles int, err error) {
	d.bus.Assert(fastSerialDevice, LineATN, false)
	return 3, nil
}

// turnaround implements sub-op 0x06: the handshake a real bus performs
// when a listener becomes a talker (or vice versa) - the new talker
// asserts CLK and releases DATA.
func (d *FastPathDispatcher) turnaround() (cycles int, err error) {
	d.bus.Assert(fastSerialDevice, LineCLK, true)
	d.bus.Assert(fastSerialDevice, LineDATA, false)
	return 20, nil
}

// releaseBus implements sub-op 0x07: every line this end was driving is
// let go, returning the bus to its resting (pulled-up) state as far as
// this device is concerned.
func (d *FastPathDispatcher) releaseBus() (cycles int, err error) {
	d.bus.Assert(fastSerialDevice, LineATN, false)
	d.bus.Assert(fastSerialDevice, LineCLK, false)
	d.bus.Assert(fastSerialDevice, LineDATA, false)
	return 3, nil
}

// inByte implements sub-op 0x03: A = byte read from the current
// talker's channel, Z/N set from the byte, C = EOI (the byte just
// returned was the last one available).
func (d *FastPathDispatcher) inByte() (cycles int, err error) {
	ch := d.currentInput
	b, eoi, readErr := d.channels.ReadByte(ch)
	if readErr != nil {
		d.cpu.Reg.Status.Carry = true
		return 12, readErr
	}
	d.cpu.Reg.A = b
	d.cpu.Reg.Status.Zero = b == 0
	d.cpu.Reg.Status.Sign = b&0x80 != 0
	d.cpu.Reg.Status.Carry = eoi
	return 12, nil
}

// outByte implements sub-op 0x00: writes A to the current listener's
// channel.
func (d *FastPathDispatcher) outByte() (cycles int, err error) {
	ch := d.currentOutput
	if err := d.channels.WriteByte(ch, d.cpu.Reg.A); err != nil {
		d.cpu.Reg.Status.Carry = true
		return 12, err
	}
	d.cpu.Reg.Status.Carry = false
	return 12, nil
}
