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

package machine

import (
	"github.com/vintage64/c64core/drive"
	"github.com/vintage64/c64core/iec"
)

// keyboardWiring implements cia.PortWiring for CIA1: port A selects
// which of the keyboard matrix's 8 rows is driven low (an output), port
// B reads back the OR of every column still pulled low across whichever
// rows are currently selected (an input). Joystick 2 shares port A's
// pins as inputs; joystick 1 shares port B's.
type keyboardWiring struct {
	// matrix[row] has a 0 bit wherever that row/column intersection's
	// key is currently held down, 1 otherwise - the same active-low
	// convention PollKeyboardFunc fills in.
	matrix [8]uint8

	joystick [2]uint8 // active-low, bit0-3 up/down/left/right, bit4 fire

	selectedRows uint8 // port A output value, one 0 bit per row being scanned
}

func newKeyboardWiring() *keyboardWiring {
	return &keyboardWiring{
		matrix:   [8]uint8{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
		joystick: [2]uint8{0xff, 0xff},
	}
}

// setMatrix is called once per frame from the housekeeping poll with
// whatever the host's PollKeyboardFunc filled in.
func (k *keyboardWiring) setMatrix(matrix [8]uint8, joystick [2]uint8) {
	k.matrix = matrix
	k.joystick = joystick
}

// ReadPortA returns joystick 2's state, since port A's input half (bits
// whose DDR bit is 0) floats to whatever joystick 2's switches pull it
// to regardless of what the row-select output half is doing.
func (k *keyboardWiring) ReadPortA(ddr uint8) uint8 {
	return k.joystick[1] | ddr
}

// ReadPortB returns the matrix column readback ANDed with joystick 1's
// bits, for every row currently selected low by the last WritePortA.
func (k *keyboardWiring) ReadPortB(ddr uint8) uint8 {
	columns := uint8(0xff)
	for row := 0; row < 8; row++ {
		if k.selectedRows&(1<<row) == 0 {
			columns &= k.matrix[row]
		}
	}
	return columns & k.joystick[0]
}

// WritePortA latches the row-select pattern; only output bits (ddr=1)
// actually drive the row lines low, matching the real CIA's open-drain
// outputs.
func (k *keyboardWiring) WritePortA(value, ddr uint8) {
	k.selectedRows = value | ^ddr
}

func (k *keyboardWiring) WritePortB(value, ddr uint8) {}

// iecWiring implements cia.PortWiring for CIA2: port A's low two bits
// select the VIC's 16K memory bank (inverted - 00 selects bank 3), its
// high bits carry ATN OUT/CLK OUT/DATA OUT and reflect CLK IN/DATA IN;
// port B is unused by the C64 and floats high.
type iecWiring struct {
	bus    *iec.Bus
	device string
	vicMem *vicMemoryView

	lastPortA uint8
}

func newIECWiring(bus *iec.Bus, device string) *iecWiring {
	return &iecWiring{bus: bus, device: device}
}

const (
	iecBitDATAOut = 1 << 5
	iecBitCLKOut  = 1 << 4
	iecBitATNOut  = 1 << 3
	iecBitCLKIn   = 1 << 6
	iecBitDATAIn  = 1 << 7
)

func (w *iecWiring) ReadPortA(ddr uint8) uint8 {
	v := w.lastPortA & ddr // output bits read back whatever was last written
	if !w.bus.Level(iec.LineCLK) {
		v |= iecBitCLKIn
	}
	if !w.bus.Level(iec.LineDATA) {
		v |= iecBitDATAIn
	}
	return v
}

func (w *iecWiring) WritePortA(value, ddr uint8) {
	w.lastPortA = value

	if w.vicMem != nil {
		bank := 3 - uint16(value&0x03)
		w.vicMem.bank = bank * 0x4000
	}

	w.bus.Assert(w.device, iec.LineATN, value&iecBitATNOut != 0)
	w.bus.Assert(w.device, iec.LineCLK, value&iecBitCLKOut != 0)
	w.bus.Assert(w.device, iec.LineDATA, value&iecBitDATAOut != 0)
}

func (w *iecWiring) ReadPortB(ddr uint8) uint8  { return 0xff }
func (w *iecWiring) WritePortB(value, ddr uint8) {}

// driveIECWiring implements drive.PortWiring for the 1541's VIA1: the
// IEC bus lines (wired the opposite way round from the host's CIA2,
// since the drive is the other end of the same open-collector wires)
// and the device-number jumpers the firmware reads at boot to learn
// which of devices 8-11 it should answer to.
type driveIECWiring struct {
	bus      *iec.Bus
	device   string
	deviceNo uint8
}

func newDriveIECWiring(bus *iec.Bus) *driveIECWiring {
	return &driveIECWiring{bus: bus, device: "drive8", deviceNo: 8}
}

func (w *driveIECWiring) ReadPortA(ddr uint8) uint8 {
	v := uint8(0)
	if !w.bus.Level(iec.LineCLK) {
		v |= iecBitCLKIn
	}
	if !w.bus.Level(iec.LineDATA) {
		v |= iecBitDATAIn
	}
	// jumpers encode device number 8-11 as the low 2 bits, inverted.
	v |= (^(w.deviceNo - 8)) & 0x03
	return v
}

func (w *driveIECWiring) WritePortA(value, ddr uint8) {
	w.bus.Assert(w.device, iec.LineATN, value&iecBitATNOut != 0)
	w.bus.Assert(w.device, iec.LineCLK, value&iecBitCLKOut != 0)
	w.bus.Assert(w.device, iec.LineDATA, value&iecBitDATAOut != 0)
}

func (w *driveIECWiring) ReadPortB(ddr uint8) uint8  { return 0xff }
func (w *driveIECWiring) WritePortB(value, ddr uint8) {}

// driveHeadWiring implements drive.PortWiring for the 1541's VIA2: the
// read/write head's GCR data register, and a handful of control lines -
// stepper motor phase, spindle motor, write-protect sensor, density
// select - multiplexed onto port B. The job engine this emulation uses
// for the drive-CPU-off fast path operates on whole sectors directly and
// has no use for bit-level head timing, so this wiring only needs to
// give the real drive firmware something sane to poll: write-protect
// following the image's ReadOnly flag, and the stepper/motor bits simply latched back
// on read since nothing downstream inspects them yet.
type driveHeadWiring struct {
	jobs *drive.Engine

	headData   uint8
	controlOut uint8
}

func newDriveHeadWiring(jobs *drive.Engine) *driveHeadWiring {
	return &driveHeadWiring{jobs: jobs}
}

const driveBitWriteProtect = 1 << 4

func (w *driveHeadWiring) ReadPortA(ddr uint8) uint8 { return w.headData }
func (w *driveHeadWiring) WritePortA(value, ddr uint8) {
	w.headData = value
}

func (w *driveHeadWiring) ReadPortB(ddr uint8) uint8 {
	// write-protect sensor reads high (not write-protected) unless the
	// mounted image says otherwise.
	v := w.controlOut
	if w.jobs == nil || w.jobs.Image == nil || !w.jobs.Image.ReadOnly {
		v |= driveBitWriteProtect
	}
	return v
}

func (w *driveHeadWiring) WritePortB(value, ddr uint8) {
	w.controlOut = value
}
