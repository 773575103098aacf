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

// Package iec models the Commodore serial bus: three wired-OR lines
// (ATN, CLK, DATA) shared between the host computer and however many
// drives are attached, a fast-path dispatch table that services common
// KERNAL routines natively instead of bit-banging them, and the logical
// channel / CBM DOS command parsing a 1541-compatible device needs to
// answer those routines meaningfully.
package iec

// Line is one of the bus's three open-collector signals. Any device
// (host or drive) can only ever pull a line low; the bus-visible state
// is the logical AND of every device's own idea of the line (equivalently,
// any device pulling low wins), modelled here as an OR of "is this device
// asserting" flags rather than literal voltage levels.
type Line int

const (
	LineATN Line = iota
	LineCLK
	LineDATA
	lineCount
)

// Bus is the wired-OR serial bus joining the host's CIA2 to up to four
// disk drives (device numbers 8-11 by convention, though this
// implementation only wires up one).
type Bus struct {
	asserted [lineCount]map[string]bool
}

// NewBus constructs an empty bus with no device yet asserting any line.
func NewBus() *Bus {
	b := &Bus{}
	for i := range b.asserted {
		b.asserted[i] = make(map[string]bool)
	}
	return b
}

// Assert records that device is pulling line low (or releasing it).
func (b *Bus) Assert(device string, line Line, low bool) {
	if low {
		b.asserted[line][device] = true
	} else {
		delete(b.asserted[line], device)
	}
}

// Level reports the bus-visible state of line: true if any device is
// currently pulling it low.
func (b *Bus) Level(line Line) bool {
	return len(b.asserted[line]) > 0
}
