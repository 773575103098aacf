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

// Package drivecpu binds the shared cpu6502 interpreter to the 1541's
// own address space: 2K of RAM, a 16K ROM image at $C000-$FFFF, and its
// two 6522 VIAs at $1800 and $1C00, as a simple flat bus rather than the
// C64's banked one.
package drivecpu

import (
	"os"

	"github.com/vintage64/c64core/cpu6502"
	"github.com/vintage64/c64core/drive"
	"github.com/vintage64/c64core/errors"
)

// Bus is the 1541's memory map: 2K of RAM mirrored across its 2K-aligned
// address space (the real drive only decodes address lines A0-A10, so
// $0000-$07FF repeats through to $1FFF), the 16K DOS ROM at $C000-$FFFF,
// and VIA1/VIA2 mapped at $1800 and $1C00, their 16 registers repeating
// through each VIA's 1K window.
type Bus struct {
	RAM [2048]uint8
	ROM [16384]uint8

	VIA1 *drive.VIA
	VIA2 *drive.VIA
}

// NewBus constructs a drive memory bus with the two VIAs already wired.
func NewBus(via1, via2 *drive.VIA) *Bus {
	return &Bus{VIA1: via1, VIA2: via2}
}

// LoadROM loads the 16K 1541 DOS ROM image from path. Like the C64's own
// KERNAL, the real 1541 ROM is copyrighted and not distributed with this
// module.
func (b *Bus) LoadROM(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if len(data) != len(b.ROM) {
		return errors.Errorf(errors.BadROMSize, path, len(data))
	}
	copy(b.ROM[:], data)
	return nil
}

// Read implements cpu6502.Bus.
func (b *Bus) Read(addr uint16) uint8 {
	switch {
	case addr >= 0x1800 && addr < 0x1c00:
		return b.VIA1.ReadRegister(uint8(addr & 0x0f))
	case addr >= 0x1c00 && addr < 0x2000:
		return b.VIA2.ReadRegister(uint8(addr & 0x0f))
	case addr < 0x2000:
		return b.RAM[addr&0x07ff]
	case addr >= 0xc000:
		return b.ROM[addr-0xc000]
	default:
		return 0
	}
}

// Write implements cpu6502.Bus.
func (b *Bus) Write(addr uint16, v uint8) {
	switch {
	case addr >= 0x1800 && addr < 0x1c00:
		b.VIA1.WriteRegister(uint8(addr&0x0f), v)
	case addr >= 0x1c00 && addr < 0x2000:
		b.VIA2.WriteRegister(uint8(addr&0x0f), v)
	case addr < 0x2000:
		b.RAM[addr&0x07ff] = v
	}
}

// CPU is a 1541's 6502 bound to its own flat Bus.
type CPU struct {
	Core *cpu6502.CPU
	Bus  *Bus
}

// New constructs a drive CPU bound to bus.
func New(bus *Bus) *CPU {
	return &CPU{Core: cpu6502.NewCPU(bus), Bus: bus}
}
