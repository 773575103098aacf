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

// Package memory implements the C64's banked 64K address space: the CPU
// port at addresses 0/1 that selects between eight BASIC/KERNAL/CHARGEN/RAM
// bank configurations, the I/O page that further sub-dispatches to the VIC,
// SID, colour RAM and both CIAs, and the fabricated-opcode patch mechanism
// used to splice native IEC/DOS routines into KERNAL code.
package memory

import (
	"github.com/vintage64/c64core/memory/bankmap"
	"github.com/vintage64/c64core/random"
)

// IOChip is implemented by any chip mapped into the $D000-$DFFF I/O page.
// nibble-width registers and unused bits are the chip's own responsibility;
// the bus only handles page selection and register mirroring.
type IOChip interface {
	ReadRegister(reg uint8) uint8
	WriteRegister(reg uint8, v uint8)
}

// Bus is the C64 CPU-side view of the 64K address space. It satisfies
// cpu6502.Bus.
type Bus struct {
	RAM      [65536]uint8
	ColorRAM [1024]uint8

	Basic   [8192]uint8
	Kernal  [8192]uint8
	CharGen [4096]uint8

	// Cartridge ROM, when present, is mapped through these two windows per
	// the bank configuration - $8000-$9FFF (ROML) and $A000-$BFFF/$E000-$FFFF
	// (ROMH). A cartridge-less machine leaves both unmapped (CartLOMapped,
	// CartHIMapped false) and the banked RAM/KERNAL shows through instead.
	CartLO        [8192]uint8
	CartHI        [8192]uint8
	CartLOMapped  bool
	CartHIMapped  bool
	CartUltimax   bool

	VIC  IOChip
	SID  IOChip
	CIA1 IOChip
	CIA2 IOChip

	// processor port direction/data latches at addresses 0 and 1
	portDirection uint8
	portData      uint8

	// sticky open-bus byte. reads of any unmapped I/O address other than
	// $DFFF return the last byte actually driven onto the bus, which on
	// real hardware is whatever the VIC most recently fetched for its own
	// internal use.
	openBus uint8

	// $DFFF has no chip mapped to it on a stock machine and famously does
	// not float like the rest of open bus - it toggles between 0x55 and
	// 0xAA on every read, a quirk some copy protection checks for.
	dfffByte uint8

	rnd *random.Random
}

// NewBus constructs a Bus with freshly power-on-initialised RAM.
func NewBus(rnd *random.Random, randomiseState bool) *Bus {
	b := &Bus{rnd: rnd}
	b.powerOnRAM(randomiseState)
	b.portDirection = 0x2f
	b.portData = 0x37
	b.dfffByte = 0x55
	return b
}

// powerOnRAM fills RAM with the characteristic 00/FF/00/FF... pattern real
// C64 SRAM exhibits cold, or with randomised bytes when configured to mimic
// the unpredictability of real hardware more closely.
func (b *Bus) powerOnRAM(randomise bool) {
	for i := range b.RAM {
		if randomise && b.rnd != nil {
			b.RAM[i] = b.rnd.Uint8()
			continue
		}
		if i&0x40 == 0 {
			b.RAM[i] = 0x00
		} else {
			b.RAM[i] = 0xff
		}
	}
}

// bankConfig returns the current bank configuration, derived from the
// processor port's CHAREN/HIRAM/LORAM bits (and masked by the port's data
// direction register - a bit not configured as output reads back as 1).
func (b *Bus) bankConfig() bankmap.Config {
	effective := b.portData | ^b.portDirection
	return bankmap.Decode(effective & 0x07, b.CartLOMapped, b.CartHIMapped, b.CartUltimax)
}

// Read implements cpu6502.Bus.
func (b *Bus) Read(addr uint16) uint8 {
	if addr < 2 {
		return b.readPort(addr)
	}

	cfg := b.bankConfig()

	switch {
	case addr >= 0xd000 && addr <= 0xdfff && cfg.IO:
		return b.readIO(addr)
	case addr >= 0xa000 && addr <= 0xbfff && cfg.Basic:
		return b.Basic[addr-0xa000]
	case addr >= 0xe000 && addr <= 0xffff && cfg.Kernal:
		return b.Kernal[addr-0xe000]
	case addr >= 0xd000 && addr <= 0xdfff && cfg.CharGen:
		return b.CharGen[addr-0xd000]
	case addr >= 0x8000 && addr <= 0x9fff && cfg.CartLO:
		return b.CartLO[addr-0x8000]
	case addr >= 0xa000 && addr <= 0xbfff && cfg.CartHI:
		return b.CartHI[addr-0xa000]
	case addr >= 0xe000 && addr <= 0xffff && cfg.CartHI:
		return b.CartHI[addr-0xe000]
	default:
		return b.RAM[addr]
	}
}

// Write implements cpu6502.Bus. ROM areas that are banked in for reading are
// still backed by RAM for writing - the CPU always writes through to RAM
// regardless of what's currently visible for reads, exactly as on real
// hardware.
func (b *Bus) Write(addr uint16, v uint8) {
	if addr < 2 {
		b.writePort(addr, v)
		return
	}

	cfg := b.bankConfig()
	if addr >= 0xd000 && addr <= 0xdfff && cfg.IO {
		b.writeIO(addr, v)
		return
	}

	b.RAM[addr] = v
}

func (b *Bus) readPort(addr uint16) uint8 {
	if addr == 0 {
		return b.portDirection
	}
	// unconnected output pins float high; pins set as input read back the
	// last driven value (approximated here as the data latch itself, which
	// is the behaviour software relies on for the datasette sense bits).
	return b.portData | ^b.portDirection
}

func (b *Bus) writePort(addr uint16, v uint8) {
	if addr == 0 {
		b.portDirection = v
		return
	}
	b.portData = v
}
