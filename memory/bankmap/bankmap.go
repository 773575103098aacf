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

// Package bankmap decodes the three low bits of the C64 processor port
// (LORAM, HIRAM, CHAREN) into the eight memory bank configurations they
// select, plus the handful of extra configurations introduced by cartridge
// ROML/ROMH/GAME/EXROM lines.
package bankmap

// Config describes which regions of the 64K address space are currently
// backed by ROM/chip I/O rather than RAM, for a given combination of
// processor port bits and cartridge lines.
type Config struct {
	Basic   bool // $A000-$BFFF is BASIC ROM
	Kernal  bool // $E000-$FFFF is KERNAL ROM
	CharGen bool // $D000-$DFFF is character ROM (false means I/O is visible there, unless IO below says otherwise)
	IO      bool // $D000-$DFFF is chip I/O (VIC/SID/colour RAM/CIAs)
	CartLO  bool // $8000-$9FFF is cartridge ROML
	CartHI  bool // $A000-$BFFF or $E000-$FFFF is cartridge ROMH, depending on config
}

// Decode returns the bank configuration for the given processor port bits
// (bit 0 = LORAM, bit 1 = HIRAM, bit 2 = CHAREN) and cartridge state.
//
// In Ultimax mode (EXROM low, GAME high) the CPU port bits are ignored for
// BASIC/KERNAL/CHARGEN purposes and $D000-$DFFF is always I/O. Config has
// no way to mark a range unmapped, so outside the cartridge and I/O
// windows RAM stays visible, including at $1000-$7FFF.
func Decode(bits uint8, cartLO, cartHI, ultimax bool) Config {
	if ultimax {
		return Config{
			IO:     true,
			CartLO: cartLO,
			CartHI: cartHI,
		}
	}

	loram := bits&0x01 != 0
	hiram := bits&0x02 != 0
	charen := bits&0x04 != 0

	cfg := Config{}

	switch {
	case hiram && loram && cartHI:
		cfg.CartHI = true
	case hiram:
		cfg.Kernal = true
	}

	switch {
	case hiram && loram && cartLO && cartHI:
		cfg.Basic = true
	case hiram && loram && !cartHI:
		cfg.Basic = true
	}

	if cartLO {
		cfg.CartLO = true
	}

	if charen && (hiram || loram) {
		cfg.IO = true
	} else if loram || hiram {
		cfg.CharGen = true
	}
	// when neither loram nor hiram is set, and charen is also not
	// meaningful without them, $D000-$DFFF shows RAM - cfg.IO and
	// cfg.CharGen both remain false and Bus.Read falls through to RAM.

	return cfg
}
