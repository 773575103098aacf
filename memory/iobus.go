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

package memory

// sub-page boundaries within $D000-$DFFF.
const (
	pageVIC  = 0xd000
	pageSID  = 0xd400
	pageColR = 0xd800
	pageCIA1 = 0xdc00
	pageCIA2 = 0xdd00
	pageIO1  = 0xde00
	pageIO2  = 0xdf00
)

// readIO dispatches a read within the I/O page, applying each chip's
// register mirroring: the VIC's 47 registers repeat every $40 bytes, the
// SID's 29 every $20, and both CIAs' 16 every $10.
func (b *Bus) readIO(addr uint16) uint8 {
	switch {
	case addr < pageSID:
		if b.VIC == nil {
			return b.openBus
		}
		v := b.VIC.ReadRegister(uint8(addr & 0x3f))
		b.openBus = v
		return v

	case addr < pageColR:
		if b.SID == nil {
			return b.openBus
		}
		v := b.SID.ReadRegister(uint8(addr & 0x1f))
		b.openBus = v
		return v

	case addr < pageCIA1:
		v := b.ColorRAM[addr-pageColR] & 0x0f
		// the top nibble of colour RAM is unconnected and floats with
		// whatever was last on the bus.
		v |= b.openBus & 0xf0
		b.openBus = v
		return v

	case addr < pageCIA2:
		if b.CIA1 == nil {
			return b.openBus
		}
		v := b.CIA1.ReadRegister(uint8(addr & 0x0f))
		b.openBus = v
		return v

	case addr < pageIO1:
		if b.CIA2 == nil {
			return b.openBus
		}
		v := b.CIA2.ReadRegister(uint8(addr & 0x0f))
		b.openBus = v
		return v

	case addr < pageIO2:
		// cartridge I/O window; nothing mapped without a cartridge present.
		return b.openBus

	case addr == 0xdfff:
		v := b.dfffByte
		if v == 0x55 {
			b.dfffByte = 0xaa
		} else {
			b.dfffByte = 0x55
		}
		return v

	default:
		// $DF00-$DFFE: cartridge I/O2, or open bus.
		return b.openBus
	}
}

func (b *Bus) writeIO(addr uint16, v uint8) {
	b.openBus = v

	switch {
	case addr < pageSID:
		if b.VIC != nil {
			b.VIC.WriteRegister(uint8(addr&0x3f), v)
		}
	case addr < pageColR:
		if b.SID != nil {
			b.SID.WriteRegister(uint8(addr&0x1f), v)
		}
	case addr < pageCIA1:
		b.ColorRAM[addr-pageColR] = v & 0x0f
	case addr < pageCIA2:
		if b.CIA1 != nil {
			b.CIA1.WriteRegister(uint8(addr&0x0f), v)
		}
	case addr < pageIO1:
		if b.CIA2 != nil {
			b.CIA2.WriteRegister(uint8(addr&0x0f), v)
		}
	default:
		// IO1/IO2 cartridge windows: no-op without a cartridge present.
	}
}
