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

// State is the complete serializable state of a Bus: the live RAM and
// colour RAM contents plus the processor-port bank configuration latches.
// The ROM images and any attached cartridge are not part of it - those are
// loaded fresh by whatever reconstructs the Bus before Restore is called.
type State struct {
	RAM      [65536]uint8
	ColorRAM [1024]uint8

	PortDirection uint8
	PortData      uint8
	OpenBus       uint8
	DFFFByte      uint8
}

// Snapshot captures the bus's live RAM contents and bank configuration.
func (b *Bus) Snapshot() State {
	return State{
		RAM:           b.RAM,
		ColorRAM:      b.ColorRAM,
		PortDirection: b.portDirection,
		PortData:      b.portData,
		OpenBus:       b.openBus,
		DFFFByte:      b.dfffByte,
	}
}

// Restore replaces the bus's RAM contents and bank configuration with a
// previously captured Snapshot. ROM images and attached I/O chips are left
// as they are.
func (b *Bus) Restore(s State) {
	b.RAM = s.RAM
	b.ColorRAM = s.ColorRAM
	b.portDirection = s.PortDirection
	b.portData = s.PortData
	b.openBus = s.OpenBus
	b.dfffByte = s.DFFFByte
}
