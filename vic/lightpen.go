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

package vic

// lightpen's triggered field is true for the remainder of the current frame once
// the pen has latched, since the real chip's latch only releases on the
// next frame's first line, not on read.
type lightpen struct {
	triggered bool
}

// Trigger latches the current raster beam position into the VIC's
// $D013/$D014 registers, the moment a host-side light pen (or, in
// practice, a mouse button standing in for one) signals a falling edge
// on the LP input. Only the first trigger per frame sticks, matching
// the real chip's single-shot-per-frame behaviour.
func (v *VIC) Trigger() {
	if v.lp.triggered {
		return
	}
	v.lp.triggered = true
	v.reg.lightpenX = uint8(v.raster.cycle * 8 / 2)
	v.reg.lightpenY = uint8(v.raster.line)
	if v.reg.irqEnable&irqLightPen != 0 {
		v.reg.irqStatus |= irqLightPen
	}
}

// resetFrame releases the light pen latch at the start of a new frame.
func (lp *lightpen) resetFrame() {
	lp.triggered = false
}
