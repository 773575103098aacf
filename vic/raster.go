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

// CyclesPerLine is the PAL VIC-II's fixed cycle count per raster line;
// NTSC chips run 65, but this emulation targets PAL timing throughout,
// matching the rest of the core's clocks package default.
const CyclesPerLine = 63

// LinesPerFrame is the PAL VIC-II's total raster line count, including
// the vertical blanking lines outside the visible picture area.
const LinesPerFrame = 312

// badLineFirst/badLineLast bound the raster line range within which a bad line can
// occur at all - lines 0x30 to 0xf7, matching the real chip's fixed
// 200-line display window regardless of the 24/25-row register setting.
const (
	badLineFirst = 0x30
	badLineLast  = 0xf7
)

// raster tracks the VIC-II's position within the current frame: raster
// line, horizontal cycle counter, video matrix line counter (VC/VCBASE
// in the reverse-engineered documents' naming), and the bad-line/
// display-enable latches that gate when character/bitmap data is
// actually fetched versus reusing the previous line's row.
type raster struct {
	line  uint16
	cycle int

	vc     uint16 // video counter: current character position within the row
	vcbase uint16 // reload value for vc at the start of each row
	rc     uint8  // row counter: current scanline within a character cell (0-7)

	badLine       bool
	displayActive bool // BA-asserting "bad line" DMA window is open this line
	verticalBorder bool

	frameCount uint64
}

func (r *raster) reset() {
	*r = raster{}
}

// advanceCycle moves the raster position forward by one Phi2 cycle,
// wrapping the line counter and incrementing frameCount at the end of
// the frame. Returns true on the last cycle of the frame.
func (r *raster) advanceCycle() (endOfFrame bool) {
	r.cycle++
	if r.cycle < CyclesPerLine {
		return false
	}
	r.cycle = 0
	r.line++
	if r.line < LinesPerFrame {
		return false
	}
	r.line = 0
	r.frameCount++
	return true
}

// evaluateBadLine implements the well-known "bad line" condition: DEN
// was set at some point during line $30, the raster is within the fixed
// $30-$F7 window, and the low 3 bits of the raster line match YSCROLL -
// the moment a full row of 40 characters and colour bytes needs to be
// fetched from the video matrix, stealing up to 40 cycles of Phi2 from
// the CPU via the BA line.
func (r *raster) evaluateBadLine(reg *registers, denWasSetOnLine0x30 bool) {
	inWindow := r.line >= badLineFirst && r.line <= badLineLast
	r.badLine = inWindow && denWasSetOnLine0x30 && uint8(r.line)&0x07 == reg.yScroll()
}

// startOfFrame reports whether this cycle is the very first cycle of a
// new frame (line 0, cycle 0), the moment the caller should reset VCBASE
// and any per-frame sprite state.
func (r *raster) startOfFrame() bool {
	return r.line == 0 && r.cycle == 0
}

// enterRow is called once per displayed text/bitmap row (every 8 raster
// lines) to advance VCBASE and reset RC, mirroring the real chip's
// video-matrix line-counter update at the end of a bad line's row.
func (r *raster) enterRow() {
	r.vcbase = r.vc
	r.rc = 0
}

// startRowFetch resets VC from VCBASE at the start of each of the row's
// 8 scan lines - the video counter always begins each scan line back at
// the row's first character position; RC (0-7) is what changes across
// those 8 lines.
func (r *raster) startRowFetch() {
	r.vc = r.vcbase
}
