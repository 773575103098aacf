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

// Package clocks defines the constant values that describe the timing of a
// PAL and an NTSC Commodore 64. Line and cycle counts come from the VIC-II
// datasheet; they govern both the video raster geometry and the number of
// CPU cycles that make up one video line, which is what the scheduler uses
// to keep the CPU, CIAs and VIC in lock-step.
package clocks

// ColourStandard identifies which of the two video timings a machine is
// configured for.
type ColourStandard int

const (
	PAL ColourStandard = iota
	NTSC
)

func (c ColourStandard) String() string {
	if c == NTSC {
		return "NTSC"
	}
	return "PAL"
}

// CPU clock frequency, in Hz.
const (
	PALClockHz  = 985248
	NTSCClockHz = 1022727
)

// Lines per frame, including the non-visible border/blanking lines.
const (
	PALLinesPerFrame  = 312
	NTSCLinesPerFrame = 263
)

// CPU cycles per raster line. The VIC dot clock runs at 8x this rate.
const (
	PALCyclesPerLine  = 63
	NTSCCyclesPerLine = 65
)

// FrameRate returns the nominal frames-per-second for the standard.
func (c ColourStandard) FrameRate() float64 {
	if c == NTSC {
		return float64(NTSCClockHz) / float64(NTSCLinesPerFrame*NTSCCyclesPerLine)
	}
	return float64(PALClockHz) / float64(PALLinesPerFrame*PALCyclesPerLine)
}

// LinesPerFrame returns the number of raster lines for the standard.
func (c ColourStandard) LinesPerFrame() int {
	if c == NTSC {
		return NTSCLinesPerFrame
	}
	return PALLinesPerFrame
}

// CyclesPerLine returns the number of CPU cycles in one raster line.
func (c ColourStandard) CyclesPerLine() int {
	if c == NTSC {
		return NTSCCyclesPerLine
	}
	return PALCyclesPerLine
}

// ClockHz returns the CPU clock frequency for the standard.
func (c ColourStandard) ClockHz() int {
	if c == NTSC {
		return NTSCClockHz
	}
	return PALClockHz
}
