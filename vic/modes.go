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

// DisplayMode names one of the VIC-II's five legal ECM/BMM/MCM
// combinations, plus the three illegal ones that are documented to
// render solid black regardless of their character/colour data.
type DisplayMode int

const (
	ModeStandardText DisplayMode = iota
	ModeMulticolorText
	ModeStandardBitmap
	ModeMulticolorBitmap
	ModeECMText
	ModeInvalidTextECMMC
	ModeInvalidBitmapECM
	ModeInvalidBitmapECMMC
)

func decodeMode(ecm, bmm, mcm bool) DisplayMode {
	switch {
	case !ecm && !bmm && !mcm:
		return ModeStandardText
	case !ecm && !bmm && mcm:
		return ModeMulticolorText
	case !ecm && bmm && !mcm:
		return ModeStandardBitmap
	case !ecm && bmm && mcm:
		return ModeMulticolorBitmap
	case ecm && !bmm && !mcm:
		return ModeECMText
	case ecm && !bmm && mcm:
		return ModeInvalidTextECMMC
	case ecm && bmm && !mcm:
		return ModeInvalidBitmapECM
	default:
		return ModeInvalidBitmapECMMC
	}
}

// renderChar returns the 8 colour-index pixels (0-15) for one character
// cell's row, given the fetched character byte, its colour RAM nibble,
// the character generator byte for this row, and the background colour
// registers needed by multicolor/ECM modes.
func renderChar(mode DisplayMode, charByte, colorNibble, genByte uint8, bg [4]uint8) [8]uint8 {
	var out [8]uint8

	switch mode {
	case ModeStandardText:
		for i := 0; i < 8; i++ {
			if genByte&(0x80>>i) != 0 {
				out[i] = colorNibble
			} else {
				out[i] = bg[0]
			}
		}

	case ModeMulticolorText:
		if colorNibble&0x08 == 0 {
			// bit 3 clear: cell renders as ordinary hi-res text using
			// only the low 3 colour bits.
			for i := 0; i < 8; i++ {
				if genByte&(0x80>>i) != 0 {
					out[i] = colorNibble & 0x07
				} else {
					out[i] = bg[0]
				}
			}
			break
		}
		palette := [4]uint8{bg[0], bg[1], bg[2], colorNibble & 0x07}
		for pair := 0; pair < 4; pair++ {
			bits := (genByte >> uint(6-pair*2)) & 0x03
			out[pair*2] = palette[bits]
			out[pair*2+1] = palette[bits]
		}

	case ModeECMText:
		bgIndex := (charByte >> 6) & 0x03
		for i := 0; i < 8; i++ {
			if genByte&(0x80>>i) != 0 {
				out[i] = colorNibble
			} else {
				out[i] = bg[bgIndex]
			}
		}

	case ModeStandardBitmap:
		hi := charByte >> 4
		lo := charByte & 0x0f
		for i := 0; i < 8; i++ {
			if genByte&(0x80>>i) != 0 {
				out[i] = hi
			} else {
				out[i] = lo
			}
		}

	case ModeMulticolorBitmap:
		palette := [4]uint8{bg[0], charByte >> 4, charByte & 0x0f, colorNibble}
		for pair := 0; pair < 4; pair++ {
			bits := (genByte >> uint(6-pair*2)) & 0x03
			out[pair*2] = palette[bits]
			out[pair*2+1] = palette[bits]
		}

	default:
		// the three illegal combinations render solid black on real
		// silicon regardless of the underlying data.
		for i := range out {
			out[i] = 0
		}
	}

	return out
}
