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

package sid

// digiWindow is a volume-register write count for the "volume DAC trick"
// (rapid writes to the low nibble of register 24 to play back PCM
// samples); Digi does not consult it, judging instead by the per-frame
// count against digiMinWritesPerFrame.
const digiWindow = 32

// digiMinWritesPerFrame is the threshold write count within a frame's
// worth of samples at or above which playback is treated as digitized audio.
const digiMinWritesPerFrame = 40

// Digi detects and extracts digitized sample playback driven through
// rapid writes to the SID's master volume register - a well-known trick
// many C64 musicians and demo coders used to play back real PCM samples
// on hardware with no dedicated DAC, by writing successive amplitude
// values faster than the ear can perceive as discrete volume changes.
type Digi struct {
	enabled bool

	writesThisFrame int
	active          bool

	lastNibble uint8
}

// NewDigi constructs a Digi extractor. enabled should normally be sourced
// from Preferences.SIDDigiPlayback.
func NewDigi(enabled bool) *Digi {
	return &Digi{enabled: enabled}
}

// SetEnabled toggles extraction at runtime, without losing detection
// state.
func (d *Digi) SetEnabled(enabled bool) {
	d.enabled = enabled
}

// NoteVolumeWrite is called on every write to the master volume register,
// and returns the sample value to mix in place of the chip's ordinary
// voice output, plus whether playback is currently judged to be active.
func (d *Digi) NoteVolumeWrite(value uint8) (sample int16, active bool) {
	d.writesThisFrame++
	nibble := value & 0x0f
	d.lastNibble = nibble

	// centre the 4-bit DAC value around zero and scale it up to roughly
	// match the dynamic range of the chip's own combined voice output,
	// so a caller can mix digi and regular voice output without one
	// swamping the other when both happen to be present.
	sample = int16(int32(nibble)-8) * 2048
	return sample, d.active
}

// EndFrame should be called once per video frame; it re-evaluates
// whether the current stream of volume writes looks like digitized
// playback and resets the per-frame counter.
func (d *Digi) EndFrame() {
	d.active = d.enabled && d.writesThisFrame >= digiMinWritesPerFrame
	d.writesThisFrame = 0
}

// Active reports whether digi playback is currently judged to be in
// progress.
func (d *Digi) Active() bool {
	return d.active
}
