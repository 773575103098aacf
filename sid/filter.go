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

// Filter models the SID's single shared analogue multi-mode filter: a
// state-variable topology that can be configured (ModeLowPass,
// ModeBandPass, ModeHighPass) as lowpass,
// highpass, bandpass or any combination, with per-voice routing control
// (FiltEnable) and the cutoff/resonance pair driving the filter's two
// integrator stages.
type Filter struct {
	Cutoff    uint16 // 11-bit
	Resonance uint8  // 4-bit
	FiltEnable [3]bool
	Mode3Off   bool // voice 3 left out of the mixer unless routed through the filter

	ModeLowPass  bool
	ModeBandPass bool
	ModeHighPass bool

	Volume uint8 // 4-bit master volume

	// integrator state for the state-variable filter.
	low, band float64
}

// cutoffFrequency approximates the real chip's non-linear cutoff-value
// to actual-frequency mapping with a straight linear map of the 11-bit
// cutoff onto 30 Hz - 10 kHz; the flattening near the extremes that the
// real chip shows is not modelled.
func (f *Filter) cutoffFrequency() float64 {
	v := float64(f.Cutoff)
	return 30.0 + (v/2047.0)*(10000.0-30.0)
}

// Apply runs one sample of the chip's three voice outputs through the
// filter/mixer stage: voices selected in FiltEnable pass through the
// state-variable filter (combined per Mode*), everything else (plus the
// filtered voices) is then summed and scaled by Volume. sampleRate is
// needed to normalise the cutoff frequency into the integrator's
// per-sample coefficient.
func (f *Filter) Apply(voiceOut [3]int32, sampleRate float64) int16 {
	var filterInput, directSum int32

	for i, out := range voiceOut {
		if i == 2 && f.Mode3Off && !f.FiltEnable[2] {
			continue
		}
		if f.FiltEnable[i] {
			filterInput += out
		} else {
			directSum += out
		}
	}

	fc := f.cutoffFrequency()
	q := 1.0 - float64(f.Resonance)/24.0
	if q < 0.1 {
		q = 0.1
	}
	w := 2.0 * 3.14159265358979 * fc / sampleRate

	in := float64(filterInput) / 2048.0
	f.band += w * (in - f.low - q*f.band)
	f.low += w * f.band
	high := in - f.low - q*f.band

	var filtered float64
	if f.ModeLowPass {
		filtered += f.low
	}
	if f.ModeBandPass {
		filtered += f.band
	}
	if f.ModeHighPass {
		filtered += high
	}

	total := float64(directSum)/2048.0 + filtered
	total *= float64(f.Volume) / 15.0

	scaled := total * 10000.0
	if scaled > 32767 {
		scaled = 32767
	}
	if scaled < -32768 {
		scaled = -32768
	}
	return int16(scaled)
}
