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

// EnvelopeState is the serializable form of one voice's ADSR generator.
type EnvelopeState struct {
	Attack, Decay, Sustain, Release uint8

	GenState            envState
	Level               uint8
	Gated               bool
	Counter             int
	ExponentialCounter  int
}

// VoiceState is the serializable form of one oscillator/envelope pair.
type VoiceState struct {
	Frequency  uint16
	PulseWidth uint16
	Control    uint8

	Envelope EnvelopeState

	Accumulator uint32
	NoiseLFSR   uint32
	PrevAccMSB  bool
}

// FilterState is the serializable form of the shared filter's register
// and integrator state.
type FilterState struct {
	Cutoff       uint16
	Resonance    uint8
	FiltEnable   [3]bool
	Mode3Off     bool
	ModeLowPass  bool
	ModeBandPass bool
	ModeHighPass bool
	Volume       uint8

	Low, Band float64
}

// DigiState is the serializable form of the digi-playback detector.
type DigiState struct {
	Enabled         bool
	WritesThisFrame int
	Active          bool
	LastNibble      uint8
}

// State is the complete serializable state of a Chip instance.
type State struct {
	Voices [3]VoiceState
	Filter FilterState
	Digi   DigiState

	ClockAccumulator float64
	LastDigiSample   int16
}

// Snapshot captures the chip's complete internal state.
func (c *Chip) Snapshot() State {
	var s State
	for i := range c.Voices {
		v := &c.Voices[i]
		s.Voices[i] = VoiceState{
			Frequency:  v.Frequency,
			PulseWidth: v.PulseWidth,
			Control:    v.Control,
			Envelope: EnvelopeState{
				Attack:             v.Envelope.Attack,
				Decay:              v.Envelope.Decay,
				Sustain:            v.Envelope.Sustain,
				Release:            v.Envelope.Release,
				GenState:           v.Envelope.state,
				Level:              v.Envelope.level,
				Gated:              v.Envelope.gated,
				Counter:            v.Envelope.counter,
				ExponentialCounter: v.Envelope.exponentialCounter,
			},
			Accumulator: v.accumulator,
			NoiseLFSR:   v.noiseLFSR,
			PrevAccMSB:  v.prevAccMSB,
		}
	}

	s.Filter = FilterState{
		Cutoff:       c.Filter.Cutoff,
		Resonance:    c.Filter.Resonance,
		FiltEnable:   c.Filter.FiltEnable,
		Mode3Off:     c.Filter.Mode3Off,
		ModeLowPass:  c.Filter.ModeLowPass,
		ModeBandPass: c.Filter.ModeBandPass,
		ModeHighPass: c.Filter.ModeHighPass,
		Volume:       c.Filter.Volume,
		Low:          c.Filter.low,
		Band:         c.Filter.band,
	}

	if c.Digi != nil {
		s.Digi = DigiState{
			Enabled:         c.Digi.enabled,
			WritesThisFrame: c.Digi.writesThisFrame,
			Active:          c.Digi.active,
			LastNibble:      c.Digi.lastNibble,
		}
	}

	s.ClockAccumulator = c.clockAccumulator
	s.LastDigiSample = c.lastDigiSample

	return s
}

// Restore replaces the chip's internal state with a previously captured
// Snapshot. The sample rate, clock rate and attached mixer are left as
// they are - construction-time configuration, not serialized state.
func (c *Chip) Restore(s State) {
	for i := range s.Voices {
		vs := s.Voices[i]
		c.Voices[i] = Voice{
			Frequency:  vs.Frequency,
			PulseWidth: vs.PulseWidth,
			Control:    vs.Control,
			Envelope: Envelope{
				Attack:              vs.Envelope.Attack,
				Decay:               vs.Envelope.Decay,
				Sustain:             vs.Envelope.Sustain,
				Release:             vs.Envelope.Release,
				state:               vs.Envelope.GenState,
				level:               vs.Envelope.Level,
				gated:               vs.Envelope.Gated,
				counter:             vs.Envelope.Counter,
				exponentialCounter:  vs.Envelope.ExponentialCounter,
			},
			accumulator: vs.Accumulator,
			noiseLFSR:   vs.NoiseLFSR,
			prevAccMSB:  vs.PrevAccMSB,
		}
	}

	c.Filter.Cutoff = s.Filter.Cutoff
	c.Filter.Resonance = s.Filter.Resonance
	c.Filter.FiltEnable = s.Filter.FiltEnable
	c.Filter.Mode3Off = s.Filter.Mode3Off
	c.Filter.ModeLowPass = s.Filter.ModeLowPass
	c.Filter.ModeBandPass = s.Filter.ModeBandPass
	c.Filter.ModeHighPass = s.Filter.ModeHighPass
	c.Filter.Volume = s.Filter.Volume
	c.Filter.low = s.Filter.Low
	c.Filter.band = s.Filter.Band

	if c.Digi != nil {
		c.Digi.enabled = s.Digi.Enabled
		c.Digi.writesThisFrame = s.Digi.WritesThisFrame
		c.Digi.active = s.Digi.Active
		c.Digi.lastNibble = s.Digi.LastNibble
	}

	c.clockAccumulator = s.ClockAccumulator
	c.lastDigiSample = s.LastDigiSample
}
