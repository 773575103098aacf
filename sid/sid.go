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

// Package sid emulates the MOS 6581/8580 Sound Interface Device: three
// oscillator/envelope voices with hard sync and ring modulation, a
// shared state-variable filter, and extraction of "volume DAC trick"
// digitized sample playback.
package sid

import "github.com/vintage64/c64core/environment"

// register offsets within the SID's 29-register page (a single voice's
// worth shown; voices 2 and 3 repeat at +7 and +14).
const (
	RegFreqLo = 0x00
	RegFreqHi = 0x01
	RegPWLo   = 0x02
	RegPWHi   = 0x03
	RegCtrl   = 0x04
	RegAttDec = 0x05
	RegSusRel = 0x06

	RegFiltFreqLo = 0x15
	RegFiltFreqHi = 0x16
	RegFiltResCtl = 0x17
	RegModeVol    = 0x18

	RegPotX  = 0x19
	RegPotY  = 0x1a
	RegOsc3  = 0x1b
	RegEnv3  = 0x1c
)

// Mixer receives the SID's resampled output stream one sample at a time,
// letting a host attach a live audio sink or, as wavwriter does, a
// capture-to-disk sink, without the chip itself knowing which.
type Mixer interface {
	Write(sample int16) error
	EndMixing() error
}

// Chip is one SID instance, wired into the C64 I/O page at $D400.
type Chip struct {
	Voices [3]Voice
	Filter Filter
	Digi   *Digi

	sampleRate float64

	clockAccumulator float64
	clocksPerSample  float64

	lastDigiSample int16

	env   *environment.Environment
	mixer Mixer
}

// SetMixer attaches (or, with nil, detaches) the sample sink Step feeds
// on every completed sample.
func (c *Chip) SetMixer(m Mixer) {
	c.mixer = m
}

// New constructs a Chip clocked by clockHz (the PAL or NTSC system clock)
// and producing samples at sampleRate (typically 44100 or 48000).
func New(env *environment.Environment, clockHz, sampleRate float64) *Chip {
	digiEnabled := true
	if env != nil && env.Prefs != nil {
		digiEnabled = env.Prefs.SIDDigiPlayback.Get().(bool)
	}

	c := &Chip{
		Voices:          [3]Voice{newVoice(), newVoice(), newVoice()},
		Digi:            NewDigi(digiEnabled),
		sampleRate:      sampleRate,
		clocksPerSample: clockHz / sampleRate,
		env:             env,
	}
	c.Filter.ModeLowPass = true
	c.Filter.Volume = 0x0f
	return c
}

// ReadRegister implements memory.IOChip.
func (c *Chip) ReadRegister(reg uint8) uint8 {
	switch reg {
	case RegPotX, RegPotY:
		// paddles read as fully released (0xff) with nothing connected.
		return 0xff
	case RegOsc3:
		return uint8(c.Voices[2].waveformOutput(&c.Voices[0]) >> 4)
	case RegEnv3:
		return c.Voices[2].Envelope.Level()
	default:
		return 0
	}
}

// WriteRegister implements memory.IOChip.
func (c *Chip) WriteRegister(reg uint8, v uint8) {
	if reg < 0x15 {
		voice := &c.Voices[reg/7]
		switch reg % 7 {
		case RegFreqLo:
			voice.Frequency = voice.Frequency&0xff00 | uint16(v)
		case RegFreqHi:
			voice.Frequency = uint16(v)<<8 | voice.Frequency&0x00ff
		case RegPWLo:
			voice.PulseWidth = voice.PulseWidth&0x0f00 | uint16(v)
		case RegPWHi:
			voice.PulseWidth = uint16(v&0x0f)<<8 | voice.PulseWidth&0x00ff
		case RegCtrl:
			voice.WriteControl(v)
		case RegAttDec:
			voice.Envelope.Attack = v >> 4
			voice.Envelope.Decay = v & 0x0f
		case RegSusRel:
			voice.Envelope.Sustain = v >> 4
			voice.Envelope.Release = v & 0x0f
		}
		return
	}

	switch reg {
	case RegFiltFreqLo:
		c.Filter.Cutoff = c.Filter.Cutoff&0x07f8 | uint16(v&0x07)
	case RegFiltFreqHi:
		c.Filter.Cutoff = uint16(v)<<3 | c.Filter.Cutoff&0x0007
	case RegFiltResCtl:
		c.Filter.Resonance = v >> 4
		c.Filter.FiltEnable[0] = v&0x01 != 0
		c.Filter.FiltEnable[1] = v&0x02 != 0
		c.Filter.FiltEnable[2] = v&0x04 != 0
	case RegModeVol:
		c.Filter.Volume = v & 0x0f
		c.Filter.ModeLowPass = v&0x10 != 0
		c.Filter.ModeBandPass = v&0x20 != 0
		c.Filter.ModeHighPass = v&0x40 != 0
		c.Filter.Mode3Off = v&0x80 != 0

		if c.Digi != nil {
			sample, _ := c.Digi.NoteVolumeWrite(v)
			c.lastDigiSample = sample
		}
	}
}

// Step clocks the three oscillator/envelope pairs forward by one system
// clock cycle; a resampled audio sample is produced (via Mix) only once
// enough cycles have accumulated to cross a sample-rate boundary.
func (c *Chip) Step() (sample int16, ready bool) {
	c.Voices[0].step(&c.Voices[2])
	c.Voices[1].step(&c.Voices[0])
	c.Voices[2].step(&c.Voices[1])

	c.Voices[0].Envelope.Step()
	c.Voices[1].Envelope.Step()
	c.Voices[2].Envelope.Step()

	c.clockAccumulator++
	if c.clockAccumulator < c.clocksPerSample {
		return 0, false
	}
	c.clockAccumulator -= c.clocksPerSample

	sample = c.Mix()
	if c.mixer != nil {
		c.mixer.Write(sample)
	}
	return sample, true
}

// Mix renders one output sample from the three voices' current state,
// substituting digi playback for the filtered voice mix whenever the
// volume register is judged to be driving PCM rather than acting as a
// master volume control.
func (c *Chip) Mix() int16 {
	if c.Digi != nil && c.Digi.Active() {
		return c.lastDigiSample
	}

	var out [3]int32
	out[0] = c.Voices[0].Output(&c.Voices[2])
	out[1] = c.Voices[1].Output(&c.Voices[0])
	out[2] = c.Voices[2].Output(&c.Voices[1])

	return c.Filter.Apply(out, c.sampleRate)
}

// EndFrame should be called once per video frame to let Digi re-evaluate
// its detection window.
func (c *Chip) EndFrame() {
	if c.Digi != nil {
		c.Digi.EndFrame()
	}
}

// Reset restores power-on state: all voices silent, filter bypassed.
func (c *Chip) Reset() {
	for i := range c.Voices {
		c.Voices[i] = newVoice()
	}
	c.Filter = Filter{ModeLowPass: true, Volume: 0x0f}
	c.clockAccumulator = 0
}
