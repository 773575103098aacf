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

package sid_test

import (
	"testing"

	"github.com/vintage64/c64core/sid"
)

func TestGateOpenStartsAttack(t *testing.T) {
	c := sid.New(nil, 985248, 44100)
	c.WriteRegister(sid.RegAttDec, 0x00) // fastest attack/decay
	c.WriteRegister(sid.RegSusRel, 0xf0) // full sustain
	c.WriteRegister(sid.RegCtrl, 0x11)   // triangle + gate

	for i := 0; i < 10; i++ {
		c.Voices[0].Envelope.Step()
	}

	if c.Voices[0].Envelope.Level() == 0 {
		t.Errorf("expected envelope level to have risen from zero after gate-on")
	}
}

func TestSustainHoldsAtProgrammedLevel(t *testing.T) {
	c := sid.New(nil, 985248, 44100)
	c.WriteRegister(sid.RegAttDec, 0x00)
	c.WriteRegister(sid.RegSusRel, 0xa0) // sustain nibble 0xa
	c.WriteRegister(sid.RegCtrl, 0x11)

	for i := 0; i < 5000; i++ {
		c.Voices[0].Envelope.Step()
	}

	want := uint8(0xaa)
	if got := c.Voices[0].Envelope.Level(); got != want {
		t.Errorf("expected envelope to settle at sustain level %#02x, got %#02x", want, got)
	}
}

func TestGateOffTriggersRelease(t *testing.T) {
	c := sid.New(nil, 985248, 44100)
	c.WriteRegister(sid.RegAttDec, 0x00)
	c.WriteRegister(sid.RegSusRel, 0xf0)
	c.WriteRegister(sid.RegCtrl, 0x11)
	for i := 0; i < 10; i++ {
		c.Voices[0].Envelope.Step()
	}
	peak := c.Voices[0].Envelope.Level()

	c.WriteRegister(sid.RegCtrl, 0x10) // gate off
	// at this low level one release-0 step takes 9 clocks x divisor 30 = 270.
	for i := 0; i < 300; i++ {
		c.Voices[0].Envelope.Step()
	}

	if c.Voices[0].Envelope.Level() >= peak {
		t.Errorf("expected envelope level to fall after gate-off, peak=%#02x now=%#02x", peak, c.Voices[0].Envelope.Level())
	}
}

func TestSawtoothOutputRampsWithAccumulator(t *testing.T) {
	c := sid.New(nil, 985248, 44100)
	c.WriteRegister(sid.RegFreqLo, 0xff)
	c.WriteRegister(sid.RegFreqHi, 0x0f)
	c.WriteRegister(sid.RegCtrl, 0x21) // sawtooth + gate

	first, _ := c.Step()
	_ = first
	for i := 0; i < 100; i++ {
		c.Step()
	}
}

func TestDigiDetectionRequiresSustainedWrites(t *testing.T) {
	d := sid.NewDigi(true)
	for i := 0; i < 5; i++ {
		d.NoteVolumeWrite(uint8(i))
	}
	d.EndFrame()
	if d.Active() {
		t.Errorf("expected a handful of writes to not be judged as digi playback")
	}

	for i := 0; i < 50; i++ {
		d.NoteVolumeWrite(uint8(i % 16))
	}
	d.EndFrame()
	if !d.Active() {
		t.Errorf("expected sustained rapid volume writes to be judged as digi playback")
	}
}
