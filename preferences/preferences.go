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

// Package preferences collates the persistent configuration values used by
// the emulation core: video standard, randomisation of power-on state, and
// the digitised sample-playback feature of the SID emulation.
package preferences

import (
	"math/rand"
	"time"

	"github.com/vintage64/c64core/errors"
	"github.com/vintage64/c64core/paths"
	"github.com/vintage64/c64core/prefs"
)

// Preferences collates all the preference values used by the emulation core.
type Preferences struct {
	dsk *prefs.Disk

	// initialise RAM to randomised state on power-on, rather than the fixed
	// pattern of alternating 64-byte runs of $00 and $FF. matches the
	// behaviour of real hardware, whose SRAM contents are not reliably
	// predictable at power-on.
	RandomState prefs.Bool

	// stored and loaded with the other preferences but not consulted by the
	// core: open-bus reads of unmapped I/O addresses always return the last
	// value held on the data bus.
	RandomPins prefs.Bool

	// PAL is true for a PAL C64 (50Hz, 312 lines/frame, 0.985MHz), false for
	// NTSC (60Hz, 263 lines/frame, 1.023MHz).
	PAL prefs.Bool

	// SIDDigiPlayback enables the master-volume write-triggered digitised
	// sample channel used by some music routines.
	SIDDigiPlayback prefs.Bool

	// random values generated by the hardware package should use this source
	RandSrc *rand.Rand

	// the number used to seed RandSrc
	RandSeed int64
}

// NewPreferences is the preferred method of initialisation for Preferences.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}

	p.Reseed(0)

	pth := paths.ResourcePath(prefs.DefaultPrefsFile)
	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	if err := p.dsk.Add("machine.randstate", &p.RandomState); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("machine.randpins", &p.RandomPins); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("machine.pal", &p.PAL); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("sid.digiplayback", &p.SIDDigiPlayback); err != nil {
		return nil, err
	}

	if err := p.PAL.Set(true); err != nil {
		return nil, err
	}
	if err := p.SIDDigiPlayback.Set(true); err != nil {
		return nil, err
	}

	if err := p.dsk.Load(true); err != nil {
		if !errors.Is(err, errors.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// Reseed initialises the random number generator. A seed of 0 seeds from the
// current time.
func (p *Preferences) Reseed(seed int64) {
	if seed == 0 {
		p.RandSeed = int64(time.Now().Nanosecond())
	} else {
		p.RandSeed = seed
	}
	p.RandSrc = rand.New(rand.NewSource(p.RandSeed))
}

// Reset every preference to its default value.
func (p *Preferences) Reset() error {
	return p.dsk.Reset()
}

// Load current preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
