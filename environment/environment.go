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

// Package environment threads the cross-cutting, per-emulation-instance
// values - randomisation and persistent preferences - through the chip
// constructors, so that two machine instances (for example a primary
// emulation and a rewind/inspection copy) can be run side by side without
// sharing mutable global state.
package environment

import (
	"github.com/vintage64/c64core/preferences"
	"github.com/vintage64/c64core/random"
)

// Label names an environment, useful for logging when more than one
// emulation instance exists side by side.
type Label string

// Environment provides context for an emulation instance.
type Environment struct {
	Label Label

	// any randomisation required by the emulation should be retrieved
	// through this structure
	Random *random.Random

	// the emulation preferences
	Prefs *preferences.Preferences
}

// NewEnvironment is the preferred method of initialisation for Environment.
// prefs may be nil, in which case a new Preferences instance is created;
// supplying a non-nil value allows the preferences of more than one
// emulation to be synchronised.
func NewEnvironment(label Label, pos random.Position, prefs *preferences.Preferences) (*Environment, error) {
	env := &Environment{
		Label:  label,
		Random: random.NewRandom(pos),
	}

	if prefs == nil {
		var err error
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}
	env.Prefs = prefs

	return env, nil
}
