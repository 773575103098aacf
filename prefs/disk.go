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

package prefs

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/vintage64/c64core/errors"
)

// DefaultPrefsFile is the filename used when none is specified explicitly.
const DefaultPrefsFile = "prefs"

// WarningBoilerPlate is written as the first line of every saved prefs file.
const WarningBoilerPlate = "# this file is machine generated. do not edit by hand"

// Disk associates named pref values with a backing file, loading and saving
// them in a simple "key :: value" line format.
type Disk struct {
	crit sync.Mutex

	path   string
	values map[string]pref
	order  []string
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:   path,
		values: make(map[string]pref),
	}, nil
}

func (d *Disk) String() string {
	d.crit.Lock()
	defer d.crit.Unlock()

	s := strings.Builder{}
	for _, k := range d.order {
		fmt.Fprintf(&s, "%s :: %s\n", k, d.values[k].String())
	}
	return s.String()
}

// Add registers a pref value under the given key. v must implement the
// internal pref interface - *Bool, *String, *Int, *Float and *Generic all
// qualify.
func (d *Disk) Add(key string, v interface{}) error {
	p, ok := v.(pref)
	if !ok {
		return fmt.Errorf("prefs: %T cannot be added to a Disk", v)
	}

	d.crit.Lock()
	defer d.crit.Unlock()

	if _, ok := d.values[key]; !ok {
		d.order = append(d.order, key)
	}
	d.values[key] = p

	return nil
}

// Reset every registered value to its zero value.
func (d *Disk) Reset() error {
	d.crit.Lock()
	keys := make([]string, len(d.order))
	copy(keys, d.order)
	d.crit.Unlock()

	for _, k := range keys {
		d.crit.Lock()
		p := d.values[k]
		d.crit.Unlock()
		if err := p.Reset(); err != nil {
			return err
		}
	}

	return nil
}

// Load reads values from disk, applying them to any registered key found in
// the file. If failOnMissing is false a missing prefs file is not an error.
func (d *Disk) Load(failOnMissing bool) error {
	f, err := os.Open(d.path)
	if err != nil {
		if os.IsNotExist(err) && failOnMissing {
			return errors.Errorf(errors.NoPrefsFile, d.path)
		}
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()

	d.crit.Lock()
	defer d.crit.Unlock()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "::", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		val := strings.TrimSpace(parts[1])

		if isDefunct(key) {
			continue
		}

		p, ok := d.values[key]
		if !ok {
			continue
		}

		if err := p.Set(val); err != nil {
			return err
		}
	}

	return scanner.Err()
}

// Save writes every registered value to disk, overwriting any previous file.
func (d *Disk) Save() error {
	d.crit.Lock()
	defer d.crit.Unlock()

	keys := make([]string, len(d.order))
	copy(keys, d.order)
	sort.Strings(keys)

	f, err := os.Create(d.path)
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Fprintf(f, "%s\n", WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(f, "%s :: %s\n", k, d.values[k].String())
	}

	return nil
}
