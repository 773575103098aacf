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

package snapshot

import (
	"bytes"
	"testing"

	"github.com/vintage64/c64core/clocks"
	"github.com/vintage64/c64core/machine"
)

func newTestMachine(t *testing.T) *machine.Machine {
	t.Helper()
	m, err := machine.New(clocks.PAL, 44100, nil)
	if err != nil {
		t.Fatalf("machine.New: %v", err)
	}
	return m
}

func TestRoundTripPreservesCPUAndRAMState(t *testing.T) {
	m := newTestMachine(t)

	// stamp in some state a soft reset would otherwise wipe, so the
	// assertions below actually exercise the restore path rather than
	// coincidentally matching a freshly-reset machine.
	m.CPU.Core.Reg.A = 0x42
	m.CPU.Core.Reg.PC = 0x1234
	m.Bus.RAM[0x1000] = 0x99

	var buf bytes.Buffer
	if err := Save(&buf, m, ""); err != nil {
		t.Fatalf("Save: %v", err)
	}
	saved := buf.Bytes()

	m.Reset()
	m.Bus.RAM[0x1000] = 0x00 // Reset doesn't touch RAM; corrupt it by hand
	if m.CPU.Core.Reg.A == 0x42 || m.CPU.Core.Reg.PC == 0x1234 || m.Bus.RAM[0x1000] == 0x99 {
		t.Fatalf("setup left the stamped state in place; test would pass vacuously")
	}

	if _, err := Load(bytes.NewReader(saved), m, false); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if m.CPU.Core.Reg.A != 0x42 {
		t.Fatalf("A after load = %#02x, want $42", m.CPU.Core.Reg.A)
	}
	if m.CPU.Core.Reg.PC != 0x1234 {
		t.Fatalf("PC after load = %#04x, want $1234", m.CPU.Core.Reg.PC)
	}
	if m.Bus.RAM[0x1000] != 0x99 {
		t.Fatalf("RAM[0x1000] after load = %#02x, want $99", m.Bus.RAM[0x1000])
	}
}

func TestLoadRejectsBadHeader(t *testing.T) {
	m := newTestMachine(t)
	if _, err := Load(bytes.NewReader([]byte("not a snapshot at all")), m, false); err == nil {
		t.Fatalf("Load accepted a file with no FrodoSnapshot header")
	}
}

func TestLoadRejectsFutureVersion(t *testing.T) {
	m := newTestMachine(t)

	var buf bytes.Buffer
	if err := Save(&buf, m, ""); err != nil {
		t.Fatalf("Save: %v", err)
	}
	raw := buf.Bytes()
	raw[len(headerText)+1] = version + 1

	if _, err := Load(bytes.NewReader(raw), m, false); err == nil {
		t.Fatalf("Load accepted an unsupported version byte")
	}
}

func TestDriveFlagClearWhenNoDriveAttached(t *testing.T) {
	m := newTestMachine(t)

	var buf bytes.Buffer
	if err := Save(&buf, m, ""); err != nil {
		t.Fatalf("Save: %v", err)
	}
	raw := buf.Bytes()
	flags := raw[len(headerText)+2]
	if flags&flagDriveIncluded != 0 {
		t.Fatalf("drive-included flag set with no drive CPU attached")
	}
}
