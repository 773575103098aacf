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

// Package snapshot reads and writes the binary save-state format: a short
// text header identifying the file, a version and flags byte, and the
// gob-encoded state of every chip in the machine, in the fixed order the
// format has always used.
package snapshot

import (
	"bytes"
	"encoding/gob"
	"io"

	"github.com/vintage64/c64core/cia"
	"github.com/vintage64/c64core/cpu6502"
	"github.com/vintage64/c64core/drive"
	"github.com/vintage64/c64core/drivecpu"
	"github.com/vintage64/c64core/errors"
	"github.com/vintage64/c64core/machine"
	"github.com/vintage64/c64core/memory"
	"github.com/vintage64/c64core/sid"
	"github.com/vintage64/c64core/vic"
)

const (
	headerText = "FrodoSnapshot"
	version    = 0x00

	flagDriveIncluded = 1 << 0

	drivePathFieldSize = 256
)

// body is the gob-encoded payload that follows the header, version and
// flags bytes. Field order is fixed by the format; adding a field is a
// version bump, not a silent append.
type body struct {
	VIC  vic.State
	SID  sid.State
	CIA1 cia.State
	CIA2 cia.State

	Bus memory.State
	CPU cpu6502.State

	Delay uint8

	DriveIncluded bool
	DrivePath     [drivePathFieldSize]byte
	Drive         drivecpu.State
	DriveDelay    uint8
	DiskImage     drive.ImageState
}

// Save writes a complete snapshot of m to w. drivePath is recorded in the
// drive-inclusive branch so Load can tell the host which image to remount;
// it is ignored (and not written) when the machine has no drive CPU
// attached. In cycle-accurate scheduling the CPU and the other chips are
// always synchronised at an instruction boundary by the time a host can
// call Save (the core never exposes a mid-instruction point), so the delay
// fields this format historically needed to replay are always written as
// zero.
func Save(w io.Writer, m *machine.Machine, drivePath string) error {
	if _, err := w.Write([]byte(headerText)); err != nil {
		return err
	}
	if _, err := w.Write([]byte{0x0a, version, flagsFor(m)}); err != nil {
		return err
	}

	b := body{
		VIC:  m.VIC.Snapshot(),
		SID:  m.SID.Snapshot(),
		CIA1: m.CIA1.Snapshot(),
		CIA2: m.CIA2.Snapshot(),

		Bus: m.Bus.Snapshot(),
		CPU: m.CPU.Core.Snapshot(),
	}

	if m.Drive != nil {
		b.DriveIncluded = true
		copy(b.DrivePath[:], drivePath)
		b.Drive = m.Drive.Snapshot()
		b.DiskImage = m.DiskImage.Snapshot()
	}

	return gob.NewEncoder(w).Encode(&b)
}

func flagsFor(m *machine.Machine) uint8 {
	if m.Drive != nil {
		return flagDriveIncluded
	}
	return 0
}

// Load reads a snapshot written by Save and restores it into m. lineBased
// should reflect whichever scheduling loop the host is about to resume
// with; in line-based mode the VIC state is restored twice, replaying a
// quirk of the format's Frodo origin where the line-based frame setup has
// a side effect on latched sprite DMA state that a single restore would
// miss. Restore here has no such side effect, so the second pass is a
// harmless no-op kept for format fidelity rather than correctness.
//
// The returned string is the drive-0 path recorded at save time, empty
// unless the snapshot's drive-emulation flag was set; the host, not this
// package, is responsible for actually mounting it via AttachDisk.
func Load(r io.Reader, m *machine.Machine, lineBased bool) (string, error) {
	header := make([]byte, len(headerText)+1)
	if _, err := io.ReadFull(r, header); err != nil {
		return "", errors.Errorf(errors.BadSnapshotHeader, "truncated header")
	}
	if string(header[:len(headerText)]) != headerText || header[len(headerText)] != 0x0a {
		return "", errors.Errorf(errors.BadSnapshotHeader, "missing FrodoSnapshot marker")
	}

	var versionAndFlags [2]byte
	if _, err := io.ReadFull(r, versionAndFlags[:]); err != nil {
		return "", errors.Errorf(errors.BadSnapshotHeader, "truncated version/flags")
	}
	if versionAndFlags[0] != version {
		return "", errors.Errorf(errors.BadSnapshotVersion, int(versionAndFlags[0]))
	}

	var b body
	if err := gob.NewDecoder(r).Decode(&b); err != nil {
		return "", errors.Errorf(errors.BadSnapshotHeader, err.Error())
	}

	m.VIC.Restore(b.VIC)
	if lineBased {
		m.VIC.Restore(b.VIC)
	}
	m.SID.Restore(b.SID)
	m.CIA1.Restore(b.CIA1)
	m.CIA2.Restore(b.CIA2)

	m.Bus.Restore(b.Bus)
	m.CPU.Core.Restore(b.CPU)

	var drivePath string
	if b.DriveIncluded {
		drivePath = trimPath(b.DrivePath[:])
		if m.Drive != nil {
			m.Drive.Restore(b.Drive)
			m.DiskImage.Restore(b.DiskImage)
		}
	}

	for i := 0; i < int(b.Delay); i++ {
		m.VIC.Step()
		m.CIA1.Step(false)
		m.CIA2.Step(false)
		m.SID.Step()
	}
	for i := 0; i < int(b.DriveDelay) && m.Drive != nil; i++ {
		m.DriveVIA1.Step()
		m.DriveVIA2.Step()
	}

	return drivePath, nil
}

func trimPath(field []byte) string {
	n := bytes.IndexByte(field, 0)
	if n < 0 {
		n = len(field)
	}
	return string(field[:n])
}

// Bytes is a convenience wrapper for callers that want a snapshot as an
// in-memory blob rather than streaming it through an io.Writer, e.g. for
// the host's own rewind-buffer feature.
func Bytes(m *machine.Machine, drivePath string) ([]byte, error) {
	var buf bytes.Buffer
	if err := Save(&buf, m, drivePath); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
