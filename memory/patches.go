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

package memory

import (
	"os"

	"github.com/vintage64/c64core/errors"
	"github.com/vintage64/c64core/logger"
)

// LoadBasic loads an 8K BASIC ROM image from path into Bus.Basic.
func (b *Bus) LoadBasic(path string) error {
	return loadROMImage(path, b.Basic[:])
}

// LoadKernal loads an 8K KERNAL ROM image from path into Bus.Kernal.
func (b *Bus) LoadKernal(path string) error {
	return loadROMImage(path, b.Kernal[:])
}

// LoadCharGen loads a 4K character ROM image from path into Bus.CharGen.
func (b *Bus) LoadCharGen(path string) error {
	return loadROMImage(path, b.CharGen[:])
}

func loadROMImage(path string, dst []uint8) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if len(data) != len(dst) {
		return errors.Errorf(errors.BadROMSize, path, len(data))
	}
	copy(dst, data)
	return nil
}

// FastSerialPatchAddress names a KERNAL entry point that is to be
// intercepted by the fabricated 0xF2 opcode rather than run as genuine
// KERNAL code, together with what the native handler replaces.
//
// HasSubop marks the eight low-level IEC-bus primitives (IECOut,
// IECOutATN, IECOutSec, IECIn, IECSetATN, IECRelATN, IECTurnaround,
// IECRelease): on real fast-IEC kernals these are patched as 0xF2
// followed by a literal sub-opcode byte 0x00-0x07, so PatchFastSerial
// writes that second byte too. The whole-operation shortcuts (OPEN,
// LOAD, and so on) predate that convention and are still a bare 0xF2.
type FastSerialPatchAddress struct {
	Address  uint16
	Purpose  string
	HasSubop bool
	Subop    uint8
}

// sub-opcode numbers matching the fast-IEC dispatch table (iec package's
// own copy of the same constants; duplicated rather than imported so
// this package doesn't need to know about the IEC bus at all beyond the
// fact that some of its patch sites carry an extra byte).
const (
	subOutByte      = 0x00
	subOutByteATN   = 0x01
	subOutSecondary = 0x02
	subInByte       = 0x03
	subAssertATN    = 0x04
	subReleaseATN   = 0x05
	subTurnaround   = 0x06
	subReleaseBus   = 0x07
)

// WellKnownFastSerialPatches lists the KERNAL routines that real fast
// loaders (and this emulation, for the same reason real hardware
// accelerators do it) bypass with native code: the byte-at-a-time
// serial-bus bit banging is thousands of times slower than servicing the
// equivalent IEC transaction directly.
var WellKnownFastSerialPatches = []FastSerialPatchAddress{
	{Address: 0xe4a9, Purpose: "kernal RESET vector entry, used to install patches once at boot"},
	{Address: 0xf48b, Purpose: "OPEN: open a logical file for fast-serial IEC transfer"},
	{Address: 0xf78f, Purpose: "TALK"},
	{Address: 0xf6e4, Purpose: "LISTEN"},
	{Address: 0xf5be, Purpose: "SAVE"},
	{Address: 0xf56e, Purpose: "LOAD"},
	{Address: 0xf5cc, Purpose: "CHKIN"},
	{Address: 0xf651, Purpose: "CHKOUT"},

	{Address: 0xeddd, Purpose: "IECOut: send a byte on the data channel", HasSubop: true, Subop: subOutByte},
	{Address: 0xed0c, Purpose: "IECOutATN: send a LISTEN/TALK address byte", HasSubop: true, Subop: subOutByteATN},
	{Address: 0xedb9, Purpose: "IECOutSec: send a secondary address byte", HasSubop: true, Subop: subOutSecondary},
	{Address: 0xee13, Purpose: "IECIn: receive a byte from the current talker", HasSubop: true, Subop: subInByte},
	{Address: 0xed4e, Purpose: "IECSetATN: assert ATN", HasSubop: true, Subop: subAssertATN},
	{Address: 0xed5e, Purpose: "IECRelATN: release ATN", HasSubop: true, Subop: subReleaseATN},
	{Address: 0xede3, Purpose: "IECTurnaround: swap talker/listener roles", HasSubop: true, Subop: subTurnaround},
	{Address: 0xedef, Purpose: "IECRelease: release the bus entirely", HasSubop: true, Subop: subReleaseBus},
}

// PatchFastSerial overwrites the entry byte of each routine in
// WellKnownFastSerialPatches with the fabricated 0xF2 opcode (followed by
// its sub-opcode byte, for the eight IEC primitives), so that the
// interpreter's FastPath dispatch takes over instead of executing the real
// KERNAL routine. Call after loading a genuine KERNAL image; the patch is
// applied (and each patched address logged) whatever KERNAL image is
// loaded, including the built-in stub.
func (b *Bus) PatchFastSerial() {
	for _, p := range WellKnownFastSerialPatches {
		if p.Address < 0xe000 {
			continue
		}
		b.Kernal[p.Address-0xe000] = 0xf2
		if p.HasSubop {
			b.Kernal[p.Address-0xe000+1] = p.Subop
		}
		logger.Logf(logger.Allow, "memory", "patched %s at %#04x with fast-serial marker", p.Purpose, p.Address)
	}
}

// stubKernalResetVector is the only byte the built-in stub KERNAL actually
// needs to get right: the reset vector, so that a machine with no real
// KERNAL image loaded still starts executing somewhere sane (a JMP $E000
// loop) instead of reading uninitialised ROM as instructions.
func stubKernalResetVector(k *[8192]uint8) {
	// reset vector -> $E000, a single infinite loop (JMP $E000)
	k[0xfffc-0xe000] = 0x00
	k[0xfffd-0xe000] = 0xe0
	k[0x0000] = 0x4c // JMP
	k[0x0001] = 0x00
	k[0x0002] = 0xe0
	// IRQ/BRK and NMI vectors both point at an RTI so a spurious interrupt
	// with no real KERNAL handler installed doesn't run away into garbage.
	k[0xfffa-0xe000] = 0x10
	k[0xfffb-0xe000] = 0xe0
	k[0xfffe-0xe000] = 0x10
	k[0xffff-0xe000] = 0xe0
	k[0x0010] = 0x40 // RTI
}

// InstallStubROMs fills in the built-in placeholder KERNAL image; the
// BASIC and character ROM images are left as they are. The real Commodore ROMs are copyrighted and are not
// distributed with this module; this gives the machine something safe to
// boot into (a tight reset loop) for testing the hardware core without
// them.
func (b *Bus) InstallStubROMs() {
	stubKernalResetVector(&b.Kernal)
}
