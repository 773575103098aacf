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

// Package machine wires the whole Commodore 64 core together: banked
// memory, the 6510, the VIC-II, both CIAs, the SID, the IEC bus and its
// optional 1541 drive, into one struct that a host program drives one
// frame (or one instruction) at a time.
package machine

import (
	"fmt"

	"github.com/vintage64/c64core/cia"
	"github.com/vintage64/c64core/clocks"
	"github.com/vintage64/c64core/cpu6510bank"
	"github.com/vintage64/c64core/drive"
	"github.com/vintage64/c64core/drivecpu"
	"github.com/vintage64/c64core/environment"
	"github.com/vintage64/c64core/errors"
	"github.com/vintage64/c64core/iec"
	"github.com/vintage64/c64core/logger"
	"github.com/vintage64/c64core/memory"
	"github.com/vintage64/c64core/preferences"
	"github.com/vintage64/c64core/sid"
	"github.com/vintage64/c64core/vic"
)

// Preferences collects the runtime toggles a host can change between
// frames via SetPrefs - distinct from the disk-backed preferences
// package, which holds settings meaningful across process restarts.
type Preferences struct {
	CycleAccurate           bool
	SpritesEnabled          bool
	CollisionsEnabled       bool
	FastReset               bool
	DriveProcessorEmulation bool
	SIDFilterEnabled        bool
	JoystickSwap            bool
	DriveImagePaths         []string
}

// DefaultPreferences returns the preferences a freshly booted machine
// starts with: full accuracy, nothing disabled.
func DefaultPreferences() Preferences {
	return Preferences{
		CycleAccurate:     true,
		SpritesEnabled:    true,
		CollisionsEnabled: true,
		SIDFilterEnabled:  true,
	}
}

// VBlankFunc is called once per emulated frame, after housekeeping
// (keyboard/joystick poll, TOD tick, frame present) has run.
type VBlankFunc func()

// PollKeyboardFunc fills matrix (row-major, bit=0 for a pressed key),
// revMatrix (column-major, same convention, kept for host code that
// scans by column) and joystick (index 0 = port 1, 1 = port 2; bit0-3
// up/down/left/right, bit4 fire, all active-low) with the host's
// current input state.
type PollKeyboardFunc func(matrix *[8]uint8, revMatrix *[8]uint8, joystick *[2]uint8)

// PollJoystickFunc reads a single joystick port (0 or 1) on demand,
// outside the regular per-frame poll - used by hosts that want lower
// input latency than a once-per-frame sample gives.
type PollJoystickFunc func(port int) uint8

// PresentFrameFunc receives the completed frame buffer and its stride
// once per frame, at the same point VBlankFunc fires.
type PresentFrameFunc func(framebuffer []byte, pitch int)

// Machine is the whole emulated computer: everything a host needs to
// run, reset, feed input to, and read output from.
type Machine struct {
	Prefs Preferences

	Bus  *memory.Bus
	CPU  *cpu6510bank.CPU
	VIC  *vic.VIC
	CIA1 *cia.CIA
	CIA2 *cia.CIA
	SID  *sid.Chip

	IECBus     *iec.Bus
	Channels   *iec.Channels
	Commands   *iec.CommandProcessor
	FastSerial *iec.FastPathDispatcher

	Drive     *drivecpu.CPU
	DriveVIA1 *drive.VIA
	DriveVIA2 *drive.VIA
	DiskImage *drive.Image
	Jobs      *drive.Engine

	Env *environment.Environment

	standard clocks.ColourStandard

	keyboard *keyboardWiring
	iecPort  *iecWiring
	vicMem   *vicMemoryView

	paused bool

	VBlank        VBlankFunc
	PollKeyboard  PollKeyboardFunc
	PollJoystick  PollJoystickFunc
	PresentFrame  PresentFrameFunc

	frameBuffer []byte

	sampleRate float64

	driveCycleDebt int
}

// framePitch is fixed at the VIC's full raster width; hosts crop to the
// visible window themselves, matching how the teacher's television
// package exposes overscan pixels rather than hiding them.
const framePitch = clocks.PALCyclesPerLine * 8

// New constructs an unconfigured Machine for the given colour standard
// and audio sample rate, with stub ROMs installed so it can run without
// copyrighted firmware images present.
func New(standard clocks.ColourStandard, sampleRate float64, prefs *preferences.Preferences) (*Machine, error) {
	m := &Machine{
		Prefs:      DefaultPreferences(),
		standard:   standard,
		sampleRate: sampleRate,
	}

	m.VIC = vic.New(nil, m.setVICIRQ)

	env, err := environment.NewEnvironment("machine", m.VIC, prefs)
	if err != nil {
		return nil, err
	}
	m.Env = env

	m.Bus = memory.NewBus(env.Random, env.Prefs.RandomState.Get().(bool))
	m.Bus.InstallStubROMs()

	m.vicMem = &vicMemoryView{bus: m.Bus}
	m.VIC.SetBus(m.vicMem)
	m.Bus.VIC = m.VIC

	m.keyboard = newKeyboardWiring()
	m.CIA1 = cia.New("cia1", cyclesPerTenth(standard), m.keyboard, m.setIRQ)
	m.Bus.CIA1 = m.CIA1

	m.IECBus = iec.NewBus()
	m.iecPort = newIECWiring(m.IECBus, "host")
	m.iecPort.vicMem = m.vicMem
	m.CIA2 = cia.New("cia2", cyclesPerTenth(standard), m.iecPort, m.setNMI)
	m.Bus.CIA2 = m.CIA2

	m.SID = sid.New(env, float64(standard.ClockHz()), sampleRate)
	m.Bus.SID = m.SID

	m.CPU = cpu6510bank.New(m.Bus, nil)

	m.Channels = &iec.Channels{}
	m.DiskImage = drive.NewImage()
	fs := drive.NewFilesystem(m.DiskImage)
	m.Commands = iec.NewCommandProcessor(fs)
	m.FastSerial = iec.NewFastPathDispatcher(m.CPU.Core, m.Channels, fs, m.IECBus)
	m.CPU.Fast = m.FastSerial

	m.Bus.PatchFastSerial()
	m.Jobs = drive.NewEngine(m.DiskImage)

	m.Reset()

	return m, nil
}

func cyclesPerTenth(standard clocks.ColourStandard) int {
	return standard.ClockHz() / 10
}

// AttachDisk mounts a disk image (already loaded via drive/disk.Load)
// as the machine's single drive, replacing whatever was mounted before.
func (m *Machine) AttachDisk(img *drive.Image) {
	m.DiskImage = img
	fs := drive.NewFilesystem(img)
	m.Commands = iec.NewCommandProcessor(fs)
	m.FastSerial = iec.NewFastPathDispatcher(m.CPU.Core, m.Channels, fs, m.IECBus)
	m.CPU.Fast = m.FastSerial
	m.Jobs = drive.NewEngine(img)
	if m.Drive != nil {
		m.DriveVIA1.SetFreeRunning(false)
	}
	logger.Logf(logger.Allow, "machine", "disk image attached, %d sectors", len(img.Sectors()))
}

// EnableDriveProcessor switches the IEC bus from fast-path KERNAL
// dispatch to genuine wire-level 1541 CPU emulation, per Preferences.
// DriveProcessorEmulation and spec.md §4.5's fast-path/full-emulation
// switch. Must be called while Paused.
func (m *Machine) EnableDriveProcessor(romPath string) error {
	if !m.paused {
		return errors.Errorf(errors.NotPaused, "cannot switch drive emulation modes while running")
	}

	m.DriveVIA1 = drive.NewVIA(newDriveIECWiring(m.IECBus), m.setDriveIRQ)
	m.DriveVIA2 = drive.NewVIA(newDriveHeadWiring(m.Jobs), nil)

	bus := drivecpu.NewBus(m.DriveVIA1, m.DriveVIA2)
	if err := bus.LoadROM(romPath); err != nil {
		return err
	}
	m.Drive = drivecpu.New(bus)
	m.CPU.Fast = nil // the fabricated fast-path is a stand-in for a real drive; disable it once we have one
	logger.Logf(logger.Allow, "machine", "drive processor emulation enabled, rom %s", romPath)
	return nil
}

// Paused reports whether SetPrefs may currently be called.
func (m *Machine) Paused() bool { return m.paused }

// SetPaused controls whether the machine is willing to accept SetPrefs.
// A host calls this around its own run-loop pause/resume actions.
func (m *Machine) SetPaused(paused bool) { m.paused = paused }

// SetPrefs replaces the runtime preferences. Per spec.md §6.1 this is
// only valid while the machine is paused.
func (m *Machine) SetPrefs(p Preferences) error {
	if !m.paused {
		return errors.Errorf(errors.NotPaused, "SetPrefs called while machine is running, not paused")
	}
	m.Prefs = p
	return nil
}

// SetFrameBuffer installs the byte slice the VIC paints into.
func (m *Machine) SetFrameBuffer(buf []byte) {
	m.frameBuffer = buf
	m.VIC.SetFrameBuffer(buf, framePitch)
}

// Reset performs a soft reset: every chip returns to its power-on
// state and the CPU's PC is loaded from the reset vector, exactly as a
// hardware RESET would do.
func (m *Machine) Reset() {
	m.VIC.Reset()
	*m.CIA1 = *cia.New("cia1", cyclesPerTenth(m.standard), m.keyboard, m.setIRQ)
	*m.CIA2 = *cia.New("cia2", cyclesPerTenth(m.standard), m.iecPort, m.setNMI)
	m.SID.Reset()
	m.CPU.Core.Reset()
	m.Channels.Reset()
}

// NMI pulses the CPU's NMI line, modelling the Restore key.
func (m *Machine) NMI() {
	m.CPU.Core.SetNMI(true)
	m.CPU.Core.SetNMI(false)
}

func (m *Machine) setIRQ(asserted bool) {
	m.CPU.Core.SetIRQ("cia1", asserted)
}

func (m *Machine) setNMI(asserted bool) {
	m.CPU.Core.SetNMI(asserted)
}

func (m *Machine) setVICIRQ(asserted bool) {
	m.CPU.Core.SetIRQ("vic", asserted)
}

func (m *Machine) setDriveIRQ(asserted bool) {
	if m.Drive != nil {
		m.Drive.Core.SetIRQ("via1", asserted)
	}
}

// vicMemoryView adapts the CPU-side memory.Bus into the VIC's own 16K
// bank-relative view: RAM as seen through whichever bank CIA2 port A
// selects, with the character ROM shadowed at $1000-$1FFF of banks 0 and
// 2 (CPU $1000 and $9000), and the colour fetch at $D800-$DBFF served
// from colour RAM.
type vicMemoryView struct {
	bus  *memory.Bus
	bank uint16 // bank base address, 0x0000/0x4000/0x8000/0xc000
}

// VICRead implements vic.MemoryBus.
func (v *vicMemoryView) VICRead(addr uint16) uint8 {
	full := v.bank + addr
	if addr >= 0xd800 && addr < 0xdc00 {
		return v.bus.ColorRAM[addr-0xd800]
	}
	if addr&0xf000 == 0x1000 && v.bank&0x4000 == 0 {
		return v.bus.CharGen[addr-0x1000]
	}
	return v.bus.RAM[full]
}

func (v *vicMemoryView) String() string {
	return fmt.Sprintf("VIC bank $%04X", v.bank)
}
