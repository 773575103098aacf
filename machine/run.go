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

package machine

import "github.com/vintage64/c64core/vic"

// RunCycleAccurate drives the machine one CPU instruction at a time,
// stepping the VIC, both CIAs and the SID once per consumed cycle, with
// the VIC's bad-line and sprite DMA windows widening that cycle count to
// model the cycles they steal from the CPU. continueCheck is polled
// before every instruction; a nil continueCheck runs forever. Returns
// whichever error first halts the 6510 (an unimplemented opcode, for
// instance) or a fast-path dispatch failure.
func (m *Machine) RunCycleAccurate(continueCheck func() bool) error {
	lastFrame := m.VIC.GetCoords().Frame
	for continueCheck == nil || continueCheck() {
		cycles, err := m.CPU.Core.ExecuteInstruction()
		if err != nil {
			return err
		}
		m.tickChips(cycles)
		if err := m.runDrive(); err != nil {
			return err
		}
		if frame := m.VIC.GetCoords().Frame; frame != lastFrame {
			lastFrame = frame
			m.endOfFrame()
		}
	}
	return nil
}

// RunLineBased drives the machine a full raster line at a time: the VIC
// is stepped a line's worth of cycles up front (reporting how many it
// stole for bad-line or sprite DMA), and the CPU is then run enough
// instructions to spend the cycles that remain, carrying any leftover
// or overspent budget into the next line. This trades per-cycle raster
// accuracy (mid-line sprite multiplexer tricks won't render correctly)
// for substantially less per-line overhead than RunCycleAccurate.
func (m *Machine) RunLineBased(continueCheck func() bool) error {
	var cpuDebt int
	for continueCheck == nil || continueCheck() {
		stolen, endOfFrame := m.VIC.EmulateLine()
		cpuDebt += vic.CyclesPerLine - stolen

		for cpuDebt > 0 {
			n, err := m.CPU.Core.ExecuteInstruction()
			if err != nil {
				return err
			}
			cpuDebt -= n
		}

		for i := 0; i < vic.CyclesPerLine; i++ {
			m.CIA1.Step(false)
			m.CIA2.Step(false)
			m.SID.Step()
		}

		if m.Drive != nil {
			m.driveCycleDebt += vic.CyclesPerLine
			if err := m.runDrive(); err != nil {
				return err
			}
		}

		if endOfFrame {
			m.endOfFrame()
		}
	}
	return nil
}

// tickChips steps the VIC, both CIAs and the SID forward cycles times,
// stretching the loop itself whenever the VIC reports BA asserted: that
// cycle's bus access belongs to the VIC (a bad line or sprite DMA
// fetch), not the CPU, so the chips get an extra cycle to themselves
// without the CPU having consumed one.
func (m *Machine) tickChips(cycles int) {
	for i := 0; i < cycles; i++ {
		ba := m.VIC.Step()
		m.CIA1.Step(false)
		m.CIA2.Step(false)
		m.SID.Step()
		if m.Drive != nil {
			m.DriveVIA1.Step()
			m.DriveVIA2.Step()
			m.driveCycleDebt++
		}
		if ba {
			cycles++
		}
	}
}

// runDrive spends the drive's accumulated cycle debt executing 1541 CPU
// instructions, same as the main CPU's own instruction/cycle accounting
// but against the drive's independent clock.
func (m *Machine) runDrive() error {
	for m.Drive != nil && m.driveCycleDebt > 0 {
		n, err := m.Drive.Core.ExecuteInstruction()
		if err != nil {
			return err
		}
		m.driveCycleDebt -= n
	}
	return nil
}

// endOfFrame runs the once-per-frame housekeeping a real C64 leaves to
// its VBlank window: polling input, presenting the completed frame, and
// letting the host run its own per-frame logic before the next frame's
// raster starts.
func (m *Machine) endOfFrame() {
	m.SID.EndFrame()

	if m.PollKeyboard != nil {
		var matrix, revMatrix [8]uint8
		var joystick [2]uint8
		m.PollKeyboard(&matrix, &revMatrix, &joystick)
		if m.Prefs.JoystickSwap {
			joystick[0], joystick[1] = joystick[1], joystick[0]
		}
		m.keyboard.setMatrix(matrix, joystick)
	}

	if m.PresentFrame != nil && m.frameBuffer != nil {
		m.PresentFrame(m.frameBuffer, framePitch)
	}

	if m.VBlank != nil {
		m.VBlank()
	}
}
