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

package drive

import "github.com/vintage64/c64core/errors"

// JobCode is one of the six operations the 1541's job queue understands,
// written by the C64-side DOS into one of the drive's job-queue slots
// (zero-page $00-$05, one per possible outstanding job) for the drive's
// own 6502 firmware to poll and execute against a buffer.
type JobCode uint8

const (
	JobRead    JobCode = 0x80
	JobWrite   JobCode = 0x90
	JobVerify  JobCode = 0xa0
	JobSeek    JobCode = 0xb0
	JobExecute JobCode = 0xe0
	JobJump    JobCode = 0xf0
	// JobIdle is what a slot holds when there is no work pending; the
	// firmware's idle loop spins waiting for a slot's high bit to be set.
	JobIdle JobCode = 0x00
)

// JobResult codes the 1541 firmware writes back into the job slot once
// a job completes, in place of the job code that was there: $01 for OK,
// or one of the error codes for whatever went wrong.
const (
	JobResultOK           = 0x01
	JobResultHeaderNotFound = 0x02
	JobResultSyncNotFound   = 0x03
	JobResultDataNotFound   = 0x04
	JobResultChecksumError  = 0x05
	JobResultWriteProtect   = 0x08
	JobResultDiskChanged    = 0x09
)

// Job describes one queued job-engine request: the operation, target
// track/sector, and (for a real drive) the zero-page buffer address the
// firmware reads/writes through - modelled here as a byte slice the
// caller supplies directly, sidestepping the buffer-pointer indirection
// since this emulation's job engine operates on the disk image directly
// rather than through the drive's own RAM.
type Job struct {
	Code    JobCode
	Track   int
	Sector  int
	Buffer  []byte
}

// Engine executes jobs against an attached Image, mirroring the six
// operations the 1541 firmware's job dispatch table supports.
type Engine struct {
	Image *Image
}

// NewEngine constructs a job engine bound to img.
func NewEngine(img *Image) *Engine {
	return &Engine{Image: img}
}

// Execute runs job and returns the result byte the drive firmware would
// write back into the job queue slot.
func (e *Engine) Execute(job Job) uint8 {
	switch job.Code {
	case JobRead:
		return e.read(job)
	case JobWrite:
		return e.write(job)
	case JobVerify:
		return e.verify(job)
	case JobSeek:
		return JobResultOK
	case JobExecute, JobJump:
		// job-queue "execute" and "jump" run firmware code out of the buffer
		// directly; there is no disk-image-level effect to model here,
		// since this emulation dispatches such requests via
		// cpu6510bank's fast-path mechanism instead of ever installing
		// buffer-resident job code in drive RAM.
		return JobResultOK
	}
	return JobResultOK
}

func (e *Engine) read(job Job) uint8 {
	if err := ValidateSector(job.Track, job.Sector); err != nil {
		return JobResultHeaderNotFound
	}
	data, err := e.Image.ReadSector(job.Track, job.Sector)
	if err != nil {
		return errCodeFor(err)
	}
	n := copy(job.Buffer, data[:])
	_ = n
	return JobResultOK
}

func (e *Engine) write(job Job) uint8 {
	if e.Image.ReadOnly {
		return JobResultWriteProtect
	}
	if err := ValidateSector(job.Track, job.Sector); err != nil {
		return JobResultHeaderNotFound
	}
	var data [256]byte
	copy(data[:], job.Buffer)
	if err := e.Image.WriteSector(job.Track, job.Sector, data); err != nil {
		return errCodeFor(err)
	}
	return JobResultOK
}

func (e *Engine) verify(job Job) uint8 {
	if err := ValidateSector(job.Track, job.Sector); err != nil {
		return JobResultHeaderNotFound
	}
	data, err := e.Image.ReadSector(job.Track, job.Sector)
	if err != nil {
		return errCodeFor(err)
	}
	for i, b := range job.Buffer {
		if i < len(data) && data[i] != b {
			return JobResultChecksumError
		}
	}
	return JobResultOK
}

func errCodeFor(err error) uint8 {
	if errors.Is(err, errors.SectorOutOfRange) || errors.Is(err, errors.TrackOutOfRange) {
		return JobResultHeaderNotFound
	}
	return JobResultDataNotFound
}
