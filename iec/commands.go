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

package iec

import (
	"fmt"
	"strconv"
	"strings"
)

// Filesystem is implemented by whatever backs a device's disk image
// (ordinarily a *drive.Filesystem wrapping a drive/disk image), supplying
// just enough to answer CBM DOS command-channel requests without this
// package needing to know about GCR or track geometry at all.
type Filesystem interface {
	// Open resolves name (already split from its access-mode suffix, if
	// any) to file contents for reading, or permits a new file to be
	// created for writing.
	Open(name string, write bool) (data []byte, err error)
	// Directory returns the directory listing that "$" channel reads
	// return to a LOAD "$" command.
	Directory() ([]byte, error)
	// Rename implements the R: command.
	Rename(from, to string) error
	// Scratch implements the S: command, returning the number of files
	// deleted (CBM DOS reports this in its status string).
	Scratch(pattern string) (deleted int, err error)
	// Format implements the N: (new/format) command.
	Format(name, id string) error
}

// Status is a CBM DOS status code plus its fixed message text, together
// forming the two-digit,message,track,sector reply a READST/command
// channel read returns.
type Status struct {
	Code    int
	Message string
	Track   int
	Sector  int
}

// String renders the status the way a real 1541 does: "73,CBM DOS V2.6 1541,00,00".
func (s Status) String() string {
	return fmt.Sprintf("%02d,%s,%02d,%02d", s.Code, s.Message, s.Track, s.Sector)
}

// Well-known status codes; spec.md names the ones listed in its command
// table ("31, SYNTAX ERROR" and "74, DRIVE NOT READY" among them).
var (
	StatusOK             = Status{Code: 0, Message: "OK"}
	StatusSyntaxError    = Status{Code: 31, Message: "SYNTAX ERROR"}
	StatusFileNotFound   = Status{Code: 62, Message: "FILE NOT FOUND"}
	StatusFileExists     = Status{Code: 63, Message: "FILE EXISTS"}
	StatusDriveNotReady  = Status{Code: 74, Message: "DRIVE NOT READY"}
	StatusWriteProtectOn = Status{Code: 26, Message: "WRITE PROTECT ON"}
)

// CommandProcessor parses and executes CBM DOS command strings written
// to the command channel (secondary address 15), and holds the most
// recent Status for a following READST-style read.
type CommandProcessor struct {
	fs     Filesystem
	status Status
}

// NewCommandProcessor constructs a processor bound to fs.
func NewCommandProcessor(fs Filesystem) *CommandProcessor {
	return &CommandProcessor{fs: fs, status: StatusOK}
}

// Status returns the most recently set status.
func (p *CommandProcessor) Status() Status {
	return p.status
}

// Execute parses and runs one command string, updating Status as a
// side effect, per the subset of CBM DOS spec.md names: I (initialize),
// V (validate), R: (rename), S: (scratch), N: (new/format).
func (p *CommandProcessor) Execute(cmd string) {
	cmd = strings.TrimRight(cmd, "\r\n")
	if cmd == "" {
		p.status = StatusSyntaxError
		return
	}

	switch {
	case cmd == "I" || cmd == "I0":
		p.status = StatusOK
	case cmd == "V" || strings.HasPrefix(cmd, "V0"):
		p.status = StatusOK
	case strings.HasPrefix(cmd, "R:") || strings.HasPrefix(cmd, "R0:"):
		p.rename(strings.TrimPrefix(strings.TrimPrefix(cmd, "R0:"), "R:"))
	case strings.HasPrefix(cmd, "S:") || strings.HasPrefix(cmd, "S0:"):
		p.scratch(strings.TrimPrefix(strings.TrimPrefix(cmd, "S0:"), "S:"))
	case strings.HasPrefix(cmd, "N:") || strings.HasPrefix(cmd, "N0:"):
		p.format(strings.TrimPrefix(strings.TrimPrefix(cmd, "N0:"), "N:"))
	default:
		p.status = StatusSyntaxError
	}
}

func (p *CommandProcessor) rename(args string) {
	parts := strings.SplitN(args, "=", 2)
	if len(parts) != 2 {
		p.status = StatusSyntaxError
		return
	}
	if err := p.fs.Rename(strings.TrimSpace(parts[1]), strings.TrimSpace(parts[0])); err != nil {
		p.status = StatusFileNotFound
		return
	}
	p.status = StatusOK
}

func (p *CommandProcessor) scratch(pattern string) {
	deleted, err := p.fs.Scratch(strings.TrimSpace(pattern))
	if err != nil {
		p.status = StatusFileNotFound
		return
	}
	p.status = Status{Code: 1, Message: strconv.Itoa(deleted) + " FILES SCRATCHED", Track: 0, Sector: 0}
}

func (p *CommandProcessor) format(args string) {
	parts := strings.SplitN(args, ",", 2)
	name := strings.TrimSpace(parts[0])
	id := ""
	if len(parts) == 2 {
		id = strings.TrimSpace(parts[1])
	}
	if err := p.fs.Format(name, id); err != nil {
		p.status = StatusDriveNotReady
		return
	}
	p.status = StatusOK
}
