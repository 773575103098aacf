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

import "github.com/vintage64/c64core/errors"

// ChannelCount is the number of logical channels (secondary addresses)
// a CBM DOS device supports, numbered 0-15. Channel 15 is conventionally
// reserved for the command/status channel.
const ChannelCount = 16

// CommandChannel is the reserved secondary address used for CBM DOS
// command strings and status replies.
const CommandChannel = 15

// ChannelMode records what a logical channel was most recently opened
// for.
type ChannelMode int

const (
	ModeClosed ChannelMode = iota
	ModeRead
	ModeWrite
)

// Channel is one of a device's 16 logical channels: a named file
// (or the command channel), a mode, and - once open for reading - a
// byte source the channel streams from with EOI signalled on the final
// byte.
type Channel struct {
	Mode ChannelMode
	Name string

	data   []byte
	cursor int
}

// Channels is one device's full bank of 16 logical channels.
type Channels struct {
	slots [ChannelCount]Channel
}

// Open opens channel number ch for reading data, or for writing if data
// is nil.
func (c *Channels) Open(ch uint8, name string, data []byte) error {
	if ch >= ChannelCount {
		return errors.Errorf(errors.BadJobCode, ch)
	}
	if data != nil {
		c.slots[ch] = Channel{Mode: ModeRead, Name: name, data: data}
	} else {
		c.slots[ch] = Channel{Mode: ModeWrite, Name: name}
	}
	return nil
}

// Close releases channel number ch.
func (c *Channels) Close(ch uint8) {
	if ch < ChannelCount {
		c.slots[ch] = Channel{}
	}
}

// ReadByte returns the next byte from an open-for-read channel, and
// whether it is the last byte available (EOI, End Or Identify, the
// signal the KERNAL's serial routines use to know a file has ended
// without a separate close having to happen first).
func (c *Channels) ReadByte(ch uint8) (b byte, eoi bool, err error) {
	if ch >= ChannelCount || c.slots[ch].Mode != ModeRead {
		return 0, false, errors.Errorf(errors.DriveNotReady, "channel not open for read")
	}
	s := &c.slots[ch]
	if s.cursor >= len(s.data) {
		return 0, true, errors.Errorf(errors.DriveNotReady, "channel exhausted")
	}
	b = s.data[s.cursor]
	s.cursor++
	eoi = s.cursor >= len(s.data)
	return b, eoi, nil
}

// WriteByte appends a byte to an open-for-write channel's buffer.
func (c *Channels) WriteByte(ch uint8, b byte) error {
	if ch >= ChannelCount || c.slots[ch].Mode != ModeWrite {
		return errors.Errorf(errors.DriveNotReady, "channel not open for write")
	}
	c.slots[ch].data = append(c.slots[ch].data, b)
	return nil
}

// WrittenData returns the bytes accumulated so far on a write channel,
// for the caller to commit to the backing disk image once the channel
// is closed.
func (c *Channels) WrittenData(ch uint8) []byte {
	if ch >= ChannelCount {
		return nil
	}
	return c.slots[ch].data
}

// Reset closes every channel.
func (c *Channels) Reset() {
	for i := range c.slots {
		c.slots[i] = Channel{}
	}
}
