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

package logger

import "io"

// Permission implementations indicate whether the caller making a log
// request is allowed to create new log entries.
type Permission interface {
	AllowLogging() bool
}

type allow struct{}

func (allow) AllowLogging() bool {
	return true
}

// Allow indicates that the logging request should always be allowed.
var Allow Permission = allow{}

// only one central log for the entire application.
var central *logger

// maximum number of entries in the central logger.
const maxCentral = 512

func init() {
	central = newLogger(maxCentral)
}

// Log adds an entry to the central logger.
func Log(perm Permission, tag, detail string) {
	if perm == Allow || perm.AllowLogging() {
		central.log(tag, detail)
	}
}

// Logf adds a formatted entry to the central logger.
func Logf(perm Permission, tag, format string, args ...interface{}) {
	if perm == Allow || perm.AllowLogging() {
		central.logf(tag, format, args...)
	}
}

// Clear all entries from the central logger.
func Clear() {
	central.clear()
}

// Write the contents of the central logger to w.
func Write(w io.Writer) {
	central.write(w)
}

// Tail writes the last number entries to w.
func Tail(w io.Writer, number int) {
	central.tail(w, number)
}

// SetEcho causes every new log entry to also be written to w immediately.
// Pass nil to disable echoing.
func SetEcho(w io.Writer) {
	central.setEcho(w)
}
