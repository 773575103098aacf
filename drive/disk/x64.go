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

package disk

import (
	"github.com/vintage64/c64core/drive"
	"github.com/vintage64/c64core/errors"
)

const x64Signature = "C64File"

// LoadX64 decodes an X64 image: a D64 image with a fixed 64-byte header
// (a 7-byte "C64File" signature plus version and geometry fields) and
// always treated read-only here, matching its original purpose as a
// self-describing wrapper for otherwise-ambiguous raw D64 dumps rather
// than an actively-authored format.
func LoadX64(raw []byte) (*drive.Image, error) {
	if len(raw) < 64 || string(raw[:7]) != x64Signature {
		return nil, errors.Errorf(errors.UnsupportedDiskFormat, "x64")
	}
	return LoadD64(raw[64:], true)
}
