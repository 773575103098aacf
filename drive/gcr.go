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

// gcrEncodeTable maps each of the sixteen possible 4-bit nibbles to its
// 5-bit group code, chosen (as on the real 1541) so that no encoded byte
// stream ever contains more than two consecutive zero bits - the
// property the drive's read circuitry depends on to stay bit-synced.
var gcrEncodeTable = [16]uint8{
	0x0a, 0x0b, 0x12, 0x13, 0x0e, 0x0f, 0x16, 0x17,
	0x09, 0x19, 0x1a, 0x1b, 0x0d, 0x1d, 0x1e, 0x15,
}

var gcrDecodeTable = buildDecodeTable()

func buildDecodeTable() [32]int8 {
	var t [32]int8
	for i := range t {
		t[i] = -1
	}
	for nibble, code := range gcrEncodeTable {
		t[code] = int8(nibble)
	}
	return t
}

// EncodeSector converts a 256-byte sector payload (plus its checksum
// byte) into its ~325-byte on-disk GCR representation: the 260 source
// bytes (256 data + checksum + padding) are taken in groups of 4, and
// each group's 8 nibbles become 8 five-bit group codes packed into 5
// output bytes.
func EncodeSector(data [256]byte, checksum byte) []byte {
	var raw [260]byte
	copy(raw[:256], data[:])
	raw[256] = checksum
	// remaining 3 bytes are padding, conventionally zero.

	out := make([]byte, 0, 325)
	for i := 0; i < len(raw); i += 4 {
		out = append(out, encode4to5(raw[i:i+4])...)
	}
	return out
}

// encode4to5 converts 4 source bytes (32 bits, 8 nibbles) into 5 GCR
// bytes (40 bits, 8 group codes of 5 bits each).
func encode4to5(src []byte) []byte {
	var bits uint64
	for _, b := range src {
		bits = bits<<8 | uint64(b)
	}

	var groupBits uint64
	for shift := 28; shift >= 0; shift -= 4 {
		nibble := (bits >> uint(shift)) & 0xf
		groupBits = groupBits<<5 | uint64(gcrEncodeTable[nibble])
	}

	out := make([]byte, 5)
	for i := 4; i >= 0; i-- {
		out[i] = byte(groupBits)
		groupBits >>= 8
	}
	return out
}

// DecodeSector reverses EncodeSector, returning the 256-byte payload and
// checksum byte, or a GCRDecodeError if an invalid group code (one with
// no corresponding table entry) is encountered - the same failure mode
// real drive firmware reports as a "GCR error" and copy-protection
// schemes intentionally trigger to detect naive bit-for-bit copies.
func DecodeSector(gcr []byte, track, sector int) (data [256]byte, checksum byte, err error) {
	if len(gcr) < 325 {
		return data, 0, errors.Errorf(errors.GCRDecodeError, track, sector)
	}

	var raw [260]byte
	for i := 0; i < 260; i += 4 {
		decoded, decErr := decode5to4(gcr[i/4*5 : i/4*5+5])
		if decErr != nil {
			return data, 0, errors.Errorf(errors.GCRDecodeError, track, sector)
		}
		copy(raw[i:i+4], decoded[:])
	}

	copy(data[:], raw[:256])
	return data, raw[256], nil
}

func decode5to4(src []byte) ([4]byte, error) {
	var groupBits uint64
	for _, b := range src {
		groupBits = groupBits<<8 | uint64(b)
	}

	var nibbles [8]byte
	for i := 7; i >= 0; i-- {
		code := groupBits & 0x1f
		groupBits >>= 5
		n := gcrDecodeTable[code]
		if n < 0 {
			return [4]byte{}, errors.Errorf(errors.GCRDecodeError, 0, 0)
		}
		nibbles[i] = uint8(n)
	}

	var out [4]byte
	for i := 0; i < 4; i++ {
		out[i] = nibbles[i*2]<<4 | nibbles[i*2+1]
	}
	return out, nil
}

// Checksum computes the 1541's sector checksum: the XOR of every data
// byte, exactly as the drive firmware computes it before writing a
// sector and verifies it after reading one back.
func Checksum(data [256]byte) byte {
	var c byte
	for _, b := range data {
		c ^= b
	}
	return c
}
