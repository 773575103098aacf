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

// Package wavwriter allows the SID output stream to be captured to disk as a
// WAV file. Audio data is buffered in memory in its entirety and written to
// disk when EndMixing is called, so this is intended for test fixtures and
// short recordings rather than long running capture.
package wavwriter

import (
	"os"

	"github.com/vintage64/c64core/errors"
	"github.com/vintage64/c64core/logger"
	"github.com/youpy/go-wav"
)

// WavWriter implements the sid.Mixer interface, consuming one signed 16 bit
// sample per call to Write.
type WavWriter struct {
	filename   string
	sampleFreq uint32
	buffer     []wav.Sample
}

// New is the preferred method of initialisation for WavWriter.
func New(filename string, sampleFreq uint32) (*WavWriter, error) {
	return &WavWriter{
		filename:   filename,
		sampleFreq: sampleFreq,
		buffer:     make([]wav.Sample, 0, sampleFreq),
	}, nil
}

// Write appends a single mono sample to the in-memory buffer.
func (aw *WavWriter) Write(sample int16) error {
	w := wav.Sample{}
	w.Values[0] = int(sample)
	w.Values[1] = int(sample)
	aw.buffer = append(aw.buffer, w)
	return nil
}

// EndMixing flushes the buffered samples to disk as a 16 bit mono WAV file.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return errors.Errorf("wavwriter: %v", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			rerr = errors.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewWriter(f, uint32(len(aw.buffer)), 1, aw.sampleFreq, 16)
	if enc == nil {
		return errors.Errorf("wavwriter: %v", "bad parameters for wav encoding")
	}

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", aw.filename)
	return enc.WriteSamples(aw.buffer)
}

// Reset clears the in-memory sample buffer.
func (aw *WavWriter) Reset() {
	aw.buffer = aw.buffer[:0]
}
