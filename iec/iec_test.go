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

package iec_test

import (
	"testing"

	"github.com/vintage64/c64core/iec"
)

func TestBusLineIsWiredOR(t *testing.T) {
	b := iec.NewBus()
	b.Assert("host", iec.LineATN, true)
	if !b.Level(iec.LineATN) {
		t.Fatalf("expected ATN asserted by host to be visible on the bus")
	}
	b.Assert("drive8", iec.LineATN, true)
	b.Assert("host", iec.LineATN, false)
	if !b.Level(iec.LineATN) {
		t.Errorf("expected ATN to remain asserted while drive8 still holds it low")
	}
	b.Assert("drive8", iec.LineATN, false)
	if b.Level(iec.LineATN) {
		t.Errorf("expected ATN to release once every device releases it")
	}
}

func TestChannelReadReportsEOIOnLastByte(t *testing.T) {
	var c iec.Channels
	if err := c.Open(2, "TEST.PRG", []byte{1, 2, 3}); err != nil {
		t.Fatal(err)
	}
	for i, want := range []byte{1, 2, 3} {
		b, eoi, err := c.ReadByte(2)
		if err != nil {
			t.Fatal(err)
		}
		if b != want {
			t.Errorf("byte %d: got %d want %d", i, b, want)
		}
		wantEOI := i == 2
		if eoi != wantEOI {
			t.Errorf("byte %d: eoi=%v want %v", i, eoi, wantEOI)
		}
	}
}

type stubFS struct {
	renamed map[string]string
}

func (s *stubFS) Open(name string, write bool) ([]byte, error) { return []byte("x"), nil }
func (s *stubFS) Directory() ([]byte, error)                   { return nil, nil }
func (s *stubFS) Rename(from, to string) error {
	if s.renamed == nil {
		s.renamed = map[string]string{}
	}
	s.renamed[from] = to
	return nil
}
func (s *stubFS) Scratch(pattern string) (int, error) { return 1, nil }
func (s *stubFS) Format(name, id string) error        { return nil }

func TestCommandProcessorRename(t *testing.T) {
	fs := &stubFS{}
	p := iec.NewCommandProcessor(fs)
	p.Execute("R:NEW=OLD")
	if fs.renamed["OLD"] != "NEW" {
		t.Errorf("expected rename from OLD to NEW, got %v", fs.renamed)
	}
	if p.Status().Code != 0 {
		t.Errorf("expected OK status after rename, got %v", p.Status())
	}
}

func TestCommandProcessorUnknownCommandIsSyntaxError(t *testing.T) {
	p := iec.NewCommandProcessor(&stubFS{})
	p.Execute("Q:NONSENSE")
	if p.Status().Code != iec.StatusSyntaxError.Code {
		t.Errorf("expected syntax error, got %v", p.Status())
	}
}
