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

package prefs_test

import (
	"os"
	"path"
	"testing"

	"github.com/vintage64/c64core/prefs"
)

func tmpPrefFile(t *testing.T) string {
	t.Helper()
	return path.Join(os.TempDir(), "c64core_prefs_test")
}

func TestBoolRoundtrip(t *testing.T) {
	fn := tmpPrefFile(t)
	defer os.Remove(fn)

	dsk, err := prefs.NewDisk(fn)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var v prefs.Bool
	if err := dsk.Add("test", &v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := v.Set(true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := dsk.Save(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var w prefs.Bool
	dsk2, err := prefs.NewDisk(fn)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := dsk2.Add("test", &w); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := dsk2.Load(true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if w.Get() != true {
		t.Errorf("expected true, got %v", w.Get())
	}
}

func TestIntSetFailure(t *testing.T) {
	var v prefs.Int
	if err := v.Set("---"); err == nil {
		t.Errorf("expected error converting non-numeric string")
	}
	if err := v.Set(1.0); err == nil {
		t.Errorf("expected error converting float to Int")
	}
}

func TestCommandLineStack(t *testing.T) {
	if s := prefs.PopCommandLineStack(); s != "" {
		t.Errorf("expected empty stack, got %q", s)
	}

	prefs.PushCommandLineStack("foo::bar")
	if s := prefs.PopCommandLineStack(); s != "foo::bar" {
		t.Errorf("expected foo::bar, got %q", s)
	}

	prefs.PushCommandLineStack("foo::bar; baz::qux")
	if s := prefs.PopCommandLineStack(); s != "baz::qux; foo::bar" {
		t.Errorf("expected sorted group, got %q", s)
	}
}
