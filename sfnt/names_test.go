// Copyright 2015 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package sfnt

import "testing"

func TestFaceName(t *testing.T) {
	f := testFace(t)
	name, ok := f.Name()
	if !ok {
		t.Fatal("Name() ok = false, want true")
	}
	if name != "Test Font" {
		t.Errorf("Name() = %q, want %q", name, "Test Font")
	}
}

func TestFaceNameAbsent(t *testing.T) {
	f := &Face{}
	if _, ok := f.Name(); ok {
		t.Error("Name() on a Face with no name table: ok = true, want false")
	}
}
