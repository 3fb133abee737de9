// Copyright 2015 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package raw

import (
	"errors"
	"testing"
)

func TestCheckedReads(t *testing.T) {
	b := []byte{0x01, 0x02, 0x03, 0x04, 0x05}

	if got, err := U8(b, 1); err != nil || got != 0x02 {
		t.Errorf("U8(b, 1) = (%d, %v), want (2, nil)", got, err)
	}
	if got, err := U16(b, 1); err != nil || got != 0x0203 {
		t.Errorf("U16(b, 1) = (%#x, %v), want (0x0203, nil)", got, err)
	}
	if got, err := I16(b, 1); err != nil || got != 0x0203 {
		t.Errorf("I16(b, 1) = (%d, %v), want (0x0203, nil)", got, err)
	}
	if got, err := U32(b, 1); err != nil || got != 0x02030405 {
		t.Errorf("U32(b, 1) = (%#x, %v), want (0x02030405, nil)", got, err)
	}
}

func TestCheckedReadsOutOfBounds(t *testing.T) {
	b := []byte{0x01, 0x02, 0x03}
	cases := []struct {
		name string
		fn   func() error
	}{
		{"U8", func() error { _, err := U8(b, 3); return err }},
		{"U16", func() error { _, err := U16(b, 2); return err }},
		{"U32", func() error { _, err := U32(b, 0); return err }},
		{"U8 negative", func() error { _, err := U8(b, -1); return err }},
	}
	for _, tc := range cases {
		if err := tc.fn(); !errors.Is(err, ErrShortSlice) {
			t.Errorf("%s: err = %v, want ErrShortSlice", tc.name, err)
		}
	}
}

func TestUncheckedReadsMatchChecked(t *testing.T) {
	b := []byte{0xff, 0x80, 0x00, 0x7f}
	if got, want := U16Unchecked(b, 0), uint16(0xff80); got != want {
		t.Errorf("U16Unchecked = %#x, want %#x", got, want)
	}
	if got, want := I16Unchecked(b, 0), int16(-128); got != want {
		t.Errorf("I16Unchecked = %d, want %d", got, want)
	}
	if got, want := U32Unchecked(b, 0), uint32(0xff80007f); got != want {
		t.Errorf("U32Unchecked = %#x, want %#x", got, want)
	}
}
