// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

// Package raw provides bounds-checked big-endian integer reads over byte
// slices, the low-level primitive that every sfnt table view builds on.
package raw

import "fmt"

// ErrShortSlice is wrapped into every bounds-violation error returned by the
// checked accessors below.
var ErrShortSlice = fmt.Errorf("raw: slice too short")

// U8 reads an unsigned byte at off, failing if off is out of bounds.
func U8(b []byte, off int) (uint8, error) {
	if off < 0 || off+1 > len(b) {
		return 0, fmt.Errorf("%w: u8 at %d (len %d)", ErrShortSlice, off, len(b))
	}
	return b[off], nil
}

// U16 reads a big-endian uint16 at off, failing if off+2 exceeds len(b).
func U16(b []byte, off int) (uint16, error) {
	if off < 0 || off+2 > len(b) {
		return 0, fmt.Errorf("%w: u16 at %d (len %d)", ErrShortSlice, off, len(b))
	}
	return u16(b, off), nil
}

// I16 reads a big-endian int16 at off, failing if off+2 exceeds len(b).
func I16(b []byte, off int) (int16, error) {
	u, err := U16(b, off)
	return int16(u), err
}

// U32 reads a big-endian uint32 at off, failing if off+4 exceeds len(b).
func U32(b []byte, off int) (uint32, error) {
	if off < 0 || off+4 > len(b) {
		return 0, fmt.Errorf("%w: u32 at %d (len %d)", ErrShortSlice, off, len(b))
	}
	return u32(b, off), nil
}

// u8, u16, u32, i16 are unchecked siblings of the functions above, for use
// in inner loops where the caller has already proven the largest offset the
// loop will touch lies within b (e.g. after a single enclosing length check
// before a flag/coordinate decoding loop).
func u8(b []byte, off int) uint8 { return b[off] }

func u16(b []byte, off int) uint16 {
	return uint16(b[off])<<8 | uint16(b[off+1])
}

func i16(b []byte, off int) int16 { return int16(u16(b, off)) }

func u32(b []byte, off int) uint32 {
	return uint32(b[off])<<24 | uint32(b[off+1])<<16 | uint32(b[off+2])<<8 | uint32(b[off+3])
}

// U8Unchecked, U16Unchecked, I16Unchecked and U32Unchecked expose the
// unchecked reads above to other packages in this module. They panic (via a
// slice index out-of-range) rather than return an error if misused; callers
// must validate bounds once at the enclosing scope before looping.
func U8Unchecked(b []byte, off int) uint8   { return u8(b, off) }
func U16Unchecked(b []byte, off int) uint16 { return u16(b, off) }
func I16Unchecked(b []byte, off int) int16  { return i16(b, off) }
func U32Unchecked(b []byte, off int) uint32 { return u32(b, off) }
