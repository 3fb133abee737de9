// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package sfnt

// A Tag is a 32-bit big-endian packed ASCII table or sfnt-version
// identifier, e.g. the four bytes "glyf" or "OTTO".
type Tag uint32

// MakeTag packs the first four bytes of s into a Tag. s shorter than four
// bytes is padded with zero bytes.
func MakeTag(s string) Tag {
	var b [4]byte
	copy(b[:], s)
	return Tag(uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]))
}

// String renders the Tag back to its four ASCII characters.
func (t Tag) String() string {
	return string([]byte{
		byte(t >> 24),
		byte(t >> 16),
		byte(t >> 8),
		byte(t),
	})
}

const (
	tagHead = Tag(0x68656164) // "head"
	tagHhea = Tag(0x68686561) // "hhea"
	tagMaxp = Tag(0x6d617870) // "maxp"
	tagHmtx = Tag(0x686d7478) // "hmtx"
	tagCmap = Tag(0x636d6170) // "cmap"
	tagLoca = Tag(0x6c6f6361) // "loca"
	tagGlyf = Tag(0x676c7966) // "glyf"
	tagName = Tag(0x6e616d65) // "name"

	sfntVersionTrueType = Tag(0x00010000)
	sfntVersionCFF      = Tag(0x4f54544f) // "OTTO"
	sfntVersionTTC      = Tag(0x74746366) // "ttcf"
)
