// Copyright 2015 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package sfnt

import (
	"encoding/binary"
	"sort"
)

func putU16(b []byte, off int, v uint16) { binary.BigEndian.PutUint16(b[off:], v) }
func putI16(b []byte, off int, v int)    { binary.BigEndian.PutUint16(b[off:], uint16(int16(v))) }
func putU32(b []byte, off int, v uint32) { binary.BigEndian.PutUint32(b[off:], v) }

// assembleFont packs named 4-byte tables into a minimal sfnt container:
// an offset table, a table directory sorted by tag, and the concatenated
// table bodies. Table checksums are left zero; this package never verifies
// them.
func assembleFont(tables map[string][]byte) []byte {
	return assembleFontVersion(0x00010000, tables)
}

// assembleFontVersion is assembleFont with an explicit sfnt version, for
// packing OTTO (CFF) containers as well as plain TrueType ones.
func assembleFontVersion(version uint32, tables map[string][]byte) []byte {
	tags := make([]string, 0, len(tables))
	for t := range tables {
		tags = append(tags, t)
	}
	sort.Strings(tags)

	headerLen := 12 + 16*len(tags)
	header := make([]byte, headerLen)
	putU32(header, 0, version)
	putU16(header, 4, uint16(len(tags)))

	body := make([]byte, 0, 512)
	for i, tag := range tags {
		rec := header[12+16*i:]
		copy(rec[0:4], tag)
		putU32(rec, 8, uint32(headerLen+len(body)))
		putU32(rec, 12, uint32(len(tables[tag])))
		body = append(body, tables[tag]...)
	}
	return append(header, body...)
}

// buildTestCmap returns a format 4 subtable, platform 3 / encoding 1,
// mapping 'A' (0x41) to glyph 1 and everything else to glyph 0.
func buildTestCmap() []byte {
	const segCount = 2
	subLen := 16 + 8*segCount
	sub := make([]byte, subLen)
	putU16(sub, 0, 4)
	putU16(sub, 2, uint16(subLen))
	putU16(sub, 4, 0)
	putU16(sub, 6, 2*segCount)
	putU16(sub, 8, 4)
	putU16(sub, 10, 1)
	putU16(sub, 12, 0)

	endBase := 14
	startBase := 16 + 2*segCount
	deltaBase := startBase + 2*segCount
	rangeBase := deltaBase + 2*segCount

	putU16(sub, endBase+0, 0x41)
	putU16(sub, endBase+2, 0xffff)
	putU16(sub, startBase+0, 0x41)
	putU16(sub, startBase+2, 0xffff)
	putI16(sub, deltaBase+0, 1-0x41)
	putI16(sub, deltaBase+2, 1)
	putU16(sub, rangeBase+0, 0)
	putU16(sub, rangeBase+2, 0)

	header := make([]byte, 12)
	putU16(header, 0, 0)
	putU16(header, 2, 1)
	putU16(header, 4, 3)
	putU16(header, 6, 1)
	putU32(header, 8, uint32(len(header)))
	return append(header, sub...)
}

// utf16BE encodes an ASCII-only string as big-endian UTF-16 code units.
func utf16BE(s string) []byte {
	out := make([]byte, 0, 2*len(s))
	for _, r := range s {
		out = append(out, byte(r>>8), byte(r))
	}
	return out
}

// buildTestName returns a name table with a single platform 3 / encoding 1
// full-font-name (ID 4) record.
func buildTestName(s string) []byte {
	body := utf16BE(s)
	header := make([]byte, 18)
	putU16(header, 0, 0)
	putU16(header, 2, 1)
	putU16(header, 4, uint16(len(header)))
	rec := header[6:]
	putU16(rec, 0, 3)
	putU16(rec, 2, 1)
	putU16(rec, 4, 0)
	putU16(rec, 6, nameIDFullFontName)
	putU16(rec, 8, uint16(len(body)))
	putU16(rec, 10, 0)
	return append(header, body...)
}

// buildTestFont assembles a minimal, valid single-face TrueType font: two
// glyphs (gid 0 is .notdef, empty; gid 1 is a 200x200 unit triangle mapped
// from 'A'), 1000 units per em, long-format loca.
func buildTestFont() []byte {
	head := make([]byte, 54)
	putU32(head, 12, 0x5F0F3CF5)
	putU16(head, 18, 1000)
	putI16(head, 36, 0)
	putI16(head, 38, 0)
	putI16(head, 40, 200)
	putI16(head, 42, 200)
	putU16(head, 46, 8)
	putU16(head, 50, 1) // long loca format

	hhea := make([]byte, 36)
	putI16(hhea, 4, 800)
	putI16(hhea, 6, -200)
	putU16(hhea, 34, 2)

	maxp := make([]byte, 6)
	putU16(maxp, 4, 2)

	hmtx := make([]byte, 8)
	putU16(hmtx, 0, 0)
	putI16(hmtx, 2, 0)
	putU16(hmtx, 4, 600)
	putI16(hmtx, 6, 50)

	glyf := make([]byte, 23)
	putI16(glyf, 0, 1) // numContours
	putI16(glyf, 2, 0)
	putI16(glyf, 4, 0)
	putI16(glyf, 6, 200)
	putI16(glyf, 8, 200)
	putU16(glyf, 10, 2) // endPtsOfContours[0]
	putU16(glyf, 12, 0) // instructionLength
	glyf[14], glyf[15], glyf[16] = 55, 55, 39
	glyf[17], glyf[18], glyf[19] = 0, 200, 100
	glyf[20], glyf[21], glyf[22] = 0, 0, 200

	loca := make([]byte, 12)
	putU32(loca, 0, 0)
	putU32(loca, 4, 0)
	putU32(loca, 8, uint32(len(glyf)))

	return assembleFont(map[string][]byte{
		"cmap": buildTestCmap(),
		"glyf": glyf,
		"head": head,
		"hhea": hhea,
		"hmtx": hmtx,
		"loca": loca,
		"maxp": maxp,
		"name": buildTestName("Test Font"),
	})
}
