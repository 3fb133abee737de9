// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package sfnt

import (
	"github.com/nigeltao/sfntlite/sfnt/internal/raw"
)

// A GlyphID is a Face's index of a glyph. GlyphID(0) is the "missing glyph"
// (a.k.a. ".notdef") sentinel, a legal, non-error result from a codepoint
// lookup.
type GlyphID uint32

// A cmapSubtable is one (platform_id, encoding_id) entry in the cmap
// table's subtable directory.
type cmapSubtable struct {
	platformID, encodingID uint16
	data                   []byte
}

// format reads the subtable's leading format field.
func (s cmapSubtable) format() (uint16, error) {
	return raw.U16(s.data, 0)
}

type cmap struct {
	subtables []cmapSubtable
	active    *cmapSubtable
}

// parseCmap parses the cmap subtable directory and selects the active
// subtable by the load-time preference policy (which
// Face.SetActiveSubtable can override): the first (3, 10) Windows UCS-4
// record is preferred above all others; absent that, the first (3, 1)
// Windows Unicode-BMP record is used.
func parseCmap(b []byte) (cmap, error) {
	if len(b) < 4 {
		return cmap{}, invalidf("cmap table too short (%d bytes, want >= 4)", len(b))
	}
	numTables, err := raw.U16(b, 2)
	if err != nil {
		return cmap{}, invalidf("%v", err)
	}
	if len(b) < 4+8*int(numTables) {
		return cmap{}, invalidf("cmap table too short for %d subtable records", numTables)
	}

	c := cmap{subtables: make([]cmapSubtable, numTables)}
	var preferred31, found3_10 bool
	for i := 0; i < int(numTables); i++ {
		recOff := 4 + 8*i
		platformID, err := raw.U16(b, recOff)
		if err != nil {
			return cmap{}, invalidf("%v", err)
		}
		encodingID, err := raw.U16(b, recOff+2)
		if err != nil {
			return cmap{}, invalidf("%v", err)
		}
		subOff, err := raw.U32(b, recOff+4)
		if err != nil {
			return cmap{}, invalidf("%v", err)
		}
		if int(subOff) > len(b) {
			return cmap{}, invalidf("cmap subtable offset %d beyond table end (%d)", subOff, len(b))
		}
		c.subtables[i] = cmapSubtable{
			platformID: platformID,
			encodingID: encodingID,
			data:       b[subOff:],
		}

		switch {
		case platformID == 3 && encodingID == 10 && !found3_10:
			c.active = &c.subtables[i]
			found3_10 = true
		case platformID == 3 && encodingID == 1 && !preferred31 && !found3_10:
			c.active = &c.subtables[i]
			preferred31 = true
		}
	}
	return c, nil
}

// GlyphIndex resolves a Unicode codepoint to a GlyphID via the face's
// active cmap subtable. It returns ErrNoCharmap if the face has no active
// subtable, and GlyphID(0) (not an error) for an unmapped codepoint.
func (f *Face) GlyphIndex(codepoint rune) (GlyphID, error) {
	if f.cmap.active == nil {
		return 0, ErrNoCharmap
	}
	format, err := f.cmap.active.format()
	if err != nil {
		return 0, invalidf("%v", err)
	}
	switch format {
	case 4:
		return lookupFormat4(f.cmap.active.data, uint32(codepoint))
	case 12:
		return lookupFormat12(f.cmap.active.data, uint32(codepoint))
	default:
		// Any other format: not implemented, but not a hard error either;
		// treated as "not mapped" per the resolver's contract.
		return 0, nil
	}
}

// lookupFormat4 implements the format 4 (segment mapping to delta values)
// subtable lookup algorithm.
func lookupFormat4(d []byte, codepoint uint32) (GlyphID, error) {
	if codepoint > 0xffff {
		return 0, nil
	}
	segCountX2, err := raw.U16(d, 6)
	if err != nil {
		return 0, invalidf("%v", err)
	}
	if len(d) < 16+4*int(segCountX2) {
		return 0, invalidf("cmap format 4: body too short for segCountX2 %d", segCountX2)
	}
	c := uint16(codepoint)
	for off := 0; off < int(segCountX2); off += 2 {
		endCode := raw.U16Unchecked(d, 14+off)
		if c > endCode {
			continue
		}
		startCode := raw.U16Unchecked(d, 16+int(segCountX2)+off)
		if c < startCode {
			break
		}
		idDelta := raw.U16Unchecked(d, 16+2*int(segCountX2)+off)
		idRangeOffset := raw.U16Unchecked(d, 16+3*int(segCountX2)+off)
		if idRangeOffset == 0 {
			return GlyphID(uint32(c)+uint32(idDelta)) & 0xffff, nil
		}
		glyphArrayByteOffset := int(idRangeOffset) + int(c-startCode)*2 + (16 + 3*int(segCountX2) + off)
		g, err := raw.U16(d, glyphArrayByteOffset)
		if err != nil {
			return 0, invalidf("cmap format 4: glyph id array read: %v", err)
		}
		if g == 0 {
			return 0, nil
		}
		return GlyphID(uint32(g)+uint32(idDelta)) & 0xffff, nil
	}
	return 0, nil
}

// lookupFormat12 implements the format 12 (segmented coverage) subtable
// lookup algorithm.
func lookupFormat12(d []byte, codepoint uint32) (GlyphID, error) {
	numGroups, err := raw.U32(d, 12)
	if err != nil {
		return 0, invalidf("%v", err)
	}
	if uint64(len(d)) < 16+12*uint64(numGroups) {
		return 0, invalidf("cmap format 12: body too short for %d groups", numGroups)
	}
	for i := uint32(0); i < numGroups; i++ {
		off := 16 + 12*int(i)
		startCharCode := raw.U32Unchecked(d, off)
		if codepoint < startCharCode {
			break
		}
		endCharCode := raw.U32Unchecked(d, off+4)
		if codepoint > endCharCode {
			continue
		}
		startGlyphID := raw.U32Unchecked(d, off+8)
		return GlyphID(codepoint - startCharCode + startGlyphID), nil
	}
	return 0, nil
}

// ActiveSubtableKind reports the (platform_id, encoding_id, format) of the
// face's currently active cmap subtable, for diagnostics and tests. ok is
// false if no subtable is active.
func (f *Face) ActiveSubtableKind() (platformID, encodingID, format uint16, ok bool) {
	if f.cmap.active == nil {
		return 0, 0, 0, false
	}
	fmtVal, err := f.cmap.active.format()
	if err != nil {
		return 0, 0, 0, false
	}
	return f.cmap.active.platformID, f.cmap.active.encodingID, fmtVal, true
}
