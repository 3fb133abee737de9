// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package sfnt

import (
	"sort"

	"github.com/nigeltao/sfntlite/sfnt/internal/raw"
)

// Outline identifies the glyph outline format a Face's sfnt version
// declares.
type Outline int

const (
	// OutlineTrueType means glyphs are decoded from the glyf/loca tables.
	OutlineTrueType Outline = iota
	// OutlineCFF means glyphs are PostScript/CFF outlines, which this
	// library does not decode (out of scope).
	OutlineCFF
)

func (o Outline) String() string {
	switch o {
	case OutlineTrueType:
		return "TrueType"
	case OutlineCFF:
		return "CFF"
	}
	return "unknown"
}

// A Face is a bundle of borrowed byte slices indexed by four-byte tag,
// plus the parsed head/hhea/maxp/hmtx/cmap views every face requires.
type Face struct {
	tables map[Tag][]byte

	outline Outline

	head head
	hhea hhea
	maxp maxp
	hmtx hmtx
	cmap cmap

	loca loca
	glyf []byte

	name []byte
}

// parseFace reads the offset table at off within data and builds a Face.
func parseFace(data []byte, off int) (*Face, error) {
	version, err := raw.U32(data, off)
	if err != nil {
		return nil, invalidf("%v", err)
	}
	numTables, err := raw.U16(data, off+4)
	if err != nil {
		return nil, invalidf("%v", err)
	}

	tables := make(map[Tag][]byte, numTables)
	recBase := off + 12
	for i := 0; i < int(numTables); i++ {
		rec := recBase + 16*i
		tagBits, err := raw.U32(data, rec)
		if err != nil {
			return nil, invalidf("short table record: %v", err)
		}
		tableOffset, err := raw.U32(data, rec+8)
		if err != nil {
			return nil, invalidf("short table record: %v", err)
		}
		tableLength, err := raw.U32(data, rec+12)
		if err != nil {
			return nil, invalidf("short table record: %v", err)
		}
		end := uint64(tableOffset) + uint64(tableLength)
		if end > uint64(len(data)) {
			return nil, invalidf("table %s extends beyond end of file (offset %d, length %d, file %d)",
				Tag(tagBits), tableOffset, tableLength, len(data))
		}
		tables[Tag(tagBits)] = data[tableOffset : tableOffset+tableLength : tableOffset+tableLength]
	}

	f := &Face{tables: tables}

	required := [...]Tag{tagHead, tagHhea, tagMaxp, tagHmtx, tagCmap}
	for _, t := range required {
		if _, ok := tables[t]; !ok {
			return nil, invalidf("missing required table %q", t.String())
		}
	}

	if f.head, err = parseHead(tables[tagHead]); err != nil {
		return nil, err
	}
	if f.maxp, err = parseMaxp(tables[tagMaxp]); err != nil {
		return nil, err
	}
	if f.hhea, err = parseHhea(tables[tagHhea]); err != nil {
		return nil, err
	}
	if f.hmtx, err = parseHmtx(tables[tagHmtx], f.maxp.numGlyphs, f.hhea.numOfHMetrics); err != nil {
		return nil, err
	}
	if f.cmap, err = parseCmap(tables[tagCmap]); err != nil {
		return nil, err
	}
	f.name = tables[tagName] // optional

	switch Tag(version) {
	case sfntVersionTrueType:
		f.outline = OutlineTrueType
		locaTable, ok := tables[tagLoca]
		if !ok {
			return nil, invalidf("missing required table \"loca\"")
		}
		glyfTable, ok := tables[tagGlyf]
		if !ok {
			return nil, invalidf("missing required table \"glyf\"")
		}
		f.loca, err = parseLoca(locaTable, f.head.indexToLocFormat, f.maxp.numGlyphs)
		if err != nil {
			return nil, err
		}
		f.glyf = glyfTable
	case sfntVersionCFF:
		f.outline = OutlineCFF
	default:
		return nil, invalidf("unrecognized sfnt version 0x%08x", version)
	}

	return f, nil
}

// Outline reports whether this face's glyphs are TrueType or CFF outlines.
func (f *Face) Outline() Outline { return f.outline }

// NumGlyphs returns maxp's num_glyphs.
func (f *Face) NumGlyphs() int { return f.maxp.numGlyphs }

// UnitsPerEm returns head's units_per_em.
func (f *Face) UnitsPerEm() int { return f.head.unitsPerEm }

// Bounds returns head's font-wide bounding box, in font units.
func (f *Face) Bounds() Bounds { return f.head.bounds }

// Ascender and Descender return hhea's vertical metrics, in font units.
func (f *Face) Ascender() int16  { return f.hhea.ascender }
func (f *Face) Descender() int16 { return f.hhea.descender }

// TableTags returns the tags of every table present in the face's
// directory, sorted alphabetically.
func (f *Face) TableTags() []Tag {
	tags := make([]Tag, 0, len(f.tables))
	for t := range f.tables {
		tags = append(tags, t)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i].String() < tags[j].String() })
	return tags
}

// Table returns the raw bytes of the named table, or (nil, false) if the
// face has no such table.
func (f *Face) Table(t Tag) ([]byte, bool) {
	b, ok := f.tables[t]
	return b, ok
}

// SetActiveSubtable overrides the cmap subtable selected by the default
// preference policy at load time. See cmap.go for that policy.
func (f *Face) SetActiveSubtable(platformID, encodingID uint16) bool {
	for i := range f.cmap.subtables {
		s := &f.cmap.subtables[i]
		if s.platformID == platformID && s.encodingID == encodingID {
			f.cmap.active = s
			return true
		}
	}
	return false
}
