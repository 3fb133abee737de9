// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package sfnt

import (
	"fmt"

	"github.com/nigeltao/sfntlite/sfnt/internal/raw"
)

// A Bounds holds the co-ordinate range of one or more glyphs. The endpoints
// are inclusive.
type Bounds struct {
	XMin, YMin, XMax, YMax int16
}

// locaFormat identifies whether loca stores half-offsets (Off16) or byte
// offsets (Off32).
type locaFormat int

const (
	locaOff16 locaFormat = iota
	locaOff32
)

type head struct {
	unitsPerEm       int
	bounds           Bounds
	lowestRecPPEM    uint16
	indexToLocFormat locaFormat
}

// The head table is a fixed 54-byte layout; unitsPerEm sits at +18,
// the bbox quad at +36, lowestRecPPEM at +46, indexToLocFormat at +50.
func parseHead(b []byte) (head, error) {
	if len(b) < 54 {
		return head{}, invalidf("head table too short (%d bytes, want 54)", len(b))
	}
	var h head
	upe := raw.U16Unchecked(b, 18)
	if upe == 0 {
		return head{}, invalidf("head: units_per_em must be > 0")
	}
	h.unitsPerEm = int(upe)
	h.bounds = Bounds{
		XMin: raw.I16Unchecked(b, 36),
		YMin: raw.I16Unchecked(b, 38),
		XMax: raw.I16Unchecked(b, 40),
		YMax: raw.I16Unchecked(b, 42),
	}
	h.lowestRecPPEM = raw.U16Unchecked(b, 46)
	switch raw.U16Unchecked(b, 50) {
	case 0:
		h.indexToLocFormat = locaOff16
	case 1:
		h.indexToLocFormat = locaOff32
	default:
		return head{}, invalidf("head: bad index_to_loc_format %d", raw.U16Unchecked(b, 50))
	}
	return h, nil
}

// LowestRecPPEM returns head's lowest_rec_ppem.
func (f *Face) LowestRecPPEM() uint16 { return f.head.lowestRecPPEM }

type hhea struct {
	ascender      int16
	descender     int16
	numOfHMetrics int
}

// The hhea table is a fixed 36-byte layout; ascender/descender sit at +4/+6,
// numOfHMetrics at +34.
func parseHhea(b []byte) (hhea, error) {
	if len(b) < 36 {
		return hhea{}, invalidf("hhea table too short (%d bytes, want 36)", len(b))
	}
	n := raw.U16Unchecked(b, 34)
	if n == 0 {
		return hhea{}, invalidf("hhea: num_of_h_metrics must be >= 1")
	}
	return hhea{
		ascender:      raw.I16Unchecked(b, 4),
		descender:     raw.I16Unchecked(b, 6),
		numOfHMetrics: int(n),
	}, nil
}

type maxp struct {
	numGlyphs int
}

// maxp's num_glyphs sits at +4; both the legacy 0.5 layout (6 bytes) and the
// 1.0 layout (32 bytes) place it there.
func parseMaxp(b []byte) (maxp, error) {
	if len(b) < 6 {
		return maxp{}, invalidf("maxp table too short (%d bytes, want >= 6)", len(b))
	}
	return maxp{numGlyphs: int(raw.U16Unchecked(b, 4))}, nil
}

// HMetric is a glyph's horizontal metrics: its advance width and left side
// bearing, both in font units.
type HMetric struct {
	AdvanceWidth    uint16
	LeftSideBearing int16
}

type hmtx struct {
	data          []byte
	numGlyphs     int
	numOfHMetrics int
}

func parseHmtx(b []byte, numGlyphs, numOfHMetrics int) (hmtx, error) {
	want := 4*numOfHMetrics + 2*(numGlyphs-numOfHMetrics)
	if len(b) < want {
		return hmtx{}, invalidf("hmtx table too short (%d bytes, want %d)", len(b), want)
	}
	return hmtx{data: b, numGlyphs: numGlyphs, numOfHMetrics: numOfHMetrics}, nil
}

func (h hmtx) metric(gid GlyphID) (HMetric, error) {
	id := int(gid)
	if id < 0 || id >= h.numGlyphs {
		return HMetric{}, fmt.Errorf("%w: glyph %d, have %d glyphs", ErrGlyphIDOutOfBounds, id, h.numGlyphs)
	}
	if id < h.numOfHMetrics {
		return HMetric{
			AdvanceWidth:    raw.U16Unchecked(h.data, 4*id),
			LeftSideBearing: raw.I16Unchecked(h.data, 4*id+2),
		}, nil
	}
	lastLong := 4 * (h.numOfHMetrics - 1)
	trailing := 4*h.numOfHMetrics + 2*(id-h.numOfHMetrics)
	return HMetric{
		AdvanceWidth:    raw.U16Unchecked(h.data, lastLong),
		LeftSideBearing: raw.I16Unchecked(h.data, trailing),
	}, nil
}

// HMetric returns the advance width and left side bearing for gid.
func (f *Face) HMetric(gid GlyphID) (HMetric, error) {
	return f.hmtx.metric(gid)
}

type loca struct {
	data      []byte
	format    locaFormat
	numGlyphs int
}

func parseLoca(b []byte, format locaFormat, numGlyphs int) (loca, error) {
	var want int
	if format == locaOff16 {
		want = 2 * (numGlyphs + 1)
	} else {
		want = 4 * (numGlyphs + 1)
	}
	if len(b) < want {
		return loca{}, invalidf("loca table too short (%d bytes, want %d)", len(b), want)
	}
	return loca{data: b, format: format, numGlyphs: numGlyphs}, nil
}

// offset returns the byte offset into glyf for gid.
func (l loca) offset(gid GlyphID) (uint32, error) {
	id := int(gid)
	if id < 0 || id >= l.numGlyphs {
		return 0, fmt.Errorf("%w: glyph %d, have %d glyphs", ErrGlyphIDOutOfBounds, id, l.numGlyphs)
	}
	if l.format == locaOff16 {
		return 2 * uint32(raw.U16Unchecked(l.data, 2*id)), nil
	}
	return raw.U32Unchecked(l.data, 4*id), nil
}

// glyphRange returns the [start, end) byte range of gid's entry in glyf.
// start == end means the glyph is empty (no outline, e.g. the space glyph).
func (l loca) glyphRange(gid GlyphID) (start, end uint32, err error) {
	start, err = l.offset(gid)
	if err != nil {
		return 0, 0, err
	}
	next, err := l.offsetUnbounded(int(gid) + 1)
	if err != nil {
		return 0, 0, err
	}
	return start, next, nil
}

// offsetUnbounded allows reading the (numGlyphs)'th sentinel entry, which
// loca always stores one extra of, but which offset() rejects as out of
// bounds since it is not a valid GlyphID.
func (l loca) offsetUnbounded(id int) (uint32, error) {
	if id < 0 || id > l.numGlyphs {
		return 0, fmt.Errorf("%w: glyph %d, have %d glyphs", ErrGlyphIDOutOfBounds, id, l.numGlyphs)
	}
	if l.format == locaOff16 {
		return 2 * uint32(raw.U16Unchecked(l.data, 2*id)), nil
	}
	return raw.U32Unchecked(l.data, 4*id), nil
}
