// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package sfnt

import (
	"github.com/nigeltao/sfntlite/sfnt/internal/raw"
)

// Flags for decoding a glyph's contours, documented at
// http://developer.apple.com/fonts/TTRefMan/RM06/Chap6glyf.html.
const (
	flagOnCurve = 1 << iota
	flagXShortVector
	flagYShortVector
	flagRepeat
	flagPositiveXShortVector
	flagPositiveYShortVector
)

// The same flag bits (0x10 and 0x20) are overloaded to mean "this
// coordinate repeats the previous one" when the corresponding ShortVector
// bit is clear.
const (
	flagThisXIsSame = flagPositiveXShortVector
	flagThisYIsSame = flagPositiveYShortVector
)

// A Point is a coordinate pair plus whether it lies on the contour (as
// opposed to being a quadratic Bézier control point), in font units.
type Point struct {
	X, Y    float64
	OnCurve bool
}

// SimpleGlyph holds a simple (non-composite) glyph's bounding box and
// decoded point stream, grouped into contours.
type SimpleGlyph struct {
	Bounds Bounds
	// Contours[i] is the i'th contour's points, in order.
	Contours [][]Point
}

// A TTGlyph is either a simple outline or a composite reference to other
// glyphs. Composite glyphs are out of scope: Face.Glyph reports one with
// Composite set and no outline, and ScaledFace.Glyph fails with
// UnimplementedError.
type TTGlyph struct {
	Simple    *SimpleGlyph
	Composite bool
}

// Glyph decodes the TrueType outline for gid. An empty glyph (loca's start
// and end offsets equal, e.g. the space glyph) returns a SimpleGlyph with
// zero contours and a zeroed bounding box.
func (f *Face) Glyph(gid GlyphID) (TTGlyph, error) {
	if f.outline != OutlineTrueType {
		return TTGlyph{}, UnimplementedError("CFF support")
	}
	start, end, err := f.loca.glyphRange(gid)
	if err != nil {
		return TTGlyph{}, err
	}
	if start == end {
		return TTGlyph{Simple: &SimpleGlyph{}}, nil
	}
	if end > uint32(len(f.glyf)) {
		return TTGlyph{}, invalidf("glyph %d: loca range [%d,%d) beyond glyf length %d", gid, start, end, len(f.glyf))
	}
	return glyphAt(f.glyf[start:end])
}

// glyphAt decodes the glyph body starting at the beginning of b.
func glyphAt(b []byte) (TTGlyph, error) {
	if len(b) < 10 {
		return TTGlyph{}, invalidf("glyf entry too short (%d bytes, want >= 10)", len(b))
	}
	numContours, err := raw.I16(b, 0)
	if err != nil {
		return TTGlyph{}, invalidf("%v", err)
	}
	bounds := Bounds{
		XMin: raw.I16Unchecked(b, 2),
		YMin: raw.I16Unchecked(b, 4),
		XMax: raw.I16Unchecked(b, 6),
		YMax: raw.I16Unchecked(b, 8),
	}
	if numContours < 0 {
		return TTGlyph{Composite: true}, nil
	}
	sg, err := decodeSimpleGlyph(b[10:], int(numContours), bounds)
	if err != nil {
		return TTGlyph{}, err
	}
	return TTGlyph{Simple: sg}, nil
}

// decodeSimpleGlyph walks the endPtsOfContours / instructions / flags /
// x-coordinates / y-coordinates streams of a simple glyph body (everything
// after the 10-byte header already consumed by glyphAt).
func decodeSimpleGlyph(b []byte, numContours int, bounds Bounds) (*SimpleGlyph, error) {
	offset := 0
	contourEnds := make([]int, numContours)
	for i := 0; i < numContours; i++ {
		v, err := raw.U16(b, offset)
		if err != nil {
			return nil, invalidf("glyf: short endPtsOfContours: %v", err)
		}
		contourEnds[i] = int(v)
		offset += 2
	}
	numPoints := 0
	if numContours > 0 {
		numPoints = contourEnds[numContours-1] + 1
	}

	instrLen, err := raw.U16(b, offset)
	if err != nil {
		return nil, invalidf("glyf: short instructionLength: %v", err)
	}
	offset += 2 + int(instrLen)

	// Decode the run-length-encoded flag stream.
	flags := make([]uint8, numPoints)
	for i := 0; i < numPoints; {
		c, err := raw.U8(b, offset)
		if err != nil {
			return nil, invalidf("glyf: short flags: %v", err)
		}
		offset++
		flags[i] = c
		i++
		if c&flagRepeat != 0 {
			count, err := raw.U8(b, offset)
			if err != nil {
				return nil, invalidf("glyf: short flag repeat count: %v", err)
			}
			offset++
			for ; count > 0 && i < numPoints; count-- {
				flags[i] = c
				i++
			}
		}
	}

	xs := make([]int32, numPoints)
	var x int32
	for i := 0; i < numPoints; i++ {
		fl := flags[i]
		switch {
		case fl&flagXShortVector != 0:
			dx, err := raw.U8(b, offset)
			if err != nil {
				return nil, invalidf("glyf: short x coordinate: %v", err)
			}
			offset++
			if fl&flagPositiveXShortVector == 0 {
				x -= int32(dx)
			} else {
				x += int32(dx)
			}
		case fl&flagThisXIsSame == 0:
			dx, err := raw.I16(b, offset)
			if err != nil {
				return nil, invalidf("glyf: short x delta: %v", err)
			}
			offset += 2
			x += int32(dx)
		}
		xs[i] = x
	}

	ys := make([]int32, numPoints)
	var y int32
	for i := 0; i < numPoints; i++ {
		fl := flags[i]
		switch {
		case fl&flagYShortVector != 0:
			dy, err := raw.U8(b, offset)
			if err != nil {
				return nil, invalidf("glyf: short y coordinate: %v", err)
			}
			offset++
			if fl&flagPositiveYShortVector == 0 {
				y -= int32(dy)
			} else {
				y += int32(dy)
			}
		case fl&flagThisYIsSame == 0:
			dy, err := raw.I16(b, offset)
			if err != nil {
				return nil, invalidf("glyf: short y delta: %v", err)
			}
			offset += 2
			y += int32(dy)
		}
		ys[i] = y
	}

	contours := make([][]Point, numContours)
	p0 := 0
	for i, end := range contourEnds {
		pts := make([]Point, 0, end-p0+1)
		for j := p0; j <= end; j++ {
			pts = append(pts, Point{
				X:       float64(xs[j]),
				Y:       float64(ys[j]),
				OnCurve: flags[j]&flagOnCurve != 0,
			})
		}
		contours[i] = pts
		p0 = end + 1
	}

	return &SimpleGlyph{Bounds: bounds, Contours: contours}, nil
}
