// Copyright 2015 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

// Package truetype adapts a github.com/nigeltao/sfntlite/sfnt.Face onto
// golang.org/x/image/font's Face interface, so this library remains a
// drop-in for existing golang.org/x/image/font-based text drawers.
package truetype

import (
	"image"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/nigeltao/sfntlite/sfnt"
)

// Options are optional arguments to NewFace.
type Options struct {
	// Size is the font size in points, as in "a 10 point font size".
	//
	// A zero value means to use a 12 point font size.
	Size float64

	// DPI is the dots-per-inch resolution.
	//
	// A zero value means to use 72 DPI.
	DPI float64

	// Hinting is accepted for API compatibility with earlier versions of
	// this package. TrueType instruction hinting is out of scope for this
	// library's glyph decoder, so any value other than font.HintingNone is
	// ignored.
	Hinting font.Hinting
}

func (o *Options) size() float64 {
	if o != nil && o.Size > 0 {
		return o.Size
	}
	return 12
}

func (o *Options) dpi() float64 {
	if o != nil && o.DPI > 0 {
		return o.DPI
	}
	return 72
}

// NewFace returns a new font.Face backed by f.
func NewFace(f *sfnt.Face, opts *Options) font.Face {
	return &face{sf: f.Scale(opts.size(), opts.size(), opts.dpi(), opts.dpi())}
}

type face struct {
	sf *sfnt.ScaledFace
}

// Close satisfies the font.Face interface.
func (a *face) Close() error { return nil }

// Kern satisfies the font.Face interface. This library does not decode the
// kern table (out of scope), so Kern always returns zero.
func (a *face) Kern(r0, r1 rune) fixed.Int26_6 { return 0 }

// Glyph satisfies the font.Face interface. The returned rectangle places
// the mask so that the glyph's origin sits on the baseline at dot,
// honoring the glyph's side bearings.
func (a *face) Glyph(dot fixed.Point26_6, r rune) (
	dr image.Rectangle, mask image.Image, maskp image.Point, advance fixed.Int26_6, ok bool) {

	bmp, origin, advance, ok := a.rasterize(r)
	if !ok {
		return image.Rectangle{}, nil, image.Point{}, 0, false
	}
	mi := &image.Alpha{Pix: bmp.Data, Stride: bmp.Width, Rect: image.Rect(0, 0, bmp.Width, bmp.Height)}
	ix, iy := dot.X.Floor()+origin.X, dot.Y.Floor()+origin.Y
	dr = image.Rect(ix, iy, ix+bmp.Width, iy+bmp.Height)
	return dr, mi, image.Point{}, advance, true
}

// GlyphBounds satisfies the font.Face interface.
func (a *face) GlyphBounds(r rune) (bounds fixed.Rectangle26_6, advance fixed.Int26_6, ok bool) {
	gid, err := a.sf.GlyphIndex(r)
	if err != nil {
		return fixed.Rectangle26_6{}, 0, false
	}
	g, err := a.sf.Glyph(gid)
	if err != nil {
		return fixed.Rectangle26_6{}, 0, false
	}
	b := g.Bounds()
	sx, sy := a.sf.PixelsPerFUnit()
	fx := func(funits int16, s float64) fixed.Int26_6 {
		return fixed.Int26_6(float64(funits) * s * 64)
	}
	return fixed.Rectangle26_6{
		Min: fixed.Point26_6{X: fx(b.XMin, sx), Y: fx(-b.YMax, sy)},
		Max: fixed.Point26_6{X: fx(b.XMax, sx), Y: fx(-b.YMin, sy)},
	}, a.advanceOf(gid), true
}

// GlyphAdvance satisfies the font.Face interface.
func (a *face) GlyphAdvance(r rune) (advance fixed.Int26_6, ok bool) {
	gid, err := a.sf.GlyphIndex(r)
	if err != nil {
		return 0, false
	}
	return a.advanceOf(gid), true
}

// Metrics satisfies the font.Face interface.
func (a *face) Metrics() font.Metrics {
	f := a.sf.Face()
	_, sy := a.sf.PixelsPerFUnit()
	scale := func(funits int16) fixed.Int26_6 {
		return fixed.Int26_6(float64(funits) * sy * 64)
	}
	ascent := scale(f.Ascender())
	descent := scale(-f.Descender())
	return font.Metrics{
		Height:  ascent + descent,
		Ascent:  ascent,
		Descent: descent,
	}
}

// advanceOf converts gid's font-unit advance width to a 26.6 fixed-point
// pixel advance using the ScaledFace's horizontal scale factor.
func (a *face) advanceOf(gid sfnt.GlyphID) fixed.Int26_6 {
	hm, err := a.sf.Face().HMetric(gid)
	if err != nil {
		return 0
	}
	sx, _ := a.sf.PixelsPerFUnit()
	return fixed.Int26_6(float64(hm.AdvanceWidth) * sx * 64)
}

// rasterize loads, renders and measures the glyph for rune r. origin is
// the integer-pixel offset from the pen position to the bitmap's top-left
// corner, derived from the glyph's bounding box.
func (a *face) rasterize(r rune) (bmp *sfnt.GlyphBitmap, origin image.Point, advance fixed.Int26_6, ok bool) {
	gid, err := a.sf.GlyphIndex(r)
	if err != nil {
		return nil, image.Point{}, 0, false
	}
	g, err := a.sf.Glyph(gid)
	if err != nil {
		return nil, image.Point{}, 0, false
	}
	bmp, err = g.Render()
	if err != nil {
		return nil, image.Point{}, 0, false
	}
	b := g.Bounds()
	sx, sy := a.sf.PixelsPerFUnit()
	origin = image.Point{
		X: int(math.Floor(float64(b.XMin) * sx)),
		Y: -int(math.Ceil(float64(b.YMax) * sy)),
	}
	return bmp, origin, a.advanceOf(gid), true
}
