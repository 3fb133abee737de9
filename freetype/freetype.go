// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

// The freetype package provides a convenient API to draw text onto an image.
// Use the sfnt package for lower level control over font parsing, and
// golang.org/x/image/vector for the coverage rasterizer itself.
package freetype

import (
	"errors"
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/math/fixed"

	"github.com/nigeltao/sfntlite/sfnt"
)

// These constants determine the size of the glyph cache. The cache is keyed
// primarily by the glyph index modulo nGlyphs, and secondarily by sub-pixel
// position for the mask image. Sub-pixel positions are quantized to
// nXFractions possible values in the x direction and nYFractions in the y
// direction.
const (
	nGlyphs     = 256
	nXFractions = 4
	nYFractions = 1
)

// An entry in the glyph cache is keyed explicitly by the glyph index and
// implicitly by the quantized x and y fractional offset. It maps to a mask
// image and an offset.
type cacheEntry struct {
	valid  bool
	glyph  sfnt.GlyphID
	mask   *image.Alpha
	offset image.Point
}

// ParseFont parses the first face of a font file in b. It is provided here
// so that code that imports this package doesn't also need to import sfnt.
func ParseFont(b []byte) (*sfnt.Face, error) {
	fc, err := sfnt.Parse(b)
	if err != nil {
		return nil, err
	}
	return fc.Face(0)
}

// Pt converts from a co-ordinate pair measured in pixels to a
// fixed.Point26_6 co-ordinate pair measured in 26.6 fixed point units.
func Pt(x, y int) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
}

// A Context holds the state for drawing text in a given font and size.
type Context struct {
	sf   *sfnt.ScaledFace
	font *sfnt.Face
	// clip is the clip rectangle for drawing.
	clip image.Rectangle
	// dst and src are the destination and source images for drawing.
	dst draw.Image
	src image.Image
	// fontSize and dpi are used to derive the ScaledFace on recalc.
	fontSize float64
	dpi      float64
	// cache is the glyph cache.
	cache [nGlyphs * nXFractions * nYFractions]cacheEntry
}

// advance returns gid's horizontal advance in 26.6 fixed point pixels at
// the Context's current scale.
func (c *Context) advance(gid sfnt.GlyphID) fixed.Int26_6 {
	hm, err := c.font.HMetric(gid)
	if err != nil {
		return 0
	}
	sx, _ := c.sf.PixelsPerFUnit()
	return fixed.Int26_6(float64(hm.AdvanceWidth) * sx * 64)
}

// rasterize renders gid at the Context's current scale into an alpha mask
// anchored at its own (0, 0) origin, and returns the integer-pixel offset
// from the pen position to the mask's top-left corner, derived from the
// glyph's bounding box so the outline sits on the baseline.
func (c *Context) rasterize(gid sfnt.GlyphID) (*image.Alpha, image.Point, error) {
	g, err := c.sf.Glyph(gid)
	if err != nil {
		return nil, image.Point{}, err
	}
	bmp, err := g.Render()
	if err != nil {
		return nil, image.Point{}, err
	}
	b := g.Bounds()
	sx, sy := c.sf.PixelsPerFUnit()
	offset := image.Point{
		X: int(math.Floor(float64(b.XMin) * sx)),
		Y: -int(math.Ceil(float64(b.YMax) * sy)),
	}
	mask := &image.Alpha{Pix: bmp.Data, Stride: bmp.Width, Rect: image.Rect(0, 0, bmp.Width, bmp.Height)}
	return mask, offset, nil
}

// glyph returns the glyph mask and integer-pixel offset to render the given
// glyph at the given sub-pixel point. It is a cache for rasterize.
// p may be any position: its integer part is added to the returned offset
// and its fractional part only selects the cache slot.
func (c *Context) glyph(gid sfnt.GlyphID, p fixed.Point26_6) (*image.Alpha, image.Point, error) {
	// Split p.X and p.Y into their integer and fractional parts.
	ix, fx := int(p.X>>6), p.X&0x3f
	iy, fy := int(p.Y>>6), p.Y&0x3f
	// Calculate the index t into the cache array.
	tg := int(gid) % nGlyphs
	tx := int(fx) / (64 / nXFractions)
	ty := int(fy) / (64 / nYFractions)
	t := ((tg*nXFractions)+tx)*nYFractions + ty
	// Check for a cache hit.
	if c.cache[t].valid && c.cache[t].glyph == gid {
		return c.cache[t].mask, c.cache[t].offset.Add(image.Point{X: ix, Y: iy}), nil
	}
	// Rasterize the glyph and put the result into the cache.
	mask, offset, err := c.rasterize(gid)
	if err != nil {
		return nil, image.Point{}, err
	}
	c.cache[t] = cacheEntry{true, gid, mask, offset}
	return mask, offset.Add(image.Point{X: ix, Y: iy}), nil
}

// DrawString draws s at p and returns p advanced by the text extent. The text
// is placed so that the left edge of the em square of the first character of s
// and the baseline intersect at p. The majority of the affected pixels will be
// above and to the right of the point, but some may be below or to the left.
// p is a fixed.Point26_6 and can therefore represent sub-pixel positions.
//
// This library does not decode the kern table (out of scope), so no
// inter-glyph kerning adjustment is applied.
func (c *Context) DrawString(s string, p fixed.Point26_6) (fixed.Point26_6, error) {
	if c.font == nil {
		return fixed.Point26_6{}, errors.New("freetype: DrawString called with a nil font")
	}
	for _, r := range s {
		gid, err := c.font.GlyphIndex(r)
		if err != nil {
			return fixed.Point26_6{}, err
		}
		mask, offset, err := c.glyph(gid, p)
		if err != nil {
			return fixed.Point26_6{}, err
		}
		glyphRect := mask.Bounds().Add(offset)
		dr := c.clip.Intersect(glyphRect)
		if !dr.Empty() {
			mp := image.Point{X: 0, Y: dr.Min.Y - glyphRect.Min.Y}
			draw.DrawMask(c.dst, dr, c.src, image.Point{}, mask, mp, draw.Over)
		}
		p.X += c.advance(gid)
	}
	return p, nil
}

// recalc rebuilds the ScaledFace from the current font, size and DPI, and
// invalidates the glyph cache.
func (c *Context) recalc() {
	if c.font != nil {
		c.sf = c.font.Scale(c.fontSize, c.fontSize, c.dpi, c.dpi)
	} else {
		c.sf = nil
	}
	for i := range c.cache {
		c.cache[i] = cacheEntry{}
	}
}

// SetDPI sets the screen resolution in dots per inch.
func (c *Context) SetDPI(dpi float64) {
	if c.dpi == dpi {
		return
	}
	c.dpi = dpi
	c.recalc()
}

// SetFont sets the font used to draw text.
func (c *Context) SetFont(font *sfnt.Face) {
	if c.font == font {
		return
	}
	c.font = font
	c.recalc()
}

// SetFontSize sets the font size in points (as in "a 12 point font").
func (c *Context) SetFontSize(fontSize float64) {
	if c.fontSize == fontSize {
		return
	}
	c.fontSize = fontSize
	c.recalc()
}

// SetDst sets the destination image for draw operations.
func (c *Context) SetDst(dst draw.Image) {
	c.dst = dst
}

// SetSrc sets the source image for draw operations. This is typically an
// image.Uniform.
func (c *Context) SetSrc(src image.Image) {
	c.src = src
}

// SetClip sets the clip rectangle for drawing.
func (c *Context) SetClip(clip image.Rectangle) {
	c.clip = clip
}

// NewContext creates a new Context.
func NewContext() *Context {
	return &Context{
		fontSize: 12,
		dpi:      72,
	}
}
