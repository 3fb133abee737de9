// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package sfnt

import (
	"image"
	"math"

	"golang.org/x/image/vector"
)

// A ScaledFace pairs a Face with a pixels-per-em scale. Multiple
// ScaledFaces may share one Face; a Face itself holds no scale-dependent
// state.
type ScaledFace struct {
	face   *Face
	sx, sy float64
}

// Scale converts a font point size + screen resolution into a ScaledFace
// using pix = point * dpi / 72.
func (f *Face) Scale(pointW, pointH, dpiX, dpiY float64) *ScaledFace {
	upe := float64(f.UnitsPerEm())
	pxW := pointW * dpiX / 72
	pxH := pointH * dpiY / 72
	return &ScaledFace{face: f, sx: pxW / upe, sy: pxH / upe}
}

// Face returns the ScaledFace's underlying, scale-independent Face.
func (s *ScaledFace) Face() *Face { return s.face }

// PixelsPerFUnit returns the (x, y) scale factors, in pixels per font unit,
// that this ScaledFace applies to outlines and metrics.
func (s *ScaledFace) PixelsPerFUnit() (sx, sy float64) { return s.sx, s.sy }

// GlyphIndex resolves a codepoint to a GlyphID; scale does not affect cmap
// resolution, so this simply forwards to the underlying Face.
func (s *ScaledFace) GlyphIndex(codepoint rune) (GlyphID, error) {
	return s.face.GlyphIndex(codepoint)
}

// A ScaledGlyph is a glyph outline bound to a ScaledFace, ready to render.
type ScaledGlyph struct {
	face *ScaledFace
	gid  GlyphID
	ttg  TTGlyph
}

// Glyph loads gid's outline at the ScaledFace's scale.
func (s *ScaledFace) Glyph(gid GlyphID) (*ScaledGlyph, error) {
	ttg, err := s.face.Glyph(gid)
	if err != nil {
		return nil, err
	}
	if ttg.Composite {
		return nil, UnimplementedError("composite glyphs")
	}
	return &ScaledGlyph{face: s, gid: gid, ttg: ttg}, nil
}

// Bounds returns the glyph's bounding box, in font units.
func (g *ScaledGlyph) Bounds() Bounds {
	return g.ttg.Simple.Bounds
}

// A GlyphBitmap is an 8-bit grayscale coverage raster: width*height bytes,
// row-major, top-to-bottom. 0 is empty, 255 is fully covered.
type GlyphBitmap struct {
	Width, Height int
	Data          []byte
}

// Render rasterizes the glyph into a GlyphBitmap whose width and height are
// the scaled bounding box extents rounded up, plus two pixels. The bounding
// box's (XMin, YMax) corner maps to the bitmap's top-left corner, so the
// extra pixels lie to the right and below the outline.
func (g *ScaledGlyph) Render() (*GlyphBitmap, error) {
	sg := g.ttg.Simple
	if sg == nil {
		return nil, UnimplementedError("composite glyphs")
	}
	b := sg.Bounds
	sx, sy := g.face.sx, g.face.sy

	width := int(math.Ceil(float64(b.XMax-b.XMin)*sx)) + 2
	height := int(math.Ceil(float64(b.YMax-b.YMin)*sy)) + 2
	if width <= 0 {
		width = 2
	}
	if height <= 0 {
		height = 2
	}

	transform := Translation(-float64(b.XMin), -float64(b.YMax)).Scaled(sx, -sy)

	r := vector.NewRasterizer(width, height)
	for _, contour := range sg.Contours {
		ops := ContourPath(contour)
		feedPath(r, transform, ops)
	}

	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	r.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	return &GlyphBitmap{Width: width, Height: height, Data: mask.Pix}, nil
}

// feedPath transforms each path operation by xf and drives the x/image
// vector rasterizer, which performs the scanline coverage accumulation
// itself (out of scope for this library).
func feedPath(r *vector.Rasterizer, xf Affine, ops []PathOp) {
	for _, op := range ops {
		end := xf.Apply(op.End)
		switch op.Kind {
		case OpMove:
			r.MoveTo(float32(end.X), float32(end.Y))
		case OpLine:
			r.LineTo(float32(end.X), float32(end.Y))
		case OpQuad:
			ctrl := xf.Apply(op.Control)
			r.QuadTo(float32(ctrl.X), float32(ctrl.Y), float32(end.X), float32(end.Y))
		}
	}
}
