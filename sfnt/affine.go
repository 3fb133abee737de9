// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package sfnt

import "math"

// An Affine is a 2x3 matrix:
//
//	[a0 b0 c0]
//	[a1 b1 c1]
//
// applying p' = (a0*x + b0*y + c0, a1*x + b1*y + c1).
type Affine struct {
	A0, B0, C0 float64
	A1, B1, C1 float64
}

// Identity returns the identity transform.
func Identity() Affine {
	return Affine{A0: 1, B1: 1}
}

// Scaling returns a transform that scales by (sx, sy).
func Scaling(sx, sy float64) Affine {
	return Affine{A0: sx, B1: sy}
}

// Translation returns a transform that translates by (tx, ty).
func Translation(tx, ty float64) Affine {
	return Affine{A0: 1, B1: 1, C0: tx, C1: ty}
}

// Rotation returns a transform that rotates counter-clockwise by theta
// radians.
func Rotation(theta float64) Affine {
	s, c := math.Sin(theta), math.Cos(theta)
	return Affine{A0: c, B0: -s, A1: s, B1: c}
}

// mul returns the affine composition "apply a, then apply b" — i.e. the
// single matrix m such that m.Apply(p) == b.Apply(a.Apply(p)).
func mul(a, b Affine) Affine {
	return Affine{
		A0: b.A0*a.A0 + b.B0*a.A1,
		B0: b.A0*a.B0 + b.B0*a.B1,
		C0: b.A0*a.C0 + b.B0*a.C1 + b.C0,
		A1: b.A1*a.A0 + b.B1*a.A1,
		B1: b.A1*a.B0 + b.B1*a.B1,
		C1: b.A1*a.C0 + b.B1*a.C1 + b.C1,
	}
}

// Scaled returns mul(a, Scaling(sx, sy)): a applied first, then scaled.
func (a Affine) Scaled(sx, sy float64) Affine {
	return mul(a, Scaling(sx, sy))
}

// Translated returns mul(a, Translation(tx, ty)): a applied first, then
// translated.
func (a Affine) Translated(tx, ty float64) Affine {
	return mul(a, Translation(tx, ty))
}

// Rotated returns mul(a, Rotation(theta)): a applied first, then rotated.
func (a Affine) Rotated(theta float64) Affine {
	return mul(a, Rotation(theta))
}

// Apply transforms p by a.
func (a Affine) Apply(p Point) Point {
	return Point{
		X:       a.A0*p.X + a.B0*p.Y + a.C0,
		Y:       a.A1*p.X + a.B1*p.Y + a.C1,
		OnCurve: p.OnCurve,
	}
}
