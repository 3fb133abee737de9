// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package sfnt

// An OpKind identifies a path operation: a pen move, a straight line, or a
// quadratic Bézier curve.
type OpKind int

const (
	OpMove OpKind = iota
	OpLine
	OpQuad
)

// A PathOp is one step of a reconstructed glyph outline. Control is only
// meaningful for OpQuad.
type PathOp struct {
	Kind    OpKind
	Control Point
	End     Point
}

func midpoint(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// ContourPath converts one contour's (on-curve, point) stream into a
// sequence of Move/Line/Quad path operations, closing back to the start.
//
// TrueType contours are normally expected to start on-curve. Real fonts
// frequently violate this by starting with an off-curve control point; in
// that case the contour starts at its last point if that one is on-curve,
// and otherwise at the implicit on-curve midpoint of its last and first
// points (rather than treating the contour as malformed and silently
// dropping it).
func ContourPath(pts []Point) []PathOp {
	n := len(pts)
	if n == 0 {
		return nil
	}

	var start Point
	var rest []Point
	switch {
	case pts[0].OnCurve:
		start, rest = pts[0], pts[1:]
	case pts[n-1].OnCurve:
		start, rest = pts[n-1], pts[:n-1]
	default:
		start, rest = midpoint(pts[n-1], pts[0]), pts
	}

	ops := make([]PathOp, 0, len(rest)+2)
	ops = append(ops, PathOp{Kind: OpMove, End: start})

	var lastOff Point
	haveLastOff := false
	for _, p := range rest {
		if p.OnCurve {
			if !haveLastOff {
				ops = append(ops, PathOp{Kind: OpLine, End: p})
			} else {
				ops = append(ops, PathOp{Kind: OpQuad, Control: lastOff, End: p})
				haveLastOff = false
			}
			continue
		}
		if !haveLastOff {
			lastOff = p
			haveLastOff = true
			continue
		}
		mid := midpoint(lastOff, p)
		ops = append(ops, PathOp{Kind: OpQuad, Control: lastOff, End: mid})
		lastOff = p
	}

	if haveLastOff {
		ops = append(ops, PathOp{Kind: OpQuad, Control: lastOff, End: start})
	} else {
		ops = append(ops, PathOp{Kind: OpLine, End: start})
	}
	return ops
}

// Path returns the path operations for every contour of a simple glyph, in
// contour order.
func (g *SimpleGlyph) Path() [][]PathOp {
	paths := make([][]PathOp, len(g.Contours))
	for i, c := range g.Contours {
		paths[i] = ContourPath(c)
	}
	return paths
}
