// Copyright 2015 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package sfnt

import "testing"

func TestContourPathAllOnCurve(t *testing.T) {
	pts := []Point{
		{X: 0, Y: 0, OnCurve: true},
		{X: 10, Y: 0, OnCurve: true},
		{X: 10, Y: 10, OnCurve: true},
	}
	ops := ContourPath(pts)
	if len(ops) != 4 {
		t.Fatalf("len(ops) = %d, want 4 (move + 2 lines + closing line)", len(ops))
	}
	if ops[0].Kind != OpMove || ops[0].End != pts[0] {
		t.Errorf("ops[0] = %+v, want Move to %+v", ops[0], pts[0])
	}
	for _, op := range ops[1:] {
		if op.Kind != OpLine {
			t.Errorf("op.Kind = %v, want OpLine (no off-curve points in input)", op.Kind)
		}
	}
	if last := ops[len(ops)-1]; last.End != pts[0] {
		t.Errorf("closing op ends at %+v, want start %+v", last.End, pts[0])
	}
}

func TestContourPathNonAdjacentOffCurve(t *testing.T) {
	// on, off, on, off: the two off-curve points are never adjacent here,
	// so no implicit on-curve point needs synthesizing mid-stream.
	pts := []Point{
		{X: 0, Y: 0, OnCurve: true},
		{X: 10, Y: 0, OnCurve: false},
		{X: 20, Y: 0, OnCurve: true},
		{X: 20, Y: 10, OnCurve: false},
	}
	ops := ContourPath(pts)
	var quads int
	for _, op := range ops {
		if op.Kind == OpQuad {
			quads++
		}
	}
	if quads != 2 {
		t.Fatalf("got %d quad ops, want 2 (one mid-contour, one closing)", quads)
	}
}

func TestContourPathStartsOffCurve(t *testing.T) {
	// Both the first and last points are off-curve: the implicit start is
	// the midpoint of pts[n-1] and pts[0], not a silently dropped contour.
	pts := []Point{
		{X: 0, Y: 0, OnCurve: false},
		{X: 10, Y: 0, OnCurve: true},
		{X: 10, Y: 10, OnCurve: false},
	}
	ops := ContourPath(pts)
	if len(ops) == 0 {
		t.Fatal("ContourPath on an off-curve-starting contour returned no ops")
	}
	wantStart := midpoint(pts[2], pts[0])
	if ops[0].Kind != OpMove || ops[0].End != wantStart {
		t.Errorf("ops[0] = %+v, want Move to synthesized midpoint %+v", ops[0], wantStart)
	}
}

func TestContourPathLastPointOnCurve(t *testing.T) {
	pts := []Point{
		{X: 5, Y: 5, OnCurve: false},
		{X: 10, Y: 10, OnCurve: false},
		{X: 0, Y: 0, OnCurve: true},
	}
	ops := ContourPath(pts)
	if ops[0].Kind != OpMove || ops[0].End != pts[2] {
		t.Errorf("ops[0] = %+v, want Move to the on-curve last point %+v", ops[0], pts[2])
	}
}

func TestContourPathEmpty(t *testing.T) {
	if ops := ContourPath(nil); ops != nil {
		t.Errorf("ContourPath(nil) = %v, want nil", ops)
	}
}
