// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package sfnt

import (
	"errors"
	"fmt"
)

// ErrInvalid reports a structural malformation: a bounds violation on a
// table or subtable access, an unknown index_to_loc_format, a missing
// required table, an offset overflow, or a short header. Use errors.Is to
// test for it; the wrapped message carries the specific cause.
var ErrInvalid = errors.New("sfnt: invalid font data")

// ErrFaceIndexOutOfBounds reports idx >= NumFaces() passed to
// FontCollection.Face.
var ErrFaceIndexOutOfBounds = errors.New("sfnt: face index out of bounds")

// ErrGlyphIDOutOfBounds reports a GlyphID lookup beyond num_glyphs in hmtx
// or loca.
var ErrGlyphIDOutOfBounds = errors.New("sfnt: glyph id out of bounds")

// ErrNoCharmap reports a codepoint lookup on a face whose cmap has no
// active subtable.
var ErrNoCharmap = errors.New("sfnt: no active cmap subtable")

// UnimplementedError reports a valid but unimplemented feature: composite
// glyph outlines or CFF outline rendering.
type UnimplementedError string

func (e UnimplementedError) Error() string {
	return "sfnt: unimplemented: " + string(e)
}

func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}
