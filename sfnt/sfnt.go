// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

// Package sfnt parses OpenType/TrueType font files and rasterizes
// TrueType simple-glyph outlines to 8-bit grayscale coverage bitmaps.
//
// The format is documented at http://developer.apple.com/fonts/TTRefMan/
// and http://www.microsoft.com/typography/otspec/.
package sfnt

import (
	"fmt"
	"io"
	"os"

	"github.com/nigeltao/sfntlite/sfnt/internal/raw"
)

// A FontCollection owns the complete content of a font file (a single sfnt
// face, or a ttc collection of faces) for its lifetime. All Faces and table
// views derived from it borrow slices of the same backing array.
type FontCollection struct {
	data        []byte
	faceOffsets []int
}

// Open reads the named file and parses it as a FontCollection.
func Open(path string) (*FontCollection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse interprets b as an sfnt or ttc container. b is retained (not
// copied); the caller must not mutate it while the returned FontCollection
// or any of its derived views are in use.
func Parse(b []byte) (*FontCollection, error) {
	if len(b) < 4 {
		return nil, invalidf("file too short (%d bytes)", len(b))
	}
	tag, err := raw.U32(b, 0)
	if err != nil {
		return nil, invalidf("%v", err)
	}
	if Tag(tag) != sfntVersionTTC {
		// A single, bare sfnt face at offset 0.
		if err := validOffsetTable(b, 0); err != nil {
			return nil, err
		}
		return &FontCollection{data: b, faceOffsets: []int{0}}, nil
	}

	numFonts, err := raw.U32(b, 8)
	if err != nil {
		return nil, invalidf("short ttc header: %v", err)
	}
	offsets := make([]int, numFonts)
	for i := range offsets {
		o, err := raw.U32(b, 12+4*i)
		if err != nil {
			return nil, invalidf("short ttc face offset table: %v", err)
		}
		if err := validOffsetTable(b, int(o)); err != nil {
			return nil, err
		}
		offsets[i] = int(o)
	}
	if len(offsets) == 0 {
		return nil, invalidf("ttc header declares zero faces")
	}
	return &FontCollection{data: b, faceOffsets: offsets}, nil
}

// ParseReaderAt builds a FontCollection by reading all of r into memory.
func ParseReaderAt(r io.Reader) (*FontCollection, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(b)
}

// validOffsetTable checks that off is within bounds and that the offset
// table header starting there (sfnt version + num_tables, i.e. the first 12
// bytes, plus numTables*16 table records) fits inside data.
func validOffsetTable(data []byte, off int) error {
	if off < 0 || off >= len(data) {
		return invalidf("face offset %d out of bounds (len %d)", off, len(data))
	}
	if off+12 > len(data) {
		return invalidf("short offset table at %d", off)
	}
	numTables, err := raw.U16(data, off+4)
	if err != nil {
		return invalidf("%v", err)
	}
	if off+12+16*int(numTables) > len(data) {
		return invalidf("offset table at %d declares %d tables beyond end of file", off, numTables)
	}
	return nil
}

// NumFaces returns the number of faces in the collection: one for a plain
// sfnt file, N for a ttc collection.
func (c *FontCollection) NumFaces() int {
	return len(c.faceOffsets)
}

// Face parses and returns the idx'th face in the collection. Each call
// re-parses the face's offset table; the work is cheap and no ownership of
// the backing buffer is transferred.
func (c *FontCollection) Face(idx int) (*Face, error) {
	if idx < 0 || idx >= len(c.faceOffsets) {
		return nil, fmt.Errorf("%w: index %d, have %d faces", ErrFaceIndexOutOfBounds, idx, len(c.faceOffsets))
	}
	return parseFace(c.data, c.faceOffsets[idx])
}
