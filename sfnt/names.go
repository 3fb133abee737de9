// Copyright 2015 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package sfnt

import (
	"bytes"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/nigeltao/sfntlite/sfnt/internal/raw"
)

const nameIDFullFontName = 4

// decodeUTF16BE decodes the name table's big-endian UTF-16 string records.
func decodeUTF16BE(b []byte) (string, error) {
	r := bytes.NewReader(b)
	enc := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	decoded, err := io.ReadAll(transform.NewReader(r, enc.NewDecoder()))
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

// Name returns the face's full font name (name ID 4) from the Windows
// platform, Unicode BMP encoding (platform 3, encoding 1) record of the
// optional name table, if present.
func (f *Face) Name() (string, bool) {
	if len(f.name) < 6 {
		return "", false
	}
	count, err := raw.U16(f.name, 2)
	if err != nil {
		return "", false
	}
	stringOffset, err := raw.U16(f.name, 4)
	if err != nil {
		return "", false
	}
	recBase := 6
	for i := 0; i < int(count); i++ {
		rec := recBase + 12*i
		if rec+12 > len(f.name) {
			return "", false
		}
		platformID, _ := raw.U16(f.name, rec)
		encodingID, _ := raw.U16(f.name, rec+2)
		nameID, _ := raw.U16(f.name, rec+6)
		length, _ := raw.U16(f.name, rec+8)
		offset, _ := raw.U16(f.name, rec+10)
		if platformID != 3 || encodingID != 1 || nameID != nameIDFullFontName {
			continue
		}
		start := int(stringOffset) + int(offset)
		end := start + int(length)
		if start < 0 || end > len(f.name) {
			continue
		}
		s, err := decodeUTF16BE(f.name[start:end])
		if err != nil {
			continue
		}
		return s, true
	}
	return "", false
}
