// Copyright 2010-2017 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/nigeltao/sfntlite/sfnt"
)

var fontfile = flag.String("font", "", "filename of font to dump")

func main() {
	flag.Parse()

	fc, err := sfnt.Open(*fontfile)
	if err != nil {
		fmt.Printf("Failed to load font from %s: %+v\n", *fontfile, err)
		os.Exit(1)
	}

	fmt.Printf("%s: %d face(s)\n", *fontfile, fc.NumFaces())
	for i := 0; i < fc.NumFaces(); i++ {
		f, err := fc.Face(i)
		if err != nil {
			fmt.Printf("  face %d: %+v\n", i, err)
			continue
		}
		dumpFace(i, f)
	}
}

func dumpFace(i int, f *sfnt.Face) {
	name, _ := f.Name()
	fmt.Printf("face %d: %q\n", i, name)
	fmt.Printf("  outline kind:   %v\n", f.Outline())
	fmt.Printf("  units per em:   %d\n", f.UnitsPerEm())
	fmt.Printf("  num glyphs:     %d\n", f.NumGlyphs())
	fmt.Printf("  ascender:       %d\n", f.Ascender())
	fmt.Printf("  descender:      %d\n", f.Descender())
	fmt.Printf("  bounds:         %+v\n", f.Bounds())
	fmt.Printf("  tables:        ")
	for _, tag := range f.TableTags() {
		fmt.Printf(" %s", tag)
	}
	fmt.Println()
}
