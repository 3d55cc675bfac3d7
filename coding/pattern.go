// Copyright 2026 The uniqr Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Static patterns: finder patterns, timing patterns, the dark module
// and the format information.  All positions are fixed for version 1.

// finderPattern is the 7×7 ring-in-ring marker, one row per byte,
// most significant of the low 7 bits first.
var finderPattern = [finder]byte{
	0b1111111,
	0b1000001,
	0b1011101,
	0b1011101,
	0b1011101,
	0b1000001,
	0b1111111,
}

// formatInfo is the 15 bit format word for error correction level L,
// mask pattern 0.  It is the 5 bit indicator 01 000 (level, mask)
// extended with its BCH(15,5) remainder over x¹⁰+x⁸+x⁵+x⁴+x²+x+1 and
// XORed with the fixed mask 101010000010010; see ISO/IEC 18004 table
// C.1.  Regenerate it for other levels or masks, never edit it.
const formatInfo = 0b111011111000100

// stampFinder writes a finder pattern with its top left module at
// (row, col).
func (g *Grid) stampFinder(row, col int) {
	for i, bits := range finderPattern {
		for j := 0; j < finder; j++ {
			g.Set(row+i, col+j, bits>>(finder-1-j)&1 != 0)
		}
	}
}

// stampFixed seeds the grid with the three finder patterns and the two
// timing patterns.  Version 1 has no alignment patterns.
func (g *Grid) stampFixed() {
	siz := g.siz
	g.stampFinder(0, 0)
	g.stampFinder(0, siz-finder)
	g.stampFinder(siz-finder, 0)
	// Timing patterns alternate starting black, so even coordinates
	// are black.
	for i := finder + 1; i <= siz-finder; i++ {
		g.Set(finder-1, i, i&1 == 0)
		g.Set(i, finder-1, i&1 == 0)
	}
}

// stampFormat writes the format word into its two L-shaped strips,
// least significant bit first, skipping the timing row and column.
func (g *Grid) stampFormat() {
	siz := g.siz
	// First copy, bent around the top left finder.
	n := 0
	for i := 0; i <= 5; i++ {
		g.Set(i, finder+1, formatInfo>>n&1 != 0)
		n++
	}
	g.Set(finder, finder+1, formatInfo>>n&1 != 0)
	n++
	g.Set(finder+1, finder+1, formatInfo>>n&1 != 0)
	n++
	g.Set(finder+1, finder, formatInfo>>n&1 != 0)
	n++
	for j := 5; j >= 0; j-- {
		g.Set(finder+1, j, formatInfo>>n&1 != 0)
		n++
	}
	// Second copy, split between the top right and bottom left
	// finders.
	n = 0
	for j := 0; j <= 7; j++ {
		g.Set(finder+1, siz-1-j, formatInfo>>n&1 != 0)
		n++
	}
	for i := siz - finder; i < siz; i++ {
		g.Set(i, finder+1, formatInfo>>n&1 != 0)
		n++
	}
}

// stampDark writes the single always-black module above the bottom
// left finder pattern.
func (g *Grid) stampDark() {
	g.Set(4*Version+9, finder+1, true)
}
