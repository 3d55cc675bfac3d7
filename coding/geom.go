// Copyright 2026 The uniqr Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Symbol geometry.  Pure predicates classifying grid positions,
// consulted by both the module placer and the masker; the two must
// agree exactly or the symbol is corrupted.

// horizTiming reports whether (row, col) lies on the horizontal timing
// pattern: the row below the top finder patterns, strictly between
// their columns.
func horizTiming(siz, row, col int) bool {
	return row == finder-1 && col >= finder+1 && col <= siz-finder-2
}

// vertTiming is the mirror image of horizTiming.
func vertTiming(siz, row, col int) bool {
	return col == finder-1 && row >= finder+1 && row <= siz-finder-2
}

// encodingRegion reports whether (row, col) may carry a data or check
// bit: in bounds, not on a timing pattern, and outside the three
// finder pattern exclusion boxes.  Each box covers the 7×7 finder, its
// separator row and column, and the adjacent format information strip.
func encodingRegion(siz, row, col int) bool {
	if row < 0 || row >= siz || col < 0 || col >= siz {
		return false
	}
	if horizTiming(siz, row, col) || vertTiming(siz, row, col) {
		return false
	}
	if row >= siz-finder-1 && col <= finder+1 { // bottom left box
		return false
	}
	if row <= finder+1 && col >= siz-finder-1 { // top right box
		return false
	}
	if row <= finder+1 && col <= finder+1 { // top left box
		return false
	}
	return true
}
