// Copyright 2026 The uniqr Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "testing"

// classify mirrors the predicate order of encodingRegion: timing
// patterns are tested before the finder exclusion boxes.
func classify(siz, row, col int) string {
	switch {
	case row < 0 || row >= siz || col < 0 || col >= siz:
		return "out"
	case horizTiming(siz, row, col) || vertTiming(siz, row, col):
		return "timing"
	case row >= siz-finder-1 && col <= finder+1,
		row <= finder+1 && col >= siz-finder-1,
		row <= finder+1 && col <= finder+1:
		return "finder"
	default:
		return "encoding"
	}
}

// TestClassification checks that every in-bounds position belongs to
// exactly one class and that the classes tile the grid: the encoding
// region is precisely the complement of the structural regions.
func TestClassification(t *testing.T) {
	count := map[string]int{}
	for row := -1; row <= Size; row++ {
		for col := -1; col <= Size; col++ {
			c := classify(Size, row, col)
			count[c]++
			if want := c == "encoding"; encodingRegion(Size,
				row, col) != want {
				t.Errorf("(%d,%d): region = %v, class %s",
					row, col, !want, c)
			}
		}
	}
	// 26 codewords of 8 bits fill the version 1 encoding region
	// exactly.
	if n := (DataBytes + CheckBytes) * 8; count["encoding"] != n {
		t.Errorf("encoding region has %d modules, want %d",
			count["encoding"], n)
	}
	// 5 modules of each timing pattern lie outside the exclusion
	// boxes.
	if count["timing"] != 10 {
		t.Errorf("timing patterns have %d modules, want 10",
			count["timing"])
	}
	if total := count["timing"] + count["finder"] +
		count["encoding"]; total != Size*Size {
		t.Errorf("classes cover %d modules, want %d",
			total, Size*Size)
	}
}

func TestTimingPredicates(t *testing.T) {
	for i := 0; i < Size; i++ {
		ht := i == finder-1
		for j := finder + 1; j <= Size-finder-2; j++ {
			if horizTiming(Size, i, j) != ht {
				t.Errorf("horizTiming(%d, %d) != %v", i, j, ht)
			}
			if vertTiming(Size, j, i) != ht {
				t.Errorf("vertTiming(%d, %d) != %v", j, i, ht)
			}
		}
		// The timing row outside the strict column range belongs
		// to the finder boxes.
		if horizTiming(Size, finder-1, i) &&
			(i <= finder || i >= Size-finder-1) {
			t.Errorf("horizTiming(%d, %d) inside a finder box",
				finder-1, i)
		}
	}
}
