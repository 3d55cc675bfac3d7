// Copyright 2026 The uniqr Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"bytes"
	"strings"
	"testing"
)

// golden renders a code the way the test vectors are written: one
// character per module.
func golden(c *Code) string {
	var b strings.Builder
	for y := 0; y < c.Size; y++ {
		for x := 0; x < c.Size; x++ {
			if c.Black(x, y) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

var helloGrid = []string{
	"#######..#.##.#######",
	"#.....#..###..#.....#",
	"#.###.#.##.##.#.###.#",
	"#.###.#..#.#..#.###.#",
	"#.###.#...#.#.#.###.#",
	"#.....#.....#.#.....#",
	"#######.#.#.#.#######",
	"........##.##........",
	"###.########.##...#..",
	"...#....#.....#....#.",
	"#.#...#...#.#...#####",
	"##..#...#.#...#....#.",
	"#.#..##..##.#.#.#.#..",
	"........##.#.#.#..##.",
	"#######.#..#.###..###",
	"#.....#.######.##....",
	"#.###.#.#..#.###..###",
	"#.###.#...#...##..##.",
	"#.###.#.###.#...#.#.#",
	"#.....#.##....#.#..#.",
	"#######.##..#.##..###",
}

func TestEncodeHello(t *testing.T) {
	c, err := Encode("HELLO")
	if err != nil {
		t.Fatal(err)
	}
	want := strings.Join(helloGrid, "\n") + "\n"
	if got := golden(c); got != want {
		t.Errorf("got:\n%swant:\n%s", got, want)
	}
}

func TestEncodeLength(t *testing.T) {
	for n := 0; n <= MaxText; n++ {
		if _, err := Encode(strings.Repeat("a", n)); err != nil {
			t.Errorf("%d bytes: %v", n, err)
		}
	}
	if _, err := Encode(strings.Repeat("a", MaxText+1)); err != ErrLongText {
		t.Errorf("%d bytes: %v, want ErrLongText", MaxText+1, err)
	}
}

func TestEncodeDeterministic(t *testing.T) {
	a, err := Encode("again and again")
	if err != nil {
		t.Fatal(err)
	}
	b, err := Encode("again and again")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Bitmap, b.Bitmap) {
		t.Error("repeated encodes differ")
	}
}

// TestStructure checks that the static patterns are identical no
// matter what the payload is.
func TestStructure(t *testing.T) {
	for _, text := range []string{"", "HELLO", "?", "0123456789abcdefg"} {
		c, err := Encode(text)
		if err != nil {
			t.Fatal(err)
		}
		for i, bits := range finderPattern {
			for j := 0; j < finder; j++ {
				b := bits>>(finder-1-j)&1 != 0
				if c.Black(j, i) != b ||
					c.Black(Size-finder+j, i) != b ||
					c.Black(j, Size-finder+i) != b {
					t.Fatalf("%q: finder bit (%d,%d) wrong",
						text, i, j)
				}
			}
		}
		for i := finder + 1; i <= Size-finder; i++ {
			if c.Black(i, finder-1) != (i&1 == 0) ||
				c.Black(finder-1, i) != (i&1 == 0) {
				t.Errorf("%q: timing bit %d wrong", text, i)
			}
		}
		if !c.Black(finder+1, 4*Version+9) {
			t.Errorf("%q: dark module not black", text)
		}
	}
}

// TestPlacement writes an all-ones and an all-zeroes stream and
// checks that the traversal covers the encoding region exactly: 208
// stream bits, 208 region modules, each visited once.
func TestPlacement(t *testing.T) {
	for _, bit := range []byte{0xff, 0x00} {
		b := NewBuilder()
		stream := make([]byte, DataBytes+CheckBytes)
		for i := range stream {
			stream[i] = bit
		}
		b.place(stream)
		if err := b.grid.Err(); err != nil {
			t.Fatal(err)
		}
		for row := 0; row < Size; row++ {
			for col := 0; col < Size; col++ {
				if !encodingRegion(Size, row, col) {
					continue
				}
				if b.grid.Black(row, col) != (bit != 0) {
					t.Fatalf("stream %#02x: module "+
						"(%d,%d) not visited",
						bit, row, col)
				}
			}
		}
	}
}

func TestMask(t *testing.T) {
	b := NewBuilder()
	b.mask()
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if !encodingRegion(Size, row, col) {
				continue
			}
			if b.grid.Black(row, col) != ((row+col)&1 == 0) {
				t.Errorf("mask at (%d,%d) wrong", row, col)
			}
		}
	}
}

// TestFormatWord re-derives the format constant: the 5 bit level and
// mask indicator, its BCH(15,5) remainder, and the fixed mask.
func TestFormatWord(t *testing.T) {
	const formatPoly = 0x537     // x¹⁰+x⁸+x⁵+x⁴+x²+x+1
	fb := uint16(0b01_000) << 10 // level L, mask pattern 0
	rem := fb
	for i := 4; i >= 0; i-- {
		if rem&(1<<10<<i) != 0 {
			rem ^= formatPoly << i
		}
	}
	if got := (fb | rem) ^ 0b101010000010010; got != formatInfo {
		t.Errorf("format word = %015b, want %015b",
			got, uint16(formatInfo))
	}
}

func TestGridRange(t *testing.T) {
	g := NewGrid(Size)
	g.Set(3, 3, true)
	if g.Err() != nil {
		t.Errorf("in-range write faulted: %v", g.Err())
	}
	g.Set(Size, 0, true)
	if g.Err() != ErrRange {
		t.Errorf("out-of-range write: %v, want ErrRange", g.Err())
	}
	if g.Black(-1, 0) || g.Black(0, Size) {
		t.Error("out-of-range module reads black")
	}
}
