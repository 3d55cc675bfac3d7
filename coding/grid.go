// Copyright 2026 The uniqr Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "errors"

var ErrRange = errors.New("qr: module write out of range")

// A Grid is a square boolean module grid under construction.
// Writes outside the grid are discarded and recorded as a fault
// retrievable from Err.
type Grid struct {
	siz int
	mod []bool // row-major, true is black
	oob bool
}

// NewGrid returns a white grid with siz modules on a side.
func NewGrid(siz int) *Grid {
	return &Grid{siz: siz, mod: make([]bool, siz*siz)}
}

func (g *Grid) Size() int { return g.siz }

// Set sets the module at (row, col).
func (g *Grid) Set(row, col int, v bool) {
	if uint(row) >= uint(g.siz) || uint(col) >= uint(g.siz) {
		g.oob = true
		return
	}
	g.mod[row*g.siz+col] = v
}

// Flip toggles the module at (row, col).
func (g *Grid) Flip(row, col int) {
	if uint(row) >= uint(g.siz) || uint(col) >= uint(g.siz) {
		g.oob = true
		return
	}
	g.mod[row*g.siz+col] = !g.mod[row*g.siz+col]
}

// Black reports whether the module at (row, col) is black.
// Out-of-range modules are white.
func (g *Grid) Black(row, col int) bool {
	return uint(row) < uint(g.siz) && uint(col) < uint(g.siz) &&
		g.mod[row*g.siz+col]
}

// Err returns ErrRange if any write missed the grid.
func (g *Grid) Err() error {
	if g.oob {
		return ErrRange
	}
	return nil
}

// Code packs the grid into a Code bitmap, one bit per module,
// rows padded to byte boundaries, most significant bit first.
func (g *Grid) Code() *Code {
	siz := g.siz
	stride := (siz + 7) >> 3
	c := &Code{Bitmap: make([]byte, siz*stride), Size: siz, Stride: stride}
	for row := 0; row < siz; row++ {
		for col := 0; col < siz; col++ {
			if g.mod[row*siz+col] {
				c.Bitmap[row*stride+col>>3] |= 0x80 >> (col & 7)
			}
		}
	}
	return c
}

// A Code is a square pixel grid.
type Code struct {
	Bitmap []byte // 1 is black, 0 is white
	Size   int    // number of pixels on a side
	Stride int    // number of bytes per row
}

// Black reports whether the pixel at (x, y) is black.
func (c *Code) Black(x, y int) bool {
	return 0 <= x && x < c.Size && 0 <= y && y < c.Size &&
		c.Bitmap[y*c.Stride+x>>3]&(0x80>>(x&7)) != 0
}
