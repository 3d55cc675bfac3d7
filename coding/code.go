// Copyright 2026 The uniqr Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coding implements low-level QR coding details for version 1
// symbols at error correction level L with mask pattern 0.
package coding

import "github.com/uniqr/uniqr/gf256"

// Version 1, level L configuration.
const (
	Version = 1  // QR code version
	Size    = 21 // modules on a side, 4*Version + 17

	finder = 7 // finder pattern side length

	DataBytes  = 19 // data codewords
	CheckBytes = 7  // error correction codewords

	// MaxText is the payload capacity: two data codewords hold the
	// mode indicator and character count.
	MaxText = DataBytes - 2
)

// Field is the field for QR error correction.
var Field = gf256.NewField(0x11d, 2)

// A Builder constructs a single symbol.  It owns the module grid, so
// concurrent encodes need separate Builders.
type Builder struct {
	grid *Grid
	rs   *gf256.RSEncoder
}

// NewBuilder returns a Builder with the static patterns already
// stamped.
func NewBuilder() *Builder {
	b := &Builder{
		grid: NewGrid(Size),
		rs:   gf256.NewRSEncoder(Field, CheckBytes),
	}
	b.grid.stampFixed()
	return b
}

// place writes the codeword stream bit by bit into the encoding
// region, walking column pairs bottom to top and back, right to left.
// Whenever the walk leaves the region at a codeword boundary it turns
// around, moves one pair left (one further past the vertical timing
// column) and steps until it re-enters the region, skipping over
// finder obstructions.  At version 1 every column pair run holds a
// whole number of codewords, so the region test is only needed
// between codewords.
func (b *Builder) place(stream []byte) {
	g := b.grid
	siz := g.siz
	dir := -1
	row, col := siz-1, siz-1 // col is the right column of the pair
	for _, w := range stream {
		if !encodingRegion(siz, row, col) {
			dir = -dir
			row += dir
			col -= 2
			if vertTiming(siz, row, col) {
				col--
			}
			for !encodingRegion(siz, row, col) {
				row += dir
			}
		}
		for j := 0; j < 8; j += 2 {
			g.Set(row, col, w&(0x80>>j) != 0)
			g.Set(row, col-1, w&(0x40>>j) != 0)
			row += dir
			if horizTiming(siz, row, col) {
				row += dir
			}
		}
	}
}

// mask toggles every encoding region module on an even diagonal:
// mask pattern 0.  Structural modules are never masked because the
// placer and the masker share the region predicate.
func (b *Builder) mask() {
	g := b.grid
	for row := 0; row < g.siz; row++ {
		for col := 0; col < g.siz; col++ {
			if (row+col)&1 == 0 && encodingRegion(g.siz, row, col) {
				g.Flip(row, col)
			}
		}
	}
}

// Encode encodes text into b and returns the finished symbol.
// A Builder encodes one symbol; discard it afterwards.
func (b *Builder) Encode(text string) (*Code, error) {
	data, err := DataCodewords(text, DataBytes)
	if err != nil {
		return nil, err
	}
	stream := make([]byte, DataBytes+CheckBytes)
	copy(stream, data)
	if err := b.rs.ECC(data, stream[DataBytes:]); err != nil {
		return nil, err
	}
	b.place(stream)
	b.mask()
	b.grid.stampFormat()
	b.grid.stampDark()
	if err := b.grid.Err(); err != nil {
		return nil, err
	}
	return b.grid.Code(), nil
}

// Encode encodes text into a version 1, level L QR code.
func Encode(text string) (*Code, error) {
	return NewBuilder().Encode(text)
}
