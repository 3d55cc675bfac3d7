// Copyright 2026 The uniqr Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uniqr

import (
	"bufio"
	"io"
	"strings"
)

// encodeText writes the code to w one grid row per line, quiet zone
// included, with the given glyph pair per black and white module.
func (c *Code) encodeText(w io.Writer, black, white string) error {
	if !c.isValid() {
		return ErrArgs
	}
	if c.Reverse {
		black, white = white, black
	}
	b := bufio.NewWriter(w)
	siz, bord := c.Size, c.Border
	for y := -bord; y < siz+bord; y++ {
		for x := -bord; x < siz+bord; x++ {
			s := white
			if c.Black(x, y) {
				s = black
			}
			b.WriteString(s)
		}
		b.WriteByte('\n')
	}
	return b.Flush()
}

// EncodeUTF8 writes the code to w as Unicode block glyphs,
// two glyph columns per module.
func (c *Code) EncodeUTF8(w io.Writer) error {
	return c.encodeText(w, "██", "  ")
}

// EncodeASCII writes the code to w as '#' pairs.
func (c *Code) EncodeASCII(w io.Writer) error {
	return c.encodeText(w, "##", "  ")
}

// String returns the code as block glyph text.
func (c *Code) String() string {
	var b strings.Builder
	c.EncodeUTF8(&b)
	return b.String()
}
