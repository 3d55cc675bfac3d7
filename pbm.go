// Copyright 2026 The uniqr Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uniqr

import (
	"bufio"
	"io"
	"strconv"
)

// EncodePBM writes a Portable Bit Map image displaying the code to w,
// for use with netpbm.
func (c *Code) EncodePBM(w io.Writer) error {
	if !c.isValid() {
		return ErrArgs
	}
	b := bufio.NewWriter(w)
	siz, scale, bord := c.Size, c.Scale, c.Border
	length := scale * (siz + 2*bord)
	ls := strconv.Itoa(length)
	if _, err := b.WriteString("P4\n" + ls + " " + ls + "\n"); err != nil {
		return err
	}
	blank := make([]byte, (length+7)/8)
	if c.Reverse {
		for i := range blank {
			blank[i] = 0xff
		}
	}
	row := make([]byte, len(blank))
	writeRows := func(r []byte, n int) error {
		for i := 0; i < n; i++ {
			if _, err := b.Write(r); err != nil {
				return err
			}
		}
		return nil
	}
	if err := writeRows(blank, scale*bord); err != nil {
		return err
	}
	for y := 0; y < siz; y++ {
		copy(row, blank)
		for x := 0; x < siz; x++ {
			if c.Black(x, y) == c.Reverse {
				continue
			}
			for p := (x + bord) * scale; p < (x+bord+1)*scale; p++ {
				row[p>>3] ^= 0x80 >> (p & 7)
			}
		}
		if err := writeRows(row, scale); err != nil {
			return err
		}
	}
	if err := writeRows(blank, scale*bord); err != nil {
		return err
	}
	return b.Flush()
}
