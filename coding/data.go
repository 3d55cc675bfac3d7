// Copyright 2026 The uniqr Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "errors"

var ErrLongText = errors.New("qr: text too long to encode in version 1")

// Byte mode header and padding.
const (
	byteMode = 0b0100 // mode indicator nibble
	pad0     = 0b11101100
	pad1     = 0b00010001
)

// DataCodewords packs text into n byte mode data codewords: the mode
// indicator nibble, an 8 bit character count, the payload shifted in
// half-byte steps, and alternating pad bytes.  The zeroed low nibble
// after the last payload byte doubles as the terminator, so no
// explicit terminator is written.  Two codewords go to the header,
// leaving n-2 bytes for the payload.
func DataCodewords(text string, n int) ([]byte, error) {
	if len(text) > n-2 {
		return nil, ErrLongText
	}
	b := make([]byte, n)
	b[0] = byteMode<<4 | byte(len(text))>>4
	b[1] = byte(len(text)) << 4
	i := 1
	for j := 0; j < len(text); j++ {
		b[i] |= text[j] >> 4
		i++
		b[i] = text[j] << 4
	}
	pad := byte(pad0)
	for i++; i < n; i++ {
		b[i] = pad
		pad ^= pad0 ^ pad1
	}
	return b, nil
}
