// Copyright 2026 The uniqr Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package uniqr encodes version 1 QR codes.

A version 1 symbol is 21×21 modules and, at error correction level L,
carries up to 17 bytes of text in byte mode.  Mode selection, higher
versions and mask evaluation are deliberately out of scope: the symbol
always uses byte mode, level L and mask pattern 0.
*/
package uniqr

import (
	"errors"
	"image"
	"image/color"

	"golang.org/x/text/encoding/charmap"

	"github.com/uniqr/uniqr/coding"
)

var ErrArgs = errors.New("qr: invalid arguments")

// MaxText is the longest text Encode accepts, in bytes.
const MaxText = coding.MaxText

// QuietZone is the default quiet zone width in modules.  The nominal
// width is 4; this encoder has always rendered 5 and keeps doing so
// for output compatibility.
const QuietZone = 5

// Encode returns text encoded as a version 1, level L QR code.
func Encode(text string) (*Code, error) {
	cc, err := coding.Encode(text)
	if err != nil {
		return nil, err
	}
	return &Code{
		Bitmap: cc.Bitmap,
		Size:   cc.Size,
		Stride: cc.Stride,
		Scale:  8,
		Border: QuietZone,
	}, nil
}

// ToLatin1 converts UTF-8 text to ISO 8859-1, the conventional
// interpretation of byte mode payloads.  It fails if text contains a
// rune outside Latin-1.
func ToLatin1(text string) (string, error) {
	return charmap.ISO8859_1.NewEncoder().String(text)
}

// A Code is a square pixel grid.
// It implements image.Image for PNG encoding.
type Code struct {
	Bitmap  []byte // 1 is black, 0 is white
	Size    int    // number of pixels on a side
	Stride  int    // number of bytes per row
	Scale   int    // image pixels per QR pixel
	Border  int    // quiet zone width in QR pixels
	Reverse bool   // render white on black
}

// Black reports whether the pixel at (x, y) is black.
func (c *Code) Black(x, y int) bool {
	return 0 <= x && x < c.Size && 0 <= y && y < c.Size &&
		c.Bitmap[y*c.Stride+x/8]&(1<<uint(7-x&7)) != 0
}

func (c *Code) isValid() bool {
	return c.Size > 0 && c.Stride >= (c.Size+7)/8 &&
		len(c.Bitmap) >= c.Size*c.Stride &&
		c.Scale > 0 && c.Border >= 0
}

// Image returns an Image displaying the code.
func (c *Code) Image() image.Image {
	return &codeImage{c}
}

// codeImage implements image.Image.
type codeImage struct {
	*Code
}

var (
	whiteColor color.Color = color.Gray{0xFF}
	blackColor color.Color = color.Gray{0x00}
)

func (c *codeImage) Bounds() image.Rectangle {
	d := (c.Size + 2*c.Border) * c.Scale
	return image.Rect(0, 0, d, d)
}

func (c *codeImage) At(x, y int) color.Color {
	if c.Black(x/c.Scale-c.Border, y/c.Scale-c.Border) != c.Reverse {
		return blackColor
	}
	return whiteColor
}

func (c *codeImage) ColorModel() color.Model {
	return color.GrayModel
}
