// Copyright 2026 The uniqr Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gf256 implements arithmetic over the Galois field GF(256)
// and the Reed-Solomon encoding used for QR error correction.
package gf256

import "errors"

var (
	ErrDivideByZero = errors.New("gf256: division by zero")
	ErrEmptyInput   = errors.New("gf256: empty input")
)

// A Field represents an instance of GF(256) defined by a reducing
// polynomial.  Its exponent and logarithm tables are built once by
// NewField and are read-only afterwards.
type Field struct {
	exp [256]byte // exp[i] = α^i; exp[255] duplicates exp[0]
	log [256]byte // log[α^i] = i; log[0] = 0 by convention
}

// mul returns the product of x and y modulo the polynomial poly,
// without using lookup tables.
func mul(x, y, poly int) int {
	z := 0
	for x > 0 {
		if x&1 != 0 {
			z ^= y
		}
		x >>= 1
		y <<= 1
		if y&0x100 != 0 {
			y ^= poly
		}
	}
	return z
}

// NewField returns the field of size 256 defined by the given reducing
// polynomial, using α as the generator element.  QR codes use
// NewField(0x11d, 2): x⁸+x⁴+x³+x²+1, generated by doubling.
func NewField(poly, α int) *Field {
	var f Field
	x := 1
	for i := 0; i < 255; i++ {
		f.exp[i] = byte(x)
		f.log[x] = byte(i)
		x = mul(x, α, poly)
	}
	f.exp[255] = f.exp[0] // α^255 = α^0
	f.log[0] = 0
	return &f
}

// Add returns the sum of x and y.  In characteristic 2 addition and
// subtraction are both XOR.
func (f *Field) Add(x, y byte) byte { return x ^ y }

// Sub returns the difference of x and y.
func (f *Field) Sub(x, y byte) byte { return x ^ y }

// Exp returns α^e.
func (f *Field) Exp(e int) byte {
	return f.exp[e%255]
}

// Log returns log base α of x.  Log of 0 is undefined; callers must
// not pass 0.
func (f *Field) Log(x byte) int {
	return int(f.log[x])
}

// Mul returns the product of x and y.
func (f *Field) Mul(x, y byte) byte {
	if x == 0 || y == 0 {
		return 0
	}
	return f.exp[(int(f.log[x])+int(f.log[y]))%255]
}

// Div returns the quotient of x and y, or ErrDivideByZero if y is 0.
func (f *Field) Div(x, y byte) (byte, error) {
	if y == 0 {
		return 0, ErrDivideByZero
	}
	if x == 0 {
		return 0, nil
	}
	d := int(f.log[x]) - int(f.log[y])
	if d < 0 {
		d += 255
	}
	return f.exp[d], nil
}

// An RSEncoder computes Reed-Solomon error correction codewords.
type RSEncoder struct {
	f   *Field
	c   int
	gen []byte // generator polynomial, degree c, leading coefficient 1
	buf []byte // working message polynomial
}

// generator returns the generator polynomial of degree c over f,
// the product of (x - α^i) for i from 0 to c-1.  For c = 7 the
// coefficients come out as α^{0,87,229,146,149,238,102,21}
// (ISO/IEC 18004 table A.1).
func generator(f *Field, c int) []byte {
	gen := []byte{1} // coefficients in descending powers of x
	for i := 0; i < c; i++ {
		root := f.Exp(i)
		next := make([]byte, len(gen)+1)
		for j, g := range gen {
			next[j] ^= g
			next[j+1] ^= f.Mul(g, root)
		}
		gen = next
	}
	return gen
}

// NewRSEncoder returns an RSEncoder producing c check bytes over the
// field f.  The generator polynomial is built once here, never during
// encoding.
func NewRSEncoder(f *Field, c int) *RSEncoder {
	return &RSEncoder{f: f, c: c, gen: generator(f, c)}
}

// ECC fills check with the error correction codewords for data.
// len(check) must equal the encoder's check byte count.
//
// The data bytes are the high-order coefficients of a message
// polynomial whose low c coefficients are zero.  Dividing it by the
// generator polynomial in GF(256) and discarding the quotient leaves
// the remainder in the low c bytes: the check bytes of a systematic
// Reed-Solomon code.
func (rs *RSEncoder) ECC(data, check []byte) error {
	if len(data) == 0 || rs.c == 0 {
		return ErrEmptyInput
	}
	if len(check) != rs.c {
		return errors.New("gf256: wrong check byte count")
	}
	f := rs.f
	n := len(data) + rs.c
	if cap(rs.buf) < n {
		rs.buf = make([]byte, n)
	}
	p := rs.buf[:n]
	copy(p, data)
	for i := range p[len(data):] {
		p[len(data)+i] = 0
	}
	for i := range data {
		factor := p[i]
		if factor == 0 {
			continue
		}
		for j, g := range rs.gen {
			p[i+j] = f.Sub(p[i+j], f.Mul(factor, g))
		}
	}
	copy(check, p[len(data):])
	return nil
}
