// Copyright 2026 The uniqr Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uniqr_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/uniqr/uniqr"
)

func ExampleEncode() {
	c, err := uniqr.Encode("HELLO")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(c.Size, "modules,", c.Border, "module quiet zone")
	// Output: 21 modules, 5 module quiet zone
}

func ExampleEncode_tooLong() {
	_, err := uniqr.Encode(strings.Repeat("!", uniqr.MaxText+1))
	fmt.Println(err)
	// Output: qr: text too long to encode in version 1
}

func ExampleCode_EncodeUTF8() {
	c, err := uniqr.Encode("HELLO")
	if err != nil {
		fmt.Println(err)
		return
	}
	c.EncodeUTF8(os.Stdout) // prints the symbol as block glyphs
}

func ExampleToLatin1() {
	s, _ := uniqr.ToLatin1("Ångström")
	fmt.Printf("% x\n", []byte(s))
	// Output: c5 6e 67 73 74 72 f6 6d
}
