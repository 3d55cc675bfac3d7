// Copyright 2026 The uniqr Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Uniqr encodes a string as a version 1 QR code and renders it as
// text or as an image.
package main

import (
	"fmt"
	"image/png"
	"io"
	"log"
	"os"
	"strings"
	"syscall"

	"github.com/uniqr/uniqr"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
)

var g = struct {
	scale  int    // image pixels per module
	border int    // quiet zone width
	rev    bool   // reverse colours
	latin1 bool   // convert input to Latin-1
	fn     string // output filename
	format int    // output format index
}{
	border: uniqr.QuietZone,
}

var formats = []string{
	"png", "pngi", "pbm", "pbmi", "utf8", "utf8i", "ascii", "asciii",
}

var encoders = [...]func(*uniqr.Code, io.Writer) error{
	func(c *uniqr.Code, w io.Writer) error {
		return png.Encode(w, c.Image())
	},
	(*uniqr.Code).EncodePBM,
	(*uniqr.Code).EncodeUTF8,
	(*uniqr.Code).EncodeASCII,
}

type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func printUsage(w io.Writer) {
	cl := getopt.CommandLine
	fmt.Fprint(w, "Version 1 QR code generator\nUsage: ",
		cl.UsageLine(), " [string ...]", `
If no string is given, data is read from standard input and the final
newline is stripped.  The payload is at most `,
		uniqr.MaxText, ` bytes.

`)
	cl.PrintOptions(w)
}

func usage() {
	printUsage(os.Stderr)
	os.Exit(2)
}

func help() {
	printUsage(os.Stdout)
	os.Exit(0)
}

func version() {
	fmt.Println("uniqr version 1.0")
	os.Exit(0)
}

func parseFlags() {
	getopt.SetUsage(usage)
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	getopt.Flag(opt(version), 'V', "print version").SetFlag()
	getopt.Flag(&g.latin1, '1', "convert input to Latin-1")
	getopt.Flag(&g.border, 'm', "quiet zone modules", "margin")
	fno := getopt.Flag(&g.fn, 'o',
		`output file, or "-" for standard output`, "file")
	scale := getopt.Unsigned('s', 4, &getopt.UnsignedLimit{Base: 0, Bits: 12, Min: 1, Max: 256},
		`image pixels per QR module; `+
			`ignored for types utf8[i] and ascii[i]`, "scale")
	ff := getopt.Enum('t', formats, "", `output format, one of: `+
		strings.Join(formats, ", ")+
		`; types with "i" appended have colours inverted; `+
		`if no -o is given and standard output is a TTY, `+
		`default is utf8, otherwise png`, "type")

	getopt.Parse()
	g.scale = int(*scale)
	if *ff == "" {
		if !fno.Seen() && isatty.IsTerminal(uintptr(syscall.Stdout)) {
			*ff = "utf8"
		} else {
			*ff = "png"
		}
	}
	for i, v := range formats {
		if *ff == v {
			g.format = i >> 1
			g.rev = i&1 != 0
			break
		}
	}
	if g.fn == "-" {
		g.fn = ""
	}
}

func main() {
	log.SetFlags(0)
	parseFlags()

	var s string
	if args := getopt.Args(); len(args) != 0 {
		s = strings.Join(args, " ")
	} else if isatty.IsTerminal(uintptr(syscall.Stdin)) {
		usage()
	} else {
		var b strings.Builder
		if _, err := io.Copy(&b, os.Stdin); err != nil {
			log.Fatalln(err)
		}
		s, _ = strings.CutSuffix(
			strings.ReplaceAll(b.String(), "\r\n", "\n"), "\n")
	}
	if g.latin1 {
		var err error
		if s, err = uniqr.ToLatin1(s); err != nil {
			log.Fatalln(err)
		}
	}

	c, err := uniqr.Encode(s)
	if err != nil {
		log.Fatalln(err)
	}
	c.Scale = g.scale
	c.Reverse = g.rev
	c.Border = g.border

	w := os.Stdout
	if g.fn != "" {
		if w, err = os.OpenFile(g.fn,
			os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666); err != nil {
			log.Fatalln(err)
		}
	}
	err = encoders[g.format](c, w)
	if g.fn != "" && err == nil {
		err = w.Close()
	}
	if err != nil {
		log.Fatalln(err)
	}
}
