// Command easeplot samples an easing curve and plots it.
//
// Usage:
//
//	easeplot [flags]
//
// On a terminal, the curve is printed as a table with a bar for every sample.
// Otherwise, or with -format, it is written as CSV, SVG or PNG.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/term"
	"honnef.co/go/animate/ease"
)

var (
	curveName = flag.String("curve", "ease", "name of the curve to plot (see -list)")
	samples   = flag.Int("n", 64, "number of sampling intervals")
	format    = flag.String("format", "", "output format: table, csv, svg or png (default table on a terminal, svg otherwise)")
	size      = flag.Int("size", 256, "width and height of svg and png output, in pixels")
	output    = flag.String("o", "", "output file (default stdout)")
	list      = flag.Bool("list", false, "list the names of the standard curves and exit")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("easeplot: ")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}
	flag.Parse()
	if flag.NArg() != 0 {
		flag.Usage()
	}

	if *list {
		for _, name := range ease.Names() {
			fmt.Println(name)
		}
		return
	}

	c, ok := ease.ByName(*curveName)
	if !ok {
		log.Fatalf("unknown curve %q, see -list", *curveName)
	}
	if *samples < 1 {
		log.Fatalf("-n must be positive, got %d", *samples)
	}
	if *size < 16 {
		log.Fatalf("-size must be at least 16, got %d", *size)
	}

	tty := *output == "" && term.IsTerminal(int(os.Stdout.Fd()))
	fmtName := *format
	if fmtName == "" {
		if tty {
			fmtName = "table"
		} else {
			fmtName = "svg"
		}
	}

	if *output == "" {
		if err := plot(os.Stdout, c, fmtName, tty); err != nil {
			log.Fatal(err)
		}
		return
	}
	f, err := os.Create(*output)
	if err != nil {
		log.Fatal(err)
	}
	err = writeAndClose(f, func(w io.Writer) error {
		return plot(w, c, fmtName, false)
	})
	if err != nil {
		log.Fatal(err)
	}
}

// writeAndClose calls write on wc and closes wc, even if write fails. It
// returns the first error, so that a failed close isn't mistaken for a
// complete file.
func writeAndClose(wc io.WriteCloser, write func(io.Writer) error) error {
	err := write(wc)
	if cerr := wc.Close(); err == nil {
		err = cerr
	}
	return err
}

func plot(w io.Writer, c ease.Curve, fmtName string, tty bool) error {
	pts := c.Sample(*samples)
	switch fmtName {
	case "table":
		width := 80
		if tty {
			if cols, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
				width = cols
			}
		}
		return writeTable(w, pts, width)
	case "csv":
		return writeCSV(w, pts)
	case "svg":
		return writeSVG(w, pts, *size)
	case "png":
		if tty {
			return fmt.Errorf("refusing to write PNG to a terminal, use -o")
		}
		return writePNG(w, pts, *size)
	default:
		return fmt.Errorf("unknown format %q", fmtName)
	}
}
