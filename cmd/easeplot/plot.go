package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"honnef.co/go/animate/ease"
)

// frame is the range of progress shown in a plot. It always contains [0, 1]
// and grows to fit overshooting curves.
type frame struct {
	lo, hi float64
}

func frameOf(pts []ease.Point) frame {
	fr := frame{0, 1}
	for _, pt := range pts {
		fr.lo = min(fr.lo, pt.Y)
		fr.hi = max(fr.hi, pt.Y)
	}
	return fr
}

// scale maps progress p to [0, n], with lo at 0 and hi at n.
func (fr frame) scale(p, n float64) float64 {
	return (p - fr.lo) / (fr.hi - fr.lo) * n
}

// toImage maps a sample to image coordinates in a square of the given size,
// with y growing downwards.
func (fr frame) toImage(pt ease.Point, size float64) (float64, float64) {
	return pt.X * size, size - fr.scale(pt.Y, size)
}

func writeTable(w io.Writer, pts []ease.Point, width int) error {
	const prefix = len("0.000  -0.0000 |")
	cols := max(width-prefix-2, 10)
	fr := frameOf(pts)
	zero := int(fr.scale(0, float64(cols-1)) + 0.5)
	for _, pt := range pts {
		row := []byte(strings.Repeat(" ", cols))
		row[zero] = '.'
		row[int(fr.scale(pt.Y, float64(cols-1))+0.5)] = '*'
		if _, err := fmt.Fprintf(w, "%.3f %8.4f |%s|\n", pt.X, pt.Y, row); err != nil {
			return err
		}
	}
	return nil
}

func writeCSV(w io.Writer, pts []ease.Point) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"t", "progress"}); err != nil {
		return err
	}
	for _, pt := range pts {
		rec := []string{
			strconv.FormatFloat(pt.X, 'f', -1, 64),
			strconv.FormatFloat(pt.Y, 'f', -1, 32),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// writeSVG writes a standalone SVG document that shows the curve as a
// polyline, along with the lines of progress 0 and 1.
func writeSVG(w io.Writer, pts []ease.Point, size int) error {
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		s := strconv.FormatFloat(n, 'f', 3, 64)
		return strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}

	fr := frameOf(pts)
	sz := float64(size)
	writef(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n", size, size, size, size)
	writef(`<rect width="%d" height="%d" fill="white" />`+"\n", size, size)
	for _, p := range []float64{0, 1} {
		_, y := fr.toImage(ease.Pt(0, p), sz)
		writef(`<path d="M0,%s L%d,%s" stroke="#ccc" fill="none" />`+"\n", format(y), size, format(y))
	}
	writef(`<path d="`)
	for i, pt := range pts {
		cmd := "L"
		if i == 0 {
			cmd = "M"
		} else {
			writef(" ")
		}
		x, y := fr.toImage(pt, sz)
		writef("%s%s,%s", cmd, format(x), format(y))
	}
	writef(`" stroke="black" stroke-width="2" fill="none" />` + "\n")
	writef("</svg>\n")
	return err
}
