package main

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
	"honnef.co/go/animate/ease"
)

var (
	areaColor  = color.NRGBA{R: 0x64, G: 0x95, B: 0xED, A: 0x60}
	curveColor = color.NRGBA{R: 0x19, G: 0x19, B: 0x70, A: 0xFF}
)

const strokeWidth = 2

// rasterize draws the area between the curve and the line of progress 0,
// and the curve itself on top.
func rasterize(pts []ease.Point, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)

	fr := frameOf(pts)
	sz := float64(size)
	_, base := fr.toImage(ease.Pt(0, 0), sz)

	area := vector.NewRasterizer(size, size)
	area.MoveTo(0, float32(base))
	for _, pt := range pts {
		x, y := fr.toImage(pt, sz)
		area.LineTo(float32(x), float32(y))
	}
	area.LineTo(float32(sz), float32(base))
	area.ClosePath()
	area.Draw(dst, dst.Bounds(), image.NewUniform(areaColor), image.Point{})

	// Stroke each segment as a quadrilateral.
	line := vector.NewRasterizer(size, size)
	for i := 1; i < len(pts); i++ {
		x0, y0 := fr.toImage(pts[i-1], sz)
		x1, y1 := fr.toImage(pts[i], sz)
		dx, dy := x1-x0, y1-y0
		l := math.Hypot(dx, dy)
		if l == 0 {
			continue
		}
		nx, ny := -dy/l*strokeWidth/2, dx/l*strokeWidth/2
		line.MoveTo(float32(x0+nx), float32(y0+ny))
		line.LineTo(float32(x1+nx), float32(y1+ny))
		line.LineTo(float32(x1-nx), float32(y1-ny))
		line.LineTo(float32(x0-nx), float32(y0-ny))
		line.ClosePath()
	}
	line.Draw(dst, dst.Bounds(), image.NewUniform(curveColor), image.Point{})
	return dst
}

func writePNG(w io.Writer, pts []ease.Point, size int) error {
	return png.Encode(w, rasterize(pts, size))
}
