package tween

import (
	"fmt"
	"image/color"
	"math"

	"gioui.org/f32"
	"golang.org/x/exp/constraints"
)

// LerpFloat linearly interpolates between a and b.
func LerpFloat[F constraints.Float](a, b, x F) F {
	return a*(1-x) + b*x
}

// LerpPoint interpolates the coordinates of two points independently.
func LerpPoint(a, b f32.Point, x float32) f32.Point {
	return f32.Point{
		X: LerpFloat(a.X, b.X, x),
		Y: LerpFloat(a.Y, b.Y, x),
	}
}

// LerpColor interpolates the channels of two colours independently, in the
// order alpha, red, green, blue. Results are rounded to the nearest integer
// and clamped to [0, 255], as overshooting curves may push them past either
// end.
func LerpColor(a, b color.NRGBA, x float32) color.NRGBA {
	channel := func(a, b uint8) uint8 {
		v := LerpFloat(float32(a), float32(b), x)
		return uint8(math.Round(float64(min(max(v, 0), 255))))
	}
	var out color.NRGBA
	out.A = channel(a.A, b.A)
	out.R = channel(a.R, b.R)
	out.G = channel(a.G, b.G)
	out.B = channel(a.B, b.B)
	return out
}

// LerpShadow interpolates the offsets, blur, spread and colour of two shadows.
// The position is taken from a. Both shadows must have flat fills; LerpShadow
// panics otherwise.
func LerpShadow(a, b Shadow, x float32) Shadow {
	if a.Fill.Kind != FlatFill || b.Fill.Kind != FlatFill {
		panic("cannot interpolate shadows with gradient fills")
	}
	return Shadow{
		Position: a.Position,
		X:        LerpFloat(a.X, b.X, x),
		Y:        LerpFloat(a.Y, b.Y, x),
		Blur:     LerpFloat(a.Blur, b.Blur, x),
		Spread:   LerpFloat(a.Spread, b.Spread, x),
		Fill:     Fill{Kind: FlatFill, Color: LerpColor(a.Fill.Color, b.Fill.Color, x)},
	}
}

// Lerp interpolates between two values of the same kind.
//
// It panics if the kinds differ, if they are gradients, or if they are
// shadows with gradient fills. These are mistakes in the definition of an
// animation, not conditions to recover from.
func Lerp(start, end Value, x float32) Value {
	if start.kind != end.kind {
		panic(fmt.Sprintf("cannot interpolate between %v and %v", start.kind, end.kind))
	}
	switch start.kind {
	case ColorKind:
		return Value{kind: ColorKind, color: LerpColor(start.color, end.color, x)}
	case NumberKind:
		return Number(LerpFloat(start.number, end.number, x))
	case PointKind:
		return Point(LerpPoint(start.point, end.point, x))
	case ShadowKind:
		return ShadowValue(LerpShadow(start.shadow, end.shadow, x))
	default:
		panic(fmt.Sprintf("cannot interpolate %v values", start.kind))
	}
}
