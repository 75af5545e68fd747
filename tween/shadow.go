package tween

import (
	"fmt"
	"image/color"
)

// ShadowPosition tells whether a shadow is drawn outside or inside of its
// box.
type ShadowPosition uint8

const (
	Outset ShadowPosition = iota
	Inset
)

func (p ShadowPosition) String() string {
	switch p {
	case Outset:
		return "Outset"
	case Inset:
		return "Inset"
	default:
		return fmt.Sprintf("ShadowPosition(%d)", uint8(p))
	}
}

type FillKind uint8

const (
	FlatFill FillKind = iota
	GradientFill
)

// Fill is the paint of a shadow: either a flat colour or a gradient
// descriptor.
type Fill struct {
	Kind     FillKind
	Color    color.NRGBA
	Gradient string
}

// Flat returns a fill of the flat colour c.
func Flat(c color.Color) Fill {
	return Fill{Kind: FlatFill, Color: toNRGBA(c)}
}

// GradientPaint returns a fill of the gradient descriptor desc.
func GradientPaint(desc string) Fill {
	return Fill{Kind: GradientFill, Gradient: desc}
}

func (f Fill) String() string {
	if f.Kind == GradientFill {
		return f.Gradient
	}
	return formatColor(f.Color)
}

type Shadow struct {
	Position ShadowPosition
	X        float32
	Y        float32
	Blur     float32
	Spread   float32
	Fill     Fill
}

func (s Shadow) String() string {
	return formatShadow(s)
}
