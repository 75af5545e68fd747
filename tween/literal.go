package tween

import (
	"fmt"
	"image/color"
	"strings"
)

// Literal returns the textual form of a value, as consumed by renderers.
//
// Colours are written as "rgb(r, g, b, a)", shadows as
// "[inset ]x y blur spread rgb(r, g, b, a)" and gradients verbatim. Literal
// panics for numbers, points and shadows with gradient fills, which have no
// literal form.
func (v Value) Literal() string {
	switch v.kind {
	case ColorKind:
		return formatColor(v.color)
	case ShadowKind:
		if v.shadow.Fill.Kind != FlatFill {
			panic("shadows with gradient fills have no literal form")
		}
		return formatShadow(v.shadow)
	case GradientKind:
		return v.gradient
	default:
		panic(fmt.Sprintf("%v values have no literal form", v.kind))
	}
}

func formatColor(c color.NRGBA) string {
	return fmt.Sprintf("rgb(%d, %d, %d, %d)", c.R, c.G, c.B, c.A)
}

func formatShadow(s Shadow) string {
	var prefix string
	if s.Position == Inset {
		prefix = "inset "
	}
	return fmt.Sprintf("%s%s %s %s %s %s",
		prefix,
		formatFloat(s.X),
		formatFloat(s.Y),
		formatFloat(s.Blur),
		formatFloat(s.Spread),
		s.Fill,
	)
}

type GradientType uint8

const (
	LinearGradientType GradientType = iota
	RadialGradientType
	ConicGradientType
)

func (k GradientType) String() string {
	switch k {
	case LinearGradientType:
		return "linear"
	case RadialGradientType:
		return "radial"
	case ConicGradientType:
		return "conic"
	default:
		return fmt.Sprintf("GradientType(%d)", uint8(k))
	}
}

// GradientStop is a colour at a position in [0, 1] along a gradient.
type GradientStop struct {
	At    float32
	Color color.NRGBA
}

// GradientBuilder collects the stops of a gradient descriptor.
type GradientBuilder struct {
	Type  GradientType
	Stops []GradientStop
}

func LinearGradient() *GradientBuilder {
	return &GradientBuilder{Type: LinearGradientType}
}

func RadialGradient() *GradientBuilder {
	return &GradientBuilder{Type: RadialGradientType}
}

func ConicGradient() *GradientBuilder {
	return &GradientBuilder{Type: ConicGradientType}
}

// Stop appends a stop of colour c at position at, and returns the builder.
func (g *GradientBuilder) Stop(at float32, c color.Color) *GradientBuilder {
	g.Stops = append(g.Stops, GradientStop{At: at, Color: toNRGBA(c)})
	return g
}

// Build returns the gradient value described by the builder, of the form
// "linear-gradient(rgb(r, g, b, a) 50%, ...)". Stops are emitted in the
// order they were added.
func (g *GradientBuilder) Build() Value {
	stops := make([]string, 0, len(g.Stops))
	for _, s := range g.Stops {
		stops = append(stops, fmt.Sprintf("%s %s%%", formatColor(s.Color), formatFloat(s.At*100)))
	}
	return Gradient(fmt.Sprintf("%s-gradient(%s)", g.Type, strings.Join(stops, ", ")))
}
