package tween

import (
	"fmt"
	"image/color"
	"strconv"

	"gioui.org/f32"
)

type Kind uint8

const (
	ColorKind Kind = iota + 1
	NumberKind
	// An opaque gradient descriptor. Gradients can't be interpolated.
	GradientKind
	PointKind
	ShadowKind
)

func (k Kind) String() string {
	switch k {
	case ColorKind:
		return "Color"
	case NumberKind:
		return "Number"
	case GradientKind:
		return "Gradient"
	case PointKind:
		return "Point"
	case ShadowKind:
		return "Shadow"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Value is a snapshot of an animatable property.
//
// Values are immutable and comparable. The zero Value has no kind and is not
// valid input to any function in this package.
type Value struct {
	kind     Kind
	color    color.NRGBA
	number   float32
	gradient string
	point    f32.Point
	shadow   Shadow
}

// Color returns a colour value. The colour is stored as non-premultiplied
// 8-bit RGBA.
func Color(c color.Color) Value {
	return Value{kind: ColorKind, color: toNRGBA(c)}
}

func Number(f float32) Value {
	return Value{kind: NumberKind, number: f}
}

// Gradient returns a value holding the gradient descriptor desc verbatim.
// See [GradientBuilder] for constructing descriptors.
func Gradient(desc string) Value {
	return Value{kind: GradientKind, gradient: desc}
}

func Point(p f32.Point) Value {
	return Value{kind: PointKind, point: p}
}

// Pt returns the point value (x, y).
func Pt(x, y float32) Value {
	return Point(f32.Point{X: x, Y: y})
}

func ShadowValue(s Shadow) Value {
	return Value{kind: ShadowKind, shadow: s}
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) mustBe(k Kind) {
	if v.kind != k {
		panic(fmt.Sprintf("%v value used as %v", v.kind, k))
	}
}

// AsColor returns the colour of a ColorKind value. It panics for other kinds.
func (v Value) AsColor() color.NRGBA {
	v.mustBe(ColorKind)
	return v.color
}

// AsNumber returns the number of a NumberKind value. It panics for other
// kinds.
func (v Value) AsNumber() float32 {
	v.mustBe(NumberKind)
	return v.number
}

// AsGradient returns the descriptor of a GradientKind value. It panics for
// other kinds.
func (v Value) AsGradient() string {
	v.mustBe(GradientKind)
	return v.gradient
}

// AsPoint returns the point of a PointKind value. It panics for other kinds.
func (v Value) AsPoint() f32.Point {
	v.mustBe(PointKind)
	return v.point
}

// AsShadow returns the shadow of a ShadowKind value. It panics for other
// kinds.
func (v Value) AsShadow() Shadow {
	v.mustBe(ShadowKind)
	return v.shadow
}

// String returns a human-readable form of any value. Use [Value.Literal] for
// the form consumed by renderers.
func (v Value) String() string {
	switch v.kind {
	case ColorKind:
		return formatColor(v.color)
	case NumberKind:
		return formatFloat(v.number)
	case GradientKind:
		return v.gradient
	case PointKind:
		return fmt.Sprintf("(%s, %s)", formatFloat(v.point.X), formatFloat(v.point.Y))
	case ShadowKind:
		return v.shadow.String()
	default:
		return "InvalidValue"
	}
}

func toNRGBA(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// formatFloat formats f with the fewest digits that identify it, and never
// in exponent notation.
func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', -1, 32)
}
