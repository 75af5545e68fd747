package tween

import (
	"image/color"
	"testing"

	"gioui.org/f32"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var (
	black = color.NRGBA{A: 255}
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

func TestLerpNumber(t *testing.T) {
	if got := Lerp(Number(0), Number(10), 0.5); got != Number(5) {
		t.Errorf("got %v, want 5", got)
	}
	if got := Lerp(Number(-3), Number(7), 0); got != Number(-3) {
		t.Errorf("got %v, want -3", got)
	}
	if got := Lerp(Number(-3), Number(7), 1); got != Number(7) {
		t.Errorf("got %v, want 7", got)
	}
}

func TestLerpFloat64(t *testing.T) {
	if got := LerpFloat(2.0, 4.0, 0.25); got != 2.5 {
		t.Errorf("got %g, want 2.5", got)
	}
}

func TestLerpPoint(t *testing.T) {
	got := Lerp(Pt(0, 10), Pt(10, -10), 0.25).AsPoint()
	diff(t, f32.Point{X: 2.5, Y: 5}, got)
}

func TestLerpColor(t *testing.T) {
	got := Lerp(Color(black), Color(white), 0.5).AsColor()
	for _, ch := range []uint8{got.R, got.G, got.B} {
		if ch != 127 && ch != 128 {
			t.Errorf("got %v, want mid-gray", got)
		}
	}
	if got.A != 255 {
		t.Errorf("got alpha %d, want 255", got.A)
	}

	got = LerpColor(color.NRGBA{R: 10, G: 20, B: 30, A: 0}, color.NRGBA{R: 20, G: 40, B: 60, A: 100}, 0.5)
	diff(t, color.NRGBA{R: 15, G: 30, B: 45, A: 50}, got)
}

func TestLerpColorOvershoot(t *testing.T) {
	diff(t, white, LerpColor(black, white, 1.2))
	diff(t, black, LerpColor(black, white, -0.2))
}

func TestLerpShadow(t *testing.T) {
	a := Shadow{Position: Inset, X: 0, Y: 2, Blur: 4, Spread: 0, Fill: Flat(black)}
	b := Shadow{Position: Outset, X: 10, Y: 4, Blur: 8, Spread: -2, Fill: Flat(white)}
	got := Lerp(ShadowValue(a), ShadowValue(b), 0.5).AsShadow()
	want := Shadow{
		Position: Inset,
		X:        5,
		Y:        3,
		Blur:     6,
		Spread:   -1,
		Fill:     Flat(color.NRGBA{R: 128, G: 128, B: 128, A: 255}),
	}
	diff(t, want, got)
}

func TestLerpSelf(t *testing.T) {
	values := []Value{
		Number(0.1),
		Number(-1234.5),
		Pt(0.3, -7),
		Color(color.NRGBA{R: 200, G: 13, B: 77, A: 128}),
		Color(white),
		ShadowValue(Shadow{Position: Inset, X: 0.7, Y: 1.1, Blur: 3, Spread: 0.2, Fill: Flat(color.NRGBA{R: 99, G: 1, B: 254, A: 3})}),
	}
	opts := cmp.Options{cmp.AllowUnexported(Value{}), cmpopts.EquateApprox(1e-6, 0)}
	for _, v := range values {
		for _, x := range []float32{0, 0.1, 0.3, 0.5, 0.77, 1} {
			diff(t, v, Lerp(v, v, x), opts)
		}
	}
}

func TestLerpContractViolations(t *testing.T) {
	grad := LinearGradient().Stop(0, black).Stop(1, white).Build()
	gradShadow := ShadowValue(Shadow{Fill: GradientPaint(grad.AsGradient())})
	flatShadow := ShadowValue(Shadow{Fill: Flat(black)})

	tests := []struct {
		name       string
		start, end Value
	}{
		{"number and point", Number(1), Pt(1, 1)},
		{"color and number", Color(black), Number(0)},
		{"gradients", grad, grad},
		{"gradient fill", gradShadow, flatShadow},
		{"gradient fill end", flatShadow, gradShadow},
		{"zero values", Value{}, Value{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mustPanic(t, func() { Lerp(tt.start, tt.end, 0.5) })
		})
	}
}

func TestAccessorsPanic(t *testing.T) {
	mustPanic(t, func() { Number(1).AsColor() })
	mustPanic(t, func() { Color(black).AsNumber() })
	mustPanic(t, func() { Pt(1, 2).AsShadow() })
	mustPanic(t, func() { Number(1).AsPoint() })
	mustPanic(t, func() { Number(1).AsGradient() })
}
