package tween

import (
	"errors"
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"rgb(255, 0, 0)", color.NRGBA{R: 255, A: 255}},
		{"rgba(1,2,3,4)", color.NRGBA{R: 1, G: 2, B: 3, A: 4}},
		{"  RGB(1, 2, 3, 0.5) ", color.NRGBA{R: 1, G: 2, B: 3, A: 128}},
		{"rgb(1, 2, 3, 1.0)", color.NRGBA{R: 1, G: 2, B: 3, A: 255}},
		{"#fff", color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{"#0f08", color.NRGBA{G: 255, A: 136}},
		{"#102030", color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 255}},
		{"#FF000080", color.NRGBA{R: 255, A: 128}},
		{"red", color.NRGBA{R: 255, A: 255}},
		{"CornflowerBlue", color.NRGBA{R: 0x64, G: 0x95, B: 0xed, A: 255}},
		{"transparent", color.NRGBA{}},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("%q: unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%q: got %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseColorErrors(t *testing.T) {
	for _, in := range []string{
		"",
		"#",
		"#12345",
		"#gggggg",
		"rgb(1, 2)",
		"rgb(1, 2, 3, 4, 5)",
		"rgb(256, 0, 0)",
		"rgb(-1, 0, 0)",
		"rgb(1, 2, 3",
		"rgb(1, 2, 3, 1.5)",
		"rgbish",
		"notacolor",
	} {
		if _, err := ParseColor(in); !errors.Is(err, ErrSyntax) {
			t.Errorf("%q: got error %v, want ErrSyntax", in, err)
		}
	}
}

func TestParseShadow(t *testing.T) {
	tests := []struct {
		in   string
		want Shadow
	}{
		{
			"inset 1px 2px 3px 4px rgb(0, 0, 0, 128)",
			Shadow{Position: Inset, X: 1, Y: 2, Blur: 3, Spread: 4, Fill: Flat(color.NRGBA{A: 128})},
		},
		{
			"5 -5 black",
			Shadow{X: 5, Y: -5, Fill: Flat(color.NRGBA{A: 255})},
		},
		{
			"0 2.5 6 #ff0000",
			Shadow{X: 0, Y: 2.5, Blur: 6, Fill: Flat(color.NRGBA{R: 255, A: 255})},
		},
		{
			"2 2 linear-gradient(rgb(0, 0, 0, 255) 0%)",
			Shadow{X: 2, Y: 2, Fill: GradientPaint("linear-gradient(rgb(0, 0, 0, 255) 0%)")},
		},
	}
	for _, tt := range tests {
		got, err := ParseShadow(tt.in)
		if err != nil {
			t.Errorf("%q: unexpected error: %v", tt.in, err)
			continue
		}
		diff(t, tt.want, got)
	}
}

func TestParseShadowErrors(t *testing.T) {
	for _, in := range []string{"", "black", "5 black", "inset 5", "5 5 nope", "5 5"} {
		if _, err := ParseShadow(in); !errors.Is(err, ErrSyntax) {
			t.Errorf("%q: got error %v, want ErrSyntax", in, err)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Value
	}{
		{"linear-gradient(rgb(0, 0, 0, 255) 0%)", Gradient("linear-gradient(rgb(0, 0, 0, 255) 0%)")},
		{"radial-gradient(x)", Gradient("radial-gradient(x)")},
		{"rgb(1, 2, 3)", Color(color.NRGBA{R: 1, G: 2, B: 3, A: 255})},
		{"1 2 3 4 white", ShadowValue(Shadow{X: 1, Y: 2, Blur: 3, Spread: 4, Fill: Flat(white)})},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Errorf("%q: unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%q: got %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := Parse("sideways"); !errors.Is(err, ErrSyntax) {
		t.Errorf("got error %v, want ErrSyntax", err)
	}
	mustPanic(t, func() { MustParse("sideways") })
}

func TestParseLiteralRoundTrip(t *testing.T) {
	for _, in := range []string{
		"rgb(12, 34, 56, 78)",
		"#abcdef",
		"salmon",
		"olive",
		"inset 1 2 3 4 rgb(9, 8, 7, 6)",
		"-1.25 0.1 7.5 -0.5 #00000080",
		"3px 4px teal",
		"linear-gradient(rgb(255, 0, 0, 255) 0%, rgb(0, 0, 255, 255) 50%)",
	} {
		v, err := Parse(in)
		if err != nil {
			t.Errorf("%q: %v", in, err)
			continue
		}
		lit := v.Literal()
		back, err := Parse(lit)
		if err != nil {
			t.Errorf("%q: reparsing %q: %v", in, lit, err)
			continue
		}
		if back != v {
			t.Errorf("%q: round trip through %q produced %v, want %v", in, lit, back, v)
		}
	}
}
