package tween

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/image/colornames"
)

// ErrSyntax is wrapped by all errors returned by the parsing functions.
var ErrSyntax = errors.New("invalid literal")

var gradientPrefixes = []string{"linear-gradient(", "radial-gradient(", "conic-gradient("}

func isGradient(s string) bool {
	for _, p := range gradientPrefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// Parse parses a gradient, colour or shadow literal.
//
// Gradient descriptors are recognized by their "linear-gradient(",
// "radial-gradient(" or "conic-gradient(" prefix and are kept verbatim. See
// [ParseColor] and [ParseShadow] for the other two forms.
func Parse(s string) (Value, error) {
	s = strings.TrimSpace(s)
	if isGradient(s) {
		return Gradient(s), nil
	}
	if c, err := ParseColor(s); err == nil {
		return Color(c), nil
	}
	if sh, err := ParseShadow(s); err == nil {
		return ShadowValue(sh), nil
	}
	return Value{}, fmt.Errorf("%w: %q is neither a gradient, a colour nor a shadow", ErrSyntax, s)
}

// MustParse is like [Parse] but panics if the literal cannot be parsed. It
// is meant for literals in source code.
func MustParse(s string) Value {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// ParseColor parses a colour literal. It accepts "rgb(r, g, b)" and
// "rgb(r, g, b, a)" (also spelled "rgba"), "#rgb", "#rgba", "#rrggbb",
// "#rrggbbaa", "transparent" and the SVG 1.1 colour keywords.
//
// Channels are integers in [0, 255]. An alpha channel that contains a decimal
// point is instead read as a fraction in [0, 1].
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "":
		return color.NRGBA{}, fmt.Errorf("%w: empty colour", ErrSyntax)
	case s == "transparent":
		return color.NRGBA{}, nil
	case s[0] == '#':
		return parseHexColor(s)
	case strings.HasPrefix(s, "rgb"):
		return parseRGBColor(s)
	}
	if c, ok := colornames.Map[s]; ok {
		return toNRGBA(c), nil
	}
	return color.NRGBA{}, fmt.Errorf("%w: unknown colour %q", ErrSyntax, s)
}

func parseHexColor(s string) (color.NRGBA, error) {
	digits := s[1:]
	n, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: bad hex colour %q", ErrSyntax, s)
	}

	// nibble returns the i'th nibble from the left, out of count.
	nibble := func(i, count int) uint8 {
		return uint8(n >> (4 * (count - 1 - i)) & 0xF)
	}
	switch len(digits) {
	case 3, 4:
		c := color.NRGBA{A: 0xFF}
		ch := []*uint8{&c.R, &c.G, &c.B, &c.A}
		for i := range len(digits) {
			*ch[i] = nibble(i, len(digits)) * 0x11
		}
		return c, nil
	case 6, 8:
		c := color.NRGBA{A: 0xFF}
		ch := []*uint8{&c.R, &c.G, &c.B, &c.A}
		for i := range len(digits) / 2 {
			*ch[i] = nibble(2*i, len(digits))<<4 | nibble(2*i+1, len(digits))
		}
		return c, nil
	default:
		return color.NRGBA{}, fmt.Errorf("%w: hex colour %q must have 3, 4, 6 or 8 digits", ErrSyntax, s)
	}
}

func parseRGBColor(s string) (color.NRGBA, error) {
	body, ok := strings.CutPrefix(s, "rgba(")
	if !ok {
		body, ok = strings.CutPrefix(s, "rgb(")
	}
	if ok {
		body, ok = strings.CutSuffix(body, ")")
	}
	if !ok {
		return color.NRGBA{}, fmt.Errorf("%w: malformed rgb colour %q", ErrSyntax, s)
	}

	parts := strings.Split(body, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return color.NRGBA{}, fmt.Errorf("%w: rgb colour %q must have 3 or 4 channels", ErrSyntax, s)
	}
	var ch [4]uint8
	ch[3] = 0xFF
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if i == 3 && strings.Contains(p, ".") {
			f, err := strconv.ParseFloat(p, 32)
			if err != nil || f < 0 || f > 1 {
				return color.NRGBA{}, fmt.Errorf("%w: bad alpha %q in %q", ErrSyntax, p, s)
			}
			ch[i] = uint8(f*255 + 0.5)
			continue
		}
		n, err := strconv.ParseUint(p, 10, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("%w: bad channel %q in %q", ErrSyntax, p, s)
		}
		ch[i] = uint8(n)
	}
	return color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil
}

// ParseShadow parses a shadow literal of the form
// "[inset] x y [blur [spread]] fill", where the lengths may carry a "px" unit
// and fill is a colour literal or a gradient descriptor.
func ParseShadow(s string) (Shadow, error) {
	var sh Shadow
	rest := strings.TrimSpace(s)
	if word, after := cutWord(rest); strings.EqualFold(word, "inset") {
		sh.Position = Inset
		rest = after
	}

	var lengths [4]float32
	n := 0
	for n < len(lengths) {
		word, after := cutWord(rest)
		f, err := strconv.ParseFloat(strings.TrimSuffix(word, "px"), 32)
		if err != nil {
			break
		}
		lengths[n] = float32(f)
		n++
		rest = after
	}
	if n < 2 {
		return Shadow{}, fmt.Errorf("%w: shadow %q needs at least x and y offsets", ErrSyntax, s)
	}
	sh.X, sh.Y, sh.Blur, sh.Spread = lengths[0], lengths[1], lengths[2], lengths[3]

	if isGradient(rest) {
		sh.Fill = GradientPaint(rest)
		return sh, nil
	}
	c, err := ParseColor(rest)
	if err != nil {
		return Shadow{}, fmt.Errorf("bad fill in shadow %q: %w", s, err)
	}
	sh.Fill = Flat(c)
	return sh, nil
}

// cutWord splits s after its first whitespace-delimited word.
func cutWord(s string) (word, rest string) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimLeftFunc(s[i:], unicode.IsSpace)
}
