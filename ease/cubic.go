package ease

import "math"

const (
	// cubicAccuracy is the tolerance in time that the cubic solver works to.
	cubicAccuracy = 1e-6
	// maxNewtonIterations bounds the Newton-Raphson phase of the solver
	// before it falls back to the bracketed ITP method.
	maxNewtonIterations = 8
)

// CubicBez is a cubic Bézier segment.
//
// Easing curves use a CubicBez from (0, 0) to (1, 1) whose x axis is time and
// whose y axis is progress; see [UnitCubic].
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// UnitCubic returns the cubic Bézier from (0, 0) to (1, 1) with the interior
// control points p1 and p2, as used by CSS cubic-bezier timing functions.
func UnitCubic(p1, p2 Point) CubicBez {
	return CubicBez{Pt(0, 0), p1, p2, Pt(1, 1)}
}

// Eval returns the point at parameter t, using the Bernstein basis.
func (cb CubicBez) Eval(t float64) Point {
	mt := 1 - t
	w0, w1, w2, w3 := mt*mt*mt, 3*mt*mt*t, 3*mt*t*t, t*t*t
	return Pt(
		w0*cb.P0.X+w1*cb.P1.X+w2*cb.P2.X+w3*cb.P3.X,
		w0*cb.P0.Y+w1*cb.P1.Y+w2*cb.P2.Y+w3*cb.P3.Y,
	)
}

func (c CubicBez) Differentiate() QuadBez {
	return QuadBez{
		Point(c.P1.Sub(c.P0).Mul(3)),
		Point(c.P2.Sub(c.P1).Mul(3)),
		Point(c.P3.Sub(c.P2).Mul(3)),
	}
}

// SolveForX returns the curve parameter s at which the x coordinate of the
// curve equals x.
//
// The x coordinate must be monotonic on [0, 1], which is the case for the
// control points of any well-formed easing curve. The search is seeded from x
// itself and uses Newton-Raphson, falling back to the ITP method when the
// derivative vanishes or Newton's method doesn't converge.
func (c CubicBez) SolveForX(x float64) float64 {
	deriv := c.Differentiate()
	s := x
	for range maxNewtonIterations {
		err := c.Eval(s).X - x
		if math.Abs(err) < cubicAccuracy {
			return s
		}
		dx := deriv.Eval(s).X
		if math.Abs(dx) < 1e-9 {
			break
		}
		s -= err / dx
		if s < 0 || s > 1 {
			break
		}
	}

	f := func(s float64) float64 { return c.Eval(s).X - x }
	ya, yb := f(0), f(1)
	if ya >= 0 {
		return 0
	}
	if yb <= 0 {
		return 1
	}
	return SolveITP(f, 0, 1, cubicAccuracy, ya, yb)
}

// Ease maps time x to progress by solving the curve for x and evaluating its
// y coordinate.
func (c CubicBez) Ease(x float64) float64 {
	return c.Eval(c.SolveForX(x)).Y
}
