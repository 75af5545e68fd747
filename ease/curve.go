package ease

import (
	"fmt"
	"math"
)

type Kind uint8

const (
	// Always yields 1 in the interior, jumping straight to the end.
	NoneKind Kind = iota
	LinearKind
	// A single cubic Bézier with the interior control points P1 and P2.
	CubicKind
	// Two cubic Béziers joined at Mid. The first uses P1 and P2, the second P3
	// and P4, all in the coordinates of the whole curve.
	ThreePointCubicKind
	// A step from 0 to 1 at Param.
	ThresholdKind
	// Param repeating ramps from 0 to 1.
	SawToothKind
	BounceInKind
	BounceOutKind
	BounceInOutKind
	// Damped oscillations with the period Param.
	ElasticInKind
	ElasticOutKind
	ElasticInOutKind
	DecelerateKind
	// Steps discrete levels, see [Stepped].
	SteppedKind
	// First before Param and Second from Param on, see [Split].
	SplitKind
	// First squeezed into [Begin, End], see [Interval].
	IntervalKind
)

func (k Kind) String() string {
	switch k {
	case NoneKind:
		return "None"
	case LinearKind:
		return "Linear"
	case CubicKind:
		return "Cubic"
	case ThreePointCubicKind:
		return "ThreePointCubic"
	case ThresholdKind:
		return "Threshold"
	case SawToothKind:
		return "SawTooth"
	case BounceInKind:
		return "BounceIn"
	case BounceOutKind:
		return "BounceOut"
	case BounceInOutKind:
		return "BounceInOut"
	case ElasticInKind:
		return "ElasticIn"
	case ElasticOutKind:
		return "ElasticOut"
	case ElasticInOutKind:
		return "ElasticInOut"
	case DecelerateKind:
		return "Decelerate"
	case SteppedKind:
		return "Stepped"
	case SplitKind:
		return "Split"
	case IntervalKind:
		return "Interval"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Curve maps normalized time to normalized progress.
//
// A Curve is a closed union discriminated by Kind. Only the fields documented
// for a kind are meaningful; the zero value is [None]. Curves hold no state
// and can be shared freely between goroutines. Composite curves refer to
// their parts by pointer, so two of them are equal only if they share their
// parts.
type Curve struct {
	Kind Kind

	P1  Point
	P2  Point
	Mid Point
	P3  Point
	P4  Point

	// Param is the threshold of ThresholdKind, the number of teeth of
	// SawToothKind, the period of the elastic kinds and the split point of
	// SplitKind.
	Param float64

	Begin float64
	End   float64

	First  *Curve
	Second *Curve

	Steps              int
	InitialSingleFrame bool
	FinalSingleFrame   bool
}

// Eval returns the progress at time t.
//
// Eval(0) is exactly 0 and Eval(1) is exactly 1 for every curve. For other
// values of t, some curves overshoot the range [0, 1]. Values of t outside
// [0, 1] are not clamped and are interpreted by the curve's formula.
func (c Curve) Eval(t float32) float32 {
	return float32(c.eval(float64(t)))
}

func (c Curve) eval(t float64) float64 {
	if t == 0 || t == 1 {
		return t
	}

	switch c.Kind {
	case NoneKind:
		return 1
	case LinearKind:
		return t
	case CubicKind:
		return UnitCubic(c.P1, c.P2).Ease(t)
	case ThreePointCubicKind:
		return c.threePointCubic(t)
	case ThresholdKind:
		if t < c.Param {
			return 0
		}
		return 1
	case SawToothKind:
		t *= c.Param
		return t - math.Trunc(t)
	case BounceInKind:
		return 1 - bounce(1-t)
	case BounceOutKind:
		return bounce(t)
	case BounceInOutKind:
		if t < 0.5 {
			return (1 - bounce(1-t*2)) * 0.5
		}
		return bounce(t*2-1)*0.5 + 0.5
	case ElasticInKind:
		return elasticIn(t, c.Param)
	case ElasticOutKind:
		return elasticOut(t, c.Param)
	case ElasticInOutKind:
		return elasticInOut(t, c.Param)
	case DecelerateKind:
		t = 1 - t
		return 1 - t*t
	case SteppedKind:
		return c.stepped(t)
	case SplitKind:
		return c.split(t)
	case IntervalKind:
		return c.interval(t)
	default:
		panic(fmt.Sprintf("invalid Curve kind %v", c.Kind))
	}
}

// threePointCubic evaluates whichever segment contains t, after scaling the
// segment's box to the unit square.
func (c Curve) threePointCubic(t float64) float64 {
	if t < c.Mid.X {
		sx, sy := c.Mid.X, c.Mid.Y
		seg := Cubic(c.P1.X/sx, c.P1.Y/sy, c.P2.X/sx, c.P2.Y/sy)
		return seg.eval(t/sx) * sy
	}

	sx, sy := 1-c.Mid.X, 1-c.Mid.Y
	d3, d4 := c.P3.Sub(c.Mid), c.P4.Sub(c.Mid)
	seg := Cubic(d3.X/sx, d3.Y/sy, d4.X/sx, d4.Y/sy)
	return seg.eval((t-c.Mid.X)/sx)*sy + c.Mid.Y
}

func (c Curve) split(t float64) float64 {
	at := c.Param
	if t < at {
		return c.First.eval(t/at) * at
	}
	return at + c.Second.eval((t-at)/(1-at))*(1-at)
}

func (c Curve) interval(t float64) float64 {
	if c.Begin == c.End {
		if t < c.Begin {
			return 0
		}
		return 1
	}
	t = (t - c.Begin) / (c.End - c.Begin)
	return c.First.eval(min(max(t, 0), 1))
}

// Cubic returns a cubic Bézier easing curve with the interior control points
// (a, b) and (c, d), as in CSS's cubic-bezier(a, b, c, d).
func Cubic(a, b, c, d float64) Curve {
	return Curve{Kind: CubicKind, P1: Pt(a, b), P2: Pt(c, d)}
}

// ThreePointCubic returns a curve made of two cubic Béziers that meet at mid.
// The first runs from (0, 0) to mid with the control points a1 and b1, the
// second from mid to (1, 1) with the control points a2 and b2.
func ThreePointCubic(a1, b1, mid, a2, b2 Point) Curve {
	return Curve{Kind: ThreePointCubicKind, P1: a1, P2: b1, Mid: mid, P3: a2, P4: b2}
}

// Threshold returns a curve that is 0 before threshold and 1 from it on.
func Threshold(threshold float64) Curve {
	return Curve{Kind: ThresholdKind, Param: threshold}
}

// SawTooth returns a curve that ramps from 0 to 1 count times.
func SawTooth(count float64) Curve {
	return Curve{Kind: SawToothKind, Param: count}
}

// Elastic returns an elastic curve of the given kind with the given
// oscillation period. It panics if kind isn't one of the elastic kinds.
func Elastic(kind Kind, period float64) Curve {
	switch kind {
	case ElasticInKind, ElasticOutKind, ElasticInOutKind:
		return Curve{Kind: kind, Param: period}
	default:
		panic(fmt.Sprintf("%v is not an elastic curve kind", kind))
	}
}

// Stepped returns a curve that quantizes progress into levels that are
// multiples of 1/steps.
//
// By default, the interior of the curve shows the levels 0 through
// (steps-1)/steps for equal amounts of time, and 1 is reached at the end.
// If initialSingleFrame is set, level 0 is only shown at the start and the
// interior begins at 1/steps; in that case, unless finalSingleFrame is set as
// well, level 1 occupies the last step.
func Stepped(steps int, initialSingleFrame, finalSingleFrame bool) Curve {
	return Curve{
		Kind:               SteppedKind,
		Steps:              steps,
		InitialSingleFrame: initialSingleFrame,
		FinalSingleFrame:   finalSingleFrame,
	}
}

// Split returns a curve that follows begin up to time at and end from then on.
// Each part is scaled to its share of time and progress: begin runs from (0, 0)
// to (at, at) and end from (at, at) to (1, 1). It panics if at is outside of
// [0, 1].
func Split(at float64, begin, end Curve) Curve {
	if !(at >= 0 && at <= 1) {
		panic(fmt.Sprintf("split point %g outside of [0, 1]", at))
	}
	return Curve{Kind: SplitKind, Param: at, First: &begin, Second: &end}
}

// Interval returns a curve that is 0 until begin, 1 from end on, and c
// stretched over [begin, end] in between. It panics unless
// 0 <= begin <= end <= 1.
func Interval(begin, end float64, c Curve) Curve {
	if !(0 <= begin && begin <= end && end <= 1) {
		panic(fmt.Sprintf("invalid interval [%g, %g]", begin, end))
	}
	return Curve{Kind: IntervalKind, Begin: begin, End: end, First: &c}
}

func (c Curve) String() string {
	switch c.Kind {
	case NoneKind, LinearKind, BounceInKind, BounceOutKind, BounceInOutKind, DecelerateKind:
		return c.Kind.String()
	case CubicKind:
		return fmt.Sprintf("Cubic(%g, %g, %g, %g)", c.P1.X, c.P1.Y, c.P2.X, c.P2.Y)
	case ThreePointCubicKind:
		return fmt.Sprintf("ThreePointCubic(%s, %s, %s, %s, %s)", c.P1, c.P2, c.Mid, c.P3, c.P4)
	case ThresholdKind, SawToothKind, ElasticInKind, ElasticOutKind, ElasticInOutKind:
		return fmt.Sprintf("%s(%g)", c.Kind, c.Param)
	case SteppedKind:
		return fmt.Sprintf("Stepped(%d, %t, %t)", c.Steps, c.InitialSingleFrame, c.FinalSingleFrame)
	case SplitKind:
		return fmt.Sprintf("Split(%g, %v, %v)", c.Param, c.First, c.Second)
	case IntervalKind:
		return fmt.Sprintf("Interval(%g, %g, %v)", c.Begin, c.End, c.First)
	default:
		return "InvalidCurve"
	}
}

// Sample evaluates the curve at n+1 evenly spaced times, including 0 and 1.
func (c Curve) Sample(n int) []Point {
	n = max(n, 1)
	out := make([]Point, 0, n+1)
	for i := range n + 1 {
		t := float64(i) / float64(n)
		out = append(out, Pt(t, float64(c.Eval(float32(t)))))
	}
	return out
}
