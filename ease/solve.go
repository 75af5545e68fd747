package ease

import "math"

const (
	// itpN0 is the slack over bisection's iteration count given to the
	// secant steps.
	itpN0 = 1
	// itpK1 scales the truncation of the secant steps. k2 is fixed at 2.
	itpK1 = 0.2
)

// SolveITP returns a root of f in [a, b], to within epsilon, using the [ITP
// method]. ya and yb are f(a) and f(b) and must satisfy ya < 0 < yb.
//
// The cubic solver uses it once Newton-Raphson iteration has failed.
//
// [ITP method]: https://en.wikipedia.org/wiki/ITP_Method
func SolveITP(f func(float64) float64, a, b, epsilon, ya, yb float64) float64 {
	half := int(max(math.Ceil(math.Log2((b-a)/epsilon))-1, 0))
	r0 := epsilon * float64(uint64(1)<<(half+itpN0))
	for ; b-a > 2*epsilon; r0 /= 2 {
		mid := (a + b) / 2
		r := r0 - (b-a)/2

		// Interpolate, truncate towards the midpoint, then project into
		// the minmax radius around it.
		x := (yb*a - ya*b) / (yb - ya)
		sign := mid - x
		if delta := itpK1 * (b - a) * (b - a); delta <= math.Abs(mid-x) {
			x += math.Copysign(delta, sign)
		} else {
			x = mid
		}
		if math.Abs(x-mid) > r {
			x = mid - math.Copysign(r, sign)
		}

		switch y := f(x); {
		case y > 0:
			b, yb = x, y
		case y < 0:
			a, ya = x, y
		default:
			return x
		}
	}
	return (a + b) / 2
}
