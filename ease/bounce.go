package ease

// bounce is the decaying bounce of BounceOut: four parabolic arcs, each
// landing at 1 with a quarter of the previous arc's height.
func bounce(t float64) float64 {
	switch {
	case t < 1.0/2.75:
		return 7.5625 * t * t
	case t < 2/2.75:
		t -= 1.5 / 2.75
		return 7.5625*t*t + 0.75
	case t < 2.5/2.75:
		t -= 2.25 / 2.75
		return 7.5625*t*t + 0.9375
	default:
		t -= 2.625 / 2.75
		return 7.5625*t*t + 0.984375
	}
}
