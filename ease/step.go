package ease

import "math"

func (c Curve) stepped(t float64) float64 {
	n := c.Steps
	if n <= 0 {
		return 0
	}

	lo, hi := 0, n-1
	if c.InitialSingleFrame {
		lo = 1
		if !c.FinalSingleFrame {
			hi = n
		}
	}
	levels := hi - lo + 1
	if levels <= 0 {
		// No level fits between the first and the last frame.
		return 1
	}

	idx := int(math.Floor(t * float64(levels)))
	idx = min(max(idx, 0), levels-1)
	return float64(lo+idx) / float64(n)
}
