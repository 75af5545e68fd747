package ease

import "math"

// DefaultElasticPeriod is the oscillation period of [ElasticIn],
// [ElasticOut] and [ElasticInOut].
const DefaultElasticPeriod = 0.4

func elasticIn(t, period float64) float64 {
	s := period / 4
	t -= 1
	return -math.Pow(2, 10*t) * math.Sin((t-s)*2*math.Pi/period)
}

func elasticOut(t, period float64) float64 {
	s := period / 4
	return math.Pow(2, -10*t)*math.Sin((t-s)*2*math.Pi/period) + 1
}

func elasticInOut(t, period float64) float64 {
	s := period / 4
	t = 2*t - 1
	if t < 0 {
		return -0.5 * math.Pow(2, 10*t) * math.Sin((t-s)*2*math.Pi/period)
	}
	return math.Pow(2, -10*t)*math.Sin((t-s)*2*math.Pi/period)*0.5 + 1
}
