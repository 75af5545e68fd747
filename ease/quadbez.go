package ease

// QuadBez is a quadratic Bézier segment. The solver uses it as the
// derivative of a [CubicBez].
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	v := Vec2(q.P0).Mul(mt * mt).Add(Vec2(q.P1).Mul(mt * 2.0).Add(Vec2(q.P2).Mul(t)).Mul(t))
	return Point(v)
}
