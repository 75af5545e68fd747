package tween

import "honnef.co/go/animate/ease"

// Tween animates a property from Start to End along Curve.
//
// Start and End must be of the same kind and interpolable; see [Lerp].
type Tween struct {
	Curve ease.Curve
	Start Value
	End   Value
}

// At returns the value of the property at normalized time t.
func (tw Tween) At(t float32) Value {
	return Lerp(tw.Start, tw.End, tw.Curve.Eval(t))
}
