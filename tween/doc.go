// Package tween interpolates the values of animated properties.
//
// A [Value] is one of a closed set of kinds: colours, numbers, points,
// shadows and gradients. [Lerp] blends two values of the same kind by a
// fraction, usually the output of an [ease.Curve]; [Tween] combines the two
// steps. [Value.Literal] turns colours, shadows and gradients into the
// CSS-like text that renderers consume, and [Parse] turns such text back into
// values.
//
// Gradients are carried as opaque descriptors and cannot be interpolated.
// Interpolating values of different kinds, gradients, or shadows with
// gradient fills panics.
package tween
