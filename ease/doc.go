// Package ease implements easing curves that map normalized animation time to
// normalized progress.
//
// A [Curve] is a closed union of curve kinds, all evaluated through
// [Curve.Eval]. Every curve maps 0 to exactly 0 and 1 to exactly 1; in
// between, elastic and "back" curves may overshoot the range [0, 1].
//
// # Curve kinds
//
//   - [Linear] and [None]
//   - [Cubic], the CSS cubic-bezier timing function
//   - [ThreePointCubic], two cubics joined at a midpoint
//   - [Threshold], [SawTooth] and [Stepped]
//   - [BounceIn], [BounceOut], [BounceInOut]
//   - [Elastic] with the presets [ElasticIn], [ElasticOut], [ElasticInOut]
//   - [Decelerate]
//   - [Split] and [Interval], which compose other curves
//
// Standard presets are available as package-level variables and, by their
// kebab-case names, through [ByName].
//
// # Cubic Béziers
//
// Cubic easing curves are unit [CubicBez] segments from (0, 0) to (1, 1),
// whose x axis is time and whose y axis is progress. Evaluating them means
// solving x(s) = t for the curve parameter s, which [CubicBez.SolveForX] does
// with Newton-Raphson iteration and a bracketed [SolveITP] fallback.
package ease
