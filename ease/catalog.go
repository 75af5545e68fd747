package ease

import (
	"maps"
	"slices"
)

// Standard curves. The cubic presets follow the CSS keywords and the
// easings.net catalog; the three-point cubics are Material motion curves.
var (
	None       = Curve{Kind: NoneKind}
	Linear     = Curve{Kind: LinearKind}
	Decelerate = Curve{Kind: DecelerateKind}

	FastLinearToSlowEaseIn   = Cubic(0.18, 1.0, 0.04, 1.0)
	FastEaseInToSlowEaseOut  = ThreePointCubic(Pt(0.056, 0.024), Pt(0.108, 0.3085), Pt(0.198, 0.541), Pt(0.3655, 1.0), Pt(0.5465, 0.989))
	Ease                     = Cubic(0.25, 0.1, 0.25, 1.0)
	EaseIn                   = Cubic(0.42, 0.0, 1.0, 1.0)
	EaseInToLinear           = Cubic(0.67, 0.03, 0.65, 0.09)
	EaseInSine               = Cubic(0.47, 0.0, 0.745, 0.715)
	EaseInQuad               = Cubic(0.55, 0.085, 0.68, 0.53)
	EaseInCubic              = Cubic(0.55, 0.055, 0.675, 0.19)
	EaseInQuart              = Cubic(0.895, 0.03, 0.685, 0.22)
	EaseInQuint              = Cubic(0.755, 0.05, 0.855, 0.06)
	EaseInExpo               = Cubic(0.95, 0.05, 0.795, 0.035)
	EaseInCirc               = Cubic(0.6, 0.04, 0.98, 0.335)
	EaseInBack               = Cubic(0.6, -0.28, 0.735, 0.045)
	EaseOut                  = Cubic(0.0, 0.0, 0.58, 1.0)
	LinearToEaseOut          = Cubic(0.35, 0.91, 0.33, 0.97)
	EaseOutSine              = Cubic(0.39, 0.575, 0.565, 1.0)
	EaseOutQuad              = Cubic(0.25, 0.46, 0.45, 0.94)
	EaseOutCubic             = Cubic(0.215, 0.61, 0.355, 1.0)
	EaseOutQuart             = Cubic(0.165, 0.84, 0.44, 1.0)
	EaseOutQuint             = Cubic(0.23, 1.0, 0.32, 1.0)
	EaseOutExpo              = Cubic(0.19, 1.0, 0.22, 1.0)
	EaseOutCirc              = Cubic(0.075, 0.82, 0.165, 1.0)
	EaseOutBack              = Cubic(0.175, 0.885, 0.32, 1.275)
	EaseInOut                = Cubic(0.42, 0.0, 0.58, 1.0)
	EaseInOutSine            = Cubic(0.445, 0.05, 0.55, 0.95)
	EaseInOutQuad            = Cubic(0.455, 0.03, 0.515, 0.955)
	EaseInOutCubic           = Cubic(0.645, 0.045, 0.355, 1.0)
	EaseInOutCubicEmphasized = ThreePointCubic(Pt(0.05, 0.0), Pt(0.133333, 0.06), Pt(0.166666, 0.4), Pt(0.208333, 0.82), Pt(0.25, 1.0))
	EaseInOutQuart           = Cubic(0.77, 0.0, 0.175, 1.0)
	EaseInOutQuint           = Cubic(0.86, 0.0, 0.07, 1.0)
	EaseInOutExpo            = Cubic(1.0, 0.0, 0.0, 1.0)
	EaseInOutCirc            = Cubic(0.785, 0.135, 0.15, 0.86)
	EaseInOutBack            = Cubic(0.68, -0.55, 0.265, 1.55)
	FastOutSlowIn            = Cubic(0.4, 0.0, 0.2, 1.0)
	SlowMiddle               = Cubic(0.15, 0.85, 0.85, 0.15)

	BounceIn    = Curve{Kind: BounceInKind}
	BounceOut   = Curve{Kind: BounceOutKind}
	BounceInOut = Curve{Kind: BounceInOutKind}

	ElasticIn    = Elastic(ElasticInKind, DefaultElasticPeriod)
	ElasticOut   = Elastic(ElasticOutKind, DefaultElasticPeriod)
	ElasticInOut = Elastic(ElasticInOutKind, DefaultElasticPeriod)
)

var byName = map[string]Curve{
	"none":                          None,
	"linear":                        Linear,
	"decelerate":                    Decelerate,
	"fast-linear-to-slow-ease-in":   FastLinearToSlowEaseIn,
	"fast-ease-in-to-slow-ease-out": FastEaseInToSlowEaseOut,
	"ease":                          Ease,
	"ease-in":                       EaseIn,
	"ease-in-to-linear":             EaseInToLinear,
	"ease-in-sine":                  EaseInSine,
	"ease-in-quad":                  EaseInQuad,
	"ease-in-cubic":                 EaseInCubic,
	"ease-in-quart":                 EaseInQuart,
	"ease-in-quint":                 EaseInQuint,
	"ease-in-expo":                  EaseInExpo,
	"ease-in-circ":                  EaseInCirc,
	"ease-in-back":                  EaseInBack,
	"ease-out":                      EaseOut,
	"linear-to-ease-out":            LinearToEaseOut,
	"ease-out-sine":                 EaseOutSine,
	"ease-out-quad":                 EaseOutQuad,
	"ease-out-cubic":                EaseOutCubic,
	"ease-out-quart":                EaseOutQuart,
	"ease-out-quint":                EaseOutQuint,
	"ease-out-expo":                 EaseOutExpo,
	"ease-out-circ":                 EaseOutCirc,
	"ease-out-back":                 EaseOutBack,
	"ease-in-out":                   EaseInOut,
	"ease-in-out-sine":              EaseInOutSine,
	"ease-in-out-quad":              EaseInOutQuad,
	"ease-in-out-cubic":             EaseInOutCubic,
	"ease-in-out-cubic-emphasized":  EaseInOutCubicEmphasized,
	"ease-in-out-quart":             EaseInOutQuart,
	"ease-in-out-quint":             EaseInOutQuint,
	"ease-in-out-expo":              EaseInOutExpo,
	"ease-in-out-circ":              EaseInOutCirc,
	"ease-in-out-back":              EaseInOutBack,
	"fast-out-slow-in":              FastOutSlowIn,
	"slow-middle":                   SlowMiddle,
	"bounce-in":                     BounceIn,
	"bounce-out":                    BounceOut,
	"bounce-in-out":                 BounceInOut,
	"elastic-in":                    ElasticIn,
	"elastic-out":                   ElasticOut,
	"elastic-in-out":                ElasticInOut,
}

// ByName returns the standard curve with the given kebab-case name, such as
// "ease-in-out-back".
func ByName(name string) (Curve, bool) {
	c, ok := byName[name]
	return c, ok
}

// Names returns the names accepted by [ByName] in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(byName))
}
