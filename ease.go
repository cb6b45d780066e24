package interpolation

import (
	"fmt"
	"strings"
)

// EaseFunction identifies one of the thirty easing curves.
// The zero value is [EaseQuadraticIn]. Values are stateless tags used
// purely for dispatch via [Ease] or [EaseFunction.Calc].
type EaseFunction int

const (
	EaseQuadraticIn EaseFunction = iota
	EaseQuadraticOut
	EaseQuadraticInOut

	EaseCubicIn
	EaseCubicOut
	EaseCubicInOut

	EaseQuarticIn
	EaseQuarticOut
	EaseQuarticInOut

	EaseQuinticIn
	EaseQuinticOut
	EaseQuinticInOut

	EaseSineIn
	EaseSineOut
	EaseSineInOut

	EaseCircularIn
	EaseCircularOut
	EaseCircularInOut

	EaseExponentialIn
	EaseExponentialOut
	EaseExponentialInOut

	EaseElasticIn
	EaseElasticOut
	EaseElasticInOut

	EaseBackIn
	EaseBackOut
	EaseBackInOut

	EaseBounceIn
	EaseBounceOut
	EaseBounceInOut

	numEaseFunctions
)

// easeFunctionNames holds the canonical names, indexed by tag.
// These are the names accepted by [ParseEaseFunction] and printed by
// the CLI tools.
var easeFunctionNames = [numEaseFunctions]string{
	EaseQuadraticIn:    "quadratic-in",
	EaseQuadraticOut:   "quadratic-out",
	EaseQuadraticInOut: "quadratic-in-out",

	EaseCubicIn:    "cubic-in",
	EaseCubicOut:   "cubic-out",
	EaseCubicInOut: "cubic-in-out",

	EaseQuarticIn:    "quartic-in",
	EaseQuarticOut:   "quartic-out",
	EaseQuarticInOut: "quartic-in-out",

	EaseQuinticIn:    "quintic-in",
	EaseQuinticOut:   "quintic-out",
	EaseQuinticInOut: "quintic-in-out",

	EaseSineIn:    "sine-in",
	EaseSineOut:   "sine-out",
	EaseSineInOut: "sine-in-out",

	EaseCircularIn:    "circular-in",
	EaseCircularOut:   "circular-out",
	EaseCircularInOut: "circular-in-out",

	EaseExponentialIn:    "exponential-in",
	EaseExponentialOut:   "exponential-out",
	EaseExponentialInOut: "exponential-in-out",

	EaseElasticIn:    "elastic-in",
	EaseElasticOut:   "elastic-out",
	EaseElasticInOut: "elastic-in-out",

	EaseBackIn:    "back-in",
	EaseBackOut:   "back-out",
	EaseBackInOut: "back-in-out",

	EaseBounceIn:    "bounce-in",
	EaseBounceOut:   "bounce-out",
	EaseBounceInOut: "bounce-in-out",
}

// String returns the canonical lowercase name of the easing function,
// e.g. "quadratic-in-out".
func (e EaseFunction) String() string {
	if e < 0 || e >= numEaseFunctions {
		return fmt.Sprintf("EaseFunction(%d)", int(e))
	}
	return easeFunctionNames[e]
}

// ParseEaseFunction returns the easing function with the given name.
// Names are matched case-insensitively and underscores are accepted in
// place of hyphens, so "QuadraticIn" parses the same as "quadratic-in".
func ParseEaseFunction(name string) (EaseFunction, error) {
	key := normalizeEaseName(name)
	for fn, n := range easeFunctionNames {
		if key == strings.ReplaceAll(n, "-", "") {
			return EaseFunction(fn), nil
		}
	}
	return 0, fmt.Errorf("unknown ease function %q", name)
}

// normalizeEaseName lowercases a curve name and strips separators so
// that "BounceInOut", "bounce_in_out" and "bounce-in-out" compare equal.
func normalizeEaseName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, "-", "")
	name = strings.ReplaceAll(name, "_", "")
	return name
}

// AllEaseFunctions returns all thirty easing function tags in
// declaration order (quadratic first, bounce last).
func AllEaseFunctions() []EaseFunction {
	fns := make([]EaseFunction, numEaseFunctions)
	for i := range fns {
		fns[i] = EaseFunction(i)
	}
	return fns
}

// Calc applies the easing function to a float64 progress value.
// It is shorthand for Ease(e, p); use [Ease] directly for float32.
func (e EaseFunction) Calc(p float64) float64 {
	return Ease(e, p)
}

// Ease applies the easing function identified by fn to the progress
// value p. The input is clamped to [0, 1] like every named easing
// function. The switch covers all thirty tags; values outside the
// declared enum are a caller bug and panic.
func Ease[T Float](fn EaseFunction, p T) T {
	switch fn {
	case EaseQuadraticIn:
		return QuadraticIn(p)
	case EaseQuadraticOut:
		return QuadraticOut(p)
	case EaseQuadraticInOut:
		return QuadraticInOut(p)

	case EaseCubicIn:
		return CubicIn(p)
	case EaseCubicOut:
		return CubicOut(p)
	case EaseCubicInOut:
		return CubicInOut(p)

	case EaseQuarticIn:
		return QuarticIn(p)
	case EaseQuarticOut:
		return QuarticOut(p)
	case EaseQuarticInOut:
		return QuarticInOut(p)

	case EaseQuinticIn:
		return QuinticIn(p)
	case EaseQuinticOut:
		return QuinticOut(p)
	case EaseQuinticInOut:
		return QuinticInOut(p)

	case EaseSineIn:
		return SineIn(p)
	case EaseSineOut:
		return SineOut(p)
	case EaseSineInOut:
		return SineInOut(p)

	case EaseCircularIn:
		return CircularIn(p)
	case EaseCircularOut:
		return CircularOut(p)
	case EaseCircularInOut:
		return CircularInOut(p)

	case EaseExponentialIn:
		return ExponentialIn(p)
	case EaseExponentialOut:
		return ExponentialOut(p)
	case EaseExponentialInOut:
		return ExponentialInOut(p)

	case EaseElasticIn:
		return ElasticIn(p)
	case EaseElasticOut:
		return ElasticOut(p)
	case EaseElasticInOut:
		return ElasticInOut(p)

	case EaseBackIn:
		return BackIn(p)
	case EaseBackOut:
		return BackOut(p)
	case EaseBackInOut:
		return BackInOut(p)

	case EaseBounceIn:
		return BounceIn(p)
	case EaseBounceOut:
		return BounceOut(p)
	case EaseBounceInOut:
		return BounceInOut(p)
	}
	panic(fmt.Sprintf("interpolation: invalid ease function %d", int(fn)))
}
