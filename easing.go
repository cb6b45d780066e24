package interpolation

import "math"

// normalized clamps a progress value to the unit interval.
// Every easing function applies this before evaluating its curve.
func normalized[T Float](p T) T {
	if p > 1 {
		return 1
	}
	if p < 0 {
		return 0
	}
	return p
}

// QuadraticIn accelerates from zero velocity: p².
// Input outside [0, 1] is clamped.
func QuadraticIn[T Float](p T) T {
	p = normalized(p)
	return p * p
}

// QuadraticOut decelerates to zero velocity: -p(p-2).
// Input outside [0, 1] is clamped.
func QuadraticOut[T Float](p T) T {
	p = normalized(p)
	return -(p * (p - 2))
}

// QuadraticInOut accelerates until halfway, then decelerates.
// Input outside [0, 1] is clamped.
func QuadraticInOut[T Float](p T) T {
	p = normalized(p)
	if p < easeMidpoint {
		return 2 * p * p
	}
	return -2*p*p + 4*p - 1
}

// CubicIn accelerates from zero velocity: p³.
// Input outside [0, 1] is clamped.
func CubicIn[T Float](p T) T {
	p = normalized(p)
	return p * p * p
}

// CubicOut decelerates to zero velocity: (p-1)³ + 1.
// Input outside [0, 1] is clamped.
func CubicOut[T Float](p T) T {
	p = normalized(p)
	f := p - 1
	return f*f*f + 1
}

// CubicInOut accelerates until halfway, then decelerates.
// Input outside [0, 1] is clamped.
func CubicInOut[T Float](p T) T {
	p = normalized(p)
	if p < easeMidpoint {
		return 4 * p * p * p
	}
	f := 2*p - 2
	return f*f*f*easeMidpoint + 1
}

// QuarticIn accelerates from zero velocity: p⁴.
// Input outside [0, 1] is clamped.
func QuarticIn[T Float](p T) T {
	p = normalized(p)
	return p * p * p * p
}

// QuarticOut decelerates to zero velocity: (p-1)³(1-p) + 1.
// Input outside [0, 1] is clamped.
func QuarticOut[T Float](p T) T {
	p = normalized(p)
	f := p - 1
	return f*f*f*(1-p) + 1
}

// QuarticInOut accelerates until halfway, then decelerates.
// Input outside [0, 1] is clamped.
func QuarticInOut[T Float](p T) T {
	p = normalized(p)
	if p < easeMidpoint {
		return 8 * p * p * p * p
	}
	f := p - 1
	return -8*f*f*f*f + 1
}

// QuinticIn accelerates from zero velocity: p⁵.
// Input outside [0, 1] is clamped.
func QuinticIn[T Float](p T) T {
	p = normalized(p)
	return p * p * p * p * p
}

// QuinticOut decelerates to zero velocity: (p-1)⁵ + 1.
// Input outside [0, 1] is clamped.
func QuinticOut[T Float](p T) T {
	p = normalized(p)
	f := p - 1
	return f*f*f*f*f + 1
}

// QuinticInOut accelerates until halfway, then decelerates.
// Input outside [0, 1] is clamped.
func QuinticInOut[T Float](p T) T {
	p = normalized(p)
	if p < easeMidpoint {
		return 16 * p * p * p * p * p
	}
	f := 2*p - 2
	return f*f*f*f*f*easeMidpoint + 1
}

// SineIn accelerates along a quarter sine wave: sin((p-1)·π/2) + 1.
// Input outside [0, 1] is clamped.
func SineIn[T Float](p T) T {
	f := float64(normalized(p))
	return T(math.Sin((f-1)*halfPi) + 1)
}

// SineOut decelerates along a quarter sine wave: sin(p·π/2).
// Input outside [0, 1] is clamped.
func SineOut[T Float](p T) T {
	f := float64(normalized(p))
	return T(math.Sin(f * halfPi))
}

// SineInOut follows a half cosine wave: (1 - cos(p·π)) / 2.
// Input outside [0, 1] is clamped.
func SineInOut[T Float](p T) T {
	f := float64(normalized(p))
	return T(easeMidpoint * (1 - math.Cos(f*math.Pi)))
}

// CircularIn accelerates along a quarter circle arc: 1 - √(1-p²).
// Input outside [0, 1] is clamped.
func CircularIn[T Float](p T) T {
	f := float64(normalized(p))
	return T(1 - math.Sqrt(1-f*f))
}

// CircularOut decelerates along a quarter circle arc: √((2-p)p).
// Input outside [0, 1] is clamped.
func CircularOut[T Float](p T) T {
	f := float64(normalized(p))
	return T(math.Sqrt((2 - f) * f))
}

// CircularInOut accelerates until halfway, then decelerates, both
// halves along circle arcs. Input outside [0, 1] is clamped.
func CircularInOut[T Float](p T) T {
	f := float64(normalized(p))
	if f < easeMidpoint {
		return T(easeMidpoint * (1 - math.Sqrt(1-4*f*f)))
	}
	return T(easeMidpoint * (math.Sqrt(-(2*f-3)*(2*f-1)) + 1))
}

// ExponentialIn accelerates exponentially: 2^(10(p-1)), with the p == 0
// endpoint special-cased to 0 so the curve starts exactly at the
// origin. Input outside [0, 1] is clamped.
func ExponentialIn[T Float](p T) T {
	f := float64(normalized(p))
	if f == 0 {
		return T(f)
	}
	return T(math.Exp2(expSteepness * (f - 1)))
}

// ExponentialOut decelerates exponentially: 1 - 2^(-10p), with the
// p == 1 endpoint special-cased to 1 so the curve ends exactly at one.
// Input outside [0, 1] is clamped.
func ExponentialOut[T Float](p T) T {
	f := float64(normalized(p))
	if f == 1 {
		return T(f)
	}
	return T(1 - math.Exp2(-expSteepness*f))
}

// ExponentialInOut accelerates exponentially until halfway, then
// decelerates. Both endpoints are special-cased so the curve hits
// exactly 0 and 1. Input outside [0, 1] is clamped.
func ExponentialInOut[T Float](p T) T {
	f := float64(normalized(p))
	if f == 0 || f == 1 {
		return T(f)
	}
	if f < easeMidpoint {
		return T(easeMidpoint * math.Exp2(expInOutSteepness*f-expSteepness))
	}
	return T(-easeMidpoint*math.Exp2(-expInOutSteepness*f+expSteepness) + 1)
}

// ElasticIn overshoots below zero with a damped oscillation before
// snapping to one: sin(13·π/2·p)·2^(10(p-1)).
// Input outside [0, 1] is clamped.
func ElasticIn[T Float](p T) T {
	f := float64(normalized(p))
	return T(math.Sin(elasticPeriods*halfPi*f) * math.Exp2(expSteepness*(f-1)))
}

// ElasticOut overshoots above one with a damped oscillation before
// settling: sin(-13·π/2·(p+1))·2^(-10p) + 1.
// Input outside [0, 1] is clamped.
func ElasticOut[T Float](p T) T {
	f := float64(normalized(p))
	return T(math.Sin(-elasticPeriods*halfPi*(f+1))*math.Exp2(-expSteepness*f) + 1)
}

// ElasticInOut combines ElasticIn and ElasticOut around the midpoint.
// Input outside [0, 1] is clamped.
func ElasticInOut[T Float](p T) T {
	f := float64(normalized(p))
	if f < easeMidpoint {
		g := 2 * f
		return T(easeMidpoint * math.Sin(elasticPeriods*halfPi*g) * math.Exp2(expSteepness*(g-1)))
	}
	g := 2*f - 1
	return T(easeMidpoint * (math.Sin(-elasticPeriods*halfPi*(g+1))*math.Exp2(-expSteepness*g) + 2))
}

// BackIn pulls back past zero before accelerating: p³ - p·sin(p·π).
// Input outside [0, 1] is clamped.
func BackIn[T Float](p T) T {
	f := float64(normalized(p))
	return T(f*f*f - f*math.Sin(f*math.Pi))
}

// BackOut overshoots past one before settling, the mirror of BackIn.
// Input outside [0, 1] is clamped.
func BackOut[T Float](p T) T {
	f := 1 - float64(normalized(p))
	return T(1 - (f*f*f - f*math.Sin(f*math.Pi)))
}

// BackInOut pulls back below zero, accelerates through the midpoint,
// overshoots above one, then settles. Input outside [0, 1] is clamped.
func BackInOut[T Float](p T) T {
	f := float64(normalized(p))
	if f < easeMidpoint {
		g := 2 * f
		return T(easeMidpoint * (g*g*g - g*math.Sin(g*math.Pi)))
	}
	g := 1 - (2*f - 1)
	return T(easeMidpoint*(1-(g*g*g-g*math.Sin(g*math.Pi))) + easeMidpoint)
}

// BounceIn bounces with increasing height toward one:
// 1 - BounceOut(1-p). Input outside [0, 1] is clamped.
func BounceIn[T Float](p T) T {
	p = normalized(p)
	return 1 - BounceOut(1-p)
}

// BounceOut bounces with decreasing height toward one, a four-segment
// piecewise quadratic. Input outside [0, 1] is clamped.
func BounceOut[T Float](p T) T {
	p = normalized(p)
	switch {
	case p < bounceFirstBreak:
		return bounceSeg1A * p * p
	case p < bounceSecondBreak:
		return bounceSeg2A*p*p - bounceSeg2B*p + bounceSeg2C
	case p < bounceThirdBreak:
		return bounceSeg3A*p*p - bounceSeg3B*p + bounceSeg3C
	default:
		return bounceSeg4A*p*p - bounceSeg4B*p + bounceSeg4C
	}
}

// BounceInOut plays BounceIn up to the midpoint and BounceOut after it.
// Input outside [0, 1] is clamped.
func BounceInOut[T Float](p T) T {
	p = normalized(p)
	if p < easeMidpoint {
		return easeMidpoint * BounceIn(2*p)
	}
	return easeMidpoint*BounceOut(2*p-1) + easeMidpoint
}
