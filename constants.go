package interpolation

import "math"

// Shared easing curve parameters
const (
	// easeMidpoint is where every *InOut curve hands off from the
	// accelerating half to the decelerating half.
	easeMidpoint = 0.5

	// halfPi is the quarter period used by the sine and elastic families.
	halfPi = math.Pi / 2
)

// Exponential family steepness
const (
	expSteepness      = 10.0 // exponent scale for ExponentialIn/Out
	expInOutSteepness = 20.0 // exponent scale for ExponentialInOut halves
)

// Elastic family parameters
const (
	// elasticPeriods is the number of quarter oscillation periods packed
	// into the unit interval (13 gives six and a half full swings).
	elasticPeriods = 13.0
)

// Bounce curve breakpoints.
// The curve is a four-segment piecewise quadratic; the breakpoints are
// exact rationals, not approximations.
const (
	bounceFirstBreak  = 4.0 / 11.0
	bounceSecondBreak = 8.0 / 11.0
	bounceThirdBreak  = 9.0 / 10.0
)

// Bounce segment coefficients for a*p² + b*p + c, one triple per
// segment. The coefficients are exact rationals, not approximations.
const (
	bounceSeg1A = 121.0 / 16.0

	bounceSeg2A = 363.0 / 40.0
	bounceSeg2B = 99.0 / 10.0
	bounceSeg2C = 17.0 / 5.0

	bounceSeg3A = 4356.0 / 361.0
	bounceSeg3B = 35442.0 / 1805.0
	bounceSeg3C = 16061.0 / 1805.0

	bounceSeg4A = 54.0 / 5.0
	bounceSeg4B = 513.0 / 25.0
	bounceSeg4C = 268.0 / 25.0
)
