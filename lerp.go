package interpolation

import "math"

// Lerper is implemented by value types that can linearly interpolate
// toward another value of the same type, weighted by a scalar of type
// S. When t is zero the receiver has full weight; when t is one the
// other value has full weight. Implementations must not clamp t, so
// values outside [0, 1] extrapolate.
type Lerper[T, S any] interface {
	Lerp(other T, t S) T
}

// Lerp returns the linear interpolation between a and b:
// a + (b-a)·t. The weight t is not clamped; values outside [0, 1]
// extrapolate beyond the endpoints.
func Lerp[T Float](a, b, t T) T {
	return a + (b-a)*t
}

// LerpValue interpolates between two values of any type implementing
// the [Lerper] contract, such as points or colors.
func LerpValue[T Lerper[T, S], S any](a, b T, t S) T {
	return a.Lerp(b, t)
}

// LerpInt linearly interpolates between two signed integers. The
// difference is computed in the scalar type S, scaled by t, rounded to
// nearest (half away from zero, which decides results at exact
// half-integer boundaries), and added back to a. Use float32 for
// widths up to 32 bits and float64 for 64-bit values.
func LerpInt[T Signed, S Float](a, b T, t S) T {
	return a + T(math.Round(float64(S(b-a)*t)))
}

// LerpUint linearly interpolates between two unsigned integers. The
// magnitude comparison keeps the subtraction out of unsigned underflow
// territory; rounding matches [LerpInt].
func LerpUint[T Unsigned, S Float](a, b T, t S) T {
	if a <= b {
		return a + T(math.Round(float64(S(b-a)*t)))
	}
	return a - T(math.Round(float64(S(a-b)*t)))
}

// LerpSlice interpolates two float slices element-wise with a shared
// weight, returning a freshly allocated result. The slices must have
// equal length.
func LerpSlice[T Float](a, b []T, t T) []T {
	out := make([]T, len(a))
	for i := range a {
		out[i] = a[i] + (b[i]-a[i])*t
	}
	return out
}

// LerpIntSlice is the element-wise form of [LerpInt]. The slices must
// have equal length.
func LerpIntSlice[T Signed, S Float](a, b []T, t S) []T {
	out := make([]T, len(a))
	for i := range a {
		out[i] = LerpInt(a[i], b[i], t)
	}
	return out
}

// LerpUintSlice is the element-wise form of [LerpUint]. The slices
// must have equal length.
func LerpUintSlice[T Unsigned, S Float](a, b []T, t S) []T {
	out := make([]T, len(a))
	for i := range a {
		out[i] = LerpUint(a[i], b[i], t)
	}
	return out
}
